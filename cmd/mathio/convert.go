package main

import (
	"fmt"

	"github.com/DanielMiklody/openmeeg/format"
	"github.com/DanielMiklody/openmeeg/internal/logger"
	"github.com/spf13/cobra"
)

func (c *cli) convertCmd() *cobra.Command {
	var (
		from string
		to   string
	)

	cmd := &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert a matrix file to another format",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := absPath(args[0])
			if err != nil {
				return err
			}
			out, err := absPath(args[1])
			if err != nil {
				return err
			}

			m, src, err := format.ReadFile(c.fsys, c.reg, in, c.formatFor(in, from))
			if err != nil {
				return err
			}
			dst, err := format.WriteFile(c.fsys, c.reg, out, c.formatFor(out, to), m)
			if err != nil {
				return err
			}

			logger.Info().Str("from", src.Name()).Str("to", dst.Name()).Msg("converted")
			fmt.Fprintf(c.out, "%s (%s) -> %s (%s)\n", args[0], src.Name(), args[1], dst.Name())
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Input format name, overriding the suffix")
	cmd.Flags().StringVar(&to, "to", "", "Output format name, overriding the suffix")
	return cmd
}
