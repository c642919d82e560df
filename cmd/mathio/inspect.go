package main

import (
	"fmt"

	"github.com/DanielMiklody/openmeeg/format"
	"github.com/DanielMiklody/openmeeg/internal/logger"
	"github.com/spf13/cobra"
)

const (
	expectMatrix    = "matrix"
	expectVector    = "vector"
	expectSymmetric = "symmetric"
)

func (c *cli) inspectCmd() *cobra.Command {
	var (
		formatName string
		expect     string
	)

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show the format and shape of a matrix file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch expect {
			case expectMatrix, expectVector, expectSymmetric:
			default:
				return fmt.Errorf("invalid --expect value %q (want matrix, vector or symmetric)", expect)
			}

			path, err := absPath(args[0])
			if err != nil {
				return err
			}

			m, f, err := format.ReadFile(c.fsys, c.reg, path, c.formatFor(path, formatName))
			if err != nil {
				return err
			}
			rows, cols := m.Dims()
			logger.Debug().Str("file", path).Str("format", f.Name()).Int("rows", rows).Int("cols", cols).Msg("read matrix")

			switch expect {
			case expectMatrix:
			case expectVector:
				if _, err := format.AsVector(m); err != nil {
					return err
				}
			case expectSymmetric:
				if _, err := format.AsSymmetric(m); err != nil {
					return err
				}
			}

			fmt.Fprintf(c.out, "file:   %s\n", args[0])
			fmt.Fprintf(c.out, "format: %s\n", f.Name())
			fmt.Fprintf(c.out, "shape:  %dx%d\n", rows, cols)
			return nil
		},
	}

	cmd.Flags().StringVar(&formatName, "format", "", "Format name, overriding the file suffix")
	cmd.Flags().StringVar(&expect, "expect", expectMatrix, "Expected object: matrix, vector or symmetric")
	return cmd
}
