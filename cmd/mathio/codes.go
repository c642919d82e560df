package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/DanielMiklody/openmeeg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// codeEntry is one row of the code table.
type codeEntry struct {
	Code   int    `json:"code" yaml:"code"`
	Name   string `json:"name" yaml:"name"`
	Branch string `json:"branch" yaml:"branch"`
}

func codeTable() []codeEntry {
	codes := errors.Codes()
	entries := make([]codeEntry, 0, len(codes))
	for _, c := range codes {
		entries = append(entries, codeEntry{
			Code:   int(c),
			Name:   c.String(),
			Branch: c.Branch().String(),
		})
	}
	return entries
}

func (c *cli) codesCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "codes",
		Short: "List error codes and the exit statuses they map to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderCodes(c.out, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: table, json or yaml")
	return cmd
}

func renderCodes(w io.Writer, output string) error {
	entries := codeTable()

	switch output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer func() { _ = enc.Close() }()
		return enc.Encode(entries)
	case "table":
		data := pterm.TableData{{"CODE", "NAME", "BRANCH"}}
		for _, e := range entries {
			data = append(data, []string{strconv.Itoa(e.Code), e.Name, e.Branch})
		}
		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, table)
		return err
	default:
		return fmt.Errorf("invalid output format %q (want table, json or yaml)", output)
	}
}
