package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/DanielMiklody/openmeeg/format"
	"github.com/DanielMiklody/openmeeg/internal/config"
	"github.com/DanielMiklody/openmeeg/internal/logger"
	"github.com/go-git/go-billy/v5"
	"github.com/spf13/cobra"
)

// cli holds the shared state for all subcommands.
type cli struct {
	fsys billy.Filesystem
	reg  *format.Registry
	out  io.Writer
	cfg  *config.Config
}

func (c *cli) root() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	rootCmd := &cobra.Command{
		Use:           "mathio",
		Short:         "Inspect and convert matrix files",
		Long:          "mathio reads and writes matrices in the text, binary and container formats.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				if err := config.ValidateLogLevel(logLevel); err != nil {
					return err
				}
				cfg.LogLevel = logLevel
			}
			if err := logger.Init(os.Stderr, cfg.LogLevel); err != nil {
				return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
			}
			if err := cfg.Apply(c.reg); err != nil {
				return err
			}
			c.cfg = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file (default: $MATHIO_CONFIG or mathio.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(c.inspectCmd(), c.convertCmd(), c.codesCmd())
	return rootCmd
}

// formatFor returns the explicit format for path, falling back to the
// configured default for paths without extension.
func (c *cli) formatFor(path, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if c.cfg != nil && filepath.Ext(path) == "" {
		return c.cfg.DefaultFormat
	}
	return ""
}

func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	return abs, nil
}
