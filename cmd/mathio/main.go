// Command mathio inspects and converts matrix files.
//
// Failures are logged with their code and the process exits with that code,
// so scripts can tell a missing reader (140) from a bad header (134).
package main

import (
	"os"

	"github.com/DanielMiklody/openmeeg/errors"
	"github.com/DanielMiklody/openmeeg/format"
	"github.com/DanielMiklody/openmeeg/internal/logger"
)

func main() {
	c := &cli{
		fsys: format.Local(),
		reg:  format.Default(),
		out:  os.Stdout,
	}

	if err := c.root().Execute(); err != nil {
		logger.ErrorWithCode(err).Msg("mathio failed")
		os.Exit(errors.ExitStatus(err))
	}
}
