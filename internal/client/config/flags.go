package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/conduit/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Only the flags handled here are passed to the flag set (see
// flagx.FilterArgs), so -c/-config and anything else on the command line
// does not cause a parse error.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-p", "-l", "-t"})

	fs := flag.NewFlagSet("conduit", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIURL, "a", cfg.APIURL, "base URL of the Conduit API")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path of the local database")
	fs.IntVar(&cfg.PageSize, "p", cfg.PageSize, "articles per page")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "per-request timeout, 0 for none")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
