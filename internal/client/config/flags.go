package config

import (
	"flag"
	"os"

	"github.com/andrissp/invoicedesk/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string     base URL of the remote invoice API (default from Config)
//	-d string     path to the local settings database (default from Config)
//	-t duration   per-request deadline for API calls (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the remote invoice API")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local settings database")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "per-request deadline for API calls")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
