package config

import (
	"flag"
	"os"
	"time"

	"github.com/ourganize/ourganize-cli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   URL of the backend GraphQL endpoint (default from Config)
//	-s string   base URL of the site (default from Config)
//	-d string   path of the local cache database (default from Config)
//	-t int      request timeout in seconds (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIEndpointURL, "a", cfg.APIEndpointURL, "URL of the backend GraphQL endpoint")
	fs.StringVar(&cfg.SiteBaseURL, "s", cfg.SiteBaseURL, "base URL of the site")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local cache database")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
