package config

import (
	"flag"
	"os"

	"github.com/earnhub/adminctl/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base address of the admin backend
//	-d string   path of the local credentials database
//	-l string   log level (trace, debug, info, warn, error)
//
// The function filters os.Args to only the flags it knows about, using
// flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base address of the admin backend")
	fs.StringVar(&cfg.TokenDBPath, "d", cfg.TokenDBPath, "path of the local credentials database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
