package config

import (
	"flag"
	"os"

	"github.com/valencire/account/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-s string   storage backend kind ("memory", "sqlite", "postgres")
//	-d string   SQLite file path or PostgreSQL DSN
//	-p int      minimum password length at signup
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-d", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.Storage, "s", config.Storage, "storage backend kind")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN or file path")
	fs.IntVar(&config.MinPasswordLen, "p", config.MinPasswordLen, "minimum password length")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
