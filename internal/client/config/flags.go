package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/todolist/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the remote store
//	-f string   path of the session state file
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the server")
	fs.StringVar(&cfg.StateFile, "f", cfg.StateFile, "path of the session state file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
