package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/todolist/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8000")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      token validity, minutes
//	-l int      per-user rate limit, requests per minute
//	-b int      per-user rate limit burst
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-l", "-b"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	tokenValidity := fs.Int("t", int(config.TokenValidity.Minutes()), "token validity (in minutes)")

	fs.IntVar(&config.RateLimitPerMinute, "l", config.RateLimitPerMinute, "rate limit (requests per minute per user)")
	fs.IntVar(&config.RateLimitBurst, "b", config.RateLimitBurst, "rate limit burst")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidity = time.Duration(*tokenValidity) * time.Minute
}
