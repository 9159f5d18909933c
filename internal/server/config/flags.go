package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/alertaverde/internal/flagx"
)

// parseFlags overlays cfg with command-line flags:
//
//	-a string   listen address (e.g. ":8080")
//	-d string   database DSN, or "memory"
//	-s string   JWT HMAC secret key
//	-t int      token validity, minutes
//	-v string   log level
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.EndpointAddr, "a", cfg.EndpointAddr, "address and port to run server")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "secret key")
	tokenValidity := fs.Int("t", int(cfg.TokenValidityDuration.Minutes()), "token validity duration (in minutes)")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.TokenValidityDuration = time.Duration(*tokenValidity) * time.Minute
}
