package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/alertaverde/internal/flagx"
)

// parseFlags overlays cfg with command-line flags:
//
//	-a string   backend API root URL
//	-w string   OpenWeatherMap base URL
//	-k string   OpenWeatherMap API key
//	-city string default city for the weather panel
//	-db string  session database file
//	-t int      weather cache TTL (minutes)
//	-i int      online check interval (seconds)
//	-v string   log level
//
// Only these flags are looked at, so -c and -env can coexist with them.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-w", "-k", "-city", "-db", "-t", "-i", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BackendURL, "a", cfg.BackendURL, "backend API root URL")
	fs.StringVar(&cfg.WeatherBaseURL, "w", cfg.WeatherBaseURL, "weather provider base URL")
	fs.StringVar(&cfg.WeatherAPIKey, "k", cfg.WeatherAPIKey, "weather provider API key")
	fs.StringVar(&cfg.DefaultCity, "city", cfg.DefaultCity, "default city")
	fs.StringVar(&cfg.SessionDB, "db", cfg.SessionDB, "session database file")
	cacheTTL := fs.Int("t", int(cfg.CacheTTL.Minutes()), "weather cache TTL (in minutes)")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.CacheTTL = time.Duration(*cacheTTL) * time.Minute
	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}
