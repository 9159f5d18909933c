package config

import (
	"github.com/caarlos0/env/v6"
	"github.com/dmitrijs2005/alertaverde/internal/flagx"
	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with environment variables. Variables that are not
// set leave the current value untouched.
//
// When -env is given the file must exist; otherwise a .env in the working
// directory is loaded if present. Panics on malformed input, like the other
// layers.
func parseEnv(cfg *Config) {
	if path := flagx.EnvFileFlags(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else {
		_ = godotenv.Load()
	}

	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
}
