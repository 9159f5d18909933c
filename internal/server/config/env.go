package config

import (
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/alertaverde/internal/flagx"
)

// parseEnv overlays cfg with environment variables, after loading the file
// named by -env (required to exist) or a .env in the working directory.
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
