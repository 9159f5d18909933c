// Package config handles configuration for the backend: defaults, then
// environment (with optional .env file), then a JSON overlay, then
// command-line flags.
package config

import "time"

// Config holds runtime settings for the backend.
//
// DatabaseDSN selects storage: "memory" keeps everything in process,
// anything else is treated as a PostgreSQL DSN (pgx). An empty SecretKey is
// replaced at startup by a random one, which invalidates tokens on restart.
type Config struct {
	EndpointAddr          string        `env:"ALERTAVERDE_ADDR"`
	DatabaseDSN           string        `env:"ALERTAVERDE_DATABASE_DSN"`
	SecretKey             string        `env:"ALERTAVERDE_JWT_SECRET"`
	TokenValidityDuration time.Duration `env:"ALERTAVERDE_TOKEN_TTL"`
	BcryptCost            int           `env:"ALERTAVERDE_BCRYPT_COST"`
	AllowedOrigin         string        `env:"ALERTAVERDE_ALLOWED_ORIGIN"`
	LogLevel              string        `env:"ALERTAVERDE_LOG_LEVEL"`
}

// MemoryDSN selects the in-process repositories.
const MemoryDSN = "memory"

func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.DatabaseDSN = MemoryDSN
	c.SecretKey = ""
	c.TokenValidityDuration = 24 * time.Hour
	c.BcryptCost = 10
	c.AllowedOrigin = "*"
	c.LogLevel = "info"
}

// LoadConfig applies defaults, environment, JSON and flags in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
