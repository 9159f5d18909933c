package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/alertaverde/internal/flagx"
	"github.com/dmitrijs2005/alertaverde/internal/timex"
)

// JsonConfig is the on-disk shape of the -c / -config file.
type JsonConfig struct {
	EndpointAddr          string         `json:"endpoint_addr"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	BcryptCost            int            `json:"bcrypt_cost"`
	AllowedOrigin         string         `json:"allowed_origin"`
	LogLevel              string         `json:"log_level"`
}

func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.EndpointAddr != "" {
		cfg.EndpointAddr = jc.EndpointAddr
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.SecretKey != "" {
		cfg.SecretKey = jc.SecretKey
	}
	if jc.TokenValidityDuration.Duration > 0 {
		cfg.TokenValidityDuration = jc.TokenValidityDuration.Duration
	}
	if jc.BcryptCost > 0 {
		cfg.BcryptCost = jc.BcryptCost
	}
	if jc.AllowedOrigin != "" {
		cfg.AllowedOrigin = jc.AllowedOrigin
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
