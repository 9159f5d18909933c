package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/alertaverde/internal/flagx"
	"github.com/dmitrijs2005/alertaverde/internal/timex"
)

// JsonConfig mirrors Config for JSON files. Durations go through
// timex.Duration so "10m" and integer nanoseconds both work.
type JsonConfig struct {
	BackendURL          string         `json:"backend_url"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	WeatherBaseURL      string         `json:"weather_base_url"`
	WeatherAPIKey       string         `json:"weather_api_key"`
	WeatherLang         string         `json:"weather_lang"`
	WeatherUnits        string         `json:"weather_units"`
	DefaultCity         string         `json:"default_city"`
	CacheTTL            timex.Duration `json:"cache_ttl"`
	SessionDB           string         `json:"session_db"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	NotificationDelay   timex.Duration `json:"notification_delay"`
	NotificationTTL     timex.Duration `json:"notification_ttl"`
	LogLevel            string         `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c / -config. Keys missing
// from the file keep their current value. Panics on read or decode errors.
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

	setString(&cfg.BackendURL, jc.BackendURL)
	setString(&cfg.WeatherBaseURL, jc.WeatherBaseURL)
	setString(&cfg.WeatherAPIKey, jc.WeatherAPIKey)
	setString(&cfg.WeatherLang, jc.WeatherLang)
	setString(&cfg.WeatherUnits, jc.WeatherUnits)
	setString(&cfg.DefaultCity, jc.DefaultCity)
	setString(&cfg.SessionDB, jc.SessionDB)
	setString(&cfg.LogLevel, jc.LogLevel)

	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.CacheTTL.Duration > 0 {
		cfg.CacheTTL = jc.CacheTTL.Duration
	}
	if jc.OnlineCheckInterval.Duration > 0 {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.NotificationDelay.Duration > 0 {
		cfg.NotificationDelay = jc.NotificationDelay.Duration
	}
	if jc.NotificationTTL.Duration > 0 {
		cfg.NotificationTTL = jc.NotificationTTL.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
