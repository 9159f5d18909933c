package config

import "time"

// Config holds runtime settings for the CLI.
type Config struct {
	// BackendURL is the API root, e.g. http://127.0.0.1:8080/api.
	BackendURL string `env:"ALERTAVERDE_BACKEND_URL"`
	// RequestTimeout bounds backend calls; zero means no timeout.
	RequestTimeout time.Duration `env:"ALERTAVERDE_REQUEST_TIMEOUT"`

	WeatherBaseURL string        `env:"ALERTAVERDE_WEATHER_URL"`
	WeatherAPIKey  string        `env:"OPENWEATHER_API_KEY"`
	WeatherLang    string        `env:"ALERTAVERDE_WEATHER_LANG"`
	WeatherUnits   string        `env:"ALERTAVERDE_WEATHER_UNITS"`
	DefaultCity    string        `env:"ALERTAVERDE_DEFAULT_CITY"`
	CacheTTL       time.Duration `env:"ALERTAVERDE_CACHE_TTL"`

	// SessionDB is the SQLite file holding the persisted session.
	SessionDB string `env:"ALERTAVERDE_SESSION_DB"`

	OnlineCheckInterval time.Duration `env:"ALERTAVERDE_ONLINE_CHECK_INTERVAL"`
	NotificationDelay   time.Duration `env:"ALERTAVERDE_NOTIFICATION_DELAY"`
	NotificationTTL     time.Duration `env:"ALERTAVERDE_NOTIFICATION_TTL"`

	LogLevel string `env:"ALERTAVERDE_LOG_LEVEL"`
}

// LoadDefaults populates c with values suitable for a local backend.
func (c *Config) LoadDefaults() {
	c.BackendURL = "http://127.0.0.1:8080/api"
	c.RequestTimeout = 0
	c.WeatherBaseURL = "https://api.openweathermap.org/data/2.5"
	c.WeatherAPIKey = ""
	c.WeatherLang = "pt_br"
	c.WeatherUnits = "metric"
	c.DefaultCity = "Cabo de Santo Agostinho"
	c.CacheTTL = 10 * time.Minute
	c.SessionDB = "alertaverde.db"
	c.OnlineCheckInterval = 10 * time.Second
	c.NotificationDelay = 100 * time.Millisecond
	c.NotificationTTL = 5 * time.Second
	c.LogLevel = "warn"
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
