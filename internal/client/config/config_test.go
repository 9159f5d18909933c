package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080/api", c.BackendURL)
	assert.Equal(t, "Cabo de Santo Agostinho", c.DefaultCity)
	assert.Equal(t, "pt_br", c.WeatherLang)
	assert.Equal(t, "metric", c.WeatherUnits)
	assert.Equal(t, 10*time.Minute, c.CacheTTL)
	assert.Equal(t, time.Duration(0), c.RequestTimeout)
	assert.Equal(t, 100*time.Millisecond, c.NotificationDelay)
	assert.Equal(t, 5*time.Second, c.NotificationTTL)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"alertaverde"}

	cfg := LoadConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, "http://127.0.0.1:8080/api", cfg.BackendURL)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 10*time.Second, cfg.OnlineCheckInterval)
}

func TestLoadConfig_FlagsBeatEnv(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Setenv("ALERTAVERDE_DEFAULT_CITY", "Recife")
	t.Setenv("OPENWEATHER_API_KEY", "from-env")
	os.Args = []string{"alertaverde", "-city", "Olinda"}

	cfg := LoadConfig()

	assert.Equal(t, "Olinda", cfg.DefaultCity)
	assert.Equal(t, "from-env", cfg.WeatherAPIKey)
}
