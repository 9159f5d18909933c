package weather

import (
	"errors"
)

var (
	ErrConnection    = errors.New("weather provider unreachable")
	ErrNetwork       = errors.New("weather provider temporarily disabled")
	ErrCityNotFound  = errors.New("city not found")
	ErrInvalidAPIKey = errors.New("invalid API key")
	ErrUpstream      = errors.New("weather provider error")

	// ErrForecastFailed marks a non-2xx forecast reply; it is always
	// reported together with ErrUpstream.
	ErrForecastFailed = errors.New("forecast request failed")
)

const fallbackMessage = "Error loading weather data"

var friendlyMessages = []struct {
	err error
	msg string
}{
	{ErrConnection, "Connection error. Check your internet."},
	{ErrCityNotFound, "City not found."},
	{ErrInvalidAPIKey, "Weather service problem."},
	{ErrNetwork, "Network error. Check your connection."},
}

// FriendlyError turns a provider failure into a message fit for the user.
func FriendlyError(err error) string {
	for _, m := range friendlyMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return fallbackMessage
}
