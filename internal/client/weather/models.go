// Package weather fetches current conditions and forecasts from
// OpenWeatherMap, caches them per city, and reduces the 3-hourly forecast to
// one card per day.
package weather

import "time"

type Condition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Readings struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Humidity  float64 `json:"humidity"`
	Pressure  float64 `json:"pressure"`
}

type Wind struct {
	Speed float64 `json:"speed"`
}

// Current is the /weather payload, trimmed to what the CLI shows.
type Current struct {
	Name       string      `json:"name"`
	Dt         int64       `json:"dt"`
	Timezone   int         `json:"timezone"`
	Main       Readings    `json:"main"`
	Weather    []Condition `json:"weather"`
	Wind       Wind        `json:"wind"`
	Visibility int         `json:"visibility"`
	Sys        struct {
		Country string `json:"country"`
	} `json:"sys"`
}

// Condition returns the primary condition, or a zero value.
func (c *Current) Condition() Condition {
	if c == nil || len(c.Weather) == 0 {
		return Condition{}
	}
	return c.Weather[0]
}

type ForecastEntry struct {
	Dt      int64       `json:"dt"`
	Main    Readings    `json:"main"`
	Weather []Condition `json:"weather"`
	Wind    Wind        `json:"wind"`
	DtTxt   string      `json:"dt_txt"`
}

func (e ForecastEntry) Condition() Condition {
	if len(e.Weather) == 0 {
		return Condition{}
	}
	return e.Weather[0]
}

// Forecast is the /forecast payload: 3-hour steps over five days.
type Forecast struct {
	List []ForecastEntry `json:"list"`
	City struct {
		Name     string `json:"name"`
		Country  string `json:"country"`
		Timezone int    `json:"timezone"`
	} `json:"city"`
}

// Snapshot is one cached result for a city. Current and Forecast are always
// stored together.
type Snapshot struct {
	Current   *Current
	Forecast  *Forecast
	Timestamp time.Time
}
