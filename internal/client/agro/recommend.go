// Package agro turns current weather readings into planting advice for
// growers in a tropical climate.
package agro

type Climate string

const (
	ClimateHotDry    Climate = "hot-dry"
	ClimateHotHumid  Climate = "hot-humid"
	ClimateTemperate Climate = "temperate"
	ClimateRainy     Climate = "rainy"
)

type Severity string

const (
	SeverityDanger    Severity = "danger"
	SeverityWarning   Severity = "warning"
	SeverityFavorable Severity = "favorable"
)

type Alert struct {
	Severity Severity
	Message  string
}

type Recommendation struct {
	Climate    Climate
	Crops      []string
	Irrigation string
	Period     string
	Alert      Alert
}

// HasAlert reports whether conditions call for attention. A favorable
// verdict is not an alert.
func (r Recommendation) HasAlert() bool {
	return r.Alert.Severity != SeverityFavorable
}

type band struct {
	climate    Climate
	crops      []string
	irrigation string
	period     string
}

var (
	hotDry = band{
		climate:    ClimateHotDry,
		crops:      []string{"Coconut", "Sugarcane", "Mango", "Cashew", "Pineapple", "Sorghum"},
		irrigation: "Intensive - 3 times a day",
		period:     "Plant immediately",
	}
	hotHumid = band{
		climate:    ClimateHotHumid,
		crops:      []string{"Banana", "Papaya", "Passion fruit", "Cassava", "Yam", "Avocado"},
		irrigation: "Moderate - 2 times a day",
		period:     "Good planting period",
	}
	temperate = band{
		climate:    ClimateTemperate,
		crops:      []string{"Corn", "Beans", "Tomato", "Bell pepper", "Carrot", "Lettuce"},
		irrigation: "Light - once a day",
		period:     "Favorable period",
	}
	rainy = band{
		climate:    ClimateRainy,
		crops:      []string{"Rice", "Banana", "Cassava", "Taro", "Waterweed", "Eggplant"},
		irrigation: "Reduced - only if needed",
		period:     "Wait for better weather",
	}
)

func classify(temp, humidity float64) band {
	switch {
	case temp > 28 && humidity < 60:
		return hotDry
	case temp > 25 && humidity > 70:
		return hotHumid
	case temp > 20 && temp <= 25:
		return temperate
	default:
		return rainy
	}
}

// alertFor checks the thresholds in order and returns the first match.
func alertFor(temp, humidity float64, condition string) Alert {
	switch {
	case temp > 35:
		return Alert{SeverityDanger, "Very high temperature! Risk to crops."}
	case temp < 15:
		return Alert{SeverityDanger, "Low temperature! Protect sensitive plants."}
	case humidity < 40:
		return Alert{SeverityDanger, "Low humidity! Increase irrigation."}
	case condition == "Rain":
		return Alert{SeverityWarning, "Rain expected. Reduce irrigation."}
	default:
		return Alert{SeverityFavorable, "Favorable conditions for farming."}
	}
}

// Recommend maps temperature (°C), relative humidity (%) and the provider's
// main condition ("Rain", "Clear", ...) to advice.
func Recommend(temp, humidity float64, condition string) Recommendation {
	b := classify(temp, humidity)

	crops := make([]string, len(b.crops))
	copy(crops, b.crops)

	return Recommendation{
		Climate:    b.climate,
		Crops:      crops,
		Irrigation: b.irrigation,
		Period:     b.period,
		Alert:      alertFor(temp, humidity, condition),
	}
}
