package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/alertaverde/internal/client/agro"
	"github.com/dmitrijs2005/alertaverde/internal/client/models"
	"github.com/dmitrijs2005/alertaverde/internal/client/services"
	"github.com/dmitrijs2005/alertaverde/internal/client/weather"
)

var weekdays = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// conditionIcon maps an OpenWeatherMap main condition to a glyph.
func conditionIcon(main string) string {
	switch main {
	case "Clear":
		return "☀"
	case "Clouds":
		return "☁"
	case "Rain", "Drizzle":
		return "🌧"
	case "Thunderstorm":
		return "⛈"
	case "Snow":
		return "❄"
	case "Mist", "Fog", "Haze", "Smoke", "Dust":
		return "🌫"
	default:
		return "🌤"
	}
}

func renderWeather(w io.Writer, res *services.WeatherResult) {
	cur := res.Snapshot.Current
	if cur == nil {
		return
	}
	cond := cur.Condition()

	place := cur.Name
	if cur.Sys.Country != "" {
		place += ", " + cur.Sys.Country
	}

	fmt.Fprintf(w, "\n%s %s\n", conditionIcon(cond.Main), place)
	fmt.Fprintf(w, "  %.0f°C  %s\n", cur.Main.Temp, cond.Description)
	fmt.Fprintf(w, "  Feels like %.0f°C  Humidity %.0f%%  Wind %.1f km/h  Pressure %.0f hPa\n",
		cur.Main.FeelsLike, cur.Main.Humidity, cur.Wind.Speed*3.6, cur.Main.Pressure)
	if res.Stale {
		fmt.Fprintf(w, "  (cached at %s)\n", res.Snapshot.Timestamp.Local().Format("02/01 15:04"))
	}

	renderForecast(w, res.Snapshot.Forecast)
	renderRecommendation(w, agro.Recommend(cur.Main.Temp, cur.Main.Humidity, cond.Main))
}

func renderForecast(w io.Writer, f *weather.Forecast) {
	days := weather.Daily(f, weather.MaxForecastDays)
	if len(days) == 0 {
		return
	}

	fmt.Fprintln(w, "\nForecast")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, d := range days {
		t := weather.LocalTime(d.Dt, f.City.Timezone)
		cond := d.Condition()
		fmt.Fprintf(tw, "  %s %02d/%02d\t%s\t%.0f°C\t%.0f°/%.0f°\t%.0f%%\t%s\n",
			weekdays[t.Weekday()], t.Day(), int(t.Month()), conditionIcon(cond.Main),
			d.Main.Temp, d.Main.TempMax, d.Main.TempMin, d.Main.Humidity, cond.Description)
	}
	_ = tw.Flush()
}

func renderRecommendation(w io.Writer, r agro.Recommendation) {
	fmt.Fprintln(w, "\nRecommendations")
	fmt.Fprintf(w, "  Climate: %s\n", r.Climate)
	fmt.Fprintf(w, "  Suggested crops: %s\n", strings.Join(r.Crops, ", "))
	fmt.Fprintf(w, "  Irrigation: %s\n", r.Irrigation)
	fmt.Fprintf(w, "  Planting: %s\n", r.Period)

	if r.HasAlert() {
		mark := "⚠"
		if r.Alert.Severity == agro.SeverityDanger {
			mark = "‼"
		}
		fmt.Fprintf(w, "  %s %s\n", mark, r.Alert.Message)
	} else {
		fmt.Fprintf(w, "  ✔ %s\n", r.Alert.Message)
	}
}

func renderCrops(w io.Writer, crops []models.Crop, now time.Time) {
	if len(crops) == 0 {
		fmt.Fprintln(w, "No crops registered.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTYPE\tPLANTED\tAREA\tDAYS")
	for _, c := range crops {
		days := "-"
		if n, ok := c.DaysSincePlanting(now); ok {
			days = fmt.Sprintf("%d", n)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.2f ha\t%s\n", c.ID, c.Name, c.Type, c.PlantingDate, c.Area, days)
	}
	_ = tw.Flush()
}
