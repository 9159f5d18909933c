package weather

import (
	"sort"
	"time"
)

// MaxForecastDays is how many day cards the forecast view shows.
const MaxForecastDays = 5

// Daily keeps the first entry of each calendar day, in chronological order,
// up to limit days. Days are computed in the forecast city's UTC offset.
func Daily(f *Forecast, limit int) []ForecastEntry {
	if f == nil || limit <= 0 {
		return nil
	}

	entries := make([]ForecastEntry, len(f.List))
	copy(entries, f.List)
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Dt < entries[j].Dt })

	loc := time.FixedZone("city", f.City.Timezone)
	seen := make(map[string]struct{}, limit)
	out := make([]ForecastEntry, 0, limit)

	for _, e := range entries {
		day := time.Unix(e.Dt, 0).In(loc).Format("2006-01-02")
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		out = append(out, e)
		if len(out) == limit {
			break
		}
	}

	return out
}

// LocalTime converts a provider timestamp to the city's wall clock.
func LocalTime(dt int64, tzOffset int) time.Time {
	return time.Unix(dt, 0).In(time.FixedZone("city", tzOffset))
}
