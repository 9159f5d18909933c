package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/alertaverde/internal/client/notify"
	"github.com/dmitrijs2005/alertaverde/internal/client/weather"
)

// Weather shows conditions, forecast and advice for city, or for the user's
// default city when city is empty.
func (a *App) Weather(ctx context.Context, city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		city = a.currentUser().City(a.config.DefaultCity)
	}

	res, err := a.weather.Load(ctx, city)
	if err != nil {
		msg := weather.FriendlyError(err)
		fmt.Fprintf(a.out, "⚠ %s\n", msg)
		a.notifier.Show(msg, notify.Error)
		return err
	}

	if res.Stale {
		a.notifier.Show(
			fmt.Sprintf("Offline: showing data from %s.", res.Snapshot.Timestamp.Local().Format("15:04")),
			notify.Warning,
		)
	}

	renderWeather(a.out, res)
	return nil
}

// Refresh drops every cached snapshot and reloads the default city.
func (a *App) Refresh(ctx context.Context) error {
	a.weather.ClearCache()
	if err := a.Weather(ctx, ""); err != nil {
		return err
	}
	return a.Crops(ctx)
}
