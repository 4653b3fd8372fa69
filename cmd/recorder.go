package cmd

import (
	"context"

	"github.com/chris-regnier/sunspot/internal/logging"
	"github.com/chris-regnier/sunspot/internal/session"
	"github.com/chris-regnier/sunspot/internal/ui"
	"github.com/chris-regnier/sunspot/internal/weather"
)

// recorderRun opens the interactive recorder. Logs go to a file while the
// terminal belongs to the TUI.
func recorderRun(ctx context.Context) error {
	tuiLogger, closeLog := logging.OpenFile(appConfig.DataDir, appConfig.LogLevel)
	defer closeLog()

	var wx *weather.Weather
	weatherTheme := ""
	if appConfig.Weather.Enabled {
		w := currentWeather(ctx, weather.WithLogger(tuiLogger))
		wx = &w
		weatherTheme = weather.ThemeFor(w.Type)
	}

	theme := ui.ResolveTheme(appConfig.Theme, weatherTheme)
	renderer := ui.NewRenderer(theme,
		ui.WithVariant(ui.ParseVariant(appConfig.Variant)),
		ui.WithWidth(appConfig.MaxWidth),
	)

	err := ui.RunRecorder(ui.RecorderConfig{
		Store:    store,
		Clock:    clk,
		Renderer: renderer,
		Weather:  wx,
		Options: []session.Option{
			session.WithConfirmDelay(appConfig.ConfirmDelayDuration()),
			session.WithLogger(tuiLogger),
		},
	})
	invalidateCache()
	return err
}
