package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/chris-regnier/sunspot/internal/ui"
	"github.com/chris-regnier/sunspot/internal/weather"
	"github.com/spf13/cobra"
)

var (
	weatherLat float64
	weatherLon float64

	// weatherClientOptions is appended to every client; tests point it at a fake server.
	weatherClientOptions []weather.ClientOption
)

var weatherCmd = &cobra.Command{
	Use:   "weather",
	Short: "Show current weather and the theme it selects",
	Long: `Show current conditions and the colour theme they select.

Coordinates come from --lat/--lon, then from the weather section of the
config file, then from IP geolocation. Any lookup failure shows a default
sunny forecast rather than an error.`,
	Example: `  sunspot weather
  sunspot weather --lat 51.5 --lon -0.12
  sunspot weather --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("lat") || cmd.Flags().Changed("lon") {
			if !cmd.Flags().Changed("lat") || !cmd.Flags().Changed("lon") {
				return fmt.Errorf("--lat and --lon must be given together")
			}
			lat, lon := weatherLat, weatherLon
			appConfig.Weather.Latitude = &lat
			appConfig.Weather.Longitude = &lon
		}
		return weatherRun(cmd.Context(), cmd.OutOrStdout())
	},
}

func weatherRun(ctx context.Context, w io.Writer) error {
	wx := currentWeather(ctx)
	if jsonOutput {
		return ui.FormatJSON(w, wx)
	}
	ui.FormatWeather(w, wx)
	return nil
}

// currentWeather fetches conditions for the configured or located position.
// It never fails; see weather.Fallback.
func currentWeather(ctx context.Context, opts ...weather.ClientOption) weather.Weather {
	all := []weather.ClientOption{
		weather.WithTimeout(appConfig.WeatherTimeout()),
		weather.WithLogger(logger),
	}
	all = append(all, opts...)
	all = append(all, weatherClientOptions...)
	client := weather.NewClient(all...)

	loc := weather.Location{}
	if appConfig.Weather.Latitude != nil && appConfig.Weather.Longitude != nil {
		loc.Latitude = *appConfig.Weather.Latitude
		loc.Longitude = *appConfig.Weather.Longitude
	} else {
		loc = client.Locate(ctx)
	}
	return client.Fetch(ctx, loc.Latitude, loc.Longitude)
}

func init() {
	weatherCmd.Flags().Float64Var(&weatherLat, "lat", 0, "latitude")
	weatherCmd.Flags().Float64Var(&weatherLon, "lon", 0, "longitude")
	rootCmd.AddCommand(weatherCmd)
}
