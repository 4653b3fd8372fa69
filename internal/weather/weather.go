// Package weather maps ambient weather conditions onto the mood palette.
// Every network failure degrades to a fixed default; nothing here returns
// an error to the mood-record flow.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/chris-regnier/sunspot/internal/mood"
)

const (
	defaultForecastURL = "https://api.open-meteo.com/v1/forecast"
	defaultLocateURL   = "https://ipapi.co/json/"
	defaultTimeout     = 5 * time.Second
)

// WMO weather interpretation codes.
var codeTable = map[int]mood.Type{
	0:  mood.Sunny,  // clear sky
	1:  mood.Sunny,  // mainly clear
	2:  mood.Cloudy, // partly cloudy
	3:  mood.Cloudy, // overcast
	45: mood.Cloudy, // fog
	48: mood.Cloudy, // rime fog
	51: mood.Rainy,  // drizzle
	53: mood.Rainy,
	55: mood.Rainy,
	61: mood.Rainy, // rain
	63: mood.Rainy,
	65: mood.Rainy,
	66: mood.Rainy, // freezing rain
	67: mood.Rainy,
	71: mood.Cloudy, // snow
	73: mood.Cloudy,
	75: mood.Cloudy,
	80: mood.Rainy, // showers
	81: mood.Rainy,
	82: mood.Stormy, // violent showers
	85: mood.Cloudy, // snow showers
	86: mood.Cloudy,
	95: mood.Stormy, // thunderstorm
	96: mood.Stormy,
	99: mood.Stormy,
}

var descriptions = map[mood.Type]string{
	mood.Sunny:  "Clear and bright",
	mood.Cloudy: "Clouds drifting by",
	mood.Rainy:  "Soft steady rain",
	mood.Stormy: "Wind and rain",
}

// Weather is the classified current condition.
type Weather struct {
	Type        mood.Type `json:"type"`
	Temperature int       `json:"temperature"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Fallback    bool      `json:"fallback,omitempty"`
}

// Location is a latitude/longitude pair.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Fallback is returned whenever the forecast cannot be fetched.
var Fallback = Weather{
	Type:        mood.Sunny,
	Temperature: 22,
	Description: descriptions[mood.Sunny],
	Icon:        mood.Sunny.Icon(),
	Fallback:    true,
}

// DefaultLocation is used when IP geolocation fails (Beijing).
var DefaultLocation = Location{Latitude: 39.9, Longitude: 116.4}

// Classify maps a WMO weather code to a mood. Unknown codes are sunny.
func Classify(code int) mood.Type {
	if t, ok := codeTable[code]; ok {
		return t
	}
	return mood.Sunny
}

// Describe builds the Weather for a classified code and temperature.
func Describe(code int, temperature float64) Weather {
	t := Classify(code)
	return Weather{
		Type:        t,
		Temperature: int(math.Round(temperature)),
		Description: descriptions[t],
		Icon:        t.Icon(),
	}
}

// ThemeFor returns the page theme name for a weather mood.
func ThemeFor(t mood.Type) string {
	switch t {
	case mood.Sunny:
		return "sunny"
	case mood.Rainy, mood.Stormy:
		return "rainy"
	default:
		return "cloudy"
	}
}

// Client fetches current conditions over HTTP.
type Client struct {
	http        *http.Client
	timeout     time.Duration
	forecastURL string
	locateURL   string
	logger      *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the HTTP client. The client is copied, so
// WithTimeout never changes the caller's value. nil is ignored.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithEndpoints overrides the forecast and geolocation URLs.
func WithEndpoints(forecastURL, locateURL string) ClientOption {
	return func(c *Client) {
		if forecastURL != "" {
			c.forecastURL = forecastURL
		}
		if locateURL != "" {
			c.locateURL = locateURL
		}
	}
}

// WithLogger sets the logger used to report degraded lookups.
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a weather client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		http:        http.DefaultClient,
		forecastURL: defaultForecastURL,
		locateURL:   defaultLocateURL,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}

	hc := *c.http
	switch {
	case c.timeout > 0:
		hc.Timeout = c.timeout
	case hc.Timeout == 0:
		hc.Timeout = defaultTimeout
	}
	c.http = &hc
	c.logger = c.logger.With("component", "weather")
	return c
}

type forecastResponse struct {
	Current *struct {
		Temperature *float64 `json:"temperature_2m"`
		WeatherCode *int     `json:"weather_code"`
	} `json:"current"`
}

// Fetch returns the classified current weather at lat/lon, or Fallback on
// any failure.
func (c *Client) Fetch(ctx context.Context, lat, lon float64) Weather {
	w, err := c.fetch(ctx, lat, lon)
	if err != nil {
		c.logger.Warn("weather lookup failed, using default", "error", err)
		return Fallback
	}
	return w
}

func (c *Client) fetch(ctx context.Context, lat, lon float64) (Weather, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("current", "temperature_2m,weather_code")
	q.Set("timezone", "auto")

	var body forecastResponse
	if err := c.getJSON(ctx, c.forecastURL+"?"+q.Encode(), &body); err != nil {
		return Weather{}, err
	}

	code, temp := 0, 20.0
	if body.Current != nil {
		if body.Current.WeatherCode != nil {
			code = *body.Current.WeatherCode
		}
		if body.Current.Temperature != nil {
			temp = *body.Current.Temperature
		}
	}
	return Describe(code, temp), nil
}

type locateResponse struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Locate estimates the caller's location from its IP address, or returns
// DefaultLocation on any failure.
func (c *Client) Locate(ctx context.Context) Location {
	var body locateResponse
	if err := c.getJSON(ctx, c.locateURL, &body); err != nil {
		c.logger.Warn("ip geolocation failed, using default", "error", err)
		return DefaultLocation
	}
	loc := DefaultLocation
	if body.Latitude != nil {
		loc.Latitude = *body.Latitude
	}
	if body.Longitude != nil {
		loc.Longitude = *body.Longitude
	}
	return loc
}

func (c *Client) getJSON(ctx context.Context, rawURL string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", req.URL.Host, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, req.URL.Host)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
