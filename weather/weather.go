// Package weather reads current conditions from the Open-Meteo forecast API.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"

	"github.com/google/go-querystring/query"
	"golang.org/x/sync/singleflight"

	"voyagex-front/logger"
)

// ErrNoConditions means the response carried no current_weather object.
var ErrNoConditions = errors.New("weather: no current conditions in response")

type Conditions struct {
	Temperature float64 `json:"temperature"`
	WindSpeed   float64 `json:"windspeed"`
	WeatherCode int     `json:"weathercode"`
}

type forecastQuery struct {
	Latitude        float64 `url:"latitude"`
	Longitude       float64 `url:"longitude"`
	CurrentWeather  bool    `url:"current_weather"`
	TemperatureUnit string  `url:"temperature_unit"`
}

type forecastResponse struct {
	CurrentWeather *Conditions `json:"current_weather"`
}

type Client struct {
	http    *http.Client
	baseURL string
	log     *logger.Logger
	group   singleflight.Group
}

func New(httpClient *http.Client, baseURL string, log *logger.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Client{http: httpClient, baseURL: baseURL, log: log.With("component", "weather")}
}

// Current fetches the current conditions at lat/lng. Concurrent calls for
// the same coordinate share one request.
func (c *Client) Current(ctx context.Context, lat, lng float64) (Conditions, error) {
	key := strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lng, 'f', -1, 64)
	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		return c.fetch(ctx, lat, lng)
	})
	if err != nil {
		return Conditions{}, err
	}
	return v.(Conditions), nil
}

func (c *Client) fetch(ctx context.Context, lat, lng float64) (Conditions, error) {
	values, err := query.Values(forecastQuery{
		Latitude:        lat,
		Longitude:       lng,
		CurrentWeather:  true,
		TemperatureUnit: "celsius",
	})
	if err != nil {
		return Conditions{}, fmt.Errorf("weather: encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+values.Encode(), nil)
	if err != nil {
		return Conditions{}, fmt.Errorf("weather: build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return Conditions{}, fmt.Errorf("weather: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Conditions{}, fmt.Errorf("weather: API error (status %d): %s", resp.StatusCode, string(body))
	}

	var data forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return Conditions{}, fmt.Errorf("weather: decode response: %w", err)
	}
	if data.CurrentWeather == nil {
		return Conditions{}, ErrNoConditions
	}
	c.log.Debug("current conditions", "lat", lat, "lng", lng, "temperature", data.CurrentWeather.Temperature)
	return *data.CurrentWeather, nil
}

// FormatTemperature renders a Celsius reading rounded to the nearest degree,
// halves rounding up.
func FormatTemperature(celsius float64) string {
	return fmt.Sprintf("%d°C", int(math.Floor(celsius+0.5)))
}
