package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/go-querystring/query"

	"voyagex-front/logger"
)

// Place is one row of a Nominatim search result. Nominatim returns the
// coordinates as strings.
type Place struct {
	PlaceID     int64  `json:"place_id"`
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Class       string `json:"class"`
	Type        string `json:"type"`
}

type searchQuery struct {
	Format string  `url:"format"`
	Q      string  `url:"q"`
	Limit  int     `url:"limit"`
	Lat    float64 `url:"lat"`
	Lon    float64 `url:"lon"`
}

type PlacesClient struct {
	http    *http.Client
	baseURL string
	limit   int
	log     *logger.Logger
}

func NewPlacesClient(httpClient *http.Client, baseURL string, limit int, log *logger.Logger) *PlacesClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = logger.Nop()
	}
	return &PlacesClient{http: httpClient, baseURL: baseURL, limit: limit, log: log.With("component", "places")}
}

// Search looks up places matching q around lat/lng.
func (c *PlacesClient) Search(ctx context.Context, lat, lng float64, q string) ([]Place, error) {
	values, err := query.Values(searchQuery{Format: "json", Q: q, Limit: c.limit, Lat: lat, Lon: lng})
	if err != nil {
		return nil, fmt.Errorf("places: encode query: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+values.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("places: build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("places: API error (status %d): %s", resp.StatusCode, string(body))
	}
	var places []Place
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, fmt.Errorf("places: decode response: %w", err)
	}
	c.log.Debug("places search", "query", q, "results", len(places))
	return places, nil
}
