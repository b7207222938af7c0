package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"voltlink/internal/models"
)

// GeoIPClient resolves an approximate position from an ip-api.com style
// endpoint.
type GeoIPClient struct {
	base *BaseClient
}

// NewGeoIPClient returns client.
func NewGeoIPClient(baseURL string, httpClient HTTPDoer) *GeoIPClient {
	return &GeoIPClient{base: NewBaseClient(baseURL, httpClient)}
}

type geoIPResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// Locate queries the endpoint for the caller's position.
func (c *GeoIPClient) Locate(ctx context.Context) (models.Coordinates, error) {
	status, body, err := c.base.Do(ctx, http.MethodGet, "/json", nil)
	if err != nil {
		return models.Coordinates{}, err
	}
	if status != http.StatusOK {
		return models.Coordinates{}, fmt.Errorf("geoip: unexpected status %d", status)
	}

	var resp geoIPResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return models.Coordinates{}, fmt.Errorf("geoip: decode response: %w", err)
	}
	if resp.Status != "success" {
		return models.Coordinates{}, fmt.Errorf("geoip: lookup failed: %s", resp.Message)
	}
	return models.Coordinates{Lat: resp.Lat, Lng: resp.Lon}, nil
}
