package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/kauelucena/barberhub/internal/city/domain"
	"github.com/kauelucena/barberhub/pkg/apierror"
	"github.com/kauelucena/barberhub/pkg/logger"
)

// Client reverse-geocodes coordinates through a Nominatim-compatible
// open geocoding service
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new reverse geocoding client
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// address mirrors the Nominatim reverse response address block. Only the
// city-like fields are of interest.
type address struct {
	City    string `json:"city"`
	Town    string `json:"town"`
	Village string `json:"village"`
	County  string `json:"county"`
}

type reverseResponse struct {
	Address address `json:"address"`
}

// cityName extracts the most specific city-like field, in the fixed
// fallback order city, town, village, county.
func (a address) cityName() string {
	for _, candidate := range []string{a.City, a.Town, a.Village, a.County} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

// CityAt reverse-geocodes the coordinates and returns the extracted
// city-like name. An address with no usable field is an error: the
// resolution flow degrades to manual selection.
func (c *Client) CityAt(ctx context.Context, coords domain.Coordinates) (string, error) {
	endpoint := "GET /reverse"
	url := fmt.Sprintf("%s/reverse?format=json&lat=%f&lon=%f", c.baseURL, coords.Latitude, coords.Longitude)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create geocoding request: %w", err)
	}
	// Nominatim usage policy requires an identifying agent
	req.Header.Set("User-Agent", "barberhub-web/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		apiErr := apierror.Classify(endpoint, err)
		logger.Error(ctx).Err(err).Str("endpoint", endpoint).Msg("Reverse geocoding request failed")
		return "", apiErr
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apierror.Classify(endpoint, err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := apierror.FromResponse(endpoint, resp, body)
		logger.Error(ctx).Int("status", resp.StatusCode).Str("endpoint", endpoint).Msg("Reverse geocoding returned error status")
		return "", apiErr
	}

	var decoded reverseResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", fmt.Errorf("failed to decode geocoding response: %w", err)
	}

	name := decoded.Address.cityName()
	if name == "" {
		return "", fmt.Errorf("no city-like field in geocoding response")
	}

	logger.Info(ctx).
		Float64("lat", coords.Latitude).
		Float64("lon", coords.Longitude).
		Str("city", name).
		Msg("Reverse geocoded coordinates")
	return name, nil
}
