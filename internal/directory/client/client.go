package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/kauelucena/barberhub/internal/directory/domain"
	"github.com/kauelucena/barberhub/pkg/apierror"
	"github.com/kauelucena/barberhub/pkg/logger"
)

// Card and background images cycled over shops that come without one.
var shopImages = []string{
	"https://images.unsplash.com/photo-1437719417032-8595fd9e9dc6?auto=format&fit=crop&w=600&q=80",
	"https://images.unsplash.com/photo-1503951914875-452162b0f3f1?auto=format&fit=crop&w=600&q=80",
	"https://images.unsplash.com/photo-1596462502278-27bfdc403348?auto=format&fit=crop&w=600&q=80",
	"https://images.unsplash.com/photo-1621605815971-fbc98d665033?auto=format&fit=crop&w=600&q=80",
}

var shopBgImages = []string{
	"https://images.unsplash.com/photo-1544551763-46a013bb70d5?auto=format&fit=crop&w=1200&q=80",
	"https://images.unsplash.com/photo-1521737604893-d14cc237f11d?auto=format&fit=crop&w=1200&q=80",
	"https://images.unsplash.com/photo-1441974231531-c6227db76b6e?auto=format&fit=crop&w=1200&q=80",
	"https://images.unsplash.com/photo-1470071459604-3b5ec3a7fe05?auto=format&fit=crop&w=1200&q=80",
}

// Client is the REST client for the remote barbershop directory
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new directory client with tracing on outbound requests
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

type fetchResponse struct {
	BarberShops []domain.Shop `json:"barberShops"`
}

// FetchBarberShops fetches the full shop list and enriches records that
// arrive without rating, reviews, description or images.
func (c *Client) FetchBarberShops(ctx context.Context) ([]domain.Shop, error) {
	endpoint := "GET /barbearias/fetch-barber-shops"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/barbearias/fetch-barber-shops", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		apiErr := apierror.Classify(endpoint, err)
		logger.Error(ctx).Err(err).Str("endpoint", endpoint).Str("kind", apiErr.Kind.String()).Msg("Failed to fetch barber shops")
		return nil, apiErr
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierror.Classify(endpoint, err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := apierror.FromResponse(endpoint, resp, body)
		logger.Error(ctx).Int("status", resp.StatusCode).Str("endpoint", endpoint).Str("payload", apiErr.Body).Msg("Directory fetch returned error status")
		return nil, apiErr
	}

	var decoded fetchResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode shop list: %w", err)
	}

	shops := decoded.BarberShops
	for i := range shops {
		enrich(&shops[i], i)
	}

	logger.Info(ctx).Int("count", len(shops)).Msg("Fetched barber shops from directory")
	return shops, nil
}

// enrich fills client-only presentation fields the backend omits.
// Backend-provided values are left untouched.
func enrich(shop *domain.Shop, index int) {
	if shop.Image == "" {
		shop.Image = shopImages[index%len(shopImages)]
	}
	if shop.BgImage == "" {
		shop.BgImage = shopBgImages[index%len(shopBgImages)]
	}
	if shop.Rating == 0 {
		shop.Rating = float64(int((4.5+rand.Float64()*0.5)*10)) / 10
	}
	if shop.Reviews == 0 {
		shop.Reviews = rand.Intn(100) + 20
	}
	if shop.Description == "" {
		shop.Description = fmt.Sprintf(
			"%s localizada em %s. Profissionais experientes e ambiente aconchegante.",
			shop.ServiceArea, shop.Neighborhood,
		)
	}
}
