package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/kauelucena/barberhub/internal/catalog/domain"
	"github.com/kauelucena/barberhub/pkg/apierror"
	"github.com/kauelucena/barberhub/pkg/logger"
)

// Client is the REST client for the remote service endpoints
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new service endpoints client
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// do executes a request and returns the response body, classifying every
// failure at this boundary so callers branch on error kind only.
func (c *Client) do(ctx context.Context, method, path string, payload interface{}) ([]byte, error) {
	endpoint := method + " " + path

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		apiErr := apierror.Classify(endpoint, err)
		logger.Error(ctx).Err(err).Str("endpoint", endpoint).Str("kind", apiErr.Kind.String()).Msg("Service request failed")
		return nil, apiErr
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierror.Classify(endpoint, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := apierror.FromResponse(endpoint, resp, respBody)
		logger.Error(ctx).Int("status", resp.StatusCode).Str("endpoint", endpoint).Str("payload", apiErr.Body).Msg("Service request returned error status")
		return nil, apiErr
	}

	return respBody, nil
}

// ListByShop fetches the services of one barbershop
func (c *Client) ListByShop(ctx context.Context, shopID string) ([]domain.Service, error) {
	body, err := c.do(ctx, http.MethodGet, "/servicos/"+shopID, nil)
	if err != nil {
		return nil, err
	}

	var services []domain.Service
	if err := json.Unmarshal(body, &services); err != nil {
		return nil, fmt.Errorf("failed to decode service list: %w", err)
	}
	return services, nil
}

// Create creates a new service
func (c *Client) Create(ctx context.Context, input domain.ServiceInput) (*domain.Service, error) {
	body, err := c.do(ctx, http.MethodPost, "/servicos", input)
	if err != nil {
		return nil, err
	}

	var created domain.Service
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("failed to decode created service: %w", err)
	}
	return &created, nil
}

// Update updates an existing service
func (c *Client) Update(ctx context.Context, service domain.Service) (*domain.Service, error) {
	body, err := c.do(ctx, http.MethodPut, "/servicos", service)
	if err != nil {
		return nil, err
	}

	var updated domain.Service
	if err := json.Unmarshal(body, &updated); err != nil {
		return nil, fmt.Errorf("failed to decode updated service: %w", err)
	}
	return &updated, nil
}

// Delete deletes a service. The backend expects the identifiers in the
// request body, not the path.
func (c *Client) Delete(ctx context.Context, id, shopID string) error {
	payload := map[string]string{"id": id, "barberShopId": shopID}
	_, err := c.do(ctx, http.MethodDelete, "/servicos", payload)
	return err
}
