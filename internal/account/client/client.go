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

	"github.com/kauelucena/barberhub/internal/account/domain"
	"github.com/kauelucena/barberhub/pkg/apierror"
	"github.com/kauelucena/barberhub/pkg/logger"
)

// Client is the REST client for the backend auth and registration endpoints
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new account client
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

type loginResponse struct {
	BarberShop domain.BarberShop `json:"barberShop"`
}

// Login authenticates a shop account against the backend
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (*domain.BarberShop, error) {
	endpoint := "POST /barbearias/login"

	body, err := c.post(ctx, endpoint, "/barbearias/login", loginRequest{
		Email:    creds.Email,
		Password: creds.Password,
	})
	if err != nil {
		return nil, err
	}

	var decoded loginResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode login response: %w", err)
	}
	if decoded.BarberShop.ID == "" {
		return nil, fmt.Errorf("login response missing barber shop")
	}
	return &decoded.BarberShop, nil
}

// Register creates a new shop account
func (c *Client) Register(ctx context.Context, input domain.RegisterInput) (*domain.BarberShop, error) {
	endpoint := "POST /barbearias/register"

	body, err := c.post(ctx, endpoint, "/barbearias/register", input)
	if err != nil {
		return nil, err
	}

	var created domain.BarberShop
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("failed to decode register response: %w", err)
	}
	return &created, nil
}

func (c *Client) post(ctx context.Context, endpoint, path string, payload interface{}) ([]byte, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		apiErr := apierror.Classify(endpoint, err)
		logger.Error(ctx).Err(err).Str("endpoint", endpoint).Str("kind", apiErr.Kind.String()).Msg("Account request failed")
		return nil, apiErr
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierror.Classify(endpoint, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := apierror.FromResponse(endpoint, resp, body)
		logger.Error(ctx).Int("status", resp.StatusCode).Str("endpoint", endpoint).Str("payload", apiErr.Body).Msg("Account request returned error status")
		return nil, apiErr
	}

	return body, nil
}
