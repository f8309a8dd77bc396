package postal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/kauelucena/barberhub/internal/account/domain"
	"github.com/kauelucena/barberhub/pkg/logger"
)

var nonDigits = regexp.MustCompile(`\D`)

// Client resolves Brazilian postal codes through the ViaCEP service
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new ViaCEP client
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

type viaCEPResponse struct {
	UF         string `json:"uf"`
	Localidade string `json:"localidade"`
	Bairro     string `json:"bairro"`
	Logradouro string `json:"logradouro"`
	Erro       bool   `json:"erro"`
}

// Lookup resolves an 8-digit CEP to address fields. Formatting
// characters in the input are stripped first.
func (c *Client) Lookup(ctx context.Context, cep string) (*domain.PostalAddress, error) {
	clean := nonDigits.ReplaceAllString(cep, "")
	if len(clean) != 8 {
		return nil, fmt.Errorf("CEP must have 8 digits, got %q", cep)
	}

	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, clean)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEP request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error(ctx).Err(err).Str("cep", clean).Msg("CEP lookup failed")
		return nil, fmt.Errorf("CEP lookup failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read CEP response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("CEP lookup returned status %d", resp.StatusCode)
	}

	var decoded viaCEPResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode CEP response: %w", err)
	}
	if decoded.Erro {
		return nil, fmt.Errorf("CEP %s not found", clean)
	}

	return &domain.PostalAddress{
		State:        decoded.UF,
		City:         decoded.Localidade,
		Neighborhood: decoded.Bairro,
		Street:       decoded.Logradouro,
	}, nil
}
