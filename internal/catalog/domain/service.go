package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Price is a service price in BRL. Some backend variants serialize the
// price as a quoted string, so the wire type is normalized to a number
// here and callers can always do arithmetic on it.
type Price float64

// UnmarshalJSON accepts both a JSON number and a numeric string
func (p *Price) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*p = 0
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid price: %w", err)
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("invalid price %q: %w", s, err)
		}
		*p = Price(value)
		return nil
	}

	var value float64
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("invalid price: %w", err)
	}
	*p = Price(value)
	return nil
}

// MarshalJSON always emits a JSON number
func (p Price) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(p))
}

var brlPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders the price as Brazilian currency, e.g. "R$ 45,00"
func (p Price) FormatBRL() string {
	return brlPrinter.Sprintf("R$ %.2f", float64(p))
}

// Service represents a priced offering belonging to one barbershop
type Service struct {
	ID           string `json:"id"`
	Name         string `json:"nome"`
	Description  string `json:"descricao"`
	Price        Price  `json:"preco"`
	BarberShopID string `json:"barberShopId"`
	CreatedAt    string `json:"createdAt,omitempty"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}

// ServiceInput is the payload for creating a service
type ServiceInput struct {
	Name         string `json:"nome"`
	Description  string `json:"descricao"`
	Price        Price  `json:"preco"`
	BarberShopID string `json:"barberShopId"`
}

// Validate checks the required service fields
func (in ServiceInput) Validate() error {
	if in.Name == "" {
		return fmt.Errorf("nome is required")
	}
	if in.Description == "" {
		return fmt.Errorf("descricao is required")
	}
	if in.Price <= 0 {
		return fmt.Errorf("preco must be greater than zero")
	}
	if in.BarberShopID == "" {
		return fmt.Errorf("barberShopId is required")
	}
	return nil
}

// Gateway defines the contract for the remote service endpoints
type Gateway interface {
	ListByShop(ctx context.Context, shopID string) ([]Service, error)
	Create(ctx context.Context, input ServiceInput) (*Service, error)
	Update(ctx context.Context, service Service) (*Service, error)
	Delete(ctx context.Context, id, shopID string) error
}
