package domain

import (
	"context"
	"fmt"
)

// sessionKeyPrefix prefixes the per-shop session blob storage key
const sessionKeyPrefix = "barberShop:"

// SessionKey builds the storage key for a shop's session blob
func SessionKey(shopID string) string {
	return sessionKeyPrefix + shopID
}

// BarberShop is the authenticated shop account blob returned by the
// backend on login and persisted for the session lifetime
type BarberShop struct {
	ID           string `json:"id"`
	Name         string `json:"nome"`
	Email        string `json:"email"`
	ServiceArea  string `json:"area_atendimento"`
	PostalCode   string `json:"CEP"`
	State        string `json:"estado"`
	City         string `json:"cidade"`
	Neighborhood string `json:"bairro"`
	Street       string `json:"logradouro"`
	Number       string `json:"numero"`
	Complement   string `json:"complemento"`
	CreatedAt    string `json:"createdAt"`
}

// Credentials is a login attempt
type Credentials struct {
	Email    string
	Password string
}

// RegisterInput is the payload for creating a shop account
type RegisterInput struct {
	Name         string `json:"nome"`
	Email        string `json:"email"`
	Password     string `json:"senha"`
	ServiceArea  string `json:"area_atendimento"`
	PostalCode   string `json:"CEP"`
	State        string `json:"estado"`
	City         string `json:"cidade"`
	Neighborhood string `json:"bairro"`
	Street       string `json:"logradouro"`
	Number       string `json:"numero"`
	Complement   string `json:"complemento,omitempty"`
}

// Validate checks the required registration fields
func (in RegisterInput) Validate() error {
	required := map[string]string{
		"nome":             in.Name,
		"email":            in.Email,
		"senha":            in.Password,
		"area_atendimento": in.ServiceArea,
		"CEP":              in.PostalCode,
		"estado":           in.State,
		"cidade":           in.City,
		"bairro":           in.Neighborhood,
		"logradouro":       in.Street,
		"numero":           in.Number,
	}
	for field, value := range required {
		if value == "" {
			return fmt.Errorf("%s is required", field)
		}
	}
	return nil
}

// Client defines the contract for the backend auth and registration endpoints
type Client interface {
	Login(ctx context.Context, creds Credentials) (*BarberShop, error)
	Register(ctx context.Context, input RegisterInput) (*BarberShop, error)
}

// SessionRepository defines the contract for session blob persistence
type SessionRepository interface {
	Save(ctx context.Context, shop *BarberShop) error
	Load(ctx context.Context, shopID string) (*BarberShop, error)
	Delete(ctx context.Context, shopID string) error
}

// PostalAddress is the address auto-filled from a postal-code lookup
type PostalAddress struct {
	State        string `json:"estado"`
	City         string `json:"cidade"`
	Neighborhood string `json:"bairro"`
	Street       string `json:"logradouro"`
}

// PostalLookup resolves an 8-digit CEP to address fields
type PostalLookup interface {
	Lookup(ctx context.Context, cep string) (*PostalAddress, error)
}
