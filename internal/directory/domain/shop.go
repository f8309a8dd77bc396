package domain

import (
	"context"
	"strings"
)

// Shop represents a barbershop record from the remote directory.
// Records are read-only for the app; rating, reviews, description and
// images may be synthesized by the client when the backend omits them.
type Shop struct {
	ID           string  `json:"id"`
	Name         string  `json:"nome"`
	Email        string  `json:"email"`
	ServiceArea  string  `json:"area_atendimento"`
	PostalCode   string  `json:"CEP"`
	State        string  `json:"estado"`
	City         string  `json:"cidade"`
	Neighborhood string  `json:"bairro"`
	Street       string  `json:"logradouro"`
	Number       string  `json:"numero"`
	Complement   string  `json:"complemento"`
	CreatedAt    string  `json:"createdAt"`
	Rating       float64 `json:"rating"`
	Reviews      int     `json:"reviews"`
	Description  string  `json:"description"`
	Image        string  `json:"image,omitempty"`
	BgImage      string  `json:"bgImage,omitempty"`
}

// InCity reports whether the shop belongs to the given city,
// compared case-insensitively.
func (s Shop) InCity(city string) bool {
	return city != "" && strings.EqualFold(s.City, city)
}

// Matches reports whether the shop matches free-text search input.
// Name, city, neighborhood and service area are checked as
// case-insensitive substrings.
func (s Shop) Matches(text string) bool {
	needle := strings.ToLower(text)
	if needle == "" {
		return false
	}
	return strings.Contains(strings.ToLower(s.Name), needle) ||
		strings.Contains(strings.ToLower(s.City), needle) ||
		strings.Contains(strings.ToLower(s.Neighborhood), needle) ||
		(s.ServiceArea != "" && strings.Contains(strings.ToLower(s.ServiceArea), needle))
}

// Views holds the derived read-only shop views for the discovery screen
type Views struct {
	Favorites []Shop `json:"favorites"`
	InCity    []Shop `json:"inCity"`
	TopRated  []Shop `json:"topRated"`
	Search    []Shop `json:"search"`
	HasSearch bool   `json:"hasSearch"`
}

// Client defines the contract for the remote shop directory
type Client interface {
	FetchBarberShops(ctx context.Context) ([]Shop, error)
}
