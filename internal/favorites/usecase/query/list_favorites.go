package query

import (
	"context"
	"fmt"

	"github.com/kauelucena/barberhub/internal/favorites/domain"
)

// ListFavoritesHandler handles the list favorites query
type ListFavoritesHandler struct {
	repo domain.Repository
}

// NewListFavoritesHandler creates a new list favorites handler
func NewListFavoritesHandler(repo domain.Repository) *ListFavoritesHandler {
	return &ListFavoritesHandler{repo: repo}
}

// Handle returns the persisted favorite shop ids
func (h *ListFavoritesHandler) Handle(ctx context.Context) ([]string, error) {
	set, err := h.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}
	return set.IDs(), nil
}
