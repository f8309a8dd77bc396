package command

import (
	"context"
	"fmt"

	"github.com/kauelucena/barberhub/internal/favorites/domain"
)

// ToggleFavoriteCommand represents the command to flip a shop's
// favorite state
type ToggleFavoriteCommand struct {
	ShopID string
}

// ToggleFavoriteResult reports the outcome of a toggle
type ToggleFavoriteResult struct {
	ShopID     string `json:"shopId"`
	IsFavorite bool   `json:"isFavorite"`
	Total      int    `json:"total"`
}

// ToggleFavoriteHandler handles the toggle favorite command
type ToggleFavoriteHandler struct {
	repo domain.Repository
}

// NewToggleFavoriteHandler creates a new toggle favorite handler
func NewToggleFavoriteHandler(repo domain.Repository) *ToggleFavoriteHandler {
	return &ToggleFavoriteHandler{repo: repo}
}

// Handle flips membership of the shop id and persists the full set
// immediately. Toggling twice restores the original stored state.
func (h *ToggleFavoriteHandler) Handle(ctx context.Context, cmd ToggleFavoriteCommand) (*ToggleFavoriteResult, error) {
	if cmd.ShopID == "" {
		return nil, fmt.Errorf("shop id is required")
	}

	set, err := h.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}

	isFavorite := set.Toggle(cmd.ShopID)

	if err := h.repo.Save(ctx, set); err != nil {
		return nil, fmt.Errorf("failed to persist favorites: %w", err)
	}

	return &ToggleFavoriteResult{
		ShopID:     cmd.ShopID,
		IsFavorite: isFavorite,
		Total:      len(set),
	}, nil
}
