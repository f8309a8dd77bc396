package command

import (
	"context"
	"fmt"

	"github.com/kauelucena/barberhub/internal/city/domain"
)

// ClearCityHandler removes the persisted city choice, returning the app
// to the no-active-city state where the selection modal is the only
// actionable UI
type ClearCityHandler struct {
	prefs domain.PreferenceRepository
}

// NewClearCityHandler creates a new clear city handler
func NewClearCityHandler(prefs domain.PreferenceRepository) *ClearCityHandler {
	return &ClearCityHandler{prefs: prefs}
}

// Handle clears the persisted city
func (h *ClearCityHandler) Handle(ctx context.Context) error {
	if err := h.prefs.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear city preference: %w", err)
	}
	return nil
}
