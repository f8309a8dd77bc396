package query

import (
	"context"
	"fmt"

	"github.com/kauelucena/barberhub/internal/city/domain"
)

// ActiveCityHandler returns the currently persisted active city
type ActiveCityHandler struct {
	prefs domain.PreferenceRepository
}

// NewActiveCityHandler creates a new active city handler
func NewActiveCityHandler(prefs domain.PreferenceRepository) *ActiveCityHandler {
	return &ActiveCityHandler{prefs: prefs}
}

// Handle returns the active city, empty when none has been accepted yet
func (h *ActiveCityHandler) Handle(ctx context.Context) (string, error) {
	city, err := h.prefs.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load active city: %w", err)
	}
	return city, nil
}
