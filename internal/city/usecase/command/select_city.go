package command

import (
	"context"
	"fmt"

	"github.com/kauelucena/barberhub/internal/city/domain"
	"github.com/kauelucena/barberhub/pkg/logger"
)

// SelectCityCommand represents a manual city selection
type SelectCityCommand struct {
	City            string
	AvailableCities []string
}

// SelectCityHandler handles manual city selection
type SelectCityHandler struct {
	prefs domain.PreferenceRepository
}

// NewSelectCityHandler creates a new select city handler
func NewSelectCityHandler(prefs domain.PreferenceRepository) *SelectCityHandler {
	return &SelectCityHandler{prefs: prefs}
}

// Handle validates the chosen city against the served cities,
// canonicalizes its casing and persists it. A manual selection always
// overrides the previous value; any prior resolution error state is
// cleared by the successful write.
func (h *SelectCityHandler) Handle(ctx context.Context, cmd SelectCityCommand) (*domain.Resolution, error) {
	if cmd.City == "" {
		return nil, fmt.Errorf("city is required")
	}

	canonical, ok := matchCity(cmd.City, cmd.AvailableCities)
	if !ok {
		return nil, fmt.Errorf("cidade %q não está disponível", cmd.City)
	}

	if err := h.prefs.Save(ctx, canonical); err != nil {
		return nil, fmt.Errorf("failed to persist selected city: %w", err)
	}

	logger.Info(ctx).Str("city", canonical).Msg("Active city selected manually")
	return &domain.Resolution{City: canonical, Source: domain.SourceManual}, nil
}
