package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/kauelucena/barberhub/internal/city/domain"
	"github.com/kauelucena/barberhub/pkg/logger"
)

// ResolveCityCommand represents the command to resolve the active city.
// Coordinates are nil when the device denied or failed geolocation.
type ResolveCityCommand struct {
	Coordinates     *domain.Coordinates
	AvailableCities []string
}

// ResolveCityHandler resolves the active city in priority order:
// persisted selection, reverse-geocoded device position, manual choice.
type ResolveCityHandler struct {
	prefs    domain.PreferenceRepository
	geocoder domain.ReverseGeocoder
}

// NewResolveCityHandler creates a new resolve city handler
func NewResolveCityHandler(prefs domain.PreferenceRepository, geocoder domain.ReverseGeocoder) *ResolveCityHandler {
	return &ResolveCityHandler{prefs: prefs, geocoder: geocoder}
}

// Handle executes the resolve city command. Geolocation failure is never
// terminal: every failure path degrades to manual selection with a
// user-facing message and the sorted city list.
func (h *ResolveCityHandler) Handle(ctx context.Context, cmd ResolveCityCommand) (*domain.Resolution, error) {
	// A previously persisted city wins outright and skips geolocation
	persisted, err := h.prefs.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load persisted city: %w", err)
	}
	if persisted != "" {
		return &domain.Resolution{City: persisted, Source: domain.SourcePersisted}, nil
	}

	if cmd.Coordinates == nil {
		return h.manualRequired(cmd,
			"Não foi possível obter sua localização. Por favor, selecione sua cidade."), nil
	}

	name, err := h.geocoder.CityAt(ctx, *cmd.Coordinates)
	if err != nil {
		logger.Warn(ctx).Err(err).Msg("Reverse geocoding failed, degrading to manual selection")
		return h.manualRequired(cmd,
			"Não foi possível identificar sua cidade automaticamente. Por favor, selecione sua cidade."), nil
	}

	canonical, ok := matchCity(name, cmd.AvailableCities)
	if !ok {
		logger.Info(ctx).Str("geocoded_city", name).Msg("Geocoded city is not served, degrading to manual selection")
		return h.manualRequired(cmd,
			fmt.Sprintf("Ainda não atendemos %s. Por favor, selecione uma cidade disponível.", name)), nil
	}

	if err := h.prefs.Save(ctx, canonical); err != nil {
		return nil, fmt.Errorf("failed to persist resolved city: %w", err)
	}

	logger.Info(ctx).Str("city", canonical).Msg("Active city resolved from geolocation")
	return &domain.Resolution{City: canonical, Source: domain.SourceGeolocation}, nil
}

func (h *ResolveCityHandler) manualRequired(cmd ResolveCityCommand, message string) *domain.Resolution {
	return &domain.Resolution{
		Source:          domain.SourceNone,
		ManualRequired:  true,
		Message:         message,
		AvailableCities: cmd.AvailableCities,
	}
}

// matchCity finds the canonical casing of name within the served cities,
// compared case-insensitively
func matchCity(name string, cities []string) (string, bool) {
	for _, city := range cities {
		if strings.EqualFold(city, name) {
			return city, true
		}
	}
	return "", false
}
