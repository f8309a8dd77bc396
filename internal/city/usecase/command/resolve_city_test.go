package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kauelucena/barberhub/internal/city/domain"
	"github.com/kauelucena/barberhub/internal/city/repository"
)

type stubGeocoder struct {
	city  string
	err   error
	calls int
}

func (g *stubGeocoder) CityAt(ctx context.Context, coords domain.Coordinates) (string, error) {
	g.calls++
	return g.city, g.err
}

var served = []string{"Campinas", "Sorocaba"}

func TestResolveCity(t *testing.T) {
	ctx := context.Background()
	coords := &domain.Coordinates{Latitude: -22.9, Longitude: -47.06}

	t.Run("PersistedCityShortCircuitsGeolocation", func(t *testing.T) {
		prefs := repository.NewMemoryPreferenceRepository()
		require.NoError(t, prefs.Save(ctx, "Sorocaba"))
		geocoder := &stubGeocoder{city: "Campinas"}
		handler := NewResolveCityHandler(prefs, geocoder)

		res, err := handler.Handle(ctx, ResolveCityCommand{Coordinates: coords, AvailableCities: served})
		require.NoError(t, err)

		assert.Equal(t, "Sorocaba", res.City)
		assert.Equal(t, domain.SourcePersisted, res.Source)
		assert.Zero(t, geocoder.calls, "geocoder must not be consulted")
	})

	t.Run("GeocodedCityAcceptedWithCanonicalCasing", func(t *testing.T) {
		prefs := repository.NewMemoryPreferenceRepository()
		handler := NewResolveCityHandler(prefs, &stubGeocoder{city: "campinas"})

		res, err := handler.Handle(ctx, ResolveCityCommand{Coordinates: coords, AvailableCities: served})
		require.NoError(t, err)

		assert.Equal(t, "Campinas", res.City)
		assert.Equal(t, domain.SourceGeolocation, res.Source)

		persisted, err := prefs.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Campinas", persisted, "accepted city is persisted")
	})

	t.Run("NoCoordinatesRequiresManualSelection", func(t *testing.T) {
		handler := NewResolveCityHandler(repository.NewMemoryPreferenceRepository(), &stubGeocoder{})

		res, err := handler.Handle(ctx, ResolveCityCommand{AvailableCities: served})
		require.NoError(t, err)

		assert.True(t, res.ManualRequired)
		assert.Empty(t, res.City)
		assert.NotEmpty(t, res.Message)
		assert.Equal(t, served, res.AvailableCities)
	})

	t.Run("GeocoderFailureDegradesToManual", func(t *testing.T) {
		prefs := repository.NewMemoryPreferenceRepository()
		handler := NewResolveCityHandler(prefs, &stubGeocoder{err: errors.New("timeout")})

		res, err := handler.Handle(ctx, ResolveCityCommand{Coordinates: coords, AvailableCities: served})
		require.NoError(t, err)

		assert.True(t, res.ManualRequired)

		persisted, err := prefs.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, persisted, "nothing persisted on failure")
	})

	t.Run("UnservedCityDegradesToManual", func(t *testing.T) {
		prefs := repository.NewMemoryPreferenceRepository()
		handler := NewResolveCityHandler(prefs, &stubGeocoder{city: "Manaus"})

		res, err := handler.Handle(ctx, ResolveCityCommand{Coordinates: coords, AvailableCities: served})
		require.NoError(t, err)

		assert.True(t, res.ManualRequired)
		assert.Contains(t, res.Message, "Manaus")

		persisted, err := prefs.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, persisted)
	})
}

func TestSelectCity(t *testing.T) {
	ctx := context.Background()

	t.Run("MembershipValidatedAndCasingCanonicalized", func(t *testing.T) {
		prefs := repository.NewMemoryPreferenceRepository()
		handler := NewSelectCityHandler(prefs)

		res, err := handler.Handle(ctx, SelectCityCommand{City: "SOROCABA", AvailableCities: served})
		require.NoError(t, err)

		assert.Equal(t, "Sorocaba", res.City)
		assert.Equal(t, domain.SourceManual, res.Source)

		persisted, err := prefs.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Sorocaba", persisted)
	})

	t.Run("UnservedCityRejected", func(t *testing.T) {
		handler := NewSelectCityHandler(repository.NewMemoryPreferenceRepository())

		_, err := handler.Handle(ctx, SelectCityCommand{City: "Manaus", AvailableCities: served})
		require.Error(t, err)
	})

	t.Run("ManualSelectionOverridesPersisted", func(t *testing.T) {
		prefs := repository.NewMemoryPreferenceRepository()
		require.NoError(t, prefs.Save(ctx, "Campinas"))
		handler := NewSelectCityHandler(prefs)

		_, err := handler.Handle(ctx, SelectCityCommand{City: "Sorocaba", AvailableCities: served})
		require.NoError(t, err)

		persisted, err := prefs.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Sorocaba", persisted)
	})
}
