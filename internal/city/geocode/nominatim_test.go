package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kauelucena/barberhub/internal/city/domain"
)

func geocodeServer(t *testing.T, payload string, status int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.WriteHeader(status)
		w.Write([]byte(payload))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCityAt(t *testing.T) {
	ctx := context.Background()
	coords := domain.Coordinates{Latitude: -22.9, Longitude: -47.06}

	t.Run("CityFieldPreferred", func(t *testing.T) {
		server := geocodeServer(t, `{"address":{"city":"Campinas","town":"Valinhos","county":"Região de Campinas"}}`, http.StatusOK)
		client := New(server.URL, time.Second)

		name, err := client.CityAt(ctx, coords)
		require.NoError(t, err)
		assert.Equal(t, "Campinas", name)
	})

	t.Run("FallbackOrderTownVillageCounty", func(t *testing.T) {
		cases := []struct {
			payload string
			want    string
		}{
			{`{"address":{"town":"Valinhos","village":"Vila","county":"Condado"}}`, "Valinhos"},
			{`{"address":{"village":"Vila","county":"Condado"}}`, "Vila"},
			{`{"address":{"county":"Condado"}}`, "Condado"},
		}
		for _, tc := range cases {
			server := geocodeServer(t, tc.payload, http.StatusOK)
			client := New(server.URL, time.Second)

			name, err := client.CityAt(ctx, coords)
			require.NoError(t, err)
			assert.Equal(t, tc.want, name)
		}
	})

	t.Run("NoCityLikeFieldIsError", func(t *testing.T) {
		server := geocodeServer(t, `{"address":{"road":"Av. Brasil"}}`, http.StatusOK)
		client := New(server.URL, time.Second)

		_, err := client.CityAt(ctx, coords)
		require.Error(t, err)
	})

	t.Run("ErrorStatusIsError", func(t *testing.T) {
		server := geocodeServer(t, `{"error":"rate limited"}`, http.StatusTooManyRequests)
		client := New(server.URL, time.Second)

		_, err := client.CityAt(ctx, coords)
		require.Error(t, err)
	})
}
