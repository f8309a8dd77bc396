package postal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	ctx := context.Background()

	t.Run("StripsFormattingAndResolves", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/ws/13010000/json/", r.URL.Path)
			w.Write([]byte(`{"uf":"SP","localidade":"Campinas","bairro":"Centro","logradouro":"Rua Regente Feijó"}`))
		}))
		defer server.Close()
		client := New(server.URL, time.Second)

		addr, err := client.Lookup(ctx, "13010-000")
		require.NoError(t, err)

		assert.Equal(t, "SP", addr.State)
		assert.Equal(t, "Campinas", addr.City)
		assert.Equal(t, "Centro", addr.Neighborhood)
		assert.Equal(t, "Rua Regente Feijó", addr.Street)
	})

	t.Run("UnknownCEPIsError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"erro":true}`))
		}))
		defer server.Close()
		client := New(server.URL, time.Second)

		_, err := client.Lookup(ctx, "99999999")
		require.Error(t, err)
	})

	t.Run("ShortCEPRejectedWithoutRequest", func(t *testing.T) {
		client := New("http://invalid.test", time.Second)

		_, err := client.Lookup(ctx, "1301")
		require.Error(t, err)
	})
}
