package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kauelucena/barberhub/internal/favorites/repository"
)

func TestToggleFavorite(t *testing.T) {
	ctx := context.Background()

	t.Run("AddThenRemoveRestoresStoredState", func(t *testing.T) {
		repo := repository.NewMemoryFavoriteRepository()
		repo.Seed(`["1","3"]`)
		handler := NewToggleFavoriteHandler(repo)

		result, err := handler.Handle(ctx, ToggleFavoriteCommand{ShopID: "2"})
		require.NoError(t, err)
		assert.True(t, result.IsFavorite)
		assert.Equal(t, 3, result.Total)

		raw, ok := repo.Raw()
		require.True(t, ok)
		assert.JSONEq(t, `["1","2","3"]`, raw)

		result, err = handler.Handle(ctx, ToggleFavoriteCommand{ShopID: "2"})
		require.NoError(t, err)
		assert.False(t, result.IsFavorite)
		assert.Equal(t, 2, result.Total)

		raw, ok = repo.Raw()
		require.True(t, ok)
		assert.JSONEq(t, `["1","3"]`, raw)
	})

	t.Run("FirstToggleCreatesStoredArray", func(t *testing.T) {
		repo := repository.NewMemoryFavoriteRepository()
		handler := NewToggleFavoriteHandler(repo)

		result, err := handler.Handle(ctx, ToggleFavoriteCommand{ShopID: "9"})
		require.NoError(t, err)
		assert.True(t, result.IsFavorite)

		raw, ok := repo.Raw()
		require.True(t, ok)
		assert.JSONEq(t, `["9"]`, raw)
	})

	t.Run("MalformedStoredPayloadFallsBackToEmpty", func(t *testing.T) {
		repo := repository.NewMemoryFavoriteRepository()
		repo.Seed(`{"not":"an array"}`)
		handler := NewToggleFavoriteHandler(repo)

		result, err := handler.Handle(ctx, ToggleFavoriteCommand{ShopID: "5"})
		require.NoError(t, err)
		assert.True(t, result.IsFavorite)
		assert.Equal(t, 1, result.Total)

		raw, ok := repo.Raw()
		require.True(t, ok)
		assert.JSONEq(t, `["5"]`, raw, "rewritten as a well-formed array")
	})

	t.Run("EmptyShopIDRejected", func(t *testing.T) {
		handler := NewToggleFavoriteHandler(repository.NewMemoryFavoriteRepository())

		_, err := handler.Handle(ctx, ToggleFavoriteCommand{})
		require.Error(t, err)
	})
}
