package query

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kauelucena/barberhub/internal/directory/domain"
	favdomain "github.com/kauelucena/barberhub/internal/favorites/domain"
)

func shopFixture(id, name, city string, rating float64) domain.Shop {
	return domain.Shop{
		ID:     id,
		Name:   name,
		City:   city,
		Rating: rating,
	}
}

func TestDeriveViews(t *testing.T) {
	handler := NewDeriveViewsHandler()

	shops := []domain.Shop{
		shopFixture("1", "Barbearia Central", "Campinas", 4.8),
		shopFixture("2", "Navalha de Ouro", "Sorocaba", 4.9),
		shopFixture("3", "Corte Fino", "Campinas", 4.6),
		shopFixture("4", "Estilo Clássico", "campinas", 4.7),
	}

	t.Run("InCityIsCaseInsensitive", func(t *testing.T) {
		views := handler.Handle(DeriveViewsQuery{Shops: shops, City: "Campinas"})

		require.Len(t, views.InCity, 3)
		assert.Equal(t, "1", views.InCity[0].ID)
		assert.Equal(t, "3", views.InCity[1].ID)
		assert.Equal(t, "4", views.InCity[2].ID)
	})

	t.Run("FavoritesIgnoreActiveCity", func(t *testing.T) {
		views := handler.Handle(DeriveViewsQuery{
			Shops:     shops,
			Favorites: favdomain.NewSet("2", "3"),
			City:      "Campinas",
		})

		require.Len(t, views.Favorites, 2)
		assert.Equal(t, "2", views.Favorites[0].ID)
		assert.Equal(t, "3", views.Favorites[1].ID)
	})

	t.Run("StaleFavoriteIDsAreExcluded", func(t *testing.T) {
		views := handler.Handle(DeriveViewsQuery{
			Shops:     shops,
			Favorites: favdomain.NewSet("1", "deleted-shop"),
		})

		require.Len(t, views.Favorites, 1)
		assert.Equal(t, "1", views.Favorites[0].ID)
	})

	t.Run("TopRatedSortedDescending", func(t *testing.T) {
		views := handler.Handle(DeriveViewsQuery{Shops: shops, City: "Campinas"})

		require.Len(t, views.TopRated, 3)
		assert.Equal(t, "1", views.TopRated[0].ID)
		assert.Equal(t, "4", views.TopRated[1].ID)
		assert.Equal(t, "3", views.TopRated[2].ID)
	})

	t.Run("TopRatedKeepsFetchOrderOnTies", func(t *testing.T) {
		tied := []domain.Shop{
			shopFixture("a", "A", "Campinas", 4.5),
			shopFixture("b", "B", "Campinas", 4.5),
			shopFixture("c", "C", "Campinas", 4.5),
		}
		views := handler.Handle(DeriveViewsQuery{Shops: tied, City: "Campinas"})

		require.Len(t, views.TopRated, 3)
		assert.Equal(t, "a", views.TopRated[0].ID)
		assert.Equal(t, "b", views.TopRated[1].ID)
		assert.Equal(t, "c", views.TopRated[2].ID)
	})

	t.Run("TopRatedCappedAtTen", func(t *testing.T) {
		var many []domain.Shop
		for i := 0; i < 15; i++ {
			many = append(many, shopFixture(fmt.Sprintf("s%d", i), "Shop", "Campinas", 4.5+float64(i)*0.01))
		}
		views := handler.Handle(DeriveViewsQuery{Shops: many, City: "Campinas"})

		require.Len(t, views.TopRated, 10)
		assert.Equal(t, "s14", views.TopRated[0].ID)
	})

	t.Run("SearchScopedToActiveCity", func(t *testing.T) {
		views := handler.Handle(DeriveViewsQuery{
			Shops:  shops,
			City:   "Campinas",
			Search: "navalha",
		})

		assert.True(t, views.HasSearch)
		assert.Empty(t, views.Search, "shop from another city must not match")
	})

	t.Run("SearchMatchesNeighborhoodInActiveCityOnly", func(t *testing.T) {
		list := []domain.Shop{{ID: "c1", Name: "Barba Urbana", City: "Campinas", Neighborhood: "Centro"}}

		views := handler.Handle(DeriveViewsQuery{Shops: list, City: "Campinas", Search: "Centro"})
		require.Len(t, views.Search, 1)
		assert.Equal(t, "c1", views.Search[0].ID)

		views = handler.Handle(DeriveViewsQuery{Shops: list, City: "Sorocaba", Search: "Centro"})
		assert.True(t, views.HasSearch)
		assert.Empty(t, views.Search)
	})

	t.Run("SearchWithoutCityMatchesEverywhere", func(t *testing.T) {
		views := handler.Handle(DeriveViewsQuery{Shops: shops, Search: "Navalha"})

		require.Len(t, views.Search, 1)
		assert.Equal(t, "2", views.Search[0].ID)
	})

	t.Run("BlankSearchIsNoSearch", func(t *testing.T) {
		views := handler.Handle(DeriveViewsQuery{Shops: shops, City: "Campinas", Search: "   "})

		assert.False(t, views.HasSearch)
		assert.Empty(t, views.Search)
	})

	t.Run("ViewsAreNeverNil", func(t *testing.T) {
		views := handler.Handle(DeriveViewsQuery{})

		assert.NotNil(t, views.Favorites)
		assert.NotNil(t, views.InCity)
		assert.NotNil(t, views.TopRated)
		assert.NotNil(t, views.Search)
	})
}

func TestAvailableCities(t *testing.T) {
	handler := NewAvailableCitiesHandler()

	t.Run("DistinctCaseInsensitiveFirstSeenCasing", func(t *testing.T) {
		cities := handler.Handle(AvailableCitiesQuery{Shops: []domain.Shop{
			shopFixture("1", "A", "Sorocaba", 0),
			shopFixture("2", "B", "Campinas", 0),
			shopFixture("3", "C", "campinas", 0),
			shopFixture("4", "D", "", 0),
		}})

		assert.Equal(t, []string{"Campinas", "Sorocaba"}, cities)
	})

	t.Run("EmptyDirectory", func(t *testing.T) {
		assert.Empty(t, handler.Handle(AvailableCitiesQuery{}))
	})
}
