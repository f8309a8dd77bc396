package query

import (
	"sort"
	"strings"

	"github.com/kauelucena/barberhub/internal/directory/domain"
	favdomain "github.com/kauelucena/barberhub/internal/favorites/domain"
)

// topRatedLimit caps the top-rated carousel
const topRatedLimit = 10

// DeriveViewsQuery represents the query to derive the discovery screen views
type DeriveViewsQuery struct {
	Shops     []domain.Shop
	Favorites favdomain.Set
	City      string
	Search    string
}

// DeriveViewsHandler derives the four read-only shop views. It is a pure
// computation: recomputed from scratch after every state change, so there
// is no ordering dependency between inputs.
type DeriveViewsHandler struct{}

// NewDeriveViewsHandler creates a new derive views handler
func NewDeriveViewsHandler() *DeriveViewsHandler {
	return &DeriveViewsHandler{}
}

// Handle executes the derive views query
func (h *DeriveViewsHandler) Handle(q DeriveViewsQuery) domain.Views {
	views := domain.Views{
		Favorites: []domain.Shop{},
		InCity:    []domain.Shop{},
		TopRated:  []domain.Shop{},
		Search:    []domain.Shop{},
	}

	// Favorites view is city-independent. Stale favorite ids referencing
	// shops no longer in the directory are excluded here but stay in the
	// stored set.
	for _, shop := range q.Shops {
		if q.Favorites.Has(shop.ID) {
			views.Favorites = append(views.Favorites, shop)
		}
	}

	for _, shop := range q.Shops {
		if shop.InCity(q.City) {
			views.InCity = append(views.InCity, shop)
		}
	}

	// Stable sort keeps original fetch order on rating ties
	views.TopRated = append(views.TopRated, views.InCity...)
	sort.SliceStable(views.TopRated, func(i, j int) bool {
		return views.TopRated[i].Rating > views.TopRated[j].Rating
	})
	if len(views.TopRated) > topRatedLimit {
		views.TopRated = views.TopRated[:topRatedLimit]
	}

	search := strings.TrimSpace(q.Search)
	if search == "" {
		return views
	}

	views.HasSearch = true
	for _, shop := range q.Shops {
		if !shop.Matches(search) {
			continue
		}
		// Search is scoped to the active city when one is set
		if q.City != "" && !shop.InCity(q.City) {
			continue
		}
		views.Search = append(views.Search, shop)
	}

	return views
}
