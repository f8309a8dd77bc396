package query

import (
	"sort"
	"strings"

	"github.com/kauelucena/barberhub/internal/directory/domain"
)

// AvailableCitiesQuery represents the query for the distinct set of
// cities served by the directory
type AvailableCitiesQuery struct {
	Shops []domain.Shop
}

// AvailableCitiesHandler handles the available cities query
type AvailableCitiesHandler struct{}

// NewAvailableCitiesHandler creates a new available cities handler
func NewAvailableCitiesHandler() *AvailableCitiesHandler {
	return &AvailableCitiesHandler{}
}

// Handle returns the distinct city names found in the shop list, sorted
// ascending. The first-seen casing of each city is kept as canonical.
func (h *AvailableCitiesHandler) Handle(q AvailableCitiesQuery) []string {
	seen := make(map[string]string)
	for _, shop := range q.Shops {
		if shop.City == "" {
			continue
		}
		key := strings.ToLower(shop.City)
		if _, ok := seen[key]; !ok {
			seen[key] = shop.City
		}
	}

	cities := make([]string, 0, len(seen))
	for _, city := range seen {
		cities = append(cities, city)
	}
	sort.Slice(cities, func(i, j int) bool {
		return strings.ToLower(cities[i]) < strings.ToLower(cities[j])
	})
	return cities
}
