package domain

import (
	"context"
	"sort"
)

// StorageKey is the fixed key the favorite set is persisted under,
// as a JSON array of shop ids.
const StorageKey = "barbershop-favorites"

// Set is the set of favorited shop identifiers. Favorites are
// user-local bookmarks; they are never synced to the backend.
type Set map[string]struct{}

// NewSet builds a set from a list of shop ids
func NewSet(ids ...string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports membership of a shop id
func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Toggle flips membership of a shop id and reports the new state
func (s Set) Toggle(id string) bool {
	if s.Has(id) {
		delete(s, id)
		return false
	}
	s[id] = struct{}{}
	return true
}

// IDs returns the member ids in sorted order for stable persistence
func (s Set) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Repository defines the contract for favorite set persistence.
// Load tolerates a missing or corrupted stored value by returning an
// empty set, never an error the caller has to branch on.
type Repository interface {
	Load(ctx context.Context) (Set, error)
	Save(ctx context.Context, set Set) error
}
