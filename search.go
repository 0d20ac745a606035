package keystone

import (
	"github.com/rotisserie/eris"

	"github.com/keystone-gg/keystone/filter"
	"github.com/keystone-gg/keystone/types"
)

// Search represents a search for entities matching a component filter.
// It contains a cache of matched archetypes that is extended incrementally:
// archetypes created after the previous evaluation are the only ones
// rescanned. It is therefore cheaper to reuse a search than to rebuild it
// for every dispatch.
type Search struct {
	world      *World
	filter     filter.ComponentFilter
	archetypes []types.ArchetypeID
	seen       int
}

// Search creates a new search over this world for the given filter.
func (w *World) Search(f filter.ComponentFilter) *Search {
	return &Search{
		world:      w,
		filter:     f,
		archetypes: make([]types.ArchetypeID, 0),
	}
}

type CallbackFn func(types.EntityID) bool

// Each iterates over all entities that match the search, in archetype
// creation order and ascending row order within an archetype. Return false
// from the callback to stop the iteration. Structural mutation of the
// world during iteration fails with ErrConcurrentModification; mutating
// component values in place is allowed.
func (s *Search) Each(callback CallbackFn) error {
	s.world.iterating++
	defer func() { s.world.iterating-- }()
	for _, archID := range s.evaluateSearch() {
		arch := s.world.index.Get(archID)
		entities := arch.Entities()
		for r := 0; r < len(entities); r++ {
			if !callback(entities[r]) {
				return nil
			}
		}
	}
	return nil
}

// Count returns the number of entities that match the search.
func (s *Search) Count() int {
	count := 0
	for _, archID := range s.evaluateSearch() {
		count += s.world.index.Get(archID).Count()
	}
	return count
}

// First returns the first entity that matches the search.
func (s *Search) First() (types.EntityID, error) {
	for _, archID := range s.evaluateSearch() {
		arch := s.world.index.Get(archID)
		if arch.Count() > 0 {
			return arch.Entities()[0], nil
		}
	}
	return types.BadID, eris.Wrap(ErrEntityDoesNotExist, "no entity matches the search")
}

// MustFirst is First for callers that know the search is not empty.
func (s *Search) MustFirst() types.EntityID {
	id, err := s.First()
	if err != nil {
		panic("no entity matches the search")
	}
	return id
}

// Collect returns the ids of every entity that matches the search.
func (s *Search) Collect() []types.EntityID {
	ids := make([]types.EntityID, 0)
	for _, archID := range s.evaluateSearch() {
		ids = append(ids, s.world.index.Get(archID).Entities()...)
	}
	return ids
}

func (s *Search) evaluateSearch() []types.ArchetypeID {
	for it := s.world.index.SearchFrom(s.filter, s.seen); it.HasNext(); {
		s.archetypes = append(s.archetypes, it.Next())
	}
	s.seen = s.world.index.Count()
	return s.archetypes
}

// EachEntity visits every live entity exactly once (the empty query).
func (w *World) EachEntity(callback CallbackFn) error {
	return w.Search(filter.All()).Each(callback)
}
