package storage

import (
	"github.com/keystone-gg/keystone/filter"
	"github.com/keystone-gg/keystone/types"
)

// Index owns every archetype of a world, keyed by signature. Archetypes are
// dense in creation order and are never deleted, so *Archetype addresses
// stay stable for the world's lifetime.
type Index struct {
	archetypes  []*Archetype
	bySignature map[types.Signature]*Archetype
}

func NewIndex() *Index {
	return &Index{
		archetypes:  make([]*Archetype, 0),
		bySignature: make(map[types.Signature]*Archetype),
	}
}

// Count returns the number of archetypes ever created.
func (ix *Index) Count() int {
	return len(ix.archetypes)
}

// Get returns the archetype with the given dense id.
func (ix *Index) Get(id types.ArchetypeID) *Archetype {
	return ix.archetypes[id]
}

// Lookup returns the archetype for a signature, if one exists.
func (ix *Index) Lookup(sig types.Signature) (*Archetype, bool) {
	a, ok := ix.bySignature[sig]
	return a, ok
}

// GetOrCreate returns the archetype for the signature, creating it on miss
// with columns for each component in comps (ascending ComponentID order).
// created reports whether a new archetype was built.
func (ix *Index) GetOrCreate(sig types.Signature, comps []types.ComponentType) (arch *Archetype, created bool) {
	if a, ok := ix.bySignature[sig]; ok {
		return a, false
	}
	a := NewArchetype(types.ArchetypeID(len(ix.archetypes)), sig, comps)
	ix.archetypes = append(ix.archetypes, a)
	ix.bySignature[sig] = a
	return a, true
}

// Archetypes returns all archetypes in creation order. The slice must not
// be mutated by callers.
func (ix *Index) Archetypes() []*Archetype {
	return ix.archetypes
}

// SearchFrom returns an iterator over the archetypes with index >= start
// whose signature matches the filter. Search caches pass their last seen
// archetype count as start so only newly created archetypes are rescanned.
func (ix *Index) SearchFrom(f filter.ComponentFilter, start int) *ArchetypeIterator {
	it := &ArchetypeIterator{Current: 0, Values: []types.ArchetypeID{}}
	for i := start; i < len(ix.archetypes); i++ {
		if f.Matches(ix.archetypes[i].signature) {
			it.Values = append(it.Values, ix.archetypes[i].id)
		}
	}
	return it
}
