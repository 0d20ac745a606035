package keystone

import (
	"github.com/keystone-gg/keystone/storage"
	"github.com/keystone-gg/keystone/types"
)

// Each1 invokes fn once for every entity that has component A, handing it a
// pointer into A's live column cell for that entity. Archetypes are visited
// in creation order; rows within an archetype in strictly ascending order.
// Return false from fn to stop. Writing through the pointers is the
// supported in-iteration mutation; structural operations fail with
// ErrConcurrentModification until the dispatch returns.
func Each1[A any](w *World, fn func(types.EntityID, *A) bool) error {
	ca, err := storage.Register[A]()
	if err != nil {
		return err
	}
	q := types.NewSignature(ca.ID())
	w.iterating++
	defer func() { w.iterating-- }()
	for _, arch := range w.index.Archetypes() {
		if !arch.Signature().ContainsAll(q) {
			continue
		}
		sa, err := columnSlice[A](arch, ca.ID())
		if err != nil {
			return err
		}
		entities := arch.Entities()
		for r := range entities {
			if !fn(entities[r], &sa[r]) {
				return nil
			}
		}
	}
	return nil
}

// Each2 is Each1 over entities that have both A and B. If A and B name the
// same component type, both pointers alias the same cell.
func Each2[A, B any](w *World, fn func(types.EntityID, *A, *B) bool) error {
	ca, err := storage.Register[A]()
	if err != nil {
		return err
	}
	cb, err := storage.Register[B]()
	if err != nil {
		return err
	}
	q := types.NewSignature(ca.ID(), cb.ID())
	w.iterating++
	defer func() { w.iterating-- }()
	for _, arch := range w.index.Archetypes() {
		if !arch.Signature().ContainsAll(q) {
			continue
		}
		sa, err := columnSlice[A](arch, ca.ID())
		if err != nil {
			return err
		}
		sb, err := columnSlice[B](arch, cb.ID())
		if err != nil {
			return err
		}
		entities := arch.Entities()
		for r := range entities {
			if !fn(entities[r], &sa[r], &sb[r]) {
				return nil
			}
		}
	}
	return nil
}

// Each3 is Each1 over entities that have A, B and C.
func Each3[A, B, C any](w *World, fn func(types.EntityID, *A, *B, *C) bool) error {
	ca, err := storage.Register[A]()
	if err != nil {
		return err
	}
	cb, err := storage.Register[B]()
	if err != nil {
		return err
	}
	cc, err := storage.Register[C]()
	if err != nil {
		return err
	}
	q := types.NewSignature(ca.ID(), cb.ID(), cc.ID())
	w.iterating++
	defer func() { w.iterating-- }()
	for _, arch := range w.index.Archetypes() {
		if !arch.Signature().ContainsAll(q) {
			continue
		}
		sa, err := columnSlice[A](arch, ca.ID())
		if err != nil {
			return err
		}
		sb, err := columnSlice[B](arch, cb.ID())
		if err != nil {
			return err
		}
		sc, err := columnSlice[C](arch, cc.ID())
		if err != nil {
			return err
		}
		entities := arch.Entities()
		for r := range entities {
			if !fn(entities[r], &sa[r], &sb[r], &sc[r]) {
				return nil
			}
		}
	}
	return nil
}

// Each4 is Each1 over entities that have A, B, C and D.
func Each4[A, B, C, D any](w *World, fn func(types.EntityID, *A, *B, *C, *D) bool) error {
	ca, err := storage.Register[A]()
	if err != nil {
		return err
	}
	cb, err := storage.Register[B]()
	if err != nil {
		return err
	}
	cc, err := storage.Register[C]()
	if err != nil {
		return err
	}
	cd, err := storage.Register[D]()
	if err != nil {
		return err
	}
	q := types.NewSignature(ca.ID(), cb.ID(), cc.ID(), cd.ID())
	w.iterating++
	defer func() { w.iterating-- }()
	for _, arch := range w.index.Archetypes() {
		if !arch.Signature().ContainsAll(q) {
			continue
		}
		sa, err := columnSlice[A](arch, ca.ID())
		if err != nil {
			return err
		}
		sb, err := columnSlice[B](arch, cb.ID())
		if err != nil {
			return err
		}
		sc, err := columnSlice[C](arch, cc.ID())
		if err != nil {
			return err
		}
		sd, err := columnSlice[D](arch, cd.ID())
		if err != nil {
			return err
		}
		entities := arch.Entities()
		for r := range entities {
			if !fn(entities[r], &sa[r], &sb[r], &sc[r], &sd[r]) {
				return nil
			}
		}
	}
	return nil
}

func columnSlice[T any](arch *storage.Archetype, id types.ComponentID) ([]T, error) {
	col, err := arch.Column(id)
	if err != nil {
		return nil, err
	}
	return storage.Slice[T](col)
}
