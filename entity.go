package keystone

import (
	"github.com/rotisserie/eris"

	"github.com/keystone-gg/keystone/storage"
	"github.com/keystone-gg/keystone/types"
)

// AddComponentTo migrates the entity into the archetype that additionally
// stores T, zero-constructing the new cell. If the entity already has T
// this is a structural no-op and the current value is left untouched.
func AddComponentTo[T any](w *World, id types.EntityID) error {
	ct, err := storage.Register[T]()
	if err != nil {
		return err
	}
	rec, ok := w.records[id]
	if !ok {
		return eris.Wrapf(ErrEntityDoesNotExist, "add component %s to entity %d", ct.Name(), id)
	}
	if rec.arch.HasComponent(ct.ID()) {
		return nil
	}
	if w.iterating > 0 {
		return eris.Wrapf(ErrConcurrentModification, "add component %s", ct.Name())
	}
	if err := w.migrate(rec, rec.arch.Signature().With(ct.ID())); err != nil {
		return err
	}
	w.logger.Debug().
		Uint64("entity_id", uint64(id)).
		Str("component_name", ct.Name()).
		Msg("component added")
	return nil
}

// SetComponent sets component data on the entity, adding T first if the
// entity does not yet have it. Overwriting an existing value is an in-place
// write and is allowed during query dispatch.
func SetComponent[T any](w *World, id types.EntityID, component *T) error {
	ct, err := storage.Register[T]()
	if err != nil {
		return err
	}
	rec, ok := w.records[id]
	if !ok {
		return eris.Wrapf(ErrEntityDoesNotExist, "set component %s on entity %d", ct.Name(), id)
	}
	if !rec.arch.HasComponent(ct.ID()) {
		if err := AddComponentTo[T](w, id); err != nil {
			return err
		}
	}
	col, err := rec.arch.Column(ct.ID())
	if err != nil {
		return err
	}
	cell, err := storage.Cell[T](col, rec.row)
	if err != nil {
		return err
	}
	*cell = *component
	w.logger.Debug().
		Uint64("entity_id", uint64(id)).
		Str("component_name", ct.Name()).
		Msg("entity updated")
	return nil
}

// GetComponent returns a pointer to the entity's T cell. The pointer is
// invalidated by the next mutating operation on the world.
func GetComponent[T any](w *World, id types.EntityID) (*T, error) {
	ct, err := storage.Register[T]()
	if err != nil {
		return nil, err
	}
	rec, ok := w.records[id]
	if !ok {
		return nil, eris.Wrapf(ErrEntityDoesNotExist, "get component %s of entity %d", ct.Name(), id)
	}
	col, err := rec.arch.Column(ct.ID())
	if err != nil {
		return nil, eris.Wrapf(ErrComponentNotOnEntity, "entity %d does not have component %s", id, ct.Name())
	}
	return storage.Cell[T](col, rec.row)
}

// MustGetComponent is GetComponent for callers that already filtered on T.
func MustGetComponent[T any](w *World, id types.EntityID) *T {
	c, err := GetComponent[T](w, id)
	if err != nil {
		panic(err)
	}
	return c
}

// UpdateComponent reads the entity's T cell, applies fn and stores the
// result.
func UpdateComponent[T any](w *World, id types.EntityID, fn func(*T) *T) error {
	val, err := GetComponent[T](w, id)
	if err != nil {
		return err
	}
	updated := fn(val)
	return SetComponent[T](w, id, updated)
}

// HasComponent reports whether the entity's archetype stores T.
func HasComponent[T any](w *World, id types.EntityID) (bool, error) {
	ct, err := storage.Register[T]()
	if err != nil {
		return false, err
	}
	rec, ok := w.records[id]
	if !ok {
		return false, eris.Wrapf(ErrEntityDoesNotExist, "has component %s on entity %d", ct.Name(), id)
	}
	return rec.arch.HasComponent(ct.ID()), nil
}

// RemoveComponentFrom migrates the entity into the archetype without T,
// dropping the T cell. Removing a component the entity does not have is a
// success no-op.
func RemoveComponentFrom[T any](w *World, id types.EntityID) error {
	ct, err := storage.Register[T]()
	if err != nil {
		return err
	}
	rec, ok := w.records[id]
	if !ok {
		return eris.Wrapf(ErrEntityDoesNotExist, "remove component %s from entity %d", ct.Name(), id)
	}
	if !rec.arch.HasComponent(ct.ID()) {
		return nil
	}
	if w.iterating > 0 {
		return eris.Wrapf(ErrConcurrentModification, "remove component %s", ct.Name())
	}
	if err := w.migrate(rec, rec.arch.Signature().Without(ct.ID())); err != nil {
		return err
	}
	w.logger.Debug().
		Uint64("entity_id", uint64(id)).
		Str("component_name", ct.Name()).
		Msg("component removed")
	return nil
}
