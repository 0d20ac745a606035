package storage

import (
	"github.com/rotisserie/eris"

	"github.com/keystone-gg/keystone/types"
)

// Archetype is the storage bucket for all entities sharing one signature.
// It owns one typed column per component id in the signature plus a parallel
// entity vector: row r across every column and the entity vector belongs to
// the same entity.
type Archetype struct {
	id        types.ArchetypeID
	signature types.Signature
	comps     []types.ComponentType
	columns   []types.Column
	entities  []types.EntityID
	slots     [types.MaxComponentTypes]int16
}

// NewArchetype creates the archetype for a signature. comps must be the
// signature's component types in ascending ComponentID order; column k
// stores comps[k].
func NewArchetype(id types.ArchetypeID, signature types.Signature, comps []types.ComponentType) *Archetype {
	a := &Archetype{
		id:        id,
		signature: signature,
		comps:     comps,
		columns:   make([]types.Column, len(comps)),
		entities:  make([]types.EntityID, 0, 256),
	}
	for i := range a.slots {
		a.slots[i] = -1
	}
	for k, ct := range comps {
		a.columns[k] = ct.NewColumn()
		a.slots[ct.ID()] = int16(k)
	}
	return a
}

// ID returns the archetype's dense id.
func (a *Archetype) ID() types.ArchetypeID {
	return a.id
}

// Signature returns the archetype's component signature.
func (a *Archetype) Signature() types.Signature {
	return a.signature
}

// Components returns the component types stored by this archetype in
// ascending ComponentID order.
func (a *Archetype) Components() []types.ComponentType {
	return a.comps
}

// Entities returns the entity vector. entities[r] occupies row r.
func (a *Archetype) Entities() []types.EntityID {
	return a.entities
}

// Count returns the number of rows in the archetype.
func (a *Archetype) Count() int {
	return len(a.entities)
}

// HasComponent reports whether the archetype stores the component id.
func (a *Archetype) HasComponent(id types.ComponentID) bool {
	return a.signature.Contains(id)
}

// Column returns the column storing the given component id.
func (a *Archetype) Column(id types.ComponentID) (types.Column, error) {
	slot := a.slots[id]
	if slot < 0 {
		return nil, eris.Wrapf(ErrComponentNotInArchetype, "archetype %v does not store component id %d", a.signature, id)
	}
	return a.columns[slot], nil
}

// PushEntity appends a full zero-valued row for the entity and returns the
// new row index.
func (a *Archetype) PushEntity(id types.EntityID) int {
	for _, col := range a.columns {
		col.AppendZero()
	}
	a.entities = append(a.entities, id)
	return len(a.entities) - 1
}

// SwapRemove removes row r by overwriting it with the last row and popping,
// in declared column order. It returns the entity that moved into r, so the
// caller can fix that entity's record; ok is false when r was the last row
// and nothing moved.
func (a *Archetype) SwapRemove(r int) (moved types.EntityID, ok bool) {
	for _, col := range a.columns {
		col.SwapRemove(r)
	}
	last := len(a.entities) - 1
	a.entities[r] = a.entities[last]
	a.entities = a.entities[:last]
	if r == last {
		return types.BadID, false
	}
	return a.entities[r], true
}

// TransferTo migrates row r into dst: cells of components shared with dst
// are moved cell-by-cell in declared column order, components only in dst
// are zero-constructed, and components only in this archetype are dropped.
// The source row is swap-compacted. It returns the entity's new row in dst
// and the entity that moved into r (ok=false if none).
func (a *Archetype) TransferTo(dst *Archetype, r int) (newRow int, moved types.EntityID, ok bool, err error) {
	id := a.entities[r]
	for k, ct := range a.comps {
		slot := dst.slots[ct.ID()]
		if slot < 0 {
			// Dropped by the migration; the cell is destroyed with the row.
			a.columns[k].SwapRemove(r)
			continue
		}
		if err := a.columns[k].MoveTo(dst.columns[slot], r); err != nil {
			return 0, types.BadID, false, err
		}
	}
	for k, ct := range dst.comps {
		if !a.signature.Contains(ct.ID()) {
			dst.columns[k].AppendZero()
		}
	}

	last := len(a.entities) - 1
	a.entities[r] = a.entities[last]
	a.entities = a.entities[:last]

	dst.entities = append(dst.entities, id)
	newRow = len(dst.entities) - 1

	if r == last {
		return newRow, types.BadID, false, nil
	}
	return newRow, a.entities[r], true, nil
}
