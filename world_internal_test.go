package keystone

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/keystone-gg/keystone/types"
)

type posInternal struct{ X, Y int }
type velInternal struct{ DX, DY int }
type tagInternal struct{ On bool }

// checkInvariants verifies the record/row bijection:
//  1. every record points at a row holding its own entity id,
//  2. every column of every archetype has exactly Count rows and every
//     stored entity's record points back at its row,
//  3. the records cover exactly the live (archetype, row) pairs,
//  4. no entity occupies two archetypes,
//  5. archetype signatures are pairwise distinct and match their component
//     lists.
func checkInvariants(t *testing.T, w *World) {
	t.Helper()

	for id, rec := range w.records {
		assert.Assert(t, rec.row < rec.arch.Count())
		assert.Equal(t, id, rec.arch.Entities()[rec.row])
	}

	totalRows := 0
	seenSignatures := map[types.Signature]bool{}
	seenEntities := map[types.EntityID]bool{}
	for _, arch := range w.index.Archetypes() {
		assert.Assert(t, !seenSignatures[arch.Signature()])
		seenSignatures[arch.Signature()] = true

		sigFromComps := types.Signature{}
		for _, ct := range arch.Components() {
			sigFromComps = sigFromComps.With(ct.ID())
			col, err := arch.Column(ct.ID())
			assert.NilError(t, err)
			assert.Equal(t, arch.Count(), col.Len())
		}
		assert.Equal(t, arch.Signature(), sigFromComps)

		for r, id := range arch.Entities() {
			assert.Assert(t, !seenEntities[id])
			seenEntities[id] = true
			rec, ok := w.records[id]
			assert.Assert(t, ok)
			assert.Equal(t, arch, rec.arch)
			assert.Equal(t, r, rec.row)
		}
		totalRows += arch.Count()
	}
	assert.Equal(t, len(w.records), totalRows)
}

func TestInvariantsAcrossLifecycle(t *testing.T) {
	w := NewWorld()
	checkInvariants(t, w)

	ids, err := w.CreateMany(20)
	assert.NilError(t, err)
	checkInvariants(t, w)

	for i, id := range ids {
		if i%2 == 0 {
			assert.NilError(t, AddComponentTo[posInternal](w, id))
		}
		if i%3 == 0 {
			assert.NilError(t, AddComponentTo[velInternal](w, id))
		}
		if i%5 == 0 {
			assert.NilError(t, AddComponentTo[tagInternal](w, id))
		}
	}
	checkInvariants(t, w)

	for i, id := range ids {
		if i%3 == 0 {
			assert.NilError(t, RemoveComponentFrom[posInternal](w, id))
		}
		if i%4 == 0 {
			assert.NilError(t, w.Destroy(id))
		}
	}
	checkInvariants(t, w)

	// Reuse the freed ids and churn again.
	more, err := w.CreateMany(10)
	assert.NilError(t, err)
	for _, id := range more {
		assert.NilError(t, SetComponent(w, id, &posInternal{X: int(id)}))
	}
	checkInvariants(t, w)
}

func TestDestroyFixesSwappedRecord(t *testing.T) {
	w := NewWorld()
	ids, err := w.CreateMany(3)
	assert.NilError(t, err)
	for i, id := range ids {
		assert.NilError(t, SetComponent(w, id, &posInternal{X: i}))
	}

	// Destroying the first row swaps the last row into its place; the
	// swapped entity's record must follow.
	assert.NilError(t, w.Destroy(ids[0]))
	checkInvariants(t, w)
	last, err := GetComponent[posInternal](w, ids[2])
	assert.NilError(t, err)
	assert.Equal(t, 2, last.X)
}

func TestMigrationFixesSwappedRecord(t *testing.T) {
	w := NewWorld()
	ids, err := w.CreateMany(3)
	assert.NilError(t, err)
	for i, id := range ids {
		assert.NilError(t, SetComponent(w, id, &posInternal{X: i}))
	}

	// Migrating row 0 out of the {pos} archetype swaps row 2 into row 0.
	assert.NilError(t, AddComponentTo[velInternal](w, ids[0]))
	checkInvariants(t, w)
	for i, id := range ids {
		pos, err := GetComponent[posInternal](w, id)
		assert.NilError(t, err)
		assert.Equal(t, i, pos.X)
	}
}

func TestFreeIDQueueIsFIFO(t *testing.T) {
	w := NewWorld()
	ids, err := w.CreateMany(3)
	assert.NilError(t, err)
	assert.NilError(t, w.Destroy(ids[1]))
	assert.NilError(t, w.Destroy(ids[0]))

	r1, err := w.Create()
	assert.NilError(t, err)
	r2, err := w.Create()
	assert.NilError(t, err)
	assert.Equal(t, ids[1], r1)
	assert.Equal(t, ids[0], r2)
}
