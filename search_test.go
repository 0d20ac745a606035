package keystone_test

import (
	"testing"

	"gotest.tools/v3/assert"

	keystone "github.com/keystone-gg/keystone"
	"github.com/keystone-gg/keystone/filter"
	"github.com/keystone-gg/keystone/storage"
	"github.com/keystone-gg/keystone/types"
)

func TestSearchCountFirstCollect(t *testing.T) {
	world := keystone.NewWorld()
	ids, err := world.CreateMany(4)
	assert.NilError(t, err)
	for _, id := range ids[:3] {
		assert.NilError(t, keystone.AddComponentTo[EnergyComponent](world, id))
	}

	search := world.Search(filter.Contains(storage.MustID[EnergyComponent]()))
	assert.Equal(t, 3, search.Count())

	first, err := search.First()
	assert.NilError(t, err)
	assert.Equal(t, ids[0], first)
	assert.Equal(t, first, search.MustFirst())

	collected := search.Collect()
	assert.Equal(t, 3, len(collected))
}

func TestSearchCacheSeesNewArchetypes(t *testing.T) {
	world := keystone.NewWorld()
	e1, err := world.Create()
	assert.NilError(t, err)
	assert.NilError(t, keystone.AddComponentTo[PositionComponent](world, e1))

	search := world.Search(filter.Contains(storage.MustID[PositionComponent]()))
	assert.Equal(t, 1, search.Count())

	// A second entity lands in a brand new {Position,Velocity} archetype
	// created after the search was first evaluated.
	e2, err := world.Create()
	assert.NilError(t, err)
	assert.NilError(t, keystone.AddComponentTo[PositionComponent](world, e2))
	assert.NilError(t, keystone.AddComponentTo[VelocityComponent](world, e2))

	assert.Equal(t, 2, search.Count())
}

func TestSearchFirstOnEmptyResult(t *testing.T) {
	world := keystone.NewWorld()
	search := world.Search(filter.Contains(storage.MustID[HealthComponent]()))
	_, err := search.First()
	assert.ErrorIs(t, err, keystone.ErrEntityDoesNotExist)
}

func TestSearchEachStops(t *testing.T) {
	world := keystone.NewWorld()
	_, err := world.CreateMany(10)
	assert.NilError(t, err)

	visited := 0
	assert.NilError(t, world.Search(filter.All()).Each(func(_ types.EntityID) bool {
		visited++
		return visited < 4
	}))
	assert.Equal(t, 4, visited)
}

func TestSearchWithExactFilter(t *testing.T) {
	world := keystone.NewWorld()
	e1, err := world.Create()
	assert.NilError(t, err)
	assert.NilError(t, keystone.AddComponentTo[PositionComponent](world, e1))
	e2, err := world.Create()
	assert.NilError(t, err)
	assert.NilError(t, keystone.AddComponentTo[PositionComponent](world, e2))
	assert.NilError(t, keystone.AddComponentTo[VelocityComponent](world, e2))

	posID := storage.MustID[PositionComponent]()
	velID := storage.MustID[VelocityComponent]()

	exactlyPos := world.Search(filter.Exact(posID))
	assert.Equal(t, 1, exactlyPos.Count())
	assert.Equal(t, e1, exactlyPos.MustFirst())

	posNotVel := world.Search(filter.And(filter.Contains(posID), filter.Not(filter.Contains(velID))))
	assert.Equal(t, 1, posNotVel.Count())
	assert.Equal(t, e1, posNotVel.MustFirst())

	posOrVel := world.Search(filter.Or(filter.Contains(posID), filter.Contains(velID)))
	assert.Equal(t, 2, posOrVel.Count())
}
