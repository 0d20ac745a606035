package keystone

import (
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/keystone-gg/keystone/log"
	"github.com/keystone-gg/keystone/storage"
	"github.com/keystone-gg/keystone/types"
)

var _ log.Loggable = &World{}

// record is the per-entity pointer into (archetype, row). It is the single
// source of truth for where an entity lives and is fixed up on every
// migration and swap-remove.
type record struct {
	arch *storage.Archetype
	row  int
}

// World owns the archetype index, the entity records and the free-id queue.
// A world is not internally synchronized; all operations on one world must
// be serialized by the caller.
type World struct {
	index   *storage.Index
	records map[types.EntityID]*record
	removed []types.EntityID
	nextID  types.EntityID

	// iterating counts nested query dispatches. Structural operations are
	// rejected while it is nonzero.
	iterating int

	systemNames []string
	systems     []System

	logger log.Logger
}

// NewWorld creates an empty world. The empty archetype exists from the
// start, so Create never has to build it.
func NewWorld(opts ...WorldOption) *World {
	disabled := zerolog.Nop()
	w := &World{
		index:   storage.NewIndex(),
		records: make(map[types.EntityID]*record),
		removed: make([]types.EntityID, 0),
		logger:  log.Logger{Logger: &disabled},
	}
	for _, opt := range opts {
		opt(w)
	}
	w.index.GetOrCreate(types.Signature{}, nil)
	return w
}

// Logger returns the world's logger.
func (w *World) Logger() *log.Logger {
	return &w.logger
}

// GetComponents returns every component type registered in the process, in
// ComponentID order.
func (w *World) GetComponents() []types.ComponentType {
	return storage.RegisteredComponents()
}

// GetSystemNames returns the names of the registered systems in
// registration order.
func (w *World) GetSystemNames() []string {
	return w.systemNames
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	return len(w.records)
}

// ArchetypeCount returns the number of archetypes ever created.
func (w *World) ArchetypeCount() int {
	return w.index.Count()
}

// Create installs a fresh entity into the empty archetype and returns its
// id. Destroyed ids are reused in FIFO order.
func (w *World) Create() (types.EntityID, error) {
	if w.iterating > 0 {
		return types.BadID, eris.Wrap(ErrConcurrentModification, "create entity")
	}
	var id types.EntityID
	if len(w.removed) > 0 {
		id = w.removed[0]
		w.removed = w.removed[1:]
	} else {
		id = w.nextID
		w.nextID++
	}
	empty := w.index.Get(0)
	row := empty.PushEntity(id)
	w.records[id] = &record{arch: empty, row: row}
	w.logger.Debug().Uint64("entity_id", uint64(id)).Msg("created")
	return id, nil
}

// CreateMany creates num entities and returns their ids.
func (w *World) CreateMany(num int) ([]types.EntityID, error) {
	ids := make([]types.EntityID, 0, num)
	for i := 0; i < num; i++ {
		id, err := w.Create()
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Destroy swap-removes the entity's row, erases its record and queues the
// id for reuse.
func (w *World) Destroy(id types.EntityID) error {
	if w.iterating > 0 {
		return eris.Wrap(ErrConcurrentModification, "destroy entity")
	}
	rec, ok := w.records[id]
	if !ok {
		return eris.Wrapf(ErrEntityDoesNotExist, "destroy entity %d", id)
	}
	moved, hasMoved := rec.arch.SwapRemove(rec.row)
	if hasMoved {
		w.records[moved].row = rec.row
	}
	delete(w.records, id)
	w.removed = append(w.removed, id)
	w.logger.Debug().Uint64("entity_id", uint64(id)).Msg("destroyed")
	return nil
}

// Exists reports whether the entity is alive in this world.
func (w *World) Exists(id types.EntityID) bool {
	_, ok := w.records[id]
	return ok
}

// archetypeFor resolves the archetype for a signature, creating and logging
// it on first reference.
func (w *World) archetypeFor(sig types.Signature) (*storage.Archetype, error) {
	if arch, ok := w.index.Lookup(sig); ok {
		return arch, nil
	}
	comps, err := storage.ComponentTypesFor(sig)
	if err != nil {
		return nil, err
	}
	arch, created := w.index.GetOrCreate(sig, comps)
	if created {
		w.logger.LogArchetype(zerolog.DebugLevel, arch.ID(), sig, comps)
	}
	return arch, nil
}

// migrate moves the entity behind rec into the archetype for target,
// preserving every component value the two signatures share.
func (w *World) migrate(rec *record, target types.Signature) error {
	dst, err := w.archetypeFor(target)
	if err != nil {
		return err
	}
	newRow, moved, hasMoved, err := rec.arch.TransferTo(dst, rec.row)
	if err != nil {
		return err
	}
	if hasMoved {
		w.records[moved].row = rec.row
	}
	rec.arch = dst
	rec.row = newRow
	return nil
}
