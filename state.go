package keystone

import (
	"encoding/json"
	"sort"

	"github.com/keystone-gg/keystone/types"
)

// State returns a snapshot of every live entity's components, JSON encoded
// and ordered by entity id. It exists for inspection and tests; it is not a
// persistence format.
func (w *World) State() ([]types.EntityStateElement, error) {
	ids := make([]types.EntityID, 0, len(w.records))
	for id := range w.records {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	state := make([]types.EntityStateElement, 0, len(ids))
	for _, id := range ids {
		rec := w.records[id]
		comps := make(map[string]json.RawMessage, len(rec.arch.Components()))
		for _, ct := range rec.arch.Components() {
			col, err := rec.arch.Column(ct.ID())
			if err != nil {
				return nil, err
			}
			bz, err := col.EncodeCell(rec.row)
			if err != nil {
				return nil, err
			}
			comps[ct.Name()] = bz
		}
		state = append(state, types.EntityStateElement{ID: id, Components: comps})
	}
	return state, nil
}
