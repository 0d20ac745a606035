package filter

import (
	"github.com/keystone-gg/keystone/types"
)

type all struct{}

// All matches every archetype, including the empty one.
func All() ComponentFilter {
	return &all{}
}

func (f *all) Matches(_ types.Signature) bool {
	return true
}
