package filter

import (
	"github.com/keystone-gg/keystone/types"
)

type exact struct {
	signature types.Signature
}

// Exact matches archetypes that contain exactly the same components specified.
func Exact(ids ...types.ComponentID) ComponentFilter {
	return exact{signature: types.NewSignature(ids...)}
}

func (f exact) Matches(signature types.Signature) bool {
	return signature == f.signature
}
