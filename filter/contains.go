package filter

import (
	"github.com/keystone-gg/keystone/types"
)

type contains struct {
	required types.Signature
}

// Contains matches archetypes that contain all the components specified.
func Contains(ids ...types.ComponentID) ComponentFilter {
	return &contains{required: types.NewSignature(ids...)}
}

// ContainsSignature matches archetypes whose signature is a superset of the
// given signature.
func ContainsSignature(sig types.Signature) ComponentFilter {
	return &contains{required: sig}
}

func (f *contains) Matches(signature types.Signature) bool {
	return signature.ContainsAll(f.required)
}
