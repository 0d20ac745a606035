package filter

import (
	"github.com/keystone-gg/keystone/types"
)

// ComponentFilter decides whether an archetype's component signature is
// matched by a search.
type ComponentFilter interface {
	// Matches returns true if the signature matches the filter.
	Matches(signature types.Signature) bool
}
