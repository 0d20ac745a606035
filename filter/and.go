package filter

import (
	"github.com/keystone-gg/keystone/types"
)

type and struct {
	filters []ComponentFilter
}

func And(filters ...ComponentFilter) ComponentFilter {
	return &and{filters: filters}
}

func (f *and) Matches(signature types.Signature) bool {
	for _, filter := range f.filters {
		if !filter.Matches(signature) {
			return false
		}
	}
	return true
}
