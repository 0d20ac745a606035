package filter

import (
	"github.com/keystone-gg/keystone/types"
)

type or struct {
	filters []ComponentFilter
}

func Or(filters ...ComponentFilter) ComponentFilter {
	return &or{filters: filters}
}

func (f *or) Matches(signature types.Signature) bool {
	for _, filter := range f.filters {
		if filter.Matches(signature) {
			return true
		}
	}
	return false
}
