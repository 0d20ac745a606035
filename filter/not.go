package filter

import (
	"github.com/keystone-gg/keystone/types"
)

func Not(filter ComponentFilter) ComponentFilter {
	return &not{filter: filter}
}

type not struct {
	filter ComponentFilter
}

func (f *not) Matches(signature types.Signature) bool {
	return !f.filter.Matches(signature)
}
