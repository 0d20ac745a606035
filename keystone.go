// Package keystone is an archetype-based entity-component store. Entities
// sharing the exact same set of component types live in one archetype, with
// each component type stored in a dedicated contiguous column, so queries
// iterate in near-optimal cache order by visiting only the archetypes whose
// signature is a superset of the query's.
//
// A world is single-threaded and cooperative: operations complete before
// returning and the caller serializes all access. Component ids are
// assigned process-wide at first use, so every world in the process agrees
// on the same assignment.
package keystone
