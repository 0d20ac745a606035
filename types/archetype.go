package types

// ArchetypeID identifies an archetype within a world. IDs are dense and
// assigned in creation order; archetypes are never deleted, so an
// ArchetypeID stays valid for the world's lifetime.
type ArchetypeID int
