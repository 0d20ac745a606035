package storage

import "github.com/rotisserie/eris"

var (
	ErrComponentNotInArchetype = eris.New("component not in archetype")
	ErrTooManyComponents       = eris.New("too many component types registered")
	ErrComponentIDAlreadySet   = eris.New("component id already set")
	ErrColumnTypeMismatch      = eris.New("column type mismatch")
)
