package keystone

import "github.com/rotisserie/eris"

var (
	ErrEntityDoesNotExist     = eris.New("entity does not exist")
	ErrComponentNotOnEntity   = eris.New("component not on entity")
	ErrConcurrentModification = eris.New("structural change during query dispatch")
)
