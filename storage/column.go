package storage

import (
	"github.com/rotisserie/eris"

	"github.com/keystone-gg/keystone/codec"
	"github.com/keystone-gg/keystone/types"
)

var _ types.Column = &column[int]{}

// column is a contiguous []T holding one cell per archetype row. Growth is
// amortized O(1) via append; removal is swap-with-last so rows stay packed.
type column[T any] struct {
	data []T
}

// NewColumn returns an empty typed column for T.
func NewColumn[T any]() types.Column {
	return &column[T]{data: make([]T, 0)}
}

func (c *column[T]) Len() int {
	return len(c.data)
}

func (c *column[T]) AppendZero() int {
	var zero T
	c.data = append(c.data, zero)
	return len(c.data) - 1
}

func (c *column[T]) SwapRemove(i int) {
	last := len(c.data) - 1
	c.data[i] = c.data[last]
	var zero T
	// Clear the vacated slot so the column does not pin values the GC could
	// otherwise reclaim.
	c.data[last] = zero
	c.data = c.data[:last]
}

func (c *column[T]) MoveTo(dst types.Column, i int) error {
	target, ok := dst.(*column[T])
	if !ok {
		return eris.Wrapf(ErrColumnTypeMismatch, "cannot move cell into column of type %T", dst)
	}
	target.data = append(target.data, c.data[i])
	c.SwapRemove(i)
	return nil
}

func (c *column[T]) EncodeCell(i int) ([]byte, error) {
	return codec.Encode(c.data[i])
}

// Slice returns the live []T backing a column. The slice header is only
// valid until the next structural mutation of the owning archetype.
func Slice[T any](c types.Column) ([]T, error) {
	typed, ok := c.(*column[T])
	if !ok {
		return nil, eris.Wrapf(ErrColumnTypeMismatch, "column does not store %T", *new(T))
	}
	return typed.data, nil
}

// Cell returns a pointer to the cell at the given row. The pointer is only
// valid until the next structural mutation of the owning archetype.
func Cell[T any](c types.Column, row int) (*T, error) {
	typed, ok := c.(*column[T])
	if !ok {
		return nil, eris.Wrapf(ErrColumnTypeMismatch, "column does not store %T", *new(T))
	}
	return &typed.data[row], nil
}
