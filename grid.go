// Package grid implements a generic heap-allocated 2D grid indexed by
// 2D integer vectors, which supports:
//  1. four cell initialisation strategies (value, zero, thunk,
//     position function)
//  2. bounds-checked and panicking accessors over both Vector and
//     (x, y) coordinate-pair addressing
//  3. row-major value and position iteration
//  4. a column-aligned textual rendering for debugging
//
// For a position Vector{X, Y} in the grid, X selects the column and Y
// selects the row. Cells are stored in a single contiguous row-major
// buffer: the cell at (x, y) lives at linear index x + y*width.
package grid

import (
	"fmt"
	"math"
	"slices"
)

// Grid is a dense 2D container of T indexed by Vector.
//
// A grid's dimensions are fixed at construction; cells may be mutated
// in place but never inserted or removed. A Grid is not safe for
// concurrent mutation without external synchronisation.
type Grid[T any] struct {
	data []T
	dim  Vector
}

// New constructs a Grid with the given dimensions, initialising every
// cell to a copy of value. Note that the copy is shallow: if T holds
// a pointer, slice or map, all cells share the referent.
//
// Panics with an error wrapping ErrInvalidDimensions if width or
// height is not positive or width*height does not fit in an int.
func New[T any](width, height int64, value T) *Grid[T] {
	data := make([]T, size(width, height))
	for i := range data {
		data[i] = value
	}
	return &Grid[T]{data: data, dim: Vector{width, height}}
}

// NewDefault constructs a Grid with the given dimensions, leaving
// every cell at the zero value of T.
//
// Panics with an error wrapping ErrInvalidDimensions if width or
// height is not positive or width*height does not fit in an int.
func NewDefault[T any](width, height int64) *Grid[T] {
	return &Grid[T]{data: make([]T, size(width, height)), dim: Vector{width, height}}
}

// NewFromFunc constructs a Grid with the given dimensions, computing
// every cell by calling f. f is called exactly width*height times and
// its results are assigned in row-major order, so a stateful f sees
// the cells in traversal order.
//
// Panics with an error wrapping ErrInvalidDimensions if width or
// height is not positive or width*height does not fit in an int.
func NewFromFunc[T any](width, height int64, f func() T) *Grid[T] {
	n := size(width, height)
	data := make([]T, 0, n)
	for i := 0; i < n; i++ {
		data = append(data, f())
	}
	return &Grid[T]{data: data, dim: Vector{width, height}}
}

// NewFromPosFunc constructs a Grid with the given dimensions,
// computing the cell at each position p as f(p). f is called exactly
// once per cell in row-major order.
//
// Panics with an error wrapping ErrInvalidDimensions if width or
// height is not positive or width*height does not fit in an int.
func NewFromPosFunc[T any](width, height int64, f func(Vector) T) *Grid[T] {
	data := make([]T, 0, size(width, height))
	for y := int64(0); y < height; y++ {
		for x := int64(0); x < width; x++ {
			data = append(data, f(Vector{x, y}))
		}
	}
	return &Grid[T]{data: data, dim: Vector{width, height}}
}

// size validates the dimensions and returns width*height as an int.
func size(width, height int64) int {
	if width <= 0 || height <= 0 {
		panic(fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height))
	}
	if uint64(width) > uint64(math.MaxInt)/uint64(height) {
		panic(fmt.Errorf("%w: %dx%d cells do not fit in an int", ErrInvalidDimensions, width, height))
	}
	return int(width * height)
}

// Width returns the number of columns in the grid.
func (g *Grid[T]) Width() int64 {
	return g.dim.X
}

// Height returns the number of rows in the grid.
func (g *Grid[T]) Height() int64 {
	return g.dim.Y
}

// Dim returns the dimensions of the grid as a (width, height) vector.
func (g *Grid[T]) Dim() Vector {
	return g.dim
}

// InBounds reports whether pos is within the bounds of the grid.
func (g *Grid[T]) InBounds(pos Vector) bool {
	return pos.X >= 0 && pos.X < g.dim.X && pos.Y >= 0 && pos.Y < g.dim.Y
}

// InBoundsXY reports whether the position (x, y) is within the bounds
// of the grid. Negative coordinates are out of bounds, never
// wrapped around.
func (g *Grid[T]) InBoundsXY(x, y int64) bool {
	return g.InBounds(Vector{x, y})
}

// index maps pos to its linear row-major index, reporting whether pos
// is in bounds.
func (g *Grid[T]) index(pos Vector) (int, bool) {
	if !g.InBounds(pos) {
		return 0, false
	}
	return int(pos.X) + int(pos.Y)*int(g.dim.X), true
}

// Get returns the value at pos, or the zero value and false when pos
// is out of bounds.
func (g *Grid[T]) Get(pos Vector) (T, bool) {
	i, ok := g.index(pos)
	if !ok {
		var zero T
		return zero, false
	}
	return g.data[i], true
}

// GetXY returns the value at (x, y), or the zero value and false when
// the position is out of bounds.
func (g *Grid[T]) GetXY(x, y int64) (T, bool) {
	return g.Get(Vector{x, y})
}

// GetPtr returns a pointer to the cell at pos, or nil when pos is out
// of bounds. The pointer remains valid for the lifetime of the grid;
// while the caller mutates through it, no other access to the grid
// may take place.
func (g *Grid[T]) GetPtr(pos Vector) *T {
	i, ok := g.index(pos)
	if !ok {
		return nil
	}
	return &g.data[i]
}

// GetPtrXY returns a pointer to the cell at (x, y), or nil when the
// position is out of bounds.
func (g *Grid[T]) GetPtrXY(x, y int64) *T {
	return g.GetPtr(Vector{x, y})
}

// Set replaces the value at pos, returning the previous value. When
// pos is out of bounds the grid is unchanged and Set returns the zero
// value and false.
func (g *Grid[T]) Set(pos Vector, value T) (T, bool) {
	i, ok := g.index(pos)
	if !ok {
		var zero T
		return zero, false
	}
	prev := g.data[i]
	g.data[i] = value
	return prev, true
}

// SetXY replaces the value at (x, y), returning the previous value,
// or the zero value and false when the position is out of bounds.
func (g *Grid[T]) SetXY(x, y int64, value T) (T, bool) {
	return g.Set(Vector{x, y}, value)
}

// At returns the value at pos.
//
// Panics with an error wrapping ErrOutOfBounds when pos is outside
// the grid; use Get to check and skip instead.
func (g *Grid[T]) At(pos Vector) T {
	i, ok := g.index(pos)
	if !ok {
		panic(fmt.Errorf("%w: %s not in %dx%d", ErrOutOfBounds, pos, g.dim.X, g.dim.Y))
	}
	return g.data[i]
}

// AtXY returns the value at (x, y), panicking with an error wrapping
// ErrOutOfBounds when the position is outside the grid.
func (g *Grid[T]) AtXY(x, y int64) T {
	return g.At(Vector{x, y})
}

// AtPtr returns a pointer to the cell at pos for in-place mutation.
//
// Panics with an error wrapping ErrOutOfBounds when pos is outside
// the grid; use GetPtr to check and skip instead.
func (g *Grid[T]) AtPtr(pos Vector) *T {
	i, ok := g.index(pos)
	if !ok {
		panic(fmt.Errorf("%w: %s not in %dx%d", ErrOutOfBounds, pos, g.dim.X, g.dim.Y))
	}
	return &g.data[i]
}

// Offset returns pos+delta and reports whether the result is within
// the bounds of the grid.
func (g *Grid[T]) Offset(pos, delta Vector) (Vector, bool) {
	next := pos.Add(delta)
	return next, g.InBounds(next)
}

// Clone returns a new grid with the same dimensions and a copy of
// every cell. The copy is shallow with respect to reference types
// held by T.
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{data: slices.Clone(g.data), dim: g.dim}
}

// Equal reports whether a and b have the same dimensions and equal
// values in every cell.
func Equal[T comparable](a, b *Grid[T]) bool {
	return a.dim == b.dim && slices.Equal(a.data, b.data)
}

// Map creates a new grid with the same dimensions as g where the cell
// at each position holds f applied to g's cell at that position. f is
// called exactly once per cell in row-major order.
func Map[T, U any](g *Grid[T], f func(T) U) *Grid[U] {
	data := make([]U, 0, len(g.data))
	for _, v := range g.data {
		data = append(data, f(v))
	}
	return &Grid[U]{data: data, dim: g.dim}
}

// PosMap is Map with the cell's position passed alongside its value.
func PosMap[T, U any](g *Grid[T], f func(Vector, T) U) *Grid[U] {
	data := make([]U, 0, len(g.data))
	for pos, v := range g.All() {
		data = append(data, f(pos, v))
	}
	return &Grid[U]{data: data, dim: g.dim}
}
