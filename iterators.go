package grid

import "iter"

// All iterators in this file traverse the grid in row-major order:
// y from 0 to height-1, and within each row x from 0 to width-1.

// PositionsIn returns an iterator over every position of a dim.X by
// dim.Y region in row-major order. It depends only on the dimensions,
// not on any grid.
func PositionsIn(dim Vector) iter.Seq[Vector] {
	return func(yield func(Vector) bool) {
		for y := int64(0); y < dim.Y; y++ {
			for x := int64(0); x < dim.X; x++ {
				if !yield(Vector{x, y}) {
					return
				}
			}
		}
	}
}

// Positions returns an iterator over every position that can be used
// to index into the grid, in row-major order.
func (g *Grid[T]) Positions() iter.Seq[Vector] {
	return PositionsIn(g.dim)
}

// Values returns an iterator over copies of the values in the grid,
// in row-major order.
func (g *Grid[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range g.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Pointers returns an iterator over pointers to the cells in the
// grid, in row-major order, for in-place mutation. The iterator holds
// exclusive access: the grid must not be accessed through any other
// path until iteration finishes.
func (g *Grid[T]) Pointers() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range g.data {
			if !yield(&g.data[i]) {
				return
			}
		}
	}
}

// All returns an iterator over (position, value) pairs in row-major
// order. It is the pairwise zip of Positions and Values.
func (g *Grid[T]) All() iter.Seq2[Vector, T] {
	return zipSeq(g.Positions(), g.Values())
}

// AllPointers returns an iterator over (position, cell pointer) pairs
// in row-major order. Like Pointers, it holds exclusive access to the
// grid for the duration of the iteration.
func (g *Grid[T]) AllPointers() iter.Seq2[Vector, *T] {
	return zipSeq(g.Positions(), g.Pointers())
}

// Drain returns an iterator that consumes the grid, yielding every
// value in row-major order and transferring ownership to the caller.
//
// The grid is detached immediately: after Drain returns, the grid is
// empty (every position is out of bounds) and must not be reused.
// Each yielded slot is zeroed so the buffer drops its references as
// iteration proceeds.
func (g *Grid[T]) Drain() iter.Seq[T] {
	data := g.data
	g.data = nil
	g.dim = Zero
	return func(yield func(T) bool) {
		var zero T
		for i := range data {
			v := data[i]
			data[i] = zero
			if !yield(v) {
				return
			}
		}
	}
}

// DrainAll returns an iterator that consumes the grid, yielding
// (position, value) pairs in row-major order. It carries the same
// invalidation contract as Drain.
func (g *Grid[T]) DrainAll() iter.Seq2[Vector, T] {
	dim := g.dim
	return zipSeq(PositionsIn(dim), g.Drain())
}

// zipSeq pairs two sequences element by element, stopping when either
// is exhausted.
func zipSeq[A, B any](as iter.Seq[A], bs iter.Seq[B]) iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		next, stop := iter.Pull(bs)
		defer stop()
		for a := range as {
			b, ok := next()
			if !ok {
				return
			}
			if !yield(a, b) {
				return
			}
		}
	}
}
