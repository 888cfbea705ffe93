package grid

import (
	"cmp"
	"fmt"
)

// Vector is a 2D vector with int64 components, used as a position, a
// displacement, or a dimension descriptor.
//
// Vectors follow the screen coordinate convention: x grows to the
// east (rightwards) and y grows to the south (downwards), so North
// has a y component of -1.
//
// A Vector is a plain comparable value: == compares component-wise
// and vectors can be used as map keys. Operations return new vectors;
// the compound-assignment forms of other languages are spelled
// v = v.Add(u).
type Vector struct {
	X, Y int64
}

// V creates a new Vector with the given x and y components.
func V(x, y int64) Vector {
	return Vector{X: x, Y: y}
}

// Add returns the component-wise sum of v and rhs.
func (v Vector) Add(rhs Vector) Vector {
	return Vector{v.X + rhs.X, v.Y + rhs.Y}
}

// Sub returns the component-wise difference of v and rhs.
func (v Vector) Sub(rhs Vector) Vector {
	return Vector{v.X - rhs.X, v.Y - rhs.Y}
}

// Neg returns v with both components negated.
func (v Vector) Neg() Vector {
	return Vector{-v.X, -v.Y}
}

// Mul returns v scaled by s.
func (v Vector) Mul(s int64) Vector {
	return Vector{v.X * s, v.Y * s}
}

// Div returns v divided by s using truncating integer division.
// The caller must ensure s is non-zero.
func (v Vector) Div(s int64) Vector {
	return Vector{v.X / s, v.Y / s}
}

// Abs returns a vector containing the absolute value of each
// component of v.
func (v Vector) Abs() Vector {
	return Vector{abs64(v.X), abs64(v.Y)}
}

// Signum returns a vector containing the sign (-1, 0 or +1) of each
// component of v.
func (v Vector) Signum() Vector {
	return Vector{sign64(v.X), sign64(v.Y)}
}

// Min returns the component-wise minimum of v and rhs.
func (v Vector) Min(rhs Vector) Vector {
	return Vector{min(v.X, rhs.X), min(v.Y, rhs.Y)}
}

// Max returns the component-wise maximum of v and rhs.
func (v Vector) Max(rhs Vector) Vector {
	return Vector{max(v.X, rhs.X), max(v.Y, rhs.Y)}
}

// Clamp returns v clamped component-wise between lo and hi.
//
// Panics with an error wrapping ErrInvalidRange if lo.X > hi.X or
// lo.Y > hi.Y.
func (v Vector) Clamp(lo, hi Vector) Vector {
	if lo.X > hi.X || lo.Y > hi.Y {
		panic(fmt.Errorf("%w: min %s exceeds max %s", ErrInvalidRange, lo, hi))
	}
	return Vector{
		min(max(v.X, lo.X), hi.X),
		min(max(v.Y, lo.Y), hi.Y),
	}
}

// Manhattan computes the manhattan distance from v to rhs.
func (v Vector) Manhattan(rhs Vector) int64 {
	diff := v.Sub(rhs)
	return abs64(diff.X) + abs64(diff.Y)
}

// Dot computes the dot product of v and rhs.
func (v Vector) Dot(rhs Vector) int64 {
	return v.X*rhs.X + v.Y*rhs.Y
}

// Perp returns v rotated by a quarter turn: (x, y) -> (-y, x).
func (v Vector) Perp() Vector {
	return Vector{-v.Y, v.X}
}

// PerpDot computes the perpendicular dot product of v and rhs, the z
// component of the cross product of the lifted 3D vectors.
func (v Vector) PerpDot(rhs Vector) int64 {
	return v.X*rhs.Y - v.Y*rhs.X
}

// Horizontal returns v with its y component zeroed.
func (v Vector) Horizontal() Vector {
	return Vector{v.X, 0}
}

// Vertical returns v with its x component zeroed.
func (v Vector) Vertical() Vector {
	return Vector{0, v.Y}
}

// Cmp compares v and rhs lexicographically by (x, y), returning -1, 0
// or +1 in the manner of cmp.Compare.
func (v Vector) Cmp(rhs Vector) int {
	if c := cmp.Compare(v.X, rhs.X); c != 0 {
		return c
	}
	return cmp.Compare(v.Y, rhs.Y)
}

// String returns the vector in the form "(x, y)".
func (v Vector) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

func sign64(n int64) int64 {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
