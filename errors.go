package grid

import "errors"

var (
	// ErrInvalidDimensions is wrapped by the panic raised when a grid
	// is constructed with a non-positive width or height, or with
	// dimensions whose product does not fit in an int.
	ErrInvalidDimensions = errors.New("grid: invalid dimensions")

	// ErrOutOfBounds is wrapped by the panic raised when a position
	// outside the grid is passed to an infallible accessor such as At.
	ErrOutOfBounds = errors.New("grid: position out of bounds")

	// ErrInvalidRange is wrapped by the panic raised by Vector.Clamp
	// when a component of min exceeds the same component of max.
	ErrInvalidRange = errors.New("grid: invalid clamp range")
)
