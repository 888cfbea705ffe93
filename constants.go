package grid

// Directional constants for traversing 2D space, in the screen
// coordinate convention (y grows downwards, so North is (0, -1)).
var (
	Zero = Vector{0, 0}

	East  = Vector{1, 0}
	North = Vector{0, -1}
	West  = Vector{-1, 0}
	South = Vector{0, 1}

	NE = Vector{1, -1}
	NW = Vector{-1, -1}
	SW = Vector{-1, 1}
	SE = Vector{1, 1}
)

// Neighbor offset tables. These are fixed-size value arrays, so
// assigning or ranging over one works on a copy of the canonical
// table.
var (
	// Orthogonal holds the four cardinal offsets, counter-clockwise
	// from East.
	Orthogonal = [4]Vector{East, North, West, South}
	// Diagonal holds the four diagonal offsets, counter-clockwise
	// from NE.
	Diagonal = [4]Vector{NE, NW, SW, SE}
	// Adjacent holds all eight neighbor offsets, counter-clockwise
	// from East.
	Adjacent = [8]Vector{East, NE, North, NW, West, SW, South, SE}

	// OrthogonalZero, DiagonalZero and AdjacentZero are the same
	// tables with a leading Zero entry, for scans that include the
	// cell itself.
	OrthogonalZero = [5]Vector{Zero, East, North, West, South}
	DiagonalZero   = [5]Vector{Zero, NE, NW, SW, SE}
	AdjacentZero   = [9]Vector{Zero, East, NE, North, NW, West, SW, South, SE}
)
