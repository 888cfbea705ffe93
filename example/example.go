package main

import (
	"fmt"

	grid "github.com/gridworks/go-grid2d"
)

func main() {
	// a 5x6 grid with every cell set to 3
	g := grid.New(5, 6, uint8(3))

	g.SetXY(1, 0, 1)
	g.SetXY(3, 5, 2)

	fmt.Printf("dimensions: %s\n", g.Dim())
	fmt.Printf("cell (3, 5): %d\n", g.At(grid.V(3, 5)))
	fmt.Printf("cell (2, 4): %d\n", g.At(grid.V(2, 4)))

	// walk east from (1, 2) until we fall off the grid
	pos := grid.V(1, 2)
	for g.InBounds(pos) {
		pos = pos.Add(grid.East)
	}
	fmt.Printf("walked off the grid at %s\n", pos)

	// dump the whole grid in textual form
	fmt.Println(g)
}
