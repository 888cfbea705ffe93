package grid

import (
	"fmt"
	"strings"
)

// String renders the grid in a reader-friendly form: a "WxH" header
// line, then one line per row with every cell right-aligned to the
// width of the longest cell string and a comma between columns. There
// is no trailing newline.
//
// Cells are formatted with fmt.Sprint, so types implementing
// fmt.Stringer render through it.
func (g *Grid[T]) String() string {
	// Materialise the cell strings once; the alignment width needs a
	// full pass over them anyway.
	cells := Map(g, func(v T) string { return fmt.Sprint(v) })
	longest := 0
	for _, s := range cells.data {
		longest = max(longest, len(s))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%dx%d", g.dim.X, g.dim.Y)
	for y := int64(0); y < g.dim.Y; y++ {
		b.WriteByte('\n')
		for x := int64(0); x < g.dim.X; x++ {
			if x > 0 {
				b.WriteByte(',')
			}
			fmt.Fprintf(&b, "%*s", longest, cells.AtXY(x, y))
		}
	}
	return b.String()
}
