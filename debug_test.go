package grid

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	g := NewDefault[int](2, 2)
	g.SetXY(0, 0, 9)
	g.SetXY(1, 0, 10)
	g.SetXY(0, 1, 1)
	g.SetXY(1, 1, 100)
	assert.Equal(t, "2x2\n  9, 10\n  1,100", g.String())
}

func TestStringSingleCell(t *testing.T) {
	g := New(1, 1, "ok")
	assert.Equal(t, "1x1\nok", g.String())
}

func TestStringUniformWidth(t *testing.T) {
	g := NewFromPosFunc(3, 2, func(p Vector) int64 { return p.X + p.Y*3 })
	assert.Equal(t, "3x2\n0,1,2\n3,4,5", g.String())
}

type rune2 rune

func (r rune2) String() string { return string(rune(r)) }

// cell rendering goes through fmt.Sprint, so Stringer types use their
// own representation
func TestStringStringer(t *testing.T) {
	g := New(2, 1, rune2('#'))
	g.SetXY(1, 0, rune2('.'))
	assert.Equal(t, "2x1\n#,.", g.String())
}

func TestStringViaFmt(t *testing.T) {
	g := New(2, 2, 7)
	assert.Equal(t, g.String(), fmt.Sprint(g))
}
