package grid

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

// assertPanicsWith runs fn and asserts that it panics with an error
// wrapping want.
func assertPanicsWith(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if !assert.NotNil(t, r, "expected a panic wrapping %v", want) {
			return
		}
		err, ok := r.(error)
		if assert.True(t, ok, "panic value %v is not an error", r) {
			assert.ErrorIs(t, err, want)
		}
	}()
	fn()
}

func TestNew(t *testing.T) {
	g := New(8, 10, uint8(1))
	assert.Equal(t, int64(8), g.Width())
	assert.Equal(t, int64(10), g.Height())
	assert.Equal(t, V(8, 10), g.Dim())
	for pos := range g.Positions() {
		assert.Equal(t, uint8(1), g.At(pos))
	}
}

func TestNewDefault(t *testing.T) {
	g := NewDefault[string](9, 3)
	assert.Equal(t, V(9, 3), g.Dim())
	for _, v := range g.All() {
		assert.Equal(t, "", v)
	}
}

func TestNewFromFunc(t *testing.T) {
	calls := 0
	g := NewFromFunc(8, 10, func() int {
		calls++
		return calls - 1
	})
	assert.Equal(t, 80, calls, "thunk must run exactly width*height times")
	// results are assigned in row-major order
	for pos, v := range g.All() {
		assert.Equal(t, int(pos.Y*8+pos.X), v)
	}
}

func TestNewFromPosFunc(t *testing.T) {
	calls := map[Vector]int{}
	g := NewFromPosFunc(8, 10, func(p Vector) int64 {
		calls[p]++
		return p.X + p.Y
	})
	assert.Equal(t, int64(8), g.AtXY(5, 3))
	assert.Equal(t, int64(16), g.AtXY(7, 9))
	assert.Len(t, calls, 80)
	for pos, n := range calls {
		assert.Equal(t, 1, n, "position %s filled more than once", pos)
	}
}

func TestInvalidDimensions(t *testing.T) {
	assertPanicsWith(t, ErrInvalidDimensions, func() { New(0, 5, 0) })
	assertPanicsWith(t, ErrInvalidDimensions, func() { New(5, -1, 0) })
	assertPanicsWith(t, ErrInvalidDimensions, func() { NewDefault[int](-3, 2) })
	assertPanicsWith(t, ErrInvalidDimensions, func() {
		NewDefault[int](1<<40, 1<<40) // product overflows int
	})
}

func TestInBounds(t *testing.T) {
	g := New(15, 14, uint8(11))
	assert.True(t, g.InBounds(V(0, 0)))
	assert.True(t, g.InBounds(V(10, 4)))
	assert.True(t, g.InBounds(V(14, 13)))
	assert.False(t, g.InBounds(V(15, 2)))
	assert.False(t, g.InBounds(V(3, 17)))
	assert.False(t, g.InBounds(V(-1, 5)))
	assert.False(t, g.InBounds(V(-15, -14)))
	assert.False(t, g.InBoundsXY(-1, 5))

	v, ok := g.GetXY(-1, 5)
	assert.False(t, ok)
	assert.Zero(t, v)
	assertPanicsWith(t, ErrOutOfBounds, func() { g.AtXY(-1, 5) })
}

func TestGetSet(t *testing.T) {
	g := New(8, 10, uint8(5))

	prev, ok := g.Set(V(2, 3), 7)
	assert.True(t, ok)
	assert.Equal(t, uint8(5), prev)
	v, ok := g.Get(V(2, 3))
	assert.True(t, ok)
	assert.Equal(t, uint8(7), v)
	assert.Equal(t, uint8(7), g.At(V(2, 3)), "Get and At must agree in bounds")

	// out of bounds set is a no-op
	_, ok = g.Set(V(9, 12), 1)
	assert.False(t, ok)
	_, ok = g.SetXY(-4, -7, 3)
	assert.False(t, ok)
	count := 0
	for _, v := range g.All() {
		if v != 5 {
			count++
		}
	}
	assert.Equal(t, 1, count, "only the in-bounds set may be visible")
}

func TestGetPtr(t *testing.T) {
	g := New(8, 10, 4)
	p := g.GetPtr(V(5, 3))
	if assert.NotNil(t, p) {
		*p = 2
	}
	assert.Equal(t, 2, g.At(V(5, 3)))
	assert.Nil(t, g.GetPtr(V(1, 10)))
	assert.Nil(t, g.GetPtrXY(4, -1))

	*g.AtPtr(V(0, 0)) = 9
	assert.Equal(t, 9, g.AtXY(0, 0))
	assertPanicsWith(t, ErrOutOfBounds, func() { g.AtPtr(V(8, 0)) })
}

// the cell at (x, y) must live at linear index x + y*width
func TestRowMajorLayout(t *testing.T) {
	g := New(3, 2, 0)
	g.SetXY(1, 0, 1)
	g.SetXY(0, 1, 2)

	var got []int
	for v := range g.Values() {
		got = append(got, v)
	}
	assert.Equal(t, []int{0, 1, 0, 2, 0, 0}, got)
}

func TestOffset(t *testing.T) {
	g := NewDefault[int](5, 5)
	next, ok := g.Offset(V(4, 2), East)
	assert.False(t, ok)
	assert.Equal(t, V(5, 2), next, "the out-of-bounds position is still reported")
	next, ok = g.Offset(V(4, 2), West)
	assert.True(t, ok)
	assert.Equal(t, V(3, 2), next)
}

// walk from inside the grid until the first out-of-bounds position
func TestWalkOffGrid(t *testing.T) {
	g := NewDefault[int](5, 5)
	pos := V(1, 2)
	for g.InBounds(pos) {
		pos = pos.Add(East)
	}
	assert.Equal(t, V(5, 2), pos)
}

func TestCloneEqual(t *testing.T) {
	a := NewFromPosFunc(4, 3, func(p Vector) int64 { return p.X * p.Y })
	b := a.Clone()
	assert.True(t, Equal(a, b))

	b.SetXY(2, 1, 99)
	assert.False(t, Equal(a, b))
	assert.Equal(t, int64(2), a.AtXY(2, 1), "mutating the clone must not touch the original")

	c := NewFromPosFunc(3, 4, func(p Vector) int64 { return p.X * p.Y })
	assert.False(t, Equal(a, c), "same cells, different dimensions")
}

func TestMap(t *testing.T) {
	a := New(15, 14, uint8(11))
	b := Map(a, func(v uint8) uint8 { return v + 2 })
	assert.Equal(t, a.Dim(), b.Dim())
	assert.Equal(t, uint8(13), b.At(V(2, 3)))
	assert.Equal(t, uint8(11), a.At(V(2, 3)), "source grid is untouched")

	c := Map(b, func(v uint8) string { return strconv.Itoa(int(v)) })
	assert.Equal(t, "13", c.At(V(2, 3)))
}

func TestPosMap(t *testing.T) {
	a := New(5, 6, int64(3))
	b := PosMap(a, func(pos Vector, v int64) int64 { return v + pos.X })
	assert.Equal(t, int64(4), b.At(V(1, 4)))
	assert.Equal(t, int64(6), b.At(V(3, 0)))

	c := PosMap(b, func(pos Vector, v int64) int64 { return v + pos.Y })
	assert.Equal(t, int64(8), c.At(V(1, 4)))
}

func BenchmarkGridAt(b *testing.B) {
	g := NewFromPosFunc(64, 64, func(p Vector) int64 { return p.X ^ p.Y })
	pos := make([]Vector, 0, 64*64)
	for p := range g.Positions() {
		pos = append(pos, p)
	}
	b.ResetTimer()
	var sum int64
	for n := 0; n < b.N; n++ {
		sum += g.At(pos[n%len(pos)])
	}
	_ = sum
}

func BenchmarkNestedSliceIndex(b *testing.B) {
	rows := make([][]int64, 64)
	for y := range rows {
		rows[y] = make([]int64, 64)
		for x := range rows[y] {
			rows[y][x] = int64(x ^ y)
		}
	}
	b.ResetTimer()
	var sum int64
	for n := 0; n < b.N; n++ {
		sum += rows[n%64][(n/64)%64]
	}
	_ = sum
}
