package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointConstruction(t *testing.T) {
	t.Run("missing trailing coordinates default to zero", func(t *testing.T) {
		p := Pt2[float64](3)
		assert.Equal(t, 3.0, p.X())
		assert.Equal(t, 0.0, p.Y())

		q := Pt3[int]()
		assert.Equal(t, 0, q.X())
		assert.Equal(t, 0, q.Y())
		assert.Equal(t, 0, q.Z())
	})

	t.Run("too many coordinates is a contract violation", func(t *testing.T) {
		assert.Panics(t, func() { Pt2(1.0, 2.0, 3.0) })
		assert.Panics(t, func() { Pt4(1, 2, 3, 4, 5) })
	})

	t.Run("dimension accessors", func(t *testing.T) {
		assert.Equal(t, 2, Pt2(1.0, 2.0).Dim())
		assert.Equal(t, 3, Pt3(1.0, 2.0, 3.0).Dim())
		assert.Equal(t, 4, Pt4(1.0, 2.0, 3.0, 4.0).Dim())

		p := Pt4(1.0, 2.0, 3.0, 4.0)
		assert.Equal(t, 1.0, p.X())
		assert.Equal(t, 2.0, p.Y())
		assert.Equal(t, 3.0, p.Z())
		assert.Equal(t, 4.0, p.W())
	})
}

func TestPointNullPropagation(t *testing.T) {
	inf := math.Inf(1)

	t.Run("any sentinel coordinate collapses the whole point", func(t *testing.T) {
		p := Pt2(1.0, inf)
		assert.True(t, p.IsNull())
		assert.True(t, p.Equal(NullPoint2[float64]()))
		// Not a partial value: every slot is the sentinel.
		assert.Equal(t, inf, p.X())
		assert.Equal(t, inf, p.Y())
	})

	t.Run("integer sentinel is the max value", func(t *testing.T) {
		p := Pt3(7, math.MaxInt, 9)
		assert.True(t, p.IsNull())
		assert.Equal(t, math.MaxInt, p.X())
		assert.Equal(t, math.MaxInt, p.Z())
	})

	t.Run("Set to the sentinel collapses too", func(t *testing.T) {
		p := Pt2(1.0, 2.0)
		p.SetY(inf)
		assert.True(t, p.IsNull())
		assert.Equal(t, inf, p.X())
	})

	t.Run("valid points stay valid", func(t *testing.T) {
		p := Pt2(1.0, 2.0)
		assert.False(t, p.IsNull())
		p.SetX(5)
		assert.Equal(t, 5.0, p.X())
		assert.Equal(t, 2.0, p.Y())
	})
}

func TestPointAccess(t *testing.T) {
	t.Run("indexed get and set", func(t *testing.T) {
		p := Pt3(1.0, 2.0, 3.0)
		assert.Equal(t, 2.0, p.Get(1))
		p.Set(2, 9)
		assert.Equal(t, 9.0, p.Z())
	})

	t.Run("out of range index is a contract violation", func(t *testing.T) {
		p := Pt2(1.0, 2.0)
		assert.Panics(t, func() { p.Get(2) })
		assert.Panics(t, func() { p.Get(-1) })
		assert.Panics(t, func() { p.Set(2, 0) })
	})

	t.Run("Coords is a copy", func(t *testing.T) {
		p := Pt2(1.0, 2.0)
		c := p.Coords()
		c[0] = 100
		assert.Equal(t, 1.0, p.X())
	})
}

func TestPointArithmetic(t *testing.T) {
	t.Run("dot product", func(t *testing.T) {
		assert.Equal(t, 11.0, Pt2(1.0, 2.0).Dot(Pt2(3.0, 4.0)))
		assert.Equal(t, 32, Pt3(1, 2, 3).Dot(Pt3(4, 5, 6)))
	})

	t.Run("2-D cross product is a scalar", func(t *testing.T) {
		assert.Equal(t, -2.0, Pt2(1.0, 2.0).Cross(Pt2(3.0, 4.0)))
		// Parallel vectors have zero cross product.
		assert.Equal(t, 0.0, Pt2(2.0, 2.0).Cross(Pt2(5.0, 5.0)))
	})

	t.Run("3-D cross product is a vector", func(t *testing.T) {
		x := Pt3(1.0, 0.0, 0.0)
		y := Pt3(0.0, 1.0, 0.0)
		z := Pt3(0.0, 0.0, 1.0)
		assert.True(t, x.Cross(y).Equal(z))
		assert.True(t, y.Cross(z).Equal(x))
		assert.True(t, z.Cross(x).Equal(y))
		// Anticommutative.
		assert.True(t, y.Cross(x).Equal(Pt3(0.0, 0.0, -1.0)))
	})
}

func TestPointEquality(t *testing.T) {
	t.Run("tolerant per coordinate", func(t *testing.T) {
		assert.True(t, Pt2(0.1+0.2, 1.0).Equal(Pt2(0.3, 1.0)))
		assert.False(t, Pt2(1.0, 2.0).Equal(Pt2(1.0, 2.1)))
	})

	t.Run("null equals null only", func(t *testing.T) {
		assert.True(t, NullPoint2[float64]().Equal(NullPoint2[float64]()))
		assert.False(t, NullPoint2[float64]().Equal(Pt2(1.0, 2.0)))
		assert.False(t, Pt2(1.0, 2.0).Equal(NullPoint2[float64]()))
	})

	t.Run("sentinel coordinates are compared exactly, not tolerantly", func(t *testing.T) {
		// Tolerant comparison against +Inf would be meaningless; both-null
		// must still compare equal.
		n := NullPoint2[float64]()
		assert.True(t, n.Equal(n))
	})
}
