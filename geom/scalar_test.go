package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEpsilon(t *testing.T) {
	t.Run("zero for integer types", func(t *testing.T) {
		assert.Equal(t, 0, Epsilon[int]())
		assert.Equal(t, int64(0), Epsilon[int64]())
		assert.Equal(t, uint32(0), Epsilon[uint32]())
	})

	t.Run("machine epsilon for float types", func(t *testing.T) {
		assert.Equal(t, math.Nextafter(1, 2)-1, Epsilon[float64]())
		assert.Equal(t, math.Nextafter32(1, 2)-1, Epsilon[float32]())
	})
}

func TestSentinel(t *testing.T) {
	t.Run("infinity where the type has one", func(t *testing.T) {
		assert.True(t, math.IsInf(Sentinel[float64](), 1))
		assert.True(t, math.IsInf(float64(Sentinel[float32]()), 1))
	})

	t.Run("max value otherwise", func(t *testing.T) {
		assert.Equal(t, math.MaxInt, Sentinel[int]())
		assert.Equal(t, int32(math.MaxInt32), Sentinel[int32]())
		assert.Equal(t, int64(math.MaxInt64), Sentinel[int64]())
		assert.Equal(t, uint(math.MaxUint), Sentinel[uint]())
		assert.Equal(t, uint64(math.MaxUint64), Sentinel[uint64]())
	})
}

func TestEqual(t *testing.T) {
	t.Run("reflexive for every non-sentinel value", func(t *testing.T) {
		for _, x := range []float64{0, 1, -1, 0.1, 1e-300, 1e300, math.Pi} {
			assert.True(t, Equal(x, x), "Equal(%v, %v)", x, x)
		}
		for _, x := range []int{0, 1, -7, math.MaxInt - 1} {
			assert.True(t, Equal(x, x))
		}
	})

	t.Run("integers compare exactly", func(t *testing.T) {
		assert.True(t, Equal(3, 3))
		assert.False(t, Equal(3, 4))
	})

	t.Run("floats absorb rounding error", func(t *testing.T) {
		// Classic float rot: 0.1+0.2 != 0.3 exactly.
		assert.True(t, Equal(0.1+0.2, 0.3))
		assert.False(t, 0.1+0.2 == 0.3)
	})

	t.Run("tolerance does not collapse at zero", func(t *testing.T) {
		// With a purely relative tolerance, eps*(|a|+|b|) would be zero
		// here and the comparison would degenerate to exact equality.
		eps := Epsilon[float64]()
		assert.True(t, Equal(0.0, eps/2))
		assert.False(t, Equal(0.0, 1e-9))
	})

	t.Run("distinct values stay distinct", func(t *testing.T) {
		assert.False(t, Equal(1.0, 1.0001))
		assert.False(t, Equal(-1.0, 1.0))
	})
}

func TestOrdering(t *testing.T) {
	t.Run("integer ordering is exact", func(t *testing.T) {
		assert.True(t, LessThan(1, 2))
		assert.False(t, LessThan(2, 2))
		assert.True(t, GreaterThan(3, 2))
		assert.True(t, LessThanEq(2, 2))
		assert.True(t, GreaterThanEq(2, 2))
		assert.True(t, NotEqual(1, 2))
	})

	t.Run("float ordering ignores differences inside the band", func(t *testing.T) {
		a := 1.0
		b := a + Epsilon[float64]()
		assert.False(t, LessThan(a, b))
		assert.False(t, GreaterThan(b, a))
		assert.True(t, LessThanEq(a, b))
		assert.True(t, LessThanEq(b, a))
	})

	t.Run("float ordering sees real differences", func(t *testing.T) {
		assert.True(t, LessThan(1.0, 1.1))
		assert.False(t, LessThan(1.1, 1.0))
		assert.True(t, GreaterThan(1.1, 1.0))
	})

	t.Run("derived predicates agree with the primitives", func(t *testing.T) {
		pairs := [][2]float64{{1, 2}, {2, 1}, {1, 1}, {-0.5, 0.5}}
		for _, p := range pairs {
			a, b := p[0], p[1]
			assert.Equal(t, LessThan(b, a), GreaterThan(a, b))
			assert.Equal(t, !LessThan(b, a), LessThanEq(a, b))
			assert.Equal(t, !LessThan(a, b), GreaterThanEq(a, b))
		}
	})
}
