package geom

import "math"

// Scalar is the set of coordinate types the kernel works over. Integer
// types compare exactly; float types compare within a relative epsilon
// band so that accumulated rounding error doesn't flip geometric
// predicates.
type Scalar interface {
	int | int32 | int64 | uint | uint32 | uint64 | float32 | float64
}

// Epsilon returns the machine epsilon of T for float types, and zero for
// integer types. A zero epsilon selects the exact comparison path in the
// predicates below, so the integer instantiations never pay for tolerance
// arithmetic.
func Epsilon[T Scalar]() T {
	var zero T
	switch any(zero).(type) {
	case float32:
		e := float64(math.Nextafter32(1, 2) - 1)
		return T(e)
	case float64:
		e := math.Nextafter(1, 2) - 1
		return T(e)
	}
	return zero
}

// Sentinel returns the coordinate value reserved to mean "no valid value":
// positive infinity where the type can represent it, otherwise the maximum
// representable value.
func Sentinel[T Scalar]() T {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return T(math.Inf(1))
	case int:
		v := math.MaxInt
		return T(v)
	case int32:
		var v int32 = math.MaxInt32
		return T(v)
	case int64:
		var v int64 = math.MaxInt64
		return T(v)
	case uint:
		var v uint = math.MaxUint
		return T(v)
	case uint32:
		var v uint32 = math.MaxUint32
		return T(v)
	case uint64:
		var v uint64 = math.MaxUint64
		return T(v)
	}
	return zero
}

// Equal reports whether a and b are equal: exactly for integer types, and
// within eps*(|a|+|b|+1) for float types. The +1 term keeps the tolerance
// from collapsing to zero when both operands are near zero.
func Equal[T Scalar](a, b T) bool {
	eps := Epsilon[T]()
	if eps == 0 {
		return a == b
	}
	return abs(a-b) <= eps*(abs(a)+abs(b)+1)
}

func NotEqual[T Scalar](a, b T) bool {
	return !Equal(a, b)
}

// LessThan reports whether a is strictly less than b. For float types this
// is an independent tolerance test, (b-a) > eps*(|a|+|b|+1), not the
// negation of Equal; at the exact tolerance boundary Equal and LessThan
// can therefore both be false.
func LessThan[T Scalar](a, b T) bool {
	eps := Epsilon[T]()
	if eps == 0 {
		return a < b
	}
	return b-a > eps*(abs(a)+abs(b)+1)
}

func GreaterThan[T Scalar](a, b T) bool {
	return LessThan(b, a)
}

func LessThanEq[T Scalar](a, b T) bool {
	return !LessThan(b, a)
}

func GreaterThanEq[T Scalar](a, b T) bool {
	return !LessThan(a, b)
}

// abs never sees a negative unsigned operand: unsigned types have eps == 0
// and take the exact path before any subtraction happens.
func abs[T Scalar](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
