package geom

import "fmt"

// Points are fixed-dimension coordinate tuples with a distinguished null
// state. Rather than wrapping every point in an optional, one coordinate
// value (the sentinel, see Sentinel) is reserved to mean "no valid
// position". A point is either fully valid or fully null: any operation
// that would leave a sentinel in one slot collapses the whole point to the
// canonical all-sentinel value, so callers only ever need one IsNull
// check.
//
// The coordinate arrays are unexported because the all-or-none invariant
// cannot survive direct field writes.

type Point2[T Scalar] struct {
	c [2]T
}

type Point3[T Scalar] struct {
	c [3]T
}

type Point4[T Scalar] struct {
	c [4]T
}

// Pt2 builds a 2-D point. Missing trailing coordinates default to zero;
// more than two is a contract violation.
func Pt2[T Scalar](coords ...T) Point2[T] {
	var p Point2[T]
	fillCoords(p.c[:], coords)
	return p
}

// Pt3 builds a 3-D point from up to three coordinates.
func Pt3[T Scalar](coords ...T) Point3[T] {
	var p Point3[T]
	fillCoords(p.c[:], coords)
	return p
}

// Pt4 builds a 4-D point from up to four coordinates.
func Pt4[T Scalar](coords ...T) Point4[T] {
	var p Point4[T]
	fillCoords(p.c[:], coords)
	return p
}

func NullPoint2[T Scalar]() Point2[T] {
	inv := Sentinel[T]()
	return Point2[T]{c: [2]T{inv, inv}}
}

func NullPoint3[T Scalar]() Point3[T] {
	inv := Sentinel[T]()
	return Point3[T]{c: [3]T{inv, inv, inv}}
}

func NullPoint4[T Scalar]() Point4[T] {
	inv := Sentinel[T]()
	return Point4[T]{c: [4]T{inv, inv, inv, inv}}
}

func fillCoords[T Scalar](dst []T, coords []T) {
	if len(coords) > len(dst) {
		fatalf("too many coordinates: got %d for a %d-dimensional point", len(coords), len(dst))
	}
	copy(dst, coords)
	for i := len(coords); i < len(dst); i++ {
		dst[i] = 0
	}
	collapseIfSentinel(dst)
}

// collapseIfSentinel enforces the all-or-none null invariant on a
// coordinate slice.
func collapseIfSentinel[T Scalar](dst []T) {
	inv := Sentinel[T]()
	for _, v := range dst {
		if v == inv {
			for i := range dst {
				dst[i] = inv
			}
			return
		}
	}
}

func getCoord[T Scalar](c []T, i int) T {
	if i < 0 || i >= len(c) {
		fatalf("coordinate index %d out of range for dimension %d", i, len(c))
	}
	return c[i]
}

func setCoord[T Scalar](c []T, i int, v T) {
	if i < 0 || i >= len(c) {
		fatalf("coordinate index %d out of range for dimension %d", i, len(c))
	}
	c[i] = v
	collapseIfSentinel(c)
}

func coordsEqual[T Scalar](a, b []T) bool {
	inv := Sentinel[T]()
	for i := range a {
		// Tolerant comparison against an infinite or maximal sentinel is
		// meaningless, so sentinel slots compare by identity.
		if a[i] == inv || b[i] == inv {
			if a[i] != b[i] {
				return false
			}
			continue
		}
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func dot[T Scalar](a, b []T) T {
	var sum T
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// Point2

func (p Point2[T]) Get(i int) T { return getCoord(p.c[:], i) }
func (p *Point2[T]) Set(i int, v T) { setCoord(p.c[:], i, v) }
func (p Point2[T]) X() T { return p.c[0] }
func (p Point2[T]) Y() T { return p.c[1] }
func (p *Point2[T]) SetX(x T) { setCoord(p.c[:], 0, x) }
func (p *Point2[T]) SetY(y T) { setCoord(p.c[:], 1, y) }
func (p Point2[T]) Dim() int { return 2 }
func (p Point2[T]) Coords() []T { return append([]T(nil), p.c[:]...) }
func (p Point2[T]) IsNull() bool { return p.c[0] == Sentinel[T]() }

func (p Point2[T]) Dot(q Point2[T]) T {
	return dot(p.c[:], q.c[:])
}

// Cross is the scalar 2-D cross product x1*y2 - y1*x2. Its sign gives the
// turn direction from p to q, which is what the hull scan runs on.
func (p Point2[T]) Cross(q Point2[T]) T {
	return p.c[0]*q.c[1] - p.c[1]*q.c[0]
}

func (p Point2[T]) Equal(q Point2[T]) bool {
	return coordsEqual(p.c[:], q.c[:])
}

func (p Point2[T]) String() string {
	if p.IsNull() {
		return "(null)"
	}
	return fmt.Sprintf("(%v, %v)", p.c[0], p.c[1])
}

// Point3

func (p Point3[T]) Get(i int) T { return getCoord(p.c[:], i) }
func (p *Point3[T]) Set(i int, v T) { setCoord(p.c[:], i, v) }
func (p Point3[T]) X() T { return p.c[0] }
func (p Point3[T]) Y() T { return p.c[1] }
func (p Point3[T]) Z() T { return p.c[2] }
func (p *Point3[T]) SetX(x T) { setCoord(p.c[:], 0, x) }
func (p *Point3[T]) SetY(y T) { setCoord(p.c[:], 1, y) }
func (p *Point3[T]) SetZ(z T) { setCoord(p.c[:], 2, z) }
func (p Point3[T]) Dim() int { return 3 }
func (p Point3[T]) Coords() []T { return append([]T(nil), p.c[:]...) }
func (p Point3[T]) IsNull() bool { return p.c[0] == Sentinel[T]() }

func (p Point3[T]) Dot(q Point3[T]) T {
	return dot(p.c[:], q.c[:])
}

// Cross is the full 3-D vector cross product.
func (p Point3[T]) Cross(q Point3[T]) Point3[T] {
	return Pt3(
		p.c[1]*q.c[2]-p.c[2]*q.c[1],
		p.c[2]*q.c[0]-p.c[0]*q.c[2],
		p.c[0]*q.c[1]-p.c[1]*q.c[0],
	)
}

func (p Point3[T]) Equal(q Point3[T]) bool {
	return coordsEqual(p.c[:], q.c[:])
}

func (p Point3[T]) String() string {
	if p.IsNull() {
		return "(null)"
	}
	return fmt.Sprintf("(%v, %v, %v)", p.c[0], p.c[1], p.c[2])
}

// Point4

func (p Point4[T]) Get(i int) T { return getCoord(p.c[:], i) }
func (p *Point4[T]) Set(i int, v T) { setCoord(p.c[:], i, v) }
func (p Point4[T]) X() T { return p.c[0] }
func (p Point4[T]) Y() T { return p.c[1] }
func (p Point4[T]) Z() T { return p.c[2] }
func (p Point4[T]) W() T { return p.c[3] }
func (p *Point4[T]) SetX(x T) { setCoord(p.c[:], 0, x) }
func (p *Point4[T]) SetY(y T) { setCoord(p.c[:], 1, y) }
func (p *Point4[T]) SetZ(z T) { setCoord(p.c[:], 2, z) }
func (p *Point4[T]) SetW(w T) { setCoord(p.c[:], 3, w) }
func (p Point4[T]) Dim() int { return 4 }
func (p Point4[T]) Coords() []T { return append([]T(nil), p.c[:]...) }
func (p Point4[T]) IsNull() bool { return p.c[0] == Sentinel[T]() }

func (p Point4[T]) Dot(q Point4[T]) T {
	return dot(p.c[:], q.c[:])
}

func (p Point4[T]) Equal(q Point4[T]) bool {
	return coordsEqual(p.c[:], q.c[:])
}

func (p Point4[T]) String() string {
	if p.IsNull() {
		return "(null)"
	}
	return fmt.Sprintf("(%v, %v, %v, %v)", p.c[0], p.c[1], p.c[2], p.c[3])
}
