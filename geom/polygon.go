package geom

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Polygon is a convex polygon maintained as the convex hull of every point
// inserted so far, in counter-clockwise order starting from the bottommost
// (then leftmost) vertex, together with a cached bounding rectangle.
//
// Points are inserted in batches of hullBatchSize: each batch appends its
// non-null points to the accumulated vertex buffer and immediately reduces
// the whole buffer back down to a hull. That re-sorts everything once per
// batch, so inserting N points costs O(N^2/B * log B) in the worst case.
// The payoff is that the working set never grows past the current hull
// plus one batch, which is the trade this type makes for very large
// inputs. Callers who need true incremental hull maintenance need a
// different algorithm.
type Polygon[T Scalar] struct {
	hull   []Point2[T]
	bounds Rect[T]
}

const hullBatchSize = 100

// NewPolygon builds the convex hull of the given points. Null points are
// dropped; fewer than three surviving hull vertices leaves a null polygon.
func NewPolygon[T Scalar](points ...Point2[T]) Polygon[T] {
	var p Polygon[T]
	p.bounds = NullRect[T]()
	p.AddPoints(points)
	return p
}

func NullPolygon[T Scalar]() Polygon[T] {
	return Polygon[T]{bounds: NullRect[T]()}
}

// AddPoints inserts points in batches, reducing the accumulated vertex
// buffer to its hull after each batch and recomputing the bounding box
// once at the end. The hull is recomputed over everything accumulated so
// far, not just the new batch, so the polygon is always left in a
// consistent hull-or-null state.
func (p *Polygon[T]) AddPoints(points []Point2[T]) {
	for start := 0; start < len(points); start += hullBatchSize {
		end := min(start+hullBatchSize, len(points))
		for _, pt := range points[start:end] {
			if !pt.IsNull() {
				p.hull = append(p.hull, pt)
			}
		}
		p.reduce()
	}
	p.refreshBounds()
}

// IsNull reports whether the polygon has no valid hull. The internal
// buffer may still hold one or two accumulated points waiting for a later
// batch to bring the count to three; externally that state is null.
func (p Polygon[T]) IsNull() bool {
	return len(p.hull) < 3 || p.bounds.IsNull()
}

// Size is the number of hull vertices, zero for a null polygon.
func (p Polygon[T]) Size() int {
	if p.IsNull() {
		return 0
	}
	return len(p.hull)
}

// At returns the i'th hull vertex in canonical order. An index outside
// [0, Size()) is a contract violation.
func (p Polygon[T]) At(i int) Point2[T] {
	if i < 0 || i >= p.Size() {
		fatalf("hull index %d out of range for polygon of size %d", i, p.Size())
	}
	return p.hull[i]
}

// Vertices returns a copy of the hull vertex sequence, nil when null.
func (p Polygon[T]) Vertices() []Point2[T] {
	if p.IsNull() {
		return nil
	}
	return append([]Point2[T](nil), p.hull...)
}

// BoundingBox returns the tolerant axis-aligned extent of the hull, or the
// null rectangle when the polygon is null. A zero-value Polygon has never
// computed a box, so it is normalized here rather than trusted.
func (p Polygon[T]) BoundingBox() Rect[T] {
	if len(p.hull) < 3 {
		return NullRect[T]()
	}
	return p.bounds
}

func (p Polygon[T]) Width() T  { return p.BoundingBox().Width() }
func (p Polygon[T]) Height() T { return p.BoundingBox().Height() }

// Perimeter sums the hull edge lengths, including the closing edge.
func (p Polygon[T]) Perimeter() float64 {
	if p.IsNull() {
		return 0
	}
	var perim float64
	for i := range p.hull {
		next := p.hull[(i+1)%len(p.hull)]
		perim += Seg2(p.hull[i], next).Length()
	}
	return perim
}

// Equal starts with the cheap bounding-box rejection, then requires the
// same vertex count and pointwise-equal vertices. Hull order is canonical
// by construction, so two hulls of the same point set compare equal no
// matter what order their points were inserted in.
func (p Polygon[T]) Equal(q Polygon[T]) bool {
	if p.IsNull() || q.IsNull() {
		return p.IsNull() && q.IsNull()
	}
	if !p.bounds.Equal(q.bounds) {
		return false
	}
	if len(p.hull) != len(q.hull) {
		return false
	}
	for i := range p.hull {
		if !p.hull[i].Equal(q.hull[i]) {
			return false
		}
	}
	return true
}

func (p Polygon[T]) String() string {
	if p.IsNull() {
		return "polygon(null)"
	}
	parts := make([]string, len(p.hull))
	for i, pt := range p.hull {
		parts[i] = pt.String()
	}
	return fmt.Sprintf("polygon[%d]: %s", len(p.hull), strings.Join(parts, "->"))
}

// reduce runs a Graham scan over the accumulated vertex buffer, replacing
// it with its convex hull. Fewer than three points is a no-op; the buffer
// keeps accumulating until a later batch gets it there.
func (p *Polygon[T]) reduce() {
	if len(p.hull) < 3 {
		return
	}

	// Pivot: bottommost point, leftmost among the bottommost.
	best := 0
	for i := 1; i < len(p.hull); i++ {
		switch {
		case LessThan(p.hull[i].Y(), p.hull[best].Y()):
			best = i
		case Equal(p.hull[i].Y(), p.hull[best].Y()) && LessThan(p.hull[i].X(), p.hull[best].X()):
			best = i
		}
	}
	pivot := p.hull[best]

	// Sort by polar angle around the pivot, the pivot itself first.
	// Equal angles order by y, then x, ascending, so of several collinear
	// candidates the nearest reaches the scan first.
	sort.Slice(p.hull, func(i, j int) bool {
		return angleLess(p.hull[i], p.hull[j], pivot)
	})

	stack := make([]Point2[T], 0, len(p.hull))
	stack = append(stack, p.hull[0], p.hull[1])

	for i := 2; i < len(p.hull); i++ {
		if len(stack) < 2 {
			stack = append(stack, p.hull[i])
			continue
		}
		a, b := stack[len(stack)-2], stack[len(stack)-1]
		turn := orient(a, b, p.hull[i])
		switch {
		case GreaterThan(turn, 0):
			// Left turn.
			stack = append(stack, p.hull[i])
		case Equal(turn, 0):
			// Collinear. If the candidate sits at the same distance from
			// the common stack point as the current top, the two coincide:
			// drop the top and retry the candidate against a shorter
			// stack. Otherwise the candidate is a redundant collinear
			// point and is discarded.
			d1 := Seg2(a, p.hull[i]).Length()
			d2 := Seg2(a, b).Length()
			if Equal(d1, d2) {
				stack = stack[:len(stack)-1]
				i--
			}
		default:
			// Right turn: the stack top is inside the hull.
			stack = stack[:len(stack)-1]
			i--
		}
	}

	p.hull = stack
}

// angleLess orders points by polar angle about the pivot using the
// tolerant comparisons, so near-equal angles fall through to the
// deterministic y-then-x tie-break instead of flapping on rounding error.
func angleLess[T Scalar](a, b, pivot Point2[T]) bool {
	if a.Equal(pivot) {
		return !b.Equal(pivot)
	}
	if b.Equal(pivot) {
		return false
	}
	angA := math.Atan2(float64(a.Y())-float64(pivot.Y()), float64(a.X())-float64(pivot.X()))
	angB := math.Atan2(float64(b.Y())-float64(pivot.Y()), float64(b.X())-float64(pivot.X()))
	if Equal(angA, angB) {
		if Equal(a.Y(), b.Y()) {
			return GreaterThan(b.X(), a.X())
		}
		return GreaterThan(b.Y(), a.Y())
	}
	return GreaterThan(angB, angA)
}

// orient is the signed turn direction of the path a->b->c: positive for a
// left (counter-clockwise) turn, zero for collinear.
func orient[T Scalar](a, b, c Point2[T]) T {
	return (b.X()-a.X())*(c.Y()-a.Y()) - (b.Y()-a.Y())*(c.X()-a.X())
}

// refreshBounds recomputes the cached bounding rectangle with a single
// tolerant min/max scan over the hull. Tolerant rather than exact, so two
// extreme points within rounding error of each other pick a stable edge.
func (p *Polygon[T]) refreshBounds() {
	if len(p.hull) < 3 {
		p.bounds = NullRect[T]()
		return
	}
	l, r := p.hull[0].X(), p.hull[0].X()
	t, b := p.hull[0].Y(), p.hull[0].Y()
	for _, pt := range p.hull[1:] {
		if LessThan(pt.X(), l) {
			l = pt.X()
		}
		if GreaterThan(pt.X(), r) {
			r = pt.X()
		}
		if LessThan(pt.Y(), t) {
			t = pt.Y()
		}
		if GreaterThan(pt.Y(), b) {
			b = pt.Y()
		}
	}
	p.bounds = NewRect(l, r, t, b)
}
