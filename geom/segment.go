package geom

import (
	"fmt"
	"math"
)

// Segment2 is a line segment between two 2-D points. It exists mostly in
// service of the other primitives: rectangle edges are segments, and the
// hull scan measures segment lengths to resolve collinear candidates.
type Segment2[T Scalar] struct {
	Start, End Point2[T]
}

func Seg2[T Scalar](start, end Point2[T]) Segment2[T] {
	return Segment2[T]{Start: start, End: end}
}

func NullSegment2[T Scalar]() Segment2[T] {
	return Segment2[T]{Start: NullPoint2[T](), End: NullPoint2[T]()}
}

// A segment with either endpoint null is null as a whole.
func (s Segment2[T]) IsNull() bool {
	return s.Start.IsNull() || s.End.IsNull()
}

// Length is always computed in float64, even for integer coordinates;
// integer segment lengths are rarely integers.
func (s Segment2[T]) Length() float64 {
	if s.IsNull() {
		return math.Inf(1)
	}
	dx := float64(s.End.X()) - float64(s.Start.X())
	dy := float64(s.End.Y()) - float64(s.Start.Y())
	return math.Hypot(dx, dy)
}

// Midpoint truncates toward the start for integer coordinate types.
func (s Segment2[T]) Midpoint() Point2[T] {
	if s.IsNull() {
		return NullPoint2[T]()
	}
	return Pt2(s.Start.X()+(s.End.X()-s.Start.X())/2, s.Start.Y()+(s.End.Y()-s.Start.Y())/2)
}

func (s Segment2[T]) Equal(o Segment2[T]) bool {
	if s.IsNull() || o.IsNull() {
		return s.IsNull() && o.IsNull()
	}
	return s.Start.Equal(o.Start) && s.End.Equal(o.End)
}

func (s Segment2[T]) String() string {
	if s.IsNull() {
		return "segment(null)"
	}
	return fmt.Sprintf("%s->%s", s.Start, s.End)
}
