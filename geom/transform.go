package geom

import "math"

// Geometric transforms live outside the core types and work only through
// their public accessors. Each one feeds the transformed vertices back
// through the normal construction path, so the hull order, bounding box
// and null invariants re-establish themselves rather than being patched
// up in place.

// Translate returns poly shifted by (dx, dy). A null polygon stays null.
func Translate[T Scalar](poly Polygon[T], dx, dy T) Polygon[T] {
	pts := poly.Vertices()
	for i, pt := range pts {
		pts[i] = Pt2(pt.X()+dx, pt.Y()+dy)
	}
	return NewPolygon(pts...)
}

// Rotate returns poly rotated by the given angle in radians,
// counter-clockwise, about the given point. Integer coordinate types
// round to nearest.
func Rotate[T Scalar](poly Polygon[T], about Point2[T], radians float64) Polygon[T] {
	if about.IsNull() {
		return NullPolygon[T]()
	}
	sin, cos := math.Sincos(radians)
	ax := float64(about.X())
	ay := float64(about.Y())
	pts := poly.Vertices()
	for i, pt := range pts {
		dx := float64(pt.X()) - ax
		dy := float64(pt.Y()) - ay
		pts[i] = Pt2(
			roundNearest[T](ax+dx*cos-dy*sin),
			roundNearest[T](ay+dx*sin+dy*cos),
		)
	}
	return NewPolygon(pts...)
}

// Mirror returns poly reflected across the infinite line through the
// given segment. A null or degenerate (zero-length) segment yields a null
// polygon.
func Mirror[T Scalar](poly Polygon[T], over Segment2[T]) Polygon[T] {
	if over.IsNull() || over.Start.Equal(over.End) {
		return NullPolygon[T]()
	}
	ox := float64(over.Start.X())
	oy := float64(over.Start.Y())
	lx := float64(over.End.X()) - ox
	ly := float64(over.End.Y()) - oy
	norm := lx*lx + ly*ly
	pts := poly.Vertices()
	for i, pt := range pts {
		dx := float64(pt.X()) - ox
		dy := float64(pt.Y()) - oy
		// Projection of the vertex onto the mirror line, doubled, minus
		// the vertex: the standard reflection formula.
		t := (dx*lx + dy*ly) / norm
		pts[i] = Pt2(
			roundNearest[T](ox+2*t*lx-dx),
			roundNearest[T](oy+2*t*ly-dy),
		)
	}
	return NewPolygon(pts...)
}

// ContainsPoint reports whether pt lies inside or on the boundary of the
// convex polygon. The hull winds counter-clockwise, so the point is
// inside iff it sits on the left of (or on) every edge.
func ContainsPoint[T Scalar](poly Polygon[T], pt Point2[T]) bool {
	if poly.IsNull() || pt.IsNull() {
		return false
	}
	n := poly.Size()
	for i := 0; i < n; i++ {
		a := poly.At(i)
		b := poly.At((i + 1) % n)
		if LessThan(orient(a, b, pt), 0) {
			return false
		}
	}
	return true
}

// roundNearest converts a float result back to the coordinate type,
// rounding to nearest for integer types instead of truncating.
func roundNearest[T Scalar](v float64) T {
	if Epsilon[T]() == 0 {
		return T(math.Round(v))
	}
	return T(v)
}
