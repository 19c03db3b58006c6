package geom

import "fmt"

// Rect is an axis-aligned bounding box described by its four edge
// coordinates. The top-left corner is the origin corner, so a well-formed
// rect has L <= R and T <= B (within tolerance for float types). The
// fields are exported the way the rest of the repo exports plain geometry
// data, which means a caller can build a malformed value by hand; every
// constructor normalizes, and Equal treats any two malformed rects as
// equal to each other and to the canonical null.
type Rect[S Scalar] struct {
	L, R, T, B S
}

// NewRect normalizes on construction: a sentinel coordinate or inverted
// bounds collapses to the null rect.
func NewRect[S Scalar](left, right, top, bottom S) Rect[S] {
	rc := Rect[S]{L: left, R: right, T: top, B: bottom}
	if rc.IsNull() {
		return NullRect[S]()
	}
	return rc
}

// RectFrom builds a rect from its top-left corner plus extents.
func RectFrom[S Scalar](origin Point2[S], width, height S) Rect[S] {
	if origin.IsNull() {
		return NullRect[S]()
	}
	return NewRect(origin.X(), origin.X()+width, origin.Y(), origin.Y()+height)
}

func NullRect[S Scalar]() Rect[S] {
	inv := Sentinel[S]()
	return Rect[S]{L: inv, R: inv, T: inv, B: inv}
}

// IsNull reports whether the rect fails its invariant: any edge at the
// sentinel, or left past right, or top past bottom.
func (rc Rect[S]) IsNull() bool {
	inv := Sentinel[S]()
	if rc.L == inv || rc.R == inv || rc.T == inv || rc.B == inv {
		return true
	}
	return GreaterThan(rc.L, rc.R) || GreaterThan(rc.T, rc.B)
}

func (rc Rect[S]) Width() S { return rc.R - rc.L }
func (rc Rect[S]) Height() S { return rc.B - rc.T }

func (rc Rect[S]) Area() S {
	return rc.Width() * rc.Height()
}

func (rc Rect[S]) Perimeter() S {
	return 2*rc.Width() + 2*rc.Height()
}

func (rc Rect[S]) TL() Point2[S] { return Pt2(rc.L, rc.T) }
func (rc Rect[S]) TR() Point2[S] { return Pt2(rc.R, rc.T) }
func (rc Rect[S]) BL() Point2[S] { return Pt2(rc.L, rc.B) }
func (rc Rect[S]) BR() Point2[S] { return Pt2(rc.R, rc.B) }

func (rc Rect[S]) LeftEdge() Segment2[S] { return Seg2(rc.TL(), rc.BL()) }
func (rc Rect[S]) RightEdge() Segment2[S] { return Seg2(rc.TR(), rc.BR()) }
func (rc Rect[S]) TopEdge() Segment2[S] { return Seg2(rc.TL(), rc.TR()) }
func (rc Rect[S]) BottomEdge() Segment2[S] { return Seg2(rc.BL(), rc.BR()) }

// Contains reports whether pt lies inside the rect, edges inclusive
// within tolerance.
func (rc Rect[S]) Contains(pt Point2[S]) bool {
	if rc.IsNull() || pt.IsNull() {
		return false
	}
	return GreaterThanEq(pt.X(), rc.L) && LessThanEq(pt.X(), rc.R) &&
		GreaterThanEq(pt.Y(), rc.T) && LessThanEq(pt.Y(), rc.B)
}

// Equal reports exact coordinate equality, except that two rects which
// both fail the invariant are considered equal regardless of how they
// fail. A hand-built inverted rect therefore equals NullRect before any
// normalization has touched it.
func (rc Rect[S]) Equal(o Rect[S]) bool {
	if rc.L == o.L && rc.R == o.R && rc.T == o.T && rc.B == o.B {
		return true
	}
	return rc.IsNull() && o.IsNull()
}

func (rc Rect[S]) String() string {
	if rc.IsNull() {
		return "rect(null)"
	}
	return fmt.Sprintf("rect(l=%v, r=%v, t=%v, b=%v)", rc.L, rc.R, rc.T, rc.B)
}
