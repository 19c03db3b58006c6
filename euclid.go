// An epsilon-tolerant 2-D/3-D geometry kernel for Go.
//
// This package is the float64 face of the kernel: points, segments,
// axis-aligned rectangles, and convex polygons built by Graham scan, all
// sharing one "null" convention (a sentinel coordinate value) and
// floating-point-tolerant comparisons. Exact integer coordinate types and
// the 3-D/4-D points live in the geom package, which this package wraps.
package euclid

import "github.com/osuushi/euclid/geom"

type Point2 = geom.Point2[float64]
type Point3 = geom.Point3[float64]
type Point4 = geom.Point4[float64]
type Segment2 = geom.Segment2[float64]
type Rect = geom.Rect[float64]
type Polygon = geom.Polygon[float64]

// Pt builds a 2-D float64 point.
func Pt(x, y float64) Point2 { return geom.Pt2(x, y) }

// NullPoint is the canonical "no position" point; every coordinate is the
// sentinel (+Inf for float64).
func NullPoint() Point2 { return geom.NullPoint2[float64]() }

func NullRect() Rect { return geom.NullRect[float64]() }

func NullPolygon() Polygon { return geom.NullPolygon[float64]() }

// ConvexHull reduces a point set to its convex hull.
//
// Null points are dropped from the input. If fewer than three hull
// vertices survive (including the collinear-input case), the result is a
// null polygon, not an error; null is a first-class result that callers
// check with IsNull. The error return only reports contract violations
// recovered from the kernel.
func ConvexHull(points ...Point2) (result Polygon, err error) {
	defer func() {
		recoveredErr := geom.HandleGeometryPanicRecover(recover())
		if recoveredErr != nil {
			result = NullPolygon()
			err = recoveredErr
		}
	}()
	return geom.NewPolygon(points...), nil
}
