package geom

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// PointsFromSVG collects the vertices of every polygon and polyline
// element in an SVG document, in document order. It is a point-set
// loader, not an SVG renderer: paths, transforms and curves are ignored.
// The result is ready to feed to NewPolygon or AddPoints.
func PointsFromSVG(r io.Reader) ([]Point2[float64], error) {
	root, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var points []Point2[float64]
	elements := append(root.FindAll("polygon"), root.FindAll("polyline")...)
	for _, el := range elements {
		parsed, err := parsePointsAttr(el.Attributes["points"])
		if err != nil {
			return nil, err
		}
		points = append(points, parsed...)
	}
	if len(points) == 0 {
		return nil, errors.New("no polygon or polyline points found")
	}
	return points, nil
}

// parsePointsAttr handles the SVG "points" attribute, pairs of "x,y"
// separated by whitespace.
func parsePointsAttr(attr string) ([]Point2[float64], error) {
	var points []Point2[float64]
	for _, pair := range strings.Fields(attr) {
		coords := strings.Split(pair, ",")
		if len(coords) != 2 {
			return nil, errors.Errorf("invalid point %q in points attribute", pair)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", coords[0])
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", coords[1])
		}
		points = append(points, Pt2(x, y))
	}
	return points, nil
}
