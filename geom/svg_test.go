package geom

import (
	"embed"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//go:embed fixtures
var fixtures embed.FS

func TestPointsFromSVG(t *testing.T) {
	t.Run("collects polygon points", func(t *testing.T) {
		f, err := fixtures.Open("fixtures/square.svg")
		require.NoError(t, err)
		defer f.Close()

		points, err := PointsFromSVG(f)
		require.NoError(t, err)
		require.Len(t, points, 5)
		assert.True(t, points[0].Equal(Pt2(0.0, 0.0)))
		assert.True(t, points[4].Equal(Pt2(5.0, 5.0)))

		// The loaded set hulls like any other point set.
		poly := NewPolygon(points...)
		assert.Equal(t, 4, poly.Size())
	})

	t.Run("polylines count too", func(t *testing.T) {
		svg := `<svg xmlns="http://www.w3.org/2000/svg">
			<polyline points="0,0 1,0"/>
			<polygon points="2,2 3,2 2.5,3"/>
		</svg>`
		points, err := PointsFromSVG(strings.NewReader(svg))
		require.NoError(t, err)
		assert.Len(t, points, 5)
	})

	t.Run("no points is an error", func(t *testing.T) {
		svg := `<svg xmlns="http://www.w3.org/2000/svg"><rect width="5" height="5"/></svg>`
		_, err := PointsFromSVG(strings.NewReader(svg))
		assert.Error(t, err)
	})

	t.Run("malformed points are an error", func(t *testing.T) {
		svg := `<svg xmlns="http://www.w3.org/2000/svg"><polygon points="1,2 3"/></svg>`
		_, err := PointsFromSVG(strings.NewReader(svg))
		assert.Error(t, err)

		svg = `<svg xmlns="http://www.w3.org/2000/svg"><polygon points="a,2 3,4"/></svg>`
		_, err = PointsFromSVG(strings.NewReader(svg))
		assert.Error(t, err)
	})
}
