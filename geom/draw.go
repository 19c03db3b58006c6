package geom

import (
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

const drawPadding = 20

// DrawPolygons renders hulls and their bounding boxes to a PNG. Null
// polygons are skipped. The canvas is sized to the union of the bounding
// boxes, with the origin at the bottom left so the output matches the
// coordinate system rather than image convention.
func DrawPolygons(polys []Polygon[float64], path string, scale float64) error {
	var bounds Rect[float64]
	first := true
	for _, poly := range polys {
		if poly.IsNull() {
			continue
		}
		bb := poly.BoundingBox()
		if first {
			bounds = bb
			first = false
			continue
		}
		bounds = NewRect(
			min(bounds.L, bb.L), max(bounds.R, bb.R),
			min(bounds.T, bb.T), max(bounds.B, bb.B),
		)
	}
	if first {
		return errors.New("nothing to draw: all polygons are null")
	}

	width := int(scale*bounds.Width()) + drawPadding*2
	height := int(scale*bounds.Height()) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left.
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-bounds.L, -bounds.T)

	c.SetLineWidth(2)
	for _, poly := range polys {
		if poly.IsNull() {
			continue
		}
		c.MoveTo(poly.At(0).X(), poly.At(0).Y())
		for i := 1; i < poly.Size(); i++ {
			c.LineTo(poly.At(i).X(), poly.At(i).Y())
		}
		c.ClosePath()
		c.SetRGB(0, 0.5, 0)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()

		bb := poly.BoundingBox()
		c.DrawRectangle(bb.L, bb.T, bb.Width(), bb.Height())
		c.SetRGB(1, 0.5, 0)
		c.Stroke()
	}

	return errors.Wrapf(c.SavePNG(path), "saving %q", path)
}

// DebugDraw renders the polygon to a temp file and cats it straight to
// the terminal. This is for debugging purposes only.
func DebugDraw(poly Polygon[float64], scale float64) {
	if err := DrawPolygons([]Polygon[float64]{poly}, "/tmp/convex_hull.png", scale); err != nil {
		return
	}
	imgcat.CatFile("/tmp/convex_hull.png", os.Stdout)
}
