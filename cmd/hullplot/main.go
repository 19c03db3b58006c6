package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/euclid/dbg"
	"github.com/osuushi/euclid/geom"
)

// Demo of hull construction: scatter random points (or load them from an
// SVG), reduce them to convex hulls, and render the hulls with their
// bounding boxes to a PNG. The seed is printed so any interesting result
// can be recreated with --seed.

var (
	seed    = kingpin.Flag("seed", "RNG seed; 0 picks one from the clock.").Default("0").Int64()
	count   = kingpin.Flag("points", "Points per random polygon.").Default("10").Int()
	polys   = kingpin.Flag("polys", "Number of random polygons.").Default("2").Int()
	maxC    = kingpin.Flag("max", "Coordinates are drawn from [0, max).").Default("10").Float64()
	out     = kingpin.Flag("out", "Output PNG path.").Default("hull.png").String()
	scale   = kingpin.Flag("scale", "Pixels per coordinate unit.").Default("40").Float64()
	svgPath = kingpin.Flag("svg", "Hull the points of an SVG's polygons instead of random ones.").String()
	show    = kingpin.Flag("show", "Cat the rendered image to the terminal (iTerm2).").Bool()
)

func main() {
	kingpin.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))
	fmt.Printf("seed %d\n", *seed)

	var hulls []geom.Polygon[float64]
	if *svgPath != "" {
		hulls = append(hulls, hullFromSVG(*svgPath))
	} else {
		for i := 0; i < *polys; i++ {
			hulls = append(hulls, randomHull(rng))
		}
	}

	for i, hull := range hulls {
		describe(i, hull)
	}

	if err := geom.DrawPolygons(hulls, *out, *scale); err != nil {
		fmt.Fprintf(os.Stderr, "render failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", *out)

	if *show {
		imgcat.CatFile(*out, os.Stdout)
	}
}

func randomHull(rng *rand.Rand) geom.Polygon[float64] {
	points := make([]geom.Point2[float64], *count)
	for i := range points {
		points[i] = geom.Pt2(rng.Float64() * *maxC, rng.Float64() * *maxC)
	}
	return geom.NewPolygon(points...)
}

func hullFromSVG(path string) geom.Polygon[float64] {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "opening %s: %v\n", path, err)
		os.Exit(1)
	}
	defer f.Close()

	points, err := geom.PointsFromSVG(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading %s: %v\n", path, err)
		os.Exit(1)
	}
	return geom.NewPolygon(points...)
}

func describe(i int, hull geom.Polygon[float64]) {
	name := dbg.ColorName(hull)
	if hull.IsNull() {
		fmt.Printf("polygon %d (%s): %s\n", i, name, aurora.Red("null"))
		return
	}
	fmt.Printf("polygon %d (%s): %s vertices, bounds %s, perimeter %.3f\n",
		i,
		name,
		aurora.Green(fmt.Sprintf("%d", hull.Size())),
		hull.BoundingBox(),
		hull.Perimeter(),
	)
}
