package roundshape

import (
	"math"
	"testing"

	"github.com/gogpu/roundshape/internal/raster"
)

func TestMorph_EndpointsReproduceSources(t *testing.T) {
	square, err := FromVerticesCount(4, 1, Pt(0, 0), CornerRounding{Radius: 0.2})
	if err != nil {
		t.Fatalf("FromVerticesCount(square): %v", err)
	}
	triangle, err := FromVerticesCount(3, 1.2, Pt(0.1, 0.1), CornerRounding{Radius: 0.1, Smoothing: 0.5})
	if err != nil {
		t.Fatalf("FromVerticesCount(triangle): %v", err)
	}

	m, err := NewMorph(square, triangle)
	if err != nil {
		t.Fatalf("NewMorph: %v", err)
	}

	start := m.At(0)
	end := m.At(1)

	// The cloud must be dense enough that its own point spacing is well
	// under epsRelaxed, or sparse sampling alone exceeds the tolerance.
	wantStart := polygonPointCloud(square, 5000)
	wantEnd := polygonPointCloud(triangle, 5000)

	if d := maxCubicListDistance(start, wantStart); d > epsRelaxed {
		t.Errorf("At(0) deviates from polygon1 by %v", d)
	}
	if d := maxCubicListDistance(end, wantEnd); d > epsRelaxed {
		t.Errorf("At(1) deviates from polygon2 by %v", d)
	}
}

func TestMorph_SelfMorphMatchesSource(t *testing.T) {
	p, err := FromVerticesCount(5, 1, Pt(0, 0), CornerRounding{Radius: 0.25, Smoothing: 0.3})
	if err != nil {
		t.Fatalf("FromVerticesCount: %v", err)
	}
	m, err := NewMorph(p, p)
	if err != nil {
		t.Fatalf("NewMorph: %v", err)
	}

	for _, progress := range []float64{0, 0.25, 0.5, 0.75, 1} {
		shape := m.At(progress)
		if d := maxCubicListDistance(shape, polygonPointCloud(p, 5000)); d > epsRelaxed {
			t.Errorf("progress %v: self-morph deviates from source by %v", progress, d)
		}
	}
}

func TestMorph_IsClosed(t *testing.T) {
	a, _ := FromVerticesCount(3, 1, Pt(0, 0), CornerRounding{Radius: 0.1})
	b, _ := FromVerticesCount(6, 1, Pt(0, 0), CornerRounding{Radius: 0.1})
	m, err := NewMorph(a, b)
	if err != nil {
		t.Fatalf("NewMorph: %v", err)
	}
	for _, progress := range []float64{0, 0.3, 0.5, 0.7, 1} {
		cubics := m.At(progress)
		if len(cubics) == 0 {
			t.Fatalf("progress %v: morph produced no cubics", progress)
		}
		first := cubics[0].Anchor0
		last := cubics[len(cubics)-1].Anchor1
		if first.Distance(last) > 1e-9 {
			t.Errorf("progress %v: morph not closed, first=%v last=%v", progress, first, last)
		}
	}
}

func TestMorph_Bounds(t *testing.T) {
	a, _ := FromVerticesCount(4, 1, Pt(0, 0), CornerRounding{Radius: 0.1})
	b, _ := FromVerticesCount(8, 2, Pt(5, 5), CornerRounding{Radius: 0.1})
	m, err := NewMorph(a, b)
	if err != nil {
		t.Fatalf("NewMorph: %v", err)
	}
	bounds := m.Bounds()
	aBounds := a.Bounds(false)
	bBounds := b.Bounds(false)
	if bounds[0] > aBounds[0] || bounds[0] > bBounds[0] {
		t.Errorf("morph bounds minX %v doesn't cover both sources", bounds[0])
	}
	if bounds[2] < aBounds[2] || bounds[2] < bBounds[2] {
		t.Errorf("morph bounds maxX %v doesn't cover both sources", bounds[2])
	}
}

func TestMorph_AtIntoReusesStorage(t *testing.T) {
	a, _ := FromVerticesCount(4, 1, Pt(0, 0), CornerRounding{Radius: 0.1})
	b, _ := FromVerticesCount(5, 1, Pt(0, 0), CornerRounding{Radius: 0.1})
	m, err := NewMorph(a, b)
	if err != nil {
		t.Fatalf("NewMorph: %v", err)
	}
	buf := make([]Cubic, 0, m.NumPairs())
	out := m.AtInto(0.5, buf)
	if len(out) != m.NumPairs() {
		t.Errorf("AtInto returned %d cubics, want %d", len(out), m.NumPairs())
	}
}

// TestMorph_EndpointsRasterizeIdentically checks that rasterizing polygon1
// and Morph.At(0) (and likewise polygon2/At(1)) to bitmaps produces
// near-identical coverage, since the cubic lists differ only in how they're
// split and ordered, not in the shape they trace.
func TestMorph_EndpointsRasterizeIdentically(t *testing.T) {
	square, err := FromVerticesCount(4, 1, Pt(0, 0), CornerRounding{Radius: 0.2})
	if err != nil {
		t.Fatalf("FromVerticesCount(square): %v", err)
	}
	hexagon, err := FromVerticesCount(6, 1, Pt(0, 0), CornerRounding{Radius: 0.15, Smoothing: 0.4})
	if err != nil {
		t.Fatalf("FromVerticesCount(hexagon): %v", err)
	}

	m, err := NewMorph(square, hexagon)
	if err != nil {
		t.Fatalf("NewMorph: %v", err)
	}

	bounds := unionBounds(square.Bounds(false), hexagon.Bounds(false))
	fit := raster.FitToSize(bounds)

	toRasterCubics := func(cubics []Cubic) []raster.Cubic {
		out := make([]raster.Cubic, len(cubics))
		for i, c := range cubics {
			x0, y0 := fit(c.Anchor0.X, c.Anchor0.Y)
			x1, y1 := fit(c.Control0.X, c.Control0.Y)
			x2, y2 := fit(c.Control1.X, c.Control1.Y)
			x3, y3 := fit(c.Anchor1.X, c.Anchor1.Y)
			out[i] = raster.Cubic{
				Anchor0:  [2]float64{x0, y0},
				Control0: [2]float64{x1, y1},
				Control1: [2]float64{x2, y2},
				Anchor1:  [2]float64{x3, y3},
			}
		}
		return out
	}

	squareBitmap := raster.Rasterize(toRasterCubics(square.Cubics()))
	startBitmap := raster.Rasterize(toRasterCubics(m.At(0)))
	if d := raster.DiffFraction(squareBitmap, startBitmap); d > 0.02 {
		t.Errorf("At(0) rasterizes %v different from polygon1", d)
	}

	hexBitmap := raster.Rasterize(toRasterCubics(hexagon.Cubics()))
	endBitmap := raster.Rasterize(toRasterCubics(m.At(1)))
	if d := raster.DiffFraction(hexBitmap, endBitmap); d > 0.02 {
		t.Errorf("At(1) rasterizes %v different from polygon2", d)
	}
}

// polygonPointCloud samples n points evenly across a polygon's cubic list,
// used to compare a morph endpoint against its source polygon without
// requiring the two to share cubic boundaries.
func polygonPointCloud(p *RoundedPolygon, n int) []Point {
	cubics := p.Cubics()
	out := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		frac := float64(i) / float64(n)
		idx := int(frac * float64(len(cubics)))
		if idx >= len(cubics) {
			idx = len(cubics) - 1
		}
		local := frac*float64(len(cubics)) - float64(idx)
		out = append(out, cubics[idx].Evaluate(local))
	}
	return out
}

// maxCubicListDistance samples cubics the same way polygonPointCloud
// samples a polygon's cubic list, then returns the largest nearest-
// neighbor distance from each sample to the comparison point cloud.
func maxCubicListDistance(cubics []Cubic, cloud []Point) float64 {
	maxDist := 0.0
	for i := 0; i < len(cloud); i++ {
		frac := float64(i) / float64(len(cloud))
		idx := int(frac * float64(len(cubics)))
		if idx >= len(cubics) {
			idx = len(cubics) - 1
		}
		local := frac*float64(len(cubics)) - float64(idx)
		sample := cubics[idx].Evaluate(local)

		best := math.Inf(1)
		for _, q := range cloud {
			if d := sample.Distance(q); d < best {
				best = d
			}
		}
		maxDist = math.Max(maxDist, best)
	}
	return maxDist
}
