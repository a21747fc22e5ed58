package roundshape

import "math"

// CircleOptions configures Circle. The zero value centers the circle at
// the origin.
type CircleOptions struct {
	Center Point
}

// Circle builds a regular n-gon whose corners are rounded with exactly
// enough radius that the resulting outline is (to floating-point
// precision) a circle of the given radius: the polygon's own radius is
// scaled to radius/cos(π/n) so the corner arcs reach exactly to it.
func Circle(numVertices int, radius float64, opts CircleOptions) (*RoundedPolygon, error) {
	if radius <= 0 {
		return nil, wrapInvalidArgument("circle radius must be > 0, got %v", radius)
	}
	if numVertices < 3 {
		return nil, wrapInvalidArgument("circle requires at least 3 vertices, got %d", numVertices)
	}
	polygonRadius := radius / math.Cos(math.Pi/float64(numVertices))
	return FromVerticesCount(numVertices, polygonRadius, opts.Center, CornerRounding{Radius: radius})
}

// Rectangle builds an axis-aligned rectangle of the given width and
// height, centered at center, with uniform corner rounding.
func Rectangle(width, height float64, center Point, rounding CornerRounding) (*RoundedPolygon, error) {
	if width <= 0 || height <= 0 {
		return nil, wrapInvalidArgument("rectangle width and height must be > 0, got %v x %v", width, height)
	}
	vertices := rectangleVertices(width, height, center)
	return fromVerticesUniform(vertices, rounding, &center)
}

func rectangleVertices(width, height float64, center Point) []Point {
	hw, hh := width/2, height/2
	return []Point{
		center.Add(Pt(-hw, -hh)),
		center.Add(Pt(hw, -hh)),
		center.Add(Pt(hw, hh)),
		center.Add(Pt(-hw, hh)),
	}
}

// StarOptions configures Star. RoundingOuter and RoundingInner apply to
// the outer and inner vertices respectively (both Unrounded by default).
// PerVertexRounding, when non-nil, must have length 2*numVerticesPerRadius
// and overrides RoundingOuter/RoundingInner entirely, vertex by vertex.
type StarOptions struct {
	RoundingOuter     CornerRounding
	RoundingInner     CornerRounding
	PerVertexRounding []CornerRounding
	Center            Point
}

// Star builds a 2*numVerticesPerRadius-gon alternating between outer and
// inner radius vertices, starting at angle 0 on the outer radius and
// sweeping counter-clockwise.
func Star(numVerticesPerRadius int, radiusOuter, radiusInner float64, opts StarOptions) (*RoundedPolygon, error) {
	if numVerticesPerRadius < 3 {
		return nil, wrapInvalidArgument("star requires at least 3 vertices per radius, got %d", numVerticesPerRadius)
	}
	if radiusOuter <= 0 || radiusInner <= 0 {
		return nil, wrapInvalidArgument("star radii must be > 0, got outer=%v inner=%v", radiusOuter, radiusInner)
	}
	if radiusInner >= radiusOuter {
		return nil, wrapInvalidArgument("star inner radius must be < outer radius, got inner=%v outer=%v", radiusInner, radiusOuter)
	}

	n := 2 * numVerticesPerRadius
	if opts.PerVertexRounding != nil && len(opts.PerVertexRounding) != n {
		return nil, wrapInvalidArgument("star per-vertex rounding length %d does not match vertex count %d", len(opts.PerVertexRounding), n)
	}

	vertices := make([]Point, n)
	roundings := make([]CornerRounding, n)
	step := math.Pi / float64(numVerticesPerRadius)
	for i := 0; i < n; i++ {
		angle := step * float64(i)
		if i%2 == 0 {
			vertices[i] = opts.Center.Add(Pt(radiusOuter*math.Cos(angle), radiusOuter*math.Sin(angle)))
			roundings[i] = opts.RoundingOuter
		} else {
			vertices[i] = opts.Center.Add(Pt(radiusInner*math.Cos(angle), radiusInner*math.Sin(angle)))
			roundings[i] = opts.RoundingInner
		}
		if opts.PerVertexRounding != nil {
			roundings[i] = opts.PerVertexRounding[i]
		}
	}
	return buildPolygonFromVertices(vertices, roundings, &opts.Center)
}

// PillOptions configures Pill. The zero value centers the pill at the
// origin.
type PillOptions struct {
	Center Point
}

// Pill builds a stadium shape (a rectangle of the given width and height
// with its shorter pair of sides replaced by semicircular caps): the
// corner radius is exactly half the shorter dimension, so the space
// competition in buildPolygonFromVertices consumes the entire short edge
// and the rounded corner is a true semicircle.
func Pill(width, height float64, opts PillOptions) (*RoundedPolygon, error) {
	if width <= 0 || height <= 0 {
		return nil, wrapInvalidArgument("pill width and height must be > 0, got %v x %v", width, height)
	}
	capRadius := math.Min(width, height) / 2
	vertices := rectangleVertices(width, height, opts.Center)
	return fromVerticesUniform(vertices, CornerRounding{Radius: capRadius}, &opts.Center)
}

// PillStarOptions configures PillStar. VertexSpacing ∈ [0,1] blends each
// vertex between its plain circular position (0) and its projection onto
// the pill's boundary (1; inner vertices project onto that boundary scaled
// by radiusInner/radiusOuter), so that vertices near the straight sides
// of the pill hug the pill outline while the rest fan out more like a
// regular star. StartLocation rotates the whole pattern by that fraction
// of a full turn. Rounding applies uniformly to every vertex.
type PillStarOptions struct {
	Center        Point
	VertexSpacing float64
	StartLocation float64
	Rounding      CornerRounding
}

// PillStar builds a star whose vertices are distributed along the contour
// of a pill shape rather than a circle.
func PillStar(width, height float64, numVerticesPerRadius int, radiusOuter, radiusInner float64, opts PillStarOptions) (*RoundedPolygon, error) {
	if numVerticesPerRadius < 3 {
		return nil, wrapInvalidArgument("pill star requires at least 3 vertices per radius, got %d", numVerticesPerRadius)
	}
	if radiusOuter <= 0 || radiusInner <= 0 || radiusInner >= radiusOuter {
		return nil, wrapInvalidArgument("pill star radii must satisfy 0 < inner < outer, got inner=%v outer=%v", radiusInner, radiusOuter)
	}
	if opts.VertexSpacing < 0 || opts.VertexSpacing > 1 {
		return nil, wrapInvalidArgument("pill star vertex spacing must be in [0,1], got %v", opts.VertexSpacing)
	}
	if width <= 0 || height <= 0 {
		return nil, wrapInvalidArgument("pill star width and height must be > 0, got %v x %v", width, height)
	}

	n := 2 * numVerticesPerRadius
	vertices := make([]Point, n)
	roundings := make([]CornerRounding, n)
	step := math.Pi / float64(numVerticesPerRadius)
	phase := opts.StartLocation * 2 * math.Pi
	hw, hh := width/2, height/2

	for i := 0; i < n; i++ {
		angle := phase + step*float64(i)
		dir := Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
		r := radiusOuter
		if i%2 != 0 {
			r = radiusInner
		}
		circular := opts.Center.Add(dir.Mul(r).ToPoint())
		onPill := opts.Center.Add(pillBoundaryOffset(dir, hw, hh).Mul(r / radiusOuter).ToPoint())
		vertices[i] = circular.Lerp(onPill, opts.VertexSpacing)
		roundings[i] = opts.Rounding
	}
	return buildPolygonFromVertices(vertices, roundings, &opts.Center)
}

// pillBoundaryOffset returns the point where the ray from the origin in
// direction dir meets the stadium boundary of a pill with half-width hw
// and half-height hh, as an offset from the pill's own center.
func pillBoundaryOffset(dir Vec2, hw, hh float64) Vec2 {
	if hw >= hh {
		return stadiumRay(dir, hw, hh)
	}
	// Swap axes so the major axis is always X, solve, then swap back.
	swapped := stadiumRay(Vec2{X: dir.Y, Y: dir.X}, hh, hw)
	return Vec2{X: swapped.Y, Y: swapped.X}
}

// stadiumRay solves the boundary intersection for a stadium whose major
// axis (half-length coreHalf+capR) runs along X: straight top/bottom
// edges at y=±capR for |x|<=coreHalf, joined by semicircle caps of radius
// capR centered at (±coreHalf, 0).
func stadiumRay(dir Vec2, halfLength, capR float64) Vec2 {
	coreHalf := halfLength - capR
	if coreHalf < 0 {
		coreHalf = 0
	}
	if math.Abs(dir.Y) > 1e-12 {
		t := capR / math.Abs(dir.Y)
		x := t * dir.X
		if math.Abs(x) <= coreHalf+1e-9 {
			return Vec2{X: x, Y: sign(dir.Y) * capR}
		}
	}
	cx := coreHalf
	if dir.X < 0 {
		cx = -coreHalf
	}
	// Solve |t*dir - (cx,0)|^2 = capR^2 for the positive root.
	b := -2 * dir.X * cx
	c := cx*cx - capR*capR
	a := dir.X*dir.X + dir.Y*dir.Y
	disc := b*b - 4*a*c
	if disc < 0 {
		disc = 0
	}
	t := (-b + math.Sqrt(disc)) / (2 * a)
	return dir.Mul(t)
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}
