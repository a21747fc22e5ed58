package roundshape

import "math"

// Cubic is an immutable cubic Bézier curve: two anchors (Anchor0, Anchor1)
// and two control points (Control0, Control1) in the standard Bernstein
// form. Once constructed a Cubic is never mutated; every operation below
// returns a new value.
type Cubic struct {
	Anchor0, Control0, Control1, Anchor1 Point
}

// NewCubic builds a Cubic from its four points directly.
func NewCubic(anchor0, control0, control1, anchor1 Point) Cubic {
	return Cubic{Anchor0: anchor0, Control0: control0, Control1: control1, Anchor1: anchor1}
}

// StraightLine returns a Cubic that traces the straight segment from p0 to
// p1, with control points placed at one third and two thirds along it.
func StraightLine(p0, p1 Point) Cubic {
	return Cubic{
		Anchor0:  p0,
		Control0: p0.Lerp(p1, 1.0/3.0),
		Control1: p0.Lerp(p1, 2.0/3.0),
		Anchor1:  p1,
	}
}

// EmptyCubic returns a zero-length Cubic with all four points equal to p,
// used at unrounded or coincident vertices where no corner curve is drawn.
func EmptyCubic(p Point) Cubic {
	return Cubic{Anchor0: p, Control0: p, Control1: p, Anchor1: p}
}

// CircularArc approximates, with a single cubic, the minor arc (at most
// 180 degrees) of the circle centered at center that runs from p0 to p1.
// p0 and p1 must be equidistant from center. The arc's orientation (which
// of the two ways around the circle it takes) is chosen by the sign of
// the cross product of (p0-center) and (p1-center): a positive cross
// product sweeps counter-clockwise, negative sweeps clockwise. For
// near-coincident endpoints this degrades gracefully to StraightLine.
func CircularArc(center, p0, p1 Point) Cubic {
	if p0.Distance(p1) < epsDist {
		return StraightLine(p0, p1)
	}

	r0 := p0.Sub(center)
	r1 := p1.Sub(center)

	// Signed angle swept from r0 to r1; atan2's range (-pi, pi] already
	// picks the minor arc and carries the orientation sign.
	theta := math.Atan2(r0.Cross(r1), r0.Dot(r1))
	if math.Abs(theta) < 1e-6 {
		return StraightLine(p0, p1)
	}

	// Standard single-cubic circular-arc approximation: the tangent
	// offset at each endpoint is k times the radius vector rotated a
	// quarter turn, k = 4/3 * tan(theta/4). See e.g.
	// https://pomax.github.io/bezierinfo/#circles_cubic
	k := 4.0 / 3.0 * math.Tan(theta/4.0)
	tangent0 := Point{X: -r0.Y, Y: r0.X}
	tangent1 := Point{X: -r1.Y, Y: r1.X}

	return Cubic{
		Anchor0:  p0,
		Control0: p0.Add(tangent0.Mul(k)),
		Control1: p1.Sub(tangent1.Mul(k)),
		Anchor1:  p1,
	}
}

// Evaluate returns the point on the curve at parameter t, using the
// standard cubic Bernstein form.
func (c Cubic) Evaluate(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t

	return Point{
		X: mt3*c.Anchor0.X + 3*mt2*t*c.Control0.X + 3*mt*t2*c.Control1.X + t3*c.Anchor1.X,
		Y: mt3*c.Anchor0.Y + 3*mt2*t*c.Control0.Y + 3*mt*t2*c.Control1.Y + t3*c.Anchor1.Y,
	}
}

// Split divides the curve at parameter t into two cubics using De
// Casteljau's algorithm. The two halves meet exactly at Evaluate(t).
func (c Cubic) Split(t float64) (Cubic, Cubic) {
	p01 := c.Anchor0.Lerp(c.Control0, t)
	p12 := c.Control0.Lerp(c.Control1, t)
	p23 := c.Control1.Lerp(c.Anchor1, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	mid := p012.Lerp(p123, t)

	return Cubic{Anchor0: c.Anchor0, Control0: p01, Control1: p012, Anchor1: mid},
		Cubic{Anchor0: mid, Control0: p123, Control1: p23, Anchor1: c.Anchor1}
}

// Reverse returns the curve traversed in the opposite direction: it swaps
// Anchor0 with Anchor1 and Control0 with Control1.
func (c Cubic) Reverse() Cubic {
	return Cubic{
		Anchor0:  c.Anchor1,
		Control0: c.Control1,
		Control1: c.Control0,
		Anchor1:  c.Anchor0,
	}
}

// Transform applies f to each of the curve's four points and returns the
// resulting curve.
func (c Cubic) Transform(f func(Point) Point) Cubic {
	return Cubic{
		Anchor0:  f(c.Anchor0),
		Control0: f(c.Control0),
		Control1: f(c.Control1),
		Anchor1:  f(c.Anchor1),
	}
}

// Plus adds two curves' points elementwise.
func (c Cubic) Plus(o Cubic) Cubic {
	return Cubic{
		Anchor0:  c.Anchor0.Add(o.Anchor0),
		Control0: c.Control0.Add(o.Control0),
		Control1: c.Control1.Add(o.Control1),
		Anchor1:  c.Anchor1.Add(o.Anchor1),
	}
}

// Times scales every point of the curve by s.
func (c Cubic) Times(s float64) Cubic {
	return Cubic{
		Anchor0:  c.Anchor0.Mul(s),
		Control0: c.Control0.Mul(s),
		Control1: c.Control1.Mul(s),
		Anchor1:  c.Anchor1.Mul(s),
	}
}

// Div divides every point of the curve by s.
func (c Cubic) Div(s float64) Cubic {
	return c.Times(1.0 / s)
}

// IsZeroLength reports whether the curve's two anchors coincide within
// epsDist under the Chebyshev (L-infinity) norm.
func (c Cubic) IsZeroLength() bool {
	return math.Abs(c.Anchor0.X-c.Anchor1.X) < epsDist && math.Abs(c.Anchor0.Y-c.Anchor1.Y) < epsDist
}

// Bounds returns the axis-aligned bounding box of the curve as
// [minX, minY, maxX, maxY]. When approximate is true, the box is the
// bounding box of the four control points (fast, always a superset of
// the true bounds). When false, it is the exact bounds, found by
// evaluating the curve at its two anchors and at every real root in
// [0,1] of its derivative along each axis.
func (c Cubic) Bounds(approximate bool) [4]float64 {
	if approximate {
		return boundsOf(c.Anchor0, c.Control0, c.Control1, c.Anchor1)
	}
	return c.exactBounds()
}

func (c Cubic) exactBounds() [4]float64 {
	if c.IsZeroLength() {
		return boundsOf(c.Anchor0)
	}

	pts := []Point{c.Anchor0, c.Anchor1}

	// Derivative of the Bernstein cubic is a quadratic in t; its
	// coefficients per axis come from the first differences of the
	// control polygon, same derivation as Cubic.Extrema in the curve
	// package this is grounded on.
	d0 := c.Control0.Sub(c.Anchor0)
	d1 := c.Control1.Sub(c.Control0)
	d2 := c.Anchor1.Sub(c.Control1)

	ax := d0.X - 2*d1.X + d2.X
	bx := 2 * (d1.X - d0.X)
	cx := d0.X
	for _, t := range solveQuadraticInUnitInterval(ax, bx, cx) {
		pts = append(pts, c.Evaluate(t))
	}

	ay := d0.Y - 2*d1.Y + d2.Y
	by := 2 * (d1.Y - d0.Y)
	cy := d0.Y
	for _, t := range solveQuadraticInUnitInterval(ay, by, cy) {
		pts = append(pts, c.Evaluate(t))
	}

	return boundsOf(pts...)
}

// boundsOf returns the bounding box of an arbitrary non-empty set of
// points as [minX, minY, maxX, maxY].
func boundsOf(pts ...Point) [4]float64 {
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := pts[0].X, pts[0].Y
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return [4]float64{minX, minY, maxX, maxY}
}
