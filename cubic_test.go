package roundshape

import (
	"math"
	"testing"
)

const testEps = 1e-9

func pointsApproxEqual(p1, p2 Point, eps float64) bool {
	return math.Abs(p1.X-p2.X) < eps && math.Abs(p1.Y-p2.Y) < eps
}

func TestCubic_EvaluateEndpoints(t *testing.T) {
	c := NewCubic(Pt(0, 0), Pt(1, 1), Pt(2, 1), Pt(3, 0))
	if !pointsApproxEqual(c.Evaluate(0), c.Anchor0, testEps) {
		t.Errorf("Evaluate(0) = %v, want %v", c.Evaluate(0), c.Anchor0)
	}
	if !pointsApproxEqual(c.Evaluate(1), c.Anchor1, testEps) {
		t.Errorf("Evaluate(1) = %v, want %v", c.Evaluate(1), c.Anchor1)
	}
}

// StraightLine(0,0,1,0).Split(0.5) meets at (0.5,0).
func TestCubic_StraightLineSplit(t *testing.T) {
	c := StraightLine(Pt(0, 0), Pt(1, 0))
	a, b := c.Split(0.5)

	want := Pt(0.5, 0)
	if !pointsApproxEqual(a.Anchor1, want, testEps) {
		t.Errorf("first half end = %v, want %v", a.Anchor1, want)
	}
	if !pointsApproxEqual(b.Anchor0, want, testEps) {
		t.Errorf("second half start = %v, want %v", b.Anchor0, want)
	}
	if !pointsApproxEqual(a.Anchor0, Pt(0, 0), testEps) {
		t.Errorf("first half start = %v, want (0,0)", a.Anchor0)
	}
	if !pointsApproxEqual(b.Anchor1, Pt(1, 0), testEps) {
		t.Errorf("second half end = %v, want (1,0)", b.Anchor1)
	}
	// Both halves stay on the line y=0.
	for _, p := range []Point{a.Control0, a.Control1, b.Control0, b.Control1} {
		if math.Abs(p.Y) > testEps {
			t.Errorf("control point %v left the line", p)
		}
	}
}

func TestCubic_SplitMeetsEvaluate(t *testing.T) {
	c := NewCubic(Pt(0, 0), Pt(1, 3), Pt(3, 3), Pt(4, 0))
	for _, tt := range []float64{0.1, 0.25, 0.5, 0.73, 0.9} {
		a, b := c.Split(tt)
		want := c.Evaluate(tt)
		if !pointsApproxEqual(a.Anchor1, want, testEps) {
			t.Errorf("t=%v: a.Anchor1 = %v, want %v", tt, a.Anchor1, want)
		}
		if !pointsApproxEqual(b.Anchor0, want, testEps) {
			t.Errorf("t=%v: b.Anchor0 = %v, want %v", tt, b.Anchor0, want)
		}
	}
}

func TestCubic_Reverse(t *testing.T) {
	c := NewCubic(Pt(0, 0), Pt(1, 1), Pt(2, 2), Pt(3, 3))
	r := c.Reverse()
	if r.Anchor0 != c.Anchor1 || r.Anchor1 != c.Anchor0 {
		t.Errorf("Reverse() did not swap anchors: %+v", r)
	}
	if r.Control0 != c.Control1 || r.Control1 != c.Control0 {
		t.Errorf("Reverse() did not swap controls: %+v", r)
	}
	if !pointsApproxEqual(r.Evaluate(0.3), c.Evaluate(0.7), testEps) {
		t.Errorf("Reverse() curve does not trace the same path backwards")
	}
}

func TestCubic_Transform(t *testing.T) {
	c := NewCubic(Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1))
	shift := func(p Point) Point { return p.Add(Pt(5, 5)) }
	got := c.Transform(shift)
	want := NewCubic(Pt(5, 5), Pt(6, 5), Pt(6, 6), Pt(5, 6))
	if got != want {
		t.Errorf("Transform() = %+v, want %+v", got, want)
	}
}

func TestCubic_IsZeroLength(t *testing.T) {
	if !EmptyCubic(Pt(1, 2)).IsZeroLength() {
		t.Error("EmptyCubic should be zero-length")
	}
	if StraightLine(Pt(0, 0), Pt(1, 0)).IsZeroLength() {
		t.Error("unit line should not be zero-length")
	}
	almost := NewCubic(Pt(0, 0), Pt(0, 0), Pt(0, 0), Pt(1e-7, 1e-7))
	if !almost.IsZeroLength() {
		t.Error("anchors within epsDist should count as zero-length")
	}
}

func TestCubic_BoundsOrdering(t *testing.T) {
	c := NewCubic(Pt(0, 0), Pt(0, 1), Pt(1, 1), Pt(1, 0))
	exact := c.Bounds(false)
	approx := c.Bounds(true)

	if exact[0] < approx[0]-testEps || exact[1] < approx[1]-testEps ||
		exact[2] > approx[2]+testEps || exact[3] > approx[3]+testEps {
		t.Errorf("exact bounds %v not contained in approximate bounds %v", exact, approx)
	}
	// The control-point hull pokes taller on Y than the true curve here
	// (hull reaches y=1, the curve peaks at y=0.75).
	if approx[3]-approx[1] <= exact[3]-exact[1] {
		t.Errorf("approximate bounds should be strictly taller on Y: exact=%v approx=%v", exact, approx)
	}
}

func TestCubic_BoundsZeroLength(t *testing.T) {
	c := EmptyCubic(Pt(3, 4))
	want := [4]float64{3, 4, 3, 4}
	if got := c.Bounds(false); got != want {
		t.Errorf("zero-length exact bounds = %v, want %v", got, want)
	}
	if got := c.Bounds(true); got != want {
		t.Errorf("zero-length approximate bounds = %v, want %v", got, want)
	}
}

func TestCircularArc_QuarterCircle(t *testing.T) {
	center := Pt(0, 0)
	p0 := Pt(1, 0)
	p1 := Pt(0, 1)
	c := CircularArc(center, p0, p1)

	// Midpoint of the arc should sit at distance 1 from center, at 45 degrees.
	mid := c.Evaluate(0.5)
	wantMid := Pt(math.Cos(math.Pi/4), math.Sin(math.Pi/4))
	if !pointsApproxEqual(mid, wantMid, 1e-3) {
		t.Errorf("quarter-circle midpoint = %v, want ~%v", mid, wantMid)
	}
	if math.Abs(mid.Length()-1) > 1e-3 {
		t.Errorf("quarter-circle midpoint distance from center = %v, want 1", mid.Length())
	}
}

func TestCircularArc_Clockwise(t *testing.T) {
	center := Pt(0, 0)
	// Sweeping from (1,0) to (0,-1) the short way is clockwise.
	c := CircularArc(center, Pt(1, 0), Pt(0, -1))
	mid := c.Evaluate(0.5)
	if mid.Y > 0 {
		t.Errorf("clockwise arc midpoint should have Y<0, got %v", mid)
	}
}

func TestCircularArc_NearCoincidentFallsBackToLine(t *testing.T) {
	center := Pt(0, 0)
	p0 := Pt(1, 0)
	p1 := Pt(1+1e-8, 1e-9)
	c := CircularArc(center, p0, p1)
	want := StraightLine(p0, p1)
	if c != want {
		t.Errorf("near-coincident CircularArc = %+v, want straight line %+v", c, want)
	}
}

func TestCubic_ArithmeticAndPlus(t *testing.T) {
	a := NewCubic(Pt(1, 1), Pt(1, 1), Pt(1, 1), Pt(1, 1))
	b := NewCubic(Pt(2, 2), Pt(2, 2), Pt(2, 2), Pt(2, 2))

	sum := a.Plus(b)
	want := NewCubic(Pt(3, 3), Pt(3, 3), Pt(3, 3), Pt(3, 3))
	if sum != want {
		t.Errorf("Plus() = %+v, want %+v", sum, want)
	}

	scaled := a.Times(2)
	if scaled != b {
		t.Errorf("Times(2) = %+v, want %+v", scaled, b)
	}

	halved := b.Div(2)
	if halved != a {
		t.Errorf("Div(2) = %+v, want %+v", halved, a)
	}
}
