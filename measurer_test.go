package roundshape

import (
	"math"
	"testing"
)

func TestLengthMeasurer_StraightLine(t *testing.T) {
	lm := LengthMeasurer{}
	c := StraightLine(Pt(0, 0), Pt(3, 4))
	if got := lm.Measure(c); math.Abs(got-5) > 1e-9 {
		t.Errorf("Measure(straight 3-4-5 line) = %v, want 5", got)
	}
}

func TestLengthMeasurer_QuarterCircleAccuracy(t *testing.T) {
	lm := LengthMeasurer{}
	c := CircularArc(Pt(0, 0), Pt(1, 0), Pt(0, 1))
	want := math.Pi / 2
	got := lm.Measure(c)
	if math.Abs(got-want)/want > 0.015 {
		t.Errorf("quarter-circle measured length = %v, want within 1.5%% of %v", got, want)
	}
}

func TestLengthMeasurer_FindCutParameterRoundTrips(t *testing.T) {
	lm := LengthMeasurer{}
	c := StraightLine(Pt(0, 0), Pt(10, 0))
	total := lm.Measure(c)
	for _, frac := range []float64{0, 0.25, 0.5, 0.75, 1.0} {
		target := frac * total
		tParam := lm.FindCutParameter(c, target)
		first, _ := c.Split(tParam)
		got := lm.Measure(first)
		if math.Abs(got-target) > 1e-6 {
			t.Errorf("frac=%v: FindCutParameter round-trip length = %v, want %v", frac, got, target)
		}
	}
}

func TestLengthMeasurer_FindCutParameterClamps(t *testing.T) {
	lm := LengthMeasurer{}
	c := StraightLine(Pt(0, 0), Pt(1, 0))
	if t0 := lm.FindCutParameter(c, -5); t0 != 0 {
		t.Errorf("negative target should clamp to t=0, got %v", t0)
	}
	if t1 := lm.FindCutParameter(c, 100); t1 != 1 {
		t.Errorf("oversized target should clamp to t=1, got %v", t1)
	}
}

// Measured total circumference should track the true circle circumference.
func TestLengthMeasurer_CircleAccuracy(t *testing.T) {
	lm := LengthMeasurer{}
	for _, v := range []int{4, 8, 16, 32} {
		c, err := Circle(v, 2.0, CircleOptions{})
		if err != nil {
			t.Fatalf("Circle(%d): %v", v, err)
		}
		total := 0.0
		for _, cubic := range c.Cubics() {
			total += lm.Measure(cubic)
		}
		want := 2 * math.Pi * 2.0
		if math.Abs(total-want)/want > 0.015 {
			t.Errorf("v=%d: circumference = %v, want within 1.5%% of %v", v, total, want)
		}
	}
}
