package roundshape

// Measurer computes arc length along a Cubic and inverts it: given a
// target length, find the parameter t at which that much of the curve
// has been traced.
type Measurer interface {
	// Measure returns the cubic's total length.
	Measure(c Cubic) float64

	// FindCutParameter returns t ∈ [0,1] such that Measure(Split(c,
	// t).first) ≈ m. m outside [0, Measure(c)] is clamped.
	FindCutParameter(c Cubic, m float64) float64
}

// LengthMeasurer approximates a cubic's length with a fixed 3-segment
// polyline through evaluate(0), evaluate(1/3), evaluate(2/3), evaluate(1).
// Three segments give at least 98.5% accuracy on a quarter-circle cubic,
// the worst case this library's corner construction produces.
type LengthMeasurer struct{}

const measurerSegments = 3

func (LengthMeasurer) segmentLengths(c Cubic) [measurerSegments]float64 {
	var pts [measurerSegments + 1]Point
	for i := range pts {
		pts[i] = c.Evaluate(float64(i) / measurerSegments)
	}
	var lens [measurerSegments]float64
	for i := range lens {
		lens[i] = pts[i].Distance(pts[i+1])
	}
	return lens
}

// Measure returns the sum of the three segment lengths.
func (lm LengthMeasurer) Measure(c Cubic) float64 {
	lens := lm.segmentLengths(c)
	total := 0.0
	for _, l := range lens {
		total += l
	}
	return total
}

// FindCutParameter walks the three segments accumulating length; once the
// next segment would exceed the remaining target, it returns a
// linearly-interpolated parameter within that segment.
func (lm LengthMeasurer) FindCutParameter(c Cubic, m float64) float64 {
	lens := lm.segmentLengths(c)
	if m <= 0 {
		return 0
	}
	remaining := m
	for i, segLen := range lens {
		if segLen <= 0 {
			continue
		}
		if remaining <= segLen {
			return (float64(i) + remaining/segLen) / measurerSegments
		}
		remaining -= segLen
	}
	return 1
}
