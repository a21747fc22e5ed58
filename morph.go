package roundshape

import "math"

// Morph is a continuous interpolation between two RoundedPolygons, built
// once at construction time and then evaluated cheaply at any progress in
// [0,1] via At/AtInto.
//
// Construction: both polygons are arc-length measured, a
// DoubleMapper is built by matching their corner features, and the second
// polygon's measured cubic list is cut and rotated so its arc-length origin
// lines up with the first polygon's. The two measured lists are then walked
// in lockstep, splitting whichever side's current segment extends further
// so that every emitted pair of cubics spans the same progress interval on
// both sides. At progress 0 this reproduces polygon1; at progress 1 it
// reproduces polygon2.
type Morph struct {
	pairs   [][2]Cubic
	bounds1 [4]float64
	bounds2 [4]float64
	maxB1   [4]float64
	maxB2   [4]float64
}

// maxPairingIterations bounds the lockstep walk below as a safety net
// against an internal post-condition failure (both cursors are expected to
// reach the end of their list on the same iteration); it is set far above
// what any real polygon pairing requires.
const maxPairingIterations = 100000

// NewMorph builds a Morph interpolating from polygon1 (progress 0) to
// polygon2 (progress 1).
func NewMorph(polygon1, polygon2 *RoundedPolygon) (*Morph, error) {
	measurer := LengthMeasurer{}

	measured1, err := MeasurePolygon(measurer, polygon1)
	if err != nil {
		return nil, err
	}
	measured2, err := MeasurePolygon(measurer, polygon2)
	if err != nil {
		return nil, err
	}

	mapper, err := BuildFeatureMapper(measured1.Features(), measured2.Features())
	if err != nil {
		return nil, err
	}

	cutPoint := mapper.Map(0)
	measured2, err = measured2.CutAndShift(cutPoint)
	if err != nil {
		return nil, err
	}

	pairs, err := pairMeasuredPolygons(measured1, measured2, mapper, cutPoint)
	if err != nil {
		return nil, err
	}

	return &Morph{
		pairs:   pairs,
		bounds1: polygon1.Bounds(false),
		bounds2: polygon2.Bounds(false),
		maxB1:   polygon1.MaxBounds(),
		maxB2:   polygon2.MaxBounds(),
	}, nil
}

// pairMeasuredPolygons walks two measured outlines in lockstep, splitting
// whichever side's current cubic extends past the other's, so each emitted
// pair spans matching progress on both sides.
func pairMeasuredPolygons(m1, m2 *MeasuredPolygon, mapper *DoubleMapper, cutPoint float64) ([][2]Cubic, error) {
	c1 := m1.Cubics()
	c2 := m2.Cubics()
	if len(c1) == 0 || len(c2) == 0 {
		return nil, wrapInvalidState("morph: measured polygon has no cubics")
	}

	i1, i2 := 0, 0
	seg1 := c1[0]
	seg2 := c2[0]

	var pairs [][2]Cubic
	for iter := 0; ; iter++ {
		if iter > maxPairingIterations {
			return nil, wrapInvalidState("morph: pairing did not converge after %d iterations", iter)
		}

		e1 := seg1.End
		if i1 == len(c1)-1 {
			e1 = 1
		}
		e2src := mapper.MapBack(wrapUnit(seg2.End + cutPoint))
		if i2 == len(c2)-1 {
			e2src = 1
		}
		m := math.Min(e1, e2src)

		var cub1, cub2 Cubic

		if e1 > m+epsAngle {
			t := (m - seg1.Start) / seg1.ProgressLength()
			before, after := seg1.Cubic.Split(t)
			cub1 = before
			seg1 = MeasuredCubic{Cubic: after, Start: m, End: seg1.End}
		} else {
			cub1 = seg1.Cubic
			i1++
			if i1 < len(c1) {
				seg1 = c1[i1]
			}
		}

		if e2src > m+epsAngle {
			targetLocal := wrapUnit(mapper.Map(m) - cutPoint)
			t := (targetLocal - seg2.Start) / seg2.ProgressLength()
			before, after := seg2.Cubic.Split(t)
			cub2 = before
			seg2 = MeasuredCubic{Cubic: after, Start: targetLocal, End: seg2.End}
		} else {
			cub2 = seg2.Cubic
			i2++
			if i2 < len(c2) {
				seg2 = c2[i2]
			}
		}

		pairs = append(pairs, [2]Cubic{cub1, cub2})

		if i1 >= len(c1) && i2 >= len(c2) {
			break
		}
	}

	return pairs, nil
}

// NumPairs returns the number of matched cubic pairs the morph was built
// from. Exposed mainly for testing.
func (m *Morph) NumPairs() int { return len(m.pairs) }

// At returns the morph's outline at the given progress (0 reproduces
// polygon1, 1 reproduces polygon2) as a freshly allocated cubic slice.
func (m *Morph) At(progress float64) []Cubic {
	return m.AtInto(progress, nil)
}

// AtInto evaluates the morph at progress into out, reusing its storage
// when it already has enough capacity, and returns the resulting slice.
// progress is not required to lie in [0,1]: values outside it extrapolate
// linearly past each source polygon's shape.
func (m *Morph) AtInto(progress float64, out []Cubic) []Cubic {
	if cap(out) >= len(m.pairs) {
		out = out[:len(m.pairs)]
	} else {
		out = make([]Cubic, len(m.pairs))
	}

	for i, pr := range m.pairs {
		out[i] = lerpCubic(pr[0], pr[1], progress)
	}

	if len(out) > 0 {
		out[len(out)-1].Anchor1 = out[0].Anchor0
	}
	return out
}

// lerpCubic linearly interpolates every one of two cubics' eight control
// values by t.
func lerpCubic(a, b Cubic, t float64) Cubic {
	return Cubic{
		Anchor0:  a.Anchor0.Lerp(b.Anchor0, t),
		Control0: a.Control0.Lerp(b.Control0, t),
		Control1: a.Control1.Lerp(b.Control1, t),
		Anchor1:  a.Anchor1.Lerp(b.Anchor1, t),
	}
}

// Bounds returns the union of the two source polygons' exact bounds, as
// [minX, minY, maxX, maxY]. Every intermediate shape the morph produces at
// progress in [0,1] is contained within it.
func (m *Morph) Bounds() [4]float64 {
	return unionBounds(m.bounds1, m.bounds2)
}

// MaxBounds returns the union of the two source polygons' MaxBounds: a box
// guaranteed to contain the morph at any progress in [0,1], under any
// rotation of either source polygon about its own center.
func (m *Morph) MaxBounds() [4]float64 {
	return unionBounds(m.maxB1, m.maxB2)
}

func unionBounds(a, b [4]float64) [4]float64 {
	return [4]float64{
		math.Min(a[0], b[0]),
		math.Min(a[1], b[1]),
		math.Max(a[2], b[2]),
		math.Max(a[3], b[3]),
	}
}
