package roundshape

import "sort"

// MeasuredCubic pairs a cubic with the [Start, End] ⊂ [0,1] arc-progress
// range it occupies along its polygon's outline.
type MeasuredCubic struct {
	Cubic      Cubic
	Start, End float64
}

// ProgressLength returns End - Start.
func (m MeasuredCubic) ProgressLength() float64 { return m.End - m.Start }

// ProgressableFeature pairs a corner feature with the arc-progress of its
// middle cubic's own midpoint (falling back to the feature's location if it
// contributed no measured cubics of its own).
type ProgressableFeature struct {
	Progress float64
	Feature  Feature
}

// MeasuredPolygon is a RoundedPolygon's outline reparameterized by arc
// length: a MeasuredCubic list whose progresses are monotonically
// increasing (Start==0 for the first, End==1 for the last), plus one
// ProgressableFeature per corner feature.
//
// Built by walking the polygon's features in their stored order (not the
// mid-corner-rotated order RoundedPolygon.Cubics() presents), since the
// progress assigned to each corner must be stable and independent of how
// the polygon happens to render its path.
type MeasuredPolygon struct {
	measurer Measurer
	cubics   []MeasuredCubic
	features []ProgressableFeature
}

// Cubics returns the measured cubic list in outline order.
func (mp *MeasuredPolygon) Cubics() []MeasuredCubic { return mp.cubics }

// NumCubics returns the number of measured cubics.
func (mp *MeasuredPolygon) NumCubics() int { return len(mp.cubics) }

// Cubic returns the i'th measured cubic.
func (mp *MeasuredPolygon) Cubic(i int) MeasuredCubic { return mp.cubics[i] }

// Features returns the polygon's corner features paired with their
// midpoint arc-progress, in outline order.
func (mp *MeasuredPolygon) Features() []ProgressableFeature { return mp.features }

// MeasurePolygon builds a MeasuredPolygon from p using measurer.
func MeasurePolygon(measurer Measurer, p *RoundedPolygon) (*MeasuredPolygon, error) {
	type rawEntry struct {
		cubic   Cubic
		feature int
	}

	var raw []rawEntry
	for fi, f := range p.Features() {
		for _, c := range f.Cubics() {
			raw = append(raw, rawEntry{cubic: c, feature: fi})
		}
	}
	if len(raw) == 0 {
		return nil, wrapInvalidState("measured polygon: source polygon has no cubics")
	}

	lengths := make([]float64, len(raw))
	actualTotal := 0.0
	for i, e := range raw {
		lengths[i] = measurer.Measure(e.cubic)
		if lengths[i] < 0 {
			return nil, wrapInvalidState("measured polygon: cubic %d has negative measured length %v", i, lengths[i])
		}
		actualTotal += lengths[i]
	}

	// When the whole outline is degenerate (every cubic zero-length,
	// e.g. a polygon collapsed to a point), fall back to an equal
	// progress share per raw cubic so the monotonicity invariants still
	// hold; otherwise every cubic would be dropped as zero-length and no
	// progress range could be assigned at all.
	degenerateOutline := actualTotal < epsDist
	total := actualTotal
	if degenerateOutline {
		total = float64(len(raw))
	}

	cubics := make([]MeasuredCubic, 0, len(raw))
	features := make([]ProgressableFeature, 0)

	cum := 0.0
	curFeature := -1
	featureCubicsStart := 0
	flushCorner := func(featureIdx int, fallback float64) {
		if featureIdx < 0 {
			return
		}
		if p.Features()[featureIdx].IsCorner() {
			// Use the middle cubic of the feature's own measured cubics
			// (its own progress midpoint), not the span midpoint: for a
			// 3-cubic corner with uneven flanks these differ. A corner
			// entirely made of zero-length cubics contributes none of
			// its own, so fall back to the progress at its location.
			progress := fallback
			if featureCubics := cubics[featureCubicsStart:]; len(featureCubics) > 0 {
				mid := featureCubics[len(featureCubics)/2]
				progress = (mid.Start + mid.End) / 2
			}
			features = append(features, ProgressableFeature{
				Progress: progress,
				Feature:  p.Features()[featureIdx],
			})
		}
	}

	for i, e := range raw {
		if e.feature != curFeature {
			flushCorner(curFeature, cum)
			curFeature = e.feature
			featureCubicsStart = len(cubics)
		}

		share := lengths[i] / total
		if degenerateOutline {
			share = 1 / total
		}
		if !degenerateOutline && lengths[i] < epsDist {
			// Zero-length contributor: no MeasuredCubic of its own, but
			// it doesn't advance progress either, so it doesn't disturb
			// the corner-midpoint bookkeeping above.
			continue
		}
		cubics = append(cubics, MeasuredCubic{Cubic: e.cubic, Start: cum, End: cum + share})
		cum += share
	}
	flushCorner(curFeature, cum)

	if len(cubics) == 0 {
		return nil, wrapInvalidState("measured polygon: every cubic was zero-length")
	}
	cubics[0].Start = 0
	cubics[len(cubics)-1].End = 1

	return &MeasuredPolygon{measurer: measurer, cubics: cubics, features: features}, nil
}

// CutAndShift reindexes the measured cubic sequence so that its
// arc-length origin falls at cuttingPoint: the cubic straddling
// cuttingPoint is split there, the sequence is rotated to start at the
// split, and every progress value (cubics and features alike) is shifted
// by -cuttingPoint (mod 1), so cuttingPoint becomes 0 and the old 0 becomes
// 1-cuttingPoint; the rotated list runs from 0 back round to 1.
func (mp *MeasuredPolygon) CutAndShift(cuttingPoint float64) (*MeasuredPolygon, error) {
	if cuttingPoint < 0 || cuttingPoint >= 1 {
		return nil, wrapInvalidArgument("cutAndShift: cutting point must be in [0,1), got %v", cuttingPoint)
	}
	if cuttingPoint < epsDist {
		return mp, nil
	}

	idx := -1
	for i, c := range mp.cubics {
		if cuttingPoint >= c.Start-epsDist && cuttingPoint < c.End+epsDist {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, wrapInvalidState("cutAndShift: no segment found for cutting point %v", cuttingPoint)
	}

	shift := func(x float64) float64 {
		if x >= cuttingPoint {
			return x - cuttingPoint
		}
		return x - cuttingPoint + 1
	}

	target := mp.cubics[idx]
	var rotated []MeasuredCubic
	if target.End-cuttingPoint < epsDist || cuttingPoint-target.Start < epsDist {
		// Cutting point falls (within tolerance) on an existing
		// boundary: no split needed, just rotate to start here.
		start := idx
		if cuttingPoint-target.Start >= epsDist {
			start = (idx + 1) % len(mp.cubics)
		}
		rotated = append(rotated, mp.cubics[start:]...)
		rotated = append(rotated, mp.cubics[:start]...)
	} else {
		t := (cuttingPoint - target.Start) / target.ProgressLength()
		before, after := target.Cubic.Split(t)
		rotated = append(rotated, MeasuredCubic{Cubic: after, Start: cuttingPoint, End: target.End})
		rotated = append(rotated, mp.cubics[idx+1:]...)
		rotated = append(rotated, mp.cubics[:idx]...)
		rotated = append(rotated, MeasuredCubic{Cubic: before, Start: target.Start, End: cuttingPoint})
	}

	for i := range rotated {
		rotated[i].Start = shift(rotated[i].Start)
		rotated[i].End = shift(rotated[i].End)
	}
	rotated[0].Start = 0
	rotated[len(rotated)-1].End = 1

	features := make([]ProgressableFeature, len(mp.features))
	for i, f := range mp.features {
		features[i] = ProgressableFeature{Progress: shift(f.Progress), Feature: f.Feature}
	}
	sort.Slice(features, func(i, j int) bool { return features[i].Progress < features[j].Progress })

	return &MeasuredPolygon{measurer: mp.measurer, cubics: rotated, features: features}, nil
}
