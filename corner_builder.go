package roundshape

import "math"

// cornerGeometry is the per-vertex trigonometric groundwork for corner
// rounding: unit edge directions, the angle between them, and the cuts a
// pure-round (and a fully-smoothed) corner would want to consume along
// each adjoining edge. It is recomputed once per vertex and then shared
// by the two adjoining edges' cut-allocation computations.
type cornerGeometry struct {
	d1, d2           Vec2 // unit vectors from the vertex toward prev, next
	expectedRoundCut float64
	expectedCut      float64
	convex           bool
}

// computeCornerGeometry derives the corner geometry for the vertex at
// curr, given its neighbors prev and next and its configured rounding.
// A corner whose adjoining edge is degenerate (zero length) or whose
// interior angle is near-straight collapses to no rounding at all
// (expectedRoundCut == 0), which buildCornerCubics turns into a single
// zero-length cubic.
func computeCornerGeometry(prev, curr, next Point, r CornerRounding) cornerGeometry {
	toPrev := PointToVec2(prev.Sub(curr))
	toNext := PointToVec2(next.Sub(curr))
	prevLen := toPrev.Length()
	nextLen := toNext.Length()
	if prevLen < epsDist || nextLen < epsDist {
		logger().Warn("roundshape: vertex has a degenerate adjoining edge, corner coerced to unrounded",
			"prevLength", prevLen, "nextLength", nextLen)
		return cornerGeometry{convex: true}
	}

	d1 := toPrev.Div(prevLen)
	d2 := toNext.Div(nextLen)
	convex := d1.Cross(d2) < 0

	cosTheta := d1.Dot(d2)
	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))
	if sinTheta < 1e-3 {
		logger().Warn("roundshape: vertex angle is near-straight, corner coerced to unrounded",
			"sinTheta", sinTheta)
		return cornerGeometry{d1: d1, d2: d2, convex: convex}
	}

	// r * cot(theta/2), via cot(theta/2) = (1+cosTheta)/sinTheta: the
	// distance along each edge consumed by the inner circular arc so its
	// tangent lands at that offset from the vertex.
	expectedRoundCut := r.Radius * (cosTheta + 1) / sinTheta
	expectedCut := (1 + r.Smoothing) * expectedRoundCut

	return cornerGeometry{
		d1: d1, d2: d2,
		expectedRoundCut: expectedRoundCut,
		expectedCut:      expectedCut,
		convex:           convex,
	}
}

// cutAllocation is the (a, b) pair produced by space competition between
// two corners sharing one edge: a scales the round-cut portion, b scales
// the additional smoothing portion.
type cutAllocation struct {
	a, b float64
}

// allocateEdgeCut decides how much of an edge's length two competing
// corners (one at each end) get to cut into, given the edge's actual
// length and the combined expected round/total cuts those corners want.
func allocateEdgeCut(length, expectedRound, expectedTotal float64) cutAllocation {
	switch {
	case expectedRound > length:
		// Rounding alone doesn't fit: scale it down, no smoothing at all.
		return cutAllocation{a: length / expectedRound, b: 0}
	case expectedTotal > length:
		// Full rounding fits, but the smoothing flanks must be trimmed.
		return cutAllocation{a: 1, b: (length - expectedRound) / (expectedTotal - expectedRound)}
	default:
		return cutAllocation{a: 1, b: 1}
	}
}

// allowedCut combines a corner's own expected cuts with the allocation
// decided for the edge on one of its two sides.
func allowedCut(g cornerGeometry, alloc cutAllocation) float64 {
	return g.expectedRoundCut*alloc.a + (g.expectedCut-g.expectedRoundCut)*alloc.b
}

// effectiveSmoothing is the smoothing actually applied to one flank of a
// corner, given how much cut that side was allowed. Full configured
// smoothing applies once the side has room for the whole smoothed cut;
// it scales linearly down to zero between the pure-round cut and the
// fully-smoothed cut; below the pure-round cut there's no room for any
// flank extension at all.
func effectiveSmoothing(allowed, expectedRoundCut, expectedCut, configured float64) float64 {
	switch {
	case allowed > expectedCut:
		return configured
	case allowed > expectedRoundCut:
		if expectedCut <= expectedRoundCut {
			return 0
		}
		return configured * (allowed - expectedRoundCut) / (expectedCut - expectedRoundCut)
	default:
		return 0
	}
}

// buildCornerCubics constructs the (up to three) cubics approximating one
// rounded vertex: a flanking curve into the arc, the circular arc itself,
// and a flanking curve back out, each degenerating away when its cut is
// zero.
func buildCornerCubics(vertex Point, g cornerGeometry, r CornerRounding, allowedCut0, allowedCut1 float64) []Cubic {
	if g.expectedRoundCut < epsDist || math.Min(allowedCut0, allowedCut1) < epsDist || r.Radius < epsDist {
		return []Cubic{EmptyCubic(vertex)}
	}

	actualRoundCut := math.Min(math.Min(allowedCut0, allowedCut1), g.expectedRoundCut)
	actualR := r.Radius * actualRoundCut / g.expectedRoundCut

	bisector := g.d1.Add(g.d2).Normalize()
	centerDist := math.Sqrt(actualR*actualR + actualRoundCut*actualRoundCut)
	circleCenter := vertex.Add(bisector.Mul(centerDist).ToPoint())

	tangent0 := vertex.Add(g.d1.Mul(actualRoundCut).ToPoint())
	tangent1 := vertex.Add(g.d2.Mul(actualRoundCut).ToPoint())
	midTangents := tangent0.Lerp(tangent1, 0.5)

	smoothing0 := effectiveSmoothing(allowedCut0, g.expectedRoundCut, g.expectedCut, r.Smoothing)
	smoothing1 := effectiveSmoothing(allowedCut1, g.expectedRoundCut, g.expectedCut, r.Smoothing)

	flank0, curveEnd0 := buildFlank(vertex, g.d1, actualRoundCut, smoothing0, tangent0, midTangents, circleCenter, actualR)
	flank1, curveEnd1 := buildFlank(vertex, g.d2, actualRoundCut, smoothing1, tangent1, midTangents, circleCenter, actualR)

	arc := CircularArc(circleCenter, curveEnd0, curveEnd1)

	return []Cubic{flank0, arc, flank1.Reverse()}
}

// buildFlank constructs one of a corner's two flanking cubics: it runs
// from a point on the straight edge (curveStart) to a point on the
// corner's circular arc (curveEnd), the latter sliding from the pure
// tangent point toward the midpoint of both tangent points as smoothing
// increases. Returns the cubic and its curveEnd, since the arc cubic's
// matching endpoint must be exactly this point for the feature's cubics
// to stay continuous.
func buildFlank(vertex Point, d Vec2, actualRoundCut, smoothing float64, tangent, midTangents, circleCenter Point, actualR float64) (Cubic, Point) {
	curveStart := vertex.Add(d.Mul(actualRoundCut * (1 + smoothing)).ToPoint())

	interp := tangent.Lerp(midTangents, smoothing)
	dir := interp.Sub(circleCenter).Normalize()
	curveEnd := circleCenter.Add(dir.Mul(actualR))

	endAnchor := intersectEdgeWithArcTangent(vertex, d, curveEnd, circleCenter)
	startAnchor := curveStart.Add(endAnchor.Mul(2)).Div(3)

	return Cubic{Anchor0: curveStart, Control0: startAnchor, Control1: endAnchor, Anchor1: curveEnd}, curveEnd
}

// intersectEdgeWithArcTangent finds where the straight edge through
// vertex (direction d) meets the tangent line to the circle (centered at
// circleCenter) at curveEnd. Falls back to curveEnd itself when the two
// lines are (near) parallel.
func intersectEdgeWithArcTangent(vertex Point, d Vec2, curveEnd, circleCenter Point) Point {
	radial := curveEnd.Sub(circleCenter)
	tangentDir := Vec2{X: -radial.Y, Y: radial.X}

	denom := d.Cross(tangentDir)
	if math.Abs(denom) < 1e-9 {
		return curveEnd
	}

	diff := PointToVec2(curveEnd.Sub(vertex))
	t := diff.Cross(tangentDir) / denom
	return vertex.Add(d.Mul(t).ToPoint())
}
