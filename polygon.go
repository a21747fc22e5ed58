package roundshape

import "math"

// RoundedPolygon is an immutable closed outline: an ordered cyclic list of
// features (edges and rounded corners) whose concatenated cubics form a
// closed loop. It also carries a flattened cubic list (with zero-length
// cubics coalesced away, see flattenFeatures) and a centroid.
type RoundedPolygon struct {
	features []Feature
	cubics   []Cubic
	center   Point
}

// Features returns the polygon's features in outline order.
func (p *RoundedPolygon) Features() []Feature { return p.features }

// Cubics returns the polygon's flattened cubic list, in outline order,
// closed (last cubic's Anchor1 == first cubic's Anchor0 exactly).
func (p *RoundedPolygon) Cubics() []Cubic { return p.cubics }

// Center returns the polygon's centroid.
func (p *RoundedPolygon) Center() Point { return p.center }

// FromFeatures builds a polygon from a pre-built, cyclically continuous
// feature list. If center is non-nil it is used as-is; otherwise the
// center is the mean of the Anchor0 of every cubic across every feature.
func FromFeatures(features []Feature, center *Point) (*RoundedPolygon, error) {
	if len(features) == 0 {
		return nil, wrapInvalidArgument("polygon must have at least one feature")
	}
	if err := validateFeatureChainClosed(features); err != nil {
		return nil, err
	}

	c := computeCenter(features, center)
	cubics := flattenFeatures(features, c)
	return &RoundedPolygon{features: features, cubics: cubics, center: c}, nil
}

// validateFeatureChainClosed checks that consecutive features meet
// exactly: feature i's last anchor equals feature i+1's first anchor,
// cyclically.
func validateFeatureChainClosed(features []Feature) error {
	n := len(features)
	for i := 0; i < n; i++ {
		cur := features[i].Cubics()
		next := features[(i+1)%n].Cubics()
		a := cur[len(cur)-1].Anchor1
		b := next[0].Anchor0
		if !pointsWithin(a, b, epsDist) {
			return wrapInvalidArgument("polygon feature chain not closed between feature %d and %d (%v != %v)", i, (i+1)%n, a, b)
		}
	}
	return nil
}

// computeCenter returns the explicit center if given, else the mean
// Anchor0 of every cubic in every feature.
func computeCenter(features []Feature, explicit *Point) Point {
	if explicit != nil {
		return *explicit
	}
	var sum Point
	count := 0
	for _, f := range features {
		for _, c := range f.Cubics() {
			sum = sum.Add(c.Anchor0)
			count++
		}
	}
	if count == 0 {
		return Point{}
	}
	return sum.Div(float64(count))
}

// flattenFeatures turns the feature list into a flat cubic sequence: it is
// rotated to start mid-corner (splitting the first feature's central arc, if
// it has one) so that the cubic sequence has a feature-independent anchor
// point useful for morph alignment, zero-length cubics are dropped with
// trailing-endpoint coalescence, and the final cubic's Anchor1 is forced to
// equal the first cubic's Anchor0.
func flattenFeatures(features []Feature, center Point) []Cubic {
	var raw []Cubic

	if first := features[0]; first.IsCorner() {
		cubics := first.Cubics()
		if len(cubics) == 3 {
			arcFirst, arcSecond := cubics[1].Split(0.5)
			raw = append(raw, arcSecond, cubics[2])
			for _, f := range features[1:] {
				raw = append(raw, f.Cubics()...)
			}
			raw = append(raw, cubics[0], arcFirst)
		}
	}
	if raw == nil {
		for _, f := range features {
			raw = append(raw, f.Cubics()...)
		}
	}

	filtered := make([]Cubic, 0, len(raw))
	for _, c := range raw {
		if c.IsZeroLength() {
			if len(filtered) > 0 {
				last := filtered[len(filtered)-1]
				last.Anchor1 = c.Anchor1
				filtered[len(filtered)-1] = last
			}
			continue
		}
		filtered = append(filtered, c)
	}

	if len(filtered) == 0 {
		return []Cubic{EmptyCubic(center)}
	}

	filtered[len(filtered)-1].Anchor1 = filtered[0].Anchor0
	return filtered
}

// FromVerticesCount builds a regular n-gon of the given radius, centered
// at center, with uniform corner rounding.
func FromVerticesCount(numVertices int, radius float64, center Point, rounding CornerRounding) (*RoundedPolygon, error) {
	vertices, err := regularPolygonVertices(numVertices, radius, center)
	if err != nil {
		return nil, err
	}
	return fromVerticesUniform(vertices, rounding, &center)
}

// FromVertices builds a polygon from an explicit, outline-ordered vertex
// list with uniform corner rounding. Consecutive duplicate vertices
// (within ε_dist) are dropped before construction.
func FromVertices(vertices []Point, rounding CornerRounding) (*RoundedPolygon, error) {
	return fromVerticesUniform(vertices, rounding, nil)
}

// FromVerticesVarying builds a polygon from an explicit vertex list with a
// corner rounding specified per vertex. len(perVertexRounding) must equal
// len(vertices).
func FromVerticesVarying(vertices []Point, perVertexRounding []CornerRounding) (*RoundedPolygon, error) {
	return buildPolygonFromVertices(vertices, perVertexRounding, nil)
}

func fromVerticesUniform(vertices []Point, rounding CornerRounding, center *Point) (*RoundedPolygon, error) {
	roundings := make([]CornerRounding, len(vertices))
	for i := range roundings {
		roundings[i] = rounding
	}
	return buildPolygonFromVertices(vertices, roundings, center)
}

// buildPolygonFromVertices is the shared vertex-construction path used by
// every parametric factory: it dedupes consecutive near-duplicate
// vertices, computes per-corner geometry, runs cut allocation, builds the
// corner and edge features, and hands the result to FromFeatures.
func buildPolygonFromVertices(vertices []Point, roundings []CornerRounding, center *Point) (*RoundedPolygon, error) {
	if len(vertices) != len(roundings) {
		return nil, wrapInvalidArgument("vertex count %d does not match rounding count %d", len(vertices), len(roundings))
	}
	if len(vertices) < 3 {
		return nil, wrapInvalidArgument("polygon requires at least 3 vertices, got %d", len(vertices))
	}
	for _, r := range roundings {
		if err := r.validate(); err != nil {
			return nil, err
		}
	}

	// Vertices may collapse onto each other after deduping (e.g. a
	// zero-radius regular polygon): that degenerate case is allowed
	// through, and bottoms out in flattenFeatures' single zero-length
	// cubic fallback.
	vertices, roundings = dedupeVertices(vertices, roundings)
	n := len(vertices)

	geoms := make([]cornerGeometry, n)
	for i := 0; i < n; i++ {
		prev := vertices[(i-1+n)%n]
		next := vertices[(i+1)%n]
		geoms[i] = computeCornerGeometry(prev, vertices[i], next, roundings[i])
	}

	edgeCuts := make([]cutAllocation, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		length := vertices[i].Distance(vertices[j])
		eRound := geoms[i].expectedRoundCut + geoms[j].expectedRoundCut
		eTotal := geoms[i].expectedCut + geoms[j].expectedCut
		edgeCuts[i] = allocateEdgeCut(length, eRound, eTotal)
		if edgeCuts[i].a < 1 {
			logger().Debug("roundshape: corner rounding reduced by space competition", "edge", i, "scale", edgeCuts[i].a)
		}
	}

	cornerCubics := make([][]Cubic, n)
	for i := 0; i < n; i++ {
		prevEdge := edgeCuts[(i-1+n)%n]
		nextEdge := edgeCuts[i]
		allowed0 := allowedCut(geoms[i], prevEdge)
		allowed1 := allowedCut(geoms[i], nextEdge)
		cornerCubics[i] = buildCornerCubics(vertices[i], geoms[i], roundings[i], allowed0, allowed1)
	}

	features := make([]Feature, 0, 2*n)
	for i := 0; i < n; i++ {
		var corner Feature
		var err error
		if geoms[i].convex {
			corner, err = NewConvexCorner(cornerCubics[i])
		} else {
			corner, err = NewConcaveCorner(cornerCubics[i])
		}
		if err != nil {
			return nil, err
		}
		features = append(features, corner)

		j := (i + 1) % n
		lastAnchor := cornerCubics[i][len(cornerCubics[i])-1].Anchor1
		firstAnchorNext := cornerCubics[j][0].Anchor0
		edge, err := NewEdge(StraightLine(lastAnchor, firstAnchorNext))
		if err != nil {
			return nil, err
		}
		features = append(features, edge)
	}

	return FromFeatures(features, center)
}

// dedupeVertices drops any vertex within ε_dist of its predecessor
// (including the wrap-around pair between the last and first vertex),
// keeping the earlier vertex's rounding.
func dedupeVertices(vertices []Point, roundings []CornerRounding) ([]Point, []CornerRounding) {
	if len(vertices) == 0 {
		return vertices, roundings
	}
	outV := make([]Point, 0, len(vertices))
	outR := make([]CornerRounding, 0, len(roundings))
	outV = append(outV, vertices[0])
	outR = append(outR, roundings[0])
	for i := 1; i < len(vertices); i++ {
		if vertices[i].Distance(outV[len(outV)-1]) < epsDist {
			continue
		}
		outV = append(outV, vertices[i])
		outR = append(outR, roundings[i])
	}
	if len(outV) > 1 && outV[0].Distance(outV[len(outV)-1]) < epsDist {
		outV = outV[:len(outV)-1]
		outR = outR[:len(outR)-1]
	}
	return outV, outR
}

// regularPolygonVertices returns the vertices of a regular n-gon of the
// given radius centered at center, in counter-clockwise order starting
// from angle 0.
func regularPolygonVertices(numVertices int, radius float64, center Point) ([]Point, error) {
	if numVertices < 3 {
		return nil, wrapInvalidArgument("polygon requires at least 3 vertices, got %d", numVertices)
	}
	if radius < 0 {
		return nil, wrapInvalidArgument("polygon radius must be >= 0, got %v", radius)
	}
	vertices := make([]Point, numVertices)
	step := 2 * math.Pi / float64(numVertices)
	for i := range vertices {
		a := step * float64(i)
		vertices[i] = center.Add(Pt(radius*math.Cos(a), radius*math.Sin(a)))
	}
	return vertices, nil
}

// Bounds returns [minX, minY, maxX, maxY] over every cubic in the polygon.
// approximate selects Cubic.Bounds' control-hull fast path.
func (p *RoundedPolygon) Bounds(approximate bool) [4]float64 {
	return unionCubicBounds(p.cubics, approximate)
}

func unionCubicBounds(cubics []Cubic, approximate bool) [4]float64 {
	result := [4]float64{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	for _, c := range cubics {
		b := c.Bounds(approximate)
		result[0] = math.Min(result[0], b[0])
		result[1] = math.Min(result[1], b[1])
		result[2] = math.Max(result[2], b[2])
		result[3] = math.Max(result[3], b[3])
	}
	return result
}

// MaxBounds returns a square, centered at p.Center, guaranteed to contain
// the polygon under any rotation about the center: its half-side is the
// maximum, over all cubics, of the distance from center to the cubic's
// Anchor0 and to its midpoint (t=0.5).
func (p *RoundedPolygon) MaxBounds() [4]float64 {
	maxDist := 0.0
	for _, c := range p.cubics {
		maxDist = math.Max(maxDist, p.center.Distance(c.Anchor0))
		maxDist = math.Max(maxDist, p.center.Distance(c.Evaluate(0.5)))
	}
	return [4]float64{
		p.center.X - maxDist, p.center.Y - maxDist,
		p.center.X + maxDist, p.center.Y + maxDist,
	}
}

// Transform applies f to every point of the polygon (features and flat
// cubic list alike) and returns the resulting polygon. f must be affine
// (or at least injective) for the corner/convexity semantics to remain
// meaningful.
func (p *RoundedPolygon) Transform(f func(Point) Point) *RoundedPolygon {
	features := make([]Feature, len(p.features))
	for i, feat := range p.features {
		features[i] = feat.Transform(f)
	}
	center := f(p.center)
	cubics := make([]Cubic, len(p.cubics))
	for i, c := range p.cubics {
		cubics[i] = c.Transform(f)
	}
	return &RoundedPolygon{features: features, cubics: cubics, center: center}
}

// Normalized returns a polygon transformed so its exact bounding box fits
// into the unit square (0,0)-(1,1), centered along whichever axis is
// shorter than the square.
func (p *RoundedPolygon) Normalized() *RoundedPolygon {
	b := p.Bounds(false)
	width := b[2] - b[0]
	height := b[3] - b[1]
	scale := math.Max(width, height)
	if scale < epsDist {
		return p.Transform(func(pt Point) Point { return Pt(0, 0) })
	}
	offsetX := (scale - width) / 2
	offsetY := (scale - height) / 2
	return p.Transform(func(pt Point) Point {
		return Pt((pt.X-b[0]+offsetX)/scale, (pt.Y-b[1]+offsetY)/scale)
	})
}

// Equal reports whether p and other have the same flattened cubic list,
// component-wise within ε_dist.
func (p *RoundedPolygon) Equal(other *RoundedPolygon) bool {
	if other == nil || len(p.cubics) != len(other.cubics) {
		return false
	}
	for i, c := range p.cubics {
		o := other.cubics[i]
		if !pointsWithin(c.Anchor0, o.Anchor0, epsDist) ||
			!pointsWithin(c.Control0, o.Control0, epsDist) ||
			!pointsWithin(c.Control1, o.Control1, epsDist) ||
			!pointsWithin(c.Anchor1, o.Anchor1, epsDist) {
			return false
		}
	}
	return true
}
