package roundshape

import "sort"

// mapping is one (source, target) progress pair stored by a DoubleMapper.
type mapping struct {
	source, target float64
}

// DoubleMapper stores paired source→target progresses in [0,1) and
// extends them to the whole circle by piecewise-linear interpolation with
// wrap-around, in both directions.
type DoubleMapper struct {
	bySource []mapping
	byTarget []mapping
}

// IdentityMapper maps every progress to itself.
var IdentityMapper = mustNewDoubleMapper([]mapping{{0, 0}, {0.5, 0.5}})

// NewDoubleMapper builds a DoubleMapper from paired (source, target)
// progresses. Every progress must lie in [0,1), no two source (or target)
// progresses may be within ε_dist of each other in the wrap-aware sense,
// and the resulting target sequence may wrap at most once when walked in
// source order.
func NewDoubleMapper(pairs [][2]float64) (*DoubleMapper, error) {
	if len(pairs) < 2 {
		return nil, wrapInvalidArgument("double mapper requires at least 2 pairs, got %d", len(pairs))
	}
	mappings := make([]mapping, len(pairs))
	for i, pr := range pairs {
		if pr[0] < 0 || pr[0] >= 1 || pr[1] < 0 || pr[1] >= 1 {
			return nil, wrapInvalidArgument("double mapper progresses must be in [0,1), got (%v,%v)", pr[0], pr[1])
		}
		mappings[i] = mapping{source: pr[0], target: pr[1]}
	}
	return newDoubleMapperFromMappings(mappings)
}

func mustNewDoubleMapper(mappings []mapping) *DoubleMapper {
	m, err := newDoubleMapperFromMappings(mappings)
	if err != nil {
		panic(err)
	}
	return m
}

func newDoubleMapperFromMappings(mappings []mapping) (*DoubleMapper, error) {
	bySource := append([]mapping(nil), mappings...)
	sort.Slice(bySource, func(i, j int) bool { return bySource[i].source < bySource[j].source })

	for i := range bySource {
		next := bySource[(i+1)%len(bySource)]
		if wrapDistance(bySource[i].source, next.source) < epsDist {
			return nil, wrapInvalidArgument("double mapper source progresses too close: %v and %v", bySource[i].source, next.source)
		}
	}

	byTarget := append([]mapping(nil), mappings...)
	sort.Slice(byTarget, func(i, j int) bool { return byTarget[i].target < byTarget[j].target })
	for i := range byTarget {
		next := byTarget[(i+1)%len(byTarget)]
		if wrapDistance(byTarget[i].target, next.target) < epsDist {
			return nil, wrapInvalidArgument("double mapper target progresses too close: %v and %v", byTarget[i].target, next.target)
		}
	}

	if wraps := countTargetWraps(bySource); wraps > 1 {
		return nil, wrapInvalidArgument("double mapper target sequence wraps more than once (%d wraps)", wraps)
	}

	return &DoubleMapper{bySource: bySource, byTarget: byTarget}, nil
}

func wrapDistance(a, b float64) float64 {
	d := a - b
	if d < 0 {
		d = -d
	}
	if d > 0.5 {
		d = 1 - d
	}
	return d
}

func countTargetWraps(bySource []mapping) int {
	wraps := 0
	for i := 0; i < len(bySource); i++ {
		next := bySource[(i+1)%len(bySource)]
		if next.target < bySource[i].target {
			wraps++
		}
	}
	return wraps
}

// Map returns the target progress corresponding to source progress x,
// via piecewise-linear wrap-around interpolation between the two nearest
// stored source progresses.
func (d *DoubleMapper) Map(x float64) float64 {
	return interpolateWrapped(d.bySource, x, func(m mapping) float64 { return m.source }, func(m mapping) float64 { return m.target })
}

// MapBack is the inverse of Map: it returns the source progress
// corresponding to target progress x.
func (d *DoubleMapper) MapBack(x float64) float64 {
	return interpolateWrapped(d.byTarget, x, func(m mapping) float64 { return m.target }, func(m mapping) float64 { return m.source })
}

// interpolateWrapped locates the pair of consecutive (by `key`) entries
// bracketing x and interpolates proportionally into `value` space. If the
// bracketing span in key-space is smaller than 0.001, the midpoint of the
// value span is returned instead of dividing by a near-zero span.
func interpolateWrapped(sorted []mapping, x float64, key, value func(mapping) float64) float64 {
	n := len(sorted)
	x = wrapUnit(x)

	idx := sort.Search(n, func(i int) bool { return key(sorted[i]) > x })
	prev := sorted[(idx-1+n)%n]
	next := sorted[idx%n]

	sourceSpan := wrapUnit(key(next) - key(prev))
	targetSpan := wrapUnit(value(next) - value(prev))

	if sourceSpan < 0.001 {
		return wrapUnit(value(prev) + targetSpan/2)
	}

	posInSpan := wrapUnit(x - key(prev))
	return wrapUnit(value(prev) + posInSpan/sourceSpan*targetSpan)
}

func wrapUnit(x float64) float64 {
	for x < 0 {
		x += 1
	}
	for x >= 1 {
		x -= 1
	}
	return x
}
