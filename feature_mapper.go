package roundshape

import (
	"math"
	"sort"
)

// featureCandidate is one (source corner, target corner) pairing
// considered during greedy assembly, ordered by ascending distance.
type featureCandidate struct {
	srcIdx, tgtIdx int
	distSq         float64
}

// acceptedMapping is a (source, target) progress pair accepted by the
// greedy pass, kept sorted by source progress as mappings are inserted.
type acceptedMapping struct {
	source, target float64
}

// BuildFeatureMapper matches corner features between two measured
// polygons by representative-point proximity, greedily accepting the
// closest pairs first while rejecting any that would make the target
// sequence cross more than once, and returns the resulting progress
// correspondence as a DoubleMapper.
func BuildFeatureMapper(features1, features2 []ProgressableFeature) (*DoubleMapper, error) {
	corners1 := filterCornerFeatures(features1)
	corners2 := filterCornerFeatures(features2)

	candidates := make([]featureCandidate, 0, len(corners1)*len(corners2))
	for i, f1 := range corners1 {
		for j, f2 := range corners2 {
			d := featureDistanceSq(f1.Feature, f2.Feature)
			if math.IsInf(d, 1) {
				continue
			}
			candidates = append(candidates, featureCandidate{
				srcIdx: i, tgtIdx: j,
				distSq: d,
			})
		}
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].distSq < candidates[j].distSq })

	usedSrc := make([]bool, len(corners1))
	usedTgt := make([]bool, len(corners2))
	var mappings []acceptedMapping

	for _, cand := range candidates {
		if usedSrc[cand.srcIdx] || usedTgt[cand.tgtIdx] {
			continue
		}
		srcP := corners1[cand.srcIdx].Progress
		tgtP := corners2[cand.tgtIdx].Progress

		if len(mappings) == 0 {
			mappings = append(mappings, acceptedMapping{srcP, tgtP})
			usedSrc[cand.srcIdx] = true
			usedTgt[cand.tgtIdx] = true
			continue
		}

		n := len(mappings)
		insertIdx := sort.Search(n, func(i int) bool { return mappings[i].source > srcP })
		prev := mappings[(insertIdx-1+n)%n]
		next := mappings[insertIdx%n]

		if wrapDistance(srcP, prev.source) < epsDist || wrapDistance(srcP, next.source) < epsDist {
			continue
		}
		if wrapDistance(tgtP, prev.target) < epsDist || wrapDistance(tgtP, next.target) < epsDist {
			continue
		}
		if n >= 2 && !wrapRangeContains(prev.target, next.target, tgtP) {
			continue
		}

		mappings = append(mappings, acceptedMapping{})
		copy(mappings[insertIdx+1:], mappings[insertIdx:n])
		mappings[insertIdx] = acceptedMapping{srcP, tgtP}
		usedSrc[cand.srcIdx] = true
		usedTgt[cand.tgtIdx] = true
	}

	switch len(mappings) {
	case 0:
		return NewDoubleMapper([][2]float64{{0, 0}, {0.5, 0.5}})
	case 1:
		m := mappings[0]
		return NewDoubleMapper([][2]float64{
			{m.source, m.target},
			{wrapUnit(m.source + 0.5), wrapUnit(m.target + 0.5)},
		})
	default:
		pairs := make([][2]float64, len(mappings))
		for i, m := range mappings {
			pairs[i] = [2]float64{m.source, m.target}
		}
		return NewDoubleMapper(pairs)
	}
}

func filterCornerFeatures(features []ProgressableFeature) []ProgressableFeature {
	out := make([]ProgressableFeature, 0, len(features))
	for _, f := range features {
		if f.Feature.IsCorner() {
			out = append(out, f)
		}
	}
	return out
}

// featureDistanceSq is the matching cost between two corner features:
// infinite if their convexity differs (never matched), else the squared
// Euclidean distance between their representative points.
func featureDistanceSq(a, b Feature) float64 {
	if a.IsConvexCorner() != b.IsConvexCorner() {
		return math.Inf(1)
	}
	pa := representativePoint(a)
	pb := representativePoint(b)
	return pa.Sub(pb).LengthSquared()
}

// wrapRangeContains reports whether x lies in the circular arc running
// from a to b in the increasing (mod 1) direction.
func wrapRangeContains(a, b, x float64) bool {
	span := wrapUnit(b - a)
	pos := wrapUnit(x - a)
	return pos <= span
}
