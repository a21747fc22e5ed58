package roundshape

// Process-wide numeric epsilons. Not configurable: every construction and
// query in this package is measured against exactly these three
// tolerances, so behavior stays consistent regardless of call site.
const (
	// epsDist bounds point-distance comparisons: two points are treated
	// as coincident if every coordinate differs by less than epsDist. A
	// cubic is zero-length iff its anchors are within epsDist in the
	// Chebyshev (L-infinity) norm.
	epsDist = 1e-5

	// epsAngle bounds arc-progress comparisons during morph construction
	// (deciding whether a cubic needs splitting at a cut point, or is
	// already short enough to consume whole).
	epsAngle = 1e-6

	// epsRelaxed is a coarser tolerance used where epsDist would be too
	// strict for the chain of floating-point operations involved. The
	// package code does not use it; the morph tests use it as the allowed
	// distance between a morph endpoint's outline and its source polygon.
	epsRelaxed = 5e-3
)
