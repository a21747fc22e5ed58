// Package roundshape builds closed 2D outlines from polygon vertices with
// per-corner rounding, and morphs continuously between two such outlines.
//
// # Overview
//
// A RoundedPolygon is built from a vertex list (or one of the parametric
// factories: Circle, Rectangle, Star, Pill, PillStar) plus a CornerRounding
// per vertex describing how much of a circular arc, and how much
// additional tangential smoothing, to cut into that corner. Adjacent
// corners compete for the same finite edge length; when their combined
// request doesn't fit, both are scaled down proportionally rather than
// overlapping.
//
//	square, err := roundshape.FromVerticesCount(4, 1, roundshape.Pt(0, 0),
//	    roundshape.CornerRounding{Radius: 0.2, Smoothing: 0.5})
//	if err != nil {
//	    // vertex count, rounding, or explicit vertex list was invalid
//	}
//	for _, c := range square.Cubics() {
//	    // c.Anchor0, c.Control0, c.Control1, c.Anchor1
//	}
//
// A Morph interpolates between two RoundedPolygons: it matches up their
// corner features, arc-length-measures both outlines, and aligns them so
// that At(0) reproduces the first polygon and At(1) the second.
//
//	star, _ := roundshape.Star(5, 1, 0.5, roundshape.StarOptions{})
//	m, err := roundshape.NewMorph(square, star)
//	if err != nil {
//	    // feature mapping or arc-length measurement failed
//	}
//	frame := m.At(0.5)
//
// # Coordinate system
//
// No coordinate system is assumed: vertices, radii and centers are plain
// (X, Y) pairs in whatever units and orientation the caller's own
// rendering surface uses. Corner convexity is computed from the winding
// order the caller supplies; constructing a polygon from clockwise-wound
// vertices simply flips which corners are reported as convex.
//
// # Error handling
//
// Construction functions return an error wrapping either ErrInvalidArgument
// (bad caller input: too few vertices, out-of-range rounding, mismatched
// slice lengths, progresses too close together) or ErrInvalidState (an
// internal post-condition failure, not expected from any valid input).
// Every other operation — evaluation, bounds, transforms — is total and
// never errors.
//
// # Logging
//
// By default the package produces no log output. Call SetLogger with a
// *slog.Logger to observe construction-time diagnostics such as corner
// rounding being scaled down by space competition; see SetLogger's doc
// comment for the levels used.
package roundshape
