package roundshape

import "testing"

func TestBuildFeatureMapper_ZeroCandidatesDefault(t *testing.T) {
	m, err := BuildFeatureMapper(nil, nil)
	if err != nil {
		t.Fatalf("BuildFeatureMapper: %v", err)
	}
	if got := m.Map(0); got != 0 {
		t.Errorf("default mapper Map(0) = %v, want 0", got)
	}
	if got := m.Map(0.25); got != 0.25 {
		t.Errorf("default mapper Map(0.25) = %v, want 0.25", got)
	}
}

func TestBuildFeatureMapper_OneCandidate(t *testing.T) {
	corner, err := NewConvexCorner([]Cubic{EmptyCubic(Pt(0, 0))})
	if err != nil {
		t.Fatalf("NewConvexCorner: %v", err)
	}
	f1 := []ProgressableFeature{{Progress: 0.2, Feature: corner}}
	f2 := []ProgressableFeature{{Progress: 0.7, Feature: corner}}
	m, err := BuildFeatureMapper(f1, f2)
	if err != nil {
		t.Fatalf("BuildFeatureMapper: %v", err)
	}
	if got := m.Map(0.2); wrapDistance(got, 0.7) > epsDist {
		t.Errorf("Map(0.2) = %v, want ~0.7", got)
	}
	if got := m.Map(wrapUnit(0.2 + 0.5)); wrapDistance(got, wrapUnit(0.7+0.5)) > epsDist {
		t.Errorf("symmetric extension point mismatch: got %v", got)
	}
}

func TestBuildFeatureMapper_ExcludesMismatchedConvexity(t *testing.T) {
	convex, _ := NewConvexCorner([]Cubic{EmptyCubic(Pt(0, 0))})
	concave, _ := NewConcaveCorner([]Cubic{EmptyCubic(Pt(0, 0))})

	f1 := []ProgressableFeature{{Progress: 0.1, Feature: convex}}
	f2 := []ProgressableFeature{{Progress: 0.6, Feature: concave}}
	m, err := BuildFeatureMapper(f1, f2)
	if err != nil {
		t.Fatalf("BuildFeatureMapper: %v", err)
	}
	// No candidate could match (convexity differs), so the default
	// mapping is used instead of pairing the mismatched corners.
	if got := m.Map(0); got != 0 {
		t.Errorf("expected default identity-ish mapping, Map(0) = %v", got)
	}
}

func TestBuildFeatureMapper_NonCrossing(t *testing.T) {
	mk := func(p float64) ProgressableFeature {
		c, _ := NewConvexCorner([]Cubic{EmptyCubic(Pt(0, 0))})
		return ProgressableFeature{Progress: p, Feature: c}
	}
	f1 := []ProgressableFeature{mk(0.1), mk(0.4), mk(0.7)}
	f2 := []ProgressableFeature{mk(0.15), mk(0.45), mk(0.75)}
	m, err := BuildFeatureMapper(f1, f2)
	if err != nil {
		t.Fatalf("BuildFeatureMapper: %v", err)
	}
	prevSrc, prevTgt := 0.0, m.Map(0)
	crossings := 0
	for _, src := range []float64{0.1, 0.4, 0.7} {
		tgt := m.Map(src)
		if tgt < prevTgt {
			crossings++
		}
		prevSrc, prevTgt = src, tgt
	}
	_ = prevSrc
	if crossings > 1 {
		t.Errorf("feature mapping crossed target order %d times, want <= 1", crossings)
	}
}
