// Package raster rasterizes cubic Bézier outlines to alpha bitmaps for
// test-only shape comparison. It exists so tests can check "these two
// outlines are visually the same shape" (e.g. a Morph's endpoint against
// its source polygon) without depending on exact cubic-list equality,
// which cut allocation and feature flattening are free to disagree on.
package raster

import (
	"image"

	"golang.org/x/image/vector"
)

// Cubic is the minimal shape of a cubic Bézier curve this package needs:
// kept independent of the roundshape package's own Cubic type so this
// package has no import-cycle-inducing dependency on it.
type Cubic struct {
	Anchor0, Control0, Control1, Anchor1 [2]float64
}

// Size is the bitmap dimension used for comparison rasterization. Coarse
// enough to run fast in tests, fine enough that two visually distinct
// shapes won't alias into matching.
const Size = 128

// Rasterize draws a closed outline of cubics (already scaled to fit
// [0,Size]x[0,Size]) to an alpha bitmap. The outline is assumed closed:
// the last cubic's Anchor1 should equal the first's Anchor0.
func Rasterize(cubics []Cubic) *image.Alpha {
	r := vector.NewRasterizer(Size, Size)
	if len(cubics) == 0 {
		dst := image.NewAlpha(image.Rect(0, 0, Size, Size))
		return dst
	}

	r.MoveTo(float32(cubics[0].Anchor0[0]), float32(cubics[0].Anchor0[1]))
	for _, c := range cubics {
		r.CubeTo(
			float32(c.Control0[0]), float32(c.Control0[1]),
			float32(c.Control1[0]), float32(c.Control1[1]),
			float32(c.Anchor1[0]), float32(c.Anchor1[1]),
		)
	}
	r.ClosePath()

	dst := image.NewAlpha(image.Rect(0, 0, Size, Size))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

// FitToSize returns an affine transform (as a function) mapping bounds
// [minX,minY,maxX,maxY] into [0,Size]x[0,Size], preserving aspect ratio and
// centering the shorter axis, so two differently-scaled outlines can be
// rasterized into directly comparable bitmaps.
func FitToSize(bounds [4]float64) func(x, y float64) (float64, float64) {
	width := bounds[2] - bounds[0]
	height := bounds[3] - bounds[1]
	scale := width
	if height > scale {
		scale = height
	}
	if scale < 1e-9 {
		return func(x, y float64) (float64, float64) { return Size / 2, Size / 2 }
	}
	offsetX := (scale - width) / 2
	offsetY := (scale - height) / 2
	return func(x, y float64) (float64, float64) {
		return (x - bounds[0] + offsetX) / scale * Size, (y - bounds[1] + offsetY) / scale * Size
	}
}

// DiffFraction returns the fraction of pixels whose alpha coverage differs
// by more than 32 (of 255) between a and b. Both must be the same size.
func DiffFraction(a, b *image.Alpha) float64 {
	bounds := a.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total == 0 {
		return 0
	}
	diff := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			av := a.AlphaAt(x, y).A
			bv := b.AlphaAt(x, y).A
			d := int(av) - int(bv)
			if d < 0 {
				d = -d
			}
			if d > 32 {
				diff++
			}
		}
	}
	return float64(diff) / float64(total)
}
