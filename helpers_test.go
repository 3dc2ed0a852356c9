package cellbloom

import (
	"image"
	"image/color"
	"math"
	"math/rand/v2"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func testRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// solidImage returns a w x h image filled with c.
func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

// gridRasterizer returns a fixed set of points as a mask, independent of the
// text, so morph tests do not depend on font metrics.
type gridRasterizer struct {
	points int
}

func (g gridRasterizer) Rasterize(s string, view Size) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, view.W, view.H))
	n := 0
	for y := 0; y < view.H && n < g.points; y += 3 {
		for x := 0; x < view.W && n < g.points; x += 3 {
			mask.SetAlpha(x, y, color.Alpha{255})
			n++
		}
	}
	return mask
}

// newTestScene returns an initialized scene with a w x h viewport sampled
// from an opaque 10x10 image scaled to the viewport width.
func newTestScene(t *testing.T, w, h int) *Scene {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = 42
	s := NewScene(cfg)
	s.OnResize(w, h)
	if err := s.Initialize(solidImage(10, 10, color.NRGBA{200, 100, 50, 255})); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	return s
}
