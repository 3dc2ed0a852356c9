package cellbloom

import (
	"bytes"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// TextRasterizer renders a string into an alpha mask the size of the
// viewport, centered both ways. Shape generators sample the mask.
type TextRasterizer interface {
	Rasterize(s string, view Size) *image.Alpha
}

// FaceRasterizer is a CPU TextRasterizer backed by an OpenType face.
type FaceRasterizer struct {
	face    font.Face
	ascent  fixed.Int26_6
	descent fixed.Int26_6
}

// NewFaceRasterizer parses TTF/OTF data and prepares a face at size pixels.
func NewFaceRasterizer(ttfData []byte, size float64) (*FaceRasterizer, error) {
	f, err := opentype.Parse(ttfData)
	if err != nil {
		return nil, fmt.Errorf("cellbloom: failed to parse font data: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("cellbloom: failed to create font face: %w", err)
	}
	m := face.Metrics()
	return &FaceRasterizer{face: face, ascent: m.Ascent, descent: m.Descent}, nil
}

// DefaultRasterizer returns a FaceRasterizer using Go Bold at size pixels.
func DefaultRasterizer(size float64) (*FaceRasterizer, error) {
	return NewFaceRasterizer(gobold.TTF, size)
}

// Rasterize draws s centered horizontally with its em box centered
// vertically, matching a "middle" baseline.
func (r *FaceRasterizer) Rasterize(s string, view Size) *image.Alpha {
	if view.Empty() {
		return image.NewAlpha(image.Rectangle{})
	}
	dst := image.NewAlpha(image.Rect(0, 0, view.W, view.H))
	if s == "" {
		return dst
	}
	width := font.MeasureString(r.face, s)
	x := fixed.I(view.W)/2 - width/2
	y := fixed.I(view.H)/2 + (r.ascent-r.descent)/2
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.Opaque,
		Face: r.face,
		Dot:  fixed.Point26_6{X: x, Y: y},
	}
	d.DrawString(s)
	return dst
}

// TextPoints scans the mask row-major with the given stride and returns the
// positions whose alpha exceeds threshold.
func TextPoints(mask *image.Alpha, stride int, threshold uint8) []Vec2 {
	if mask == nil || stride <= 0 {
		return nil
	}
	b := mask.Bounds()
	var pts []Vec2
	for y := b.Min.Y; y < b.Max.Y; y += stride {
		for x := b.Min.X; x < b.Max.X; x += stride {
			if mask.AlphaAt(x, y).A > threshold {
				pts = append(pts, Vec2{float64(x), float64(y)})
			}
		}
	}
	return pts
}

// TTFFont wraps Ebitengine's text/v2 for caption rendering.
type TTFFont struct {
	face *text.GoTextFace
	lh   float64 // cached line height
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("cellbloom: failed to parse TTF data: %w", err)
	}
	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}
	m := face.Metrics()
	return &TTFFont{face: face, lh: m.HAscent + m.HDescent + m.HLineGap}, nil
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Face returns the underlying GoTextFace for direct text/v2 rendering.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}
