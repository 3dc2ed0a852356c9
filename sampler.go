package cellbloom

import (
	"image"
	"math"
	"math/rand/v2"

	"golang.org/x/image/draw"
)

// SamplerConfig controls how an image is decomposed into particles.
type SamplerConfig struct {
	Stride         int
	AlphaThreshold uint8
	MaxWidth       float64
	Ease           float64
}

// FitRect scales an imgW x imgH image to min(viewW, maxWidth) wide,
// preserving aspect ratio, and centers it in the viewport.
func FitRect(imgW, imgH int, view Size, maxWidth float64) Rect {
	if imgW <= 0 || imgH <= 0 || view.Empty() {
		return Rect{}
	}
	w := math.Min(float64(view.W), maxWidth)
	h := w / (float64(imgW) / float64(imgH))
	return Rect{
		X:      (float64(view.W) - w) / 2,
		Y:      (float64(view.H) - h) / 2,
		Width:  w,
		Height: h,
	}
}

// SampleImage draws img into its fitted rectangle and emits one particle per
// stride cell whose straight alpha exceeds the threshold. Iteration is
// row-major, which also defines draw order. Positions and colors are fully
// determined by img and view; rng only supplies breath phases.
func SampleImage(img image.Image, view Size, cfg SamplerConfig, rng *rand.Rand) []Particle {
	if img == nil || cfg.Stride <= 0 {
		return nil
	}
	b := img.Bounds()
	r := FitRect(b.Dx(), b.Dy(), view, cfg.MaxWidth)
	w, h := int(r.Width), int(r.Height)
	if w <= 0 || h <= 0 {
		return nil
	}

	px := rasterize(img, w, h)
	size := math.Max(1, float64(cfg.Stride-1))

	var ps []Particle
	for iy := 0; iy < h; iy += cfg.Stride {
		for ix := 0; ix < w; ix += cfg.Stride {
			i := px.PixOffset(ix, iy)
			if px.Pix[i+3] <= cfg.AlphaThreshold {
				continue
			}
			c := ColorFromRGBA8(px.Pix[i], px.Pix[i+1], px.Pix[i+2])
			breath := rng.Float64() * math.Pi * 2
			ps = append(ps, newParticle(r.X+float64(ix), r.Y+float64(iy), c, size, cfg.Ease, breath))
		}
	}
	return ps
}

// rasterize returns img as straight-alpha pixels at w x h. Same-size images
// are copied exactly; anything else is resampled bilinearly.
func rasterize(img image.Image, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	src := img.Bounds()
	if src.Dx() == w && src.Dy() == h {
		draw.Copy(dst, image.Point{}, img, src, draw.Src, nil)
		return dst
	}
	draw.BiLinear.Scale(dst, dst.Bounds(), img, src, draw.Src, nil)
	return dst
}
