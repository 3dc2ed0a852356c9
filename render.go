package cellbloom

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// maxBatchQuads keeps each DrawTriangles32 submission under 65536 vertices.
const maxBatchQuads = 1 << 14

// Halo tuning: how far a halo extends past its quad and how opaque it is.
const (
	particleHaloPad   = 2.0
	particleHaloAlpha = 0.08
	cellHaloPad       = 2.0
	cellHaloAlpha     = 0.25
)

// quadBatch accumulates solid-color quads as triangle vertices.
type quadBatch struct {
	verts []ebiten.Vertex
	inds  []uint32
	blend BlendMode
}

func (b *quadBatch) reset() {
	b.verts = b.verts[:0]
	b.inds = b.inds[:0]
}

// quads returns the number of quads in the batch.
func (b *quadBatch) quads() int {
	return len(b.verts) / 4
}

// appendRect appends one axis-aligned quad with premultiplied color c.
func (b *quadBatch) appendRect(x, y, w, h float64, c Color) {
	a := float32(c.A)
	cr := float32(c.R) * a
	cg := float32(c.G) * a
	cb := float32(c.B) * a

	// 4 local positions: TL, TR, BL, BR
	lx := [4]float64{x, x + w, x, x + w}
	ly := [4]float64{y, y, y + h, y + h}

	base := uint32(len(b.verts))
	for i := 0; i < 4; i++ {
		b.verts = append(b.verts, ebiten.Vertex{
			DstX:   float32(lx[i]),
			DstY:   float32(ly[i]),
			SrcX:   whiteSrc,
			SrcY:   whiteSrc,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: a,
		})
	}

	// Two triangles: TL-TR-BL, TR-BR-BL
	b.inds = append(b.inds,
		base+0, base+1, base+2,
		base+1, base+3, base+2,
	)
}

// submit draws the batch in chunks of at most maxBatchQuads quads.
func (b *quadBatch) submit(target, src *ebiten.Image) {
	if len(b.verts) == 0 {
		return
	}
	var op ebiten.DrawTrianglesOptions
	op.Blend = b.blend.EbitenBlend()
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha

	for start := 0; start < b.quads(); start += maxBatchQuads {
		end := min(start+maxBatchQuads, b.quads())
		verts := b.verts[start*4 : end*4]
		inds := b.inds[start*6 : end*6]
		if start > 0 {
			// Indices are absolute; rebase the chunk to its own vertex slice.
			inds = rebase(inds, uint32(start*4))
		}
		target.DrawTriangles32(verts, inds, src, &op)
	}
}

func rebase(inds []uint32, offset uint32) []uint32 {
	out := make([]uint32, len(inds))
	for i, v := range inds {
		out[i] = v - offset
	}
	return out
}

// frameBatch holds everything the current state wants drawn this frame:
// additive halos first, then the solid bodies on top.
type frameBatch struct {
	halo quadBatch
	body quadBatch
}

func (f *frameBatch) reset() {
	f.halo.blend = BlendAdd
	f.body.blend = BlendNormal
	f.halo.reset()
	f.body.reset()
}

// whiteSrc is the texel center of the opaque pixel in whiteImage.
const whiteSrc = 1.5

var whiteImage *ebiten.Image

// whiteTexture returns a 3x3 white image; sampling its center texel avoids
// filtering against transparent edges.
func whiteTexture() *ebiten.Image {
	if whiteImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(ColorWhite.toRGBA())
		whiteImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteImage
}

// buildFrame fills the frame batch using the current state's draw routine.
func (s *Scene) buildFrame() *frameBatch {
	s.batch.reset()
	behaviors[s.state].draw(s, &s.batch)
	return &s.batch
}

// Draw renders the current state, captions and prompt to screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	screen.Fill(s.ClearColor.toRGBA())
	f := s.buildFrame()
	src := whiteTexture()
	f.halo.submit(screen, src)
	f.body.submit(screen, src)

	s.overlay.draw(screen, s.view)
	s.prompt.draw(screen, s.view)
	if s.showFPS {
		drawFPS(screen)
	}

	if s.debug {
		s.lastStats.drawTime = time.Since(t0)
		s.lastStats.quads = f.halo.quads() + f.body.quads()
		s.debugLog(s.lastStats)
	}
	s.flushScreenshots(screen)
}

func (s *Scene) drawIdle(f *frameBatch) {
	if s.cfg.Glow {
		s.appendHalos(f, Color{1, 1, 1, particleHaloAlpha})
	}
	s.drawParticles(f)
}

// appendHalos adds a soft square behind every visible particle.
func (s *Scene) appendHalos(f *frameBatch, c Color) {
	for i := range s.particles {
		p := &s.particles[i]
		if !p.Color.Visible() {
			continue
		}
		f.halo.appendRect(p.X-particleHaloPad, p.Y-particleHaloPad,
			p.Size+2*particleHaloPad, p.Size+2*particleHaloPad, c)
	}
}

func (s *Scene) drawParticles(f *frameBatch) {
	for i := range s.particles {
		p := &s.particles[i]
		if !p.Color.Visible() {
			continue
		}
		f.body.appendRect(p.X, p.Y, p.Size, p.Size, p.Color)
	}
}

func (s *Scene) drawLife(f *frameBatch) {
	cs := float64(s.cfg.CellSize)
	body := s.pal.life
	halo := Color{body.R, body.G, body.B, cellHaloAlpha}
	glow := s.cfg.Glow
	s.grid.forEachAlive(func(col, row int) {
		x, y := float64(col)*cs, float64(row)*cs
		if glow {
			f.halo.appendRect(x-cellHaloPad, y-cellHaloPad, cs+2*cellHaloPad, cs+2*cellHaloPad, halo)
		}
		f.body.appendRect(x, y, cs-1, cs-1, body)
	})
}
