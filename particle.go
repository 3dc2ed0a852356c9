package cellbloom

import "math"

// Particle is one colored cell sampled from the source image. The collection
// is created once by the sampler; later states only retarget and recolor it.
type Particle struct {
	X, Y             float64 // current position
	OriginX, OriginY float64 // home position, used by idle drift
	TargetX, TargetY float64 // position the motion engine eases toward
	VX, VY           float64 // per-tick scratch velocity, never integrated
	Color            Color
	OriginColor      Color
	Size             float64
	Ease             float64 // 0 < Ease <= 1
	HeartX, HeartY   float64 // unscaled heart-curve offset
	BreathOffset     float64 // idle oscillation phase
}

// newParticle creates a particle resting at (x, y).
func newParticle(x, y float64, c Color, size, ease, breath float64) Particle {
	return Particle{
		X: x, Y: y,
		OriginX: x, OriginY: y,
		TargetX: x, TargetY: y,
		Color:        c,
		OriginColor:  c,
		Size:         size,
		Ease:         ease,
		BreathOffset: breath,
	}
}

// Seek eases the particle toward its target by its own ease factor.
// Velocity is recomputed from scratch each call, so a changed ease takes
// effect immediately without a jump in position.
func (p *Particle) Seek() {
	p.VX = (p.TargetX - p.X) * p.Ease
	p.VY = (p.TargetY - p.Y) * p.Ease
	p.X += p.VX
	p.Y += p.VY
}

// seekAt eases toward the target by a fixed factor, ignoring p.Ease.
func (p *Particle) seekAt(ease float64) {
	p.X = lerp(p.X, p.TargetX, ease)
	p.Y = lerp(p.Y, p.TargetY, ease)
}

// motion advances particle collections. It holds only tuning values and
// never retains the slices it is given.
type motion struct {
	idleAmplitude float64
	idleSpeed     float64
	heartEase     float64
}

// seekAll applies Seek to every particle.
func (m motion) seekAll(ps []Particle) {
	for i := range ps {
		ps[i].Seek()
	}
}

// drift places every particle at its origin plus a small sinusoid of the
// frame counter. There is no easing; velocity stays zero.
func (m motion) drift(ps []Particle, frame int) {
	t := float64(frame) * m.idleSpeed
	for i := range ps {
		p := &ps[i]
		p.X = p.OriginX + math.Sin(t+p.BreathOffset)*m.idleAmplitude
		p.Y = p.OriginY + math.Cos(t+p.BreathOffset*0.5)*m.idleAmplitude
		p.VX = 0
		p.VY = 0
	}
}

// pulse retargets every particle to its heart offset at the given scale
// around center, then eases toward it at the fixed heart rate.
func (m motion) pulse(ps []Particle, center Vec2, scale float64) {
	for i := range ps {
		p := &ps[i]
		p.TargetX = center.X + p.HeartX*scale
		p.TargetY = center.Y + p.HeartY*scale
		p.seekAt(m.heartEase)
	}
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
