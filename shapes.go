package cellbloom

import (
	"math"
	"math/rand/v2"
)

// LineConfig shapes the wavy line formation.
type LineConfig struct {
	Width     float64 // fraction of the viewport width
	Amplitude float64
	Frequency float64 // radians per particle index
	Ease      Range
}

// LineTargets spreads particle targets evenly across Width of the viewport,
// offset vertically by a sine of the particle index, and gives each particle
// a random ease from cfg.Ease so they arrive at slightly different times.
func LineTargets(ps []Particle, view Size, cfg LineConfig, rng *rand.Rand) {
	n := len(ps)
	if n == 0 {
		return
	}
	lineWidth := float64(view.W) * cfg.Width
	startX := (float64(view.W) - lineWidth) / 2
	step := lineWidth / float64(n)
	centerY := float64(view.H) / 2
	for i := range ps {
		p := &ps[i]
		p.TargetX = startX + float64(i)*step
		p.TargetY = centerY + math.Sin(float64(i)*cfg.Frequency)*cfg.Amplitude
		p.Ease = cfg.Ease.Random(rng)
	}
}

// TextConfig controls how particles are assigned to text points.
type TextConfig struct {
	Color Color
	Ease  float64
}

// TextTargets maps a random subset of particles one-to-one onto points.
// Particles left over once points run out are sent below the viewport with
// a transparent color; none are removed.
func TextTargets(ps []Particle, points []Vec2, view Size, cfg TextConfig, rng *rand.Rand) {
	order := rng.Perm(len(ps))
	for i, idx := range order {
		p := &ps[idx]
		if i < len(points) {
			p.TargetX = points[i].X
			p.TargetY = points[i].Y
			p.Color = cfg.Color
			p.Ease = cfg.Ease
			continue
		}
		p.TargetX = rng.Float64() * float64(view.W)
		p.TargetY = float64(view.H) + 100
		p.Color = ColorTransparent
	}
}

// heartCurve returns the unscaled heart curve at parameter t.
func heartCurve(t float64) (x, y float64) {
	s := math.Sin(t)
	x = 16 * s * s * s
	y = -(13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t))
	return x, y
}

// HeartOffsets gives every particle a random point inside the heart curve.
// The radius factor is sqrt(u) so points are spread evenly over the area
// rather than bunched at the center.
func HeartOffsets(ps []Particle, c Color, ease float64, rng *rand.Rand) {
	for i := range ps {
		t := rng.Float64() * math.Pi * 2
		d := math.Sqrt(rng.Float64())
		hx, hy := heartCurve(t)
		p := &ps[i]
		p.HeartX = hx * d
		p.HeartY = hy * d
		p.Color = c
		p.VX = 0
		p.VY = 0
		p.Ease = ease
	}
}

// HeartConfig drives the heart pulsation.
type HeartConfig struct {
	BaseScale float64
	BeatSpeed float64
	Pulse     float64
}

// beatsPerPhase converts elapsed ticks into pulse phase.
const beatsPerPhase = 3

// phase returns the pulse phase after the given number of ticks in the
// heart state.
func (c HeartConfig) phase(ticks int) float64 {
	return float64(ticks) * c.BeatSpeed * beatsPerPhase
}

// Scale returns the heart scale after the given number of ticks.
func (c HeartConfig) Scale(ticks int) float64 {
	return c.BaseScale * (1 + c.Pulse*math.Sin(c.phase(ticks)))
}

// Beat reports whether the pulse crossed its peak between ticks-1 and ticks.
func (c HeartConfig) Beat(ticks int) bool {
	if ticks <= 0 || c.BeatSpeed <= 0 {
		return false
	}
	const peak = math.Pi / 2
	prev := math.Floor((c.phase(ticks-1) - peak) / (2 * math.Pi))
	cur := math.Floor((c.phase(ticks) - peak) / (2 * math.Pi))
	return cur > prev
}
