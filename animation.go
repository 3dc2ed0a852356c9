package cellbloom

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously. Call Update(dt)
// each frame; values are written back to the fields as they advance.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values back.
func (g *TweenGroup) Update(dt float32) {
	if g == nil || g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenValue animates *field from its current value to `to` over duration
// seconds.
func TweenValue(field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[0] = field
	return g
}

// TweenColor animates all four components of *c to the target color.
func TweenColor(c *Color, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 4}
	g.tweens[0] = gween.New(float32(c.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(c.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(c.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(c.A), float32(to.A), duration, fn)
	g.fields[0] = &c.R
	g.fields[1] = &c.G
	g.fields[2] = &c.B
	g.fields[3] = &c.A
	return g
}

// shakeOffset maps a shake envelope decaying from 1 to 0 onto a horizontal
// wobble of at most amplitude pixels.
func shakeOffset(envelope, amplitude float64) float64 {
	return amplitude * envelope * math.Sin(envelope*shakeCycles*2*math.Pi)
}

const shakeCycles = 12
