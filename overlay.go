package cellbloom

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/gofont/gobold"
)

// Caption is a line of overlay text centered horizontally in the viewport.
type Caption struct {
	// Label identifies the caption for HideCaption and ShakeCaption.
	Label string
	Text  string
	// Y is the vertical center as a fraction of the viewport height.
	Y     float64
	Size  float64
	Color Color
	// FadeIn and FadeOut are in seconds; zero appears or vanishes at once.
	FadeIn, FadeOut float32
	// Duration hides the caption automatically after that many seconds
	// once fully shown. Zero keeps it until HideCaption.
	Duration float64
}

// Captions used by the proposal flow.
var (
	StartCaption = Caption{
		Label: "start", Text: "Click Anywhere to Begin",
		Y: 0.5, Size: 24, Color: Color{1, 1, 1, 0.8},
		FadeIn: 1, FadeOut: 1,
	}
	SuccessCaption = Caption{
		Label: "success", Text: "we have progressed to the next level",
		Y: 0.5, Size: 36, Color: ColorWhite,
		FadeIn: 2, FadeOut: 1,
	}
	ErrorCaption = Caption{
		Label: "error",
		Text:  "Please contact the site admin, who took a lot of time to make this, with any queries or concerns.",
		Y:     0.78, Size: 14, Color: Color{1, 0.42, 0.42, 1},
		FadeIn: 0.3, FadeOut: 0.3, Duration: 5,
	}
)

const captionShakeAmplitude = 10.0

type caption struct {
	Caption
	alpha   float64
	fade    *TweenGroup
	hiding  bool
	shown   float64 // seconds spent fully visible
	shake   float64 // envelope, 1 at the start of a shake and 0 at rest
	shaking *TweenGroup
}

// overlay holds the captions drawn above the particles.
type overlay struct {
	captions []*caption
}

func (o *overlay) find(label string) *caption {
	for _, c := range o.captions {
		if c.Label == label {
			return c
		}
	}
	return nil
}

func (o *overlay) show(c Caption) {
	cur := o.find(c.Label)
	if cur == nil {
		cur = &caption{}
		o.captions = append(o.captions, cur)
	}
	cur.Caption = c
	cur.hiding = false
	cur.shown = 0
	if c.FadeIn > 0 {
		cur.fade = TweenValue(&cur.alpha, 1, c.FadeIn, ease.Linear)
	} else {
		cur.alpha = 1
		cur.fade = nil
	}
}

func (o *overlay) hide(label string) {
	c := o.find(label)
	if c == nil || c.hiding {
		return
	}
	o.hideCaption(c)
}

func (o *overlay) shakeCaption(label string, seconds float32) {
	if c := o.find(label); c != nil {
		c.shake = 1
		c.shaking = TweenValue(&c.shake, 0, seconds, ease.Linear)
	}
}

func (o *overlay) visible(label string) bool {
	c := o.find(label)
	return c != nil && !c.hiding
}

func (o *overlay) update(dt float32) {
	kept := o.captions[:0]
	for _, c := range o.captions {
		c.fade.Update(dt)
		c.shaking.Update(dt)
		fadeDone := c.fade == nil || c.fade.Done
		if c.hiding && fadeDone {
			continue
		}
		if !c.hiding && fadeDone && c.Duration > 0 {
			c.shown += float64(dt)
			if c.shown >= c.Duration {
				o.hideCaption(c)
			}
		}
		kept = append(kept, c)
	}
	clear(o.captions[len(kept):])
	o.captions = kept
}

func (o *overlay) hideCaption(c *caption) {
	c.hiding = true
	if c.FadeOut > 0 {
		c.fade = TweenValue(&c.alpha, 0, c.FadeOut, ease.Linear)
	} else {
		c.alpha = 0
		c.fade = nil
	}
}

func (o *overlay) draw(screen *ebiten.Image, view Size) {
	for _, c := range o.captions {
		if c.alpha <= 0 || c.Text == "" {
			continue
		}
		dx := shakeOffset(c.shake, captionShakeAmplitude)
		drawCentered(screen, c.Text, c.Size, float64(view.W)/2+dx, float64(view.H)*c.Y, c.Color, c.alpha)
	}
}

// drawCentered draws s centered on (x, y) with the caption face at size.
func drawCentered(screen *ebiten.Image, s string, size, x, y float64, c Color, alpha float64) {
	f := captionFont(size)
	if f == nil {
		return
	}
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.LineSpacing = f.LineHeight()
	op.GeoM.Translate(x, y)
	a := float32(c.A * alpha)
	op.ColorScale.Scale(float32(c.R)*a, float32(c.G)*a, float32(c.B)*a, a)
	text.Draw(screen, s, f.Face(), op)
}

var captionFonts = map[float64]*TTFFont{}

// captionFont returns the Go Bold face at size, loading it on first use.
func captionFont(size float64) *TTFFont {
	if f, ok := captionFonts[size]; ok {
		return f
	}
	f, err := LoadTTFFont(gobold.TTF, size)
	if err != nil {
		logger.Printf("caption font: %v", err)
	}
	captionFonts[size] = f
	return f
}

// ShowCaption shows c, replacing any caption with the same label.
func (s *Scene) ShowCaption(c Caption) {
	s.overlay.show(c)
}

// HideCaption fades out the caption with the given label.
func (s *Scene) HideCaption(label string) {
	s.overlay.hide(label)
}

// ShakeCaption wobbles the caption horizontally for the given seconds.
func (s *Scene) ShakeCaption(label string, seconds float32) {
	s.overlay.shakeCaption(label, seconds)
}

// CaptionVisible reports whether a caption is shown and not fading out.
func (s *Scene) CaptionVisible(label string) bool {
	return s.overlay.visible(label)
}

// Captions returns the captions currently on screen with Color.A scaled by
// their fade.
func (s *Scene) Captions() []Caption {
	var out []Caption
	for _, c := range s.overlay.captions {
		if c.alpha <= 0 || c.Text == "" {
			continue
		}
		cc := c.Caption
		cc.Color.A *= c.alpha
		out = append(out, cc)
	}
	return out
}
