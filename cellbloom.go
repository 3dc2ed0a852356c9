package cellbloom

import (
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when vertices are emitted.
type Color struct {
	R, G, B, A float64
}

var (
	// ColorWhite is the color text-morphed particles take on.
	ColorWhite = Color{1, 1, 1, 1}
	// ColorTransparent hides a particle without removing it.
	ColorTransparent = Color{1, 1, 1, 0}
	// ColorHeart is the default heart and automaton color (#ff3366).
	ColorHeart = Color{1, 0.2, 0.4, 1}
)

// ColorFromRGBA8 builds an opaque Color from 8-bit channels.
func ColorFromRGBA8(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}
}

// ParseHexColor parses "#rrggbb" (or "#rgb") into an opaque Color.
func ParseHexColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("cellbloom: parse color %q: %w", s, err)
	}
	return Color{c.R, c.G, c.B, 1}, nil
}

// Hex formats the color as "#rrggbb", dropping alpha.
func (c Color) Hex() string {
	return colorful.Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}.Hex()
}

// Visible reports whether the color contributes anything when drawn.
func (c Color) Visible() bool {
	return c.A > 0
}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions and offsets.
type Vec2 struct {
	X, Y float64
}

// Size is a viewport size in device-independent pixels.
type Size struct {
	W, H int
}

// Empty reports whether either dimension is non-positive.
func (s Size) Empty() bool {
	return s.W <= 0 || s.H <= 0
}

// Center returns the midpoint of the viewport.
func (s Size) Center() Vec2 {
	return Vec2{float64(s.W) / 2, float64(s.H) / 2}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Range is a general-purpose min/max range.
type Range struct {
	Min float64 `toml:"min"`
	Max float64 `toml:"max"`
}

// Random returns a value in [Min, Max) drawn from rng.
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Contains reports whether v lies in [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// BlendMode selects a compositing operation.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota // source-over (standard alpha blending)
	BlendAdd                     // additive / lighter, used for halos
)

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendAdd:
		return ebiten.BlendLighter
	default:
		return ebiten.BlendSourceOver
	}
}

// EventType identifies a kind of scene event delivered to an EventSink.
type EventType uint8

const (
	EventStateChange EventType = iota // the scene entered a new state
	EventHeartBeat                    // the heart reached the peak of a pulse
	EventPaint                        // a pointer painted cells into the automaton
	EventGeneration                   // the automaton advanced one generation
	EventPointerDown                  // a pointer was pressed anywhere on the scene
)

// String returns the lower-case name of the event type.
func (t EventType) String() string {
	switch t {
	case EventStateChange:
		return "state"
	case EventHeartBeat:
		return "heartbeat"
	case EventPaint:
		return "paint"
	case EventGeneration:
		return "generation"
	case EventPointerDown:
		return "pointerdown"
	default:
		return fmt.Sprintf("event(%d)", uint8(t))
	}
}
