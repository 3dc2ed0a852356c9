package cellbloom

import (
	"errors"
	"image"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrNoImage is returned by Initialize when no decoded image is supplied.
var ErrNoImage = errors.New("cellbloom: no image")

// EventSink is the interface for optional event forwarding. When set on a
// Scene, state changes, heartbeats, paints and generations are emitted to it.
type EventSink interface {
	EmitEvent(event SceneEvent)
}

// SceneEvent carries scene event data to an EventSink.
type SceneEvent struct {
	Type  EventType
	State State
	Frame int
	// Pointer fields (valid for EventPaint, EventPointerDown)
	X, Y float64
	// Automaton fields (valid for EventGeneration, EventStateChange into life)
	Generation int
	LiveCells  int
}

// Scene owns the particle collection, the life grid and the current state.
// All methods must be called from the goroutine driving Update/Tick.
type Scene struct {
	cfg    Config
	pal    palette
	rng    *rand.Rand
	motion motion
	text   TextRasterizer
	sink   EventSink
	debug  bool

	view        Size
	img         image.Image
	initialized bool
	particles   []Particle
	grid        *LifeGrid

	state      State
	frame      int
	stateFrame int // frame at which the current state was entered

	// ClearColor fills the screen before each Draw.
	ClearColor Color

	// Presentation
	overlay overlay
	prompt  *Prompt
	batch   frameBatch
	showFPS bool

	// Input and scripting
	pointers        [maxPointers]pointerState
	touchMap        [maxPointers]ebiten.TouchID
	touchUsed       [maxPointers]bool
	prevTouchIDs    []ebiten.TouchID
	injectQueue     []syntheticPointerEvent
	keyBuf          []rune
	script          *Script
	screenshotQueue []string
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	updateFunc func() error
	lastStats  debugStats
}

// NewScene creates an idle scene with the given configuration. The random
// source is time-seeded unless cfg.Seed is non-zero.
func NewScene(cfg Config) *Scene {
	cfg = cfg.withDefaults()
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	s := &Scene{
		cfg: cfg,
		pal: cfg.palette(),
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		motion: motion{
			idleAmplitude: cfg.IdleAmplitude,
			idleSpeed:     cfg.IdleSpeed,
			heartEase:     cfg.HeartEase,
		},
		grid:          NewLifeGrid(0, 0),
		ClearColor:    Color{0, 0, 0, 1},
		ScreenshotDir: "screenshots",
	}
	s.prompt = NewPrompt(DefaultGate())
	return s
}

// SetRand replaces the scene's random source. Shuffles, soups, line eases,
// heart offsets and breath phases all draw from it.
func (s *Scene) SetRand(rng *rand.Rand) {
	if rng != nil {
		s.rng = rng
	}
}

// SetTextRasterizer sets the rasterizer used by MorphToText. When unset, a
// Go Bold face at Config.FontSize is created on first use.
func (s *Scene) SetTextRasterizer(r TextRasterizer) {
	s.text = r
}

// SetEventSink sets the optional event bridge.
func (s *Scene) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetDebugMode enables or disables per-frame timing logs.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// SetUpdateFunc registers a callback run at the end of every Update.
// Returning an error (such as ebiten.Termination) stops the game loop.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// Config returns the scene configuration.
func (s *Scene) Config() Config { return s.cfg }

// State returns the current state.
func (s *Scene) State() State { return s.state }

// Frame returns the number of ticks since the scene was created.
func (s *Scene) Frame() int { return s.frame }

// Viewport returns the current viewport size.
func (s *Scene) Viewport() Size { return s.view }

// Initialized reports whether Initialize has completed successfully.
func (s *Scene) Initialized() bool { return s.initialized }

// Particles returns the particle collection. The slice is owned by the scene
// and must not be retained across ticks.
func (s *Scene) Particles() []Particle { return s.particles }

// Grid returns the life grid. It is empty until the scene enters StateLife.
func (s *Scene) Grid() *LifeGrid { return s.grid }

// Prompt returns the answer prompt shown by the "ask" script step.
func (s *Scene) Prompt() *Prompt { return s.prompt }

// Initialize samples img into particles at the current viewport and returns
// the scene to StateIdle. A nil image yields ErrNoImage; the scene stays
// usable with an empty particle collection.
func (s *Scene) Initialize(img image.Image) error {
	if img == nil {
		return ErrNoImage
	}
	s.img = img
	s.sample()
	s.initialized = true
	s.setState(StateIdle)
	logger.Printf("sampled %d particles at %dx%d", len(s.particles), s.view.W, s.view.H)
	return nil
}

func (s *Scene) sample() {
	s.particles = SampleImage(s.img, s.view, SamplerConfig{
		Stride:         s.cfg.Stride,
		AlphaThreshold: s.cfg.AlphaThreshold,
		MaxWidth:       s.cfg.MaxImageWidth,
		Ease:           s.cfg.ParticleEase,
	}, s.rng)
}

func (s *Scene) setState(st State) {
	if s.state == StateLife && st != StateLife {
		s.grid.SetRunning(false)
	}
	s.state = st
	s.stateFrame = s.frame
	if s.debug {
		logger.Printf("frame %d: enter %v", s.frame, st)
	}
	s.emit(SceneEvent{
		Type:       EventStateChange,
		Generation: s.grid.Generation(),
		LiveCells:  s.liveCellsIfLife(),
	})
}

func (s *Scene) liveCellsIfLife() int {
	if s.state != StateLife {
		return 0
	}
	return s.grid.LiveCount()
}

func (s *Scene) emit(ev SceneEvent) {
	if s.sink == nil {
		return
	}
	ev.State = s.state
	ev.Frame = s.frame
	s.sink.EmitEvent(ev)
}

// BeginLineMorph sends the particles into a wavy horizontal line.
func (s *Scene) BeginLineMorph() {
	s.setState(StateMorph)
	LineTargets(s.particles, s.view, LineConfig{
		Width:     s.cfg.LineWidth,
		Amplitude: s.cfg.LineAmplitude,
		Frequency: s.cfg.LineFrequency,
		Ease:      s.cfg.LineEase,
	}, s.rng)
}

// MorphToText reshapes the particles into text centered in the viewport.
// It may be called repeatedly; each call reshuffles the assignment.
func (s *Scene) MorphToText(text string) {
	s.setState(StateMorph)
	var points []Vec2
	if r := s.rasterizer(); r != nil {
		mask := r.Rasterize(text, s.view)
		points = TextPoints(mask, s.cfg.TextStride, s.cfg.AlphaThreshold)
	}
	TextTargets(s.particles, points, s.view, TextConfig{
		Color: s.pal.text,
		Ease:  s.cfg.TextEase,
	}, s.rng)
}

func (s *Scene) rasterizer() TextRasterizer {
	if s.text != nil {
		return s.text
	}
	r, err := DefaultRasterizer(s.cfg.FontSize)
	if err != nil {
		logger.Printf("text rasterizer unavailable: %v", err)
		return nil
	}
	s.text = r
	return r
}

// heartRestEase is stored on particles entering the heart. The heart itself
// converges at Config.HeartEase; the stored value applies to later morphs.
const heartRestEase = 0.05

// BeginHeart gathers the particles into a pulsing heart at the viewport
// center.
func (s *Scene) BeginHeart() {
	s.setState(StateHeart)
	HeartOffsets(s.particles, s.pal.heart, heartRestEase, s.rng)
}

// BeginLifeFromHeart dissolves the particles into the automaton, seeded from
// their current positions.
func (s *Scene) BeginLifeFromHeart() {
	s.enterLife()
}

// BeginLifeDirect starts the automaton from whatever the particles currently
// look like, skipping the heart.
func (s *Scene) BeginLifeDirect() {
	s.enterLife()
}

func (s *Scene) enterLife() {
	s.seedGrid()
	s.setState(StateLife)
}

func (s *Scene) seedGrid() {
	cols, rows := GridSizeFor(s.view, s.cfg.CellSize)
	s.grid = NewLifeGrid(cols, rows)
	s.grid.Seed(s.particles, s.cfg.CellSize, s.cfg.LifeDensity, s.rng)
}

// OnPointerPaint paints live cells under (x, y). It is a no-op outside
// StateLife and reports whether any cell was painted.
func (s *Scene) OnPointerPaint(x, y float64) bool {
	if s.state != StateLife {
		return false
	}
	if !s.grid.Paint(x, y, s.cfg.CellSize) {
		return false
	}
	s.emit(SceneEvent{Type: EventPaint, X: x, Y: y})
	return true
}

// OnResize records the new viewport and re-derives geometry for the current
// state only: idle re-samples the image, life re-seeds the grid. Morph and
// heart targets are left until the next transition. Non-positive sizes are
// recorded but derive nothing.
func (s *Scene) OnResize(w, h int) {
	if w == s.view.W && h == s.view.H {
		return
	}
	s.view = Size{w, h}
	if s.view.Empty() {
		return
	}
	switch s.state {
	case StateIdle:
		if s.initialized {
			s.sample()
		}
	case StateLife:
		running := s.grid.Running()
		s.seedGrid()
		s.grid.SetRunning(running)
	}
}

// PauseLife stops the automaton from stepping. Painting still works.
func (s *Scene) PauseLife() { s.grid.SetRunning(false) }

// ResumeLife restarts stepping when the scene is in StateLife.
func (s *Scene) ResumeLife() {
	if s.state == StateLife {
		s.grid.SetRunning(true)
	}
}

// ToggleLife pauses a running automaton or resumes a paused one.
func (s *Scene) ToggleLife() {
	if s.grid.Running() {
		s.PauseLife()
	} else {
		s.ResumeLife()
	}
}

// Tick advances the simulation by one frame: the frame counter increments
// and exactly one state's update runs.
func (s *Scene) Tick() {
	s.frame++
	behaviors[s.state].update(s)
}

// Update runs one full frame: scripted steps, pointer and keyboard input,
// the simulation tick and overlay animation. It is the ebiten Update body.
func (s *Scene) Update() error {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	s.advance(float32(1.0/float64(ebiten.TPS())), true)
	if s.debug {
		s.lastStats.updateTime = time.Since(t0)
	}
	if s.updateFunc != nil {
		return s.updateFunc()
	}
	return nil
}

// Step runs one frame without reading ebiten's input devices: scripted
// steps, injected pointer events, the tick and overlay animation over dt
// seconds. Frontends that feed input themselves call it instead of Update.
func (s *Scene) Step(dt float32) {
	s.advance(dt, false)
}

func (s *Scene) advance(dt float32, devices bool) {
	if s.script != nil {
		s.script.step(s)
	}
	if devices {
		s.processInput()
	} else {
		s.processInjectedInput()
	}
	s.Tick()
	s.overlay.update(dt)
	s.prompt.update(dt)
}

// HandlePointer feeds the primary pointer's position and button state from
// a frontend that does not use ebiten input.
func (s *Scene) HandlePointer(x, y float64, pressed bool) {
	s.processPointer(0, x, y, pressed)
}

func (s *Scene) updateIdle() {
	s.motion.drift(s.particles, s.frame)
}

func (s *Scene) updateMorph() {
	s.motion.seekAll(s.particles)
}

func (s *Scene) updateHeart() {
	hc := HeartConfig{
		BaseScale: s.cfg.HeartBaseScale,
		BeatSpeed: s.cfg.HeartBeatSpeed,
		Pulse:     s.cfg.HeartPulse,
	}
	ticks := s.frame - s.stateFrame
	s.motion.pulse(s.particles, s.view.Center(), hc.Scale(ticks))
	if hc.Beat(ticks) {
		s.emit(SceneEvent{Type: EventHeartBeat})
	}
}

func (s *Scene) updateLife() {
	if !s.grid.Running() || s.frame%s.cfg.LifeStepInterval != 0 {
		return
	}
	s.grid.Step()
	s.emit(SceneEvent{
		Type:       EventGeneration,
		Generation: s.grid.Generation(),
		LiveCells:  s.grid.LiveCount(),
	})
}
