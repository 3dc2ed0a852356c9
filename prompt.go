package cellbloom

import (
	"strings"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// Gate decides whether a typed answer counts as a yes.
type Gate struct {
	Affirmations []string
}

// DefaultGate accepts the usual ways of saying yes.
func DefaultGate() Gate {
	return Gate{Affirmations: []string{
		"yes", "yeah", "yep", "ok", "okay", "sure", "definitely", "absolutely", "of course",
	}}
}

// Accepts trims and lower-cases answer and reports whether it contains any
// affirmation.
func (g Gate) Accepts(answer string) bool {
	a := strings.ToLower(strings.TrimSpace(answer))
	if a == "" {
		return false
	}
	for _, w := range g.Affirmations {
		if w != "" && strings.Contains(a, w) {
			return true
		}
	}
	return false
}

const (
	promptMaxRunes    = 64
	promptPlaceholder = "Type your answer..."
	promptY           = 0.7
	promptSize        = 20
	promptShakeAmp    = 10.0
)

// rejectSeconds is how long the error caption and shake last.
const rejectSeconds = 5

// Prompt is the single-line answer field opened by Scene.Ask.
type Prompt struct {
	gate     Gate
	active   bool
	accepted bool
	input    []rune
	blink    float64
	shake    float64
	shaking  *TweenGroup
}

// NewPrompt returns a closed prompt that judges answers with gate.
func NewPrompt(gate Gate) *Prompt {
	return &Prompt{gate: gate}
}

// SetGate replaces the answer gate.
func (p *Prompt) SetGate(g Gate) { p.gate = g }

// Active reports whether the prompt is open for typing.
func (p *Prompt) Active() bool { return p.active }

// Accepted reports whether the last submitted answer passed the gate.
func (p *Prompt) Accepted() bool { return p.accepted }

// Value returns the current text.
func (p *Prompt) Value() string { return string(p.input) }

func (p *Prompt) open() {
	p.active = true
	p.accepted = false
	p.input = p.input[:0]
}

// Type appends a printable rune.
func (p *Prompt) Type(r rune) {
	if !p.active || !unicode.IsPrint(r) || len(p.input) >= promptMaxRunes {
		return
	}
	p.input = append(p.input, r)
}

// Backspace removes the last rune.
func (p *Prompt) Backspace() {
	if p.active && len(p.input) > 0 {
		p.input = p.input[:len(p.input)-1]
	}
}

// submit judges the current text. An accepted answer closes the prompt; a
// rejected one keeps it open and starts the shake.
func (p *Prompt) submit() bool {
	if !p.active {
		return false
	}
	if p.gate.Accepts(string(p.input)) {
		p.active = false
		p.accepted = true
		return true
	}
	p.shake = 1
	p.shaking = TweenValue(&p.shake, 0, rejectSeconds, ease.Linear)
	return false
}

func (p *Prompt) update(dt float32) {
	p.shaking.Update(dt)
	if p.active {
		p.blink += float64(dt)
	}
}

func (p *Prompt) draw(screen *ebiten.Image, view Size) {
	if !p.active {
		return
	}
	x := float64(view.W)/2 + shakeOffset(p.shake, promptShakeAmp)
	y := float64(view.H) * promptY
	if len(p.input) == 0 {
		drawCentered(screen, promptPlaceholder, promptSize, x, y, Color{1, 1, 1, 0.4}, 1)
		return
	}
	s := string(p.input)
	if int(p.blink*2)%2 == 0 {
		s += "_"
	}
	drawCentered(screen, s, promptSize, x, y, ColorWhite, 1)
}

// Ask opens the answer prompt. A script waiting on "ask" resumes once an
// accepted answer is submitted.
func (s *Scene) Ask() {
	s.prompt.open()
}

// SubmitAnswer judges the prompt's text. Accepted answers close the prompt;
// rejected ones show ErrorCaption and shake the field for five seconds.
func (s *Scene) SubmitAnswer() bool {
	if !s.prompt.Active() {
		return false
	}
	if s.prompt.submit() {
		s.HideCaption(ErrorCaption.Label)
		return true
	}
	if s.debug {
		logger.Printf("answer %q rejected", s.prompt.Value())
	}
	s.ShowCaption(ErrorCaption)
	s.ShakeCaption(ErrorCaption.Label, rejectSeconds)
	return false
}
