package cellbloom

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
)

// scriptStep is a single action in a script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Text   string  `json:"text,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// scriptFile is the top-level JSON structure for a script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

var captionPresets = map[string]Caption{
	StartCaption.Label:   StartCaption,
	SuccessCaption.Label: SuccessCaption,
	ErrorCaption.Label:   ErrorCaption,
}

// Script sequences scene transitions, captions, injected input and
// screenshots across frames. Attach to a Scene via SetScript.
type Script struct {
	steps       []scriptStep
	cursor      int
	waitCount   int
	awaitClick  bool
	clicked     bool
	awaitAnswer bool
	done        bool
}

//go:embed proposal.json
var proposalJSON []byte

// ProposalScript returns the built-in sequence: wait for a click, morph to a
// line, spell the question, ask for an answer, beat the heart and dissolve
// into the automaton.
func ProposalScript() *Script {
	sc, err := LoadScript(proposalJSON)
	if err != nil {
		panic(fmt.Sprintf("cellbloom: built-in script: %v", err))
	}
	return sc
}

// LoadScript parses a JSON script and returns a Script ready to be attached
// to a Scene via SetScript.
func LoadScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("cellbloom: parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, errors.New("cellbloom: parse script: no steps")
	}
	var errs []error
	for i, st := range f.Steps {
		if err := st.validate(); err != nil {
			errs = append(errs, fmt.Errorf("step %d: %w", i, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("cellbloom: parse script: %w", err)
	}
	return &Script{steps: f.Steps}, nil
}

func (st scriptStep) validate() error {
	switch st.Action {
	case "awaitClick", "line", "heart", "life", "lifeDirect", "ask",
		"click", "drag", "screenshot", "pause", "resume", "hideCaption":
		return nil
	case "text":
		if st.Text == "" {
			return errors.New("text: missing text")
		}
	case "wait":
		if st.Frames < 0 {
			return fmt.Errorf("wait: negative frames %d", st.Frames)
		}
	case "caption":
		if _, ok := captionPresets[st.Label]; !ok && st.Text == "" {
			return fmt.Errorf("caption: unknown label %q without text", st.Label)
		}
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}

// SetScript attaches a script to the scene. Its step method runs from
// Scene.Update before input is processed each frame. Nil detaches.
func (s *Scene) SetScript(sc *Script) {
	s.script = sc
}

// Script returns the attached script, or nil.
func (s *Scene) Script() *Script { return s.script }

// Done reports whether every step has been executed.
func (r *Script) Done() bool {
	return r.done
}

// Waiting reports whether the script is blocked on a click or an answer.
func (r *Script) Waiting() bool {
	return r.awaitClick || r.awaitAnswer
}

func (r *Script) pointerPressed() {
	if r.awaitClick {
		r.clicked = true
	}
}

// step advances the script by one frame. Called from Scene.Update.
func (r *Script) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.awaitClick {
		if !r.clicked {
			return
		}
		r.awaitClick = false
	}
	if r.awaitAnswer {
		if !s.prompt.Accepted() {
			return
		}
		r.awaitAnswer = false
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++
	r.exec(s, st)

	if r.cursor >= len(r.steps) && r.waitCount == 0 && !r.Waiting() && len(s.injectQueue) == 0 {
		r.done = true
	}
}

func (r *Script) exec(s *Scene, st scriptStep) {
	switch st.Action {
	case "awaitClick":
		r.awaitClick = true
		r.clicked = false
	case "line":
		s.BeginLineMorph()
	case "text":
		s.MorphToText(st.Text)
	case "heart":
		s.BeginHeart()
	case "life":
		s.BeginLifeFromHeart()
	case "lifeDirect":
		s.BeginLifeDirect()
	case "ask":
		s.Ask()
		r.awaitAnswer = true
	case "caption":
		c, ok := captionPresets[st.Label]
		if !ok {
			c = Caption{Label: st.Label, Y: 0.5, Size: 24, Color: ColorWhite, FadeIn: 1, FadeOut: 1}
		}
		if st.Text != "" {
			c.Text = st.Text
		}
		if st.Y > 0 {
			c.Y = st.Y
		}
		s.ShowCaption(c)
	case "hideCaption":
		s.HideCaption(st.Label)
	case "screenshot":
		s.Screenshot(st.Label)
	case "click":
		s.InjectClick(st.X, st.Y)
	case "drag":
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "pause":
		s.PauseLife()
	case "resume":
		s.ResumeLife()
	}
}
