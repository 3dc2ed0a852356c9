package cellbloom

import "testing"

func TestGateAccepts(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{"yes", true},
		{"Yes!", true},
		{"  OKAY  ", true},
		{"of course I will", true},
		{"absolutely", true},
		{"no", false},
		{"maybe later", false},
		{"", false},
		{"   ", false},
	}
	g := DefaultGate()
	for _, tt := range tests {
		if got := g.Accepts(tt.answer); got != tt.want {
			t.Errorf("Accepts(%q) = %v, want %v", tt.answer, got, tt.want)
		}
	}
}

func TestGateIgnoresEmptyAffirmation(t *testing.T) {
	g := Gate{Affirmations: []string{""}}
	if g.Accepts("anything") {
		t.Error("empty affirmation should match nothing")
	}
}

func TestPromptTyping(t *testing.T) {
	p := NewPrompt(DefaultGate())
	p.Type('x')
	if p.Value() != "" {
		t.Error("closed prompt should ignore typing")
	}
	p.open()
	for _, r := range "hi\n" {
		p.Type(r)
	}
	if p.Value() != "hi" {
		t.Errorf("Value = %q, want hi", p.Value())
	}
	p.Backspace()
	if p.Value() != "h" {
		t.Errorf("Value = %q after backspace, want h", p.Value())
	}
	p.Backspace()
	p.Backspace()
	if p.Value() != "" {
		t.Errorf("Value = %q, want empty", p.Value())
	}
	for i := 0; i < promptMaxRunes+10; i++ {
		p.Type('a')
	}
	if n := len([]rune(p.Value())); n != promptMaxRunes {
		t.Errorf("len = %d, want %d", n, promptMaxRunes)
	}
}

func TestPromptRejectShakes(t *testing.T) {
	p := NewPrompt(DefaultGate())
	p.open()
	p.Type('n')
	if p.submit() {
		t.Fatal("'n' should be rejected")
	}
	if !p.Active() || p.Accepted() {
		t.Error("rejected prompt should stay open")
	}
	if p.shake != 1 {
		t.Errorf("shake = %v, want 1", p.shake)
	}
	p.update(rejectSeconds)
	if p.shake != 0 {
		t.Errorf("shake = %v after the shake, want 0", p.shake)
	}
}

func TestSubmitAnswer(t *testing.T) {
	s := NewScene(DefaultConfig())
	if s.SubmitAnswer() {
		t.Error("submit without an open prompt should fail")
	}
	s.Ask()
	for _, r := range "nah" {
		s.Prompt().Type(r)
	}
	if s.SubmitAnswer() {
		t.Fatal("'nah' should be rejected")
	}
	if !s.CaptionVisible(ErrorCaption.Label) {
		t.Error("rejection should show the error caption")
	}

	for range "nah" {
		s.Prompt().Backspace()
	}
	for _, r := range "yeah" {
		s.Prompt().Type(r)
	}
	if !s.SubmitAnswer() {
		t.Fatal("'yeah' should be accepted")
	}
	if s.Prompt().Active() || !s.Prompt().Accepted() {
		t.Error("accepted prompt should close")
	}
	if s.CaptionVisible(ErrorCaption.Label) {
		t.Error("acceptance should hide the error caption")
	}
}

func TestAskResetsAcceptance(t *testing.T) {
	s := NewScene(DefaultConfig())
	s.Ask()
	s.Prompt().Type('k')
	s.Prompt().Type('o')
	s.Prompt().Backspace()
	s.Prompt().Backspace()
	for _, r := range "ok" {
		s.Prompt().Type(r)
	}
	s.SubmitAnswer()
	s.Ask()
	if s.Prompt().Accepted() || s.Prompt().Value() != "" {
		t.Error("Ask should clear the previous answer")
	}
}
