package cellbloom

import (
	"math"
	"testing"
)

func TestOverlayFadeIn(t *testing.T) {
	s := NewScene(DefaultConfig())
	s.ShowCaption(StartCaption)
	if len(s.Captions()) != 0 {
		t.Error("caption should start fully transparent")
	}
	s.overlay.update(0.5)
	cs := s.Captions()
	if len(cs) != 1 {
		t.Fatalf("captions = %d, want 1", len(cs))
	}
	if got, want := cs[0].Color.A, StartCaption.Color.A*0.5; math.Abs(got-want) > 1e-6 {
		t.Errorf("alpha = %v, want %v", got, want)
	}
	s.overlay.update(0.6)
	if got := s.Captions()[0].Color.A; math.Abs(got-StartCaption.Color.A) > 1e-6 {
		t.Errorf("alpha = %v, want %v", got, StartCaption.Color.A)
	}
}

func TestOverlayHideRemoves(t *testing.T) {
	s := NewScene(DefaultConfig())
	s.ShowCaption(Caption{Label: "x", Text: "hi", Color: ColorWhite, FadeOut: 1})
	if !s.CaptionVisible("x") {
		t.Fatal("caption without fade-in should be visible at once")
	}
	s.HideCaption("x")
	if s.CaptionVisible("x") {
		t.Error("hiding caption should not count as visible")
	}
	s.overlay.update(0.5)
	if s.overlay.find("x") == nil {
		t.Fatal("caption removed before its fade-out finished")
	}
	s.overlay.update(0.6)
	if s.overlay.find("x") != nil {
		t.Error("caption should be removed after fading out")
	}
	s.HideCaption("missing")
}

func TestOverlayReplacesByLabel(t *testing.T) {
	s := NewScene(DefaultConfig())
	s.ShowCaption(Caption{Label: "x", Text: "one", Color: ColorWhite})
	s.ShowCaption(Caption{Label: "x", Text: "two", Color: ColorWhite})
	cs := s.Captions()
	if len(cs) != 1 || cs[0].Text != "two" {
		t.Errorf("captions = %+v, want a single \"two\"", cs)
	}
}

func TestOverlayDurationAutoHides(t *testing.T) {
	s := NewScene(DefaultConfig())
	s.ShowCaption(ErrorCaption)
	s.overlay.update(1)
	if !s.CaptionVisible(ErrorCaption.Label) {
		t.Fatal("error caption should be visible after fading in")
	}
	s.overlay.update(float32(ErrorCaption.Duration))
	if s.CaptionVisible(ErrorCaption.Label) {
		t.Error("error caption should hide itself after its duration")
	}
	s.overlay.update(1)
	if len(s.overlay.captions) != 0 {
		t.Error("error caption should be gone")
	}
}

func TestOverlayShake(t *testing.T) {
	s := NewScene(DefaultConfig())
	s.ShowCaption(Caption{Label: "x", Text: "hi", Color: ColorWhite})
	s.ShakeCaption("x", 2)
	c := s.overlay.find("x")
	if c.shake != 1 {
		t.Fatalf("shake = %v, want 1", c.shake)
	}
	s.overlay.update(1)
	if c.shake <= 0 || c.shake >= 1 {
		t.Errorf("shake = %v mid-way, want in (0,1)", c.shake)
	}
	s.overlay.update(1)
	if c.shake != 0 {
		t.Errorf("shake = %v, want 0 at rest", c.shake)
	}
	s.ShakeCaption("missing", 1)
}

func TestShakeOffset(t *testing.T) {
	if got := shakeOffset(0, 10); got != 0 {
		t.Errorf("shakeOffset(0) = %v, want 0", got)
	}
	for env := 0.0; env <= 1; env += 0.01 {
		if got := shakeOffset(env, 10); math.Abs(got) > 10*env+epsilon {
			t.Fatalf("shakeOffset(%v) = %v exceeds envelope", env, got)
		}
	}
}
