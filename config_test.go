package cellbloom

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
}

func TestDecodeConfigOverlaysDefaults(t *testing.T) {
	cfg, err := DecodeConfig(`
stride = 5
glow = false
heart_color = "#00ff00"

[line_ease]
min = 0.2
max = 0.3
`)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Stride != 5 || cfg.Glow {
		t.Errorf("overrides not applied: stride=%d glow=%v", cfg.Stride, cfg.Glow)
	}
	if cfg.LineEase != (Range{0.2, 0.3}) {
		t.Errorf("line_ease = %+v", cfg.LineEase)
	}
	d := DefaultConfig()
	if cfg.CellSize != d.CellSize || cfg.LifeStepInterval != d.LifeStepInterval {
		t.Error("unset keys should keep defaults")
	}
}

func TestDecodeConfigReportsEveryError(t *testing.T) {
	_, err := DecodeConfig(`
stride = 0
life_density = 2.0
heart_color = "nope"
`)
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"stride", "life_density", "heart_color"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestDecodeConfigSyntaxError(t *testing.T) {
	if _, err := DecodeConfig("stride = ="); err == nil {
		t.Error("expected syntax error")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	if err := os.WriteFile(path, []byte("cell_size = 8\nseed = 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.CellSize != 8 || cfg.Seed != 7 {
		t.Errorf("cell_size=%d seed=%d, want 8 and 7", cfg.CellSize, cfg.Seed)
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestWithDefaults(t *testing.T) {
	c := Config{}.withDefaults()
	d := DefaultConfig()
	if c.Stride != d.Stride || c.TextStride != d.TextStride || c.CellSize != d.CellSize {
		t.Errorf("strides and cell size not defaulted: %+v", c)
	}
	if c.LifeStepInterval != d.LifeStepInterval || c.FontSize != d.FontSize {
		t.Errorf("interval or font size not defaulted: %+v", c)
	}
	if c.ParticleEase != d.ParticleEase || c.TextEase != d.TextEase || c.HeartEase != d.HeartEase {
		t.Errorf("eases not defaulted: %+v", c)
	}
}

func TestPaletteFallback(t *testing.T) {
	p := Config{TextColor: "bad", HeartColor: "#000000", LifeColor: ""}.palette()
	if p.text != ColorWhite {
		t.Errorf("text = %+v, want white fallback", p.text)
	}
	if p.heart != (Color{0, 0, 0, 1}) {
		t.Errorf("heart = %+v, want black", p.heart)
	}
	if p.life != ColorHeart {
		t.Errorf("life = %+v, want heart fallback", p.life)
	}
}
