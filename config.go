package cellbloom

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds every tunable of the scene. The zero value is not useful;
// start from DefaultConfig and override fields or call LoadConfig.
type Config struct {
	// Sampler
	Stride         int     `toml:"stride"`          // grid spacing when sampling the image
	AlphaThreshold uint8   `toml:"alpha_threshold"` // samples must exceed this alpha
	MaxImageWidth  float64 `toml:"max_image_width"` // cap on the drawn image width

	// Idle drift
	IdleAmplitude float64 `toml:"idle_amplitude"`
	IdleSpeed     float64 `toml:"idle_speed"` // radians per tick
	ParticleEase  float64 `toml:"particle_ease"`

	// Line
	LineWidth     float64 `toml:"line_width"` // fraction of the viewport width
	LineAmplitude float64 `toml:"line_amplitude"`
	LineFrequency float64 `toml:"line_frequency"` // radians per particle index
	LineEase      Range   `toml:"line_ease"`

	// Text
	FontSize   float64 `toml:"font_size"`
	TextStride int     `toml:"text_stride"`
	TextColor  string  `toml:"text_color"`
	TextEase   float64 `toml:"text_ease"`

	// Heart
	HeartColor     string  `toml:"heart_color"`
	HeartBaseScale float64 `toml:"heart_base_scale"`
	HeartBeatSpeed float64 `toml:"heart_beat_speed"`
	HeartPulse     float64 `toml:"heart_pulse"` // relative pulse amplitude
	HeartEase      float64 `toml:"heart_ease"`  // fixed convergence used every heart tick

	// Life
	CellSize         int     `toml:"cell_size"`
	LifeDensity      float64 `toml:"life_density"`
	LifeStepInterval int     `toml:"life_step_interval"` // ticks between generations
	LifeColor        string  `toml:"life_color"`

	// Glow halos drawn behind idle particles and live cells.
	Glow bool `toml:"glow"`

	// Seed for the scene's random source. Zero means time-seeded.
	Seed uint64 `toml:"seed"`
}

// DefaultConfig returns the configuration used by the proposal demo.
func DefaultConfig() Config {
	return Config{
		Stride:           3,
		AlphaThreshold:   128,
		MaxImageWidth:    800,
		IdleAmplitude:    2,
		IdleSpeed:        0.02,
		ParticleEase:     0.1,
		LineWidth:        0.8,
		LineAmplitude:    20,
		LineFrequency:    0.1,
		LineEase:         Range{0.05, 0.10},
		FontSize:         50,
		TextStride:       3,
		TextColor:        "#ffffff",
		TextEase:         0.1,
		HeartColor:       "#ff3366",
		HeartBaseScale:   18,
		HeartBeatSpeed:   0.05,
		HeartPulse:       0.15,
		HeartEase:        0.1,
		CellSize:         4,
		LifeDensity:      0.35,
		LifeStepInterval: 10,
		LifeColor:        "#ff3366",
		Glow:             true,
	}
}

// LoadConfig reads a TOML file and overlays it on DefaultConfig. Keys missing
// from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("cellbloom: load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DecodeConfig parses TOML text and overlays it on DefaultConfig.
func DecodeConfig(data string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("cellbloom: decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid field, joined into one error.
func (c Config) Validate() error {
	var errs []error
	if c.Stride <= 0 {
		errs = append(errs, fmt.Errorf("stride must be positive, got %d", c.Stride))
	}
	if c.TextStride <= 0 {
		errs = append(errs, fmt.Errorf("text_stride must be positive, got %d", c.TextStride))
	}
	if c.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("cell_size must be positive, got %d", c.CellSize))
	}
	if c.LifeStepInterval <= 0 {
		errs = append(errs, fmt.Errorf("life_step_interval must be positive, got %d", c.LifeStepInterval))
	}
	if c.LifeDensity < 0 || c.LifeDensity > 1 {
		errs = append(errs, fmt.Errorf("life_density must be in [0, 1], got %v", c.LifeDensity))
	}
	if c.LineEase.Min <= 0 || c.LineEase.Max > 1 || c.LineEase.Min > c.LineEase.Max {
		errs = append(errs, fmt.Errorf("line_ease must satisfy 0 < min <= max <= 1, got %v", c.LineEase))
	}
	for _, e := range []struct {
		name string
		v    float64
	}{
		{"particle_ease", c.ParticleEase},
		{"text_ease", c.TextEase},
		{"heart_ease", c.HeartEase},
	} {
		if e.v <= 0 || e.v > 1 {
			errs = append(errs, fmt.Errorf("%s must be in (0, 1], got %v", e.name, e.v))
		}
	}
	for _, h := range []struct{ name, v string }{
		{"text_color", c.TextColor},
		{"heart_color", c.HeartColor},
		{"life_color", c.LifeColor},
	} {
		if _, err := ParseHexColor(h.v); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", h.name, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("cellbloom: invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// withDefaults replaces values that would make the scene misbehave (zero
// strides, cell sizes, intervals or eases) with their defaults.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Stride <= 0 {
		c.Stride = d.Stride
	}
	if c.TextStride <= 0 {
		c.TextStride = d.TextStride
	}
	if c.CellSize <= 0 {
		c.CellSize = d.CellSize
	}
	if c.LifeStepInterval <= 0 {
		c.LifeStepInterval = d.LifeStepInterval
	}
	if c.ParticleEase <= 0 || c.ParticleEase > 1 {
		c.ParticleEase = d.ParticleEase
	}
	if c.TextEase <= 0 || c.TextEase > 1 {
		c.TextEase = d.TextEase
	}
	if c.HeartEase <= 0 || c.HeartEase > 1 {
		c.HeartEase = d.HeartEase
	}
	if c.FontSize <= 0 {
		c.FontSize = d.FontSize
	}
	return c
}

// palette holds the parsed colors of a validated Config.
type palette struct {
	text  Color
	heart Color
	life  Color
}

// palette parses the configured colors, falling back to the defaults for
// any value that does not parse.
func (c Config) palette() palette {
	p := palette{text: ColorWhite, heart: ColorHeart, life: ColorHeart}
	if v, err := ParseHexColor(c.TextColor); err == nil {
		p.text = v
	}
	if v, err := ParseHexColor(c.HeartColor); err == nil {
		p.heart = v
	}
	if v, err := ParseHexColor(c.LifeColor); err == nil {
		p.life = v
	}
	return p
}
