package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	ErrUnknownPreset = errors.New("unknown preset")
	ErrInvalid       = errors.New("invalid config")
)

// Theme selects the light or dark palette
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Toggle returns the opposite theme
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Motion is the idle behavior of a style
type Motion string

const (
	MotionFlow  Motion = "flow"  // noise flow field with cursor repulsion
	MotionFluid Motion = "fluid" // cursor attractor with swirl and heavy damping
	MotionHome  Motion = "home"  // pushed by the cursor, springs back home
)

// Bounds is the edge policy applied after integration
type Bounds string

const (
	BoundsWrap   Bounds = "wrap"
	BoundsBounce Bounds = "bounce"
	BoundsNone   Bounds = "none"
)

// FlowParams tunes the flow-field idle motion
type FlowParams struct {
	RepelScale     float64 `json:"repel_scale"` // multiple of the cursor radius
	RepelForce     float64 `json:"repel_force"`
	Scale          float64 `json:"scale"`    // noise input scale
	ZOffset        float64 `json:"z_offset"` // per-layer noise offset, times speed factor
	TimeScale      float64 `json:"time_scale"`
	AngleMul       float64 `json:"angle_mul"` // noise -> angle, in multiples of pi
	BaseSpeed      float64 `json:"base_speed"`
	Inertia        float64 `json:"inertia"`
	InertiaBySpeed bool    `json:"inertia_by_speed"`
	Margin         float64 `json:"margin"`
	TrailBase      float64 `json:"trail_base"`
	TrailSpeed     float64 `json:"trail_speed"`
	FadeBySpeed    bool    `json:"fade_by_speed"`
}

// FluidParams tunes the molten glass idle motion
type FluidParams struct {
	Pull        float64 `json:"pull"`
	PullOffset  float64 `json:"pull_offset"`
	MinDistance float64 `json:"min_distance"`
	Swirl       float64 `json:"swirl"`
	Accel       float64 `json:"accel"`
	Viscosity   float64 `json:"viscosity"`
	DriftScale  float64 `json:"drift_scale"`
	DriftTime   float64 `json:"drift_time"`
	Drift       float64 `json:"drift"`
	ColorScale  float64 `json:"color_scale"`
	ColorTime   float64 `json:"color_time"`
	ColorBand   float64 `json:"color_band"`
	SizeMul     float64 `json:"size_mul"`
	Highlight   float64 `json:"highlight"` // alpha of the white caustic
}

// HomeParams tunes the antigravity idle motion
type HomeParams struct {
	Return      float64 `json:"return"` // fraction of the home offset recovered per frame
	DriftPeriod float64 `json:"drift_period"`
	Drift       float64 `json:"drift"`
	DensityMin  float64 `json:"density_min"`
	DensityMax  float64 `json:"density_max"`
}

// Style is everything that depends on the theme
type Style struct {
	Motion          Motion      `json:"motion"`
	Bounds          Bounds      `json:"bounds"`
	Palette         []string    `json:"palette"`
	Alpha           float64     `json:"alpha"`
	Background      string      `json:"background"`
	Foreground      string      `json:"foreground"`
	ActiveLightness float64     `json:"active_lightness"`
	Flow            FlowParams  `json:"flow"`
	Fluid           FluidParams `json:"fluid"`
	Home            HomeParams  `json:"home"`
}

// Profile is the content shown on the card
type Profile struct {
	Name    []string `json:"name"`
	Bio     string   `json:"bio"`
	Socials []string `json:"socials"`
	Links   []string `json:"links"`
	Avatar  string   `json:"avatar"`

	// URLs maps a social glyph or link label to its address
	URLs map[string]string `json:"urls,omitempty"`
}

// Href returns the address for a social glyph or link label, falling back
// to the label itself.
func (p *Profile) Href(label string) string {
	if u, ok := p.URLs[label]; ok && u != "" {
		return u
	}
	return label
}

// Config holds the simulation parameters
type Config struct {
	Preset    string  `json:"preset"`
	Particles int     `json:"particles"`
	SizeMin   float64 `json:"size_min"`
	SizeMax   float64 `json:"size_max"`
	SpeedMin  float64 `json:"speed_min"`
	SpeedMax  float64 `json:"speed_max"`

	CursorRadius   float64 `json:"cursor_radius"`
	CursorEase     float64 `json:"cursor_ease"`
	RippleDistance float64 `json:"ripple_distance"`
	RippleLife     int     `json:"ripple_life"`
	RippleRadius   float64 `json:"ripple_radius"`

	CardMaxWidth  float64 `json:"card_max_width"`
	CardWidthFrac float64 `json:"card_width_frac"`

	Ease        float64 `json:"ease"`
	ActiveInset float64 `json:"active_inset"`
	SampleSize  int     `json:"sample_size"`
	Threshold   uint8   `json:"threshold"`

	Noise string `json:"noise"`
	Seed  int64  `json:"seed"`
	Theme Theme  `json:"theme"`

	Dark    Style   `json:"dark"`
	Light   Style   `json:"light"`
	Profile Profile `json:"profile"`
}

// Style returns the style for theme t
func (c *Config) Style(t Theme) *Style {
	if t == ThemeLight {
		return &c.Light
	}
	return &c.Dark
}

// Validate checks ranges and palette colors
func (c *Config) Validate() error {
	switch {
	case c.Particles <= 0:
		return fmt.Errorf("%w: particles must be positive, got %d", ErrInvalid, c.Particles)
	case c.SizeMin <= 0 || c.SizeMax < c.SizeMin:
		return fmt.Errorf("%w: size range [%v, %v]", ErrInvalid, c.SizeMin, c.SizeMax)
	case c.SpeedMin <= 0 || c.SpeedMax < c.SpeedMin:
		return fmt.Errorf("%w: speed range [%v, %v]", ErrInvalid, c.SpeedMin, c.SpeedMax)
	case c.CursorRadius <= 0:
		return fmt.Errorf("%w: cursor radius must be positive", ErrInvalid)
	case c.CursorEase <= 0 || c.CursorEase > 1:
		return fmt.Errorf("%w: cursor ease must be in (0, 1]", ErrInvalid)
	case c.RippleLife <= 0:
		return fmt.Errorf("%w: ripple life must be positive", ErrInvalid)
	case c.CardWidthFrac <= 0 || c.CardWidthFrac > 1:
		return fmt.Errorf("%w: card width fraction must be in (0, 1]", ErrInvalid)
	case c.Ease <= 0 || c.Ease > 1:
		return fmt.Errorf("%w: ease must be in (0, 1]", ErrInvalid)
	case c.SampleSize <= 0:
		return fmt.Errorf("%w: sample size must be positive", ErrInvalid)
	case c.Theme != ThemeDark && c.Theme != ThemeLight:
		return fmt.Errorf("%w: theme %q", ErrInvalid, c.Theme)
	}

	for _, t := range []Theme{ThemeDark, ThemeLight} {
		if err := c.Style(t).validate(); err != nil {
			return fmt.Errorf("%s style: %w", t, err)
		}
	}
	return nil
}

func (s *Style) validate() error {
	switch s.Motion {
	case MotionFlow, MotionFluid, MotionHome:
	default:
		return fmt.Errorf("%w: motion %q", ErrInvalid, s.Motion)
	}
	switch s.Bounds {
	case BoundsWrap, BoundsBounce, BoundsNone:
	default:
		return fmt.Errorf("%w: bounds %q", ErrInvalid, s.Bounds)
	}
	if len(s.Palette) == 0 {
		return fmt.Errorf("%w: empty palette", ErrInvalid)
	}
	if s.Motion == MotionFluid && len(s.Palette) < 3 {
		return fmt.Errorf("%w: fluid palette needs 3 colors", ErrInvalid)
	}
	for _, hex := range append(append([]string{}, s.Palette...), s.Background, s.Foreground) {
		if _, err := colorful.Hex(hex); err != nil {
			return fmt.Errorf("%w: color %q: %v", ErrInvalid, hex, err)
		}
	}
	return nil
}

// Load reads a JSON config. Fields missing from the file keep the values
// of the preset the file names, or the default preset.
func Load(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var head struct {
		Preset string `json:"preset"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", filename, err)
	}
	cfg := Default()
	if head.Preset != "" {
		if cfg, err = Preset(head.Preset); err != nil {
			return Config{}, err
		}
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes the config as indented JSON
func (c *Config) Save(filename string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
