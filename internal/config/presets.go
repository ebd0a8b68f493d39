package config

import (
	"fmt"
	"sort"
)

var (
	paletteElectric = []string{"#00f2ff", "#0051ff", "#00aaff"}
	paletteConfetti = []string{"#EA4335", "#4285F4", "#34A853", "#FBBC05", "#9334E6"}
	paletteNeon     = []string{"#00f2ff", "#7000ff", "#ff00d4", "#4dff00"}
	paletteMolten   = []string{"#00ffff", "#ff00ff", "#ffd700"} // low, high, middle noise band
)

var presets = map[string]func() Config{
	"molten":      moltenPreset,
	"swarm":       swarmPreset,
	"antigravity": antigravityPreset,
}

// Presets lists the preset names in order
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns a fresh copy of the named preset
func Preset(name string) (Config, error) {
	build, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return build(), nil
}

// Default returns the molten preset
func Default() Config {
	return moltenPreset()
}

func base() Config {
	return Config{
		Particles: 3500,
		SizeMin:   1,
		SizeMax:   3,
		SpeedMin:  0.2,
		SpeedMax:  1.0,

		CursorRadius:   150,
		CursorEase:     0.25,
		RippleDistance: 40,
		RippleLife:     30,
		RippleRadius:   60,

		CardMaxWidth:  600,
		CardWidthFrac: 0.95,

		Ease:        0.2,
		ActiveInset: 30,
		SampleSize:  100,
		Threshold:   128,

		Noise: "simplex",
		Theme: ThemeDark,

		Profile: Profile{
			Name:    []string{"Asil", "Peace"},
			Bio:     "Creative Developer | AI & Vibe Coding Enthusiast",
			Socials: []string{"@", "#", "&"},
			Links:   []string{"Portfolio", "Projects", "Music", "Contact"},
		},
	}
}

func darkBase(palette []string) Style {
	return Style{
		Palette:         palette,
		Alpha:           1,
		Background:      "#05060f",
		Foreground:      "#e8ecff",
		ActiveLightness: 0.6,
	}
}

func lightBase(palette []string) Style {
	return Style{
		Palette:         palette,
		Alpha:           1,
		Background:      "#f4f5fb",
		Foreground:      "#1b1d2a",
		ActiveLightness: 0.4,
	}
}

func swarmFlow() FlowParams {
	return FlowParams{
		RepelScale: 1,
		RepelForce: 3,
		Scale:      0.0015,
		TimeScale:  0.0005,
		AngleMul:   2,
		BaseSpeed:  1.5,
		Inertia:    0.08,
		Margin:     50,
		TrailBase:  3,
		TrailSpeed: 1,
	}
}

func deepSwarmFlow() FlowParams {
	return FlowParams{
		RepelScale:     1.5,
		RepelForce:     2,
		Scale:          0.0008,
		ZOffset:        100,
		TimeScale:      0.0003,
		AngleMul:       4,
		BaseSpeed:      1.2,
		Inertia:        0.05,
		InertiaBySpeed: true,
		Margin:         50,
		TrailBase:      4,
		TrailSpeed:     2,
		FadeBySpeed:    true,
	}
}

func moltenFluid() FluidParams {
	return FluidParams{
		Pull:        2000,
		PullOffset:  50,
		MinDistance: 10,
		Swirl:       1.5,
		Accel:       0.05,
		Viscosity:   0.92,
		DriftScale:  0.005,
		DriftTime:   0.001,
		Drift:       0.5,
		ColorScale:  0.002,
		ColorTime:   0.001,
		ColorBand:   0.3,
		SizeMul:     5,
		Highlight:   0.4,
	}
}

func antigravityHome() HomeParams {
	return HomeParams{
		Return:      1.0 / 15,
		DriftPeriod: 120,
		Drift:       0.2,
		DensityMin:  1,
		DensityMax:  31,
	}
}

// moltenPreset: deep swarm dashes in the dark, molten glass blobs in the light
func moltenPreset() Config {
	c := base()
	c.Preset = "molten"

	c.Dark = darkBase(paletteElectric)
	c.Dark.Motion = MotionFlow
	c.Dark.Bounds = BoundsWrap
	c.Dark.Flow = deepSwarmFlow()

	c.Light = lightBase(paletteMolten)
	c.Light.Motion = MotionFluid
	c.Light.Bounds = BoundsBounce
	c.Light.Alpha = 0.8
	c.Light.Fluid = moltenFluid()
	return c
}

// swarmPreset: the flow field dashes in both themes
func swarmPreset() Config {
	c := base()
	c.Preset = "swarm"

	c.Dark = darkBase(paletteElectric)
	c.Dark.Motion = MotionFlow
	c.Dark.Bounds = BoundsWrap
	c.Dark.Flow = swarmFlow()

	c.Light = lightBase(paletteConfetti)
	c.Light.Motion = MotionFlow
	c.Light.Bounds = BoundsWrap
	c.Light.Flow = swarmFlow()
	return c
}

// antigravityPreset: a sparse field of dots that dodge the cursor
func antigravityPreset() Config {
	c := base()
	c.Preset = "antigravity"
	c.Particles = 150

	c.Dark = darkBase(paletteNeon)
	c.Dark.Motion = MotionHome
	c.Dark.Bounds = BoundsNone
	c.Dark.Home = antigravityHome()

	c.Light = lightBase(paletteNeon)
	c.Light.Motion = MotionHome
	c.Light.Bounds = BoundsNone
	c.Light.Home = antigravityHome()
	return c
}
