package particle

import (
	"image/color"
	"math/rand"

	"github.com/olivierh59500/linkhub-particles/internal/config"
	"github.com/olivierh59500/linkhub-particles/internal/geom"
	"github.com/olivierh59500/linkhub-particles/internal/noise"
	"github.com/olivierh59500/linkhub-particles/internal/sampler"
)

// Particle is one dot of the background field
type Particle struct {
	X, Y         float64 // Position
	VX, VY       float64 // Velocity
	BaseX, BaseY float64 // Home position for the antigravity motion
	Size         float64
	Speed        float64 // Per-particle speed factor
	Density      float64 // How hard the cursor shoves it in home motion
	Color        color.NRGBA
	BaseColor    color.NRGBA
	Index        int
}

// Context is the shared per-frame state every particle reads
type Context struct {
	Width, Height float64
	Frame         int
	Pointer       geom.Point
	Radius        float64
	Theme         config.Theme
	Style         *config.Style
	Palette       Palette
	Targets       []geom.Point
	Kind          sampler.Kind
	Noise         noise.Field
	Ease          float64
	Protected     []geom.Rect
	ActiveInset   float64
}

// Canvas is the drawing surface particles render onto
type Canvas interface {
	FillCircle(cx, cy, r float64, clr color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, clr color.Color)
	StrokeCircle(cx, cy, r, width float64, clr color.Color)
}

// Spawn creates particle i at a random spot in a w x h window
func Spawn(i int, rng *rand.Rand, w, h float64, cfg *config.Config, style *config.Style, pal Palette) Particle {
	p := Particle{
		X:     rng.Float64() * w,
		Y:     rng.Float64() * h,
		VX:    (rng.Float64() - 0.5) * 2,
		VY:    (rng.Float64() - 0.5) * 2,
		Size:  cfg.SizeMin + rng.Float64()*(cfg.SizeMax-cfg.SizeMin),
		Speed: cfg.SpeedMin + rng.Float64()*(cfg.SpeedMax-cfg.SpeedMin),
		Index: i,
	}
	p.BaseX, p.BaseY = p.X, p.Y
	p.Density = style.Home.DensityMin + rng.Float64()*(style.Home.DensityMax-style.Home.DensityMin)
	p.Repaint(rng, pal)
	return p
}

// Repaint picks a new base color from the palette
func (p *Particle) Repaint(rng *rand.Rand, pal Palette) {
	p.BaseColor = pal.Pick(rng)
	p.Color = p.BaseColor
}
