package particle

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette is a theme's set of particle colors
type Palette []color.NRGBA

// ParsePalette converts hex strings to colors with the given alpha
func ParsePalette(hex []string, alpha float64) (Palette, error) {
	pal := make(Palette, 0, len(hex))
	for _, h := range hex {
		c, err := ParseColor(h, alpha)
		if err != nil {
			return nil, err
		}
		pal = append(pal, c)
	}
	return pal, nil
}

// ParseColor converts one hex string
func ParseColor(hex string, alpha float64) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alphaByte(alpha)}, nil
}

// Pick returns a random palette entry
func (p Palette) Pick(rng *rand.Rand) color.NRGBA {
	if len(p) == 0 {
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return p[rng.Intn(len(p))]
}

// Hue returns a fully saturated color at hue h (degrees) and lightness l
func Hue(h, l float64) color.NRGBA {
	r, g, b := colorful.Hsl(h, 1, l).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

func alphaByte(a float64) uint8 {
	if a <= 0 {
		return 0
	}
	if a >= 1 {
		return 255
	}
	return uint8(a*255 + 0.5)
}
