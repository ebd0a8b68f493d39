package noise

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

var ErrUnknownKind = errors.New("unknown noise kind")

// Field is a deterministic 2D noise source with values in [-1, 1]
type Field interface {
	Noise2D(x, y float64) float64
}

// Perlin adapts go-perlin
type Perlin struct {
	p *perlin.Perlin
}

// NewPerlin builds three octaves of Perlin noise
func NewPerlin(seed int64) *Perlin {
	return &Perlin{p: perlin.NewPerlin(2, 2, 3, seed)}
}

func (n *Perlin) Noise2D(x, y float64) float64 {
	return clamp(n.p.Noise2D(x, y))
}

// OpenSimplex adapts opensimplex-go
type OpenSimplex struct {
	n opensimplex.Noise
}

func NewOpenSimplex(seed int64) *OpenSimplex {
	return &OpenSimplex{n: opensimplex.New(seed)}
}

func (n *OpenSimplex) Noise2D(x, y float64) float64 {
	return clamp(n.n.Eval2(x, y))
}

// New builds a field by name: simplex, perlin or opensimplex
func New(kind string, seed int64) (Field, error) {
	switch kind {
	case "", "simplex":
		return NewSimplex(rand.New(rand.NewSource(seed))), nil
	case "perlin":
		return NewPerlin(seed), nil
	case "opensimplex":
		return NewOpenSimplex(seed), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}
