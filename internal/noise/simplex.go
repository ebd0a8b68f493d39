package noise

import (
	"math"
	"math/rand"
)

// Skew and unskew factors for the 2D simplex grid
var (
	f2 = 0.5 * (math.Sqrt(3) - 1)
	g2 = (3 - math.Sqrt(3)) / 6
)

// grad3 are the 12 gradient directions; only x and y are used in 2D
var grad3 = [12][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

// Simplex is 2D simplex noise over a shuffled permutation table
type Simplex struct {
	perm [512]int
}

// NewSimplex shuffles the permutation table from rng
func NewSimplex(rng *rand.Rand) *Simplex {
	s := &Simplex{}
	p := rng.Perm(256)
	for i := range s.perm {
		s.perm[i] = p[i&255]
	}
	return s
}

// Noise2D returns a continuous value in [-1, 1]
func (s *Simplex) Noise2D(xin, yin float64) float64 {
	// Skew to find the simplex cell
	sk := (xin + yin) * f2
	i := math.Floor(xin + sk)
	j := math.Floor(yin + sk)
	t := (i + j) * g2
	x0 := xin - (i - t)
	y0 := yin - (j - t)

	// Lower or upper triangle of the cell
	var i1, j1 int
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1 := x0 - float64(i1) + g2
	y1 := y0 - float64(j1) + g2
	x2 := x0 - 1 + 2*g2
	y2 := y0 - 1 + 2*g2

	ii := int(i) & 255
	jj := int(j) & 255
	gi0 := s.perm[ii+s.perm[jj]] % 12
	gi1 := s.perm[ii+i1+s.perm[jj+j1]] % 12
	gi2 := s.perm[ii+1+s.perm[jj+1]] % 12

	n := corner(gi0, x0, y0) + corner(gi1, x1, y1) + corner(gi2, x2, y2)
	return clamp(70 * n)
}

// corner is the falloff-weighted gradient contribution, zero outside radius
func corner(gi int, x, y float64) float64 {
	t := 0.5 - x*x - y*y
	if t < 0 {
		return 0
	}
	t *= t
	g := grad3[gi]
	return t * t * (g[0]*x + g[1]*y)
}

func clamp(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
