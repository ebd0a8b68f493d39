package noise

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func sampleGrid(t *testing.T, f Field) (minV, maxV float64) {
	t.Helper()
	minV, maxV = math.Inf(1), math.Inf(-1)
	for x := -50.0; x <= 50; x += 0.37 {
		for y := -50.0; y <= 50; y += 0.41 {
			v := f.Noise2D(x, y)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("non-finite noise at (%v, %v): %v", x, y, v)
			}
			if v < -1 || v > 1 {
				t.Fatalf("noise out of range at (%v, %v): %v", x, y, v)
			}
			minV = math.Min(minV, v)
			maxV = math.Max(maxV, v)
		}
	}
	return minV, maxV
}

// TestSimplexRange verifies values are finite, bounded and not degenerate
func TestSimplexRange(t *testing.T) {
	s := NewSimplex(rand.New(rand.NewSource(1)))
	minV, maxV := sampleGrid(t, s)
	if maxV-minV < 1 {
		t.Errorf("noise spread too small: [%v, %v]", minV, maxV)
	}
}

func TestSimplexDeterministic(t *testing.T) {
	a := NewSimplex(rand.New(rand.NewSource(7)))
	b := NewSimplex(rand.New(rand.NewSource(7)))
	for i := 0; i < 200; i++ {
		x, y := float64(i)*0.173, float64(i)*-0.291
		if a.Noise2D(x, y) != b.Noise2D(x, y) {
			t.Fatalf("same seed diverged at (%v, %v)", x, y)
		}
		if a.Noise2D(x, y) != a.Noise2D(x, y) {
			t.Fatalf("repeated query changed at (%v, %v)", x, y)
		}
	}
}

func TestSimplexContinuous(t *testing.T) {
	s := NewSimplex(rand.New(rand.NewSource(3)))
	const eps = 1e-4
	for i := 0; i < 500; i++ {
		x, y := float64(i)*0.11, float64(i)*0.07
		if d := math.Abs(s.Noise2D(x, y) - s.Noise2D(x+eps, y)); d > 0.01 {
			t.Fatalf("jump of %v at (%v, %v)", d, x, y)
		}
	}
}

func TestSimplexZeroAtLatticePoints(t *testing.T) {
	s := NewSimplex(rand.New(rand.NewSource(5)))
	if v := s.Noise2D(0, 0); v != 0 {
		t.Errorf("expected 0 at origin, got %v", v)
	}
}

func TestAdaptersInRange(t *testing.T) {
	for _, kind := range []string{"simplex", "perlin", "opensimplex"} {
		t.Run(kind, func(t *testing.T) {
			f, err := New(kind, 11)
			if err != nil {
				t.Fatalf("New(%q): %v", kind, err)
			}
			sampleGrid(t, f)
		})
	}
}

func TestNewUnknown(t *testing.T) {
	if _, err := New("value", 1); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}
