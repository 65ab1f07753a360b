package game

import (
	"math"
	"testing"

	"github.com/iburimskiy/smiley-splash/internal/config"
)

func TestNewParticleRanges(t *testing.T) {
	r := newTestRand()
	var stars, circles int
	for i := 0; i < 500; i++ {
		p := NewParticle(r, 10, 20)
		if p.X != 10 || p.Y != 20 {
			t.Fatalf("Expected particle at (10, 20), got (%f, %f)", p.X, p.Y)
		}
		if p.Life < config.ParticleMinLife || p.Life > config.ParticleMaxLife || p.Life != p.MaxLife {
			t.Fatalf("Unexpected lifetime %d/%d", p.Life, p.MaxLife)
		}
		if p.Size < config.ParticleMinSize || p.Size > config.ParticleMaxSize {
			t.Fatalf("Size out of range: %f", p.Size)
		}
		if math.Abs(p.VX) > 4 || math.Abs(p.VY) > 4 {
			t.Fatalf("Velocity out of range: (%f, %f)", p.VX, p.VY)
		}
		if !colorIn(p.Color, particleColors) {
			t.Fatalf("Unexpected colour %v", p.Color)
		}
		switch p.Shape {
		case ShapeStar:
			stars++
		case ShapeCircle:
			circles++
		}
	}
	if stars == 0 || circles == 0 {
		t.Errorf("Expected both shapes, got %d stars and %d circles", stars, circles)
	}
}

func TestParticleUpdate(t *testing.T) {
	p := &Particle{X: 100, Y: 100, VX: 2, VY: -1, Life: 40, MaxLife: 40, Size: 6}

	p.Update()

	if p.X != 102 || p.Y != 99 {
		t.Errorf("Expected position (102, 99), got (%f, %f)", p.X, p.Y)
	}
	if math.Abs(p.VY-(-0.9)) > 1e-9 {
		t.Errorf("Expected gravity to pull VY to -0.9, got %f", p.VY)
	}
	if p.Life != 39 {
		t.Errorf("Expected life 39, got %d", p.Life)
	}
	if want := 6 * 39.0 / 40.0; math.Abs(p.Size-want) > 1e-9 {
		t.Errorf("Expected size %f, got %f", want, p.Size)
	}
}

// TestParticleDecay checks lifetime, size and alpha only ever decrease
func TestParticleDecay(t *testing.T) {
	p := &Particle{Life: 30, MaxLife: 30, Size: 6}
	prevLife, prevSize, prevAlpha := p.Life, p.Size, p.Alpha()
	if prevAlpha != 255 {
		t.Fatalf("Expected full alpha, got %d", prevAlpha)
	}

	for p.Alive() {
		p.Update()
		if p.Life >= prevLife {
			t.Fatalf("Life did not decrease: %d -> %d", prevLife, p.Life)
		}
		if p.Size > prevSize || p.Size < 1 {
			t.Fatalf("Size %f not in [1, %f]", p.Size, prevSize)
		}
		if p.Alpha() > prevAlpha {
			t.Fatalf("Alpha increased: %d -> %d", prevAlpha, p.Alpha())
		}
		prevLife, prevSize, prevAlpha = p.Life, p.Size, p.Alpha()
	}

	if p.Life != 0 {
		t.Errorf("Expected life 0, got %d", p.Life)
	}
	if p.Alpha() != 0 {
		t.Errorf("Expected transparent particle, got alpha %d", p.Alpha())
	}
	if p.Size != 1 {
		t.Errorf("Expected size floor of 1, got %f", p.Size)
	}
}

func TestParticleStarVertices(t *testing.T) {
	p := &Particle{X: 50, Y: 50, Size: 6.7, Life: 1, MaxLife: 1, Shape: ShapeStar}
	pts := p.StarVertices()
	if len(pts) != 10 {
		t.Fatalf("Expected 10 vertices, got %d", len(pts))
	}
	for i, pt := range pts {
		want := 6.0
		if i%2 == 1 {
			want = 3.0
		}
		if got := math.Hypot(pt[0]-50, pt[1]-50); math.Abs(got-want) > 1e-9 {
			t.Errorf("Vertex %d at radius %f, want %f", i, got, want)
		}
	}
}
