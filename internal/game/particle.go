package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/smiley-splash/internal/config"
)

// Shape is the outline a particle is drawn with.
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeStar
)

// starPoints is the vertex count of a star particle, alternating outer and inner radius.
const starPoints = 10

// Particle is a sparkle emitted when a smiley is clicked.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    int
	MaxLife int
	Color   color.RGBA
	Size    float64
	Shape   Shape
}

// NewParticle creates a particle at (x, y) with randomized velocity, lifetime, colour, size and shape.
func NewParticle(r Rand, x, y float64) *Particle {
	life := randInt(r, config.ParticleMinLife, config.ParticleMaxLife)
	p := &Particle{
		X:       x,
		Y:       y,
		VX:      randUniform(r, -config.ParticleMaxSpeed, config.ParticleMaxSpeed),
		VY:      randUniform(r, -config.ParticleMaxSpeed, config.ParticleMaxSpeed),
		Life:    life,
		MaxLife: life,
		Color:   pickColor(r, particleColors),
		Size:    float64(randInt(r, config.ParticleMinSize, config.ParticleMaxSize)),
		Shape:   ShapeCircle,
	}
	if r.Intn(2) == 1 {
		p.Shape = ShapeStar
	}
	return p
}

// Alive reports whether the particle still has lifetime left.
func (p *Particle) Alive() bool { return p.Life > 0 }

// Update advances the particle one frame under gravity and shrinks it with its remaining life.
func (p *Particle) Update() {
	p.X += p.VX
	p.Y += p.VY
	p.VY += config.Gravity
	p.Life--
	p.Size = math.Max(1, p.Size*p.lifeFraction())
}

func (p *Particle) lifeFraction() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}

// Alpha is the fade opacity derived from remaining lifetime.
func (p *Particle) Alpha() uint8 {
	return uint8(math.Floor(255 * clamp01(p.lifeFraction())))
}

// StarVertices returns the outline of the star shape around the particle centre.
func (p *Particle) StarVertices() [][2]float64 {
	outer := int(p.Size)
	inner := outer / 2
	pts := make([][2]float64, 0, starPoints)
	for i := 0; i < starPoints; i++ {
		angle := float64(i) * math.Pi / 5
		radius := float64(outer)
		if i%2 == 1 {
			radius = float64(inner)
		}
		pts = append(pts, [2]float64{
			p.X + radius*math.Cos(angle),
			p.Y + radius*math.Sin(angle),
		})
	}
	return pts
}

// Draw renders the particle as a circle or star, faded by Alpha.
func (p *Particle) Draw(screen *ebiten.Image) {
	if !p.Alive() {
		return
	}
	clr := color.NRGBA{R: p.Color.R, G: p.Color.G, B: p.Color.B, A: p.Alpha()}

	if p.Shape == ShapeStar {
		var path vector.Path
		for i, pt := range p.StarVertices() {
			if i == 0 {
				path.MoveTo(float32(pt[0]), float32(pt[1]))
				continue
			}
			path.LineTo(float32(pt[0]), float32(pt[1]))
		}
		path.Close()
		fillPath(screen, &path, clr)
		return
	}

	vector.DrawFilledCircle(screen, float32(int(p.X)), float32(int(p.Y)), float32(int(p.Size)), clr, true)
}
