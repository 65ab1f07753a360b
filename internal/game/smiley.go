package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/smiley-splash/internal/config"
)

const (
	eyeRadius    = 3
	outlineWidth = 2
	mouthWidth   = 3
	mouthSegs    = 16

	// rotated faces are rendered into a square buffer this many times the face radius
	faceBufferScale = 2.5
)

// Smiley is a bouncing face that reacts when clicked.
type Smiley struct {
	X, Y      float64
	VX, VY    float64
	BaseSize  float64
	Size      float64
	BaseColor color.RGBA
	Color     color.RGBA

	Clicked     bool
	ClickTimer  int
	Rotation    float64 // degrees, counter-clockwise
	BounceTimer float64

	rand Rand
	face *ebiten.Image
}

// NewSmiley creates a smiley at (x, y) with random size, colour and velocity.
func NewSmiley(r Rand, x, y float64) *Smiley {
	size := float64(randInt(r, config.SmileyMinSize, config.SmileyMaxSize))
	clr := pickColor(r, smileyColors)
	return &Smiley{
		X:         x,
		Y:         y,
		BaseSize:  size,
		Size:      size,
		BaseColor: clr,
		Color:     clr,
		VX:        randUniform(r, -config.SmileyMaxSpeed, config.SmileyMaxSpeed),
		VY:        randUniform(r, -config.SmileyMaxSpeed, config.SmileyMaxSpeed),
		rand:      r,
	}
}

// Update moves the smiley one frame and advances its click reaction.
func (s *Smiley) Update() {
	s.X += s.VX
	s.Y += s.VY

	if s.Clicked {
		s.ClickTimer--
		pulse := math.Sin(float64(s.ClickTimer)*config.PulseFrequency) * config.PulseAmplitude
		s.Size = s.BaseSize + pulse + config.PulseGrowth
		s.Rotation += config.RotationPerTick

		if s.ClickTimer <= 0 {
			s.Clicked = false
			s.Size = s.BaseSize
			s.Color = s.BaseColor
			s.Rotation = 0
		}
	}

	// idle bob
	s.BounceTimer += config.FloatStep
	s.Y += math.Sin(s.BounceTimer) * config.FloatAmplitude

	// Reflect last so the pulse and the bob never leave the sprite outside the window.
	if s.X-s.Size <= 0 || s.X+s.Size >= config.WindowWidth {
		s.VX *= config.BounceDamping
		s.X = clamp(s.X, s.Size, config.WindowWidth-s.Size)
	}
	if s.Y-s.Size <= 0 || s.Y+s.Size >= config.WindowHeight {
		s.VY *= config.BounceDamping
		s.Y = clamp(s.Y, s.Size, config.WindowHeight-s.Size)
	}
}

// Contains reports whether (x, y) lies within the current face radius.
func (s *Smiley) Contains(x, y float64) bool {
	return math.Hypot(s.X-x, s.Y-y) <= s.Size
}

// HandleClick starts the reaction animation if (x, y) hits the face.
func (s *Smiley) HandleClick(x, y float64) bool {
	if !s.Contains(x, y) {
		return false
	}
	s.Clicked = true
	s.ClickTimer = config.ClickFrames
	s.Color = pickColor(s.rand, brightColors)
	return true
}

// Draw renders the face, rotated while the click reaction runs.
func (s *Smiley) Draw(screen *ebiten.Image) {
	if s.Rotation == 0 {
		drawFace(screen, float32(int(s.X)), float32(int(s.Y)), s.Size, s.Color)
		return
	}

	side := int(s.Size * faceBufferScale)
	if s.face == nil || s.face.Bounds().Dx() < side {
		maxSide := int((s.BaseSize+config.PulseGrowth+config.PulseAmplitude)*faceBufferScale) + 1
		if maxSide < side {
			maxSide = side
		}
		s.face = ebiten.NewImage(maxSide, maxSide)
	}
	s.face.Clear()
	buf := s.face.SubImage(image.Rect(0, 0, side, side)).(*ebiten.Image)

	center := float32(side / 2)
	drawFace(buf, center, center, s.Size, s.Color)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(side)/2, -float64(side)/2)
	op.GeoM.Rotate(-s.Rotation * math.Pi / 180)
	op.GeoM.Translate(s.X, s.Y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(buf, op)
}

// drawFace paints body, outline, eyes and mouth centred at (cx, cy).
func drawFace(dst *ebiten.Image, cx, cy float32, size float64, clr color.RGBA) {
	r := float32(int(size))
	vector.DrawFilledCircle(dst, cx, cy, r, clr, true)
	vector.StrokeCircle(dst, cx, cy, r-outlineWidth/2, outlineWidth, colBlack, true)

	eye := float32(math.Floor(size / 3))
	eyeY := cy - float32(math.Floor(float64(eye)/2))
	vector.DrawFilledCircle(dst, cx-eye, eyeY, eyeRadius, colBlack, true)
	vector.DrawFilledCircle(dst, cx+eye, eyeY, eyeRadius, colBlack, true)

	// Mouth: lower half of the ellipse inscribed in (cx-eye, cy, 2*eye, eye).
	// The upper half would frown; the lower half is drawn on purpose.
	if eye <= 0 {
		return
	}
	mcx, mcy := cx, cy+eye/2
	rx, ry := eye, eye/2
	var path vector.Path
	for i := 0; i <= mouthSegs; i++ {
		a := float64(i) * math.Pi / mouthSegs
		px := mcx + rx*float32(math.Cos(a))
		py := mcy + ry*float32(math.Sin(a))
		if i == 0 {
			path.MoveTo(px, py)
			continue
		}
		path.LineTo(px, py)
	}
	strokePath(dst, &path, mouthWidth, colBlack)
}
