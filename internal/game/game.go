package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/smiley-splash/internal/config"
)

// ClickPlayer plays the pop sound on a successful click.
type ClickPlayer interface {
	Play()
}

type Options struct {
	Rand  Rand        // defaults to a time-seeded source
	Sound ClickPlayer // nil runs without audio
	Input EventSource // defaults to ebiten input
	Title text.Face   // nil falls back to the debug font
	Debug bool        // show TPS and entity counts
}

// Game owns the smileys, particles and spawn timer. It implements ebiten.Game.
type Game struct {
	smileys    []*Smiley
	particles  []*Particle
	spawnTimer int
	ticks      int

	rand  Rand
	sound ClickPlayer
	input EventSource
	title text.Face
	debug bool
}

// NewGame creates a game with the initial smileys already spawned.
func NewGame(opts Options) *Game {
	g := &Game{
		rand:  opts.Rand,
		sound: opts.Sound,
		input: opts.Input,
		title: opts.Title,
		debug: opts.Debug,
	}
	if g.rand == nil {
		g.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.input == nil {
		g.input = &EbitenInput{}
	}
	for i := 0; i < config.InitialSmileys; i++ {
		g.SpawnSmiley()
	}
	return g
}

// NewTitleFace returns the face used for the caption.
func NewTitleFace() text.Face {
	return text.NewGoXFace(basicfont.Face7x13)
}

func (g *Game) Smileys() []*Smiley     { return g.smileys }
func (g *Game) Particles() []*Particle { return g.particles }

// SpawnSmiley adds a smiley at a random interior position unless the cap is reached.
func (g *Game) SpawnSmiley() {
	if len(g.smileys) >= config.MaxSmileys {
		return
	}
	x := randInt(g.rand, config.SpawnMargin, config.WindowWidth-config.SpawnMargin)
	y := randInt(g.rand, config.SpawnMargin, config.WindowHeight-config.SpawnMargin)
	g.smileys = append(g.smileys, NewSmiley(g.rand, float64(x), float64(y)))
}

// CreateParticles emits a burst of particles at (x, y).
func (g *Game) CreateParticles(x, y float64) {
	for i := 0; i < config.BurstSize; i++ {
		g.particles = append(g.particles, NewParticle(g.rand, x, y))
	}
}

func (g *Game) playClick() {
	if g.sound != nil {
		g.sound.Play()
	}
}

// HandleEvents dispatches input and reports whether the game should keep running.
func (g *Game) HandleEvents(events []Event) bool {
	for _, ev := range events {
		switch ev.Kind {
		case EventQuit:
			return false
		case EventPress:
			if ev.Button != ebiten.MouseButtonLeft {
				continue
			}
			g.click(ev.X, ev.Y)
		}
	}
	return true
}

// click gives the press to the first smiley in spawn order that it hits.
func (g *Game) click(x, y float64) {
	for _, s := range g.smileys {
		if s.HandleClick(x, y) {
			g.CreateParticles(s.X, s.Y)
			g.playClick()
			return
		}
	}
}

// Step advances entities and the spawn timer by one frame.
func (g *Game) Step() {
	g.ticks++

	for _, s := range g.smileys {
		s.Update()
	}

	alive := g.particles[:0]
	for _, p := range g.particles {
		if p.Alive() {
			alive = append(alive, p)
		}
	}
	for i := len(alive); i < len(g.particles); i++ {
		g.particles[i] = nil
	}
	g.particles = alive
	for _, p := range g.particles {
		p.Update()
	}

	g.spawnTimer++
	if g.spawnTimer >= config.SpawnInterval {
		g.SpawnSmiley()
		g.spawnTimer = 0
	}
}

func (g *Game) Update() error {
	if !g.HandleEvents(g.input.Poll()) {
		return ebiten.Termination
	}
	g.Step()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colLightBlue)
	g.drawClouds(screen)

	for _, s := range g.smileys {
		s.Draw(screen)
	}
	for _, p := range g.particles {
		p.Draw(screen)
	}

	g.drawTitle(screen)

	if g.debug {
		elapsed := time.Duration(g.ticks) * time.Second / config.TPS
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.1f  FPS: %0.1f  Time: %s\nSmileys: %d  Particles: %d",
			ebiten.ActualTPS(), ebiten.ActualFPS(), formatDuration(elapsed), len(g.smileys), len(g.particles)), 8, config.WindowHeight-40)
	}
}

func (g *Game) drawClouds(screen *ebiten.Image) {
	for i := 0; i < 3; i++ {
		x := float32((i*300 + 100) % config.WindowWidth)
		y := float32(50 + i*30)
		vector.DrawFilledCircle(screen, x, y, 25, colWhite, true)
		vector.DrawFilledCircle(screen, x+20, y, 20, colWhite, true)
		vector.DrawFilledCircle(screen, x-20, y, 20, colWhite, true)
		vector.DrawFilledCircle(screen, x+10, y-10, 15, colWhite, true)
	}
}

func (g *Game) drawTitle(screen *ebiten.Image) {
	if g.title == nil {
		// debug font glyphs are 6x16
		x := config.WindowWidth/2 - len(config.TitleText)*6/2
		ebitenutil.DebugPrintAt(screen, config.TitleText, x, config.TitleY-8)
		return
	}
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Scale(config.TitleScale, config.TitleScale)
	op.GeoM.Translate(config.WindowWidth/2, config.TitleY)
	op.ColorScale.ScaleWithColor(colTitle)
	text.Draw(screen, config.TitleText, g.title, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
