package game

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/smiley-splash/internal/config"
)

type countingPlayer struct{ plays int }

func (p *countingPlayer) Play() { p.plays++ }

type scriptedInput struct{ frames [][]Event }

func (in *scriptedInput) Poll() []Event {
	if len(in.frames) == 0 {
		return nil
	}
	ev := in.frames[0]
	in.frames = in.frames[1:]
	return ev
}

func newTestGame(input EventSource) (*Game, *countingPlayer) {
	player := &countingPlayer{}
	if input == nil {
		input = &scriptedInput{}
	}
	g := NewGame(Options{Rand: newTestRand(), Sound: player, Input: input})
	return g, player
}

func press(x, y float64) Event {
	return Event{Kind: EventPress, Button: ebiten.MouseButtonLeft, X: x, Y: y}
}

func TestNewGameSpawnsInitialSmileys(t *testing.T) {
	g, _ := newTestGame(nil)
	if len(g.Smileys()) != config.InitialSmileys {
		t.Fatalf("Expected %d smileys, got %d", config.InitialSmileys, len(g.Smileys()))
	}
	for _, s := range g.Smileys() {
		if s.X < 50 || s.X > 750 || s.Y < 50 || s.Y > 550 {
			t.Errorf("Smiley spawned outside interior: (%f, %f)", s.X, s.Y)
		}
	}
}

func TestSpawnSmileyCap(t *testing.T) {
	g, _ := newTestGame(nil)
	for i := 0; i < 100; i++ {
		g.SpawnSmiley()
	}
	if len(g.Smileys()) != config.MaxSmileys {
		t.Errorf("Expected cap of %d, got %d", config.MaxSmileys, len(g.Smileys()))
	}
}

// TestSpawnTimer steps far past many spawn ticks
func TestSpawnTimer(t *testing.T) {
	g, _ := newTestGame(nil)

	for i := 0; i < config.SpawnInterval-1; i++ {
		g.Step()
	}
	if len(g.Smileys()) != config.InitialSmileys {
		t.Fatalf("Expected no spawn before interval, got %d smileys", len(g.Smileys()))
	}
	g.Step()
	if len(g.Smileys()) != config.InitialSmileys+1 {
		t.Fatalf("Expected spawn at interval, got %d smileys", len(g.Smileys()))
	}
	if g.spawnTimer != 0 {
		t.Errorf("Expected spawn timer reset, got %d", g.spawnTimer)
	}

	for i := 0; i < config.SpawnInterval*40; i++ {
		g.Step()
		if len(g.Smileys()) > config.MaxSmileys {
			t.Fatalf("Smiley count %d exceeds cap", len(g.Smileys()))
		}
	}
	if len(g.Smileys()) != config.MaxSmileys {
		t.Errorf("Expected %d smileys, got %d", config.MaxSmileys, len(g.Smileys()))
	}
}

func TestClickCreatesBurstAndSound(t *testing.T) {
	g, player := newTestGame(nil)
	s := g.Smileys()[0]

	if !g.HandleEvents([]Event{press(s.X, s.Y)}) {
		t.Fatal("Expected game to keep running")
	}

	if len(g.Particles()) != config.BurstSize {
		t.Errorf("Expected %d particles, got %d", config.BurstSize, len(g.Particles()))
	}
	for _, p := range g.Particles() {
		if p.X != s.X || p.Y != s.Y {
			t.Errorf("Particle at (%f, %f), want smiley centre (%f, %f)", p.X, p.Y, s.X, s.Y)
		}
	}
	if player.plays != 1 {
		t.Errorf("Expected 1 click sound, got %d", player.plays)
	}
	if !s.Clicked || s.ClickTimer != 60 || !colorIn(s.Color, brightColors) {
		t.Errorf("Expected smiley in clicked state, got %v/%d/%v", s.Clicked, s.ClickTimer, s.Color)
	}
}

// TestClickFirstMatchWins stacks two smileys and checks only the first reacts
func TestClickFirstMatchWins(t *testing.T) {
	g, player := newTestGame(nil)
	first, second := g.Smileys()[0], g.Smileys()[1]
	second.X, second.Y = first.X, first.Y

	g.HandleEvents([]Event{press(first.X, first.Y)})

	if !first.Clicked {
		t.Error("Expected first smiley to react")
	}
	if second.Clicked {
		t.Error("Expected second smiley to be skipped")
	}
	if len(g.Particles()) != config.BurstSize || player.plays != 1 {
		t.Errorf("Expected a single burst, got %d particles and %d sounds", len(g.Particles()), player.plays)
	}
}

func TestClickMissAndOtherButtons(t *testing.T) {
	g, player := newTestGame(nil)
	for _, s := range g.Smileys() {
		s.X, s.Y = 400, 300
	}

	g.HandleEvents([]Event{
		press(5, 5),
		{Kind: EventPress, Button: ebiten.MouseButtonRight, X: 400, Y: 300},
	})

	if len(g.Particles()) != 0 || player.plays != 0 {
		t.Errorf("Expected no reaction, got %d particles and %d sounds", len(g.Particles()), player.plays)
	}
}

func TestClickWithoutSound(t *testing.T) {
	g := NewGame(Options{Rand: newTestRand(), Input: &scriptedInput{}})
	s := g.Smileys()[0]
	g.HandleEvents([]Event{press(s.X, s.Y)})
	if len(g.Particles()) != config.BurstSize {
		t.Errorf("Expected burst without audio, got %d particles", len(g.Particles()))
	}
}

func TestParticlesExpire(t *testing.T) {
	g, _ := newTestGame(nil)
	g.CreateParticles(400, 300)

	for i := 0; i < config.ParticleMaxLife; i++ {
		g.Step()
	}
	for _, p := range g.Particles() {
		if p.Life != 0 {
			t.Fatalf("Expected only exhausted particles left, got life %d", p.Life)
		}
	}
	g.Step()
	if len(g.Particles()) != 0 {
		t.Errorf("Expected expired particles removed, got %d", len(g.Particles()))
	}
}

func TestUpdateQuit(t *testing.T) {
	s := &scriptedInput{frames: [][]Event{
		nil,
		{{Kind: EventQuit}},
	}}
	g, _ := newTestGame(s)

	if err := g.Update(); err != nil {
		t.Fatalf("Expected first frame to run, got %v", err)
	}
	if g.ticks != 1 {
		t.Errorf("Expected 1 tick, got %d", g.ticks)
	}
	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Expected ebiten.Termination, got %v", err)
	}
	if g.ticks != 1 {
		t.Errorf("Expected quit frame to skip the step, got %d ticks", g.ticks)
	}
}

func TestLayout(t *testing.T) {
	g, _ := newTestGame(nil)
	w, h := g.Layout(1920, 1080)
	if w != 800 || h != 600 {
		t.Errorf("Expected 800x600, got %dx%d", w, h)
	}
}

func TestFormatDuration(t *testing.T) {
	if got := formatDuration(125 * 1e9); got != "02:05" {
		t.Errorf("formatDuration = %q, want 02:05", got)
	}
}
