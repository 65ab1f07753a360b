package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/smiley-splash/internal/config"
	"github.com/iburimskiy/smiley-splash/internal/game"
	"github.com/iburimskiy/smiley-splash/internal/sound"
)

var (
	seedFlag   = flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	muteFlag   = flag.Bool("mute", false, "run without opening the audio device")
	debugFlag  = flag.Bool("debug", false, "show TPS and entity counts")
	exportFlag = flag.String("export-sound", "", "write the click sound to this WAV file and exit")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("smiley: ")
	flag.Parse()

	if *exportFlag != "" {
		if err := exportSound(*exportFlag); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := run(); err != nil {
		_ = zenity.Error(err.Error(), zenity.Title(config.WindowTitle), zenity.ErrorIcon)
		log.Fatal(err)
	}
}

func run() error {
	audioCtx := sound.NewContext(sound.Options{Mute: *muteFlag})
	defer audioCtx.Close()

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.TPS)
	ebiten.SetWindowClosingHandled(true)

	g := game.NewGame(game.Options{
		Rand:  rand.New(rand.NewSource(seed)),
		Sound: audioCtx,
		Title: game.NewTitleFace(),
		Debug: *debugFlag,
	})
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func exportSound(path string) error {
	audioCtx := sound.NewContext(sound.Options{Mute: true})

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := audioCtx.WriteWAV(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Printf("wrote click sound to %s", path)
	return nil
}
