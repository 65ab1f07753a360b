package sound

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/smiley-splash/internal/config"
)

// ErrNoSound is returned when the click tone could not be generated.
var ErrNoSound = errors.New("sound: click sound unavailable")

// Options controls how the audio context is opened.
type Options struct {
	// Mute skips opening the audio device. The tone is still generated.
	Mute bool
	// Logger receives degradation notices. Defaults to log.Default().
	Logger *log.Logger
}

// device is the subset of the speaker package the context drives.
type device interface {
	Init(sr beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
	Clear()
	Close()
}

type speakerDevice struct{}

func (speakerDevice) Init(sr beep.SampleRate, bufferSize int) error {
	return speaker.Init(sr, bufferSize)
}
func (speakerDevice) Play(s ...beep.Streamer) { speaker.Play(s...) }
func (speakerDevice) Clear()                  { speaker.Clear() }
func (speakerDevice) Close()                  { speaker.Close() }

// Context owns the audio device and the cached click sound for one session.
// Create it once at startup and Close it on exit.
type Context struct {
	click  *beep.Buffer
	dev    device
	open   bool
	logger *log.Logger
}

func NewContext(opts Options) *Context {
	return newContext(opts, speakerDevice{})
}

func newContext(opts Options, dev device) *Context {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	c := &Context{dev: dev, logger: logger}

	click, err := GenerateClickSound(Format, config.SoundDuration)
	if err != nil {
		logger.Printf("click sound disabled: %v", err)
		return c
	}
	c.click = click

	if opts.Mute {
		return c
	}
	if err := dev.Init(Format.SampleRate, Format.SampleRate.N(time.Second/20)); err != nil {
		logger.Printf("audio device unavailable, continuing without sound: %v", err)
		return c
	}
	c.open = true
	return c
}

// Enabled reports whether Play will produce audible output.
func (c *Context) Enabled() bool {
	return c != nil && c.open && c.click != nil
}

// Play starts the click sound. Failures are ignored.
func (c *Context) Play() {
	if !c.Enabled() {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			c.logger.Printf("click playback failed: %v", r)
		}
	}()
	c.dev.Play(c.click.Streamer(0, c.click.Len()))
}

// Close stops playback and releases the audio device.
func (c *Context) Close() {
	if c == nil || !c.open {
		return
	}
	c.dev.Clear()
	c.dev.Close()
	c.open = false
}

// WriteWAV encodes the click sound as a WAV file.
func (c *Context) WriteWAV(w io.WriteSeeker) error {
	if c == nil || c.click == nil {
		return ErrNoSound
	}
	if err := wav.Encode(w, c.click.Streamer(0, c.click.Len()), c.click.Format()); err != nil {
		return fmt.Errorf("encode click sound: %w", err)
	}
	return nil
}
