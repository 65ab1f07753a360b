package sound

import (
	"errors"
	"math"

	"github.com/faiface/beep"

	"github.com/iburimskiy/smiley-splash/internal/config"
)

// Format is the PCM layout of the click tone: 22050 Hz, stereo, 16-bit.
var Format = beep.Format{
	SampleRate:  beep.SampleRate(config.SoundSampleRate),
	NumChannels: 2,
	Precision:   2,
}

var errEmptyTone = errors.New("sound: tone has no frames")

// popTone streams a decaying sine quantised to 16-bit, the same value on both channels.
type popTone struct {
	freq      float64
	decay     float64
	amplitude int
	rate      beep.SampleRate
	frames    int
	position  int
}

func newPopTone(rate beep.SampleRate, duration float64) *popTone {
	return &popTone{
		freq:      config.SoundFrequency,
		decay:     config.SoundDecay,
		amplitude: config.SoundAmplitude,
		rate:      rate,
		frames:    int(duration * float64(rate)),
	}
}

// sample returns the 16-bit value of frame i.
func (t *popTone) sample(i int) int16 {
	tm := float64(i) / float64(t.rate)
	wave := math.Sin(2*math.Pi*t.freq*tm) * math.Exp(-tm*t.decay)
	return int16(wave * float64(t.amplitude))
}

func (t *popTone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.frames {
			return i, i > 0
		}
		v := float64(t.sample(t.position)) / (1 << 15)
		samples[i][0] = v
		samples[i][1] = v
		t.position++
	}
	return len(samples), true
}

func (t *popTone) Err() error { return nil }

// GenerateClickSound renders the click "pop" into a buffer in the given format.
func GenerateClickSound(format beep.Format, duration float64) (*beep.Buffer, error) {
	tone := newPopTone(format.SampleRate, duration)
	if tone.frames <= 0 {
		return nil, errEmptyTone
	}
	buf := beep.NewBuffer(format)
	buf.Append(tone)
	return buf, nil
}
