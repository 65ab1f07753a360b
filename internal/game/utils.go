package game

import (
	"fmt"
	"image/color"
	"time"
)

// Rand is the random source used for sprite variety. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// randInt returns an integer in [lo, hi], both ends inclusive.
func randInt(r Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}

// randUniform returns a float in [lo, hi).
func randUniform(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

func pickColor(r Rand, choices []color.RGBA) color.RGBA {
	return choices[r.Intn(len(choices))]
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
