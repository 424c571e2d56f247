package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Cue names a sound effect.
type Cue int

const (
	CueThrow  Cue = iota // locator leaves the hand
	CueSplash            // locator hits the water
	CueBuzz              // cast rejected
	CueChime             // charges added or limits reset
	CueFade              // locator removed
)

func (c Cue) String() string {
	switch c {
	case CueThrow:
		return "throw"
	case CueSplash:
		return "splash"
	case CueBuzz:
		return "buzz"
	case CueChime:
		return "chime"
	case CueFade:
		return "fade"
	default:
		return fmt.Sprintf("Cue(%d)", int(c))
	}
}

// NewCue builds a finite streamer for c at the given sample rate.
func NewCue(c Cue, sr beep.SampleRate) beep.Streamer {
	switch c {
	case CueThrow:
		return withVolume(&sweep{sr: sr, from: 300, to: 900, length: sr.N(180 * time.Millisecond)}, 0.4)
	case CueSplash:
		return withVolume(&splash{sr: sr, length: sr.N(400 * time.Millisecond), seed: 1}, 0.6)
	case CueBuzz:
		return withVolume(beep.Take(sr.N(150*time.Millisecond), &buzz{sr: sr, freq: 120}), 0.5)
	case CueChime:
		return withVolume(&sweep{sr: sr, from: 880, to: 880, length: sr.N(250 * time.Millisecond)}, 0.35)
	case CueFade:
		return withVolume(&sweep{sr: sr, from: 600, to: 200, length: sr.N(300 * time.Millisecond)}, 0.3)
	default:
		return beep.Silence(0)
	}
}

// withVolume scales a streamer linearly; vol <= 0 silences it.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// sweep is a sine glide from one frequency to another with a linear
// release.
type sweep struct {
	sr       beep.SampleRate
	from, to float64
	length   int
	pos      int
	phase    float64
}

func (g *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.length {
			return i, i > 0
		}
		progress := float64(g.pos) / float64(g.length)
		freq := g.from + (g.to-g.from)*progress

		sample := math.Sin(2*math.Pi*g.phase) * (1 - progress)
		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *sweep) Err() error { return nil }

// splash is filtered noise over a low thump with a fast exponential decay.
type splash struct {
	sr     beep.SampleRate
	length int
	pos    int
	seed   int64
	last   float64
}

func (g *splash) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.length {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 10)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		g.last += 0.3 * (noise - g.last) // one-pole low-pass

		thump := math.Sin(2 * math.Pi * 70 * t)
		sample := envelope * (0.7*g.last + 0.3*thump)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *splash) Err() error { return nil }

// buzz is a low tone with odd harmonics and a short attack.
type buzz struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func (g *buzz) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.6*math.Sin(2*math.Pi*g.freq*t) +
			0.3*math.Sin(2*math.Pi*g.freq*2*t) +
			0.1*math.Sin(2*math.Pi*g.freq*3*t)
		sample *= math.Min(t/0.02, 1)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *buzz) Err() error { return nil }
