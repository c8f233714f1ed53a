package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"go-dragon-shooter/internal/utils"
)

const (
	shotDurationMs      = 120
	shotFreqStartHz     = 440.0
	shotFreqEndHz       = 110.0
	shotAmplitude       = 0.35
	hitDurationMs       = 220
	hitFrequencyHz      = 90.0
	hitAmplitude        = 0.4
	explosionDurationMs = 450
	explosionNoiseAmp   = 0.3
	explosionRumbleAmp  = 0.35
	explosionRumbleHz   = 55.0
)

// sweepGenerator — синус с частотой, скользящей от start к end за duration.
// Огибающая экспоненциально затухает.
type sweepGenerator struct {
	sr         beep.SampleRate
	start, end float64
	amplitude  float64
	length     int
	pos        int
	phase      float64
}

func newSweepGenerator(sr beep.SampleRate, start, end float64, duration time.Duration, amplitude float64) *sweepGenerator {
	return &sweepGenerator{sr: sr, start: start, end: end, amplitude: amplitude, length: sr.N(duration)}
}

func (g *sweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := utils.Clamp(float64(g.pos)/float64(g.length), 0, 1)
		freq := utils.Lerp(g.start, g.end, progress)
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		sample := g.amplitude * math.Exp(-progress*4) * math.Sin(g.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *sweepGenerator) Err() error { return nil }

// buzzGenerator — низкий гул с гармониками для удара о врага.
type buzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func newBuzzGenerator(sr beep.SampleRate, freq float64) *buzzGenerator {
	return &buzzGenerator{sr: sr, freq: freq}
}

func (g *buzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.5*math.Sin(2*math.Pi*g.freq*t) +
			0.3*math.Sin(2*math.Pi*g.freq*2*t) +
			0.2*math.Sin(2*math.Pi*g.freq*3*t)

		attack := math.Min(t/0.01, 1.0)
		sample *= hitAmplitude * attack * math.Exp(-t*10)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *buzzGenerator) Err() error { return nil }

// explosionGenerator — шум плюс низкий рокот с быстрой атакой и медленным спадом.
type explosionGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

func newExplosionGenerator(sr beep.SampleRate) *explosionGenerator {
	return &explosionGenerator{sr: sr, seed: 1}
}

func (g *explosionGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 6)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		rumble := math.Sin(2 * math.Pi * explosionRumbleHz * t)

		sample := envelope * (explosionNoiseAmp*noise + explosionRumbleAmp*rumble)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *explosionGenerator) Err() error { return nil }

// cueStreamer строит конечный поток для звука.
func cueStreamer(cue Cue, sr beep.SampleRate) beep.Streamer {
	switch cue {
	case CueShot:
		return beep.Take(sr.N(shotDurationMs*time.Millisecond),
			newSweepGenerator(sr, shotFreqStartHz, shotFreqEndHz, shotDurationMs*time.Millisecond, shotAmplitude))
	case CueHit:
		return beep.Take(sr.N(hitDurationMs*time.Millisecond), newBuzzGenerator(sr, hitFrequencyHz))
	case CueExplosion:
		return beep.Take(sr.N(explosionDurationMs*time.Millisecond), newExplosionGenerator(sr))
	}
	return nil
}
