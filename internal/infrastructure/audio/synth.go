// Package audio turns sound events into short synthesized clips and plays
// them through ebiten's audio context.
package audio

import (
	"encoding/binary"
	"math"
	"math/rand"

	"github.com/younwookim/catfight/internal/domain/entity"
)

// SampleRate of every rendered clip
const SampleRate = 44100

// Waveform is an oscillator shape
type Waveform int

const (
	WaveSine Waveform = iota
	WaveTriangle
	WaveSquare
	WaveSawtooth
	WaveNoise
)

// Voice describes one synthesized sound
type Voice struct {
	Wave     Waveform
	From, To float64   // pitch glide in Hz
	Steps    []float64 // stepped melody; overrides the glide when set
	Exp      bool      // exponential glide instead of linear
	Duration float64   // seconds
	Gain     float64
	Attack   float64 // seconds of fade-in
	Tremolo  float64 // amplitude wobble in Hz, 0 for none
}

// Voices maps every sound event to its voice
var Voices = map[entity.Sound]Voice{
	entity.SoundJump:          {Wave: WaveTriangle, From: 150, To: 300, Duration: 0.1, Gain: 0.1},
	entity.SoundAttack:        {Wave: WaveNoise, Duration: 0.15, Gain: 0.1},
	entity.SoundHit:           {Wave: WaveSquare, From: 80, To: 20, Exp: true, Duration: 0.1, Gain: 0.3},
	entity.SoundWin:           {Wave: WaveSawtooth, Steps: []float64{523.25, 659.25, 783.99, 1046.50}, Duration: 1.5, Gain: 0.2},
	entity.SoundLose:          {Wave: WaveSawtooth, From: 100, To: 30, Duration: 1.0, Gain: 0.2},
	entity.SoundVocalizeShort: {Wave: WaveSawtooth, From: 350, To: 600, Duration: 0.6, Gain: 0.15, Attack: 0.1},
	entity.SoundGrunt:         {Wave: WaveTriangle, From: 150, To: 80, Exp: true, Duration: 0.15, Gain: 0.3},
	entity.SoundLaser:         {Wave: WaveSawtooth, From: 1200, To: 200, Exp: true, Duration: 0.4, Gain: 0.2},
	entity.SoundVocalizeLong:  {Wave: WaveSawtooth, From: 90, To: 60, Duration: 1.5, Gain: 0.2, Attack: 0.1, Tremolo: 7},
}

// stepLength is how long each note of a stepped melody lasts
const stepLength = 0.1

// Render synthesizes v as 16-bit little-endian stereo PCM.
// Noise is drawn from a fixed seed so a voice always renders the same bytes.
func Render(v Voice, sampleRate int) []byte {
	n := int(v.Duration * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	out := make([]byte, n*4)
	noise := rand.New(rand.NewSource(1))

	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		progress := float64(i) / float64(n)

		phase += v.pitchAt(t, progress) / float64(sampleRate)
		phase -= math.Floor(phase)

		s := oscillate(v.Wave, phase, noise) * v.envelope(t, progress)
		sample := int16(clamp(s, -1, 1) * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(sample))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(sample))
	}
	return out
}

func (v Voice) pitchAt(t, progress float64) float64 {
	if len(v.Steps) > 0 {
		idx := int(t / stepLength)
		if idx >= len(v.Steps) {
			idx = len(v.Steps) - 1
		}
		return v.Steps[idx]
	}
	if v.Exp && v.From > 0 && v.To > 0 {
		return v.From * math.Pow(v.To/v.From, progress)
	}
	return v.From + (v.To-v.From)*progress
}

// envelope fades in over Attack and then decays linearly to silence
func (v Voice) envelope(t, progress float64) float64 {
	level := v.Gain * (1 - progress)
	if v.Attack > 0 && t < v.Attack {
		level *= t / v.Attack
	}
	if v.Tremolo > 0 {
		level *= 0.75 + 0.25*math.Sin(2*math.Pi*v.Tremolo*t)
	}
	return level
}

func oscillate(w Waveform, phase float64, noise *rand.Rand) float64 {
	switch w {
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSawtooth:
		return 2*phase - 1
	case WaveNoise:
		return noise.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
