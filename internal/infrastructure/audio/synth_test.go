package audio

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/catfight/internal/domain/entity"
)

func samplesOf(pcm []byte) []int16 {
	out := make([]int16, 0, len(pcm)/4)
	for i := 0; i+3 < len(pcm); i += 4 {
		out = append(out, int16(binary.LittleEndian.Uint16(pcm[i:])))
	}
	return out
}

func TestVoices_CoverEverySound(t *testing.T) {
	for _, s := range entity.AllSounds {
		v, ok := Voices[s]
		require.True(t, ok, s.String())
		assert.Greater(t, v.Duration, 0.0, s.String())
		assert.Greater(t, v.Gain, 0.0, s.String())
	}
}

func TestRender(t *testing.T) {
	t.Run("length is duration in stereo frames", func(t *testing.T) {
		pcm := Render(Voice{Wave: WaveSine, From: 440, To: 440, Duration: 0.5, Gain: 0.5}, 1000)
		assert.Len(t, pcm, 500*4)
	})

	t.Run("channels carry the same sample", func(t *testing.T) {
		pcm := Render(Voices[entity.SoundHit], SampleRate)
		for i := 0; i+3 < len(pcm); i += 4 * 97 {
			assert.Equal(t, pcm[i:i+2], pcm[i+2:i+4])
		}
	})

	t.Run("amplitude stays under gain", func(t *testing.T) {
		v := Voices[entity.SoundGrunt]
		limit := int16(v.Gain*32767) + 1
		for _, s := range samplesOf(Render(v, SampleRate)) {
			assert.LessOrEqual(t, s, limit)
			assert.GreaterOrEqual(t, s, -limit)
		}
	})

	t.Run("starts silent with an attack", func(t *testing.T) {
		samples := samplesOf(Render(Voices[entity.SoundVocalizeShort], SampleRate))
		assert.Equal(t, int16(0), samples[0])
	})

	t.Run("noise is repeatable", func(t *testing.T) {
		v := Voices[entity.SoundAttack]
		assert.Equal(t, Render(v, SampleRate), Render(v, SampleRate))
	})

	t.Run("empty voice", func(t *testing.T) {
		assert.Nil(t, Render(Voice{}, SampleRate))
	})
}

func TestVoice_Pitch(t *testing.T) {
	t.Run("linear glide", func(t *testing.T) {
		v := Voice{From: 100, To: 300}
		assert.Equal(t, 100.0, v.pitchAt(0, 0))
		assert.Equal(t, 200.0, v.pitchAt(0, 0.5))
	})

	t.Run("exponential glide", func(t *testing.T) {
		v := Voice{From: 80, To: 20, Exp: true}
		assert.InDelta(t, 40.0, v.pitchAt(0, 0.5), 1e-9)
	})

	t.Run("steps hold the last note", func(t *testing.T) {
		v := Voices[entity.SoundWin]
		assert.Equal(t, 523.25, v.pitchAt(0.05, 0))
		assert.Equal(t, 659.25, v.pitchAt(0.15, 0))
		assert.Equal(t, 1046.50, v.pitchAt(1.2, 0))
	})
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() { Nop{}.Play(entity.SoundWin) })
}
