package assets

import (
	"bytes"
	"encoding/binary"
	"math"

	cfg "github.com/automoto/lanerunner/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes and caches the PCM for each sound effect
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders a sound effect into the cache without creating a player.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) bool {
	if _, ok := l.sfxCache[id]; ok {
		return true
	}
	tone, ok := cfg.Sound.Tones[id]
	if !ok {
		return false
	}
	l.sfxCache[id] = SynthesizeTone(tone, l.context.SampleRate(), cfg.Audio.FadeSeconds)
	return true
}

// LoadSFX returns a new player for a sound effect each time.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, bool) {
	if !l.PreloadSFX(id) {
		return nil, false
	}
	return l.context.NewPlayerFromBytes(l.sfxCache[id]), true
}

// SynthesizeTone renders a sine sweep as 16-bit little-endian stereo PCM,
// the format audio.Context players expect.
func SynthesizeTone(t cfg.Tone, sampleRate int, fade float64) []byte {
	n := int(t.Duration * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	fadeSamples := int(fade * float64(sampleRate))

	buf := bytes.NewBuffer(make([]byte, 0, n*4))
	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := t.StartHz + (t.EndHz-t.StartHz)*progress
		phase += 2 * math.Pi * freq / float64(sampleRate)

		env := 1.0
		if fadeSamples > 0 {
			if i < fadeSamples {
				env = float64(i) / float64(fadeSamples)
			} else if n-i < fadeSamples {
				env = float64(n-i) / float64(fadeSamples)
			}
		}

		v := int16(math.Sin(phase) * env * t.Gain * math.MaxInt16)
		_ = binary.Write(buf, binary.LittleEndian, v) // left
		_ = binary.Write(buf, binary.LittleEndian, v) // right
	}
	return buf.Bytes()
}
