package window

import (
	"encoding/binary"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/vovakirdan/box-arcade/internal/core"
)

const sampleRate = 44100

// tone is a sine sweep from one frequency to another.
type tone struct {
	from, to float64 // Hz
	secs     float64
	volume   float64
}

// tones are the effects the games name. The four beeps are the pad notes.
var tones = map[core.Sound]tone{
	core.SoundBeep1:  {from: 329.63, to: 329.63, secs: 0.35, volume: 0.4},
	core.SoundBeep2:  {from: 277.18, to: 277.18, secs: 0.35, volume: 0.4},
	core.SoundBeep3:  {from: 440.00, to: 440.00, secs: 0.35, volume: 0.4},
	core.SoundBeep4:  {from: 164.81, to: 164.81, secs: 0.35, volume: 0.4},
	core.SoundPickup: {from: 880, to: 1320, secs: 0.12, volume: 0.3},
	core.SoundFail:   {from: 220, to: 90, secs: 0.6, volume: 0.4},
}

// synthesize renders a sound as 16-bit little-endian stereo PCM, the
// format an ebiten audio context plays. Unknown sounds render as nil.
func synthesize(s core.Sound, rate int) []byte {
	t, ok := tones[s]
	if !ok {
		return nil
	}

	n := int(t.secs * float64(rate))
	buf := make([]byte, n*4)
	fade := max(n/10, 1)
	phase := 0.0
	for i := range n {
		frac := float64(i) / float64(n)
		freq := t.from + (t.to-t.from)*frac
		phase += 2 * math.Pi * freq / float64(rate)

		amp := t.volume
		if rem := n - i; rem < fade {
			amp *= float64(rem) / float64(fade)
		}
		v := int16(math.Sin(phase) * amp * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}

// Synth plays game sounds. Each effect is rendered once and reused.
type Synth struct {
	ctx   *audio.Context
	cache map[core.Sound][]byte
}

// NewSynth opens the audio device. Only one may exist per process.
func NewSynth() *Synth {
	return &Synth{
		ctx:   audio.NewContext(sampleRate),
		cache: make(map[core.Sound][]byte),
	}
}

// Play starts the given sounds without waiting for them.
func (s *Synth) Play(sounds []core.Sound) {
	for _, snd := range sounds {
		pcm, ok := s.cache[snd]
		if !ok {
			pcm = synthesize(snd, sampleRate)
			s.cache[snd] = pcm
		}
		if len(pcm) == 0 {
			continue
		}
		s.ctx.NewPlayerFromBytes(pcm).Play()
	}
}
