package audio

import (
	"encoding/binary"
	"math"
)

// Tone is a decaying sine sweep.
type Tone struct {
	Freq     float64 // start frequency, Hz
	EndFreq  float64 // end frequency, Hz; 0 keeps Freq
	Duration float64 // seconds
	Volume   float64 // peak amplitude in [0, 1]
	Decay    float64 // envelope time constant in seconds
}

var (
	JumpTone = Tone{Freq: 420, EndFreq: 780, Duration: 0.12, Volume: 0.6, Decay: 0.06}
	LandTone = Tone{Freq: 140, EndFreq: 70, Duration: 0.09, Volume: 0.8, Decay: 0.03}
)

// Synthesize renders the tone as mono float32 samples.
func (t Tone) Synthesize(sampleRate int) []float32 {
	n := int(t.Duration * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	end := t.EndFreq
	if end == 0 {
		end = t.Freq
	}
	out := make([]float32, n)
	attack := sampleRate / 200 // 5ms ramp avoids a click
	phase := 0.0
	for i := range out {
		s := float64(i) / float64(sampleRate)
		frac := float64(i) / float64(n)
		freq := t.Freq + (end-t.Freq)*frac
		phase += 2 * math.Pi * freq / float64(sampleRate)

		env := t.Volume
		if t.Decay > 0 {
			env *= math.Exp(-s / t.Decay)
		}
		if i < attack {
			env *= float64(i) / float64(attack)
		}
		if tail := n - i; tail < attack {
			env *= float64(tail) / float64(attack)
		}
		out[i] = float32(math.Sin(phase) * env)
	}
	return out
}

// Scaled returns the tone with its volume multiplied by gain, clamped to [0, 1].
func (t Tone) Scaled(gain float64) Tone {
	t.Volume = math.Max(0, math.Min(1, t.Volume*gain))
	return t
}

// encodeStereo interleaves mono samples into float32 little-endian stereo frames.
func encodeStereo(samples []float32) []byte {
	buf := make([]byte, len(samples)*8)
	for i, s := range samples {
		bits := math.Float32bits(s)
		binary.LittleEndian.PutUint32(buf[i*8:], bits)
		binary.LittleEndian.PutUint32(buf[i*8+4:], bits)
	}
	return buf
}
