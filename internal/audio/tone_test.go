package audio

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestSynthesizeLengthAndBounds(t *testing.T) {
	tests := []struct {
		name string
		tone Tone
	}{
		{"jump", JumpTone},
		{"land", LandTone},
		{"flat", Tone{Freq: 440, Duration: 0.05, Volume: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples := tt.tone.Synthesize(44100)
			want := int(tt.tone.Duration * 44100)
			if len(samples) != want {
				t.Fatalf("len = %d, want %d", len(samples), want)
			}
			for i, s := range samples {
				if math.Abs(float64(s)) > tt.tone.Volume+1e-6 {
					t.Fatalf("sample %d = %v exceeds volume %v", i, s, tt.tone.Volume)
				}
			}
			if samples[0] != 0 {
				t.Errorf("first sample = %v, want 0 (attack ramp)", samples[0])
			}
		})
	}
}

func TestSynthesizeDecays(t *testing.T) {
	samples := JumpTone.Synthesize(44100)
	peak := func(from, to int) float64 {
		var m float64
		for _, s := range samples[from:to] {
			m = math.Max(m, math.Abs(float64(s)))
		}
		return m
	}
	n := len(samples)
	if early, late := peak(n/10, n/5), peak(n*7/10, n*4/5); late >= early {
		t.Errorf("late peak %v should be below early peak %v", late, early)
	}
}

func TestSynthesizeEmpty(t *testing.T) {
	if s := (Tone{Freq: 440}).Synthesize(44100); s != nil {
		t.Errorf("zero duration should give no samples, got %d", len(s))
	}
}

func TestScaledClamps(t *testing.T) {
	if v := LandTone.Scaled(10).Volume; v != 1 {
		t.Errorf("Scaled(10) volume = %v, want 1", v)
	}
	if v := LandTone.Scaled(-1).Volume; v != 0 {
		t.Errorf("Scaled(-1) volume = %v, want 0", v)
	}
	if LandTone.Volume != 0.8 {
		t.Error("Scaled must not modify the original")
	}
}

func TestLandGain(t *testing.T) {
	tests := []struct {
		speed float32
		want  float64
	}{
		{0, 0.3},
		{6, 0.5},
		{12, 1},
		{40, 1},
	}
	for _, tt := range tests {
		if got := LandGain(tt.speed); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("LandGain(%v) = %v, want %v", tt.speed, got, tt.want)
		}
	}
}

func TestEncodeStereo(t *testing.T) {
	buf := encodeStereo([]float32{0.5, -0.25})
	if len(buf) != 16 {
		t.Fatalf("len = %d, want 16", len(buf))
	}
	for i, want := range []float32{0.5, 0.5, -0.25, -0.25} {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
		if got != want {
			t.Errorf("frame value %d = %v, want %v", i, got, want)
		}
	}
}

func TestNilCuesIsSilent(t *testing.T) {
	var c *Cues
	c.Jump()
	c.Land(10)
	c.SetVolume(0.5)
	c.Close()
}
