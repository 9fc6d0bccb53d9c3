package audio

import (
	"bytes"
	"fmt"
	"log/slog"
	"sync"

	"fpsctl/internal/logger"

	"github.com/ebitengine/oto/v3"
)

// oto allows one context per process.
var (
	otoContext     *oto.Context
	otoContextOnce sync.Once
	otoContextErr  error
)

func initContext(sampleRate int) (*oto.Context, error) {
	otoContextOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: 2,
			Format:       oto.FormatFloat32LE,
		}
		var ready chan struct{}
		otoContext, ready, otoContextErr = oto.NewContext(op)
		if otoContextErr != nil {
			return
		}
		<-ready
	})
	return otoContext, otoContextErr
}

// Cues plays the short controller sounds. A nil *Cues is silent.
type Cues struct {
	ctx        *oto.Context
	sampleRate int
	volume     float64

	mu      sync.Mutex
	players []*oto.Player
	cache   map[Tone][]byte
	log     *slog.Logger
}

func NewCues(sampleRate int, volume float64) (*Cues, error) {
	ctx, err := initContext(sampleRate)
	if err != nil {
		return nil, fmt.Errorf("audio: open device: %w", err)
	}
	c := &Cues{
		ctx:        ctx,
		sampleRate: sampleRate,
		volume:     volume,
		cache:      make(map[Tone][]byte),
		log:        logger.L().With("component", "audio"),
	}
	c.log.Info("Audio cues ready", "sample_rate", sampleRate, "volume", volume)
	return c, nil
}

func (c *Cues) Jump() {
	c.Play(JumpTone)
}

// Land plays the landing thud, louder for harder impacts.
func (c *Cues) Land(impactSpeed float32) {
	if impactSpeed < 1 {
		return
	}
	c.Play(LandTone.Scaled(LandGain(impactSpeed)))
}

// LandGain maps impact speed in m/s to a gain in [0.3, 1].
func LandGain(impactSpeed float32) float64 {
	g := float64(impactSpeed) / 12
	if g < 0.3 {
		return 0.3
	}
	if g > 1 {
		return 1
	}
	return g
}

func (c *Cues) Play(t Tone) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.reap()
	data, ok := c.cache[t]
	if !ok {
		data = encodeStereo(t.Scaled(c.volume).Synthesize(c.sampleRate))
		c.cache[t] = data
	}
	p := c.ctx.NewPlayer(bytes.NewReader(data))
	p.Play()
	c.players = append(c.players, p)
}

// reap closes players that have finished. Caller holds mu.
func (c *Cues) reap() {
	live := c.players[:0]
	for _, p := range c.players {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		_ = p.Close()
	}
	c.players = live
}

func (c *Cues) SetVolume(v float64) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.volume = v
	clear(c.cache)
	c.mu.Unlock()
}

func (c *Cues) Close() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.players {
		_ = p.Close()
	}
	c.players = nil
}
