package main

import (
	"fmt"
	"os"

	"fpsctl/internal/locomotion"

	"gopkg.in/yaml.v3"
)

// Script is a list of input segments replayed one fixed step at a time.
type Script struct {
	Segments []Segment `yaml:"segments"`
}

// Segment holds its input for Ticks steps. Jump is pressed on the first tick only.
type Segment struct {
	Ticks    int     `yaml:"ticks"`
	Forward  float32 `yaml:"forward"`
	Sideways float32 `yaml:"sideways"`
	Sprint   bool    `yaml:"sprint"`
	Jump     bool    `yaml:"jump"`
	MouseX   float32 `yaml:"mouse_x"`
	MouseY   float32 `yaml:"mouse_y"`
}

func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("locosim: read script: %w", err)
	}
	return ParseScript(data)
}

func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("locosim: parse script: %w", err)
	}
	for i, seg := range s.Segments {
		if seg.Ticks <= 0 {
			return nil, fmt.Errorf("locosim: segment %d: ticks must be positive", i)
		}
	}
	return &s, nil
}

func (s *Script) Ticks() int {
	n := 0
	for _, seg := range s.Segments {
		n += seg.Ticks
	}
	return n
}

// Player is a locomotion.InputSource that walks through the script.
// Past the end it reports no input.
type Player struct {
	script *Script
	seg    int
	tick   int
}

func NewPlayer(s *Script) *Player {
	return &Player{script: s}
}

func (p *Player) Poll() locomotion.InputSample {
	if p.seg >= len(p.script.Segments) {
		return locomotion.InputSample{}
	}
	seg := p.script.Segments[p.seg]
	sample := locomotion.InputSample{
		Intent: locomotion.MovementIntent{
			Forward:     seg.Forward,
			Sideways:    seg.Sideways,
			Sprint:      seg.Sprint,
			JumpPressed: seg.Jump && p.tick == 0,
		},
		MouseDeltaX: seg.MouseX,
		MouseDeltaY: seg.MouseY,
	}
	p.tick++
	if p.tick >= seg.Ticks {
		p.seg++
		p.tick = 0
	}
	return sample
}
