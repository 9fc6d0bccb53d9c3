package world

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"fpsctl/internal/components"
	"fpsctl/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// --- YAML types ---

// LevelFile is the on-disk level: static objects plus the player spawn.
type LevelFile struct {
	Name    string      `yaml:"name"`
	Spawn   SpawnDef    `yaml:"spawn"`
	Objects []ObjectDef `yaml:"objects"`
}

type SpawnDef struct {
	Position  [3]float32 `yaml:"position"`
	Yaw       float32    `yaml:"yaw"`
	Radius    float32    `yaml:"radius"`
	Height    float32    `yaml:"height"`
	Mass      float32    `yaml:"mass"`
	EyeHeight float32    `yaml:"eye_height"`
}

type ObjectDef struct {
	Name       string      `yaml:"name"`
	Tags       []string    `yaml:"tags,omitempty"`
	Position   [3]float32  `yaml:"position"`
	Rotation   [3]float32  `yaml:"rotation"`
	Scale      [3]float32  `yaml:"scale"`
	Components []yaml.Node `yaml:"components"`
}

type componentHeader struct {
	Type string `yaml:"type"`
}

type boxColliderDef struct {
	Type   string     `yaml:"type"`
	Size   [3]float32 `yaml:"size"`
	Offset [3]float32 `yaml:"offset,omitempty"`
	Layer  uint8      `yaml:"layer,omitempty"`
}

type boxRendererDef struct {
	Type  string     `yaml:"type"`
	Size  [3]float32 `yaml:"size"`
	Color string     `yaml:"color"`
	Wires bool       `yaml:"wires,omitempty"`
}

// --- Colors ---

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Pink":      rl.Pink,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"Maroon":    rl.Maroon,
	"Gold":      rl.Gold,
	"DarkGreen": rl.DarkGreen,
}

// LookupColor accepts a raylib colour name or #rrggbb / #rrggbbaa.
func LookupColor(name string) (rl.Color, error) {
	if c, ok := colorByName[name]; ok {
		return c, nil
	}
	hex, ok := strings.CutPrefix(name, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return rl.White, fmt.Errorf("world: unknown color %q", name)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return rl.White, fmt.Errorf("world: color %q: %w", name, err)
	}
	return rl.NewColor(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// --- Loading ---

// ReadLevel parses a level file without touching a world.
func ReadLevel(path string) (*LevelFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("world: read level: %w", err)
	}
	return ParseLevel(data)
}

func ParseLevel(data []byte) (*LevelFile, error) {
	var lf LevelFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("world: parse level: %w", err)
	}
	lf.Spawn.applyDefaults()
	return &lf, nil
}

func (s *SpawnDef) applyDefaults() {
	if s.Radius <= 0 {
		s.Radius = 0.5
	}
	if s.Height <= 0 {
		s.Height = 2
	}
	if s.Mass <= 0 {
		s.Mass = 1
	}
	if s.EyeHeight == 0 {
		s.EyeHeight = 0.6
	}
}

// Build adds the level's objects to the world's scene. Objects are not started.
func (w *World) Build(lf *LevelFile) error {
	for _, def := range lf.Objects {
		g, err := w.buildObject(def)
		if err != nil {
			return err
		}
		w.Scene.AddGameObject(g)
	}
	w.Level = lf
	return nil
}

func (w *World) buildObject(def ObjectDef) (*engine.GameObject, error) {
	g := engine.NewGameObject(def.Name)
	g.Tags = def.Tags
	g.Transform.Position = vec(def.Position)
	g.Transform.Rotation = vec(def.Rotation)
	if def.Scale != [3]float32{} {
		g.Transform.Scale = vec(def.Scale)
	}

	for i := range def.Components {
		node := &def.Components[i]
		var header componentHeader
		if err := node.Decode(&header); err != nil {
			return nil, fmt.Errorf("world: object %q: %w", def.Name, err)
		}
		var err error
		switch header.Type {
		case "BoxCollider":
			err = w.loadBoxCollider(g, node)
		case "BoxRenderer":
			err = loadBoxRenderer(g, node)
		default:
			err = fmt.Errorf("unknown component type %q", header.Type)
		}
		if err != nil {
			return nil, fmt.Errorf("world: object %q line %d: %w", def.Name, node.Line, err)
		}
	}
	return g, nil
}

func (w *World) loadBoxCollider(g *engine.GameObject, node *yaml.Node) error {
	var def boxColliderDef
	if err := node.Decode(&def); err != nil {
		return err
	}
	if def.Layer > 31 {
		return fmt.Errorf("layer %d out of range", def.Layer)
	}
	col := components.NewBoxCollider(w.Physics, vec(def.Size), def.Layer)
	col.Offset = vec(def.Offset)
	g.AddComponent(col)
	return nil
}

func loadBoxRenderer(g *engine.GameObject, node *yaml.Node) error {
	var def boxRendererDef
	if err := node.Decode(&def); err != nil {
		return err
	}
	color, err := LookupColor(def.Color)
	if err != nil {
		return err
	}
	r := components.NewBoxRenderer(vec(def.Size), color)
	r.Wires = def.Wires
	g.AddComponent(r)
	return nil
}

// LoadLevel reads, builds and records the spawn of a level file.
func (w *World) LoadLevel(path string) error {
	lf, err := ReadLevel(path)
	if err != nil {
		return err
	}
	if err := w.Build(lf); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	w.log.Info("Level loaded", "path", path, "name", lf.Name, "objects", len(lf.Objects))
	return nil
}

// --- Saving ---

// SaveLevel writes the static objects and the current spawn back to YAML.
// The player rig is code-managed and skipped.
func (w *World) SaveLevel(path string) error {
	lf := LevelFile{}
	if w.Level != nil {
		lf.Name = w.Level.Name
		lf.Spawn = w.Level.Spawn
	}
	for _, g := range w.Scene.GameObjects {
		if g.HasTag(PlayerTag) {
			continue
		}
		def := ObjectDef{
			Name:     g.Name,
			Tags:     g.Tags,
			Position: arr(g.Transform.Position),
			Rotation: arr(g.Transform.Rotation),
			Scale:    arr(g.Transform.Scale),
		}
		for _, c := range g.Components() {
			node, ok, err := serializeComponent(c)
			if err != nil {
				return fmt.Errorf("world: save %q: %w", g.Name, err)
			}
			if ok {
				def.Components = append(def.Components, node)
			}
		}
		lf.Objects = append(lf.Objects, def)
	}

	data, err := yaml.Marshal(&lf)
	if err != nil {
		return fmt.Errorf("world: marshal level: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("world: write level: %w", err)
	}
	return nil
}

func serializeComponent(c engine.Component) (yaml.Node, bool, error) {
	var def any
	switch comp := c.(type) {
	case *components.BoxCollider:
		def = boxColliderDef{Type: "BoxCollider", Size: arr(comp.Size), Offset: arr(comp.Offset), Layer: comp.Layer}
	case *components.BoxRenderer:
		def = boxRendererDef{Type: "BoxRenderer", Size: arr(comp.Size), Color: colorName(comp.Color), Wires: comp.Wires}
	default:
		return yaml.Node{}, false, nil
	}
	var node yaml.Node
	if err := node.Encode(def); err != nil {
		return yaml.Node{}, false, err
	}
	return node, true, nil
}

func colorName(c rl.Color) string {
	for name, known := range colorByName {
		if known == c {
			return name
		}
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func vec(a [3]float32) rl.Vector3 {
	return rl.Vector3{X: a[0], Y: a[1], Z: a[2]}
}

func arr(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}
