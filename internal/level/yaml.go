package level

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID        string         `yaml:"id"`
	Name      string         `yaml:"name"`
	Bounds    YAMLBounds     `yaml:"bounds"`
	Spawn     YAMLSpawn      `yaml:"spawn"`
	Platforms []YAMLPlatform `yaml:"platforms"`
	Coins     []YAMLItem     `yaml:"coins"`
	Hazards   []YAMLItem     `yaml:"hazards"`
	Goals     []YAMLItem     `yaml:"goals"`
}

// YAMLBounds represents level limits.
type YAMLBounds struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// YAMLSpawn represents the player start.
type YAMLSpawn struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Facing string  `yaml:"facing,omitempty"` // "left" or "right" (default)
}

// YAMLPlatform represents a single platform.
type YAMLPlatform struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	W        float64 `yaml:"w"`
	H        float64 `yaml:"h"`
	Sprite   string  `yaml:"sprite,omitempty"`
	Solidity string  `yaml:"solidity,omitempty"`
}

// YAMLItem represents a coin, hazard or goal. Size is optional.
type YAMLItem struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	W      float64 `yaml:"w,omitempty"`
	H      float64 `yaml:"h,omitempty"`
	Sprite string  `yaml:"sprite,omitempty"`
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	lvl := Level{
		ID:   yl.ID,
		Name: yl.Name,
		Bounds: Bounds{
			Left:   yl.Bounds.Left,
			Right:  yl.Bounds.Right,
			Top:    yl.Bounds.Top,
			Bottom: yl.Bounds.Bottom,
		},
	}
	if lvl.Name == "" {
		lvl.Name = lvl.ID
	}

	switch yl.Spawn.Facing {
	case "", "right":
	case "left":
		lvl.Spawn.FacingLeft = true
	default:
		return Level{}, fmt.Errorf("spawn: unknown facing %q", yl.Spawn.Facing)
	}
	lvl.Spawn.X = yl.Spawn.X
	lvl.Spawn.Y = yl.Spawn.Y

	lvl.Platforms = make([]PlatformDef, 0, len(yl.Platforms))
	for i, p := range yl.Platforms {
		solidity, err := ParseSolidity(p.Solidity)
		if err != nil {
			return Level{}, fmt.Errorf("platform %d: %w", i, err)
		}
		sprite := p.Sprite
		if sprite == "" {
			sprite = fmt.Sprintf("platform-%gx%g", p.W, p.H)
		}
		lvl.Platforms = append(lvl.Platforms, PlatformDef{
			X: p.X, Y: p.Y, W: p.W, H: p.H,
			Sprite:   sprite,
			Solidity: solidity,
		})
	}

	lvl.Coins = items(yl.Coins, DefaultCoinSize, DefaultCoinSize, SpriteCoin)
	lvl.Hazards = items(yl.Hazards, DefaultHazardWidth, DefaultHazardHeight, SpriteHazard)
	lvl.Goals = items(yl.Goals, DefaultGoalWidth, DefaultGoalHeight, SpriteGoal)

	return lvl, nil
}

// items converts YAML items, filling in default size and sprite.
func items(src []YAMLItem, w, h float64, sprite string) []ItemDef {
	out := make([]ItemDef, 0, len(src))
	for _, it := range src {
		def := ItemDef{X: it.X, Y: it.Y, W: it.W, H: it.H, Sprite: it.Sprite}
		if def.W <= 0 {
			def.W = w
		}
		if def.H <= 0 {
			def.H = h
		}
		if def.Sprite == "" {
			def.Sprite = sprite
		}
		out = append(out, def)
	}
	return out
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
