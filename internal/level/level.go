// Package level defines immutable level geometry (bounds, spawn point,
// platforms, coins, hazards and goals) and loads it from YAML files.
// It has no dependency on the simulation that consumes it.
package level

import (
	"fmt"
	"strings"
)

// Default item sizes, used when a level file leaves w/h out.
const (
	DefaultCoinSize     = 40.0
	DefaultHazardWidth  = 100.0
	DefaultHazardHeight = 40.0
	DefaultGoalWidth    = 64.0
	DefaultGoalHeight   = 256.0
)

// Default sprite keys for items without an explicit sprite.
const (
	SpriteCoin   = "coin1"
	SpriteHazard = "thorns-100x50"
	SpriteGoal   = "flag"
)

// Solidity classifies in which directions a platform blocks the player.
type Solidity int

const (
	// SolidityEmpty is never solid: decoration such as flowers.
	SolidityEmpty Solidity = iota
	// SoliditySolid blocks every direction.
	SoliditySolid
	// SolidityFromAbove only blocks downward movement: the player can jump
	// up through it and walk through it sideways, but can stand on it.
	SolidityFromAbove
)

// String returns the name used in level files.
func (s Solidity) String() string {
	switch s {
	case SolidityEmpty:
		return "empty"
	case SoliditySolid:
		return "solid"
	case SolidityFromAbove:
		return "solid_from_above"
	default:
		return fmt.Sprintf("solidity(%d)", int(s))
	}
}

// ParseSolidity parses a level-file solidity name. An empty string means solid.
func ParseSolidity(s string) (Solidity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "solid":
		return SoliditySolid, nil
	case "empty", "none":
		return SolidityEmpty, nil
	case "solid_from_above", "solid_down", "oneway":
		return SolidityFromAbove, nil
	default:
		return SolidityEmpty, fmt.Errorf("unknown solidity %q", s)
	}
}

// Bounds are the level limits. The player is kept between Left and Right;
// the camera is clamped to all four.
type Bounds struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// Width returns the horizontal extent of the level.
func (b Bounds) Width() float64 {
	return b.Right - b.Left
}

// Spawn is the player's starting pose.
type Spawn struct {
	X, Y       float64
	FacingLeft bool
}

// PlatformDef describes one platform.
type PlatformDef struct {
	X, Y, W, H float64
	Sprite     string
	Solidity   Solidity
}

// ItemDef describes a coin, hazard or goal.
type ItemDef struct {
	X, Y, W, H float64
	Sprite     string
}

// Level is a complete level definition.
type Level struct {
	ID        string
	Name      string
	Bounds    Bounds
	Spawn     Spawn
	Platforms []PlatformDef
	Coins     []ItemDef
	Hazards   []ItemDef
	Goals     []ItemDef
	FilePath  string // Empty for bundled levels
}

// Summary returns a one-line description for listings.
func (l Level) Summary() string {
	return fmt.Sprintf("%d platforms, %d coins, %d hazards, %d goals",
		len(l.Platforms), len(l.Coins), len(l.Hazards), len(l.Goals))
}
