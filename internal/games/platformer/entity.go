package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/level"
)

// Direction is the movement a collision probe is checking for.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// Entity is a static rectangle with a sprite. Every level object embeds it.
type Entity struct {
	Box    core.Box
	Sprite string
}

// Hit reports whether the point lies inside the entity, edges included.
func (e Entity) Hit(x, y float64) bool {
	return e.Box.ContainsPoint(x, y)
}

// Platform is level geometry the player collides with.
type Platform struct {
	Entity
	Solidity level.Solidity
}

// NewPlatform creates a platform from its level definition.
func NewPlatform(def level.PlatformDef) Platform {
	return Platform{
		Entity:   Entity{Box: core.NewBox(def.X, def.Y, def.W, def.H), Sprite: def.Sprite},
		Solidity: def.Solidity,
	}
}

// Hit reports whether a probe moving in dir is stopped by the platform.
func (p Platform) Hit(x, y float64, dir Direction) bool {
	switch p.Solidity {
	case level.SoliditySolid:
		return p.Entity.Hit(x, y)
	case level.SolidityFromAbove:
		return dir == DirDown && p.Entity.Hit(x, y)
	default:
		return false
	}
}

// CoinState is the lifecycle of a coin within one run.
type CoinState int

const (
	CoinIdle CoinState = iota
	CoinCollecting
	CoinCollected
)

func (s CoinState) String() string {
	switch s {
	case CoinIdle:
		return "idle"
	case CoinCollecting:
		return "collecting"
	case CoinCollected:
		return "collected"
	default:
		return "unknown"
	}
}

// Coin is a collectible. It is counted when it starts collecting; the
// collect animation then moves it to CoinCollected.
type Coin struct {
	Entity
	State  CoinState
	margin float64
}

// NewCoin creates an idle coin. margin is the fraction of the coin's size
// added on each side of its hit box.
func NewCoin(def level.ItemDef, margin float64) Coin {
	return Coin{
		Entity: Entity{Box: core.NewBox(def.X, def.Y, def.W, def.H), Sprite: def.Sprite},
		margin: margin,
	}
}

// Touches reports whether an idle coin's widened box contains the point.
func (c *Coin) Touches(x, y float64) bool {
	if c.State != CoinIdle {
		return false
	}
	return c.Box.Grow(c.Box.W*c.margin, c.Box.H*c.margin).ContainsPoint(x, y)
}

// Collect starts collecting an idle coin. It returns false if the coin was
// already taken.
func (c *Coin) Collect() bool {
	if c.State != CoinIdle {
		return false
	}
	c.State = CoinCollecting
	return true
}

// Finish marks a collecting coin as gone.
func (c *Coin) Finish() {
	if c.State == CoinCollecting {
		c.State = CoinCollected
	}
}

// Reset makes the coin collectible again.
func (c *Coin) Reset() {
	c.State = CoinIdle
}

// Hazard hurts the player on contact.
type Hazard struct {
	Entity
}

// NewHazard creates a hazard from its level definition.
func NewHazard(def level.ItemDef) Hazard {
	return Hazard{Entity{Box: core.NewBox(def.X, def.Y, def.W, def.H), Sprite: def.Sprite}}
}

// Goal is the flag that ends the level. Only its pole counts as a hit.
type Goal struct {
	Entity
	PoleWidth float64
}

// NewGoal creates a goal from its level definition.
func NewGoal(def level.ItemDef, poleWidth float64) Goal {
	return Goal{
		Entity:    Entity{Box: core.NewBox(def.X, def.Y, def.W, def.H), Sprite: def.Sprite},
		PoleWidth: poleWidth,
	}
}

// Pole returns the strip at the left edge of the goal that the player must reach.
func (g Goal) Pole() core.Box {
	return core.NewBox(g.Box.X, g.Box.Y, g.PoleWidth, g.Box.H)
}

// Hit reports whether the point touches the pole.
func (g Goal) Hit(x, y float64) bool {
	return g.Pole().ContainsPoint(x, y)
}
