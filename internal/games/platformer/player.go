package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/level"
)

// Facing is the direction the player sprite looks.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Pose is a position plus facing, used for the spawn snapshot.
type Pose struct {
	X, Y   float64
	Facing Facing
}

// Player is the controllable character. (X, Y) is the top-left corner of
// its bounding box; Y grows downwards.
type Player struct {
	X, Y   float64
	SpeedX float64
	SpeedY float64
	Facing Facing
	W, H   float64

	Lives    int
	MaxLives int

	// Jumping means airborne, whether rising or falling.
	Jumping    bool
	Hurt       bool
	Recovering bool
	Dead       bool
	Won        bool

	RecoveryRemaining  int
	JumpBoostRemaining int

	initial       Pose
	phys          config.PlatformerPhysics
	recoveryTicks int
}

// NewPlayer creates a player at spawn using the given tuning.
func NewPlayer(spawn Pose, cfg config.PlatformerConfig) *Player {
	p := &Player{
		W:             cfg.Player.Width,
		H:             cfg.Player.Height,
		MaxLives:      cfg.Player.MaxLives,
		initial:       spawn,
		phys:          cfg.Physics,
		recoveryTicks: cfg.Player.RecoveryTicks,
	}
	p.Reset()
	return p
}

// Reset puts the player back at the spawn snapshot with full lives.
func (p *Player) Reset() {
	p.X = p.initial.X
	p.Y = p.initial.Y
	p.Facing = p.initial.Facing
	p.SpeedX = 0
	p.SpeedY = 0
	p.Lives = p.MaxLives
	p.Jumping = false
	p.Hurt = false
	p.Recovering = false
	p.Dead = false
	p.Won = false
	p.RecoveryRemaining = 0
	p.JumpBoostRemaining = 0
}

// Initial returns the spawn snapshot.
func (p *Player) Initial() Pose {
	return p.initial
}

// Box returns the player's bounding box.
func (p *Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// Center returns the middle of the bounding box, the item probe point.
func (p *Player) Center() core.Vec {
	return p.Box().Center()
}

// Advance integrates one tick of movement: input, speed limits, gravity,
// position, and the horizontal level limits.
func (p *Player) Advance(c core.Controls, b level.Bounds) {
	// A hurt player bounces back and ignores input until it lands.
	if !p.Hurt {
		if c.Left {
			p.SpeedX -= p.phys.Acceleration
		}
		if c.Right {
			p.SpeedX += p.phys.Acceleration
		}
		if !c.Left && !c.Right {
			switch {
			case p.SpeedX > p.phys.Deceleration:
				p.SpeedX -= p.phys.Deceleration
			case p.SpeedX < -p.phys.Deceleration:
				p.SpeedX += p.phys.Deceleration
			default:
				p.SpeedX = 0
			}
		}

		if c.Jump {
			if !p.Jumping {
				p.jump()
			} else if p.JumpBoostRemaining > 0 {
				p.boost()
			}
		} else {
			p.JumpBoostRemaining = 0
		}
	}

	p.SpeedX = core.ClampF(p.SpeedX, -p.phys.SpeedMax, p.phys.SpeedMax)

	if p.Jumping {
		p.SpeedY += p.phys.Gravity
	}

	p.X += p.SpeedX
	p.Y += p.SpeedY

	if p.X < b.Left {
		p.X = b.Left
	}
	if p.X+p.W > b.Right {
		p.X = b.Right - p.W
	}
}

func (p *Player) jump() {
	p.SpeedY = -p.phys.JumpSpeedMax
	p.Jumping = true
	p.JumpBoostRemaining = p.phys.JumpBoostTicks
}

// boost keeps full upward speed while jump stays held.
func (p *Player) boost() {
	p.SpeedY = -p.phys.JumpSpeedMax
	p.JumpBoostRemaining--
}

// fall leaves the ground without upward speed.
func (p *Player) fall() {
	p.Jumping = true
	p.SpeedY = 0
}

func (p *Player) land() {
	p.Jumping = false
	p.SpeedY = 0
	if p.Hurt {
		p.startRecovering()
	}
}

// getHurt knocks the player up and away from the way it faces and costs a
// life. It reports whether that was the last one.
func (p *Player) getHurt() bool {
	p.Hurt = true
	p.Jumping = true
	p.JumpBoostRemaining = 0
	p.SpeedY = -p.phys.JumpSpeedMax

	if p.Facing == FacingLeft {
		p.SpeedX = p.phys.SpeedMax / 2
	} else {
		p.SpeedX = -p.phys.SpeedMax / 2
	}

	p.Lives--
	if p.Lives <= 0 {
		p.Lives = 0
		p.Dead = true
	}
	return p.Dead
}

// startRecovering turns the landing of a hurt player into an invulnerable
// pause. The facing flip undoes the turn made while bouncing back, so the
// player ends up looking the way it did when hit.
func (p *Player) startRecovering() {
	p.Hurt = false
	p.Recovering = true
	p.RecoveryRemaining = p.recoveryTicks
	p.SpeedX = 0
	if p.Facing == FacingLeft {
		p.Facing = FacingRight
	} else {
		p.Facing = FacingLeft
	}
}

func (p *Player) keepRecovering() {
	p.RecoveryRemaining--
	if p.RecoveryRemaining <= 0 {
		p.RecoveryRemaining = 0
		p.Recovering = false
	}
}

// faceFromSpeed turns the player towards its horizontal movement.
// A standing player keeps its facing.
func (p *Player) faceFromSpeed() {
	if p.SpeedX > 0 {
		p.Facing = FacingRight
	}
	if p.SpeedX < 0 {
		p.Facing = FacingLeft
	}
}

// Kill ends the run regardless of remaining lives.
func (p *Player) Kill() {
	p.Lives = 0
	p.Dead = true
}

// Invulnerable reports whether hazards are currently ignored.
func (p *Player) Invulnerable() bool {
	return p.Hurt || p.Recovering
}
