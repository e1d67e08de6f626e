package platformer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-platformer/internal/level"
)

// Animation speeds, in frames per tick.
const (
	walkFrameStep    = 0.25
	coinSpinStep     = 0.175
	coinCollectStep  = 0.125
	animFrames       = 4
	walkSpeedMinimum = 0.1
)

// PlayerPose selects the player sprite.
type PlayerPose int

const (
	PoseStand PlayerPose = iota
	PoseWalk
	PoseJump
	PoseFall
	PoseHurt
	PoseWin
	PoseDead
)

func (p PlayerPose) String() string {
	switch p {
	case PoseStand:
		return "stand"
	case PoseWalk:
		return "walk"
	case PoseJump:
		return "jump"
	case PoseFall:
		return "fall"
	case PoseHurt:
		return "hurt"
	case PoseWin:
		return "win"
	case PoseDead:
		return "dead"
	default:
		return "unknown"
	}
}

// poseOf picks the pose by priority: dead, won, hurt, rising, falling,
// walking, standing.
func poseOf(p *Player) PlayerPose {
	switch {
	case p.Dead:
		return PoseDead
	case p.Won:
		return PoseWin
	case p.Hurt:
		return PoseHurt
	case p.Jumping && p.SpeedY <= 0:
		return PoseJump
	case p.Jumping:
		return PoseFall
	case math.Abs(p.SpeedX) > walkSpeedMinimum:
		return PoseWalk
	default:
		return PoseStand
	}
}

// Animator holds the animation frame accumulators. It only reads the
// simulation, except for moving coins from collecting to collected once
// their animation has played.
type Animator struct {
	pose    PlayerPose
	walk    float64
	spin    []float64
	collect []float64
}

// Reset clears every accumulator for a level with n coins.
func (a *Animator) Reset(n int) {
	a.pose = PoseStand
	a.walk = 0
	a.spin = make([]float64, n)
	a.collect = make([]float64, n)
}

// Advance moves every animation forward by one tick.
func (a *Animator) Advance(p *Player, coins []Coin) {
	a.pose = poseOf(p)
	if a.pose == PoseWalk {
		a.walk += walkFrameStep
		if math.Floor(a.walk) >= animFrames {
			a.walk = 0
		}
	} else {
		a.walk = 0
	}

	if len(a.spin) != len(coins) {
		a.Reset(len(coins))
	}
	for i := range coins {
		switch coins[i].State {
		case CoinIdle:
			a.collect[i] = 0
			a.spin[i] += coinSpinStep
			if math.Floor(a.spin[i]) >= animFrames {
				a.spin[i] = 0
			}
		case CoinCollecting:
			a.collect[i] += coinCollectStep
			if math.Floor(a.collect[i]) >= animFrames {
				a.collect[i] = animFrames - 1
				coins[i].Finish()
			}
		}
	}
}

// Pose returns the current player pose.
func (a *Animator) Pose() PlayerPose {
	return a.pose
}

// PlayerSprite returns the sprite key for the current pose and frame.
func (a *Animator) PlayerSprite() string {
	if a.pose == PoseWalk {
		return fmt.Sprintf("player-walk-%d", int(a.walk)+1)
	}
	return "player-" + a.pose.String()
}

// CoinSprite returns the sprite key of coin i. An idle coin with a custom
// sprite does not spin.
func (a *Animator) CoinSprite(i int, c Coin) string {
	if i >= len(a.spin) {
		return c.Sprite
	}
	if c.State == CoinCollecting {
		return fmt.Sprintf("coin-got%d", int(a.collect[i])+1)
	}
	if c.Sprite != level.SpriteCoin {
		return c.Sprite
	}
	return fmt.Sprintf("coin%d", int(a.spin[i])+1)
}
