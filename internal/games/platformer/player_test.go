package platformer

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/level"
)

var wideBounds = level.Bounds{Left: 0, Right: 1000, Top: -500, Bottom: 500}

func newTestPlayer(x, y float64) *Player {
	return NewPlayer(Pose{X: x, Y: y}, config.DefaultPlatformerConfig())
}

func TestDecelerationReachesZero(t *testing.T) {
	p := newTestPlayer(100, 100)
	p.SpeedX = 7

	prev := math.Abs(p.SpeedX)
	for i := 0; i < 20; i++ {
		p.Advance(core.Controls{}, wideBounds)
		cur := math.Abs(p.SpeedX)
		if cur > prev {
			t.Fatalf("tick %d: |speedX| grew from %g to %g", i, prev, cur)
		}
		prev = cur
	}
	if p.SpeedX != 0 {
		t.Errorf("SpeedX = %g, expected 0", p.SpeedX)
	}
}

func TestDecelerationSnapsInsteadOfOvershooting(t *testing.T) {
	p := newTestPlayer(100, 100)
	p.SpeedX = -0.75

	p.Advance(core.Controls{}, wideBounds)
	if p.SpeedX != 0 {
		t.Errorf("SpeedX = %g, expected 0 (no overshoot)", p.SpeedX)
	}
}

func TestSpeedClamped(t *testing.T) {
	tests := []struct {
		name     string
		controls core.Controls
		expected float64
	}{
		{"right", core.Controls{Right: true}, 7},
		{"left", core.Controls{Left: true}, -7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newTestPlayer(500, 100)
			for i := 0; i < 30; i++ {
				p.Advance(tc.controls, wideBounds)
				if math.Abs(p.SpeedX) > 7 {
					t.Fatalf("tick %d: SpeedX = %g exceeds limit", i, p.SpeedX)
				}
				p.X = 500 // stay away from the level edges
			}
			if p.SpeedX != tc.expected {
				t.Errorf("SpeedX = %g, expected %g", p.SpeedX, tc.expected)
			}
		})
	}
}

func TestBothDirectionsCancel(t *testing.T) {
	p := newTestPlayer(500, 100)
	p.SpeedX = 3

	p.Advance(core.Controls{Left: true, Right: true}, wideBounds)
	if p.SpeedX != 3 {
		t.Errorf("SpeedX = %g, expected 3 (no deceleration while keys held)", p.SpeedX)
	}
}

func TestJumpBoost(t *testing.T) {
	p := newTestPlayer(100, 100)
	jump := core.Controls{Jump: true}

	// One tick to take off plus ten boosted ticks keep full upward speed.
	for i := 0; i < 11; i++ {
		p.Advance(jump, wideBounds)
		if p.SpeedY != -9.5 {
			t.Fatalf("tick %d: SpeedY = %g, expected -9.5", i, p.SpeedY)
		}
	}
	if p.JumpBoostRemaining != 0 {
		t.Errorf("JumpBoostRemaining = %d, expected 0", p.JumpBoostRemaining)
	}

	p.Advance(jump, wideBounds)
	if p.SpeedY != -9 {
		t.Errorf("SpeedY after boost = %g, expected -9", p.SpeedY)
	}
}

func TestJumpReleaseEndsBoost(t *testing.T) {
	p := newTestPlayer(100, 100)

	p.Advance(core.Controls{Jump: true}, wideBounds)
	if !p.Jumping || p.JumpBoostRemaining != 10 {
		t.Fatalf("jump not started: jumping=%v boost=%d", p.Jumping, p.JumpBoostRemaining)
	}

	p.Advance(core.Controls{}, wideBounds)
	if p.JumpBoostRemaining != 0 {
		t.Errorf("JumpBoostRemaining = %d, expected 0 after release", p.JumpBoostRemaining)
	}

	p.Advance(core.Controls{Jump: true}, wideBounds)
	if p.SpeedY != -8.5 {
		t.Errorf("SpeedY = %g, expected -8.5 (no boost after release)", p.SpeedY)
	}
}

func TestHurtIgnoresInput(t *testing.T) {
	p := newTestPlayer(500, 100)
	p.Hurt = true
	p.Jumping = true
	p.SpeedX = -3.5

	p.Advance(core.Controls{Right: true, Jump: true}, wideBounds)
	if p.SpeedX != -3.5 {
		t.Errorf("SpeedX = %g, expected -3.5", p.SpeedX)
	}
	if p.SpeedY != 0.5 {
		t.Errorf("SpeedY = %g, expected gravity only (0.5)", p.SpeedY)
	}
}

func TestHorizontalLimits(t *testing.T) {
	p := newTestPlayer(3, 100)
	p.SpeedX = -7
	p.Advance(core.Controls{Left: true}, wideBounds)
	if p.X != 0 {
		t.Errorf("X = %g, expected 0", p.X)
	}

	p = newTestPlayer(955, 100)
	p.SpeedX = 7
	p.Advance(core.Controls{Right: true}, wideBounds)
	if p.X != 960 {
		t.Errorf("X = %g, expected 960", p.X)
	}
}

func TestGetHurt(t *testing.T) {
	tests := []struct {
		facing   Facing
		expected float64
	}{
		{FacingRight, -3.5},
		{FacingLeft, 3.5},
	}

	for _, tc := range tests {
		p := newTestPlayer(100, 100)
		p.Facing = tc.facing
		p.JumpBoostRemaining = 5

		dead := p.getHurt()
		if dead {
			t.Errorf("facing %v: first hit should not kill", tc.facing)
		}
		if p.SpeedX != tc.expected {
			t.Errorf("facing %v: SpeedX = %g, expected %g", tc.facing, p.SpeedX, tc.expected)
		}
		if !p.Hurt || !p.Jumping || p.SpeedY != -10 || p.JumpBoostRemaining != 0 {
			t.Errorf("facing %v: bad hurt state %+v", tc.facing, p)
		}
		if p.Lives != 2 {
			t.Errorf("facing %v: Lives = %d, expected 2", tc.facing, p.Lives)
		}
	}
}

func TestRecoveryRestoresFacing(t *testing.T) {
	p := newTestPlayer(100, 100)
	p.Facing = FacingRight

	p.getHurt()
	p.faceFromSpeed()
	if p.Facing != FacingLeft {
		t.Fatalf("bouncing back should face left, got %v", p.Facing)
	}

	p.land()
	p.faceFromSpeed()
	if p.Hurt || !p.Recovering {
		t.Fatalf("landing while hurt should start recovering: hurt=%v recovering=%v", p.Hurt, p.Recovering)
	}
	if p.SpeedX != 0 {
		t.Errorf("SpeedX = %g, expected 0 while recovering", p.SpeedX)
	}
	if p.Facing != FacingRight {
		t.Errorf("Facing = %v, expected right after recovery flip", p.Facing)
	}
	if p.RecoveryRemaining != 60 {
		t.Errorf("RecoveryRemaining = %d, expected 60", p.RecoveryRemaining)
	}
}

func TestPlayerReset(t *testing.T) {
	p := NewPlayer(Pose{X: 10, Y: 20, Facing: FacingLeft}, config.DefaultPlatformerConfig())
	p.X, p.Y = 300, 400
	p.Facing = FacingRight
	p.SpeedX, p.SpeedY = 5, 5
	p.Lives = 1
	p.Hurt, p.Jumping, p.Dead, p.Won = true, true, true, true

	p.Reset()

	if p.X != 10 || p.Y != 20 || p.Facing != FacingLeft {
		t.Errorf("pose = (%g, %g, %v), expected initial", p.X, p.Y, p.Facing)
	}
	if p.Lives != p.MaxLives {
		t.Errorf("Lives = %d, expected %d", p.Lives, p.MaxLives)
	}
	if p.Hurt || p.Jumping || p.Dead || p.Won || p.SpeedX != 0 || p.SpeedY != 0 {
		t.Errorf("flags not cleared: %+v", p)
	}
	if p.Initial() != (Pose{X: 10, Y: 20, Facing: FacingLeft}) {
		t.Errorf("Initial() = %+v", p.Initial())
	}
}
