package platformer

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/level"
)

func platform(x, y, w, h float64, s level.Solidity) Platform {
	return NewPlatform(level.PlatformDef{X: x, Y: y, W: w, H: h, Sprite: "platform-test", Solidity: s})
}

func TestPlatformHitBySolidity(t *testing.T) {
	tests := []struct {
		solidity level.Solidity
		dir      Direction
		expected bool
	}{
		{level.SolidityEmpty, DirDown, false},
		{level.SolidityEmpty, DirUp, false},
		{level.SoliditySolid, DirLeft, true},
		{level.SoliditySolid, DirRight, true},
		{level.SoliditySolid, DirUp, true},
		{level.SoliditySolid, DirDown, true},
		{level.SolidityFromAbove, DirDown, true},
		{level.SolidityFromAbove, DirUp, false},
		{level.SolidityFromAbove, DirLeft, false},
		{level.SolidityFromAbove, DirRight, false},
	}

	for _, tc := range tests {
		pl := platform(0, 0, 100, 50, tc.solidity)
		if got := pl.Hit(50, 25, tc.dir); got != tc.expected {
			t.Errorf("%v.Hit(%v) = %v, expected %v", tc.solidity, tc.dir, got, tc.expected)
		}
	}
}

func TestPlatformHitInclusiveEdges(t *testing.T) {
	pl := platform(10, 20, 100, 50, level.SoliditySolid)

	points := []core.Vec{{X: 10, Y: 20}, {X: 110, Y: 70}, {X: 10, Y: 70}, {X: 110, Y: 20}}
	for _, pt := range points {
		if !pl.Hit(pt.X, pt.Y, DirDown) {
			t.Errorf("edge point %+v should hit", pt)
		}
	}
	if pl.Hit(9.9, 20, DirDown) || pl.Hit(10, 70.1, DirDown) {
		t.Error("points outside the box should miss")
	}
}

func TestRestingOnSolidPlatform(t *testing.T) {
	floor := []Platform{platform(0, 400, 1000, 50, level.SoliditySolid)}
	p := newTestPlayer(100, 336)

	for i := 0; i < 30; i++ {
		p.Advance(core.Controls{}, wideBounds)
		p.ResolvePlatforms(floor)
	}

	if p.X != 100 || p.Y != 336 {
		t.Errorf("position = (%g, %g), expected (100, 336)", p.X, p.Y)
	}
	if p.Jumping {
		t.Error("player resting on a platform should not be jumping")
	}
}

func TestCeilingStopsSolidOnly(t *testing.T) {
	tests := []struct {
		name       string
		solidity   level.Solidity
		expectY    float64
		expectSpdY float64
	}{
		{"solid", level.SoliditySolid, 225, 0},
		{"from above", level.SolidityFromAbove, 210, -5},
		{"empty", level.SolidityEmpty, 210, -5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			plats := []Platform{platform(0, 200, 200, 25, tc.solidity)}
			p := newTestPlayer(50, 210)
			p.Jumping = true
			p.SpeedY = -5

			p.ResolvePlatforms(plats)

			if p.Y != tc.expectY || p.SpeedY != tc.expectSpdY {
				t.Errorf("y=%g speedY=%g, expected y=%g speedY=%g", p.Y, p.SpeedY, tc.expectY, tc.expectSpdY)
			}
			if !p.Jumping {
				t.Error("ceiling hit must not land the player")
			}
		})
	}
}

func TestLandingFromAbove(t *testing.T) {
	tests := []struct {
		name     string
		solidity level.Solidity
		lands    bool
	}{
		{"solid", level.SoliditySolid, true},
		{"from above", level.SolidityFromAbove, true},
		{"empty", level.SolidityEmpty, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			plats := []Platform{platform(0, 200, 200, 25, tc.solidity)}
			p := newTestPlayer(50, 146) // bottom at 210, inside the platform
			p.Jumping = true
			p.SpeedY = 5

			p.ResolvePlatforms(plats)

			if p.Jumping == tc.lands {
				t.Fatalf("jumping = %v, expected landed = %v", p.Jumping, tc.lands)
			}
			if tc.lands && (p.Y != 136 || p.SpeedY != 0) {
				t.Errorf("y=%g speedY=%g, expected y=136 speedY=0", p.Y, p.SpeedY)
			}
		})
	}
}

func TestLandingWhileHurtStartsRecovery(t *testing.T) {
	plats := []Platform{platform(0, 200, 200, 25, level.SoliditySolid)}
	p := newTestPlayer(50, 146)
	p.Jumping = true
	p.Hurt = true
	p.SpeedY = 5
	p.SpeedX = -3.5

	p.ResolvePlatforms(plats)

	if p.Hurt || !p.Recovering {
		t.Errorf("hurt=%v recovering=%v, expected recovering", p.Hurt, p.Recovering)
	}
}

func TestWalls(t *testing.T) {
	wall := []Platform{platform(200, 0, 100, 400, level.SoliditySolid)}

	p := newTestPlayer(165, 100) // right edge at 205
	p.SpeedX = 5
	p.ResolvePlatforms(wall)
	if p.SpeedX != 0 || p.X != 159 {
		t.Errorf("moving right: x=%g speedX=%g, expected x=159 speedX=0", p.X, p.SpeedX)
	}

	p = newTestPlayer(295, 100)
	p.SpeedX = -5
	p.ResolvePlatforms(wall)
	if p.SpeedX != 0 || p.X != 301 {
		t.Errorf("moving left: x=%g speedX=%g, expected x=301 speedX=0", p.X, p.SpeedX)
	}
}

func TestFromAboveIsNotAWall(t *testing.T) {
	branch := []Platform{platform(200, 100, 100, 100, level.SolidityFromAbove)}
	p := newTestPlayer(165, 100)
	p.SpeedX = 5

	p.ResolvePlatforms(branch)
	if p.SpeedX != 5 || p.X != 165 {
		t.Errorf("x=%g speedX=%g, expected unchanged", p.X, p.SpeedX)
	}
}

func TestWalkingOffALedge(t *testing.T) {
	ledge := []Platform{platform(0, 400, 100, 50, level.SoliditySolid)}
	p := newTestPlayer(200, 336)

	p.ResolvePlatforms(ledge)

	if !p.Jumping || p.SpeedY != 0 {
		t.Errorf("jumping=%v speedY=%g, expected airborne with speedY=0", p.Jumping, p.SpeedY)
	}
}

func TestGroundedSnapsToHigherStep(t *testing.T) {
	plats := []Platform{
		platform(0, 400, 1000, 50, level.SoliditySolid),
		platform(100, 395, 200, 50, level.SoliditySolid),
	}
	p := newTestPlayer(100, 336)

	p.ResolvePlatforms(plats)

	if p.Y != 331 || p.Jumping {
		t.Errorf("y=%g jumping=%v, expected y=331 standing", p.Y, p.Jumping)
	}
}
