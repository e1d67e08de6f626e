package platformer

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/level"
)

// Layer orders draw requests back to front.
type Layer int

const (
	LayerPlatform Layer = iota
	LayerCoin
	LayerHazard
	LayerGoal
	LayerPlayer
)

// DrawRequest asks a frontend to draw one sprite in world space.
type DrawRequest struct {
	Sprite string
	Box    core.Box
	FlipX  bool // Mirror horizontally, used for a player facing left
	Layer  Layer
	Hidden bool // Skipped this tick, e.g. the recovery flicker
}

// DrawList returns everything to draw this tick, back to front.
// Collected coins are left out.
func (g *Game) DrawList() []DrawRequest {
	out := make([]DrawRequest, 0, len(g.platforms)+len(g.coins)+len(g.hazards)+len(g.goals)+1)

	for _, p := range g.platforms {
		out = append(out, DrawRequest{Sprite: p.Sprite, Box: p.Box, Layer: LayerPlatform})
	}
	for i, c := range g.coins {
		if c.State == CoinCollected {
			continue
		}
		out = append(out, DrawRequest{Sprite: g.anim.CoinSprite(i, c), Box: c.Box, Layer: LayerCoin})
	}
	for _, h := range g.hazards {
		out = append(out, DrawRequest{Sprite: h.Sprite, Box: h.Box, Layer: LayerHazard})
	}
	for _, gl := range g.goals {
		out = append(out, DrawRequest{Sprite: gl.Sprite, Box: gl.Box, Layer: LayerGoal})
	}

	p := g.player
	out = append(out, DrawRequest{
		Sprite: g.anim.PlayerSprite(),
		Box:    p.Box(),
		FlipX:  p.Facing == FacingLeft,
		Layer:  LayerPlayer,
		Hidden: p.Recovering && p.RecoveryRemaining%2 == 0,
	})
	return out
}

// HUD is the status line shown over the level.
type HUD struct {
	Coins      int
	TotalCoins int
	Lives      int
	MaxLives   int
	Seconds    float64
	Phase      Phase
}

// HUD returns the values for the status line.
func (g *Game) HUD() HUD {
	return HUD{
		Coins:      g.collected,
		TotalCoins: len(g.coins),
		Lives:      g.player.Lives,
		MaxLives:   g.player.MaxLives,
		Seconds:    g.seconds,
		Phase:      g.phase,
	}
}

// Banner is the message shown over a finished run.
type Banner struct {
	Won   bool
	Title string
	Line  string
	Hint  string
}

// Banner returns the end-of-run message. ok is false while the run is
// still going, including the one-tick enter phases.
func (g *Game) Banner() (b Banner, ok bool) {
	switch g.phase {
	case PhaseWon:
		return Banner{
			Won:   true,
			Title: "YOU WON!",
			Line:  fmt.Sprintf("You did it in %.1f seconds!", g.seconds),
			Hint:  "Press jump to play again",
		}, true
	case PhaseLost:
		return Banner{
			Title: "YOU LOST!",
			Line:  "Better luck next time!",
			Hint:  "Press jump to try again",
		}, true
	}
	return Banner{}, false
}

// Camera returns the top-left corner of a view of size viewW x viewH
// centred on focus and kept inside the level bounds. A level narrower or
// shorter than the view is pinned to its left or top edge.
func Camera(focus core.Vec, b level.Bounds, viewW, viewH float64) core.Vec {
	cam := core.Vec{X: focus.X - viewW/2, Y: focus.Y - viewH/2}

	if cam.X > b.Right-viewW {
		cam.X = b.Right - viewW
	}
	if cam.X < b.Left {
		cam.X = b.Left
	}
	if cam.Y > b.Bottom-viewH {
		cam.Y = b.Bottom - viewH
	}
	if cam.Y < b.Top {
		cam.Y = b.Top
	}
	return cam
}
