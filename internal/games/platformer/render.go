package platformer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// World units covered by one terminal cell. Cells are roughly twice as
// tall as wide, so the player (40x64) is two cells by two cells.
const (
	CellW = 20.0
	CellH = 32.0
)

// hudRows is the number of screen rows above the level view.
const hudRows = 1

// Render draws the level around the camera, the HUD on the top row and
// the end-of-run overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	viewW := float64(dst.Width()) * CellW
	viewH := float64(dst.Height()-hudRows) * CellH
	cam := Camera(g.focus, g.lvl.Bounds, viewW, viewH)

	for _, req := range g.DrawList() {
		if req.Hidden {
			continue
		}
		g.drawRequest(dst, req, cam)
	}

	g.drawHUD(dst)

	if b, ok := g.Banner(); ok {
		c := core.ColorBrightRed
		if b.Won {
			c = core.ColorBrightGreen
		}
		drawOverlay(dst, c, b.Title, b.Line, b.Hint)
	}
}

// cellRect converts a world box to screen cells relative to the camera.
// Every box covers at least one cell.
func cellRect(b core.Box, cam core.Vec) core.Rect {
	x0 := int(math.Round((b.X - cam.X) / CellW))
	x1 := int(math.Round((b.Right() - cam.X) / CellW))
	y0 := int(math.Round((b.Y - cam.Y) / CellH))
	y1 := int(math.Round((b.Bottom() - cam.Y) / CellH))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0+hudRows, x1-x0, y1-y0)
}

func (g *Game) drawRequest(dst *core.Screen, req DrawRequest, cam core.Vec) {
	style := g.sprites.Lookup(req.Sprite)
	r := cellRect(req.Box, cam)

	// Keep the level view clear of the HUD row.
	if r.Y < hudRows {
		r.H -= hudRows - r.Y
		r.Y = hudRows
	}
	if r.H <= 0 {
		return
	}

	switch req.Layer {
	case LayerGoal:
		pole := cellRect(core.NewBox(req.Box.X, req.Box.Y, g.cfg.Items.GoalPoleWidth, req.Box.H), cam)
		for y := max(pole.Y, hudRows); y < pole.Bottom(); y++ {
			dst.SetColored(pole.X, y, style.Glyph, style.Color)
		}
		// Cloth on the top two rows of the pole.
		for y := pole.Y; y < pole.Y+2; y++ {
			if y < hudRows {
				continue
			}
			for x := pole.X + 1; x < r.Right(); x++ {
				dst.SetColored(x, y, '▓', core.ColorBrightRed)
			}
		}
	case LayerPlayer:
		dst.DrawRect(r, style.Glyph, style.Color)
		if req.FlipX {
			dst.SetColored(r.X, r.Y, '<', style.Color)
		} else {
			dst.SetColored(r.Right()-1, r.Y, '>', style.Color)
		}
	default:
		dst.DrawRect(r, style.Glyph, style.Color)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	hud := g.HUD()

	coin := g.sprites.Lookup("coin1")
	dst.SetColored(1, 0, coin.Glyph, coin.Color)
	dst.DrawTextColored(3, 0, fmt.Sprintf("%d / %d", hud.Coins, hud.TotalCoins), core.ColorBrightWhite)

	dst.DrawTextCentered(0, fmt.Sprintf("%.1f", hud.Seconds), core.ColorBrightWhite)

	full := g.sprites.Lookup("heart")
	broken := g.sprites.Lookup("heart-broken")
	x := dst.Width() - 1 - 2*hud.MaxLives
	for i := 1; i <= hud.MaxLives; i++ {
		s := broken
		if hud.Lives >= i {
			s = full
		}
		dst.SetColored(x, 0, s.Glyph, s.Color)
		x += 2
	}
}

// drawOverlay draws a framed message box in the middle of the screen.
func drawOverlay(dst *core.Screen, c core.Color, title, line, hint string) {
	w := max(len([]rune(line)), len([]rune(hint))) + 6
	w = min(w, dst.Width())
	h := 7
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	dst.DrawTextCentered(box.Y+1, title, c)
	dst.DrawTextCentered(box.Y+3, line, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+5, hint, core.ColorGray)
}
