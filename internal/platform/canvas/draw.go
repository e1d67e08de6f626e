package canvas

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/level"
)

var (
	eyeColor   = color.RGBA{R: 20, G: 20, B: 30, A: 255}
	clothColor = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	white      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Text sizes as multiples of the 7x13 face.
const (
	hudScale    = 3
	titleScale  = 6
	bannerScale = 3
	maxLabels   = 64
)

func fillBox(dst *ebiten.Image, b core.Box, cam core.Vec, c color.Color) {
	vector.DrawFilledRect(dst,
		float32(b.X-cam.X), float32(b.Y-cam.Y),
		float32(b.W), float32(b.H), c, false)
}

func drawRequest(dst *ebiten.Image, req platformer.DrawRequest, style platformer.Style, cam core.Vec) {
	switch req.Layer {
	case platformer.LayerGoal:
		pole := req.Box
		pole.W = req.Box.W / 6
		fillBox(dst, pole, cam, style.RGBA)
		cloth := core.NewBox(pole.Right(), req.Box.Y+8, req.Box.W-pole.W, req.Box.H/5)
		fillBox(dst, cloth, cam, clothColor)
	case platformer.LayerPlayer:
		fillBox(dst, req.Box, cam, style.RGBA)
		// The eye marks the facing direction.
		eye := core.NewBox(req.Box.Right()-14, req.Box.Y+12, 8, 8)
		if req.FlipX {
			eye.X = req.Box.X + 6
		}
		fillBox(dst, eye, cam, eyeColor)
	default:
		fillBox(dst, req.Box, cam, style.RGBA)
	}
}

func (w *Window) drawHUD(dst *ebiten.Image, sprites *platformer.Catalog) {
	hud := w.scene.HUD()

	vector.DrawFilledRect(dst, 25, 25, 40, 40, sprites.Lookup(level.SpriteCoin).RGBA, false)
	w.drawText(dst, fmt.Sprintf("%d / %d", hud.Coins, hud.TotalCoins), 80, 26, hudScale, white, false)

	w.drawText(dst, fmt.Sprintf("%.1f", hud.Seconds), ScreenWidth/2, 26, hudScale, white, true)

	full := sprites.Lookup("heart").RGBA
	broken := sprites.Lookup("heart-broken").RGBA
	for i := 1; i <= hud.MaxLives; i++ {
		c := broken
		if hud.Lives >= i {
			c = full
		}
		x := float32(ScreenWidth - 25 - i*50)
		vector.DrawFilledRect(dst, x, 25, 40, 40, c, false)
	}
}

func (w *Window) drawBanner(dst *ebiten.Image, b platformer.Banner) {
	vector.DrawFilledRect(dst, 0, 0, ScreenWidth, ScreenHeight, dimColor, false)

	bg := lostColor
	if b.Won {
		bg = wonColor
	}
	vector.DrawFilledRect(dst, ScreenWidth/4, ScreenHeight/4, ScreenWidth/2, ScreenHeight/2, bg, false)

	cy := ScreenHeight / 2
	w.drawText(dst, b.Title, ScreenWidth/2, cy-120, titleScale, white, true)
	w.drawText(dst, b.Line, ScreenWidth/2, cy, bannerScale, white, true)
	w.drawText(dst, b.Hint, ScreenWidth/2, cy+110, bannerScale, white, true)
}

// drawText draws s scaled up from the bitmap face with its top edge at y.
// When centred, x is the horizontal centre instead of the left edge.
func (w *Window) drawText(dst *ebiten.Image, s string, x, y int, scale float64, c color.Color, centred bool) {
	img := w.labels.get(s)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	left := float64(x)
	if centred {
		left -= float64(img.Bounds().Dx()) * scale / 2
	}
	op.GeoM.Translate(left, float64(y))
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(img, op)
}

// labelCache keeps rendered text images between frames. The HUD timer
// changes ten times a second, so the cache is flushed when it grows.
type labelCache struct {
	face   font.Face
	images map[string]*ebiten.Image
}

func newLabelCache() *labelCache {
	return &labelCache{
		face:   basicfont.Face7x13,
		images: make(map[string]*ebiten.Image),
	}
}

func (c *labelCache) get(s string) *ebiten.Image {
	if img, ok := c.images[s]; ok {
		return img
	}
	if len(c.images) >= maxLabels {
		for k, img := range c.images {
			img.Deallocate()
			delete(c.images, k)
		}
	}

	m := c.face.Metrics()
	width := max(font.MeasureString(c.face, s).Ceil(), 1)
	img := ebiten.NewImage(width, m.Height.Ceil())
	text.Draw(img, s, c.face, 0, m.Ascent.Ceil(), white)
	c.images[s] = img
	return img
}
