// Package canvas is the Ebitengine frontend. It draws the platformer's draw
// list as filled rectangles in a desktop window, or in a browser canvas when
// built for js/wasm.
package canvas

import (
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/level"
)

// Logical screen size. The window may be scaled, the layout is not.
const (
	ScreenWidth  = 1280
	ScreenHeight = 720
)

var (
	skyColor  = color.RGBA{R: 120, G: 190, B: 235, A: 255}
	dimColor  = color.RGBA{A: 128}
	wonColor  = color.RGBA{R: 50, G: 200, B: 50, A: 255}
	lostColor = color.RGBA{R: 200, G: 50, B: 50, A: 255}
)

// Scene is the game as the canvas sees it. *platformer.Game implements it.
type Scene interface {
	Step(in core.InputFrame) core.StepResult
	DrawList() []platformer.DrawRequest
	Focus() core.Vec
	Bounds() level.Bounds
	HUD() platformer.HUD
	Banner() (platformer.Banner, bool)
	Sprites() *platformer.Catalog
}

// Window adapts a Scene to ebiten.Game.
type Window struct {
	scene  Scene
	logger *log.Logger
	labels *labelCache
	state  core.GameState
}

// New creates a window for scene.
func New(scene Scene, logger *log.Logger) *Window {
	if logger == nil {
		logger = log.Default()
	}
	return &Window{
		scene:  scene,
		logger: logger,
		labels: newLabelCache(),
	}
}

// Update runs one simulation tick. Ebitengine calls it at the configured TPS.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	res := w.scene.Step(sampleFrame(ebiten.IsKeyPressed))
	if res.State.Phase != w.state.Phase {
		w.logger.Debug("phase", "from", w.state.Phase, "to", res.State.Phase, "seconds", res.State.Seconds)
	}
	w.state = res.State
	return nil
}

// Draw renders the level, the HUD and the end-of-run banner.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)

	cam := platformer.Camera(w.scene.Focus(), w.scene.Bounds(), ScreenWidth, ScreenHeight)
	sprites := w.scene.Sprites()
	for _, req := range w.scene.DrawList() {
		if req.Hidden {
			continue
		}
		drawRequest(screen, req, sprites.Lookup(req.Sprite), cam)
	}

	w.drawHUD(screen, sprites)

	if b, ok := w.scene.Banner(); ok {
		w.drawBanner(screen, b)
	}
}

// Layout keeps the logical screen fixed.
func (w *Window) Layout(_, _ int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// Options configures Run.
type Options struct {
	Title string
	Scale float64 // Window size relative to the logical screen
	TPS   int     // Simulation ticks per second
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(scene Scene, opts Options, logger *log.Logger) error {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.TPS <= 0 {
		opts.TPS = 60
	}

	ebiten.SetWindowSize(int(ScreenWidth*opts.Scale), int(ScreenHeight*opts.Scale))
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.TPS)

	// RunGame returns nil when Update returns ebiten.Termination.
	return ebiten.RunGame(New(scene, logger))
}
