// Package platformer implements a side-scrolling platform game: run and
// jump across a level, collect every coin, avoid the thorns and touch the
// flag pole to win.
//
// The package is pure simulation. Frontends feed it one InputFrame per
// tick and draw what DrawList, Focus and HUD describe, or let Render paint
// a terminal Screen.
package platformer

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// Registered game IDs.
const (
	ID         = "platformer"
	HardcoreID = "platformer_hardcore"
)

func init() {
	registry.Register(ID, func(s registry.Settings) registry.Game {
		return New(s.Level, s.Config, WithLogger(s.Logger))
	})
	registry.Register(HardcoreID, func(s registry.Settings) registry.Game {
		cfg := s.Config
		if cfg == (config.PlatformerConfig{}) {
			cfg = config.DefaultPlatformerConfig()
		}
		cfg.Player.MaxLives = 1
		cfg.Rules.FallDeath = true
		return New(s.Level, cfg, WithLogger(s.Logger), WithIdentity(HardcoreID, "Platformer (hardcore)"))
	})
}

// Game is the context object of one level: it owns the player, the level
// entities and the counters, and is the only place phases change.
type Game struct {
	id    string
	title string

	cfg     config.PlatformerConfig
	lvl     level.Level
	runtime core.RuntimeConfig
	logger  *log.Logger
	clock   core.Clock
	fixed   core.Clock // Set by WithClock
	sprites *Catalog

	phase     Phase
	tick      uint64
	player    *Player
	platforms []Platform
	coins     []Coin
	hazards   []Hazard
	goals     []Goal
	collected int
	started   time.Time
	seconds   float64
	focus     core.Vec
	anim      Animator

	controls    core.Controls
	jumpBlocked bool
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithClock overrides the time source of the level timer. It takes
// precedence over RuntimeConfig.Clock.
func WithClock(c core.Clock) Option {
	return func(g *Game) {
		g.fixed = c
	}
}

// WithIdentity sets the registry ID and title, for rule variants.
func WithIdentity(id, title string) Option {
	return func(g *Game) {
		g.id = id
		g.title = title
	}
}

// New creates a game for lvl. A zero config selects the default tuning,
// and a level without an ID selects the bundled default level.
func New(lvl level.Level, cfg config.PlatformerConfig, opts ...Option) *Game {
	if cfg == (config.PlatformerConfig{}) {
		cfg = config.DefaultPlatformerConfig()
	}

	g := &Game{
		id:     ID,
		title:  "Platformer",
		cfg:    cfg,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}

	if lvl.ID == "" {
		def, err := level.Default()
		if err != nil {
			g.logger.Error("loading default level", "err", err)
		}
		lvl = def
	}
	g.lvl = lvl
	g.sprites = NewCatalog(g.logger)
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Level returns the level being played.
func (g *Game) Level() level.Level {
	return g.lvl
}

// Config returns the tuning in use.
func (g *Game) Config() config.PlatformerConfig {
	return g.cfg
}

// Reset rebuilds the level entities and starts a new run. The first Step
// performs the restart itself.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.clock = g.fixed
	if g.clock == nil {
		g.clock = rc.ClockOrSystem()
	}

	spawn := Pose{X: g.lvl.Spawn.X, Y: g.lvl.Spawn.Y}
	if g.lvl.Spawn.FacingLeft {
		spawn.Facing = FacingLeft
	}
	g.player = NewPlayer(spawn, g.cfg)

	g.platforms = make([]Platform, 0, len(g.lvl.Platforms))
	for _, def := range g.lvl.Platforms {
		g.platforms = append(g.platforms, NewPlatform(def))
	}
	g.coins = make([]Coin, 0, len(g.lvl.Coins))
	for _, def := range g.lvl.Coins {
		g.coins = append(g.coins, NewCoin(def, g.cfg.Items.CoinMargin))
	}
	g.hazards = make([]Hazard, 0, len(g.lvl.Hazards))
	for _, def := range g.lvl.Hazards {
		g.hazards = append(g.hazards, NewHazard(def))
	}
	g.goals = make([]Goal, 0, len(g.lvl.Goals))
	for _, def := range g.lvl.Goals {
		g.goals = append(g.goals, NewGoal(def, g.cfg.Items.GoalPoleWidth))
	}

	g.phase = PhaseRestart
	g.tick = 0
	g.collected = 0
	g.seconds = 0
	g.focus = g.player.Center()
	g.controls = core.Controls{}
	g.jumpBlocked = false
	g.anim.Reset(len(g.coins))

	g.logger.Debug("level loaded", "level", g.lvl.ID, "platforms", len(g.platforms),
		"coins", len(g.coins), "hazards", len(g.hazards), "goals", len(g.goals))
}

// Step advances the game by one tick: phase dispatch, then animation.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.controls = in.Controls()
	if g.jumpBlocked && !g.controls.Jump {
		g.jumpBlocked = false
	}

	g.dispatch()
	g.anim.Advance(g.player, g.coins)

	return core.StepResult{State: g.State()}
}

// clearJump ignores the jump control until it has been seen released, so
// only a new press counts.
func (g *Game) clearJump() {
	g.jumpBlocked = true
}

func (g *Game) jumpPressed() bool {
	return g.controls.Jump && !g.jumpBlocked
}

// movement returns this tick's controls with the jump gate applied.
func (g *Game) movement() core.Controls {
	c := g.controls
	c.Jump = g.jumpPressed()
	return c
}

// elapsed returns the seconds since the run started, to one decimal.
func (g *Game) elapsed() float64 {
	return core.RoundTo(g.clock.Now().Sub(g.started).Seconds(), 1)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:    g.phase.String(),
		Seconds:  g.seconds,
		GameOver: g.phase.Over(),
		Won:      g.player.Won,
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Player returns the player. Frontends must treat it as read-only.
func (g *Game) Player() *Player {
	return g.player
}

// Coins returns the coins. Frontends must treat them as read-only.
func (g *Game) Coins() []Coin {
	return g.coins
}

// Collected returns how many coins have been taken this run.
func (g *Game) Collected() int {
	return g.collected
}

// Focus returns the point the camera should centre on.
func (g *Game) Focus() core.Vec {
	return g.focus
}

// Bounds returns the level limits for camera clamping.
func (g *Game) Bounds() level.Bounds {
	return g.lvl.Bounds
}

// Sprites returns the sprite catalog shared by the frontends.
func (g *Game) Sprites() *Catalog {
	return g.sprites
}
