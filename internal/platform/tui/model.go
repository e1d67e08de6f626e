package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// helpRows is the number of terminal rows reserved under the game view.
const helpRows = 1

// Model is the Bubble Tea model for running a level.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	latch    *core.KeyLatch
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	state    core.GameState
	quitting bool
	back     bool
}

// NewModel creates a model for the given game. holdTicks sets how long
// a key press stays held; zero selects core.DefaultHoldTicks.
func NewModel(game registry.Game, cfg core.RuntimeConfig, holdTicks int, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpRows, 1)),
		config: cfg,
		latch:  core.NewKeyLatch(holdTicks),
		keys:   DefaultKeyMap(),
		help:   h,
		logger: logger,
	}
}

// Init starts the level and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "?":
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.back = true
		return m, tea.Quit
	default:
		m.latch.Press(action)
	}

	return m, nil
}

// handleResize only resizes the view. The level is independent of the
// terminal size, so a resize never restarts it.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpRows, 1))
	m.help.Width = msg.Width
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.latch.Sample())

	if result.State.Phase != m.state.Phase {
		m.logger.Debug("phase", "from", m.state.Phase, "to", result.State.Phase, "seconds", result.State.Seconds)
	}
	m.state = result.State

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current frame to ~/.platformer/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".platformer", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.state
}

// WantsBack reports whether the player asked to return to the level picker.
func (m Model) WantsBack() bool {
	return m.back
}

// Result describes how a Run ended.
type Result struct {
	Back  bool
	State core.GameState
}

// Run plays the game until the player quits or goes back to the picker.
func Run(game registry.Game, cfg core.RuntimeConfig, holdTicks int, logger *log.Logger) (Result, error) {
	model := NewModel(game, cfg, holdTicks, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return Result{}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return Result{}, nil
	}
	return Result{Back: m.WantsBack(), State: m.State()}, nil
}
