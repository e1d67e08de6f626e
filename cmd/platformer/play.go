package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
)

var playFlags gameFlags

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the platformer in the terminal.

Without --level a level picker is shown first. Esc during a level returns
to the picker.

Controls:
  A/Left        - Run left
  D/Right       - Run right
  W/Space/Up    - Jump (hold for a higher jump)
  Esc           - Back to the level picker
  Ctrl+S        - Save a screenshot
  Q/Ctrl+C      - Quit

Difficulty options:
  easy    - 5 lives, longer recovery, no fall death
  normal  - Tuning as configured
  hard    - 2 lives, short recovery, falling off the world kills

Examples:
  platformer play
  platformer play --level meadow
  platformer play --difficulty hard
  platformer play --levels-dir ./levels --level mine
  platformer play --config ./my-tuning.yaml --log-file debug.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playFlags.register(playCmd)
}

func runPlay(_ *cobra.Command, _ []string) {
	// The terminal UI owns the screen, so logs are dropped unless --log-file is set.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fail(err)
	}
	defer closeLog()

	if err := playFlags.checkVariant(); err != nil {
		fail(err)
	}
	tuning, err := playFlags.tuning()
	if err != nil {
		fail(err)
	}
	levels, err := level.Available(playFlags.levelsDir)
	if err != nil {
		fail(err)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	levelID := playFlags.level
	pick := levelID == ""
	if levelID == "" {
		levelID = level.DefaultID
	}

	for {
		if pick {
			res, err := tui.RunMenu(levels, levelID, cfg)
			if err != nil {
				fail(err)
			}
			if res.Quit {
				return
			}
			cfg = res.Config
			levelID = res.LevelID
		}

		lvl, err := findLevel(levels, levelID)
		if err != nil {
			fail(err)
		}
		game, err := playFlags.create(lvl, tuning, logger)
		if err != nil {
			fail(err)
		}

		logger.Info("level started", "level", lvl.ID, "variant", game.ID())
		res, err := tui.Run(game, cfg, tuning.Input.HoldTicks, logger)
		if err != nil {
			fail(err)
		}
		logger.Info("level left", "level", lvl.ID, "phase", res.State.Phase, "seconds", res.State.Seconds)

		if !res.Back {
			return
		}
		pick = true
	}
}
