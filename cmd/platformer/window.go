package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/platform/canvas"
)

var (
	windowFlags gameFlags
	flagScale   float64
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start the platformer in a window drawn with Ebitengine.

The window reads real key state, so held keys behave exactly as in the
browser version.

Controls:
  A/Left        - Run left
  D/Right       - Run right
  W/Space/Up    - Jump (hold for a higher jump)
  F11           - Toggle fullscreen
  Esc/Q         - Quit

Examples:
  platformer window
  platformer window --level tutorial --scale 0.5
  platformer window --variant platformer_hardcore`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowFlags.register(windowCmd)
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to 1280x720")
}

func runWindow(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fail(err)
	}
	defer closeLog()

	if err := windowFlags.checkVariant(); err != nil {
		fail(err)
	}
	if flagScale <= 0 {
		fail(fmt.Errorf("--scale must be positive, got %g", flagScale))
	}
	tuning, err := windowFlags.tuning()
	if err != nil {
		fail(err)
	}
	lvl, err := level.Find(windowFlags.level, windowFlags.levelsDir)
	if err != nil {
		fail(err)
	}
	game, err := windowFlags.create(lvl, tuning, logger)
	if err != nil {
		fail(err)
	}

	scene, ok := game.(canvas.Scene)
	if !ok {
		fail(fmt.Errorf("variant %q cannot be drawn in a window", game.ID()))
	}

	logger.Info("level started", "level", lvl.ID, "variant", game.ID())
	opts := canvas.Options{
		Title: fmt.Sprintf("%s - %s", game.Title(), lvl.Name),
		Scale: flagScale,
		TPS:   flagFPS,
	}
	if err := canvas.Run(scene, opts, logger); err != nil {
		fail(err)
	}
}
