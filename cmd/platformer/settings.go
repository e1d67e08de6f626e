package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// gameFlags are shared by play and window.
type gameFlags struct {
	level      string
	levelsDir  string
	config     string
	difficulty string
	variant    string
}

func (f *gameFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.level, "level", "", "Level ID (default: pick from a menu, or meadow in a window)")
	cmd.Flags().StringVar(&f.levelsDir, "levels-dir", "", "Directory with extra level files")
	cmd.Flags().StringVar(&f.config, "config", "", "Path to a custom tuning YAML")
	cmd.Flags().StringVar(&f.difficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	cmd.Flags().StringVar(&f.variant, "variant", platformer.ID, "Game variant (see 'platformer list')")
}

// tuning loads the config file and applies the difficulty preset.
func (f *gameFlags) tuning() (config.PlatformerConfig, error) {
	preset, err := config.ParsePreset(f.difficulty)
	if err != nil {
		return config.PlatformerConfig{}, err
	}

	cfg, err := config.LoadPlatformer(f.config)
	if err != nil {
		return config.PlatformerConfig{}, err
	}
	config.ApplyPlatformerPreset(&cfg, preset)
	return cfg, nil
}

// checkVariant fails early for an unknown --variant.
func (f *gameFlags) checkVariant() error {
	if !registry.Exists(f.variant) {
		return fmt.Errorf("%w %q, run 'platformer list' to see variants", registry.ErrUnknownGame, f.variant)
	}
	return nil
}

// create builds the selected variant on lvl.
func (f *gameFlags) create(lvl level.Level, cfg config.PlatformerConfig, logger *log.Logger) (registry.Game, error) {
	return registry.Create(f.variant, registry.Settings{
		Level:  lvl,
		Config: cfg,
		Logger: logger,
	})
}

// findLevel picks id out of levels.
func findLevel(levels []level.Level, id string) (level.Level, error) {
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return level.Level{}, fmt.Errorf("%w: %s", level.ErrLevelNotFound, id)
}
