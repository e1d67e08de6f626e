package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/level"
)

var flagLevelsDir string

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List available levels",
	Long: `Shows the bundled levels and any levels found in --levels-dir.
A level file with the same ID as a bundled level replaces it.

Examples:
  platformer levels
  platformer levels --levels-dir ./levels`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory with extra level files")
}

func runLevels(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fail(err)
	}
	defer closeLog()

	levels, err := level.Available(flagLevelsDir)
	if err != nil {
		fail(err)
	}
	logger.Debug("levels loaded", "count", len(levels), "dir", flagLevelsDir)

	maxIDLen := 2 // "ID" header
	for _, lvl := range levels {
		maxIDLen = max(maxIDLen, len(lvl.ID))
	}

	fmt.Printf("  %-*s  %-10s  %s\n", maxIDLen, "ID", "Source", "Contents")
	fmt.Printf("  %-*s  %-10s  %s\n", maxIDLen, "--", "------", "--------")
	for _, lvl := range levels {
		source := "bundled"
		if lvl.FilePath != "" {
			source = lvl.FilePath
		}
		fmt.Printf("  %-*s  %-10s  %s\n", maxIDLen, lvl.ID, source, lvl.Summary())
	}

	fmt.Println()
	fmt.Println("Run 'platformer play --level <id>' to play a level.")
}
