package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/level"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check level files",
	Long: `Parses and validates each level file and reports every problem found.
Exits with status 1 if any file is invalid.

Examples:
  platformer validate ./levels/mine.yaml
  platformer validate ./levels/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	Run:  runValidate,
}

func runValidate(_ *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fail(err)
	}
	defer closeLog()

	failed := 0
	for _, path := range args {
		lvl, err := level.NewLoader(filepath.Dir(path)).LoadFile(path)
		if err != nil {
			failed++
			var verr level.ValidationError
			if errors.As(err, &verr) {
				fmt.Printf("FAIL  %s: [%s] %s\n", path, verr.Code, verr.Message)
			} else {
				fmt.Printf("FAIL  %s: %v\n", path, err)
			}
			continue
		}
		logger.Debug("level ok", "path", path, "id", lvl.ID)
		fmt.Printf("ok    %s (%s: %s)\n", path, lvl.ID, lvl.Summary())
	}

	if failed > 0 {
		fail(fmt.Errorf("%d of %d level files invalid", failed, len(args)))
	}
}
