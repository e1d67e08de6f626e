package level

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// DefaultID is the level played when none is chosen.
const DefaultID = "meadow"

//go:embed bundled/*.yaml
var bundledFS embed.FS

// Bundled returns the levels compiled into the binary, sorted by ID.
func Bundled() ([]Level, error) {
	entries, err := fs.ReadDir(bundledFS, "bundled")
	if err != nil {
		return nil, fmt.Errorf("reading bundled levels: %w", err)
	}

	levels := make([]Level, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !isSupportedExtension(strings.ToLower(path.Ext(e.Name()))) {
			continue
		}
		data, err := bundledFS.ReadFile(path.Join("bundled", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading bundled level %s: %w", e.Name(), err)
		}
		lvl, err := ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("parsing bundled level %s: %w", e.Name(), err)
		}
		if err := Validate(lvl); err != nil {
			return nil, fmt.Errorf("bundled level %s: %w", e.Name(), err)
		}
		levels = append(levels, lvl)
	}

	sortByID(levels)
	return levels, nil
}

// Default returns the bundled default level.
func Default() (Level, error) {
	return Find(DefaultID, "")
}
