package main

import (
	"fmt"
	"os"

	cfg "github.com/automoto/jetpack-ascent/config"
	"github.com/automoto/jetpack-ascent/shared/leveldata"
	"github.com/charmbracelet/log"
)

// loadLevels returns the campaign in play order. A --levels directory
// replaces the built-in levels and sets the campaign length.
func loadLevels() ([]*leveldata.Description, []string, error) {
	if flagLevelsDir == "" {
		count := leveldata.BuiltinCount()
		levels := make([]*leveldata.Description, 0, count)
		names := make([]string, 0, count)
		for i := 1; i <= count; i++ {
			desc, err := leveldata.Builtin(i)
			if err != nil {
				return nil, nil, err
			}
			levels = append(levels, desc)
			names = append(names, fmt.Sprintf("level%d", i))
		}
		return levels, names, nil
	}

	byName, names, err := leveldata.LoadAll(os.DirFS(flagLevelsDir), ".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load levels from %s: %w", flagLevelsDir, err)
	}
	levels := make([]*leveldata.Description, 0, len(names))
	for _, name := range names {
		levels = append(levels, byName[name])
	}
	cfg.World.LevelCount = len(levels)
	log.Info("loaded levels", "dir", flagLevelsDir, "count", len(levels))
	return levels, names, nil
}
