package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wumpus/grid"
)

// ErrEmptyPath indicates Load was called with an empty file path.
var ErrEmptyPath = errors.New("config: world file path is empty")

// World is the on-disk representation of a world (§6): an initial arrow
// count and a row-major grid of label strings.
type World struct {
	Arrows int        `yaml:"arrows"`
	Grid   [][]string `yaml:"grid"`
}

var labelByName = map[string]grid.Label{
	"empty":  grid.Empty,
	"pit":    grid.Pit,
	"wumpus": grid.Wumpus,
	"gold":   grid.Gold,
	"arrow":  grid.Arrow,
}

// Load reads and parses a world YAML file at path, returning the
// constructed grid and the initial arrow count.
//
// Expected format:
//
//	arrows: 1
//	grid:
//	  - [empty, wumpus, gold, empty]
//	  - [empty, empty,  empty, empty]
//	  - [empty, empty,  empty, empty]
//	  - [empty, empty,  empty, empty]
func Load(path string) (*grid.Grid, int, error) {
	if path == "" {
		return nil, 0, ErrEmptyPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("config: failed to read world file: %w", err)
	}

	var w World
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, 0, fmt.Errorf("config: failed to parse world file: %w", err)
	}

	labels, err := toLabels(w.Grid)
	if err != nil {
		return nil, 0, err
	}

	g, err := grid.NewGrid(labels)
	if err != nil {
		return nil, 0, err
	}

	return g, w.Arrows, nil
}

// toLabels converts the YAML string grid into grid.Label values.
func toLabels(rows [][]string) ([][]grid.Label, error) {
	out := make([][]grid.Label, len(rows))
	for i, row := range rows {
		out[i] = make([]grid.Label, len(row))
		for j, name := range row {
			label, ok := labelByName[name]
			if !ok {
				return nil, fmt.Errorf("config: unknown label %q at (%d,%d)", name, i, j)
			}
			out[i][j] = label
		}
	}

	return out, nil
}
