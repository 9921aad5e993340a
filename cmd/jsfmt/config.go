package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prettyjs/jsfmt/options"
)

// configNames are tried, in order, in each candidate directory.
var configNames = []string{".jsfmtrc.yaml", ".jsfmtrc.yml", ".jsfmtrc.json"}

// loadConfig walks up from dir looking for a `.jsfmtrc*` file, returning
// [options.Default] if none is found. The search stops at the first
// filesystem root it reaches.
func loadConfig(dir string) (options.Options, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return options.Options{}, fmt.Errorf("resolve config search root: %w", err)
	}

	for {
		for _, name := range configNames {
			path := filepath.Join(dir, name)

			data, err := os.ReadFile(path) //nolint:gosec // Fixed set of conventional config names.
			if err != nil {
				continue
			}

			opts, err := options.LoadBytes(data, filepath.Ext(path))
			if err != nil {
				return options.Options{}, fmt.Errorf("%s: %w", path, err)
			}

			return opts, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}

		dir = parent
	}

	return options.Default(), nil
}

// loadConfigFor finds the config governing path by searching path's
// directory and its ancestors.
func loadConfigFor(path string) (options.Options, error) {
	return loadConfig(filepath.Dir(path))
}
