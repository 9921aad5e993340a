// Package fixture loads the three-section test-fixture file format spec §6
// defines: a JSON options block, an input source, and the expected output,
// each separated by a line consisting solely of "---". Grounded on the
// teacher's internal/yamltest conventions (dedent-friendly heredoc inputs,
// line-ending-normalized expectations), adapted from YAML token fixtures to
// format-in/format-out pairs.
package fixture

import (
	"fmt"
	"os"
	"strings"

	"github.com/prettyjs/jsfmt/internal/filepaths"
	"github.com/prettyjs/jsfmt/options"
)

// delimiter is the line that separates a fixture's three sections.
const delimiter = "---"

// Case is one parsed fixture.
type Case struct {
	// Path is the source file this case was loaded from, "" if built from
	// raw text via [Parse].
	Path string
	// Options is the style configuration decoded from the fixture's first
	// section, or [options.Default] if that section is empty.
	Options options.Options
	// Input is the source text to format.
	Input string
	// Expected is the output Format(Input) should produce.
	Expected string
}

// Load reads path and parses it as a [Case].
func Load(path string) (*Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: read %s: %w", path, err)
	}

	c, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("fixture: parse %s: %w", path, err)
	}

	c.Path = path

	return c, nil
}

// LoadGlob expands pattern (doublestar syntax, via
// [github.com/prettyjs/jsfmt/internal/filepaths.Glob]) and loads every
// matching file as a [Case], in sorted path order.
func LoadGlob(pattern string) ([]*Case, error) {
	paths, err := filepaths.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}

	cases := make([]*Case, 0, len(paths))

	for _, path := range paths {
		c, err := Load(path)
		if err != nil {
			return nil, err
		}

		cases = append(cases, c)
	}

	return cases, nil
}

// Parse splits raw into its three "---"-delimited sections (spec §6),
// normalizes line endings to "\n", trims each section, and decodes the
// first section as a JSON [options.Options] document (an empty section
// decodes to [options.Default]).
func Parse(raw string) (*Case, error) {
	normalized := strings.ReplaceAll(raw, "\r\n", "\n")

	sections := splitSections(normalized)
	if len(sections) != 3 {
		return nil, fmt.Errorf("fixture: expected 3 sections separated by %q lines, got %d", delimiter, len(sections))
	}

	optsJSON := strings.TrimSpace(sections[0])

	opts := options.Default()
	if optsJSON != "" {
		var err error

		opts, err = options.LoadBytes([]byte(optsJSON), ".json")
		if err != nil {
			return nil, fmt.Errorf("fixture: options: %w", err)
		}
	}

	return &Case{
		Options:  opts,
		Input:    strings.TrimSpace(sections[1]),
		Expected: strings.TrimSpace(sections[2]),
	}, nil
}

// splitSections splits text on lines consisting solely of [delimiter].
func splitSections(text string) []string {
	lines := strings.Split(text, "\n")

	var (
		sections []string
		current  strings.Builder
	)

	for _, line := range lines {
		if line == delimiter {
			sections = append(sections, current.String())
			current.Reset()

			continue
		}

		current.WriteString(line)
		current.WriteByte('\n')
	}

	sections = append(sections, current.String())

	return sections
}
