// Package render provides line-oriented decoration for terminal display of
// formatted source: diff markers, gutters, and inline annotations layered
// on top of a line of already-highlighted text.
//
// Grounded on the teacher's line.Annotation/line.Flag concepts; the
// line-splitting machinery those types shipped alongside (line.Lines,
// builder.go) has no job here because this module's [github.com/prettyjs/jsfmt/parts.Part]
// stream already carries an explicit LineBreak part, so grouping rendered
// output by line is a direct split rather than a token-origin reconstruction.
package render

import "strings"

// Flag identifies a category for a rendered line.
type Flag int

// Flag constants for rendered line categories.
const (
	FlagDefault    Flag = iota // Default/fallback.
	FlagInserted               // Lines inserted in a diff (+).
	FlagDeleted                 // Lines deleted in a diff (-).
	FlagAnnotation             // Annotation/header lines (no line number).
)

// Annotation is extra content shown under a line: a caret pointing at a
// column, followed by a message. Used to surface parse errors and similar
// positional diagnostics inline in a rendered view.
type Annotation struct {
	Content string
	Column  int // Optional, 1-indexed column position for the annotation.
}

// String renders the annotation, padded to [Annotation.Column].
func (a Annotation) String() string {
	if a.Content == "" {
		return ""
	}

	padding := strings.Repeat(" ", max(0, a.Column-1))

	return padding + "^ " + a.Content
}

// Line is one rendered line of output: styled content plus its flag and any
// trailing annotations.
type Line struct {
	Content     string
	Annotations []Annotation
	Flag        Flag
	Number      int // 1-indexed source line number; 0 for annotation-only lines.
}

// Gutter prefixes a [Line] with the glyph appropriate to its [Flag].
func Gutter(f Flag) string {
	switch f {
	case FlagInserted:
		return "+ "
	case FlagDeleted:
		return "- "
	case FlagAnnotation:
		return "  "
	default:
		return "  "
	}
}

// Split splits text into [Line] values at "\n" boundaries, numbering lines
// from 1 and tagging every line with flag.
func Split(text string, flag Flag) []Line {
	raw := strings.Split(text, "\n")
	lines := make([]Line, 0, len(raw))

	for i, content := range raw {
		lines = append(lines, Line{Content: content, Flag: flag, Number: i + 1})
	}

	return lines
}
