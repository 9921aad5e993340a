// Package diff provides diff algorithms for comparing sequences, used by
// [github.com/prettyjs/jsfmt/cmd/jsfmt]'s --diff mode and view subcommand to
// compare a file's original text against its formatted text line by line.
package diff

import "github.com/prettyjs/jsfmt/render"

// OpKind represents the kind of diff operation.
type OpKind int

// Diff operation kinds.
const (
	OpEqual OpKind = iota
	OpDelete
	OpInsert
)

// Flag converts the OpKind to the corresponding [render.Flag].
func (k OpKind) Flag() render.Flag {
	switch k {
	case OpDelete:
		return render.FlagDeleted
	case OpInsert:
		return render.FlagInserted
	default:
		return render.FlagDefault
	}
}

// Op represents a diff operation with an index into one of the input sequences.
type Op struct {
	Kind  OpKind
	Index int // Index into before (delete) or after (insert/equal) sequence.
}
