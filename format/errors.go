package format

import (
	"fmt"

	"github.com/prettyjs/jsfmt/ast"
	"github.com/prettyjs/jsfmt/parts"
)

// ParseError wraps a failure returned by the configured [ast.Parser] (spec
// §7): fatal for the current [Formatter.Format] call, surfaced unchanged
// beneath it.
type ParseError struct {
	FilePath string
	Err      error
}

func (e *ParseError) Error() string {
	if e.FilePath != "" {
		return fmt.Sprintf("format: parse %s: %v", e.FilePath, e.Err)
	}

	return fmt.Sprintf("format: parse: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// InvariantViolation reports a part-stream or layout invariant broken during
// a pass (spec §7) — e.g. a rewrite anchored on a part or node that
// [github.com/prettyjs/jsfmt/orderedset] no longer considers a member. This
// indicates a bug in a rule or builder, not a malformed input; it is never
// expected during normal operation. Node and Part are whichever of the two
// the failing primitive was anchored on.
type InvariantViolation struct {
	Node *ast.Node
	Part *parts.Part
	Err  error
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("format: invariant violation: %v", e.Err)
}

func (e *InvariantViolation) Unwrap() error { return e.Err }

// UnknownNodeKind is never raised: a node kind absent from the active
// [ast.VisitorKeys] table falls back to unordered generic child iteration
// (see [ast.VisitorKeys.FieldsFor]), and a style-rule pass with no handler
// for that kind is simply skipped. The type exists so callers have
// something to name in documentation and [errors.As] switches even though
// no path in this module constructs one.
type UnknownNodeKind struct {
	Kind string
}

func (e *UnknownNodeKind) Error() string {
	return fmt.Sprintf("format: unknown node kind %q", e.Kind)
}
