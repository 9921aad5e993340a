// Package rules implements the three style-rule passes of spec §4.6 as
// [github.com/prettyjs/jsfmt/visitor.PassFactory] values over
// [*github.com/prettyjs/jsfmt/layout.Layout]: semicolons, spaces, and the
// multi-line/wrap decision. Each factory takes the shared Layout and
// returns a [github.com/prettyjs/jsfmt/visitor.HandlerMap] keyed by node
// kind; a caller composes them with
// [github.com/prettyjs/jsfmt/visitor.NewTaskVisitor] in the fixed order
// spec §4.6 requires (wrap/unwrap, then semicolons and spaces, which
// commute).
package rules
