// Package sourceviewport implements the scrollable pane behind the jsfmt
// `view` subcommand.
//
// It is a trimmed, single-revision adaptation of the niceyaml project's YAML
// viewport: both keep the same [tea.Model] shape (offsets, page/half-page
// scrolling, mouse wheel support, a [KeyMap]) but this version drops the
// revision history and diff-mode machinery, since cmd/jsfmt's --diff output
// is produced once by internal/diff rather than paged through interactively.
// What it keeps is the viewport's core job: taking already-rendered (ANSI
// styled) text and presenting a scrollable, optionally line-highlighted
// window onto it.
package sourceviewport
