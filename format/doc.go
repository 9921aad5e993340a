// Package format assembles the pieces the rest of this module builds
// ([github.com/prettyjs/jsfmt/jsparser], [github.com/prettyjs/jsfmt/stream],
// [github.com/prettyjs/jsfmt/layout], [github.com/prettyjs/jsfmt/wrapper],
// [github.com/prettyjs/jsfmt/rules]) into the single entrypoint spec §4.7
// describes: parse, build the token stream, lay out boundaries, run the
// intrinsic wrap/semicolons/spaces passes, run any caller-supplied passes,
// then serialize.
package format
