package format

import (
	"github.com/prettyjs/jsfmt/ast"
	"github.com/prettyjs/jsfmt/layout"
	"github.com/prettyjs/jsfmt/options"
	"github.com/prettyjs/jsfmt/rules"
	"github.com/prettyjs/jsfmt/stream"
	"github.com/prettyjs/jsfmt/visitor"
	"github.com/prettyjs/jsfmt/wrapper"
)

// Context is passed to every caller-supplied [Task] (spec §6's "Passes...
// each a factory (context) → handlers with context = { ast, text, layout,
// filePath }").
type Context struct {
	AST      *ast.Result
	Text     string
	Layout   *layout.Layout
	FilePath string
}

// Task is a caller-supplied style-rule pass factory, run after the
// intrinsic wrap/semicolons/spaces passes (spec §4.7).
type Task func(ctx *Context) visitor.HandlerMap

// parseOptions are the parse flags spec §4.7/§6 requires be requested of
// the configured [ast.Parser] on every call.
var parseOptions = ast.ParseOptions{
	Comment:      true,
	Tokens:       true,
	Range:        true,
	Loc:          true,
	SourceType:   "module",
	JSX:          true,
	GlobalReturn: true,
}

// Formatter is the module's single entrypoint (spec §4.7): a configured
// parser, style [options.Options], and an ordered list of caller [Task]s
// layered on top of the intrinsic wrap, semicolons, and spaces passes.
//
// Create instances with [New].
type Formatter struct {
	parser ast.Parser
	opts   options.Options
	tasks  []Task
}

// New constructs a [*Formatter]. opts is validated by the caller (e.g. via
// [options.New]) before reaching here; New itself never returns an error,
// matching spec §7's "OptionError... raised at Formatter construction" via
// the options package rather than this one.
func New(parser ast.Parser, opts options.Options, tasks ...Task) *Formatter {
	return &Formatter{parser: parser, opts: opts, tasks: tasks}
}

// Format parses text, lays it out, runs every pass, and serializes the
// result back to text. filePath is optional context threaded through to
// caller tasks and into any [ParseError]; pass "" when formatting text with
// no backing file.
func (f *Formatter) Format(text, filePath string) (string, error) {
	res, err := f.parser.Parse(text, parseOptions)
	if err != nil {
		return "", &ParseError{FilePath: filePath, Err: err}
	}

	tl := stream.Build(res, text, f.opts)
	l := layout.New(tl, res.Root, res.VisitorKeys, f.opts)

	wrap, noWrap := wrapper.Catalog()
	l.SetWrapCatalog(wrap, noWrap)

	// Passes run in spec §4.4's fixed order: (a) punctuator spacing
	// normalization, (b) wrap, (c) semicolons, (d) spaces. Punctuator
	// spacing must come first because wrap's line-length measurements
	// (layout.IsLineTooLong/GetLineLength) read whatever spacing already
	// exists in the stream; running it after wrap would let a line that
	// only overflows once "," and "=" get their mandatory spaces slip
	// past the wrap decision unmeasured.
	rules.SpacesLinearScan(l)
	visitor.NewTaskVisitor(res.VisitorKeys, l, rules.Wrap).Run(res.Root)
	visitor.NewTaskVisitor(res.VisitorKeys, l, rules.Semicolons).Run(res.Root)
	visitor.NewTaskVisitor(res.VisitorKeys, l, rules.Spaces).Run(res.Root)

	ctx := &Context{AST: res, Text: text, Layout: l, FilePath: filePath}

	for _, task := range f.tasks {
		visitor.NewTaskVisitor(res.VisitorKeys, l, func(*layout.Layout) visitor.HandlerMap {
			return task(ctx)
		}).Run(res.Root)
	}

	return tl.Serialize(), nil
}
