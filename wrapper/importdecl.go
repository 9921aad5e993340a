package wrapper

import (
	"github.com/prettyjs/jsfmt/ast"
	"github.com/prettyjs/jsfmt/layout"
)

func init() {
	registerWrap("ImportDeclaration", wrapImport, noWrapImport)
}

// namedSpecifiers returns node's specifier list with any leading
// default/namespace specifier dropped, per spec §4.5 ("ignoring a leading
// default/namespace specifier").
func namedSpecifiers(node *ast.Node) []*ast.Node {
	specs := node.Children("specifiers")

	for i, s := range specs {
		if s.Kind == "ImportSpecifier" {
			return specs[i:]
		}
	}

	return nil
}

// wrapImport implements spec §4.5's import-declaration wrap strategy.
func wrapImport(l *layout.Layout, node *ast.Node) {
	named := namedSpecifiers(node)
	if len(named) == 0 {
		return
	}

	opener, ok := l.FindNext("{", node)
	if !ok {
		return
	}

	closer, ok := l.FindNext("}", named[len(named)-1])
	if !ok {
		return
	}

	base := l.GetIndentLevel(l.FirstToken(node))
	level := base + 1

	l.LineBreakAfter(opener)
	l.LineBreakBefore(closer)

	for i, spec := range named {
		if i == len(named)-1 {
			continue
		}

		l.CommaAfter(spec)
		breakAfterElement(l, spec)
	}

	l.IndentLevelBetween(opener, closer, level)
	l.IndentLevel(closer, base)
}

// noWrapImport implements spec §4.5's import-declaration noWrap strategy.
func noWrapImport(l *layout.Layout, node *ast.Node) {
	named := namedSpecifiers(node)
	if len(named) == 0 {
		return
	}

	opener, ok := l.FindNext("{", node)
	if !ok {
		return
	}

	closer, ok := l.FindNext("}", named[len(named)-1])
	if !ok {
		return
	}

	l.NoLineBreakAfter(opener)
	l.NoLineBreakBefore(closer)
	l.SpaceAfter(opener)
	l.SpaceBefore(closer)

	for _, spec := range named {
		comma, ok := l.NextToken(spec)
		if !ok || comma.Value() != "," {
			continue
		}

		l.NoLineBreakAfter(comma)
		l.NoSpaceBefore(comma)
		l.SpaceAfter(comma)
	}
}
