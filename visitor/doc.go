// Package visitor walks an [ast.Node] tree in source order using an
// externally supplied [ast.VisitorKeys] table, and composes multiple style
// passes ([TaskVisitor]) into a single traversal.
package visitor
