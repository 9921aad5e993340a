package jsparser

import "github.com/prettyjs/jsfmt/ast"

// VisitorKeys is the canonical child-field table for every node kind this
// package produces, in source-visitation order (spec.md §4.3's
// ast.VisitorKeys contract).
var VisitorKeys = ast.VisitorKeys{
	"Program":   {"body"},
	"BlockStatement": {"body"},

	"ExpressionStatement":  {"expression"},
	"ReturnStatement":      {"argument"},
	"ThrowStatement":       {"argument"},
	"BreakStatement":       {"label"},
	"ContinueStatement":    {"label"},
	"DebuggerStatement":    {},
	"EmptyStatement":       {},

	"VariableDeclaration": {"declarations"},
	"VariableDeclarator":  {"id", "init"},

	"IfStatement":     {"test", "consequent", "alternate"},
	"WhileStatement":  {"test", "body"},
	"DoWhileStatement": {"body", "test"},
	"ForStatement":    {"init", "test", "update", "body"},
	"ForInStatement":  {"left", "right", "body"},
	"ForOfStatement":  {"left", "right", "body"},

	"TryStatement": {"block", "handler", "finalizer"},
	"CatchClause":  {"param", "body"},

	"SwitchStatement": {"discriminant", "cases"},
	"SwitchCase":      {"test", "consequent"},

	"FunctionDeclaration":     {"id", "params", "body"},
	"FunctionExpression":      {"id", "params", "body"},
	"ArrowFunctionExpression": {"params", "body"},

	"ClassDeclaration": {"id", "superClass", "body"},
	"ClassBody":        {"body"},
	"MethodDefinition": {"key", "value"},

	"ImportDeclaration":       {"specifiers", "source"},
	"ImportDefaultSpecifier":  {"local"},
	"ImportNamespaceSpecifier": {"local"},
	"ImportSpecifier":         {"imported", "local"},
	"ExportNamedDeclaration":  {"declaration", "specifiers", "source"},
	"ExportDefaultDeclaration": {"declaration"},
	"ExportAllDeclaration":    {"source"},
	"ExportSpecifier":         {"local", "exported"},

	"Identifier":  {},
	"Literal":     {},
	"ThisExpression": {},
	"Super":       {},

	"TemplateLiteral": {"expressions"},

	"ArrayExpression":  {"elements"},
	"ObjectExpression": {"properties"},
	"Property":         {"key", "value"},
	"SpreadElement":    {"argument"},
	"RestElement":      {"argument"},

	"ArrayPattern":  {"elements"},
	"ObjectPattern": {"properties"},

	"SequenceExpression":   {"expressions"},
	"AssignmentExpression": {"left", "right"},
	"ConditionalExpression": {"test", "consequent", "alternate"},
	"LogicalExpression":    {"left", "right"},
	"BinaryExpression":     {"left", "right"},
	"UnaryExpression":      {"argument"},
	"UpdateExpression":     {"argument"},
	"MemberExpression":     {"object", "property"},
	"CallExpression":       {"callee", "arguments"},
	"NewExpression":        {"callee", "arguments"},
}
