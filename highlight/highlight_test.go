package highlight_test

import (
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prettyjs/jsfmt/ast"
	"github.com/prettyjs/jsfmt/highlight"
	"github.com/prettyjs/jsfmt/parts"
	"github.com/prettyjs/jsfmt/position"
)

func TestNewStylesInheritsUnsetCategories(t *testing.T) {
	t.Parallel()

	base := lipgloss.NewStyle().Foreground(lipgloss.Color("white"))
	number := lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))

	styles := highlight.NewStyles(base,
		highlight.Set(highlight.LiteralNumber, number),
	)

	assert.Equal(t, number, *styles.Style(highlight.LiteralNumber))
	assert.Equal(t, base, *styles.Style(highlight.LiteralString))
	assert.Equal(t, base, *styles.Style(highlight.Text))
}

func TestStylesStyleUndefinedReturnsEmpty(t *testing.T) {
	t.Parallel()

	styles := highlight.Styles{}
	assert.Equal(t, lipgloss.Style{}, *styles.Style(highlight.Comment))
}

func TestClassifyKeywordSubcategories(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		value    string
		expected highlight.Style
	}{
		{"let", highlight.KeywordDeclaration},
		{"function", highlight.KeywordDeclaration},
		{"if", highlight.KeywordControl},
		{"return", highlight.KeywordControl},
		{"typeof", highlight.KeywordOperator},
		{"new", highlight.KeywordOperator},
	}

	for _, tc := range tcs {
		p := parts.NewToken(ast.Keyword, tc.value, nil)
		assert.Equal(t, tc.expected, highlight.Classify(p), "value %q", tc.value)
	}
}

func TestClassifyPunctuatorSubcategories(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		value    string
		expected highlight.Style
	}{
		{"(", highlight.PunctuationBracket},
		{"}", highlight.PunctuationBracket},
		{",", highlight.PunctuationDelimiter},
		{";", highlight.PunctuationDelimiter},
		{"+", highlight.PunctuationOperator},
		{"=>", highlight.PunctuationOperator},
	}

	for _, tc := range tcs {
		p := parts.NewToken(ast.Punctuator, tc.value, nil)
		assert.Equal(t, tc.expected, highlight.Classify(p), "value %q", tc.value)
	}
}

func TestClassifyStringQuoteStyle(t *testing.T) {
	t.Parallel()

	single := parts.NewToken(ast.String, "'hi'", nil)
	double := parts.NewToken(ast.String, `"hi"`, nil)

	assert.Equal(t, highlight.LiteralStringSingle, highlight.Classify(single))
	assert.Equal(t, highlight.LiteralStringDouble, highlight.Classify(double))
}

func TestClassifyComment(t *testing.T) {
	t.Parallel()

	assert.Equal(t, highlight.Comment, highlight.Classify(parts.NewComment(ast.LineComment, "// hi")))
	assert.Equal(t, highlight.Comment, highlight.Classify(parts.NewComment(ast.BlockComment, "/* hi */")))
}

func TestClassifyNodePromotesFunctionName(t *testing.T) {
	t.Parallel()

	node := ast.NewNode("FunctionDeclaration", position.Span{})
	p := parts.NewToken(ast.Identifier, "greet", node)

	assert.Equal(t, highlight.NameFunction, highlight.ClassifyNode(p))
}

func TestClassifyNodeFallsBackWithoutOriginatingNode(t *testing.T) {
	t.Parallel()

	p := parts.NewToken(ast.Identifier, "x", nil)
	assert.Equal(t, highlight.Text, highlight.ClassifyNode(p))
}

func TestListAndTheme(t *testing.T) {
	t.Parallel()

	names := highlight.List(highlight.Dark)
	require.Contains(t, names, "charm")
	require.Contains(t, names, "mono")

	styles, ok := highlight.Theme("charm")
	require.True(t, ok)
	assert.NotEmpty(t, styles)

	_, ok = highlight.Theme("does-not-exist")
	assert.False(t, ok)
}
