package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prettyjs/jsfmt/ast"
	"github.com/prettyjs/jsfmt/format"
	"github.com/prettyjs/jsfmt/jsparser"
	"github.com/prettyjs/jsfmt/options"
	"github.com/prettyjs/jsfmt/visitor"
)

func TestFormatInsertsSemicolonsAndSpaces(t *testing.T) {
	t.Parallel()

	opts, err := options.New()
	require.NoError(t, err)

	f := format.New(jsparser.New(), opts)

	out, err := f.Format("let x=1+2", "")
	require.NoError(t, err)
	assert.Equal(t, "let x = 1 + 2;", out)
}

func TestFormatRemovesSemicolonsWhenConfigured(t *testing.T) {
	t.Parallel()

	opts, err := options.New(options.WithSemicolons(false))
	require.NoError(t, err)

	f := format.New(jsparser.New(), opts)

	out, err := f.Format("const x = 1;", "")
	require.NoError(t, err)
	assert.Equal(t, "const x = 1", out)
}

func TestFormatWrapsOverlongArray(t *testing.T) {
	t.Parallel()

	opts, err := options.New(options.WithMaxLineLength(10))
	require.NoError(t, err)

	f := format.New(jsparser.New(), opts)

	out, err := f.Format("const a = [1, 2, 3];", "")
	require.NoError(t, err)
	assert.Contains(t, out, "\n")
}

func TestFormatWrapsUnspacedInputMeasuredAfterSpacing(t *testing.T) {
	t.Parallel()

	opts, err := options.New(options.WithMaxLineLength(20))
	require.NoError(t, err)

	f := format.New(jsparser.New(), opts)

	// Raw (unspaced) this fits in 20 columns, but only after
	// SpacesLinearScan adds the mandatory spacing around "=" and after
	// "," does it become "const xs = [1, 2, 3, 4];" at 24 columns, which
	// must wrap.
	out, err := f.Format("const xs=[1,2,3,4];", "")
	require.NoError(t, err)
	assert.Contains(t, out, "\n")
}

func TestFormatReturnsParseError(t *testing.T) {
	t.Parallel()

	opts, err := options.New()
	require.NoError(t, err)

	f := format.New(jsparser.New(), opts)

	_, err = f.Format("const 1 = ;", "broken.js")
	require.Error(t, err)

	var parseErr *format.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "broken.js", parseErr.FilePath)
}

func TestFormatRunsCallerTask(t *testing.T) {
	t.Parallel()

	opts, err := options.New()
	require.NoError(t, err)

	var seenNames []string

	task := func(ctx *format.Context) visitor.HandlerMap {
		assert.Equal(t, "const x = 1;", ctx.Text)
		assert.Equal(t, "demo.js", ctx.FilePath)

		return visitor.HandlerMap{
			"Identifier": func(node, parent *ast.Node) {
				seenNames = append(seenNames, node.String("name"))
			},
		}
	}

	f := format.New(jsparser.New(), opts, task)

	_, err = f.Format("const x = 1;", "demo.js")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, seenNames)
}
