package options_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prettyjs/jsfmt/options"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	o := options.Default()

	assert.Equal(t, "  ", o.Indent.Unit())
	assert.Equal(t, options.Double, o.Quotes)
	assert.True(t, o.Semicolons)
	assert.NoError(t, o.Validate())
}

func TestNewWithOptions(t *testing.T) {
	t.Parallel()

	o, err := options.New(
		options.WithIndent(options.IndentLiteral("\t")),
		options.WithQuotes(options.Single),
		options.WithSemicolons(false),
		options.WithMaxEmptyLines(2),
	)
	require.NoError(t, err)

	assert.Equal(t, "\t", o.Indent.Unit())
	assert.Equal(t, options.Single, o.Quotes)
	assert.False(t, o.Semicolons)
	assert.Equal(t, 2, o.MaxEmptyLines)
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Parallel()

	cases := map[string]options.Option{
		"quotes":        options.WithQuotes("backtick"),
		"tabWidth":      options.WithTabWidth(0),
		"maxEmptyLines": options.WithMaxEmptyLines(-1),
		"maxLineLength": options.WithMaxLineLength(0),
		"lineEndings":   options.WithLineEndings(""),
	}

	for name, opt := range cases {
		opt := opt

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := options.New(opt)
			require.Error(t, err)
			assert.True(t, options.IsOptionError(err))
		})
	}
}

func TestIndentWidthUnit(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "    ", options.IndentWidth(4).Unit())
	assert.Equal(t, "", options.IndentWidth(0).Unit())
}

func TestQuotesChar(t *testing.T) {
	t.Parallel()

	assert.Equal(t, byte('"'), options.Double.Char())
	assert.Equal(t, byte('\''), options.Single.Char())
}
