package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prettyjs/jsfmt/render"
)

func TestAnnotationStringPadsToColumn(t *testing.T) {
	t.Parallel()

	a := render.Annotation{Content: "unexpected token", Column: 5}
	assert.Equal(t, "    ^ unexpected token", a.String())
}

func TestAnnotationStringEmptyContent(t *testing.T) {
	t.Parallel()

	a := render.Annotation{Content: "", Column: 5}
	assert.Equal(t, "", a.String())
}

func TestGutter(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "+ ", render.Gutter(render.FlagInserted))
	assert.Equal(t, "- ", render.Gutter(render.FlagDeleted))
	assert.Equal(t, "  ", render.Gutter(render.FlagDefault))
}

func TestSplitNumbersLines(t *testing.T) {
	t.Parallel()

	lines := render.Split("a\nb\nc", render.FlagInserted)
	require := assert.New(t)

	require.Len(lines, 3)
	require.Equal(1, lines[0].Number)
	require.Equal("b", lines[1].Content)
	require.Equal(render.FlagInserted, lines[2].Flag)
}
