package sourceviewport_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prettyjs/jsfmt/internal/sourceviewport"
)

func newTestModel(t *testing.T, content string, width, height int) sourceviewport.Model {
	t.Helper()

	m := sourceviewport.New()
	m.SetWidth(width)
	m.SetHeight(height)
	m.SetContent(content)

	return m
}

func TestSetContentSplitsLines(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "one\ntwo\nthree", 20, 2)
	assert.Equal(t, 3, m.TotalLineCount())
	assert.Equal(t, 2, m.VisibleLineCount())
}

func TestScrollDownAdvancesYOffset(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "a\nb\nc\nd\ne", 20, 2)
	require.True(t, m.AtTop())

	m.ScrollDown(1)
	assert.Equal(t, 1, m.YOffset())
	assert.False(t, m.AtTop())
}

func TestScrollUpStopsAtTop(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "a\nb\nc", 20, 2)
	m.ScrollUp(5)
	assert.Equal(t, 0, m.YOffset())
	assert.True(t, m.AtTop())
}

func TestGotoBottomClampsToMaxOffset(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "a\nb\nc\nd\ne", 20, 2)
	m.GotoBottom()
	assert.True(t, m.AtBottom())
	assert.Equal(t, 3, m.YOffset())
}

func TestScrollPercentReachesOneAtBottom(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "a\nb\nc\nd", 20, 2)
	m.GotoBottom()
	assert.InDelta(t, 1.0, m.ScrollPercent(), 0.001)
}

func TestScrollPercentFullWhenContentFits(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "a\nb", 20, 10)
	assert.InDelta(t, 1.0, m.ScrollPercent(), 0.001)
}

func TestViewRendersVisibleWindow(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "a\nb\nc\nd", 20, 2)
	out := m.View()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "a")
	assert.Contains(t, lines[1], "b")
}

func TestSetHighlightLineStylesRequestedLine(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "plain\nhighlighted", 20, 2)
	m.SetHighlightLine(1)

	out := m.View()
	assert.Contains(t, out, "highlighted")
}

func TestZeroDimensionsRenderEmpty(t *testing.T) {
	t.Parallel()

	m := sourceviewport.New()
	m.SetContent("a\nb")
	assert.Empty(t, m.View())
}
