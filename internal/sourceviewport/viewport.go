// Package sourceviewport provides a scrollable Bubble Tea viewport for
// already-rendered (ANSI-styled) source text.
package sourceviewport

import (
	"cmp"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	tea "charm.land/bubbletea/v2"

	"github.com/prettyjs/jsfmt/internal/colors"
)

const defaultHorizontalStep = 6

// Option is a configuration option that works in conjunction with [New].
type Option func(*Model)

// WithStyle sets the container style for the viewport.
//
//nolint:gocritic // hugeParam: Copying.
func WithStyle(s lipgloss.Style) Option {
	return func(m *Model) { m.Style = s }
}

// WithHighlightStyle sets the style applied to the line set by
// [Model.SetHighlightLine].
//
//nolint:gocritic // hugeParam: Copying.
func WithHighlightStyle(s lipgloss.Style) Option {
	return func(m *Model) { m.HighlightStyle = s }
}

// New returns a new model with the given options.
func New(opts ...Option) Model {
	var m Model

	for _, opt := range opts {
		opt(&m)
	}

	m.setInitialValues()

	return m
}

// Model is the Bubble Tea model for the source viewport.
//
//nolint:recvcheck // tea.Model requires value receivers for Init, Update, View.
type Model struct {
	Style            lipgloss.Style
	HighlightStyle   lipgloss.Style
	KeyMap           KeyMap
	lines            []string
	xOffset          int
	horizontalStep   int
	MouseWheelDelta  int
	width            int
	yOffset          int
	longestLineWidth int
	height           int
	highlightLine    int
	FillHeight       bool
	MouseWheelEnabled bool
	initialized      bool
}

func (m *Model) setInitialValues() {
	m.KeyMap = DefaultKeyMap()
	m.MouseWheelEnabled = true
	m.MouseWheelDelta = 3
	m.horizontalStep = defaultHorizontalStep
	m.highlightLine = -1
	m.initialized = true
}

// Init satisfies the [tea.Model] interface.
//
//nolint:gocritic // hugeParam: required by tea.Model interface.
func (m Model) Init() tea.Cmd {
	return nil
}

// Height returns the height of the viewport.
func (m *Model) Height() int { return m.height }

// SetHeight sets the height of the viewport.
func (m *Model) SetHeight(h int) { m.height = h }

// Width returns the width of the viewport.
func (m *Model) Width() int { return m.width }

// SetWidth sets the width of the viewport.
func (m *Model) SetWidth(w int) { m.width = w }

// SetContent replaces the displayed content. The Y offset is clamped to the
// new content's bounds; it is not reset, so reformatting in place (e.g.
// toggling raw/formatted view) keeps the reader's scroll position.
func (m *Model) SetContent(content string) {
	m.lines = strings.Split(content, "\n")
	m.longestLineWidth = maxLineWidth(m.lines)
	m.SetYOffset(m.yOffset)
}

// SetHighlightLine highlights the given 0-indexed line with [Model.HighlightStyle].
// Pass a negative index to clear the highlight.
func (m *Model) SetHighlightLine(n int) {
	m.highlightLine = n
}

// AtTop returns whether the viewport is at the top.
func (m *Model) AtTop() bool { return m.YOffset() <= 0 }

// AtBottom returns whether the viewport is at or past the bottom.
func (m *Model) AtBottom() bool { return m.YOffset() >= m.maxYOffset() }

// PastBottom returns whether the viewport is scrolled past the last line.
func (m *Model) PastBottom() bool { return m.YOffset() > m.maxYOffset() }

// ScrollPercent returns the vertical scroll position as a float between 0 and 1.
func (m *Model) ScrollPercent() float64 {
	total := len(m.lines)
	if m.maxHeight() >= total {
		return 1.0
	}

	y := float64(m.YOffset())
	h := float64(m.maxHeight())
	t := float64(total)

	return clamp(y/(t-h), 0, 1)
}

func (m *Model) maxYOffset() int { return max(0, len(m.lines)-m.maxHeight()) }
func (m *Model) maxXOffset() int { return max(0, m.longestLineWidth-m.maxWidth()) }
func (m *Model) maxWidth() int   { return max(0, m.Width()-m.Style.GetHorizontalFrameSize()) }
func (m *Model) maxHeight() int  { return max(0, m.Height()-m.Style.GetVerticalFrameSize()) }

// visibleLines returns the lines currently visible in the viewport, with
// horizontal scrolling and the highlighted line (if any) applied.
func (m *Model) visibleLines() []string {
	maxHeight := m.maxHeight()
	maxWidth := m.maxWidth()

	if maxHeight == 0 || maxWidth == 0 {
		return nil
	}

	total := len(m.lines)
	if total == 0 {
		if m.FillHeight {
			return make([]string, maxHeight)
		}

		return nil
	}

	start := m.YOffset()
	end := min(start+maxHeight, total)

	capacity := end - start
	if m.FillHeight && capacity < maxHeight {
		capacity = maxHeight
	}

	lines := make([]string, capacity)
	copy(lines, m.lines[start:end])

	for i := range lines {
		if m.xOffset > 0 || m.longestLineWidth > maxWidth {
			lines[i] = ansi.Cut(lines[i], m.xOffset, m.xOffset+maxWidth)
		}

		if start+i == m.highlightLine {
			lines[i] = m.renderHighlighted(lines[i])
		}
	}

	return lines
}

// renderHighlighted wraps an already-styled line in HighlightStyle. The
// style it renders with is [colors.OverrideStyles] of HighlightStyle over an
// empty base style; the line's own style is not read, and the ANSI
// sequences already inside the line are left in place.
func (m *Model) renderHighlighted(line string) string {
	base := lipgloss.NewStyle()
	merged := colors.OverrideStyles(&base, &m.HighlightStyle)

	return merged.Render(line)
}

// SetYOffset sets the Y offset.
func (m *Model) SetYOffset(n int) { m.yOffset = clamp(n, 0, m.maxYOffset()) }

// YOffset returns the current Y offset.
func (m *Model) YOffset() int { return m.yOffset }

// SetXOffset sets the X offset.
func (m *Model) SetXOffset(n int) { m.xOffset = clamp(n, 0, m.maxXOffset()) }

// XOffset returns the current X offset.
func (m *Model) XOffset() int { return m.xOffset }

// ScrollDown moves the view down by n lines.
func (m *Model) ScrollDown(n int) {
	if m.AtBottom() || n == 0 || len(m.lines) == 0 {
		return
	}

	m.SetYOffset(m.YOffset() + n)
}

// ScrollUp moves the view up by n lines.
func (m *Model) ScrollUp(n int) {
	if m.AtTop() || n == 0 || len(m.lines) == 0 {
		return
	}

	m.SetYOffset(m.YOffset() - n)
}

// PageDown moves the view down by one page.
func (m *Model) PageDown() {
	if m.AtBottom() {
		return
	}

	m.ScrollDown(m.maxHeight())
}

// PageUp moves the view up by one page.
func (m *Model) PageUp() {
	if m.AtTop() {
		return
	}

	m.ScrollUp(m.maxHeight())
}

// HalfPageDown moves the view down by half a page.
func (m *Model) HalfPageDown() {
	if m.AtBottom() {
		return
	}

	m.ScrollDown(m.maxHeight() / 2) //nolint:mnd // Half page.
}

// HalfPageUp moves the view up by half a page.
func (m *Model) HalfPageUp() {
	if m.AtTop() {
		return
	}

	m.ScrollUp(m.maxHeight() / 2) //nolint:mnd // Half page.
}

// ScrollLeft moves the viewport left by n columns.
func (m *Model) ScrollLeft(n int) { m.SetXOffset(m.xOffset - n) }

// ScrollRight moves the viewport right by n columns.
func (m *Model) ScrollRight(n int) { m.SetXOffset(m.xOffset + n) }

// SetHorizontalStep sets the horizontal scroll step size.
func (m *Model) SetHorizontalStep(n int) { m.horizontalStep = max(0, n) }

// GotoTop scrolls to the top.
func (m *Model) GotoTop() {
	if m.AtTop() {
		return
	}

	m.SetYOffset(0)
}

// GotoBottom scrolls to the bottom.
func (m *Model) GotoBottom() { m.SetYOffset(m.maxYOffset()) }

// TotalLineCount returns the total number of lines.
func (m *Model) TotalLineCount() int { return len(m.lines) }

// VisibleLineCount returns the number of visible lines.
func (m *Model) VisibleLineCount() int { return len(m.visibleLines()) }

// Update handles messages.
//
//nolint:gocritic // hugeParam: required for tea.Model interface compatibility.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.initialized {
		m.setInitialValues()
	}

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, m.KeyMap.PageDown):
			m.PageDown()
		case key.Matches(msg, m.KeyMap.PageUp):
			m.PageUp()
		case key.Matches(msg, m.KeyMap.HalfPageDown):
			m.HalfPageDown()
		case key.Matches(msg, m.KeyMap.HalfPageUp):
			m.HalfPageUp()
		case key.Matches(msg, m.KeyMap.Down):
			m.ScrollDown(1)
		case key.Matches(msg, m.KeyMap.Up):
			m.ScrollUp(1)
		case key.Matches(msg, m.KeyMap.Left):
			m.ScrollLeft(m.horizontalStep)
		case key.Matches(msg, m.KeyMap.Right):
			m.ScrollRight(m.horizontalStep)
		case key.Matches(msg, m.KeyMap.GotoTop):
			m.GotoTop()
		case key.Matches(msg, m.KeyMap.GotoBottom):
			m.GotoBottom()
		}

	case tea.MouseWheelMsg:
		if !m.MouseWheelEnabled {
			break
		}

		switch msg.Button {
		case tea.MouseWheelDown:
			if msg.Mod.Contains(tea.ModShift) {
				m.ScrollRight(m.horizontalStep)
				break
			}

			m.ScrollDown(m.MouseWheelDelta)

		case tea.MouseWheelUp:
			if msg.Mod.Contains(tea.ModShift) {
				m.ScrollLeft(m.horizontalStep)
				break
			}

			m.ScrollUp(m.MouseWheelDelta)

		case tea.MouseWheelLeft:
			m.ScrollLeft(m.horizontalStep)
		case tea.MouseWheelRight:
			m.ScrollRight(m.horizontalStep)
		}
	}

	return m, nil
}

// getViewDimensions returns (width, height, ok).
// If ok is false, the viewport has zero dimensions and should not render.
func (m *Model) getViewDimensions() (int, int, bool) {
	w, h := m.Width(), m.Height()
	if sw := m.Style.GetWidth(); sw != 0 {
		w = min(w, sw)
	}

	if sh := m.Style.GetHeight(); sh != 0 {
		h = min(h, sh)
	}

	if w == 0 || h == 0 {
		return 0, 0, false
	}

	contentW := w - m.Style.GetHorizontalFrameSize()
	contentH := h - m.Style.GetVerticalFrameSize()

	return contentW, contentH, true
}

// View renders the viewport.
//
//nolint:gocritic // hugeParam: required for tea.Model interface compatibility.
func (m Model) View() string {
	w, h, ok := m.getViewDimensions()
	if !ok {
		return ""
	}

	content := m.Style.
		UnsetWidth().UnsetHeight().
		Render(
			lipgloss.NewStyle().Width(w).Height(h).Render(strings.Join(m.visibleLines(), "\n")),
		)

	return content
}

func clamp[T cmp.Ordered](v, low, high T) T {
	if high < low {
		low, high = high, low
	}

	return min(high, max(low, v))
}

func maxLineWidth(lines []string) int {
	result := 0
	for _, line := range lines {
		result = max(result, ansi.StringWidth(line))
	}

	return result
}
