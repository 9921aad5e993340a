package main

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/exp/charmtone"

	tea "charm.land/bubbletea/v2"

	"github.com/prettyjs/jsfmt/ast"
	"github.com/prettyjs/jsfmt/format"
	"github.com/prettyjs/jsfmt/highlight"
	"github.com/prettyjs/jsfmt/internal/ansi"
	"github.com/prettyjs/jsfmt/internal/diff"
	"github.com/prettyjs/jsfmt/internal/sourceviewport"
	"github.com/prettyjs/jsfmt/jsparser"
	"github.com/prettyjs/jsfmt/options"
	"github.com/prettyjs/jsfmt/render"
	"github.com/prettyjs/jsfmt/stream"
)

// modelOptions configures [newModel].
type modelOptions struct {
	path    string
	source  string
	diffRef string // Optional second path to diff against.
	opts    formatOptions
}

// formatOptions is the subset of CLI flags that affect how a viewed file is
// formatted before display.
type formatOptions struct {
	configRef string
}

type model struct {
	viewport     sourceviewport.Model
	path         string
	currentTheme string
	themeList    []string
	themeIndex   int
	width        int
	height       int
	themePicking bool
	raw          bool // true: show original source; false: show formatted output.
	source       string
	formatted    string
	diffContent  string
	hasDiff      bool
}

func newModel(opts *modelOptions) (model, error) {
	themeList := highlight.List(highlight.Dark)
	slices.Sort(themeList)

	defaultTheme := "charm"

	fcfg, err := resolveConfig(opts.path, opts.opts.configRef)
	if err != nil {
		return model{}, err
	}

	formatted, err := format.New(jsparser.New(), fcfg).Format(opts.source, opts.path)
	if err != nil {
		return model{}, err
	}

	m := model{
		path:         opts.path,
		themeList:    themeList,
		themeIndex:   max(0, slices.Index(themeList, defaultTheme)),
		currentTheme: defaultTheme,
		source:       opts.source,
		formatted:    formatted,
		viewport:     sourceviewport.New(),
	}

	if opts.diffRef != "" {
		m.hasDiff = true
		m.diffContent = buildDiffView(opts.path, m.formatted, opts.diffRef)
	}

	m.viewport.SetContent(m.renderContent())

	return m, nil
}

// renderContent picks what the viewport currently shows: the diff (if one
// was requested), otherwise the raw or formatted source per m.raw, syntax
// highlighted with line numbers.
func (m model) renderContent() string {
	if m.hasDiff {
		return m.diffContent
	}

	src := m.formatted
	if m.raw {
		// Raw mode shows the file as-is, including any stray control bytes
		// the formatter would otherwise never surface; make them visible
		// instead of letting the terminal swallow or misinterpret them.
		src = ansi.Escape(m.source)
	}

	highlighted, err := highlightSource(src, mustTheme(m.currentTheme))
	if err != nil {
		// Parse failure on source the formatter already accepted shouldn't
		// happen in practice; fall back to plain text rather than losing
		// the view entirely.
		highlighted = src
	}

	lines := strings.Split(highlighted, "\n")

	gutterStyle := lipgloss.NewStyle().Foreground(charmtone.Smoke)

	var sb strings.Builder

	for i, line := range lines {
		sb.WriteString(gutterStyle.Render(fmt.Sprintf("%4d  ", i+1)))
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	return sb.String()
}

// highlightSource re-parses already-rendered text and renders it through a
// [highlight.Printer]. Re-lexing output the formatter already produced is
// the simplest way to drive the token-aware [highlight.ClassifyNode]
// classification from a viewport, which only ever sees whole-file text, not
// the live [*stream.TokenList] the formatter mutated in place.
func highlightSource(src string, styles highlight.Styles) (string, error) {
	res, err := jsparser.New().Parse(src, ast.ParseOptions{
		Comment: true, Tokens: true, Range: true, Loc: true,
	})
	if err != nil {
		return "", err
	}

	tl := stream.Build(res, src, options.Default())
	printer := highlight.NewPrinter(highlight.WithStyles(styles))

	return printer.Render(tl), nil
}

func buildDiffView(path, formatted, otherPath string) string {
	other, err := readFile(otherPath)
	if err != nil {
		return fmt.Sprintf("error reading %s: %v", otherPath, err)
	}

	beforeLines := strings.Split(other, "\n")
	afterLines := strings.Split(formatted, "\n")

	h := diff.NewHirschberg(max(len(beforeLines), len(afterLines)) + 1)
	ops := h.Compute(beforeLines, afterLines)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("--- %s\n+++ %s\n", otherPath, path))

	for _, op := range ops {
		flag := op.Kind.Flag()

		var content string

		switch flag {
		case render.FlagDeleted:
			content = beforeLines[op.Index]
		default:
			content = afterLines[op.Index]
		}

		sb.WriteString(render.Gutter(flag))
		sb.WriteString(content)
		sb.WriteByte('\n')
	}

	return sb.String()
}

func mustTheme(name string) highlight.Styles {
	styles, ok := highlight.Theme(name)
	if !ok {
		styles, _ = highlight.Theme("charm")
	}

	return styles
}

// Init implements [tea.Model].
//
//nolint:gocritic // hugeParam: required for tea.Model interface.
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements [tea.Model].
//
//nolint:gocritic // hugeParam: required for tea.Model interface.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.SetWidth(msg.Width)
		m.viewport.SetHeight(msg.Height - 1)

	case tea.KeyPressMsg:
		if m.themePicking {
			m.updateThemeInput(msg)

			return m, nil
		}

		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("q", "ctrl+c"))):
			return m, tea.Quit

		case key.Matches(msg, key.NewBinding(key.WithKeys("t"))):
			m.themePicking = true

		case key.Matches(msg, key.NewBinding(key.WithKeys("r"))):
			if !m.hasDiff {
				m.raw = !m.raw
				m.viewport.SetContent(m.renderContent())
			}

		case key.Matches(msg, key.NewBinding(key.WithKeys("g"))):
			m.viewport.GotoTop()

		case key.Matches(msg, key.NewBinding(key.WithKeys("G"))):
			m.viewport.GotoBottom()
		}
	}

	var cmd tea.Cmd

	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

func (m *model) updateThemeInput(msg tea.KeyPressMsg) {
	switch {
	case key.Matches(msg, key.NewBinding(key.WithKeys("enter", "esc"))):
		m.themePicking = false
		m.viewport.SetContent(m.renderContent())

	case key.Matches(msg, key.NewBinding(key.WithKeys("j", "down"))):
		if m.themeIndex < len(m.themeList)-1 {
			m.themeIndex++
			m.currentTheme = m.themeList[m.themeIndex]
		}

	case key.Matches(msg, key.NewBinding(key.WithKeys("k", "up"))):
		if m.themeIndex > 0 {
			m.themeIndex--
			m.currentTheme = m.themeList[m.themeIndex]
		}
	}
}

// View implements [tea.Model].
//
//nolint:gocritic // hugeParam: required for tea.Model interface.
func (m model) View() tea.View {
	base := lipgloss.JoinVertical(
		lipgloss.Top,
		m.viewport.View(),
		m.statusBar(),
	)

	v := tea.NewView(base)
	v.AltScreen = true

	return v
}

func (m *model) statusBar() string {
	mode := "formatted"
	if m.raw {
		mode = "source"
	}

	if m.hasDiff {
		mode = "diff"
	}

	left := fmt.Sprintf(" %s [%s] theme:%s", filepath.Base(m.path), mode, m.currentTheme)
	right := fmt.Sprintf("%d%% ", int(m.viewport.ScrollPercent()*100))

	barStyle := lipgloss.NewStyle().
		Background(charmtone.Charcoal).
		Foreground(charmtone.Salt).
		Inline(true)

	padding := max(0, m.width-lipgloss.Width(left)-lipgloss.Width(right))

	return barStyle.Render(left + strings.Repeat(" ", padding) + right)
}
