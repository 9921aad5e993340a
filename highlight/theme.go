package highlight

import (
	"sort"

	"charm.land/lipgloss/v2"
)

// themeFunc builds a theme's [Styles] on demand, so unused themes never pay
// for style construction.
type themeFunc func() Styles

// themes holds every registered theme, keyed by name.
var themes = map[string]themeFunc{
	"charm":   charmTheme,
	"mono":    monoTheme,
	"solaris": solarisTheme,
}

// List returns the names of every registered theme, sorted.
//
// mode is accepted for symmetry with the teacher's theme API (callers may
// want to filter by [Light]/[Dark] in the future) but every built-in theme
// here targets [Dark] terminals, so it currently has no effect.
func List(_ Mode) []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Theme looks up a registered theme by name.
func Theme(name string) (Styles, bool) {
	fn, ok := themes[name]
	if !ok {
		return nil, false
	}

	return fn(), true
}

// charmTheme is the default theme: warm neutrals with a single accent per
// token family, tuned for a dark terminal background.
func charmTheme() Styles {
	return NewStyles(
		lipgloss.NewStyle().Foreground(lipgloss.Color("#E6E6E6")),
		Set(Comment, lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")).Italic(true)),
		Set(KeywordDeclaration, lipgloss.NewStyle().Foreground(lipgloss.Color("#F5A97F")).Bold(true)),
		Set(KeywordControl, lipgloss.NewStyle().Foreground(lipgloss.Color("#F5A97F")).Bold(true)),
		Set(KeywordOperator, lipgloss.NewStyle().Foreground(lipgloss.Color("#C6A0F6"))),
		Set(LiteralString, lipgloss.NewStyle().Foreground(lipgloss.Color("#A6DA95"))),
		Set(LiteralStringTemplate, lipgloss.NewStyle().Foreground(lipgloss.Color("#A6DA95"))),
		Set(LiteralNumber, lipgloss.NewStyle().Foreground(lipgloss.Color("#F5BDE6"))),
		Set(LiteralBoolean, lipgloss.NewStyle().Foreground(lipgloss.Color("#F5BDE6")).Bold(true)),
		Set(LiteralNull, lipgloss.NewStyle().Foreground(lipgloss.Color("#F5BDE6")).Bold(true)),
		Set(LiteralRegExp, lipgloss.NewStyle().Foreground(lipgloss.Color("#EE99A0"))),
		Set(NameFunction, lipgloss.NewStyle().Foreground(lipgloss.Color("#8AADF4"))),
		Set(NameProperty, lipgloss.NewStyle().Foreground(lipgloss.Color("#91D7E3"))),
		Set(PunctuationBracket, lipgloss.NewStyle().Foreground(lipgloss.Color("#B8C0E0"))),
		Set(GenericDeleted, lipgloss.NewStyle().Foreground(lipgloss.Color("#ED8796")).Background(lipgloss.Color("#2D1A1E"))),
		Set(GenericInserted, lipgloss.NewStyle().Foreground(lipgloss.Color("#A6DA95")).Background(lipgloss.Color("#1A2D1E"))),
		Set(GenericError, lipgloss.NewStyle().Foreground(lipgloss.Color("#ED8796")).Bold(true)),
	)
}

// monoTheme uses text attributes only (bold, italic, underline,
// strikethrough), no color, for terminals or
// pipelines that can't render 256-color output.
func monoTheme() Styles {
	return NewStyles(
		lipgloss.NewStyle(),
		Set(Comment, lipgloss.NewStyle().Italic(true)),
		Set(Keyword, lipgloss.NewStyle().Bold(true)),
		Set(LiteralString, lipgloss.NewStyle().Underline(true)),
		Set(GenericDeleted, lipgloss.NewStyle().Strikethrough(true)),
		Set(GenericInserted, lipgloss.NewStyle().Underline(true)),
		Set(GenericError, lipgloss.NewStyle().Bold(true).Underline(true)),
	)
}

// solarisTheme is a cool, blue-leaning palette.
func solarisTheme() Styles {
	return NewStyles(
		lipgloss.NewStyle().Foreground(lipgloss.Color("#CBD2EA")),
		Set(Comment, lipgloss.NewStyle().Foreground(lipgloss.Color("#5C6783"))),
		Set(KeywordDeclaration, lipgloss.NewStyle().Foreground(lipgloss.Color("#7AA2F7")).Bold(true)),
		Set(KeywordControl, lipgloss.NewStyle().Foreground(lipgloss.Color("#BB9AF7")).Bold(true)),
		Set(KeywordOperator, lipgloss.NewStyle().Foreground(lipgloss.Color("#BB9AF7"))),
		Set(LiteralString, lipgloss.NewStyle().Foreground(lipgloss.Color("#9ECE6A"))),
		Set(LiteralStringTemplate, lipgloss.NewStyle().Foreground(lipgloss.Color("#9ECE6A"))),
		Set(LiteralNumber, lipgloss.NewStyle().Foreground(lipgloss.Color("#FF9E64"))),
		Set(LiteralBoolean, lipgloss.NewStyle().Foreground(lipgloss.Color("#FF9E64")).Bold(true)),
		Set(LiteralNull, lipgloss.NewStyle().Foreground(lipgloss.Color("#FF9E64")).Bold(true)),
		Set(LiteralRegExp, lipgloss.NewStyle().Foreground(lipgloss.Color("#F7768E"))),
		Set(NameFunction, lipgloss.NewStyle().Foreground(lipgloss.Color("#7DCFFF"))),
		Set(NameProperty, lipgloss.NewStyle().Foreground(lipgloss.Color("#73DACA"))),
		Set(GenericDeleted, lipgloss.NewStyle().Foreground(lipgloss.Color("#F7768E"))),
		Set(GenericInserted, lipgloss.NewStyle().Foreground(lipgloss.Color("#9ECE6A"))),
		Set(GenericError, lipgloss.NewStyle().Foreground(lipgloss.Color("#F7768E")).Bold(true)),
	)
}
