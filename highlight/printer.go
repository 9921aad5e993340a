package highlight

import (
	"strings"

	"github.com/prettyjs/jsfmt/parts"
	"github.com/prettyjs/jsfmt/stream"
)

// Printer renders a [*stream.TokenList] to a styled string for terminal
// display. Create instances with [NewPrinter].
type Printer struct {
	styles Styles
}

// PrinterOption configures a [Printer]. See [WithStyles].
type PrinterOption func(*Printer)

// WithStyles sets the [Styles] a [Printer] renders with. Without this
// option, [NewPrinter] uses the "charm" theme.
func WithStyles(styles Styles) PrinterOption {
	return func(p *Printer) {
		p.styles = styles
	}
}

// NewPrinter creates a [*Printer], defaulting to the "charm" theme.
func NewPrinter(opts ...PrinterOption) *Printer {
	defaultStyles, _ := Theme("charm")

	p := &Printer{styles: defaultStyles}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Render walks every part of tl in order and renders it through the
// classified [Style]'s [lipgloss.Style], using [ClassifyNode] so
// identifiers get role-aware styling where the AST makes it unambiguous.
func (p *Printer) Render(tl *stream.TokenList) string {
	var sb strings.Builder

	for part := range tl.All() {
		sb.WriteString(p.RenderPart(part))
	}

	return sb.String()
}

// RenderPart renders a single part through its classified style.
func (p *Printer) RenderPart(part *parts.Part) string {
	if part.IsWhitespaceOrLineBreak() {
		return part.Value()
	}

	st := p.styles.Style(ClassifyNode(part))

	return st.Render(part.Value())
}
