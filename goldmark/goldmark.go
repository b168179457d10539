// Package goldmark renders Markdown replies to ANSI-styled terminal output
// using goldmark for parsing and lipgloss for styling.
package goldmark

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/chat"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// DefaultWidth is the wrap width used when none is configured.
const DefaultWidth = 80

// minWidth bounds the wrap width of nested content such as list items.
const minWidth = 10

// Interface compliance check.
var _ chat.Renderer = (*Renderer)(nil)

// Renderer converts Markdown to styled terminal text. Paragraphs and list
// items are word-wrapped to the configured width; code blocks are printed
// verbatim.
type Renderer struct {
	md     goldmark.Markdown
	width  int
	styles styles
}

// Option configures a [Renderer].
type Option func(*Renderer)

// WithWidth sets the wrap width. Non-positive values select [DefaultWidth].
func WithWidth(width int) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.width = width
		}
	}
}

// New creates a [Renderer] styled with theme.
func New(theme chat.Theme, opts ...Option) *Renderer {
	r := &Renderer{
		md: goldmark.New(goldmark.WithExtensions(
			extension.Strikethrough,
			extension.Linkify,
			extension.TaskList,
			extension.Table,
		)),
		width:  DefaultWidth,
		styles: newStyles(theme),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Render parses source and returns its styled form. Empty input renders as
// the empty string.
func (r *Renderer) Render(source string) string {
	if strings.TrimSpace(source) == "" {
		return ""
	}
	src := []byte(source)
	doc := r.md.Parser().Parse(text.NewReader(src))
	p := &pass{styles: r.styles, src: src}
	return strings.Join(p.blocks(doc, r.width), "\n\n")
}

type styles struct {
	bold      lipgloss.Style
	italic    lipgloss.Style
	strike    lipgloss.Style
	code      lipgloss.Style
	heading   lipgloss.Style
	title     lipgloss.Style
	muted     lipgloss.Style
	underline lipgloss.Style
	quote     lipgloss.Style
}

func newStyles(theme chat.Theme) styles {
	accent := ansiColor(theme.Accent)
	return styles{
		bold:      lipgloss.NewStyle().Bold(true),
		italic:    lipgloss.NewStyle().Italic(true),
		strike:    lipgloss.NewStyle().Strikethrough(true),
		code:      lipgloss.NewStyle().Foreground(accent),
		heading:   lipgloss.NewStyle().Foreground(accent).Bold(true),
		title:     lipgloss.NewStyle().Foreground(accent).Bold(true).Underline(true),
		muted:     lipgloss.NewStyle().Foreground(ansiColor(theme.Muted)).Faint(true),
		underline: lipgloss.NewStyle().Underline(true),
		quote:     lipgloss.NewStyle().Foreground(ansiColor(theme.Muted)),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
