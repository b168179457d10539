package goldmark

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
)

// pass holds the state of a single Render call.
type pass struct {
	styles styles
	src    []byte
}

// blocks renders each block child of parent, skipping those that produce
// no output.
func (p *pass) blocks(parent ast.Node, width int) []string {
	var out []string
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		if s := p.block(c, width); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (p *pass) block(node ast.Node, width int) string {
	switch n := node.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		return wrap(p.inline(n), width)

	case *ast.Heading:
		style := p.styles.heading
		if n.Level == 1 {
			style = p.styles.title
		}
		return wrap(style.Render(p.inline(n)), width)

	case *ast.FencedCodeBlock:
		code := p.code(n)
		if lang := string(n.Language(p.src)); lang != "" {
			return p.styles.muted.Render(lang) + "\n" + code
		}
		return code

	case *ast.CodeBlock:
		return p.code(n)

	case *ast.Blockquote:
		inner := strings.Join(p.blocks(n, max(width-2, minWidth)), "\n\n")
		return gutter(inner, p.styles.quote.Render("▎")+" ")

	case *ast.List:
		return p.list(n, width, 0)

	case *ast.ThematicBreak:
		return p.styles.muted.Render(strings.Repeat("─", min(width, 40)))

	case *east.Table:
		return p.table(n)

	case *ast.HTMLBlock:
		var sb strings.Builder
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			sb.Write(seg.Value(p.src))
		}
		return strings.TrimRight(sb.String(), "\n")

	default:
		return strings.Join(p.blocks(node, width), "\n\n")
	}
}

// code prints the block's lines verbatim behind a muted gutter.
func (p *pass) code(n ast.Node) string {
	mark := p.styles.muted.Render("│") + " "
	lines := n.Lines()
	out := make([]string, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		out = append(out, mark+strings.TrimRight(string(seg.Value(p.src)), "\n"))
	}
	return strings.Join(out, "\n")
}

func (p *pass) list(n *ast.List, width, depth int) string {
	indent := strings.Repeat("  ", depth)
	num := n.Start
	var out []string
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		item, ok := c.(*ast.ListItem)
		if !ok {
			continue
		}
		marker := "- "
		if n.IsOrdered() {
			marker = fmt.Sprintf("%d. ", num)
			num++
		}
		prefix := indent + marker
		itemWidth := max(width-len(prefix), minWidth)

		var body []string
		for ic := item.FirstChild(); ic != nil; ic = ic.NextSibling() {
			if sub, ok := ic.(*ast.List); ok {
				if len(body) > 0 {
					out = append(out, hang(strings.Join(body, "\n"), prefix))
					body = nil
					marker = strings.Repeat(" ", len(marker))
					prefix = indent + marker
				}
				out = append(out, p.list(sub, width, depth+1))
				continue
			}
			if s := p.block(ic, itemWidth); s != "" {
				body = append(body, s)
			}
		}
		if len(body) > 0 {
			out = append(out, hang(strings.Join(body, "\n"), prefix))
		}
	}
	return strings.Join(out, "\n")
}

// table lays out cells in padded columns; the header row is bold and
// underlined by a rule.
func (p *pass) table(n *east.Table) string {
	var rows [][]string
	for r := n.FirstChild(); r != nil; r = r.NextSibling() {
		var cells []string
		for c := r.FirstChild(); c != nil; c = c.NextSibling() {
			cell := p.inline(c)
			if _, ok := r.(*east.TableHeader); ok {
				cell = p.styles.bold.Render(cell)
			}
			cells = append(cells, cell)
		}
		rows = append(rows, cells)
	}
	if len(rows) == 0 {
		return ""
	}

	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	sep := p.styles.muted.Render(" │ ")
	out := make([]string, 0, len(rows)+1)
	for i, row := range rows {
		padded := make([]string, len(row))
		for j, cell := range row {
			padded[j] = cell + strings.Repeat(" ", widths[j]-lipgloss.Width(cell))
		}
		out = append(out, strings.TrimRight(strings.Join(padded, sep), " "))
		if i == 0 {
			rules := make([]string, len(widths))
			for j, w := range widths {
				rules[j] = strings.Repeat("─", w)
			}
			out = append(out, p.styles.muted.Render(strings.Join(rules, "─┼─")))
		}
	}
	return strings.Join(out, "\n")
}

// wrap word-wraps s to width, breaking words longer than a line.
func wrap(s string, width int) string {
	return ansi.Wrap(s, width, "")
}

// gutter prefixes every line of s with mark.
func gutter(s, mark string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = mark + l
	}
	return strings.Join(lines, "\n")
}

// hang prefixes the first line of s with prefix and indents continuation
// lines to line up with it.
func hang(s, prefix string) string {
	lines := strings.Split(s, "\n")
	pad := strings.Repeat(" ", len(prefix))
	for i, l := range lines {
		if i == 0 {
			lines[i] = prefix + l
		} else if l != "" {
			lines[i] = pad + l
		}
	}
	return strings.Join(lines, "\n")
}
