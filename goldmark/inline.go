package goldmark

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
)

// inline renders the inline children of node to a single styled string.
func (p *pass) inline(node ast.Node) string {
	var sb strings.Builder
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		p.span(c, &sb)
	}
	return sb.String()
}

func (p *pass) span(node ast.Node, sb *strings.Builder) {
	switch n := node.(type) {
	case *ast.Text:
		sb.Write(n.Segment.Value(p.src))
		switch {
		case n.HardLineBreak():
			sb.WriteByte('\n')
		case n.SoftLineBreak():
			sb.WriteByte(' ')
		}

	case *ast.String:
		sb.Write(n.Value)

	case *ast.Emphasis:
		// ***x*** parses as nested emphasis, so levels above 2 do not occur.
		if n.Level == 1 {
			sb.WriteString(p.styles.italic.Render(p.inline(n)))
		} else {
			sb.WriteString(p.styles.bold.Render(p.inline(n)))
		}

	case *east.Strikethrough:
		sb.WriteString(p.styles.strike.Render(p.inline(n)))

	case *ast.CodeSpan:
		sb.WriteString(p.styles.code.Render(p.inline(n)))

	case *ast.Link:
		label := p.inline(n)
		dest := string(n.Destination)
		sb.WriteString(p.styles.underline.Render(label))
		if label != dest {
			sb.WriteString(" " + p.styles.muted.Render("("+dest+")"))
		}

	case *ast.AutoLink:
		sb.WriteString(p.styles.underline.Render(string(n.URL(p.src))))

	case *ast.Image:
		sb.WriteString(p.styles.underline.Render(p.inline(n)))
		sb.WriteString(" " + p.styles.muted.Render("("+string(n.Destination)+")"))

	case *east.TaskCheckBox:
		if n.IsChecked {
			sb.WriteString("[x] ")
		} else {
			sb.WriteString("[ ] ")
		}

	case *ast.RawHTML:
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			sb.Write(seg.Value(p.src))
		}

	default:
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			p.span(c, sb)
		}
	}
}
