package goldmark_test

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/fwojciec/chat"
	"github.com/fwojciec/chat/goldmark"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Force ANSI output so styled elements produce escape codes.
	lipgloss.SetColorProfile(termenv.ANSI)
	os.Exit(m.Run())
}

func render(src string, width int) string {
	return goldmark.New(chat.DefaultTheme(), goldmark.WithWidth(width)).Render(src)
}

func plain(src string, width int) string {
	return ansi.Strip(render(src, width))
}

func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", render("", 80))
		assert.Equal(t, "", render("  \n\n", 80))
	})

	t.Run("plain paragraph", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "hello world", plain("hello world", 80))
	})

	t.Run("soft line breaks join into one paragraph", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "one two", plain("one\ntwo", 80))
	})

	t.Run("paragraphs are separated by a blank line", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "first\n\nsecond", plain("first\n\nsecond", 80))
	})

	t.Run("heading is styled", func(t *testing.T) {
		t.Parallel()
		heading := render("# Title", 80)
		assert.Equal(t, "Title", ansi.Strip(heading))
		assert.NotEqual(t, render("Title", 80), heading)
		assert.NotEqual(t, render("## Title", 80), heading)
	})

	t.Run("emphasis", func(t *testing.T) {
		t.Parallel()
		for _, src := range []string{"**bold**", "*italic*", "***both***", "~~gone~~"} {
			got := render(src, 80)
			assert.NotEqual(t, ansi.Strip(got), got, src)
		}
		assert.Equal(t, "gone", plain("~~gone~~", 80))
	})

	t.Run("inline code", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "run go test", plain("run `go test`", 80))
	})

	t.Run("fenced code block is not reflowed", func(t *testing.T) {
		t.Parallel()
		got := plain("```go\nfmt.Println(\"hello world\")\n```", 10)
		lines := strings.Split(got, "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "go", lines[0])
		assert.Equal(t, `│ fmt.Println("hello world")`, lines[1])
	})

	t.Run("indented code block", func(t *testing.T) {
		t.Parallel()
		got := plain("para\n\n    code one\n    code two", 80)
		assert.Equal(t, "para\n\n│ code one\n│ code two", got)
	})

	t.Run("bullet list", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "- one\n- two\n- three", plain("- one\n- two\n- three", 80))
	})

	t.Run("ordered list keeps start number", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "3. first\n4. second", plain("3. first\n4. second", 80))
	})

	t.Run("nested list", func(t *testing.T) {
		t.Parallel()
		got := plain("- outer\n  - inner one\n  - inner two", 80)
		assert.Equal(t, "- outer\n  - inner one\n  - inner two", got)
	})

	t.Run("task list", func(t *testing.T) {
		t.Parallel()
		got := plain("- [x] done\n- [ ] todo", 80)
		assert.Equal(t, "- [x] done\n- [ ] todo", got)
	})

	t.Run("list continuation lines are indented", func(t *testing.T) {
		t.Parallel()
		got := plain("- this is a very long list item that should wrap onto several lines", 30)
		lines := strings.Split(got, "\n")
		require.Greater(t, len(lines), 1)
		assert.True(t, strings.HasPrefix(lines[0], "- "))
		for _, l := range lines[1:] {
			assert.True(t, strings.HasPrefix(l, "  "), "continuation %q", l)
		}
	})

	t.Run("paragraph wraps to width", func(t *testing.T) {
		t.Parallel()
		got := plain("word1 word2 word3 word4 word5 word6 word7 word8 word9 word10", 20)
		lines := strings.Split(got, "\n")
		assert.Greater(t, len(lines), 1)
		for _, l := range lines {
			assert.LessOrEqual(t, len(l), 20)
		}
	})

	t.Run("link shows label and destination", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "click (https://example.com)", plain("[click](https://example.com)", 80))
	})

	t.Run("bare URL is linkified", func(t *testing.T) {
		t.Parallel()
		got := render("see https://example.com now", 80)
		assert.Equal(t, "see https://example.com now", ansi.Strip(got))
		assert.NotEqual(t, ansi.Strip(got), got)
	})

	t.Run("image shows alt text and URL", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "alt (https://example.com/a.png)", plain("![alt](https://example.com/a.png)", 80))
	})

	t.Run("blockquote has a gutter", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "▎ quoted\n▎ \n▎ again", plain("> quoted\n>\n> again", 80))
	})

	t.Run("thematic break", func(t *testing.T) {
		t.Parallel()
		got := plain("above\n\n---\n\nbelow", 10)
		assert.Equal(t, "above\n\n"+strings.Repeat("─", 10)+"\n\nbelow", got)
	})

	t.Run("table columns are aligned", func(t *testing.T) {
		t.Parallel()
		got := plain("| a | bb |\n|---|----|\n| ccc | d |", 80)
		lines := strings.Split(got, "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "a   │ bb", lines[0])
		assert.Equal(t, "────┼───", lines[1])
		assert.Equal(t, "ccc │ d", lines[2])
	})

	t.Run("non-positive width uses default", func(t *testing.T) {
		t.Parallel()
		long := strings.Repeat("x ", 39) + "x"
		assert.Equal(t, long, plain(long, 0))
	})
}
