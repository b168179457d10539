// Package lipgloss implements [chat.Console] with lipgloss-styled output.
package lipgloss

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/chat"
	"github.com/mattn/go-runewidth"
)

// Interface compliance check.
var _ chat.Console = (*Console)(nil)

// Styles maps a Theme to lipgloss styles for console output.
type Styles struct {
	User      lipgloss.Style
	Assistant lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Muted     lipgloss.Style
	Panel     lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t chat.Theme) Styles {
	return Styles{
		User:      lipgloss.NewStyle().Foreground(ansiColor(t.User)).Bold(true),
		Assistant: lipgloss.NewStyle().Foreground(ansiColor(t.Assistant)).Bold(true),
		Error:     lipgloss.NewStyle().Foreground(ansiColor(t.Error)).Bold(true),
		Success:   lipgloss.NewStyle().Foreground(ansiColor(t.Success)),
		Warning:   lipgloss.NewStyle().Foreground(ansiColor(t.Warning)),
		Muted:     lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ansiColor(t.Accent)).
			Padding(0, 1),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}

// Console writes the session's user-facing output to a writer.
type Console struct {
	out       io.Writer
	styles    Styles
	assistant string
	width     int
}

// Option configures a [Console].
type Option func(*Console)

// WithAssistantName sets the label printed above each reply.
func WithAssistantName(name string) Option {
	return func(c *Console) { c.assistant = name }
}

// WithWidth sets the terminal width used to fit the welcome panel.
func WithWidth(width int) Option {
	return func(c *Console) {
		if width > 0 {
			c.width = width
		}
	}
}

// New creates a Console writing to out.
func New(out io.Writer, theme chat.Theme, opts ...Option) *Console {
	c := &Console{
		out:       out,
		styles:    NewStyles(theme),
		assistant: "Claude",
		width:     80,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Welcome prints the instructions panel shown once at startup. The status
// line names the provider and model and is truncated to fit the terminal.
func (c *Console) Welcome(provider, model string) {
	status := runewidth.Truncate(provider+" · "+model, c.width-4, "…")
	body := strings.Join([]string{
		c.styles.Success.Render("Welcome to chat!"),
		"- Write your message over as many lines as you like",
		"- Type " + chat.Sentinel + " on a line of its own to send",
		"- Type " + chat.QuitCommand + " to quit",
		"- Ctrl+D also sends, Ctrl+C quits",
		c.styles.Muted.Render(status),
	}, "\n")
	fmt.Fprintln(c.out, c.styles.Panel.Render(body))
}

// Prompt prints the header announcing a new input round.
func (c *Console) Prompt() {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.styles.User.Render("You:"))
}

// PromptLine prints the indentation before an input line.
func (c *Console) PromptLine() {
	fmt.Fprint(c.out, "  ")
}

// Submitted acknowledges a submission.
func (c *Console) Submitted() {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.styles.Muted.Render("--- Message submitted, waiting for response... ---"))
}

// Reply prints the assistant label and the rendered reply.
func (c *Console) Reply(rendered string) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.styles.Assistant.Render(c.assistant+":"))
	fmt.Fprintln(c.out, rendered)
}

// Diagnostic prints err prefixed with its error class.
func (c *Console) Diagnostic(err error) {
	fmt.Fprintln(c.out)
	fmt.Fprintf(c.out, "%s %s\n", c.styles.Error.Render(chat.ErrorClass(err)+":"), err)
}

// Farewell prints the closing message.
func (c *Console) Farewell() {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.styles.Success.Render("Goodbye!"))
}

// MissingKey tells the user no API key was found and where to get one.
func (c *Console) MissingKey(envVar, url string) {
	fmt.Fprintln(c.out, c.styles.Panel.Render(c.styles.Warning.Render(envVar+" not found.")))
	if url != "" {
		fmt.Fprintf(c.out, "You can create one at: %s\n", lipgloss.NewStyle().Underline(true).Render(url))
	}
}

// KeyPrompt prints the request for the key without a trailing newline.
func (c *Console) KeyPrompt() {
	fmt.Fprint(c.out, "Please enter your API key: ")
}

// KeySaved confirms that the key was persisted to path.
func (c *Console) KeySaved(path string) {
	fmt.Fprintln(c.out, c.styles.Success.Render("API key saved to "+path))
}
