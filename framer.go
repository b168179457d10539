package chat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// In-band commands recognized in the input stream.
const (
	Sentinel    = "///"
	QuitCommand = "/quit"
)

// separator joins the buffered lines of a submission. Every line, including
// empty ones, is followed by exactly one separator except the last.
const separator = "\n\n"

// InputKind tells the session what a framed input means.
type InputKind int

const (
	InputSubmit InputKind = iota // text submitted via sentinel or end of input
	InputCancel                  // interrupted while reading
	InputQuit                    // /quit typed
)

// Input is the result of framing one round of terminal lines.
type Input struct {
	Kind InputKind
	Text string
	EOF  bool // submission was triggered by end of input rather than the sentinel
}

// Blank reports whether the input carries no text worth sending.
func (in Input) Blank() bool {
	return strings.TrimSpace(in.Text) == ""
}

// Framer turns a stream of terminal lines into submissions.
type Framer struct {
	lines   LineReader
	console Console
}

// NewFramer creates a Framer reading from lines and prompting on console.
func NewFramer(lines LineReader, console Console) *Framer {
	return &Framer{lines: lines, console: console}
}

// Read accumulates lines until the sentinel or end of input and returns the
// joined text. Interrupts and /quit discard whatever was accumulated. Lines
// are stored verbatim; they are trimmed only to compare against commands.
func (f *Framer) Read(ctx context.Context) (Input, error) {
	f.console.Prompt()
	var buf []string
	for {
		f.console.PromptLine()
		line, err := f.lines.ReadLine(ctx)
		switch {
		case errors.Is(err, io.EOF):
			return f.submit(buf, true), nil
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return Input{Kind: InputCancel}, nil
		case err != nil:
			return Input{}, fmt.Errorf("read input: %w", err)
		}

		if strings.TrimSpace(line) == QuitCommand {
			return Input{Kind: InputQuit}, nil
		}
		if strings.TrimRightFunc(line, unicode.IsSpace) == Sentinel {
			return f.submit(buf, false), nil
		}
		buf = append(buf, line)
	}
}

func (f *Framer) submit(buf []string, eof bool) Input {
	in := Input{Kind: InputSubmit, Text: strings.Join(buf, separator), EOF: eof}
	if !in.Blank() {
		f.console.Submitted()
	}
	return in
}
