package chat

import (
	"bufio"
	"context"
	"io"
	"strings"
)

// LineReader reads input one line at a time. ReadLine returns io.EOF when no
// more lines are available and the context's error when the context is done
// before a line arrives.
type LineReader interface {
	ReadLine(ctx context.Context) (string, error)
}

// Interface compliance check.
var _ LineReader = (*Lines)(nil)

// Lines implements LineReader on top of an io.Reader. Lines are unbounded in
// length. The trailing "\n" or "\r\n" is removed; everything else is kept.
//
// Each read runs in its own goroutine so that a cancelled context can abandon
// a blocked terminal read. An abandoned read is not lost: its line is returned
// by the next call to ReadLine.
type Lines struct {
	r       *bufio.Reader
	pending chan lineResult // non-nil while a read is in flight
}

type lineResult struct {
	line string
	err  error
}

// NewLines creates a Lines reading from r.
func NewLines(r io.Reader) *Lines {
	return &Lines{r: bufio.NewReader(r)}
}

// ReadLine returns the next line.
func (l *Lines) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if l.pending == nil {
		ch := make(chan lineResult, 1)
		l.pending = ch
		go func() {
			line, err := l.r.ReadString('\n')
			// A final line without a newline is still a line; the reader
			// reports io.EOF again on the next call.
			if err == io.EOF && line != "" {
				err = nil
			}
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			ch <- lineResult{line: line, err: err}
		}()
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-l.pending:
		l.pending = nil
		return res.line, res.err
	}
}
