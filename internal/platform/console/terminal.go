// Package console runs the game as a plain line-oriented session: print a
// frame, read one command, advance one turn.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Prompt is written after every frame that expects a command.
const Prompt = "> "

// ErrClosed is returned by ReadCommand once the input is exhausted.
var ErrClosed = errors.New("console: input closed")

// Terminal is the I/O the turn loop needs from its environment.
type Terminal interface {
	// ReadCommand blocks until one line of input is available.
	ReadCommand() (string, error)
	// WriteFrame shows a rendered frame followed by the prompt.
	WriteFrame(frame string) error
}

// LineTerminal implements Terminal over a reader and a writer.
type LineTerminal struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewTerminal creates a LineTerminal reading lines from in and writing to out.
func NewTerminal(in io.Reader, out io.Writer) *LineTerminal {
	return &LineTerminal{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// ReadCommand returns the next line without its terminator.
func (t *LineTerminal) ReadCommand() (string, error) {
	if t.scanner.Scan() {
		return t.scanner.Text(), nil
	}
	if err := t.scanner.Err(); err != nil {
		return "", fmt.Errorf("console: read failed: %w", err)
	}
	return "", ErrClosed
}

// WriteFrame writes frame and the prompt.
func (t *LineTerminal) WriteFrame(frame string) error {
	if _, err := io.WriteString(t.out, frame+Prompt); err != nil {
		return fmt.Errorf("console: write failed: %w", err)
	}
	return nil
}

// WriteText writes text without a prompt.
func (t *LineTerminal) WriteText(text string) error {
	if _, err := io.WriteString(t.out, text); err != nil {
		return fmt.Errorf("console: write failed: %w", err)
	}
	return nil
}
