package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const invalidInputMessage = "Invalid. Try again."

// ErrInputClosed is returned when the input stream ends before a valid value is read.
var ErrInputClosed = errors.New("console input closed")

// Prompter reads bounded integers from a line-oriented input.
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Int writes prompt and reads lines until one is a decimal literal in
// [low, high]. Every rejected line prints invalidInputMessage, whatever its
// length. Only the end of input or a read failure stops it.
func (p *Prompter) Int(prompt string, low, high int) (int, error) {
	for {
		_, _ = io.WriteString(p.out, prompt)
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}

		if value, ok := parseBounded(line, low, high); ok {
			return value, nil
		}
		_, _ = fmt.Fprintln(p.out, invalidInputMessage)
	}
}

// readLine returns the next line without its terminator. A final line with
// no newline is still returned; ErrInputClosed follows on the next call.
func (p *Prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read console input: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}

	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

func parseBounded(raw string, low, high int) (int, bool) {
	if !isDigits(raw) {
		return 0, false
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	if value < low || value > high {
		return 0, false
	}
	return value, true
}

// isDigits rejects empty input, signs, whitespace and anything but ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
