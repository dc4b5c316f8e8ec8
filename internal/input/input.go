// Package input reads single lines of user input from a stream.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrReadLine is returned when the underlying stream fails.
// Reaching end-of-stream is not an error.
var ErrReadLine = errors.New("failed to read input line")

// Reader reads whitespace-trimmed lines from a stream.
type Reader struct {
	r   *bufio.Reader
	eof bool
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// ReadLine blocks until a newline or end-of-stream, then returns the line
// with surrounding whitespace removed. End-of-stream with no data yields "".
func (r *Reader) ReadLine() (string, error) {
	line, err := r.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: %w", ErrReadLine, err)
		}
		r.eof = true
	}
	return strings.TrimSpace(line), nil
}

// EOF reports whether a previous ReadLine reached the end of the stream.
func (r *Reader) EOF() bool {
	return r.eof
}

// stdin is shared so consecutive calls consume consecutive lines.
var stdin = NewReader(os.Stdin)

// exit terminates the process; replaced in tests.
var exit = os.Exit

// ReadStdin reads one trimmed line from standard input.
func ReadStdin() (string, error) {
	return stdin.ReadLine()
}

// MustReadStdin is like ReadStdin but prints a diagnostic to stderr and
// exits with status 1 when the read fails. Use it only from top-level
// command entry points.
func MustReadStdin() string {
	line, err := ReadStdin()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
	return line
}
