package input

import (
	"bufio"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Reader reads command lines from a stream
type Reader struct {
	r *bufio.Reader
}

// NewReader creates a line reader on r
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// ReadLine returns the next line without its line ending. A last line without
// a newline is returned with a nil error; io.EOF is only returned once nothing
// is left.
func (r *Reader) ReadLine() (string, error) {
	line, err := r.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadRaw reads a line and wraps it as a terminal RawInput
func (r *Reader) ReadRaw() (RawInput, error) {
	line, err := r.ReadLine()
	if err != nil {
		return RawInput{}, err
	}
	return NewRawInput(DeviceTerminal, line), nil
}

// IsInteractive reports whether f is a terminal
func IsInteractive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
