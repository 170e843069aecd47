package setup

import (
	"errors"
	"fmt"
)

// Sentinel reasons wrapped by ConfigError, for errors.Is.
var (
	ErrBadRecord   = errors.New("malformed record")
	ErrUnknownKind = errors.New("unknown record kind")
	ErrBadColumns  = errors.New("row length differs from the first row")
	ErrUnknownRoom = errors.New("unknown room code")
	ErrBadModifier = errors.New("modifier not allowed here")
	ErrDuplicate   = errors.New("duplicate definition")
	ErrBadPlayer   = errors.New("invalid player record")
	ErrUnreadable  = errors.New("cannot read config source")
)

// ConfigError reports a fatal problem in one of the map description files.
type ConfigError struct {
	Source string // file name or other identifier of the input
	Line   int    // 1-based line number, 0 when not tied to a line
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("config error in %s line %d: %s", e.Source, e.Line, e.Reason)
	}
	return fmt.Sprintf("config error in %s: %s", e.Source, e.Reason)
}

// Unwrap returns the sentinel reason
func (e *ConfigError) Unwrap() error {
	return e.Err
}

func configErrorf(source string, line int, err error, format string, a ...any) *ConfigError {
	return &ConfigError{
		Source: source,
		Line:   line,
		Reason: fmt.Sprintf(format, a...),
		Err:    err,
	}
}
