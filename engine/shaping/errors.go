package shaping

import (
	"errors"
	"fmt"

	"github.com/npillmayer/otsession/core"
)

// Errors wrapped by ConfigurationError.
var (
	ErrNoBackend         = errors.New("no shaping backend")
	ErrNoFont            = errors.New("no font")
	ErrInvalidTypeSize   = errors.New("type size must be a positive number")
	ErrInvalidMode       = errors.New("invalid writing mode")
	ErrInvalidDirection  = errors.New("invalid writing direction")
	ErrNoScriptDirection = errors.New("backend has no default direction for script")
	ErrNilResult         = errors.New("no result to write to")
)

// ConfigurationError is returned if a session is not configured for shaping,
// or if a setter is called with an invalid value.
type ConfigurationError struct {
	Err    error  // one of the Err… variables of this package
	Detail string // optional
}

func (e *ConfigurationError) Error() string {
	if e.Detail == "" {
		return "shaping configuration: " + e.Err.Error()
	}
	return fmt.Sprintf("shaping configuration: %v: %s", e.Err, e.Detail)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// ErrorCode returns core.ECONFIG.
func (e *ConfigurationError) ErrorCode() int { return core.ECONFIG }

// UserMessage describes the configuration problem.
func (e *ConfigurationError) UserMessage() string { return e.Error() }

// RangeError is returned if a character range is inverted or exceeds its text.
type RangeError struct {
	Start, End int
	Length     int // length of the text
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("shaping range [%d, %d) invalid for text of length %d", e.Start, e.End, e.Length)
}

// ErrorCode returns core.ERANGE.
func (e *RangeError) ErrorCode() int { return core.ERANGE }

// UserMessage describes the range problem.
func (e *RangeError) UserMessage() string { return e.Error() }

// ShapingError is returned if the backend failed. It carries the backend's
// diagnostic.
type ShapingError struct {
	Err error
}

func (e *ShapingError) Error() string {
	return "shaping failed: " + e.Err.Error()
}

func (e *ShapingError) Unwrap() error { return e.Err }

// ErrorCode returns core.ESHAPING.
func (e *ShapingError) ErrorCode() int { return core.ESHAPING }

// UserMessage returns the backend's diagnostic.
func (e *ShapingError) UserMessage() string { return e.Err.Error() }

var (
	_ core.AppError = (*ConfigurationError)(nil)
	_ core.AppError = (*RangeError)(nil)
	_ core.AppError = (*ShapingError)(nil)
)

func configError(err error, format string, v ...interface{}) error {
	return &ConfigurationError{Err: err, Detail: fmt.Sprintf(format, v...)}
}
