package hwpx

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the input path does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidFormat is returned for a wrong extension, an unreadable
	// archive, or an archive without section entries.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrParse matches any *ParseError via errors.Is.
	ErrParse = errors.New("parse error")
)

// ParseError reports a section entry that is not well-formed XML.
type ParseError struct {
	Entry string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Entry, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// formatError carries a human message while matching ErrInvalidFormat or
// ErrNotFound, so callers print the message and test the kind.
type formatError struct {
	kind error
	msg  string
	err  error
}

func (e *formatError) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *formatError) Unwrap() []error {
	if e.err != nil {
		return []error{e.kind, e.err}
	}
	return []error{e.kind}
}

func notFound(path string) error {
	return &formatError{kind: ErrNotFound, msg: path}
}

func invalidFormat(msg string, err error) error {
	return &formatError{kind: ErrInvalidFormat, msg: msg, err: err}
}
