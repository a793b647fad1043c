package powerline

import (
	"errors"
	"fmt"
)

// Error kinds. Every *ParseError unwraps to exactly one of these.
var (
	ErrMalformedDescriptor    = errors.New("malformed descriptor")
	ErrUnterminatedColorGroup = errors.New("unterminated color group")
	ErrEmptySegment           = errors.New("empty segment")
	ErrMalformedCondition     = errors.New("malformed condition")
	ErrIncompleteExpression   = errors.New("incomplete expression")
)

// ParseError reports which descriptor failed and where.
type ParseError struct {
	Kind       error  // One of the Err* kinds
	Descriptor string // The raw text being parsed
	Offset     int    // Byte offset into Descriptor, -1 when unknown
	Detail     string
}

func (e *ParseError) Error() string {
	msg := e.Kind.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Offset < 0 {
		return fmt.Sprintf("%s in %q", msg, e.Descriptor)
	}
	return fmt.Sprintf("%s in %q at offset %d", msg, e.Descriptor, e.Offset)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

func newParseError(kind error, descriptor string, offset int, detail string) *ParseError {
	return &ParseError{
		Kind:       kind,
		Descriptor: descriptor,
		Offset:     offset,
		Detail:     detail,
	}
}

// withBase rebases a ParseError raised on a substring so that it reports the
// enclosing descriptor and an offset relative to it.
func withBase(err error, descriptor string, base int) error {
	var pe *ParseError
	if !errors.As(err, &pe) {
		return err
	}
	rebased := *pe
	rebased.Descriptor = descriptor
	if rebased.Offset >= 0 {
		rebased.Offset += base
	}
	return &rebased
}
