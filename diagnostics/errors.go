package diagnostics

import (
	"errors"
	"fmt"
)

// ErrParse is the sentinel every *ParseError matches with errors.Is.
var ErrParse = errors.New("parse error")

// Kind classifies fatal parse failures.
type Kind uint8

// Kinds of parse failures.
const (
	Mismatch     Kind = iota // unexpected character where a specific token was required
	UnknownToken             // unrecognized keyword, e.g. a unit
	Bounds                   // not enough input left for a fixed-width token
)

func (k Kind) String() string {
	switch k {
	case Mismatch:
		return "mismatch"
	case UnknownToken:
		return "unknown token"
	case Bounds:
		return "bounds"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseError is the fatal failure of a parser. Offset is the byte offset into
// the (trimmed) input where the failure has been detected.
type ParseError struct {
	Kind   Kind
	Offset int
	Msg    string
}

// Errorf creates a new parse error.
func Errorf(kind Kind, offset int, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Kind:   kind,
		Offset: offset,
		Msg:    fmt.Sprintf(format, args...),
	}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at offset %d: %s", e.Kind, e.Offset, e.Msg)
}

// Is makes every *ParseError match ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// KindOf returns the kind of a parse error contained in err's chain.
func KindOf(err error) (Kind, bool) {
	var perr *ParseError
	if errors.As(err, &perr) {
		return perr.Kind, true
	}
	return 0, false
}
