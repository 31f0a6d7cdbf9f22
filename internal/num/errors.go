package num

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax is matched by every ParseError that is not a range error.
	ErrSyntax = errors.New("invalid numeric syntax")
	// ErrRange is matched by ParseErrors for values outside the target type.
	ErrRange = errors.New("numeric value out of range")
)

// ParseError describes why a numeric lexical value was rejected and at which
// byte offset.
type ParseError struct {
	Kind   ParseErrKind
	Offset int
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s at offset %d", e.Kind, e.Offset)
}

// Unwrap lets errors.Is match ErrSyntax or ErrRange.
func (e *ParseError) Unwrap() error {
	if e.Kind == ParseOverflow {
		return ErrRange
	}
	return ErrSyntax
}

func fail(kind ParseErrKind, offset int) *ParseError {
	return &ParseError{Kind: kind, Offset: offset}
}

// ParseErrKind identifies a parse failure category.
type ParseErrKind uint8

const (
	ParseEmpty ParseErrKind = iota + 1
	ParseBadChar
	ParseMultipleSigns
	ParseMultipleDots
	ParseNoDigits
	ParseOverflow
	ParseBadSuffix
)

var parseErrNames = [...]string{
	ParseEmpty:         "empty",
	ParseBadChar:       "bad character",
	ParseMultipleSigns: "multiple signs",
	ParseMultipleDots:  "multiple dots",
	ParseNoDigits:      "no digits",
	ParseOverflow:      "out of range",
	ParseBadSuffix:     "type suffix not allowed",
}

func (k ParseErrKind) String() string {
	if int(k) < len(parseErrNames) && parseErrNames[k] != "" {
		return parseErrNames[k]
	}
	return "invalid"
}
