package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode identifies the class of a diagnostic.
type ErrorCode string

const (
	// ErrXMLParse indicates an instance document could not be parsed.
	ErrXMLParse ErrorCode = "xml-parse-error"
	// ErrNoRoot indicates an instance document has no root element.
	ErrNoRoot ErrorCode = "xsd-no-root"
	// ErrLexicalMalformed indicates a literal could not be parsed as the requested kind.
	ErrLexicalMalformed ErrorCode = "lexical-malformed"
	// ErrLexicalUnresolvedPrefix indicates a QName literal used an unbound prefix.
	ErrLexicalUnresolvedPrefix ErrorCode = "lexical-unresolved-prefix"
	// ErrModelInvariant indicates the inferred model broke a structural invariant.
	ErrModelInvariant ErrorCode = "model-invariant"
	// ErrSchemaRevalidation indicates an instance did not validate against the
	// schemas inferred from it.
	ErrSchemaRevalidation ErrorCode = "schema-revalidation"
)

// Diagnostic describes a data problem met while inferring schemas.
// Document names the instance it came from; Path and Line/Column locate it.
//
//nolint:errname // public API name uses the diagnostic domain term.
type Diagnostic struct {
	Code     string `json:"code" yaml:"code"`
	Message  string `json:"message" yaml:"message"`
	Document string `json:"document,omitempty" yaml:"document,omitempty"`
	Path     string `json:"path,omitempty" yaml:"path,omitempty"`
	Actual   string `json:"actual,omitempty" yaml:"actual,omitempty"`
	Line     int    `json:"line,omitempty" yaml:"line,omitempty"`
	Column   int    `json:"column,omitempty" yaml:"column,omitempty"`
}

// DiagnosticList is an error that wraps one or more diagnostics.
type DiagnosticList []Diagnostic //nolint:errname // public API name.

// Error returns a compact summary of the diagnostics.
func (l DiagnosticList) Error() string {
	switch len(l) {
	case 0:
		return "no diagnostics"
	case 1:
		return l[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", l[0].Error(), len(l)-1)
	}
}

// Error formats the diagnostic for display, including code, message, and context.
func (d *Diagnostic) Error() string {
	if d == nil {
		return "diagnostic <nil>"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", d.Code, d.Message)
	if d.Document != "" {
		fmt.Fprintf(&b, " in %s", d.Document)
	}
	if d.Path != "" {
		fmt.Fprintf(&b, " at %s", d.Path)
	}
	if d.Line > 0 && d.Column > 0 {
		fmt.Fprintf(&b, " (line %d, column %d)", d.Line, d.Column)
	}
	if d.Actual != "" {
		fmt.Fprintf(&b, " (actual: %q)", d.Actual)
	}
	return b.String()
}

// NewDiagnostic builds a Diagnostic with a code, message, and optional path.
func NewDiagnostic(code ErrorCode, msg, path string) Diagnostic {
	return Diagnostic{Code: string(code), Message: msg, Path: path}
}

// NewDiagnosticf formats a message and builds a Diagnostic.
func NewDiagnosticf(code ErrorCode, path, format string, args ...any) Diagnostic {
	return NewDiagnostic(code, fmt.Sprintf(format, args...), path)
}

// AsDiagnostics extracts diagnostics from an error returned by this module.
func AsDiagnostics(err error) ([]Diagnostic, bool) {
	if err == nil {
		return nil, false
	}
	var list DiagnosticList
	if errors.As(err, &list) {
		return []Diagnostic(list), true
	}
	var listPtr *DiagnosticList
	if errors.As(err, &listPtr) && listPtr != nil {
		return []Diagnostic(*listPtr), true
	}
	var one *Diagnostic
	if errors.As(err, &one) && one != nil {
		return []Diagnostic{*one}, true
	}
	return nil, false
}
