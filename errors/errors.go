// Package errors defines the diagnostic kinds the core reports to callers.
//
// Every operation that can fail returns a *Error (or a list of them via
// List) tagged with a Kind, so callers can distinguish a malformed module
// from an unresolved reference without string matching.
package errors

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Kind classifies a diagnostic.
type Kind int

const (
	// Memory is an allocation failure; always fatal to the operation.
	Memory Kind = iota
	// Syntax is malformed input in either surface form.
	Syntax
	// Validation is syntactically well-formed input that violates a YANG rule.
	Validation
	// Unresolved is a reference that cannot be bound.
	Unresolved
	// Denied is legal YANG shape that is semantically rejected.
	Denied
	// Internal indicates an invariant violated inside the core itself.
	Internal
)

// String returns a stable lowercase label for the kind.
func (k Kind) String() string {
	switch k {
	case Memory:
		return "memory"
	case Syntax:
		return "syntax"
	case Validation:
		return "validation"
	case Unresolved:
		return "unresolved"
	case Denied:
		return "denied"
	case Internal:
		return "internal"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a single diagnostic: a kind, a human-readable message, and the
// schema-path breadcrumb of the statement or node where it was detected.
type Error struct {
	Kind    Kind
	Message string
	Path    string
	Line    int
	Column  int
	cause   error
}

// New creates an Error with no location information.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an Error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches kind and message context to an existing error, preserving
// its cause chain for errors.Cause/errors.Unwrap.
func Wrap(kind Kind, cause error, message string) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// AtPath returns a copy of e with its schema-path breadcrumb set.
func (e *Error) AtPath(path string) *Error {
	if e == nil {
		return nil
	}
	cp := *e
	cp.Path = path
	return &cp
}

// AtPosition returns a copy of e with line/column set.
func (e *Error) AtPosition(line, column int) *Error {
	if e == nil {
		return nil
	}
	cp := *e
	cp.Line, cp.Column = line, column
	return &cp
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %s", e.Kind, e.Message))
	if e.Path != "" {
		b.WriteString(fmt.Sprintf(" at %s", e.Path))
	}
	if e.Line > 0 {
		if e.Column > 0 {
			b.WriteString(fmt.Sprintf(" (line %d, column %d)", e.Line, e.Column))
		} else {
			b.WriteString(fmt.Sprintf(" (line %d)", e.Line))
		}
	}
	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}
	return b.String()
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Cause is equivalent to github.com/pkg/errors.Cause applied to e; it walks
// the innermost cause of the wrapped chain, not just one level.
func (e *Error) Cause() error {
	if e == nil || e.cause == nil {
		return nil
	}
	return errors.Cause(e.cause)
}

// List is a collection of diagnostics returned by an operation that may
// detect more than one problem (the parser and compiler both accumulate
// diagnostics for independent sub-statements before failing).
type List []*Error

// Error implements the error interface, summarizing the first diagnostic
// and the count of any others.
func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no diagnostics"
	case 1:
		return l[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", l[0].Error(), len(l)-1)
	}
}

// HasKind reports whether any diagnostic in the list has the given kind.
func (l List) HasKind(kind Kind) bool {
	for _, e := range l {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// First returns the first diagnostic, or nil if the list is empty.
func (l List) First() *Error {
	if len(l) == 0 {
		return nil
	}
	return l[0]
}
