// Package pathcheck implements component C10: a grammar-only validator
// for "path" (leafref) and "instance-identifier" argument text. It
// checks that the text parses as a well-formed expression; it never
// resolves a path against any actual data tree, which is explicitly out
// of scope (spec.md section 9, Non-goals).
package pathcheck

import (
	"strings"

	"github.com/antchfx/xpath"

	yangerrors "github.com/jacoelho/yang/errors"
	"github.com/jacoelho/yang/internal/value"
)

// Validator is a value.PathValidator grounded on antchfx/xpath's
// expression compiler: a YANG leafref path and an instance-identifier
// are both subsets of the XPath expression grammar, so asking xpath to
// compile the text (after translating the handful of YANG-only
// constructs it doesn't know about) is a faithful grammar check without
// writing a bespoke recursive-descent parser for it.
type Validator struct{}

// New returns a Validator. It holds no state; callers typically keep one
// shared instance and pass it to Context.SetPathValidator.
func New() Validator {
	return Validator{}
}

// Validate reports whether text is a syntactically well-formed leafref
// path or instance-identifier expression.
func (Validator) Validate(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return yangerrors.New(yangerrors.Syntax, "path expression must not be empty")
	}
	if _, err := xpath.Compile(translate(trimmed)); err != nil {
		return yangerrors.Wrap(yangerrors.Syntax, err, "malformed path expression "+quote(text))
	}
	return nil
}

// translate rewrites the YANG-only current() function, which
// antchfx/xpath's function table does not recognize, into the
// context-node step "." that it is defined to be equivalent to
// (RFC 7950 section 9.9.2); every other leafref/instance-identifier
// construct (predicates, "..", "/", qualified node names) is already
// valid XPath syntax.
func translate(expr string) string {
	return strings.ReplaceAll(expr, "current()", ".")
}

func quote(s string) string {
	return "\"" + strings.ReplaceAll(s, "\"", "\\\"") + "\""
}

var _ value.PathValidator = Validator{}
