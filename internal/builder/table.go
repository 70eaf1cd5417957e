// Package builder implements the parsed-tree builder (component C3): it
// drives a recursive descent over the generic ast.Statement tree the
// readers produce, and for every keyword knows the required argument
// kind, the set of permitted sub-statements, and per sub-statement a
// flag bundle {unique, mandatory, must-be-first, version-1.1-only}.
//
// Per the original implementation's sub-statement tables (DESIGN NOTES,
// spec.md section 9), this is expressed as a declarative rule list per
// parent keyword rather than sorted arrays of (keyword, dest) with a
// type-erased destination pointer: validate groups children by keyword
// and checks the flag bundle, then each typed build function binds
// fields by structural pattern (field assignment or append), not through
// a shared erased setter.
package builder

import (
	"fmt"
	"strings"

	yangerrors "github.com/jacoelho/yang/errors"
	"github.com/jacoelho/yang/internal/ast"
	"github.com/jacoelho/yang/internal/keyword"
)

// Rule is one entry of a parent keyword's sub-statement table.
type Rule struct {
	Keyword    keyword.ID
	Unique     bool
	Mandatory  bool
	MustBeFirst bool
	V11Only    bool
}

// groups is the result of validating a statement's children against a
// Rule table: every recognized child grouped by keyword, in document
// order, plus the extension instances found among them.
type groups struct {
	by     map[keyword.ID][]*ast.Statement
	custom []*ast.Statement
}

func (g groups) one(kw keyword.ID) *ast.Statement {
	if list := g.by[kw]; len(list) > 0 {
		return list[0]
	}
	return nil
}

func (g groups) all(kw keyword.ID) []*ast.Statement {
	return g.by[kw]
}

// validateChildren enforces uniqueness, mandatory presence, must-be-first
// ordering, and the version-1.1 gate for stmt's children against rules,
// then groups the accepted children by keyword. An unrecognized,
// non-custom child keyword is a Validation error ("unexpected
// sub-statement"); a custom (extension) child is always accepted.
func validateChildren(stmt *ast.Statement, rules []Rule, version ast.Version, path string) (groups, error) {
	byKeyword := make(map[keyword.ID]Rule, len(rules))
	for _, r := range rules {
		byKeyword[r.Keyword] = r
	}

	g := groups{by: make(map[keyword.ID][]*ast.Statement)}

	seenNonFirst := false
	for _, child := range stmt.Children {
		if child.Keyword == keyword.Custom {
			g.custom = append(g.custom, child)
			continue
		}
		rule, ok := byKeyword[child.Keyword]
		if !ok {
			return groups{}, yangerrors.Newf(yangerrors.Validation,
				"unexpected sub-statement %q", child.Local).AtPath(path)
		}
		if rule.V11Only && version == ast.Version1 {
			return groups{}, yangerrors.Newf(yangerrors.Validation,
				"sub-statement %q requires yang-version 1.1", child.Local).AtPath(path)
		}
		if rule.MustBeFirst {
			if seenNonFirst || len(g.by[child.Keyword]) > 0 {
				return groups{}, yangerrors.Newf(yangerrors.Validation,
					"sub-statement %q must appear before any other sub-statement", child.Local).AtPath(path)
			}
		} else {
			seenNonFirst = true
		}
		if rule.Unique && len(g.by[child.Keyword]) > 0 {
			return groups{}, yangerrors.Newf(yangerrors.Validation,
				"sub-statement %q may appear at most once", child.Local).AtPath(path)
		}
		g.by[child.Keyword] = append(g.by[child.Keyword], child)
	}

	for _, r := range rules {
		if r.Mandatory && len(g.by[r.Keyword]) == 0 {
			return groups{}, yangerrors.Newf(yangerrors.Validation,
				"missing mandatory sub-statement %q", r.Keyword).AtPath(path)
		}
	}

	return g, nil
}

// childPath appends name to a schema-path breadcrumb.
func childPath(parent, name string) string {
	if parent == "" {
		return "/" + name
	}
	return parent + "/" + name
}

func statusOf(s *ast.Statement) (ast.Status, error) {
	if s == nil || !s.HasArg {
		return ast.StatusCurrent, nil
	}
	switch s.Arg {
	case "current":
		return ast.StatusCurrent, nil
	case "deprecated":
		return ast.StatusDeprecated, nil
	case "obsolete":
		return ast.StatusObsolete, nil
	default:
		return 0, yangerrors.Newf(yangerrors.Validation, "invalid status %q", s.Arg)
	}
}

func configOf(s *ast.Statement) (ast.Config, error) {
	if s == nil || !s.HasArg {
		return ast.ConfigInherit, nil
	}
	switch s.Arg {
	case "true":
		return ast.ConfigTrue, nil
	case "false":
		return ast.ConfigFalse, nil
	default:
		return 0, yangerrors.Newf(yangerrors.Validation, "invalid config value %q", s.Arg)
	}
}

func orderedByOf(s *ast.Statement) (ast.OrderedBy, error) {
	if s == nil || !s.HasArg {
		return ast.OrderedBySystem, nil
	}
	switch s.Arg {
	case "system":
		return ast.OrderedBySystem, nil
	case "user":
		return ast.OrderedByUser, nil
	default:
		return 0, yangerrors.Newf(yangerrors.Validation, "invalid ordered-by value %q", s.Arg)
	}
}

func boolArg(s *ast.Statement) (bool, error) {
	switch s.Arg {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, yangerrors.Newf(yangerrors.Validation, "invalid boolean value %q", s.Arg)
	}
}

func uint64Arg(s *ast.Statement, allowUnbounded bool) (*uint64, error) {
	if allowUnbounded && s.Arg == "unbounded" {
		return nil, nil
	}
	var v uint64
	if err := scanf(s.Arg, &v); err != nil {
		return nil, yangerrors.Newf(yangerrors.Validation, "invalid numeric value %q", s.Arg)
	}
	return &v, nil
}

// scanf parses a decimal numeric argument into dest using fmt.Fscanf,
// rejecting any input that does not fully consume the argument text.
func scanf(text string, dest any) error {
	r := strings.NewReader(text)
	n, err := fmt.Fscanf(r, "%d", dest)
	if err != nil {
		return err
	}
	if n != 1 {
		return fmt.Errorf("no numeric value scanned from %q", text)
	}
	if r.Len() != 0 {
		return fmt.Errorf("trailing characters after numeric value in %q", text)
	}
	return nil
}

func mustFrom(s *ast.Statement) Must {
	m := Must{Condition: s.Arg}
	if em := s.Find(keyword.ErrorMessage); em != nil {
		m.ErrorMsg = em.Arg
	}
	if eat := s.Find(keyword.ErrorAppTag); eat != nil {
		m.ErrorAppTag = eat.Arg
	}
	if d := s.Find(keyword.Description); d != nil {
		m.Description = d.Arg
	}
	if r := s.Find(keyword.Reference); r != nil {
		m.Reference = r.Arg
	}
	return m
}

// Must mirrors ast.Must; aliased locally to keep mustFrom terse.
type Must = ast.Must

func ifFeaturesFrom(list []*ast.Statement) []ast.IfFeature {
	out := make([]ast.IfFeature, 0, len(list))
	for _, s := range list {
		out = append(out, ast.IfFeature{Expression: s.Arg})
	}
	return out
}

func mustsFrom(list []*ast.Statement) []ast.Must {
	out := make([]ast.Must, 0, len(list))
	for _, s := range list {
		out = append(out, mustFrom(s))
	}
	return out
}

func whenFrom(s *ast.Statement) *ast.When {
	if s == nil {
		return nil
	}
	w := &ast.When{Condition: s.Arg}
	if d := s.Find(keyword.Description); d != nil {
		w.Description = d.Arg
	}
	if r := s.Find(keyword.Reference); r != nil {
		w.Reference = r.Arg
	}
	return w
}
