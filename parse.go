package yang

import (
	yangerrors "github.com/jacoelho/yang/errors"
	"github.com/jacoelho/yang/internal/ast"
	"github.com/jacoelho/yang/internal/builder"
	"github.com/jacoelho/yang/internal/compactreader"
	"github.com/jacoelho/yang/internal/yinreader"
)

// ParseModule parses src (compact YANG syntax) into a Module's parsed
// tree, per spec.md section 4.3 (C3): lexing and keyword dispatch happen
// first (components C1/C2), then the tagged builder table produces the
// typed tree.
func (c *Context) ParseModule(src []byte) (*ast.Module, error) {
	stmt, err := compactreader.Read(src)
	if err != nil {
		return nil, c.record(err)
	}
	return c.buildModule(stmt)
}

// ParseYINModule parses src (YIN, the XML surface form of YANG) into the
// same ast.Module shape ParseModule produces, satisfying the "both
// surface forms build the same generic statement tree" requirement at
// the reader boundary (spec.md section 4.2).
func (c *Context) ParseYINModule(src []byte) (*ast.Module, error) {
	stmt, err := yinreader.Read(src)
	if err != nil {
		return nil, c.record(err)
	}
	return c.buildModule(stmt)
}

func (c *Context) buildModule(stmt *ast.Statement) (*ast.Module, error) {
	m, sub, err := builder.Build(stmt)
	if err != nil {
		return nil, c.record(err)
	}
	if m == nil {
		return nil, c.record(yangerrors.Newf(yangerrors.Syntax,
			"expected a top-level \"module\" statement, found submodule %q", sub.Name))
	}
	c.RegisterModule(m)
	return m, nil
}

// ParseSubmodule parses src (compact YANG syntax) into a Submodule's
// parsed tree, for inclusion into a main module via IncludeSubmodule.
func (c *Context) ParseSubmodule(src []byte) (*ast.Submodule, error) {
	stmt, err := compactreader.Read(src)
	if err != nil {
		return nil, c.record(err)
	}
	_, sub, err := builder.Build(stmt)
	if err != nil {
		return nil, c.record(err)
	}
	if sub == nil {
		return nil, c.record(yangerrors.New(yangerrors.Syntax, "expected a top-level \"submodule\" statement, found a module"))
	}
	return sub, nil
}

// IncludeSubmodule merges sub's body into m, per spec.md section 4.3's
// "submodules contribute to their main module's namespace": every
// typedef, grouping, identity, feature, extension, deviation, augment,
// rpc, notification, and data-definition sub declares becomes part of
// m's own body, as if written directly inside m.
func IncludeSubmodule(m *ast.Module, sub *ast.Submodule) error {
	if sub.BelongsTo != m.Name {
		return yangerrors.Newf(yangerrors.Validation,
			"submodule %q belongs to %q, not %q", sub.Name, sub.BelongsTo, m.Name)
	}
	m.Body.Typedefs = append(m.Body.Typedefs, sub.Body.Typedefs...)
	m.Body.Groupings = append(m.Body.Groupings, sub.Body.Groupings...)
	m.Body.Identities = append(m.Body.Identities, sub.Body.Identities...)
	m.Body.Features = append(m.Body.Features, sub.Body.Features...)
	m.Body.Extensions = append(m.Body.Extensions, sub.Body.Extensions...)
	m.Body.Deviations = append(m.Body.Deviations, sub.Body.Deviations...)
	m.Body.Augments = append(m.Body.Augments, sub.Body.Augments...)
	m.Body.Rpcs = append(m.Body.Rpcs, sub.Body.Rpcs...)
	m.Body.Notifications = append(m.Body.Notifications, sub.Body.Notifications...)
	m.Body.DataDefs = append(m.Body.DataDefs, sub.Body.DataDefs...)
	m.Body.Custom = append(m.Body.Custom, sub.Body.Custom...)
	return nil
}
