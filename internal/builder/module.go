package builder

import (
	yangerrors "github.com/jacoelho/yang/errors"
	"github.com/jacoelho/yang/internal/ast"
	"github.com/jacoelho/yang/internal/keyword"
)

// Build constructs a typed ast.Module or ast.Submodule from the generic
// statement tree a reader produced. It returns either, never both.
func Build(root *ast.Statement) (*ast.Module, *ast.Submodule, error) {
	switch root.Keyword {
	case keyword.Module:
		m, err := buildModule(root)
		return m, nil, err
	case keyword.Submodule:
		sm, err := buildSubmodule(root)
		return nil, sm, err
	default:
		return nil, nil, yangerrors.New(yangerrors.Denied,
			"top-level statement must be 'module' or 'submodule'")
	}
}

// bodyGroup classifies a direct child of module/submodule into the
// ordering group spec.md section 4.3 requires: header < linkage < meta <
// revision < body. Statements outside this fixed set (typedef, grouping,
// identity, feature, extension, deviation, augment, rpc, notification,
// every data-definition statement, and extension instances) fall into
// the body group.
func bodyGroup(kw keyword.ID) int {
	switch kw {
	case keyword.YangVersion, keyword.Namespace, keyword.Prefix, keyword.BelongsTo:
		return 0
	case keyword.Import, keyword.Include:
		return 1
	case keyword.Organization, keyword.Contact, keyword.Description, keyword.Reference:
		return 2
	case keyword.Revision:
		return 3
	default:
		return 4
	}
}

func checkBodyOrdering(stmt *ast.Statement) error {
	max := -1
	for _, c := range stmt.Children {
		g := bodyGroup(c.Keyword)
		if g < max {
			return yangerrors.Newf(yangerrors.Validation,
				"sub-statement %q is out of order in the module body", c.Local)
		}
		if g > max {
			max = g
		}
	}
	return nil
}

func versionOf(stmt *ast.Statement) (ast.Version, error) {
	v := stmt.Find(keyword.YangVersion)
	if v == nil {
		return ast.Version1, nil
	}
	switch v.Arg {
	case "1", "1.0":
		return ast.Version1, nil
	case "1.1":
		return ast.Version11, nil
	default:
		return 0, yangerrors.Newf(yangerrors.Validation, "unsupported yang-version %q", v.Arg)
	}
}

var moduleRules = []Rule{
	{Keyword: keyword.YangVersion, Unique: true, MustBeFirst: false},
	{Keyword: keyword.Namespace, Unique: true, Mandatory: true},
	{Keyword: keyword.Prefix, Unique: true, Mandatory: true},
	{Keyword: keyword.Import},
	{Keyword: keyword.Include},
	{Keyword: keyword.Organization, Unique: true},
	{Keyword: keyword.Contact, Unique: true},
	{Keyword: keyword.Description, Unique: true},
	{Keyword: keyword.Reference, Unique: true},
	{Keyword: keyword.Revision},
	{Keyword: keyword.Typedef},
	{Keyword: keyword.Grouping},
	{Keyword: keyword.Identity},
	{Keyword: keyword.Feature},
	{Keyword: keyword.Extension},
	{Keyword: keyword.Deviation},
	{Keyword: keyword.Augment},
	{Keyword: keyword.Rpc},
	{Keyword: keyword.Notification},
	{Keyword: keyword.Container},
	{Keyword: keyword.List},
	{Keyword: keyword.Leaf},
	{Keyword: keyword.LeafList},
	{Keyword: keyword.Choice},
	{Keyword: keyword.Case},
	{Keyword: keyword.AnyData, V11Only: true},
	{Keyword: keyword.AnyXML},
	{Keyword: keyword.Uses},
}

var submoduleRules = func() []Rule {
	out := make([]Rule, 0, len(moduleRules)+1)
	for _, r := range moduleRules {
		if r.Keyword == keyword.Namespace || r.Keyword == keyword.Prefix {
			continue
		}
		out = append(out, r)
	}
	return append(out, Rule{Keyword: keyword.BelongsTo, Unique: true, Mandatory: true})
}()

func buildModule(stmt *ast.Statement) (*ast.Module, error) {
	if !stmt.HasArg {
		return nil, yangerrors.New(yangerrors.Validation, "module requires a name argument")
	}
	if err := checkBodyOrdering(stmt); err != nil {
		return nil, err
	}
	version, err := versionOf(stmt)
	if err != nil {
		return nil, err
	}
	g, err := validateChildren(stmt, moduleRules, version, "/"+stmt.Arg)
	if err != nil {
		return nil, err
	}

	m := &ast.Module{Name: stmt.Arg, Version: version, Raw: stmt}
	m.Namespace = g.one(keyword.Namespace).Arg
	m.Prefix = g.one(keyword.Prefix).Arg
	if o := g.one(keyword.Organization); o != nil {
		m.Organization = o.Arg
	}
	if c := g.one(keyword.Contact); c != nil {
		m.Contact = c.Arg
	}
	if d := g.one(keyword.Description); d != nil {
		m.Description = d.Arg
	}
	if r := g.one(keyword.Reference); r != nil {
		m.Reference = r.Arg
	}

	if m.Revisions, err = buildRevisions(g.all(keyword.Revision)); err != nil {
		return nil, err
	}
	if m.Imports, err = buildImports(g.all(keyword.Import)); err != nil {
		return nil, err
	}
	if m.Includes, err = buildIncludes(g.all(keyword.Include)); err != nil {
		return nil, err
	}
	if m.Body, err = buildBody(g, version, "/"+m.Name); err != nil {
		return nil, err
	}
	return m, nil
}

func buildSubmodule(stmt *ast.Statement) (*ast.Submodule, error) {
	if !stmt.HasArg {
		return nil, yangerrors.New(yangerrors.Validation, "submodule requires a name argument")
	}
	if err := checkBodyOrdering(stmt); err != nil {
		return nil, err
	}
	version, err := versionOf(stmt)
	if err != nil {
		return nil, err
	}
	g, err := validateChildren(stmt, submoduleRules, version, "/"+stmt.Arg)
	if err != nil {
		return nil, err
	}

	sm := &ast.Submodule{Name: stmt.Arg, Version: version, Raw: stmt}
	bt := g.one(keyword.BelongsTo)
	sm.BelongsTo = bt.Arg
	if p := bt.Find(keyword.Prefix); p != nil {
		sm.Prefix = p.Arg
	} else {
		return nil, yangerrors.New(yangerrors.Validation, "belongs-to requires a prefix sub-statement")
	}
	if o := g.one(keyword.Organization); o != nil {
		sm.Organization = o.Arg
	}
	if c := g.one(keyword.Contact); c != nil {
		sm.Contact = c.Arg
	}
	if d := g.one(keyword.Description); d != nil {
		sm.Description = d.Arg
	}
	if r := g.one(keyword.Reference); r != nil {
		sm.Reference = r.Arg
	}
	if sm.Revisions, err = buildRevisions(g.all(keyword.Revision)); err != nil {
		return nil, err
	}
	if sm.Imports, err = buildImports(g.all(keyword.Import)); err != nil {
		return nil, err
	}
	if sm.Includes, err = buildIncludes(g.all(keyword.Include)); err != nil {
		return nil, err
	}
	if sm.Body, err = buildBody(g, version, "/"+sm.Name); err != nil {
		return nil, err
	}
	return sm, nil
}

func buildRevisions(list []*ast.Statement) ([]ast.Revision, error) {
	out := make([]ast.Revision, 0, len(list))
	for _, s := range list {
		r := ast.Revision{Date: s.Arg}
		if d := s.Find(keyword.Description); d != nil {
			r.Description = d.Arg
		}
		if rf := s.Find(keyword.Reference); rf != nil {
			r.Reference = rf.Arg
		}
		out = append(out, r)
	}
	return out, nil
}

func buildImports(list []*ast.Statement) ([]ast.Import, error) {
	out := make([]ast.Import, 0, len(list))
	for _, s := range list {
		imp := ast.Import{Module: s.Arg}
		p := s.Find(keyword.Prefix)
		if p == nil {
			return nil, yangerrors.Newf(yangerrors.Validation, "import %q requires a prefix", s.Arg)
		}
		imp.Prefix = p.Arg
		if rd := s.Find(keyword.RevisionDate); rd != nil {
			imp.RevisionDate = rd.Arg
		}
		if d := s.Find(keyword.Description); d != nil {
			imp.Description = d.Arg
		}
		if r := s.Find(keyword.Reference); r != nil {
			imp.Reference = r.Arg
		}
		out = append(out, imp)
	}
	return out, nil
}

func buildIncludes(list []*ast.Statement) ([]ast.Include, error) {
	out := make([]ast.Include, 0, len(list))
	for _, s := range list {
		inc := ast.Include{Submodule: s.Arg}
		if rd := s.Find(keyword.RevisionDate); rd != nil {
			inc.RevisionDate = rd.Arg
		}
		if d := s.Find(keyword.Description); d != nil {
			inc.Description = d.Arg
		}
		if r := s.Find(keyword.Reference); r != nil {
			inc.Reference = r.Arg
		}
		out = append(out, inc)
	}
	return out, nil
}

func buildBody(g groups, version ast.Version, path string) (ast.Body, error) {
	var body ast.Body
	var err error

	for _, s := range g.all(keyword.Typedef) {
		td, err2 := buildTypedef(s, version, path)
		if err2 != nil {
			return body, err2
		}
		body.Typedefs = append(body.Typedefs, td)
	}
	for _, s := range g.all(keyword.Grouping) {
		gr, err2 := buildGrouping(s, version, path)
		if err2 != nil {
			return body, err2
		}
		body.Groupings = append(body.Groupings, gr)
	}
	for _, s := range g.all(keyword.Identity) {
		id, err2 := buildIdentity(s)
		if err2 != nil {
			return body, err2
		}
		body.Identities = append(body.Identities, id)
	}
	for _, s := range g.all(keyword.Feature) {
		f, err2 := buildFeature(s)
		if err2 != nil {
			return body, err2
		}
		body.Features = append(body.Features, f)
	}
	for _, s := range g.all(keyword.Extension) {
		e, err2 := buildExtensionDef(s)
		if err2 != nil {
			return body, err2
		}
		body.Extensions = append(body.Extensions, e)
	}
	for _, s := range g.all(keyword.Deviation) {
		d, err2 := buildDeviation(s)
		if err2 != nil {
			return body, err2
		}
		body.Deviations = append(body.Deviations, d)
	}
	for _, s := range g.all(keyword.Augment) {
		a, err2 := buildAugment(s, version, path)
		if err2 != nil {
			return body, err2
		}
		body.Augments = append(body.Augments, a)
	}
	for _, s := range g.all(keyword.Rpc) {
		n, err2 := buildRPC(s, version, path)
		if err2 != nil {
			return body, err2
		}
		body.Rpcs = append(body.Rpcs, n)
	}
	for _, s := range g.all(keyword.Notification) {
		n, err2 := buildNotification(s, version, path)
		if err2 != nil {
			return body, err2
		}
		body.Notifications = append(body.Notifications, n)
	}
	dataKinds := []keyword.ID{keyword.Container, keyword.List, keyword.Leaf,
		keyword.LeafList, keyword.Choice, keyword.AnyData, keyword.AnyXML, keyword.Uses}
	for _, kw := range dataKinds {
		for _, s := range g.all(kw) {
			n, err2 := buildDataNode(s, nil, version, path)
			if err2 != nil {
				return body, err2
			}
			body.DataDefs = append(body.DataDefs, n)
		}
	}
	body.Custom = g.custom
	return body, err
}
