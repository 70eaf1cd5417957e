package builder

import (
	yangerrors "github.com/jacoelho/yang/errors"
	"github.com/jacoelho/yang/internal/ast"
	"github.com/jacoelho/yang/internal/keyword"
)

func buildDataNode(stmt *ast.Statement, parent *ast.Node, version ast.Version, path string) (*ast.Node, error) {
	switch stmt.Keyword {
	case keyword.Container:
		return buildContainer(stmt, parent, version, path)
	case keyword.List:
		return buildList(stmt, parent, version, path)
	case keyword.Leaf:
		return buildLeaf(stmt, parent, version, path)
	case keyword.LeafList:
		return buildLeafList(stmt, parent, version, path)
	case keyword.Choice:
		return buildChoice(stmt, parent, version, path)
	case keyword.Case:
		return buildCase(stmt, parent, version, path)
	case keyword.AnyData:
		return buildAnyDataOrXML(stmt, parent, ast.KindAnyData, path)
	case keyword.AnyXML:
		return buildAnyDataOrXML(stmt, parent, ast.KindAnyXML, path)
	case keyword.Uses:
		return buildUses(stmt, parent, version, path)
	default:
		return nil, yangerrors.Newf(yangerrors.Internal, "unexpected data-definition keyword %q", stmt.Local).AtPath(path)
	}
}

func commonNodeRules() []Rule {
	return []Rule{
		{Keyword: keyword.When, Unique: true},
		{Keyword: keyword.IfFeature},
		{Keyword: keyword.Status, Unique: true},
		{Keyword: keyword.Description, Unique: true},
		{Keyword: keyword.Reference, Unique: true},
	}
}

func bindCommon(n *ast.Node, g groups) error {
	n.When = whenFrom(g.one(keyword.When))
	n.IfFeatures = ifFeaturesFrom(g.all(keyword.IfFeature))
	var err error
	if n.Status, err = statusOf(g.one(keyword.Status)); err != nil {
		return err
	}
	if d := g.one(keyword.Description); d != nil {
		n.Description = d.Arg
	}
	if r := g.one(keyword.Reference); r != nil {
		n.Reference = r.Arg
	}
	n.Extensions = g.custom
	return nil
}

func dataDefRules() []Rule {
	return []Rule{
		{Keyword: keyword.Container}, {Keyword: keyword.List}, {Keyword: keyword.Leaf},
		{Keyword: keyword.LeafList}, {Keyword: keyword.Choice}, {Keyword: keyword.AnyData, V11Only: true},
		{Keyword: keyword.AnyXML}, {Keyword: keyword.Uses},
	}
}

func buildChildren(g groups, parent *ast.Node, version ast.Version, path string) ([]*ast.Node, error) {
	var out []*ast.Node
	for _, kw := range []keyword.ID{keyword.Container, keyword.List, keyword.Leaf,
		keyword.LeafList, keyword.Choice, keyword.AnyData, keyword.AnyXML, keyword.Uses} {
		for _, s := range g.all(kw) {
			n, err := buildDataNode(s, parent, version, path)
			if err != nil {
				return nil, err
			}
			out = append(out, n)
		}
	}
	return out, nil
}

func withRules(base []Rule, extra ...Rule) []Rule {
	return append(append([]Rule{}, base...), extra...)
}

func buildContainer(stmt *ast.Statement, parent *ast.Node, version ast.Version, path string) (*ast.Node, error) {
	p := childPath(path, "container:"+stmt.Arg)
	rules := withRules(commonNodeRules(),
		Rule{Keyword: keyword.Must}, Rule{Keyword: keyword.Presence, Unique: true},
		Rule{Keyword: keyword.Config, Unique: true}, Rule{Keyword: keyword.Typedef},
		Rule{Keyword: keyword.Grouping})
	rules = append(rules, dataDefRules()...)
	g, err := validateChildren(stmt, rules, version, p)
	if err != nil {
		return nil, err
	}
	n := &ast.Node{Kind: ast.KindContainer, Name: stmt.Arg, Parent: parent, Raw: stmt}
	if err := bindCommon(n, g); err != nil {
		return nil, err
	}
	n.Musts = mustsFrom(g.all(keyword.Must))
	if pr := g.one(keyword.Presence); pr != nil {
		n.Presence = pr.Arg
	}
	if n.Config, err = configOf(g.one(keyword.Config)); err != nil {
		return nil, err
	}
	if n.Typedefs, err = buildTypedefs(g.all(keyword.Typedef), version, p); err != nil {
		return nil, err
	}
	if n.Groupings, err = buildGroupings(g.all(keyword.Grouping), version, p); err != nil {
		return nil, err
	}
	if n.Children, err = buildChildren(g, n, version, p); err != nil {
		return nil, err
	}
	return n, nil
}

func buildList(stmt *ast.Statement, parent *ast.Node, version ast.Version, path string) (*ast.Node, error) {
	p := childPath(path, "list:"+stmt.Arg)
	rules := withRules(commonNodeRules(),
		Rule{Keyword: keyword.Must}, Rule{Keyword: keyword.Key, Unique: true},
		Rule{Keyword: keyword.Unique}, Rule{Keyword: keyword.Config, Unique: true},
		Rule{Keyword: keyword.MinElements, Unique: true}, Rule{Keyword: keyword.MaxElements, Unique: true},
		Rule{Keyword: keyword.OrderedBy, Unique: true}, Rule{Keyword: keyword.Typedef},
		Rule{Keyword: keyword.Grouping})
	rules = append(rules, dataDefRules()...)
	g, err := validateChildren(stmt, rules, version, p)
	if err != nil {
		return nil, err
	}
	n := &ast.Node{Kind: ast.KindList, Name: stmt.Arg, Parent: parent, Raw: stmt}
	if err := bindCommon(n, g); err != nil {
		return nil, err
	}
	n.Musts = mustsFrom(g.all(keyword.Must))
	if k := g.one(keyword.Key); k != nil {
		n.Key = k.Arg
	}
	for _, u := range g.all(keyword.Unique) {
		n.Unique = append(n.Unique, u.Arg)
	}
	if n.Config, err = configOf(g.one(keyword.Config)); err != nil {
		return nil, err
	}
	if me := g.one(keyword.MinElements); me != nil {
		if n.MinElements, err = uint64Arg(me, false); err != nil {
			return nil, err
		}
	}
	if me := g.one(keyword.MaxElements); me != nil {
		if n.MaxElements, err = uint64Arg(me, true); err != nil {
			return nil, err
		}
	}
	if n.OrderedBy, err = orderedByOf(g.one(keyword.OrderedBy)); err != nil {
		return nil, err
	}
	if n.Typedefs, err = buildTypedefs(g.all(keyword.Typedef), version, p); err != nil {
		return nil, err
	}
	if n.Groupings, err = buildGroupings(g.all(keyword.Grouping), version, p); err != nil {
		return nil, err
	}
	if n.Children, err = buildChildren(g, n, version, p); err != nil {
		return nil, err
	}
	return n, nil
}

func buildLeaf(stmt *ast.Statement, parent *ast.Node, version ast.Version, path string) (*ast.Node, error) {
	p := childPath(path, "leaf:"+stmt.Arg)
	rules := withRules(commonNodeRules(),
		Rule{Keyword: keyword.Type, Mandatory: true, Unique: true}, Rule{Keyword: keyword.Units, Unique: true},
		Rule{Keyword: keyword.Must}, Rule{Keyword: keyword.Default, Unique: true},
		Rule{Keyword: keyword.Config, Unique: true}, Rule{Keyword: keyword.Mandatory, Unique: true})
	g, err := validateChildren(stmt, rules, version, p)
	if err != nil {
		return nil, err
	}
	n := &ast.Node{Kind: ast.KindLeaf, Name: stmt.Arg, Parent: parent, Raw: stmt}
	if err := bindCommon(n, g); err != nil {
		return nil, err
	}
	if n.Type, err = buildTypeDescriptor(g.one(keyword.Type), version, p); err != nil {
		return nil, err
	}
	if u := g.one(keyword.Units); u != nil {
		n.Units = u.Arg
	}
	n.Musts = mustsFrom(g.all(keyword.Must))
	if d := g.one(keyword.Default); d != nil {
		n.Default = []string{d.Arg}
	}
	if n.Config, err = configOf(g.one(keyword.Config)); err != nil {
		return nil, err
	}
	if m := g.one(keyword.Mandatory); m != nil {
		v, err2 := boolArg(m)
		if err2 != nil {
			return nil, err2
		}
		n.Mandatory = &v
	}
	return n, nil
}

func buildLeafList(stmt *ast.Statement, parent *ast.Node, version ast.Version, path string) (*ast.Node, error) {
	p := childPath(path, "leaf-list:"+stmt.Arg)
	rules := withRules(commonNodeRules(),
		Rule{Keyword: keyword.Type, Mandatory: true, Unique: true}, Rule{Keyword: keyword.Units, Unique: true},
		Rule{Keyword: keyword.Must}, Rule{Keyword: keyword.Default},
		Rule{Keyword: keyword.Config, Unique: true}, Rule{Keyword: keyword.MinElements, Unique: true},
		Rule{Keyword: keyword.MaxElements, Unique: true}, Rule{Keyword: keyword.OrderedBy, Unique: true})
	g, err := validateChildren(stmt, rules, version, p)
	if err != nil {
		return nil, err
	}
	if len(g.all(keyword.Default)) > 1 && version == ast.Version1 {
		return nil, yangerrors.New(yangerrors.Validation, "multiple leaf-list defaults require yang-version 1.1").AtPath(p)
	}
	n := &ast.Node{Kind: ast.KindLeafList, Name: stmt.Arg, Parent: parent, Raw: stmt}
	if err := bindCommon(n, g); err != nil {
		return nil, err
	}
	if n.Type, err = buildTypeDescriptor(g.one(keyword.Type), version, p); err != nil {
		return nil, err
	}
	if u := g.one(keyword.Units); u != nil {
		n.Units = u.Arg
	}
	n.Musts = mustsFrom(g.all(keyword.Must))
	for _, d := range g.all(keyword.Default) {
		n.Default = append(n.Default, d.Arg)
	}
	if n.Config, err = configOf(g.one(keyword.Config)); err != nil {
		return nil, err
	}
	if me := g.one(keyword.MinElements); me != nil {
		if n.LeafListMin, err = uint64Arg(me, false); err != nil {
			return nil, err
		}
	}
	if me := g.one(keyword.MaxElements); me != nil {
		if n.LeafListMax, err = uint64Arg(me, true); err != nil {
			return nil, err
		}
	}
	if n.LeafListOrderedBy, err = orderedByOf(g.one(keyword.OrderedBy)); err != nil {
		return nil, err
	}
	return n, nil
}

func buildChoice(stmt *ast.Statement, parent *ast.Node, version ast.Version, path string) (*ast.Node, error) {
	p := childPath(path, "choice:"+stmt.Arg)
	rules := withRules(commonNodeRules(),
		Rule{Keyword: keyword.Default, Unique: true}, Rule{Keyword: keyword.Config, Unique: true},
		Rule{Keyword: keyword.Mandatory, Unique: true},
		Rule{Keyword: keyword.Case}, Rule{Keyword: keyword.Container}, Rule{Keyword: keyword.List},
		Rule{Keyword: keyword.Leaf}, Rule{Keyword: keyword.LeafList},
		Rule{Keyword: keyword.AnyData, V11Only: true}, Rule{Keyword: keyword.AnyXML},
		Rule{Keyword: keyword.Choice, V11Only: true})
	g, err := validateChildren(stmt, rules, version, p)
	if err != nil {
		return nil, err
	}
	n := &ast.Node{Kind: ast.KindChoice, Name: stmt.Arg, Parent: parent, Raw: stmt}
	if err := bindCommon(n, g); err != nil {
		return nil, err
	}
	if d := g.one(keyword.Default); d != nil {
		n.Default = []string{d.Arg}
	}
	if n.Config, err = configOf(g.one(keyword.Config)); err != nil {
		return nil, err
	}
	if m := g.one(keyword.Mandatory); m != nil {
		v, err2 := boolArg(m)
		if err2 != nil {
			return nil, err2
		}
		n.Mandatory = &v
	}
	for _, kw := range []keyword.ID{keyword.Case, keyword.Container, keyword.List, keyword.Leaf,
		keyword.LeafList, keyword.AnyData, keyword.AnyXML, keyword.Choice} {
		for _, s := range g.all(kw) {
			var child *ast.Node
			if kw == keyword.Case {
				child, err = buildCase(s, n, version, p)
			} else {
				child, err = buildDataNode(s, n, version, p)
			}
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, child)
		}
	}
	return n, nil
}

func buildCase(stmt *ast.Statement, parent *ast.Node, version ast.Version, path string) (*ast.Node, error) {
	p := childPath(path, "case:"+stmt.Arg)
	rules := append(commonNodeRules(), dataDefRules()...)
	g, err := validateChildren(stmt, rules, version, p)
	if err != nil {
		return nil, err
	}
	n := &ast.Node{Kind: ast.KindCase, Name: stmt.Arg, Parent: parent, Raw: stmt}
	if err := bindCommon(n, g); err != nil {
		return nil, err
	}
	if n.Children, err = buildChildren(g, n, version, p); err != nil {
		return nil, err
	}
	return n, nil
}

func buildAnyDataOrXML(stmt *ast.Statement, parent *ast.Node, kind ast.NodeKind, path string) (*ast.Node, error) {
	p := childPath(path, kind.String()+":"+stmt.Arg)
	rules := withRules(commonNodeRules(),
		Rule{Keyword: keyword.Must}, Rule{Keyword: keyword.Config, Unique: true}, Rule{Keyword: keyword.Mandatory, Unique: true})
	g, err := validateChildren(stmt, rules, ast.Version11, p)
	if err != nil {
		return nil, err
	}
	n := &ast.Node{Kind: kind, Name: stmt.Arg, Parent: parent, Raw: stmt}
	if err := bindCommon(n, g); err != nil {
		return nil, err
	}
	n.Musts = mustsFrom(g.all(keyword.Must))
	if n.Config, err = configOf(g.one(keyword.Config)); err != nil {
		return nil, err
	}
	if m := g.one(keyword.Mandatory); m != nil {
		v, err2 := boolArg(m)
		if err2 != nil {
			return nil, err2
		}
		n.Mandatory = &v
	}
	return n, nil
}

var refineRules = []Rule{
	{Keyword: keyword.IfFeature}, {Keyword: keyword.Must}, {Keyword: keyword.Presence, Unique: true},
	{Keyword: keyword.Default}, {Keyword: keyword.Config, Unique: true}, {Keyword: keyword.Mandatory, Unique: true},
	{Keyword: keyword.MinElements, Unique: true}, {Keyword: keyword.MaxElements, Unique: true},
	{Keyword: keyword.Description, Unique: true}, {Keyword: keyword.Reference, Unique: true},
}

func buildRefine(stmt *ast.Statement, version ast.Version, path string) (*ast.Refine, error) {
	p := childPath(path, "refine:"+stmt.Arg)
	g, err := validateChildren(stmt, refineRules, version, p)
	if err != nil {
		return nil, err
	}
	r := &ast.Refine{RelativePath: stmt.Arg}
	r.IfFeatures = ifFeaturesFrom(g.all(keyword.IfFeature))
	r.Musts = mustsFrom(g.all(keyword.Must))
	if pr := g.one(keyword.Presence); pr != nil {
		v := pr.Arg
		r.Presence = &v
	}
	for _, d := range g.all(keyword.Default) {
		r.Default = append(r.Default, d.Arg)
	}
	if c := g.one(keyword.Config); c != nil {
		cfg, err2 := configOf(c)
		if err2 != nil {
			return nil, err2
		}
		r.Config = &cfg
	}
	if m := g.one(keyword.Mandatory); m != nil {
		v, err2 := boolArg(m)
		if err2 != nil {
			return nil, err2
		}
		r.Mandatory = &v
	}
	if me := g.one(keyword.MinElements); me != nil {
		if r.MinElements, err = uint64Arg(me, false); err != nil {
			return nil, err
		}
	}
	if me := g.one(keyword.MaxElements); me != nil {
		if r.MaxElements, err = uint64Arg(me, true); err != nil {
			return nil, err
		}
	}
	if d := g.one(keyword.Description); d != nil {
		v := d.Arg
		r.Description = &v
	}
	if rf := g.one(keyword.Reference); rf != nil {
		v := rf.Arg
		r.Reference = &v
	}
	return r, nil
}

var usesRules = []Rule{
	{Keyword: keyword.When, Unique: true}, {Keyword: keyword.IfFeature},
	{Keyword: keyword.Status, Unique: true}, {Keyword: keyword.Description, Unique: true},
	{Keyword: keyword.Reference, Unique: true}, {Keyword: keyword.Refine}, {Keyword: keyword.Augment},
}

func buildUses(stmt *ast.Statement, parent *ast.Node, version ast.Version, path string) (*ast.Node, error) {
	p := childPath(path, "uses:"+stmt.Arg)
	g, err := validateChildren(stmt, usesRules, version, p)
	if err != nil {
		return nil, err
	}
	n := &ast.Node{Kind: ast.KindUses, Name: stmt.Arg, Parent: parent, GroupingRef: stmt.Arg, Raw: stmt}
	if err := bindCommon(n, g); err != nil {
		return nil, err
	}
	for _, r := range g.all(keyword.Refine) {
		rf, err2 := buildRefine(r, version, p)
		if err2 != nil {
			return nil, err2
		}
		n.Refines = append(n.Refines, rf)
	}
	for _, a := range g.all(keyword.Augment) {
		ag, err2 := buildAugment(a, version, p)
		if err2 != nil {
			return nil, err2
		}
		n.UsesAugments = append(n.UsesAugments, ag)
	}
	return n, nil
}
