package builder

import (
	"github.com/jacoelho/yang/internal/ast"
	"github.com/jacoelho/yang/internal/keyword"
)

var rpcRules = []Rule{
	{Keyword: keyword.IfFeature},
	{Keyword: keyword.Status, Unique: true},
	{Keyword: keyword.Description, Unique: true},
	{Keyword: keyword.Reference, Unique: true},
	{Keyword: keyword.Typedef},
	{Keyword: keyword.Grouping},
	{Keyword: keyword.Input, Unique: true},
	{Keyword: keyword.Output, Unique: true},
}

func buildRPC(stmt *ast.Statement, version ast.Version, path string) (*ast.Node, error) {
	p := childPath(path, "rpc:"+stmt.Arg)
	g, err := validateChildren(stmt, rpcRules, version, p)
	if err != nil {
		return nil, err
	}
	n := &ast.Node{Kind: ast.KindRPC, Name: stmt.Arg, Raw: stmt}
	n.IfFeatures = ifFeaturesFrom(g.all(keyword.IfFeature))
	if n.Status, err = statusOf(g.one(keyword.Status)); err != nil {
		return nil, err
	}
	if d := g.one(keyword.Description); d != nil {
		n.Description = d.Arg
	}
	if r := g.one(keyword.Reference); r != nil {
		n.Reference = r.Arg
	}
	if n.Typedefs, err = buildTypedefs(g.all(keyword.Typedef), version, p); err != nil {
		return nil, err
	}
	if n.Groupings, err = buildGroupings(g.all(keyword.Grouping), version, p); err != nil {
		return nil, err
	}
	if in := g.one(keyword.Input); in != nil {
		io, err2 := buildIO(in, ast.KindInput, version, p)
		if err2 != nil {
			return nil, err2
		}
		io.Parent = n
		n.Children = append(n.Children, io)
	}
	if out := g.one(keyword.Output); out != nil {
		io, err2 := buildIO(out, ast.KindOutput, version, p)
		if err2 != nil {
			return nil, err2
		}
		io.Parent = n
		n.Children = append(n.Children, io)
	}
	return n, nil
}

var ioRules = []Rule{
	{Keyword: keyword.Typedef},
	{Keyword: keyword.Grouping},
	{Keyword: keyword.Container}, {Keyword: keyword.List}, {Keyword: keyword.Leaf},
	{Keyword: keyword.LeafList}, {Keyword: keyword.Choice}, {Keyword: keyword.AnyData, V11Only: true},
	{Keyword: keyword.AnyXML}, {Keyword: keyword.Uses},
}

func buildIO(stmt *ast.Statement, kind ast.NodeKind, version ast.Version, path string) (*ast.Node, error) {
	name := "input"
	if kind == ast.KindOutput {
		name = "output"
	}
	p := childPath(path, name)
	g, err := validateChildren(stmt, ioRules, version, p)
	if err != nil {
		return nil, err
	}
	n := &ast.Node{Kind: kind, Name: name, Raw: stmt}
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

var notificationRules = []Rule{
	{Keyword: keyword.When, Unique: true},
	{Keyword: keyword.IfFeature},
	{Keyword: keyword.Status, Unique: true},
	{Keyword: keyword.Description, Unique: true},
	{Keyword: keyword.Reference, Unique: true},
	{Keyword: keyword.Typedef},
	{Keyword: keyword.Grouping},
	{Keyword: keyword.Container}, {Keyword: keyword.List}, {Keyword: keyword.Leaf},
	{Keyword: keyword.LeafList}, {Keyword: keyword.Choice}, {Keyword: keyword.AnyData, V11Only: true},
	{Keyword: keyword.AnyXML}, {Keyword: keyword.Uses},
}

func buildNotification(stmt *ast.Statement, version ast.Version, path string) (*ast.Node, error) {
	p := childPath(path, "notification:"+stmt.Arg)
	g, err := validateChildren(stmt, notificationRules, version, p)
	if err != nil {
		return nil, err
	}
	n := &ast.Node{Kind: ast.KindNotification, Name: stmt.Arg, Raw: stmt}
	n.When = whenFrom(g.one(keyword.When))
	n.IfFeatures = ifFeaturesFrom(g.all(keyword.IfFeature))
	if n.Status, err = statusOf(g.one(keyword.Status)); err != nil {
		return nil, err
	}
	if d := g.one(keyword.Description); d != nil {
		n.Description = d.Arg
	}
	if r := g.one(keyword.Reference); r != nil {
		n.Reference = r.Arg
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

func buildTypedefs(list []*ast.Statement, version ast.Version, path string) ([]*ast.Typedef, error) {
	out := make([]*ast.Typedef, 0, len(list))
	for _, s := range list {
		td, err := buildTypedef(s, version, path)
		if err != nil {
			return nil, err
		}
		out = append(out, td)
	}
	return out, nil
}

func buildGroupings(list []*ast.Statement, version ast.Version, path string) ([]*ast.Grouping, error) {
	out := make([]*ast.Grouping, 0, len(list))
	for _, s := range list {
		gr, err := buildGrouping(s, version, path)
		if err != nil {
			return nil, err
		}
		out = append(out, gr)
	}
	return out, nil
}
