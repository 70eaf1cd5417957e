package builder

import (
	"github.com/jacoelho/yang/internal/ast"
	"github.com/jacoelho/yang/internal/keyword"
)

var groupingRules = []Rule{
	{Keyword: keyword.Status, Unique: true},
	{Keyword: keyword.Description, Unique: true},
	{Keyword: keyword.Reference, Unique: true},
	{Keyword: keyword.Typedef},
	{Keyword: keyword.Grouping},
	{Keyword: keyword.Container}, {Keyword: keyword.List}, {Keyword: keyword.Leaf},
	{Keyword: keyword.LeafList}, {Keyword: keyword.Choice}, {Keyword: keyword.AnyData, V11Only: true},
	{Keyword: keyword.AnyXML}, {Keyword: keyword.Uses},
	{Keyword: keyword.Action, V11Only: true}, {Keyword: keyword.Notification, V11Only: true},
}

func buildGrouping(stmt *ast.Statement, version ast.Version, path string) (*ast.Grouping, error) {
	p := childPath(path, "grouping:"+stmt.Arg)
	g, err := validateChildren(stmt, groupingRules, version, p)
	if err != nil {
		return nil, err
	}
	gr := &ast.Grouping{Name: stmt.Arg, Raw: stmt}
	if gr.Status, err = statusOf(g.one(keyword.Status)); err != nil {
		return nil, err
	}
	if d := g.one(keyword.Description); d != nil {
		gr.Description = d.Arg
	}
	if r := g.one(keyword.Reference); r != nil {
		gr.Reference = r.Arg
	}
	for _, s := range g.all(keyword.Typedef) {
		td, err2 := buildTypedef(s, version, p)
		if err2 != nil {
			return nil, err2
		}
		gr.Typedefs = append(gr.Typedefs, td)
	}
	for _, s := range g.all(keyword.Grouping) {
		inner, err2 := buildGrouping(s, version, p)
		if err2 != nil {
			return nil, err2
		}
		gr.Groupings = append(gr.Groupings, inner)
	}
	if gr.Children, err = buildChildren(g, nil, version, p); err != nil {
		return nil, err
	}
	for _, s := range g.all(keyword.Action) {
		n, err2 := buildRPC(s, version, p)
		if err2 != nil {
			return nil, err2
		}
		n.Kind = ast.KindAction
		gr.Children = append(gr.Children, n)
	}
	for _, s := range g.all(keyword.Notification) {
		n, err2 := buildNotification(s, version, p)
		if err2 != nil {
			return nil, err2
		}
		gr.Children = append(gr.Children, n)
	}
	return gr, nil
}
