package builder

import (
	"github.com/jacoelho/yang/internal/ast"
	"github.com/jacoelho/yang/internal/keyword"
)

func augmentRules(version ast.Version) []Rule {
	rules := []Rule{
		{Keyword: keyword.When, Unique: true},
		{Keyword: keyword.IfFeature},
		{Keyword: keyword.Status, Unique: true},
		{Keyword: keyword.Description, Unique: true},
		{Keyword: keyword.Reference, Unique: true},
		{Keyword: keyword.Container}, {Keyword: keyword.List}, {Keyword: keyword.Leaf},
		{Keyword: keyword.LeafList}, {Keyword: keyword.Choice}, {Keyword: keyword.AnyData, V11Only: true},
		{Keyword: keyword.AnyXML}, {Keyword: keyword.Uses}, {Keyword: keyword.Case},
	}
	if version == ast.Version11 {
		rules = append(rules, Rule{Keyword: keyword.Action}, Rule{Keyword: keyword.Notification})
	}
	return rules
}

func buildAugment(stmt *ast.Statement, version ast.Version, path string) (*ast.Augment, error) {
	p := childPath(path, "augment:"+stmt.Arg)
	g, err := validateChildren(stmt, augmentRules(version), version, p)
	if err != nil {
		return nil, err
	}
	a := &ast.Augment{TargetPath: stmt.Arg, Raw: stmt}
	a.When = whenFrom(g.one(keyword.When))
	a.IfFeatures = ifFeaturesFrom(g.all(keyword.IfFeature))
	if a.Status, err = statusOf(g.one(keyword.Status)); err != nil {
		return nil, err
	}
	if d := g.one(keyword.Description); d != nil {
		a.Description = d.Arg
	}
	if r := g.one(keyword.Reference); r != nil {
		a.Reference = r.Arg
	}
	if a.Children, err = buildChildren(g, nil, version, p); err != nil {
		return nil, err
	}
	for _, s := range g.all(keyword.Case) {
		n, err2 := buildCase(s, nil, version, p)
		if err2 != nil {
			return nil, err2
		}
		a.Children = append(a.Children, n)
	}
	for _, s := range g.all(keyword.Action) {
		n, err2 := buildRPC(s, version, p)
		if err2 != nil {
			return nil, err2
		}
		n.Kind = ast.KindAction
		a.Children = append(a.Children, n)
	}
	for _, s := range g.all(keyword.Notification) {
		n, err2 := buildNotification(s, version, p)
		if err2 != nil {
			return nil, err2
		}
		a.Children = append(a.Children, n)
	}
	return a, nil
}
