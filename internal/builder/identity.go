package builder

import (
	"github.com/jacoelho/yang/internal/ast"
	"github.com/jacoelho/yang/internal/keyword"
)

var identityRules = []Rule{
	{Keyword: keyword.Base},
	{Keyword: keyword.Status, Unique: true},
	{Keyword: keyword.Description, Unique: true},
	{Keyword: keyword.Reference, Unique: true},
	{Keyword: keyword.IfFeature},
}

func buildIdentity(stmt *ast.Statement) (*ast.Identity, error) {
	p := childPath("", "identity:"+stmt.Arg)
	g, err := validateChildren(stmt, identityRules, ast.Version11, p)
	if err != nil {
		return nil, err
	}
	id := &ast.Identity{Name: stmt.Arg}
	for _, b := range g.all(keyword.Base) {
		id.Bases = append(id.Bases, b.Arg)
	}
	if id.Status, err = statusOf(g.one(keyword.Status)); err != nil {
		return nil, err
	}
	if d := g.one(keyword.Description); d != nil {
		id.Description = d.Arg
	}
	if r := g.one(keyword.Reference); r != nil {
		id.Reference = r.Arg
	}
	id.IfFeatures = ifFeaturesFrom(g.all(keyword.IfFeature))
	return id, nil
}

var featureRules = []Rule{
	{Keyword: keyword.IfFeature},
	{Keyword: keyword.Status, Unique: true},
	{Keyword: keyword.Description, Unique: true},
	{Keyword: keyword.Reference, Unique: true},
}

func buildFeature(stmt *ast.Statement) (*ast.Feature, error) {
	p := childPath("", "feature:"+stmt.Arg)
	g, err := validateChildren(stmt, featureRules, ast.Version1, p)
	if err != nil {
		return nil, err
	}
	f := &ast.Feature{Name: stmt.Arg}
	f.IfFeatures = ifFeaturesFrom(g.all(keyword.IfFeature))
	if f.Status, err = statusOf(g.one(keyword.Status)); err != nil {
		return nil, err
	}
	if d := g.one(keyword.Description); d != nil {
		f.Description = d.Arg
	}
	if r := g.one(keyword.Reference); r != nil {
		f.Reference = r.Arg
	}
	return f, nil
}

var extensionRules = []Rule{
	{Keyword: keyword.Argument, Unique: true},
	{Keyword: keyword.Status, Unique: true},
	{Keyword: keyword.Description, Unique: true},
	{Keyword: keyword.Reference, Unique: true},
}

var extensionArgumentRules = []Rule{
	{Keyword: keyword.YinElement, Unique: true},
}

func buildExtensionDef(stmt *ast.Statement) (*ast.ExtensionDef, error) {
	p := childPath("", "extension:"+stmt.Arg)
	g, err := validateChildren(stmt, extensionRules, ast.Version1, p)
	if err != nil {
		return nil, err
	}
	e := &ast.ExtensionDef{Name: stmt.Arg}
	if a := g.one(keyword.Argument); a != nil {
		e.ArgumentName = a.Arg
		ag, err2 := validateChildren(a, extensionArgumentRules, ast.Version1, childPath(p, "argument:"+a.Arg))
		if err2 != nil {
			return nil, err2
		}
		if ye := ag.one(keyword.YinElement); ye != nil {
			v, err3 := boolArg(ye)
			if err3 != nil {
				return nil, err3
			}
			e.YinElement = v
		}
	}
	if e.Status, err = statusOf(g.one(keyword.Status)); err != nil {
		return nil, err
	}
	if d := g.one(keyword.Description); d != nil {
		e.Description = d.Arg
	}
	if r := g.one(keyword.Reference); r != nil {
		e.Reference = r.Arg
	}
	return e, nil
}
