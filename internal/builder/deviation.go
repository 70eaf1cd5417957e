package builder

import (
	yangerrors "github.com/jacoelho/yang/errors"
	"github.com/jacoelho/yang/internal/ast"
	"github.com/jacoelho/yang/internal/keyword"
)

var deviationRules = []Rule{
	{Keyword: keyword.Description, Unique: true},
	{Keyword: keyword.Reference, Unique: true},
	{Keyword: keyword.Deviate, Mandatory: true},
}

func buildDeviation(stmt *ast.Statement) (*ast.Deviation, error) {
	p := childPath("", "deviation:"+stmt.Arg)
	g, err := validateChildren(stmt, deviationRules, ast.Version11, p)
	if err != nil {
		return nil, err
	}
	d := &ast.Deviation{TargetPath: stmt.Arg}
	if desc := g.one(keyword.Description); desc != nil {
		d.Description = desc.Arg
	}
	if r := g.one(keyword.Reference); r != nil {
		d.Reference = r.Arg
	}
	for _, s := range g.all(keyword.Deviate) {
		dv, err2 := buildDeviate(s, p)
		if err2 != nil {
			return nil, err2
		}
		d.Deviates = append(d.Deviates, dv)
	}
	return d, nil
}

var deviateRules = []Rule{
	{Keyword: keyword.Type, Unique: true},
	{Keyword: keyword.Units, Unique: true},
	{Keyword: keyword.Default},
	{Keyword: keyword.Config, Unique: true},
	{Keyword: keyword.Mandatory, Unique: true},
	{Keyword: keyword.MinElements, Unique: true},
	{Keyword: keyword.MaxElements, Unique: true},
	{Keyword: keyword.Must},
	{Keyword: keyword.Unique},
}

func buildDeviate(stmt *ast.Statement, path string) (*ast.Deviate, error) {
	var kind ast.DeviateKind
	switch stmt.Arg {
	case "not-supported":
		kind = ast.DeviateNotSupported
	case "add":
		kind = ast.DeviateAdd
	case "replace":
		kind = ast.DeviateReplace
	case "delete":
		kind = ast.DeviateDelete
	default:
		return nil, yangerrors.Newf(yangerrors.Validation, "invalid deviate argument %q", stmt.Arg).AtPath(path)
	}
	p := childPath(path, "deviate:"+stmt.Arg)
	if kind == ast.DeviateNotSupported {
		if len(stmt.Children) > 0 {
			return nil, yangerrors.New(yangerrors.Validation, "deviate \"not-supported\" takes no sub-statements").AtPath(p)
		}
		return &ast.Deviate{Kind: kind}, nil
	}
	g, err := validateChildren(stmt, deviateRules, ast.Version11, p)
	if err != nil {
		return nil, err
	}
	dv := &ast.Deviate{Kind: kind}
	if t := g.one(keyword.Type); t != nil {
		if dv.Type, err = buildTypeDescriptor(t, ast.Version11, p); err != nil {
			return nil, err
		}
	}
	if u := g.one(keyword.Units); u != nil {
		v := u.Arg
		dv.Units = &v
	}
	for _, d := range g.all(keyword.Default) {
		dv.Default = append(dv.Default, d.Arg)
	}
	if c := g.one(keyword.Config); c != nil {
		cfg, err2 := configOf(c)
		if err2 != nil {
			return nil, err2
		}
		dv.Config = &cfg
	}
	if m := g.one(keyword.Mandatory); m != nil {
		v, err2 := boolArg(m)
		if err2 != nil {
			return nil, err2
		}
		dv.Mandatory = &v
	}
	if me := g.one(keyword.MinElements); me != nil {
		if dv.MinElements, err = uint64Arg(me, false); err != nil {
			return nil, err
		}
	}
	if me := g.one(keyword.MaxElements); me != nil {
		if dv.MaxElements, err = uint64Arg(me, true); err != nil {
			return nil, err
		}
	}
	dv.Musts = mustsFrom(g.all(keyword.Must))
	for _, u := range g.all(keyword.Unique) {
		dv.Unique = append(dv.Unique, u.Arg)
	}
	return dv, nil
}
