package builder

import (
	yangerrors "github.com/jacoelho/yang/errors"
	"github.com/jacoelho/yang/internal/ast"
	"github.com/jacoelho/yang/internal/keyword"
)

var typedefRules = []Rule{
	{Keyword: keyword.Type, Mandatory: true, Unique: true},
	{Keyword: keyword.Units, Unique: true},
	{Keyword: keyword.Default, Unique: true},
	{Keyword: keyword.Status, Unique: true},
	{Keyword: keyword.Description, Unique: true},
	{Keyword: keyword.Reference, Unique: true},
}

func buildTypedef(stmt *ast.Statement, version ast.Version, path string) (*ast.Typedef, error) {
	p := childPath(path, "typedef:"+stmt.Arg)
	g, err := validateChildren(stmt, typedefRules, version, p)
	if err != nil {
		return nil, err
	}
	td := &ast.Typedef{Name: stmt.Arg, Raw: stmt}
	if td.Type, err = buildTypeDescriptor(g.one(keyword.Type), version, p); err != nil {
		return nil, err
	}
	if u := g.one(keyword.Units); u != nil {
		td.Units = u.Arg
	}
	if d := g.one(keyword.Default); d != nil {
		td.Default = d.Arg
	}
	if td.Status, err = statusOf(g.one(keyword.Status)); err != nil {
		return nil, err
	}
	if d := g.one(keyword.Description); d != nil {
		td.Description = d.Arg
	}
	if r := g.one(keyword.Reference); r != nil {
		td.Reference = r.Arg
	}
	return td, nil
}

var typeRules = []Rule{
	{Keyword: keyword.Range, Unique: true},
	{Keyword: keyword.Length, Unique: true},
	{Keyword: keyword.Pattern},
	{Keyword: keyword.FractionDigits, Unique: true},
	{Keyword: keyword.Enum},
	{Keyword: keyword.Bit},
	{Keyword: keyword.Path, Unique: true},
	{Keyword: keyword.Base},
	{Keyword: keyword.RequireInstance, Unique: true},
	{Keyword: keyword.Type}, // union members, or nested restriction on a named type
}

func buildTypeDescriptor(stmt *ast.Statement, version ast.Version, path string) (*ast.TypeDescriptor, error) {
	if stmt == nil {
		return nil, yangerrors.New(yangerrors.Validation, "missing mandatory sub-statement \"type\"").AtPath(path)
	}
	p := childPath(path, "type:"+stmt.Arg)
	g, err := validateChildren(stmt, typeRules, version, p)
	if err != nil {
		return nil, err
	}
	td := &ast.TypeDescriptor{Name: stmt.Arg, Raw: stmt}

	if r := g.one(keyword.Range); r != nil {
		td.Range = &ast.RangeText{Text: r.Arg}
		if em := r.Find(keyword.ErrorMessage); em != nil {
			td.Range.ErrorMsg = em.Arg
		}
		if eat := r.Find(keyword.ErrorAppTag); eat != nil {
			td.Range.ErrorAppTag = eat.Arg
		}
		if d := r.Find(keyword.Description); d != nil {
			td.Range.Description = d.Arg
		}
		if rf := r.Find(keyword.Reference); rf != nil {
			td.Range.Reference = rf.Arg
		}
	}
	if l := g.one(keyword.Length); l != nil {
		td.Length = &ast.LengthText{Text: l.Arg}
		if em := l.Find(keyword.ErrorMessage); em != nil {
			td.Length.ErrorMsg = em.Arg
		}
		if eat := l.Find(keyword.ErrorAppTag); eat != nil {
			td.Length.ErrorAppTag = eat.Arg
		}
		if d := l.Find(keyword.Description); d != nil {
			td.Length.Description = d.Arg
		}
		if rf := l.Find(keyword.Reference); rf != nil {
			td.Length.Reference = rf.Arg
		}
	}
	for _, pat := range g.all(keyword.Pattern) {
		pt := ast.PatternText{Text: pat.Arg}
		if m := pat.Find(keyword.Modifier); m != nil && m.Arg == "invert-match" {
			pt.Invert = true
		}
		if em := pat.Find(keyword.ErrorMessage); em != nil {
			pt.ErrorMsg = em.Arg
		}
		if eat := pat.Find(keyword.ErrorAppTag); eat != nil {
			pt.ErrorAppTag = eat.Arg
		}
		if d := pat.Find(keyword.Description); d != nil {
			pt.Description = d.Arg
		}
		if rf := pat.Find(keyword.Reference); rf != nil {
			pt.Reference = rf.Arg
		}
		td.Patterns = append(td.Patterns, pt)
	}
	if fd := g.one(keyword.FractionDigits); fd != nil {
		var v uint8
		if scanErr := scanf(fd.Arg, &v); scanErr != nil {
			return nil, yangerrors.Newf(yangerrors.Validation, "invalid fraction-digits %q", fd.Arg).AtPath(p)
		}
		td.FractionDigits = &v
	}
	for _, e := range g.all(keyword.Enum) {
		et, err2 := buildEnumText(e)
		if err2 != nil {
			return nil, err2
		}
		td.Enums = append(td.Enums, et)
	}
	for _, b := range g.all(keyword.Bit) {
		bt, err2 := buildBitText(b)
		if err2 != nil {
			return nil, err2
		}
		td.Bits = append(td.Bits, bt)
	}
	if pa := g.one(keyword.Path); pa != nil {
		v := pa.Arg
		td.Path = &v
	}
	for _, b := range g.all(keyword.Base) {
		td.Bases = append(td.Bases, b.Arg)
	}
	if ri := g.one(keyword.RequireInstance); ri != nil {
		v, err2 := boolArg(ri)
		if err2 != nil {
			return nil, err2
		}
		td.RequireInstance = &v
	}
	for _, u := range g.all(keyword.Type) {
		member, err2 := buildTypeDescriptor(u, version, p)
		if err2 != nil {
			return nil, err2
		}
		td.Unions = append(td.Unions, member)
	}
	return td, nil
}

func buildEnumText(s *ast.Statement) (ast.EnumText, error) {
	e := ast.EnumText{Name: s.Arg}
	var err error
	if e.Status, err = statusOf(s.Find(keyword.Status)); err != nil {
		return e, err
	}
	if d := s.Find(keyword.Description); d != nil {
		e.Description = d.Arg
	}
	if r := s.Find(keyword.Reference); r != nil {
		e.Reference = r.Arg
	}
	e.IfFeatures = ifFeaturesFrom(s.FindAll(keyword.IfFeature))
	if v := s.Find(keyword.Value); v != nil {
		var n int64
		if scanErr := scanf(v.Arg, &n); scanErr != nil {
			return e, yangerrors.Newf(yangerrors.Validation, "invalid enum value %q", v.Arg)
		}
		e.Value = &n
	}
	return e, nil
}

func buildBitText(s *ast.Statement) (ast.BitText, error) {
	b := ast.BitText{Name: s.Arg}
	var err error
	if b.Status, err = statusOf(s.Find(keyword.Status)); err != nil {
		return b, err
	}
	if d := s.Find(keyword.Description); d != nil {
		b.Description = d.Arg
	}
	if r := s.Find(keyword.Reference); r != nil {
		b.Reference = r.Arg
	}
	b.IfFeatures = ifFeaturesFrom(s.FindAll(keyword.IfFeature))
	if p := s.Find(keyword.Position); p != nil {
		var n uint32
		if scanErr := scanf(p.Arg, &n); scanErr != nil {
			return b, yangerrors.Newf(yangerrors.Validation, "invalid bit position %q", p.Arg)
		}
		b.Position = &n
	}
	return b, nil
}
