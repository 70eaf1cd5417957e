package compile

import (
	yangerrors "github.com/jacoelho/yang/errors"
	"github.com/jacoelho/yang/internal/ast"
	"github.com/jacoelho/yang/internal/compiled"
)

// compileFeatures decides Enabled for every declared feature: a feature
// with no if-feature sub-statements is enabled iff it was requested (or
// the requested set is empty, meaning "all"); one that carries
// if-feature sub-statements is additionally gated by those other
// features' own resolved state, per spec.md section 4.6 step 4.
//
// A feature's if-feature expression may only reference features already
// declared; a reference cycle is fatal.
func compileFeatures(decls []*ast.Feature, requested map[string]bool, all bool) (map[string]*compiled.Feature, error) {
	byName := make(map[string]*ast.Feature, len(decls))
	for _, f := range decls {
		if _, dup := byName[f.Name]; dup {
			return nil, yangerrors.Newf(yangerrors.Validation, "feature %q declared more than once", f.Name)
		}
		byName[f.Name] = f
	}

	resolved := make(map[string]bool, len(decls))
	out := make(map[string]*compiled.Feature, len(decls))
	visiting := make(map[string]bool)

	var resolve func(name string) (bool, error)
	resolve = func(name string) (bool, error) {
		if v, ok := resolved[name]; ok {
			return v, nil
		}
		if visiting[name] {
			return false, yangerrors.Newf(yangerrors.Denied, "feature %q participates in a cyclic if-feature reference", name)
		}
		decl, ok := byName[name]
		if !ok {
			return false, yangerrors.Newf(yangerrors.Unresolved, "if-feature references unknown feature %q", name)
		}
		visiting[name] = true
		requestedOrAll := all || requested[name]
		enabled := requestedOrAll
		for _, ifFeature := range decl.IfFeatures {
			expr, err := parseIfFeature(ifFeature.Expression)
			if err != nil {
				return false, err
			}
			gate := make(map[string]bool)
			for _, tok := range tokenizeIfFeature(ifFeature.Expression) {
				switch tok {
				case "and", "or", "not", "(", ")":
					continue
				}
				ref := stripPrefix(tok)
				v, err := resolve(ref)
				if err != nil {
					return false, err
				}
				gate[ref] = v
			}
			if !expr.eval(gate) {
				enabled = false
			}
		}
		visiting[name] = false
		resolved[name] = enabled
		return enabled, nil
	}

	for name := range byName {
		enabled, err := resolve(name)
		if err != nil {
			return nil, err
		}
		out[name] = &compiled.Feature{Name: name, Enabled: enabled}
	}
	return out, nil
}

// ifFeaturesSatisfied reports whether every if-feature sub-statement in
// list evaluates to true against the compiled feature set — the gate
// applied to any node, refine, augment, enum, or bit that carries
// if-feature sub-statements (spec.md section 4.6 step 4: nodes gated by a
// disabled feature are pruned from the compiled tree).
func ifFeaturesSatisfied(list []ast.IfFeature, features map[string]*compiled.Feature) (bool, error) {
	gate := make(map[string]bool, len(features))
	for name, f := range features {
		gate[name] = f.Enabled
	}
	for _, ifFeature := range list {
		expr, err := parseIfFeature(ifFeature.Expression)
		if err != nil {
			return false, err
		}
		if !expr.eval(gate) {
			return false, nil
		}
	}
	return true, nil
}
