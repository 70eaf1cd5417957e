package compile

import (
	yangerrors "github.com/jacoelho/yang/errors"
	"github.com/jacoelho/yang/internal/ast"
	"github.com/jacoelho/yang/internal/compiled"
)

// applyDeviations applies every deviation's deviate clauses, in
// declaration order, to the node addressed by its absolute target path,
// per spec.md section 4.6 step 9 and the ast.Deviate field semantics.
// "not-supported" removes the node from the compiled tree entirely.
func applyDeviations(tree []*compiled.Node, deviations []*ast.Deviation, nc *nodeCompiler) ([]*compiled.Node, error) {
	for _, d := range deviations {
		for _, dv := range d.Deviates {
			if dv.Kind == ast.DeviateNotSupported {
				var err error
				tree, err = removeByAbsolutePath(tree, d.TargetPath)
				if err != nil {
					return nil, err
				}
				continue
			}
			target, err := findCompiledByAbsolutePath(tree, d.TargetPath)
			if err != nil {
				return nil, err
			}
			if err := applyDeviate(target, dv, nc); err != nil {
				return nil, err
			}
		}
	}
	return tree, nil
}

func applyDeviate(target *compiled.Node, dv *ast.Deviate, nc *nodeCompiler) error {
	switch dv.Kind {
	case ast.DeviateAdd:
		return applyDeviateAddOrReplace(target, dv, nc, true)
	case ast.DeviateReplace:
		return applyDeviateAddOrReplace(target, dv, nc, false)
	case ast.DeviateDelete:
		if dv.Type != nil {
			target.Type = nil
		}
		if dv.Units != nil {
			target.Units = ""
		}
		target.Default = removeStrings(target.Default, dv.Default)
		target.Musts = removeMusts(target.Musts, dv.Musts)
		target.Unique = removeStrings(target.Unique, dv.Unique)
	default:
		return yangerrors.Newf(yangerrors.Internal, "unexpected deviate kind in applyDeviate: %v", dv.Kind)
	}
	return nil
}

// applyDeviateAddOrReplace implements spec.md section 4.6 step 9's "add"
// and "replace" deviate clauses. Both install dv's sub-properties onto
// target, but "add" must fail with a Validation error if the target
// already carries a value for a single-valued property dv also sets
// ("merges new sub-properties, failing on conflict"), while "replace"
// unconditionally overwrites.
func applyDeviateAddOrReplace(target *compiled.Node, dv *ast.Deviate, nc *nodeCompiler, failOnConflict bool) error {
	if dv.Type != nil {
		if failOnConflict && target.Type != nil {
			return yangerrors.Newf(yangerrors.Validation, "deviate add: node %q already has a type", target.Name)
		}
		ct, err := compileType(dv.Type, nc.scope, map[string]bool{})
		if err != nil {
			return err
		}
		target.Type = ct
	}
	if dv.Units != nil {
		if failOnConflict && target.Units != "" {
			return yangerrors.Newf(yangerrors.Validation, "deviate add: node %q already has units %q", target.Name, target.Units)
		}
		target.Units = *dv.Units
	}
	if len(dv.Default) > 0 {
		if failOnConflict && len(target.Default) > 0 {
			return yangerrors.Newf(yangerrors.Validation, "deviate add: node %q already has a default", target.Name)
		}
		target.Default = dv.Default
	}
	if dv.Config != nil {
		if failOnConflict && target.Config != ast.ConfigInherit {
			return yangerrors.Newf(yangerrors.Validation, "deviate add: node %q already has a config statement", target.Name)
		}
		target.Config = *dv.Config
	}
	if dv.Mandatory != nil {
		if failOnConflict && target.Mandatory != nil {
			return yangerrors.Newf(yangerrors.Validation, "deviate add: node %q already has a mandatory statement", target.Name)
		}
		target.Mandatory = dv.Mandatory
	}
	if dv.MinElements != nil {
		if failOnConflict && target.MinElements != nil {
			return yangerrors.Newf(yangerrors.Validation, "deviate add: node %q already has a min-elements statement", target.Name)
		}
		target.MinElements = dv.MinElements
	}
	if dv.MaxElements != nil {
		if failOnConflict && target.MaxElements != nil {
			return yangerrors.Newf(yangerrors.Validation, "deviate add: node %q already has a max-elements statement", target.Name)
		}
		target.MaxElements = dv.MaxElements
	}
	target.Musts = append(target.Musts, dv.Musts...)
	target.Unique = append(target.Unique, dv.Unique...)
	return nil
}

func removeStrings(from, remove []string) []string {
	if len(remove) == 0 {
		return from
	}
	drop := make(map[string]bool, len(remove))
	for _, r := range remove {
		drop[r] = true
	}
	out := make([]string, 0, len(from))
	for _, s := range from {
		if !drop[s] {
			out = append(out, s)
		}
	}
	return out
}

func removeMusts(from, remove []ast.Must) []ast.Must {
	if len(remove) == 0 {
		return from
	}
	drop := make(map[string]bool, len(remove))
	for _, r := range remove {
		drop[r.Condition] = true
	}
	out := make([]ast.Must, 0, len(from))
	for _, m := range from {
		if !drop[m.Condition] {
			out = append(out, m)
		}
	}
	return out
}

func removeByAbsolutePath(tree []*compiled.Node, path string) ([]*compiled.Node, error) {
	parentPath, name, hasParent := splitLastSegment(path)
	if !hasParent {
		return filterByName(tree, name), nil
	}
	parent, err := findCompiledByAbsolutePath(tree, parentPath)
	if err != nil {
		return nil, err
	}
	parent.Children = filterByName(parent.Children, name)
	return tree, nil
}

func filterByName(list []*compiled.Node, name string) []*compiled.Node {
	out := make([]*compiled.Node, 0, len(list))
	for _, n := range list {
		if n.Name != name {
			out = append(out, n)
		}
	}
	return out
}

func splitLastSegment(path string) (parent, last string, hasParent bool) {
	trimmed := path
	for len(trimmed) > 0 && trimmed[0] == '/' {
		trimmed = trimmed[1:]
	}
	idx := -1
	for i := len(trimmed) - 1; i >= 0; i-- {
		if trimmed[i] == '/' {
			idx = i
			break
		}
	}
	if idx < 0 {
		return "", stripPrefix(trimmed), false
	}
	return trimmed[:idx], stripPrefix(trimmed[idx+1:]), true
}
