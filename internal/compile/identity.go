package compile

import (
	yangerrors "github.com/jacoelho/yang/errors"
	"github.com/jacoelho/yang/internal/ast"
	"github.com/jacoelho/yang/internal/compiled"
	"github.com/jacoelho/yang/internal/identity"
)

// compileIdentities builds the identity derivation DAG for m's own
// declarations plus, so a base identity in an imported module resolves,
// each directly-imported module's own top-level identities. It returns
// the compiled records for m's own identities, keyed by local name, per
// spec.md section 4.6 step 3.
func compileIdentities(m *ast.Module, imports map[string]*ast.Module) (map[string]*compiled.Identity, *identity.DAG, error) {
	declarations := make(map[identity.Key][]identity.Key, len(m.Body.Identities))
	out := make(map[string]*compiled.Identity, len(m.Body.Identities))

	resolve := identityKeyResolver(m, imports)
	for _, id := range m.Body.Identities {
		if _, dup := out[id.Name]; dup {
			return nil, nil, yangerrors.Newf(yangerrors.Validation, "identity %q declared more than once", id.Name)
		}
		bases := make([]identity.Key, 0, len(id.Bases))
		baseNames := make([]string, 0, len(id.Bases))
		for _, b := range id.Bases {
			k := resolve(b)
			bases = append(bases, k)
			baseNames = append(baseNames, k.Name)
		}
		key := identity.Key{Module: m.Name, Name: id.Name}
		declarations[key] = bases
		out[id.Name] = &compiled.Identity{Name: id.Name, Bases: baseNames}
	}

	// A base identity declared in an imported module needs its own node
	// in the DAG to be a valid IsDerivedFrom target; its own bases are
	// resolved within its own module only (a base that itself reaches
	// into a second import hop is not supported).
	for _, mod := range imports {
		for _, id := range mod.Body.Identities {
			key := identity.Key{Module: mod.Name, Name: id.Name}
			if _, ok := declarations[key]; ok {
				continue
			}
			bases := make([]identity.Key, 0, len(id.Bases))
			for _, b := range id.Bases {
				bases = append(bases, identity.Key{Module: mod.Name, Name: stripPrefix(b)})
			}
			declarations[key] = bases
		}
	}

	dag, err := identity.NewDAG(declarations)
	if err != nil {
		return nil, nil, err
	}
	return out, dag, nil
}
