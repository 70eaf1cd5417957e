// Package compile implements the schema compiler (component C5): it
// walks a parsed ast.Module, resolves every typedef/grouping/identity/
// feature cross-reference, composes restriction chains, expands uses and
// applies augments, and produces a fully resolved compiled.Module, per
// spec.md section 4.6.
package compile

import (
	"strings"

	"github.com/rs/zerolog"

	yangerrors "github.com/jacoelho/yang/errors"
	"github.com/jacoelho/yang/internal/ast"
	"github.com/jacoelho/yang/internal/compiled"
	"github.com/jacoelho/yang/internal/identity"
	"github.com/jacoelho/yang/internal/value"
)

// Options carries the collaborators and choices a compile pass needs
// beyond the parsed tree itself.
type Options struct {
	// RequestedFeatures is the set of feature names explicitly enabled.
	// When AllFeatures is true this set is ignored and every declared
	// feature is a candidate (still subject to its own if-feature gate).
	RequestedFeatures map[string]bool
	AllFeatures       bool

	CustomTypes map[string]*value.CustomType
	Paths       value.PathValidator

	// Modules is the Context's module registry, keyed by module name, used
	// to resolve m's own "import" statements (spec.md section 4.6 step 1).
	Modules map[string]*ast.Module

	// Tracer, when non-nil, receives a debug-level event for each compile
	// phase, per SPEC_FULL.md section 8.
	Tracer *zerolog.Logger
}

func (o Options) trace(module, phase string) {
	if o.Tracer == nil {
		return
	}
	o.Tracer.Debug().Str("module", module).Str("phase", phase).Msg("compiling")
}

// Module compiles m (and its included submodules' bodies, already
// merged into m.Body by the caller) into a compiled.Module.
func Module(m *ast.Module, opts Options) (*compiled.Module, error) {
	opts.trace(m.Name, "resolve-imports")
	imports, err := resolveImports(m, opts.Modules)
	if err != nil {
		return nil, err
	}

	opts.trace(m.Name, "features")
	features, err := compileFeatures(m.Body.Features, opts.RequestedFeatures, opts.AllFeatures)
	if err != nil {
		return nil, err
	}

	opts.trace(m.Name, "identities")
	identities, dag, err := compileIdentities(m, imports)
	if err != nil {
		return nil, err
	}

	root := newModuleScope(opts.CustomTypes, m.Name, m.Prefix, imports)
	root = root.push(m.Body.Typedefs, m.Body.Groupings)

	resolve := identityKeyResolver(m, imports)
	nc := &nodeCompiler{
		scope:    root,
		features: features,
		hints:    value.Hints{Identities: identityAdapter{dag, resolve}, Paths: opts.Paths},
	}

	opts.trace(m.Name, "data-defs")
	dataDefs, err := nc.compileChildren(m.Body.DataDefs, nil)
	if err != nil {
		return nil, err
	}
	opts.trace(m.Name, "augments")
	if err := applyTopLevelAugments(dataDefs, m.Body.Augments, nc); err != nil {
		return nil, err
	}
	opts.trace(m.Name, "deviations")
	dataDefs, err = applyDeviations(dataDefs, m.Body.Deviations, nc)
	if err != nil {
		return nil, err
	}

	opts.trace(m.Name, "rpcs")
	rpcs, err := compileOperationNodes(m.Body.Rpcs, nc)
	if err != nil {
		return nil, err
	}
	opts.trace(m.Name, "notifications")
	notifications, err := compileOperationNodes(m.Body.Notifications, nc)
	if err != nil {
		return nil, err
	}

	return &compiled.Module{
		Name:          m.Name,
		Namespace:     m.Namespace,
		Prefix:        m.Prefix,
		Version:       m.Version,
		Revisions:     sortedRevisions(m.Revisions),
		Identities:    identities,
		Features:      features,
		Rpcs:          rpcs,
		Notifications: notifications,
		DataDefs:      dataDefs,
	}, nil
}

// resolveImports implements spec.md section 4.6 step 1: for every import
// m declares, the imported module must already be registered (present
// in registry, keyed by name); when a revision-date is required, it must
// equal the registered module's latest revision. The result maps each
// import's local prefix to the resolved module.
func resolveImports(m *ast.Module, registry map[string]*ast.Module) (map[string]*ast.Module, error) {
	if len(m.Imports) == 0 {
		return nil, nil
	}
	out := make(map[string]*ast.Module, len(m.Imports))
	for _, imp := range m.Imports {
		mod, ok := registry[imp.Module]
		if !ok {
			return nil, yangerrors.Newf(yangerrors.Unresolved,
				"module %q imports %q: unresolved import", m.Name, imp.Module)
		}
		if imp.RevisionDate != "" {
			if latest := latestRevision(mod.Revisions); latest != imp.RevisionDate {
				return nil, yangerrors.Newf(yangerrors.Unresolved,
					"module %q imports %q at revision %q, but the registered module's latest revision is %q",
					m.Name, imp.Module, imp.RevisionDate, latest)
			}
		}
		out[imp.Prefix] = mod
	}
	return out, nil
}

func latestRevision(revisions []ast.Revision) string {
	var latest string
	for _, r := range revisions {
		if r.Date > latest {
			latest = r.Date
		}
	}
	return latest
}

// identityAdapter satisfies value.IdentitySet over a compiled identity
// DAG, using resolve to map a possibly-prefixed identityref text (an
// instance value, or a type's declared base) to the (module, name) key
// its prefix addresses, per spec.md section 4.5 ("the referenced
// identity exist in some module known to the Context").
type identityAdapter struct {
	dag     *identity.DAG
	resolve func(ref string) identity.Key
}

func (a identityAdapter) IsDerivedFrom(name, base string) bool {
	return a.dag.IsDerivedFrom(a.resolve(name), a.resolve(base))
}

// identityKeyResolver builds the (prefix -> module) resolution function
// for m: an unprefixed or self-prefixed reference stays in m, a
// reference prefixed with one of m's import prefixes resolves to that
// imported module's name.
func identityKeyResolver(m *ast.Module, imports map[string]*ast.Module) func(ref string) identity.Key {
	return func(ref string) identity.Key {
		prefix, local := splitPrefix(ref)
		if prefix == "" || prefix == m.Prefix {
			return identity.Key{Module: m.Name, Name: local}
		}
		if mod, ok := imports[prefix]; ok {
			return identity.Key{Module: mod.Name, Name: local}
		}
		return identity.Key{Module: m.Name, Name: local}
	}
}

// compileOperationNodes compiles rpc/action/notification top-level nodes:
// each carries its own typedef/grouping scope and input/output/body
// children, compiled the same way a container's children would be.
func compileOperationNodes(nodes []*ast.Node, nc *nodeCompiler) ([]*compiled.Node, error) {
	var out []*compiled.Node
	for _, n := range nodes {
		ok, err := ifFeaturesSatisfied(n.IfFeatures, nc.features)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		cn, err := nc.compileNode(n, nil)
		if err != nil {
			return nil, err
		}
		out = append(out, cn)
	}
	return out, nil
}

// applyTopLevelAugments grafts each top-level augment's children onto
// the already-compiled data tree addressed by its absolute target path,
// per spec.md section 4.6 step 6, rejecting a graft that collides with
// an existing child name.
func applyTopLevelAugments(tree []*compiled.Node, augments []*ast.Augment, nc *nodeCompiler) error {
	for _, ag := range augments {
		ok, err := ifFeaturesSatisfied(ag.IfFeatures, nc.features)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		target, err := findCompiledByAbsolutePath(tree, ag.TargetPath)
		if err != nil {
			return err
		}
		existing := make(map[string]bool, len(target.Children))
		for _, c := range target.Children {
			existing[c.Name] = true
		}
		compiledChildren, err := nc.compileChildren(ag.Children, target)
		if err != nil {
			return err
		}
		for _, c := range compiledChildren {
			if existing[c.Name] {
				return yangerrors.Newf(yangerrors.Validation, "augment %q introduces duplicate child %q", ag.TargetPath, c.Name)
			}
			target.Children = append(target.Children, c)
		}
	}
	return nil
}

func findCompiledByAbsolutePath(tree []*compiled.Node, path string) (*compiled.Node, error) {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	current := tree
	var found *compiled.Node
	for _, seg := range segments {
		name := stripPrefix(seg)
		found = nil
		for _, n := range current {
			if n.Name == name {
				found = n
				break
			}
		}
		if found == nil {
			return nil, yangerrors.Newf(yangerrors.Unresolved, "augment target path %q does not resolve", path)
		}
		current = found.Children
	}
	if found == nil {
		return nil, yangerrors.Newf(yangerrors.Unresolved, "augment target path %q is empty", path)
	}
	return found, nil
}

func sortedRevisions(revisions []ast.Revision) []ast.Revision {
	out := append([]ast.Revision{}, revisions...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Date > out[j-1].Date; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
