package yang

import (
	"github.com/jacoelho/yang/internal/ast"
	"github.com/jacoelho/yang/internal/compile"
	"github.com/jacoelho/yang/internal/compiled"
)

// Module is a fully compiled schema: every typedef/grouping/uses is
// expanded, every restriction is composed, every identity and feature
// reference is resolved, and augments/deviations have been applied.
type Module struct {
	compiled *compiled.Module
}

// Compile compiles m (with every "include"d submodule already merged in
// via IncludeSubmodule) into a Module, per spec.md section 4.6. Every
// module m imports must already be registered on c (via ParseModule,
// ParseYINModule, or RegisterModule); an unregistered import, or one
// whose required revision-date doesn't match, fails the compile at step
// 1 ("resolve dependencies").
func (c *Context) Compile(m *ast.Module) (*Module, error) {
	out, err := compile.Module(m, compile.Options{
		RequestedFeatures: c.features,
		AllFeatures:       c.allFeatures,
		CustomTypes:       c.customTypes,
		Paths:             c.paths,
		Modules:           c.modules,
		Tracer:            c.tracer,
	})
	if err != nil {
		return nil, c.record(err)
	}
	return &Module{compiled: out}, nil
}

// Name, Namespace, Prefix, and Version return the compiled module's
// identity, per spec.md section 3.
func (m *Module) Name() string         { return m.compiled.Name }
func (m *Module) Namespace() string    { return m.compiled.Namespace }
func (m *Module) Prefix() string       { return m.compiled.Prefix }
func (m *Module) Version() ast.Version { return m.compiled.Version }

// Revisions returns the module's "revision" sub-statements, sorted
// descending by date.
func (m *Module) Revisions() []ast.Revision { return m.compiled.Revisions }

// DataDefs returns the module's top-level data-definition nodes (after
// uses expansion, augmentation, and deviation), in declaration order.
func (m *Module) DataDefs() []*Node {
	return wrapNodes(m.compiled.DataDefs)
}

// Rpcs returns the module's top-level "rpc" nodes.
func (m *Module) Rpcs() []*Node { return wrapNodes(m.compiled.Rpcs) }

// Notifications returns the module's top-level "notification" nodes.
func (m *Module) Notifications() []*Node { return wrapNodes(m.compiled.Notifications) }

// Feature reports whether name was declared on this module and, if so,
// whether it resolved to enabled.
func (m *Module) Feature(name string) (enabled, declared bool) {
	f, ok := m.compiled.Features[name]
	if !ok {
		return false, false
	}
	return f.Enabled, true
}

// IsDerivedFrom reports whether the identity named name is identical to
// or derives from the identity named base, both local to this module.
func (m *Module) IsDerivedFrom(name, base string) bool {
	target, ok := m.compiled.Identities[base]
	if !ok {
		return false
	}
	if name == base {
		return true
	}
	current, ok := m.compiled.Identities[name]
	if !ok {
		return false
	}
	visited := map[string]bool{name: true}
	var walk func(id *compiled.Identity) bool
	walk = func(id *compiled.Identity) bool {
		for _, b := range id.Bases {
			if b == target.Name {
				return true
			}
			if visited[b] {
				continue
			}
			visited[b] = true
			if next, ok := m.compiled.Identities[b]; ok && walk(next) {
				return true
			}
		}
		return false
	}
	return walk(current)
}
