package compile

import (
	"github.com/jacoelho/yang/internal/ast"
	"github.com/jacoelho/yang/internal/value"
)

// scope is the lexical lookup environment for typedef/grouping names
// visible at some point in the body: the module's own top-level
// definitions, its submodules' (via include), and any ancestor
// container/list/rpc/action/notification/grouping's local definitions,
// innermost first. It also carries the owning module's own prefix and
// its resolved imports, so a prefixed reference can be told apart from
// a local one and followed into the imported module's top-level
// typedefs/groupings, per spec.md section 4.6 step 1.
type scope struct {
	typedefs    []map[string]*ast.Typedef
	groupings   []map[string]*ast.Grouping
	customTypes map[string]*value.CustomType

	ownPrefix  string
	moduleName string
	imports    map[string]*ast.Module // local prefix -> resolved imported module
}

func newScope(custom map[string]*value.CustomType) *scope {
	return &scope{customTypes: custom}
}

// newModuleScope is the root scope for a module's own body: it knows the
// module's own name and prefix (so an explicitly self-prefixed reference
// still resolves locally) and its already-resolved imports.
func newModuleScope(custom map[string]*value.CustomType, moduleName, ownPrefix string, imports map[string]*ast.Module) *scope {
	return &scope{customTypes: custom, moduleName: moduleName, ownPrefix: ownPrefix, imports: imports}
}

func (s *scope) push(typedefs []*ast.Typedef, groupings []*ast.Grouping) *scope {
	ns := &scope{customTypes: s.customTypes, moduleName: s.moduleName, ownPrefix: s.ownPrefix, imports: s.imports}
	ns.typedefs = append(append([]map[string]*ast.Typedef{}, s.typedefs...), indexTypedefs(typedefs))
	ns.groupings = append(append([]map[string]*ast.Grouping{}, s.groupings...), indexGroupings(groupings))
	return ns
}

// foreignScope is the projected scope used to compile a definition
// looked up inside an imported module: only that module's own top-level
// typedefs/groupings are visible, matching YANG's "only top-level
// definitions cross a module boundary" rule.
func foreignScope(custom map[string]*value.CustomType, mod *ast.Module) *scope {
	return newModuleScope(custom, mod.Name, mod.Prefix, nil).push(mod.Body.Typedefs, mod.Body.Groupings)
}

func indexTypedefs(list []*ast.Typedef) map[string]*ast.Typedef {
	m := make(map[string]*ast.Typedef, len(list))
	for _, t := range list {
		m[t.Name] = t
	}
	return m
}

func indexGroupings(list []*ast.Grouping) map[string]*ast.Grouping {
	m := make(map[string]*ast.Grouping, len(list))
	for _, g := range list {
		m[g.Name] = g
	}
	return m
}

// lookupTypedef resolves ref (a possibly-prefixed name) to its
// declaration and the scope it should be compiled in: the local lexical
// stack for an unprefixed or self-prefixed reference, or a foreignScope
// rooted at the imported module for a reference prefixed with one of
// this scope's import prefixes.
func (s *scope) lookupTypedef(ref string) (*ast.Typedef, *scope, bool) {
	prefix, local := splitPrefix(ref)
	if prefix == "" || prefix == s.ownPrefix {
		for i := len(s.typedefs) - 1; i >= 0; i-- {
			if td, ok := s.typedefs[i][local]; ok {
				return td, s, true
			}
		}
		return nil, nil, false
	}
	mod, ok := s.imports[prefix]
	if !ok {
		return nil, nil, false
	}
	for _, td := range mod.Body.Typedefs {
		if td.Name == local {
			return td, foreignScope(s.customTypes, mod), true
		}
	}
	return nil, nil, false
}

func (s *scope) lookupGrouping(ref string) (*ast.Grouping, *scope, bool) {
	prefix, local := splitPrefix(ref)
	if prefix == "" || prefix == s.ownPrefix {
		for i := len(s.groupings) - 1; i >= 0; i-- {
			if g, ok := s.groupings[i][local]; ok {
				return g, s, true
			}
		}
		return nil, nil, false
	}
	mod, ok := s.imports[prefix]
	if !ok {
		return nil, nil, false
	}
	for _, g := range mod.Body.Groupings {
		if g.Name == local {
			return g, foreignScope(s.customTypes, mod), true
		}
	}
	return nil, nil, false
}

func (s *scope) lookupCustom(name string) (*value.CustomType, bool) {
	ct, ok := s.customTypes[name]
	return ct, ok
}

func stripPrefix(name string) string {
	_, local := splitPrefix(name)
	return local
}

// splitPrefix splits a "(prefix:)?name" reference into its prefix (empty
// if none) and local name.
func splitPrefix(name string) (prefix, local string) {
	for i := 0; i < len(name); i++ {
		if name[i] == ':' {
			return name[:i], name[i+1:]
		}
	}
	return "", name
}
