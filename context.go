// Package yang is the public entry point: parsing YANG source (compact
// or YIN form) into a parsed tree, compiling a parsed tree into a fully
// resolved schema, and walking the result, per spec.md section 6.
package yang

import (
	"github.com/rs/zerolog"

	"github.com/jacoelho/yang/internal/ast"
	"github.com/jacoelho/yang/internal/value"
)

// Context owns everything a parse-then-compile pass needs beyond the
// source text itself: the registry of modules it has parsed or been
// handed, the set of custom types a caller has registered, the feature
// set a compile should honor, and an optional leafref/instance-
// identifier path grammar validator. The zero Context is not usable;
// construct one with NewContext.
type Context struct {
	modules map[string]*ast.Module

	customTypes map[string]*value.CustomType
	features    map[string]bool
	allFeatures bool
	paths       value.PathValidator
	tracer      *zerolog.Logger

	// lastDiagnostic holds the most recent diagnostic produced by any
	// Parse/Compile call on this Context, per spec.md section 6's
	// "most-recent-diagnostic" accessor.
	lastDiagnostic error
}

// NewContext returns a Context with no modules registered, no custom
// types registered, and no features enabled (EnableAllFeatures or
// EnableFeature must be called explicitly, matching YANG's "if-feature"
// default-disabled semantics).
func NewContext() *Context {
	return &Context{
		modules:     make(map[string]*ast.Module),
		customTypes: make(map[string]*value.CustomType),
		features:    make(map[string]bool),
	}
}

// RegisterModule adds m to the Context's module registry, making it
// resolvable as the target of another module's "import", per spec.md
// section 3 ("a Context — a registry of modules") and section 6 ("look
// up a module by name (± revision) → module handle"). ParseModule and
// ParseYINModule register their result automatically; RegisterModule is
// for a module obtained another way (e.g. parsed against a different
// Context, or assembled programmatically).
func (c *Context) RegisterModule(m *ast.Module) {
	c.modules[m.Name] = m
}

// LookupModule returns the registered module named name, or false if
// none is registered. When revision is non-empty, the module's latest
// revision-date (see ast.Module.Revisions) must equal it.
func (c *Context) LookupModule(name, revision string) (*ast.Module, bool) {
	m, ok := c.modules[name]
	if !ok {
		return nil, false
	}
	if revision != "" && latestRevisionDate(m.Revisions) != revision {
		return nil, false
	}
	return m, true
}

func latestRevisionDate(revisions []ast.Revision) string {
	var latest string
	for _, r := range revisions {
		if r.Date > latest {
			latest = r.Date
		}
	}
	return latest
}

// SetTracer installs an optional structured tracer that receives a
// debug-level event for each phase of a subsequent Compile call
// (resolving imports, compiling features/identities, walking the data
// tree, applying augments/deviations), per SPEC_FULL.md section 8. A
// Context with no tracer set (the default) emits nothing.
func (c *Context) SetTracer(l zerolog.Logger) {
	c.tracer = &l
}

// RegisterCustomType registers a type name this Context recognizes even
// though it is not one of the 19 built-in kinds, per the "explicit
// custom type registrar" design note (spec.md section 9).
func (c *Context) RegisterCustomType(ct value.CustomType) {
	c.customTypes[ct.Name] = &ct
}

// EnableFeature marks name as requested; a declared feature with no
// if-feature sub-statements of its own is enabled iff it was requested
// through this method (or EnableAllFeatures was called).
func (c *Context) EnableFeature(name string) {
	c.features[name] = true
}

// EnableAllFeatures requests every feature a compiled module declares,
// equivalent to passing every feature name to EnableFeature individually.
func (c *Context) EnableAllFeatures() {
	c.allFeatures = true
}

// SetPathValidator installs the grammar-only leafref/instance-identifier
// path checker used during compilation (component C10). A nil validator
// (the default) skips path-shape validation entirely.
func (c *Context) SetPathValidator(v value.PathValidator) {
	c.paths = v
}

// LastDiagnostic returns the most recent error produced by a Parse* or
// Compile call on this Context, or nil if none has failed yet.
func (c *Context) LastDiagnostic() error {
	return c.lastDiagnostic
}

func (c *Context) record(err error) error {
	if err != nil {
		c.lastDiagnostic = err
	}
	return err
}
