// Package compiled holds the compiled-tree data model (the output of
// component C5): a fully resolved schema in which every type is
// flattened, every restriction is composed along its derivation chain,
// every cross-reference is linked, and every invariant has been
// verified, per spec.md section 3 ("Compiled schema node").
package compiled

import (
	"github.com/jacoelho/yang/internal/ast"
	"github.com/jacoelho/yang/internal/value"
)

// Module is a compiled main module.
type Module struct {
	Name      string
	Namespace string
	Prefix    string
	Version   ast.Version
	Revisions []ast.Revision

	Identities map[string]*Identity // keyed by unprefixed name within this module
	Features   map[string]*Feature

	Rpcs          []*Node
	Notifications []*Node
	DataDefs      []*Node
}

// Identity is a compiled identity: Bases holds the already-resolved set
// of direct ancestor names this identity derives from.
type Identity struct {
	Name  string
	Bases []string
}

// Feature is a compiled feature: Enabled is decided once, at compile
// time, from the Context's feature set and the feature's own if-feature
// expression DAG.
type Feature struct {
	Name    string
	Enabled bool
}

// Node is a compiled schema node: the ast.Node shape with Type resolved
// to value.CompiledType and typedef chains collapsed into it.
type Node struct {
	Kind   ast.NodeKind
	Name   string
	Parent *Node

	Status ast.Status
	Config ast.Config
	Musts  []ast.Must
	When   *ast.When

	Children []*Node

	Type      *value.CompiledType
	Default   []string
	Units     string
	Mandatory *bool

	Key         string
	Unique      []string
	MinElements *uint64
	MaxElements *uint64
	OrderedBy   ast.OrderedBy

	Presence string
}
