package yang

import (
	"github.com/jacoelho/yang/internal/ast"
	"github.com/jacoelho/yang/internal/compiled"
	"github.com/jacoelho/yang/internal/value"
)

// Node is a compiled schema node, exposed as a parent/first-child/
// next-sibling/by-name-child tree, per spec.md section 6.
type Node struct {
	inner    *compiled.Node
	siblings []*compiled.Node
	index    int
}

func wrapNodes(list []*compiled.Node) []*Node {
	out := make([]*Node, len(list))
	for i, n := range list {
		out[i] = &Node{inner: n, siblings: list, index: i}
	}
	return out
}

// Kind, Name, Status, Config, Musts, and When expose the node's common
// fields, shared across every node kind.
func (n *Node) Kind() ast.NodeKind { return n.inner.Kind }
func (n *Node) Name() string       { return n.inner.Name }
func (n *Node) Status() ast.Status { return n.inner.Status }
func (n *Node) Config() ast.Config { return n.inner.Config }
func (n *Node) Musts() []ast.Must  { return n.inner.Musts }
func (n *Node) When() *ast.When    { return n.inner.When }

// Type returns the leaf/leaf-list's resolved type, or nil for any other
// node kind.
func (n *Node) Type() *value.CompiledType { return n.inner.Type }

// Default returns the leaf/leaf-list's default values (zero, one, or,
// for a 1.1 leaf-list, many).
func (n *Node) Default() []string { return n.inner.Default }

// Units returns the leaf/leaf-list's "units" argument, or "".
func (n *Node) Units() string { return n.inner.Units }

// Mandatory returns the leaf/choice/anydata/anyxml's resolved
// "mandatory" flag, or nil if it was not specified.
func (n *Node) Mandatory() *bool { return n.inner.Mandatory }

// Key returns the list's "key" argument (space-separated leaf names).
func (n *Node) Key() string { return n.inner.Key }

// Unique returns the list's "unique" argument schema-node-id strings.
func (n *Node) Unique() []string { return n.inner.Unique }

// MinElements and MaxElements return the list/leaf-list's bounds; nil
// means unbounded for MaxElements, and means "0" (the default) for
// MinElements.
func (n *Node) MinElements() *uint64 { return n.inner.MinElements }
func (n *Node) MaxElements() *uint64 { return n.inner.MaxElements }

// OrderedBy returns the list/leaf-list's "ordered-by" value.
func (n *Node) OrderedBy() ast.OrderedBy { return n.inner.OrderedBy }

// Presence returns the container's "presence" description, or "" for a
// non-presence container.
func (n *Node) Presence() string { return n.inner.Presence }

// Parent returns the node's parent, or nil at the root of the tree.
func (n *Node) Parent() *Node {
	if n.inner.Parent == nil {
		return nil
	}
	return &Node{inner: n.inner.Parent}
}

// Children returns the node's compiled children, in declaration order.
func (n *Node) Children() []*Node { return wrapNodes(n.inner.Children) }

// FirstChild returns the node's first child, or nil if it has none.
func (n *Node) FirstChild() *Node {
	if len(n.inner.Children) == 0 {
		return nil
	}
	return wrapNodes(n.inner.Children)[0]
}

// NextSibling returns the node immediately following n among its
// parent's children, or nil if n is the last sibling (or has no known
// sibling list, e.g. it was reached via Parent rather than from a
// Children/DataDefs call).
func (n *Node) NextSibling() *Node {
	if n.siblings == nil || n.index+1 >= len(n.siblings) {
		return nil
	}
	return &Node{inner: n.siblings[n.index+1], siblings: n.siblings, index: n.index + 1}
}

// ChildByName returns n's direct child named name, or nil.
func (n *Node) ChildByName(name string) *Node {
	for i, c := range n.inner.Children {
		if c.Name == name {
			return &Node{inner: c, siblings: n.inner.Children, index: i}
		}
	}
	return nil
}
