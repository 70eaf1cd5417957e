package compile

import (
	"strings"

	yangerrors "github.com/jacoelho/yang/errors"
	"github.com/jacoelho/yang/internal/ast"
	"github.com/jacoelho/yang/internal/compiled"
	"github.com/jacoelho/yang/internal/value"
)

// nodeCompiler holds the lexical scope and feature set a subtree is
// compiled under; push-ing typedef/grouping scope or entering a uses
// expansion produces a derived nodeCompiler rather than mutating this one.
type nodeCompiler struct {
	scope    *scope
	features map[string]*compiled.Feature
	hints    value.Hints
}

func (c *nodeCompiler) withScope(typedefs []*ast.Typedef, groupings []*ast.Grouping) *nodeCompiler {
	if len(typedefs) == 0 && len(groupings) == 0 {
		return c
	}
	return &nodeCompiler{scope: c.scope.push(typedefs, groupings), features: c.features, hints: c.hints}
}

// withScopeFrom is withScope rooted at base instead of c.scope, for
// expanding a "uses" into a grouping that may have been looked up in an
// imported module's own scope.
func (c *nodeCompiler) withScopeFrom(base *scope, typedefs []*ast.Typedef, groupings []*ast.Grouping) *nodeCompiler {
	if len(typedefs) == 0 && len(groupings) == 0 {
		return &nodeCompiler{scope: base, features: c.features, hints: c.hints}
	}
	return &nodeCompiler{scope: base.push(typedefs, groupings), features: c.features, hints: c.hints}
}

// compileChildren compiles a sibling list, expanding "uses" statements
// in place and pruning nodes gated by a disabled feature, per spec.md
// section 4.6 steps 4 and 6.
func (c *nodeCompiler) compileChildren(nodes []*ast.Node, parent *compiled.Node) ([]*compiled.Node, error) {
	var out []*compiled.Node
	for _, n := range nodes {
		ok, err := ifFeaturesSatisfied(n.IfFeatures, c.features)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if n.Kind == ast.KindUses {
			expanded, err := c.compileUses(n, parent)
			if err != nil {
				return nil, err
			}
			out = append(out, expanded...)
			continue
		}
		cn, err := c.compileNode(n, parent)
		if err != nil {
			return nil, err
		}
		out = append(out, cn)
	}
	if err := checkSiblingNames(out); err != nil {
		return nil, err
	}
	return out, nil
}

// checkSiblingNames enforces the "no two data nodes at the same level
// share a name" invariant (spec.md section 4.6 step 6), treating the
// cases inside a choice as transparent (their children compete with the
// choice's other cases' children, not with the case names themselves).
func checkSiblingNames(nodes []*compiled.Node) error {
	seen := make(map[string]bool)
	var walk func([]*compiled.Node) error
	walk = func(list []*compiled.Node) error {
		for _, n := range list {
			if n.Kind == ast.KindCase {
				if err := walk(n.Children); err != nil {
					return err
				}
				continue
			}
			if seen[n.Name] {
				return yangerrors.Newf(yangerrors.Validation, "duplicate data node name %q among siblings", n.Name)
			}
			seen[n.Name] = true
		}
		return nil
	}
	return walk(nodes)
}

func (c *nodeCompiler) compileNode(n *ast.Node, parent *compiled.Node) (*compiled.Node, error) {
	cn := &compiled.Node{
		Kind:        n.Kind,
		Name:        n.Name,
		Parent:      parent,
		Status:      n.Status,
		Config:      n.Config,
		Musts:       n.Musts,
		When:        n.When,
		Default:     n.Default,
		Units:       n.Units,
		Key:         n.Key,
		Unique:      n.Unique,
		MinElements: n.MinElements,
		MaxElements: n.MaxElements,
		OrderedBy:   n.OrderedBy,
		Presence:    n.Presence,
		Mandatory:   n.Mandatory,
	}
	if n.Kind == ast.KindLeafList {
		cn.MinElements = n.LeafListMin
		cn.MaxElements = n.LeafListMax
		cn.OrderedBy = n.LeafListOrderedBy
	}

	inner := c.withScope(n.Typedefs, n.Groupings)

	switch n.Kind {
	case ast.KindLeaf, ast.KindLeafList:
		ct, err := compileType(n.Type, inner.scope, map[string]bool{})
		if err != nil {
			return nil, err
		}
		cn.Type = ct
		for _, d := range n.Default {
			if _, err := value.Store(ct, d, inner.hints); err != nil {
				return nil, yangerrors.Wrap(yangerrors.Validation, err, "default value is invalid for its own type")
			}
		}
	}

	children, err := inner.compileChildren(n.Children, cn)
	if err != nil {
		return nil, err
	}
	cn.Children = children
	return cn, nil
}

// compileUses expands a "uses" statement into the referenced grouping's
// children, with this instantiation's own refine/augment clauses applied
// to a private deep copy of the grouping body (spec.md section 4.6 step
// 6: "uses expands a grouping's nodes as if written in place").
func (c *nodeCompiler) compileUses(n *ast.Node, parent *compiled.Node) ([]*compiled.Node, error) {
	ok, err := ifFeaturesSatisfied(n.IfFeatures, c.features)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	grouping, origin, ok := c.scope.lookupGrouping(n.GroupingRef)
	if !ok {
		return nil, yangerrors.Newf(yangerrors.Unresolved, "uses references unknown grouping %q", n.GroupingRef)
	}

	body := cloneNodes(grouping.Children)
	for _, rf := range n.Refines {
		if err := applyRefine(body, rf); err != nil {
			return nil, err
		}
	}
	for _, ag := range n.UsesAugments {
		if err := applyAugmentChildren(body, ag); err != nil {
			return nil, err
		}
	}

	inner := c.withScopeFrom(origin, grouping.Typedefs, grouping.Groupings)
	return inner.compileChildren(body, parent)
}

func cloneNodes(nodes []*ast.Node) []*ast.Node {
	out := make([]*ast.Node, len(nodes))
	for i, n := range nodes {
		out[i] = cloneNode(n)
	}
	return out
}

func cloneNode(n *ast.Node) *ast.Node {
	cp := *n
	cp.Musts = append([]ast.Must{}, n.Musts...)
	cp.IfFeatures = append([]ast.IfFeature{}, n.IfFeatures...)
	cp.Default = append([]string{}, n.Default...)
	cp.Unique = append([]string{}, n.Unique...)
	cp.Children = cloneNodes(n.Children)
	return &cp
}

// applyRefine locates the node at rf.RelativePath inside body (a
// slash-separated path of possibly-prefixed names, resolved depth-first
// through Children) and tightens it in place, per spec.md section 4.6
// step 6 and the ast.Refine field semantics.
func applyRefine(body []*ast.Node, rf *ast.Refine) error {
	target, err := findByRelativePath(body, rf.RelativePath)
	if err != nil {
		return err
	}
	if rf.Description != nil {
		target.Description = *rf.Description
	}
	if rf.Reference != nil {
		target.Reference = *rf.Reference
	}
	if rf.Config != nil {
		target.Config = *rf.Config
	}
	if len(rf.Default) > 0 {
		target.Default = rf.Default
	}
	if rf.Mandatory != nil {
		target.Mandatory = rf.Mandatory
	}
	if rf.MinElements != nil {
		target.MinElements = rf.MinElements
	}
	if rf.MaxElements != nil {
		target.MaxElements = rf.MaxElements
	}
	if rf.Presence != nil {
		target.Presence = *rf.Presence
	}
	target.Musts = append(target.Musts, rf.Musts...)
	target.IfFeatures = append(target.IfFeatures, rf.IfFeatures...)
	return nil
}

// applyAugmentChildren grafts ag.Children onto the node found at
// ag.TargetPath inside body (a uses-scoped augment, per spec.md section
// 4.6 step 6), rejecting a graft that would collide with an existing
// child name.
func applyAugmentChildren(body []*ast.Node, ag *ast.Augment) error {
	target, err := findByRelativePath(body, ag.TargetPath)
	if err != nil {
		return err
	}
	existing := make(map[string]bool, len(target.Children))
	for _, c := range target.Children {
		existing[c.Name] = true
	}
	for _, c := range ag.Children {
		if existing[c.Name] {
			return yangerrors.Newf(yangerrors.Validation, "augment introduces duplicate child %q", c.Name)
		}
		target.Children = append(target.Children, c)
	}
	return nil
}

func findByRelativePath(body []*ast.Node, path string) (*ast.Node, error) {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	current := body
	var found *ast.Node
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
			return nil, yangerrors.Newf(yangerrors.Unresolved, "refine/augment path %q does not resolve inside the grouping", path)
		}
		current = found.Children
	}
	return found, nil
}
