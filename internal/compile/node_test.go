package compile

import (
	"testing"

	"github.com/jacoelho/yang/internal/ast"
	"github.com/jacoelho/yang/internal/compiled"
)

func newNodeCompiler() *nodeCompiler {
	return &nodeCompiler{scope: newScope(nil), features: map[string]*compiled.Feature{}}
}

func leaf(name, typeName string) *ast.Node {
	return &ast.Node{Kind: ast.KindLeaf, Name: name, Type: &ast.TypeDescriptor{Name: typeName}}
}

func TestCompileChildrenRejectsDuplicateSiblingNames(t *testing.T) {
	nc := newNodeCompiler()
	_, err := nc.compileChildren([]*ast.Node{leaf("a", "string"), leaf("a", "string")}, nil)
	if err == nil {
		t.Fatalf("expected a duplicate-sibling-name error, got nil")
	}
}

func TestCompileChildrenCaseNamesAreTransparent(t *testing.T) {
	nc := newNodeCompiler()
	choice := &ast.Node{
		Kind: ast.KindChoice,
		Name: "c",
		Children: []*ast.Node{
			{Kind: ast.KindCase, Name: "case1", Children: []*ast.Node{leaf("x", "string")}},
			{Kind: ast.KindCase, Name: "case2", Children: []*ast.Node{leaf("y", "string")}},
		},
	}
	if _, err := nc.compileChildren([]*ast.Node{choice}, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCompileChildrenCaseChildrenStillCompeteAcrossCases(t *testing.T) {
	nc := newNodeCompiler()
	choice := &ast.Node{
		Kind: ast.KindChoice,
		Name: "c",
		Children: []*ast.Node{
			{Kind: ast.KindCase, Name: "case1", Children: []*ast.Node{leaf("x", "string")}},
			{Kind: ast.KindCase, Name: "case2", Children: []*ast.Node{leaf("x", "string")}},
		},
	}
	if _, err := nc.compileChildren([]*ast.Node{choice}, nil); err == nil {
		t.Fatalf("expected sibling conflict across cases' children, got nil")
	}
}

func TestCompileChildrenPrunesDisabledFeature(t *testing.T) {
	nc := &nodeCompiler{scope: newScope(nil), features: map[string]*compiled.Feature{
		"extra": {Name: "extra", Enabled: false},
	}}
	n := leaf("gated", "string")
	n.IfFeatures = []ast.IfFeature{{Expression: "extra"}}
	out, err := nc.compileChildren([]*ast.Node{n, leaf("always", "string")}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].Name != "always" {
		t.Fatalf("got %v, want only the always-present leaf", out)
	}
}

func TestCompileNodeValidatesDefaultAgainstType(t *testing.T) {
	nc := newNodeCompiler()
	n := leaf("count", "int8")
	n.Default = []string{"not-a-number"}
	if _, err := nc.compileNode(n, nil); err == nil {
		t.Fatalf("expected an invalid-default error, got nil")
	}
}

func TestCompileUsesExpandsGroupingWithPrivateRefine(t *testing.T) {
	grouping := &ast.Grouping{
		Name:     "g",
		Children: []*ast.Node{leaf("x", "string")},
	}
	nc := &nodeCompiler{scope: newScope(nil).push(nil, []*ast.Grouping{grouping}), features: map[string]*compiled.Feature{}}

	presence := "refined"
	uses1 := &ast.Node{Kind: ast.KindUses, GroupingRef: "g", Refines: []*ast.Refine{
		{RelativePath: "x", Presence: &presence},
	}}
	uses2 := &ast.Node{Kind: ast.KindUses, GroupingRef: "g"}

	out1, err := nc.compileUses(uses1, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out2, err := nc.compileUses(uses2, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out1[0].Presence != "refined" {
		t.Fatalf("first use: Presence = %q, want %q", out1[0].Presence, "refined")
	}
	if out2[0].Presence != "" {
		t.Fatalf("second use: Presence = %q, want empty (refine must not leak across uses)", out2[0].Presence)
	}
}

func TestCompileNodeUsesLeafListOwnBoundsNotListFields(t *testing.T) {
	nc := newNodeCompiler()
	min := uint64(2)
	max := uint64(5)
	n := &ast.Node{
		Kind: ast.KindLeafList, Name: "ll", Type: &ast.TypeDescriptor{Name: "string"},
		LeafListMin: &min, LeafListMax: &max, LeafListOrderedBy: ast.OrderedByUser,
	}
	cn, err := nc.compileNode(n, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cn.MinElements == nil || *cn.MinElements != 2 {
		t.Fatalf("MinElements = %v, want 2", cn.MinElements)
	}
	if cn.MaxElements == nil || *cn.MaxElements != 5 {
		t.Fatalf("MaxElements = %v, want 5", cn.MaxElements)
	}
	if cn.OrderedBy != ast.OrderedByUser {
		t.Fatalf("OrderedBy = %v, want user", cn.OrderedBy)
	}
}

func TestCompileUsesUnknownGroupingRejected(t *testing.T) {
	nc := newNodeCompiler()
	_, err := nc.compileUses(&ast.Node{Kind: ast.KindUses, GroupingRef: "missing"}, nil)
	if err == nil {
		t.Fatalf("expected an unresolved-grouping error, got nil")
	}
}

func TestCompileUsesAugmentRejectsDuplicateChildName(t *testing.T) {
	grouping := &ast.Grouping{
		Name:     "g",
		Children: []*ast.Node{{Kind: ast.KindContainer, Name: "c", Children: []*ast.Node{leaf("x", "string")}}},
	}
	nc := &nodeCompiler{scope: newScope(nil).push(nil, []*ast.Grouping{grouping}), features: map[string]*compiled.Feature{}}

	uses := &ast.Node{Kind: ast.KindUses, GroupingRef: "g", UsesAugments: []*ast.Augment{
		{TargetPath: "c", Children: []*ast.Node{leaf("x", "string")}},
	}}
	if _, err := nc.compileUses(uses, nil); err == nil {
		t.Fatalf("expected a duplicate-child-via-augment error, got nil")
	}
}
