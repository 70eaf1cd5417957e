package compile

import (
	"testing"

	"github.com/jacoelho/yang/internal/ast"
	"github.com/jacoelho/yang/internal/compiled"
)

func TestCompileFeaturesRequestedAndGated(t *testing.T) {
	decls := []*ast.Feature{
		{Name: "base"},
		{Name: "gated", IfFeatures: []ast.IfFeature{{Expression: "base"}}},
		{Name: "not-requested"},
	}
	features, err := compileFeatures(decls, map[string]bool{"base": true, "gated": true}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !features["base"].Enabled {
		t.Fatalf("base: want enabled")
	}
	if !features["gated"].Enabled {
		t.Fatalf("gated: want enabled (base is enabled)")
	}
	if features["not-requested"].Enabled {
		t.Fatalf("not-requested: want disabled")
	}
}

func TestCompileFeaturesGateBlocksDependent(t *testing.T) {
	decls := []*ast.Feature{
		{Name: "base"},
		{Name: "gated", IfFeatures: []ast.IfFeature{{Expression: "base"}}},
	}
	// "gated" is requested but "base" is not, so gated's own if-feature
	// expression evaluates false and it is not enabled regardless.
	features, err := compileFeatures(decls, map[string]bool{"gated": true}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if features["gated"].Enabled {
		t.Fatalf("gated: want disabled because base is not enabled")
	}
}

func TestCompileFeaturesAllFeatures(t *testing.T) {
	decls := []*ast.Feature{{Name: "a"}, {Name: "b"}}
	features, err := compileFeatures(decls, nil, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !features["a"].Enabled || !features["b"].Enabled {
		t.Fatalf("expected every feature enabled under AllFeatures, got %+v", features)
	}
}

func TestCompileFeaturesCycleRejected(t *testing.T) {
	decls := []*ast.Feature{
		{Name: "a", IfFeatures: []ast.IfFeature{{Expression: "b"}}},
		{Name: "b", IfFeatures: []ast.IfFeature{{Expression: "a"}}},
	}
	if _, err := compileFeatures(decls, map[string]bool{"a": true, "b": true}, false); err == nil {
		t.Fatalf("expected a cyclic if-feature error, got nil")
	}
}

func TestCompileFeaturesDuplicateDeclarationRejected(t *testing.T) {
	decls := []*ast.Feature{{Name: "dup"}, {Name: "dup"}}
	if _, err := compileFeatures(decls, nil, true); err == nil {
		t.Fatalf("expected a duplicate-feature error, got nil")
	}
}

func TestCompileFeaturesUnknownReferenceRejected(t *testing.T) {
	decls := []*ast.Feature{
		{Name: "a", IfFeatures: []ast.IfFeature{{Expression: "missing"}}},
	}
	if _, err := compileFeatures(decls, map[string]bool{"a": true}, false); err == nil {
		t.Fatalf("expected an unresolved-feature error, got nil")
	}
}

func TestIfFeaturesSatisfied(t *testing.T) {
	features := map[string]*compiled.Feature{
		"a": {Name: "a", Enabled: true},
		"b": {Name: "b", Enabled: false},
	}
	ok, err := ifFeaturesSatisfied([]ast.IfFeature{{Expression: "a and not b"}}, features)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected the gate to be satisfied")
	}

	ok, err = ifFeaturesSatisfied([]ast.IfFeature{{Expression: "b"}}, features)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected the gate on disabled feature b to fail")
	}
}
