package compile

import (
	"testing"

	"github.com/jacoelho/yang/internal/ast"
	"github.com/jacoelho/yang/internal/compiled"
	"github.com/jacoelho/yang/internal/value"
)

func TestApplyDeviateReplaceOverwritesExistingUnits(t *testing.T) {
	target := &compiled.Node{Name: "speed", Units: "mph"}
	dv := &ast.Deviate{Kind: ast.DeviateReplace, Units: strPtr("kph")}
	if err := applyDeviate(target, dv, newNodeCompiler()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if target.Units != "kph" {
		t.Fatalf("Units = %q, want kph", target.Units)
	}
}

func TestApplyDeviateAddRejectsUnitsConflict(t *testing.T) {
	target := &compiled.Node{Name: "speed", Units: "mph"}
	dv := &ast.Deviate{Kind: ast.DeviateAdd, Units: strPtr("kph")}
	if err := applyDeviate(target, dv, newNodeCompiler()); err == nil {
		t.Fatalf("expected a conflict error, got nil")
	}
	if target.Units != "mph" {
		t.Fatalf("Units = %q, want it left untouched at mph", target.Units)
	}
}

func TestApplyDeviateAddSucceedsWhenTargetUnset(t *testing.T) {
	target := &compiled.Node{Name: "speed"}
	dv := &ast.Deviate{Kind: ast.DeviateAdd, Units: strPtr("kph")}
	if err := applyDeviate(target, dv, newNodeCompiler()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if target.Units != "kph" {
		t.Fatalf("Units = %q, want kph", target.Units)
	}
}

func TestApplyDeviateAddRejectsMandatoryConflict(t *testing.T) {
	existing := true
	target := &compiled.Node{Name: "x", Mandatory: &existing}
	incoming := false
	dv := &ast.Deviate{Kind: ast.DeviateAdd, Mandatory: &incoming}
	if err := applyDeviate(target, dv, newNodeCompiler()); err == nil {
		t.Fatalf("expected a conflict error, got nil")
	}
}

func TestApplyDeviateReplaceMandatoryNoConflict(t *testing.T) {
	existing := true
	target := &compiled.Node{Name: "x", Mandatory: &existing}
	incoming := false
	dv := &ast.Deviate{Kind: ast.DeviateReplace, Mandatory: &incoming}
	if err := applyDeviate(target, dv, newNodeCompiler()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *target.Mandatory != false {
		t.Fatalf("Mandatory = %v, want false", *target.Mandatory)
	}
}

func TestApplyDeviateAddRejectsTypeConflict(t *testing.T) {
	target := &compiled.Node{Name: "x", Type: &value.CompiledType{Kind: value.String}}
	dv := &ast.Deviate{Kind: ast.DeviateAdd, Type: &ast.TypeDescriptor{Name: "int32"}}
	if err := applyDeviate(target, dv, newNodeCompiler()); err == nil {
		t.Fatalf("expected a conflict error, got nil")
	}
}

func TestApplyDeviateAddMustsAlwaysAppend(t *testing.T) {
	target := &compiled.Node{Name: "x", Musts: []ast.Must{{Condition: "a > 0"}}}
	dv := &ast.Deviate{Kind: ast.DeviateAdd, Musts: []ast.Must{{Condition: "b > 0"}}}
	if err := applyDeviate(target, dv, newNodeCompiler()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(target.Musts) != 2 {
		t.Fatalf("Musts = %v, want 2 entries", target.Musts)
	}
}

func strPtr(s string) *string { return &s }
