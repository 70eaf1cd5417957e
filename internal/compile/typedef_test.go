package compile

import (
	"testing"

	"github.com/jacoelho/yang/internal/ast"
	"github.com/jacoelho/yang/internal/value"
)

func rangeType(name, rangeText string) *ast.TypeDescriptor {
	td := &ast.TypeDescriptor{Name: name}
	if rangeText != "" {
		td.Range = &ast.RangeText{Text: rangeText}
	}
	return td
}

func TestCompileTypeBuiltinRange(t *testing.T) {
	ct, err := compileType(rangeType("int8", "0 .. 100"), newScope(nil), map[string]bool{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ct.Kind != value.Int8 {
		t.Fatalf("Kind = %v, want Int8", ct.Kind)
	}
	if ct.Range == nil || ct.Range.String() != "0 .. 100" {
		t.Fatalf("Range = %v, want 0 .. 100", ct.Range)
	}
}

func TestCompileTypeNamedTypedefTighterDerivation(t *testing.T) {
	// typedef percentage { type int8 { range "0..100"; } }
	// leaf p { type percentage { range "10..90"; } } -- tighter, accepted
	percentage := &ast.Typedef{Name: "percentage", Type: rangeType("int8", "0..100")}
	s := newScope(nil).push([]*ast.Typedef{percentage}, nil)

	ct, err := compileType(rangeType("percentage", "10..90"), s, map[string]bool{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ct.Range.String() != "10 .. 90" {
		t.Fatalf("Range = %v, want 10 .. 90", ct.Range)
	}
}

func TestCompileTypeNamedTypedefLooserDerivationRejected(t *testing.T) {
	percentage := &ast.Typedef{Name: "percentage", Type: rangeType("int8", "10..90")}
	s := newScope(nil).push([]*ast.Typedef{percentage}, nil)

	_, err := compileType(rangeType("percentage", "0..100"), s, map[string]bool{})
	if err == nil {
		t.Fatalf("expected an error widening a derived range, got nil")
	}
}

func TestCompileTypeUnresolvedTypedef(t *testing.T) {
	_, err := compileType(rangeType("does-not-exist", ""), newScope(nil), map[string]bool{})
	if err == nil {
		t.Fatalf("expected an error for an unknown type name, got nil")
	}
}

func TestCompileTypeCyclicTypedefRejected(t *testing.T) {
	a := &ast.Typedef{Name: "a", Type: &ast.TypeDescriptor{Name: "b"}}
	b := &ast.Typedef{Name: "b", Type: &ast.TypeDescriptor{Name: "a"}}
	s := newScope(nil).push([]*ast.Typedef{a, b}, nil)

	_, err := compileType(&ast.TypeDescriptor{Name: "a"}, s, map[string]bool{})
	if err == nil {
		t.Fatalf("expected a cyclic-derivation error, got nil")
	}
}

func TestCompileTypeDecimal64FractionDigitsInvariant(t *testing.T) {
	one := uint8(2)
	base := &ast.Typedef{Name: "money", Type: &ast.TypeDescriptor{Name: "decimal64", FractionDigits: &one}}
	s := newScope(nil).push([]*ast.Typedef{base}, nil)

	other := uint8(4)
	_, err := compileType(&ast.TypeDescriptor{Name: "money", FractionDigits: &other}, s, map[string]bool{})
	if err == nil {
		t.Fatalf("expected an error changing fraction-digits along a derivation chain, got nil")
	}
}

func TestCompileTypeDecimal64OutOfBoundFractionDigitsRejected(t *testing.T) {
	zero := uint8(0)
	_, err := compileType(&ast.TypeDescriptor{Name: "decimal64", FractionDigits: &zero}, newScope(nil), map[string]bool{})
	if err == nil {
		t.Fatalf("expected fraction-digits 0 to be rejected, got nil")
	}
}

func TestCompileTypeEnumerationRejectsReassignedValue(t *testing.T) {
	v0 := int64(0)
	v1 := int64(1)
	base := &ast.Typedef{Name: "color", Type: &ast.TypeDescriptor{
		Name: "enumeration",
		Enums: []ast.EnumText{
			{Name: "red", Value: &v0},
			{Name: "blue", Value: &v1},
		},
	}}
	s := newScope(nil).push([]*ast.Typedef{base}, nil)

	reassigned := int64(5)
	_, err := compileType(&ast.TypeDescriptor{
		Name:  "color",
		Enums: []ast.EnumText{{Name: "red", Value: &reassigned}},
	}, s, map[string]bool{})
	if err == nil {
		t.Fatalf("expected re-assigning an inherited enum value to be rejected, got nil")
	}
}

func TestCompileTypeUnionComposesMembers(t *testing.T) {
	td := &ast.TypeDescriptor{
		Name: "union",
		Unions: []*ast.TypeDescriptor{
			rangeType("int8", ""),
			{Name: "string"},
		},
	}
	ct, err := compileType(td, newScope(nil), map[string]bool{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ct.Unions) != 2 {
		t.Fatalf("Unions = %d members, want 2", len(ct.Unions))
	}
	if ct.Unions[0].Kind != value.Int8 || ct.Unions[1].Kind != value.String {
		t.Fatalf("Unions = %v, want [Int8, String]", ct.Unions)
	}
}
