// Package value implements the type-value engine (component C4): for
// each built-in type, canonicalizing textual lexical forms, validating
// them against a compiled restriction chain, serializing them back, and
// duplicating/comparing the resulting typed values.
//
// Per the original implementation's process-wide dynamic type plugin
// design (DESIGN NOTES, spec.md section 9), every built-in type is a
// variant of the closed BuiltinKind enumeration; the only open extension
// point is CustomType, registered explicitly on a Context (see
// RegisterCustomType) rather than discovered at runtime.
package value

import (
	"regexp"

	"github.com/jacoelho/yang/internal/restriction"
)

// BuiltinKind is the closed set of YANG built-in types, per spec.md
// section 3.
type BuiltinKind int

const (
	Binary BuiltinKind = iota
	Bits
	Boolean
	Decimal64
	Empty
	Enumeration
	Identityref
	InstanceIdentifier
	Int8
	Int16
	Int32
	Int64
	Leafref
	String
	Uint8
	Uint16
	Uint32
	Uint64
	Union
	Custom
)

func (k BuiltinKind) String() string {
	switch k {
	case Binary:
		return "binary"
	case Bits:
		return "bits"
	case Boolean:
		return "boolean"
	case Decimal64:
		return "decimal64"
	case Empty:
		return "empty"
	case Enumeration:
		return "enumeration"
	case Identityref:
		return "identityref"
	case InstanceIdentifier:
		return "instance-identifier"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Leafref:
		return "leafref"
	case String:
		return "string"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case Union:
		return "union"
	default:
		return "custom"
	}
}

// CompiledPattern is one compiled "pattern" restriction.
type CompiledPattern struct {
	Re     *regexp.Regexp
	Invert bool
}

// EnumMember is one compiled enumeration member.
type EnumMember struct {
	Name  string
	Value int64
}

// BitMember is one compiled bits member.
type BitMember struct {
	Name     string
	Position uint32
}

// CustomType is the struct-of-callbacks extension point a Context may
// register for a type name it does not recognize as built in, per the
// "explicit custom type registrar" design note.
type CustomType struct {
	Name      string
	Store     func(text string) (any, error)
	Print     func(v any) string
	Duplicate func(v any) any
	Compare   func(a, b any) bool
}

// CompiledType is the fully resolved, compile-time type a leaf, leaf-list,
// typedef, or union member carries. Only the fields relevant to Kind are
// populated; the rest are zero.
type CompiledType struct {
	Kind BuiltinKind

	Range          *restriction.Set // Int*/Uint*/Decimal64
	FractionDigits uint8            // Decimal64

	Length   *restriction.Set // String/Binary
	Patterns []CompiledPattern

	Enums []EnumMember
	Bits  []BitMember

	Bases []string // Identityref: base identity names as written, possibly prefixed; resolved when a value is stored

	Path            string // Leafref
	Referent        *CompiledType
	RequireInstance bool // Leafref/InstanceIdentifier, default true

	Unions []*CompiledType // Union members, in declaration order

	Custom *CustomType
}

// Natural returns the natural (unrestricted) integer bounds of the
// compiled type's kind, or the zero Bounds if Kind has no integer domain.
func (ct *CompiledType) Natural() restriction.Bounds {
	switch ct.Kind {
	case Int8:
		return restriction.Int8Bounds
	case Int16:
		return restriction.Int16Bounds
	case Int32:
		return restriction.Int32Bounds
	case Int64:
		return restriction.Int64Bounds
	case Uint8:
		return restriction.Uint8Bounds
	case Uint16:
		return restriction.Uint16Bounds
	case Uint32:
		return restriction.Uint32Bounds
	case Uint64:
		return restriction.Uint64Bounds
	case Decimal64:
		return restriction.Decimal64Bounds(ct.FractionDigits)
	default:
		return restriction.Bounds{}
	}
}
