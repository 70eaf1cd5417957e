package ast

// TypeDescriptor is the parsed (unresolved) form of a "type" statement: a
// possibly-prefixed name and an unresolved bag of restrictions, per
// spec.md section 3.
type TypeDescriptor struct {
	Name string // possibly "prefix:name"

	Range          *RangeText
	Length         *LengthText
	Patterns       []PatternText
	FractionDigits *uint8
	Enums          []EnumText
	Bits           []BitText
	Path           *string // leafref
	Bases          []string // identityref: base identities (prefixed)
	RequireInstance *bool
	Unions         []*TypeDescriptor // union member types

	Raw *Statement
}

// RangeText is an unparsed "range" argument plus its error customization.
type RangeText struct {
	Text        string
	ErrorMsg    string
	ErrorAppTag string
	Description string
	Reference   string
}

// LengthText is an unparsed "length" argument plus its error customization.
type LengthText struct {
	Text        string
	ErrorMsg    string
	ErrorAppTag string
	Description string
	Reference   string
}

// PatternText is one "pattern" statement: the regular expression text and
// its optional invert-match modifier.
type PatternText struct {
	Text        string
	Invert      bool
	ErrorMsg    string
	ErrorAppTag string
	Description string
	Reference   string
}

// EnumText is one "enum" statement: a name and an optional explicit value.
type EnumText struct {
	Name        string
	Value       *int64
	Status      Status
	Description string
	Reference   string
	IfFeatures  []IfFeature
}

// BitText is one "bit" statement: a name and an optional explicit position.
type BitText struct {
	Name        string
	Position    *uint32
	Status      Status
	Description string
	Reference   string
	IfFeatures  []IfFeature
}
