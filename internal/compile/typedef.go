package compile

import (
	"math/big"
	"regexp"

	yangerrors "github.com/jacoelho/yang/errors"
	"github.com/jacoelho/yang/internal/ast"
	"github.com/jacoelho/yang/internal/restriction"
	"github.com/jacoelho/yang/internal/value"
)

// compileType compiles a parsed type descriptor into a value.CompiledType,
// per spec.md section 4.6 step 5: walking the typedef chain to the
// built-in root, composing restrictions at each step via the C6
// restriction algebra, with cycle detection.
func compileType(td *ast.TypeDescriptor, s *scope, visiting map[string]bool) (*value.CompiledType, error) {
	prefix, local := splitPrefix(td.Name)

	if prefix == "" {
		if kind, ok := builtinKinds[local]; ok {
			return applyRestrictions(td, nil, kind, s, visiting)
		}
	}

	if custom, ok := s.lookupCustom(local); ok {
		return &value.CompiledType{Kind: value.Custom, Custom: custom}, nil
	}

	typedef, origin, ok := s.lookupTypedef(td.Name)
	if !ok {
		return nil, yangerrors.Newf(yangerrors.Unresolved, "type %q is neither a built-in type nor a known typedef", td.Name)
	}
	visitKey := origin.moduleName + ":" + local
	if visiting[visitKey] {
		return nil, yangerrors.Newf(yangerrors.Denied, "typedef %q participates in a cyclic derivation", local)
	}
	visiting[visitKey] = true
	parent, err := compileType(typedef.Type, origin, visiting)
	visiting[visitKey] = false
	if err != nil {
		return nil, err
	}
	return applyRestrictions(td, parent, parent.Kind, s, visiting)
}

// applyRestrictions composes td's own restrictions on top of parent (the
// compiled form of the type td directly derives from; nil when td names a
// built-in type with no named ancestor).
func applyRestrictions(td *ast.TypeDescriptor, parent *value.CompiledType, kind value.BuiltinKind, s *scope, visiting map[string]bool) (*value.CompiledType, error) {
	ct := &value.CompiledType{Kind: kind}

	switch {
	case isIntegerKind(kind):
		if err := composeRange(td, parent, ct); err != nil {
			return nil, err
		}
	case kind == value.Decimal64:
		if err := composeDecimal64(td, parent, ct); err != nil {
			return nil, err
		}
	case kind == value.String:
		if err := composeLength(td, parent, ct); err != nil {
			return nil, err
		}
		if err := composePatterns(td, parent, ct); err != nil {
			return nil, err
		}
	case kind == value.Binary:
		if err := composeLength(td, parent, ct); err != nil {
			return nil, err
		}
	case kind == value.Enumeration:
		if err := composeEnums(td, parent, ct); err != nil {
			return nil, err
		}
	case kind == value.Bits:
		if err := composeBits(td, parent, ct); err != nil {
			return nil, err
		}
	case kind == value.Identityref:
		ct.Bases = inheritOrOwnBases(td, parent)
	case kind == value.Leafref:
		ct.Path = inheritOrOwnPath(td, parent)
		ct.RequireInstance = requireInstanceOf(td, parent, true)
	case kind == value.InstanceIdentifier:
		ct.RequireInstance = requireInstanceOf(td, parent, true)
	case kind == value.Union:
		members, err := composeUnion(td, parent, s, visiting)
		if err != nil {
			return nil, err
		}
		ct.Unions = members
	case kind == value.Boolean, kind == value.Empty:
		// no restrictions apply
	}
	return ct, nil
}

func composeRange(td *ast.TypeDescriptor, parent *value.CompiledType, ct *value.CompiledType) error {
	bounds := ct.Natural()
	var parentSet *restriction.Set
	if parent != nil && parent.Range != nil {
		bounds = restriction.Bounds{Lo: boundOf(*parent.Range, true), Hi: boundOf(*parent.Range, false)}
		parentSet = parent.Range
	}
	if td.Range == nil {
		ct.Range = parentSet
		return nil
	}
	set, err := restriction.Parse(td.Range.Text, bounds)
	if err != nil {
		return annotateRestrictionError(err, td.Range.ErrorMsg)
	}
	if parentSet != nil && !set.SubsetOf(*parentSet) {
		return yangerrors.Newf(yangerrors.Validation,
			"derived restriction (%s) is not equally or more limiting", set.String())
	}
	ct.Range = &set
	return nil
}

func composeDecimal64(td *ast.TypeDescriptor, parent *value.CompiledType, ct *value.CompiledType) error {
	switch {
	case parent != nil:
		ct.FractionDigits = parent.FractionDigits
		if td.FractionDigits != nil && *td.FractionDigits != parent.FractionDigits {
			return yangerrors.New(yangerrors.Validation, "fraction-digits cannot change along a derivation chain")
		}
	case td.FractionDigits != nil:
		ct.FractionDigits = *td.FractionDigits
	default:
		return yangerrors.New(yangerrors.Validation, "decimal64 requires a fraction-digits sub-statement")
	}
	if ct.FractionDigits < 1 || ct.FractionDigits > 18 {
		return yangerrors.Newf(yangerrors.Validation, "fraction-digits %d is out of the [1..18] range", ct.FractionDigits)
	}

	natural := restriction.Decimal64Bounds(ct.FractionDigits)
	var parentSet *restriction.Set
	bounds := natural
	if parent != nil && parent.Range != nil {
		parentSet = parent.Range
		bounds = restriction.Bounds{Lo: boundOf(*parent.Range, true), Hi: boundOf(*parent.Range, false)}
	}
	if td.Range == nil {
		ct.Range = parentSet
		return nil
	}
	set, err := restriction.ParseDecimal64(td.Range.Text, ct.FractionDigits, bounds)
	if err != nil {
		return annotateRestrictionError(err, td.Range.ErrorMsg)
	}
	if parentSet != nil && !set.SubsetOf(*parentSet) {
		return yangerrors.Newf(yangerrors.Validation,
			"derived restriction (%s) is not equally or more limiting", set.String())
	}
	ct.Range = &set
	return nil
}

func composeLength(td *ast.TypeDescriptor, parent *value.CompiledType, ct *value.CompiledType) error {
	bounds := restriction.StringLengthBounds
	var parentSet *restriction.Set
	if parent != nil && parent.Length != nil {
		bounds = restriction.Bounds{Lo: boundOf(*parent.Length, true), Hi: boundOf(*parent.Length, false)}
		parentSet = parent.Length
	}
	if td.Length == nil {
		ct.Length = parentSet
		return nil
	}
	set, err := restriction.Parse(td.Length.Text, bounds)
	if err != nil {
		return annotateRestrictionError(err, td.Length.ErrorMsg)
	}
	if parentSet != nil && !set.SubsetOf(*parentSet) {
		return yangerrors.Newf(yangerrors.Validation,
			"derived length restriction (%s) is not equally or more limiting", set.String())
	}
	ct.Length = &set
	return nil
}

func composePatterns(td *ast.TypeDescriptor, parent *value.CompiledType, ct *value.CompiledType) error {
	if parent != nil {
		ct.Patterns = append(ct.Patterns, parent.Patterns...)
	}
	for _, p := range td.Patterns {
		re, err := regexp.Compile(p.Text)
		if err != nil {
			return yangerrors.Newf(yangerrors.Syntax, "invalid pattern %q: %v", p.Text, err)
		}
		ct.Patterns = append(ct.Patterns, value.CompiledPattern{Re: re, Invert: p.Invert})
	}
	return nil
}

func composeEnums(td *ast.TypeDescriptor, parent *value.CompiledType, ct *value.CompiledType) error {
	if len(td.Enums) == 0 {
		if parent != nil {
			ct.Enums = parent.Enums
			return nil
		}
		return yangerrors.New(yangerrors.Validation, "an empty enumeration set is rejected")
	}
	seen := make(map[string]bool, len(td.Enums))
	var next int64
	for _, e := range td.Enums {
		if seen[e.Name] {
			return yangerrors.Newf(yangerrors.Validation, "enumeration member %q declared more than once", e.Name)
		}
		seen[e.Name] = true
		v := next
		if e.Value != nil {
			v = *e.Value
		}
		if parent != nil {
			if !parentHasEnum(parent.Enums, e.Name, v) {
				return yangerrors.Newf(yangerrors.Validation,
					"derived enumeration introduces or re-assigns member %q", e.Name)
			}
		}
		ct.Enums = append(ct.Enums, value.EnumMember{Name: e.Name, Value: v})
		next = v + 1
	}
	return nil
}

func parentHasEnum(parent []value.EnumMember, name string, v int64) bool {
	for _, e := range parent {
		if e.Name == name {
			return e.Value == v
		}
	}
	return false
}

func composeBits(td *ast.TypeDescriptor, parent *value.CompiledType, ct *value.CompiledType) error {
	if len(td.Bits) == 0 {
		if parent != nil {
			ct.Bits = parent.Bits
			return nil
		}
		return yangerrors.New(yangerrors.Validation, "an empty bits set is rejected")
	}
	seen := make(map[string]bool, len(td.Bits))
	var next uint32
	for _, b := range td.Bits {
		if seen[b.Name] {
			return yangerrors.Newf(yangerrors.Validation, "bit member %q declared more than once", b.Name)
		}
		seen[b.Name] = true
		pos := next
		if b.Position != nil {
			pos = *b.Position
		}
		if parent != nil {
			if !parentHasBit(parent.Bits, b.Name, pos) {
				return yangerrors.Newf(yangerrors.Validation,
					"derived bits type introduces or re-assigns member %q", b.Name)
			}
		}
		ct.Bits = append(ct.Bits, value.BitMember{Name: b.Name, Position: pos})
		next = pos + 1
	}
	return nil
}

func parentHasBit(parent []value.BitMember, name string, pos uint32) bool {
	for _, b := range parent {
		if b.Name == name {
			return b.Position == pos
		}
	}
	return false
}

func inheritOrOwnBases(td *ast.TypeDescriptor, parent *value.CompiledType) []string {
	if len(td.Bases) > 0 {
		return td.Bases
	}
	if parent != nil {
		return parent.Bases
	}
	return nil
}

func inheritOrOwnPath(td *ast.TypeDescriptor, parent *value.CompiledType) string {
	if td.Path != nil {
		return *td.Path
	}
	if parent != nil {
		return parent.Path
	}
	return ""
}

func requireInstanceOf(td *ast.TypeDescriptor, parent *value.CompiledType, def bool) bool {
	if td.RequireInstance != nil {
		return *td.RequireInstance
	}
	if parent != nil {
		return parent.RequireInstance
	}
	return def
}

func composeUnion(td *ast.TypeDescriptor, parent *value.CompiledType, s *scope, visiting map[string]bool) ([]*value.CompiledType, error) {
	if len(td.Unions) == 0 {
		if parent != nil {
			return parent.Unions, nil
		}
		return nil, yangerrors.New(yangerrors.Validation, "union requires at least one member type")
	}
	out := make([]*value.CompiledType, 0, len(td.Unions))
	for _, member := range td.Unions {
		ct, err := compileType(member, s, visiting)
		if err != nil {
			return nil, err
		}
		out = append(out, ct)
	}
	return out, nil
}

func boundOf(set restriction.Set, lo bool) *big.Int {
	if len(set) == 0 {
		return nil
	}
	if lo {
		return set[0].Lo
	}
	return set[len(set)-1].Hi
}

func annotateRestrictionError(err error, errMsg string) error {
	if errMsg == "" {
		return err
	}
	if e, ok := err.(*yangerrors.Error); ok {
		return yangerrors.Wrap(e.Kind, err, errMsg)
	}
	return err
}
