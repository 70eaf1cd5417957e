package value

import (
	"encoding/base64"
	"math/big"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	yangerrors "github.com/jacoelho/yang/errors"
	"github.com/jacoelho/yang/internal/restriction"
)

// IdentitySet resolves whether an identity is derived from (or equal to)
// a base identity; a Context's compiled identity DAG implements it.
type IdentitySet interface {
	IsDerivedFrom(name, base string) bool
}

// PathValidator checks the grammar-only shape of a leafref path or
// instance-identifier text, without evaluating it against data.
type PathValidator interface {
	Validate(text string) error
}

// Hints carries the collaborators Store needs for reference-like types;
// the zero Hints is valid and simply skips those checks.
type Hints struct {
	Identities IdentitySet
	Paths      PathValidator
}

// Store parses text against ct, returning a validated Value or a
// diagnostic naming the offending value, per spec.md section 4.5.
func Store(ct *CompiledType, text string, hints Hints) (Value, error) {
	switch ct.Kind {
	case Int8, Int16, Int32, Int64:
		return storeInt(ct, text)
	case Uint8, Uint16, Uint32, Uint64:
		return storeUint(ct, text)
	case Decimal64:
		return storeDecimal64(ct, text)
	case Boolean:
		return storeBoolean(text)
	case Empty:
		return storeEmpty(text)
	case Binary:
		return storeBinary(ct, text)
	case Bits:
		return storeBits(ct, text)
	case Enumeration:
		return storeEnumeration(ct, text)
	case Identityref:
		return storeIdentityref(ct, text, hints)
	case Leafref:
		return storeLeafref(ct, text, hints)
	case InstanceIdentifier:
		return storeInstanceIdentifier(ct, text, hints)
	case String:
		return storeString(ct, text)
	case Union:
		return storeUnion(ct, text, hints)
	case Custom:
		return storeCustom(ct, text)
	default:
		return Value{}, yangerrors.Newf(yangerrors.Internal, "store: unhandled built-in kind %s", ct.Kind)
	}
}

func storeInt(ct *CompiledType, text string) (Value, error) {
	if strings.TrimSpace(text) == "" {
		return Value{}, yangerrors.New(yangerrors.Validation, "integer value must not be empty or whitespace-only")
	}
	if strings.HasPrefix(text, "+") {
		return Value{}, yangerrors.Newf(yangerrors.Validation, "%q must not have a leading \"+\"", text)
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Value{}, yangerrors.Newf(yangerrors.Validation, "%q is out of %s's min/max bounds", text, ct.Kind)
	}
	if err := checkIntRange(ct, big.NewInt(n)); err != nil {
		return Value{}, err
	}
	return Value{Kind: ct.Kind, Int: n}, nil
}

func storeUint(ct *CompiledType, text string) (Value, error) {
	if strings.TrimSpace(text) == "" {
		return Value{}, yangerrors.New(yangerrors.Validation, "integer value must not be empty or whitespace-only")
	}
	if strings.HasPrefix(text, "+") {
		return Value{}, yangerrors.Newf(yangerrors.Validation, "%q must not have a leading \"+\"", text)
	}
	n, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return Value{}, yangerrors.Newf(yangerrors.Validation, "%q is out of %s's min/max bounds", text, ct.Kind)
	}
	if err := checkIntRange(ct, new(big.Int).SetUint64(n)); err != nil {
		return Value{}, err
	}
	return Value{Kind: ct.Kind, Uint: n}, nil
}

func checkIntRange(ct *CompiledType, v *big.Int) error {
	natural := ct.Natural()
	if natural.Lo != nil && v.Cmp(natural.Lo) < 0 || natural.Hi != nil && v.Cmp(natural.Hi) > 0 {
		return yangerrors.Newf(yangerrors.Validation, "%s is out of %s's min/max bounds", v.String(), ct.Kind)
	}
	if ct.Range != nil && !ct.Range.Contains(v) {
		return yangerrors.Newf(yangerrors.Validation, "%s does not satisfy the range constraint", v.String())
	}
	return nil
}

func storeDecimal64(ct *CompiledType, text string) (Value, error) {
	mantissa, err := restriction.ScaleDecimal(text, ct.FractionDigits)
	if err != nil {
		return Value{}, err
	}
	natural := restriction.Decimal64Bounds(ct.FractionDigits)
	if mantissa.Cmp(natural.Lo) < 0 || mantissa.Cmp(natural.Hi) > 0 {
		return Value{}, yangerrors.Newf(yangerrors.Validation, "%q is out of decimal64's min/max bounds", text)
	}
	if ct.Range != nil && !ct.Range.Contains(mantissa) {
		return Value{}, yangerrors.Newf(yangerrors.Validation, "%q does not satisfy the range constraint", text)
	}
	return Value{Kind: Decimal64, Decimal: mantissa.Int64(), FractionDigits: ct.FractionDigits}, nil
}

func storeBoolean(text string) (Value, error) {
	switch text {
	case "true":
		return Value{Kind: Boolean, Bool: true}, nil
	case "false":
		return Value{Kind: Boolean, Bool: false}, nil
	default:
		return Value{}, yangerrors.Newf(yangerrors.Validation, "%q is not a boolean (\"true\" or \"false\")", text)
	}
}

func storeEmpty(text string) (Value, error) {
	if text != "" {
		return Value{}, yangerrors.Newf(yangerrors.Validation, "%q is not valid for type empty (only the empty string is)", text)
	}
	return Value{Kind: Empty}, nil
}

func storeBinary(ct *CompiledType, text string) (Value, error) {
	clean := stripWhitespace(text)
	b, err := base64.StdEncoding.DecodeString(clean)
	if err != nil {
		return Value{}, yangerrors.Newf(yangerrors.Validation, "%q is not valid base64", text)
	}
	if ct.Length != nil && !ct.Length.Contains(big.NewInt(int64(len(b)))) {
		return Value{}, yangerrors.Newf(yangerrors.Validation, "binary value of length %d does not satisfy the length constraint", len(b))
	}
	return Value{Kind: Binary, Bytes: b}, nil
}

func stripWhitespace(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func storeBits(ct *CompiledType, text string) (Value, error) {
	fields := strings.Fields(text)
	seen := make(map[string]bool, len(fields))
	positions := make(map[string]uint32, len(ct.Bits))
	for _, b := range ct.Bits {
		positions[b.Name] = b.Position
	}
	for _, f := range fields {
		if _, ok := positions[f]; !ok {
			return Value{}, yangerrors.Newf(yangerrors.Validation, "%q is not a member of this bits type", f)
		}
		if seen[f] {
			return Value{}, yangerrors.Newf(yangerrors.Validation, "bit %q specified more than once", f)
		}
		seen[f] = true
	}
	sort.Slice(fields, func(i, j int) bool { return positions[fields[i]] < positions[fields[j]] })
	return Value{Kind: Bits, BitNames: fields}, nil
}

func storeEnumeration(ct *CompiledType, text string) (Value, error) {
	for _, e := range ct.Enums {
		if e.Name == text {
			return Value{Kind: Enumeration, Str: text}, nil
		}
	}
	return Value{}, yangerrors.Newf(yangerrors.Validation, "%q is not a member of this enumeration", text)
}

func storeIdentityref(ct *CompiledType, text string, hints Hints) (Value, error) {
	if hints.Identities == nil {
		return Value{Kind: Identityref, Str: text}, nil
	}
	for _, base := range ct.Bases {
		if hints.Identities.IsDerivedFrom(text, base) {
			return Value{Kind: Identityref, Str: text}, nil
		}
	}
	return Value{}, yangerrors.Newf(yangerrors.Unresolved, "%q is not derived from any declared base identity", text)
}

func storeLeafref(ct *CompiledType, text string, hints Hints) (Value, error) {
	if ct.Referent != nil {
		if _, err := Store(ct.Referent, text, hints); err != nil {
			return Value{}, err
		}
	}
	return Value{Kind: Leafref, Str: text}, nil
}

func storeInstanceIdentifier(_ *CompiledType, text string, hints Hints) (Value, error) {
	if hints.Paths != nil {
		if err := hints.Paths.Validate(text); err != nil {
			return Value{}, err
		}
	}
	return Value{Kind: InstanceIdentifier, Str: text}, nil
}

func storeString(ct *CompiledType, text string) (Value, error) {
	if !utf8.ValidString(text) {
		return Value{}, yangerrors.New(yangerrors.Syntax, "string value is not valid UTF-8")
	}
	n := utf8.RuneCountInString(text)
	if ct.Length != nil && !ct.Length.Contains(big.NewInt(int64(n))) {
		return Value{}, yangerrors.Newf(yangerrors.Validation, "string of length %d does not satisfy the length constraint", n)
	}
	for _, p := range ct.Patterns {
		matched := p.Re.MatchString(text)
		if matched == p.Invert {
			return Value{}, yangerrors.Newf(yangerrors.Validation, "%q does not match pattern %q", text, p.Re.String())
		}
	}
	return Value{Kind: String, Str: text}, nil
}

func storeUnion(ct *CompiledType, text string, hints Hints) (Value, error) {
	for _, member := range ct.Unions {
		if v, err := Store(member, text, hints); err == nil {
			return Value{Kind: Union, Union: &v}, nil
		}
	}
	return Value{}, yangerrors.Newf(yangerrors.Validation, "%q matches no member of this union", text)
}

func storeCustom(ct *CompiledType, text string) (Value, error) {
	if ct.Custom == nil || ct.Custom.Store == nil {
		return Value{}, yangerrors.New(yangerrors.Internal, "custom type has no registered store callback")
	}
	payload, err := ct.Custom.Store(text)
	if err != nil {
		return Value{}, yangerrors.Wrap(yangerrors.Validation, err, "custom type store failed")
	}
	return Value{Kind: Custom, Str: text, Custom: payload}, nil
}
