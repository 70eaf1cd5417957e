// Package restriction implements the restriction algebra (component C6):
// sorted, disjoint closed-interval sets over a linearly-ordered integer
// domain, their textual grammar, and the "derived must be a subset of
// parent" composition rule used for range, length, and decimal64
// restrictions.
//
// Adjacent intervals are never merged even when they touch (lo[i+1] ==
// hi[i]+1): the comparator only forbids overlap and out-of-order
// endpoints, matching the original implementation's observed behavior
// (see DESIGN.md, Open Question 2).
package restriction

import (
	"math/big"
	"strings"

	yangerrors "github.com/jacoelho/yang/errors"
)

// Interval is one closed interval [Lo, Hi] of the restriction domain.
type Interval struct {
	Lo, Hi *big.Int
}

// Set is a sorted, disjoint list of intervals: invariant
// Set[i].Hi < Set[i+1].Lo for every i.
type Set []Interval

// Bounds is the natural (unrestricted) domain of a built-in type, used to
// resolve the "min"/"max" grammar atoms when there is no parent
// restriction to inherit them from.
type Bounds struct {
	Lo, Hi *big.Int
}

func big64(v int64) *big.Int  { return big.NewInt(v) }
func bigU64(v uint64) *big.Int { return new(big.Int).SetUint64(v) }

// Natural integer bounds for every built-in integer width, per spec.md
// section 3 ("signed/unsigned two's-complement limits").
var (
	Int8Bounds   = Bounds{big64(-128), big64(127)}
	Int16Bounds  = Bounds{big64(-32768), big64(32767)}
	Int32Bounds  = Bounds{big64(-2147483648), big64(2147483647)}
	Int64Bounds  = Bounds{big64(-9223372036854775808), big64(9223372036854775807)}
	Uint8Bounds  = Bounds{big64(0), big64(255)}
	Uint16Bounds = Bounds{big64(0), big64(65535)}
	Uint32Bounds = Bounds{big64(0), big64(4294967295)}
	Uint64Bounds = Bounds{big64(0), bigU64(18446744073709551615)}

	// StringLengthBounds is the natural domain of a length restriction:
	// non-negative Unicode scalar counts, unbounded above.
	StringLengthBounds = Bounds{big64(0), nil}
)

// Decimal64Bounds returns the natural bounds of a decimal64 with the given
// fraction-digits count, expressed as scaled integers (mantissa), per
// spec.md section 3: "the representable range is ±(2^63−1) / 10^f".
func Decimal64Bounds(fractionDigits uint8) Bounds {
	_ = fractionDigits // the scaled-mantissa domain is the same for every f
	return Bounds{new(big.Int).Neg(maxInt63), maxInt63}
}

var maxInt63 = func() *big.Int {
	v := new(big.Int).SetInt64(9223372036854775807)
	return v
}()

// literalParser turns one non-min/max atom's text into a domain value;
// Parse uses plain base-10 integers, ParseDecimal64 uses scaled decimals.
type literalParser func(text string) (*big.Int, error)

// Parse parses a range/length restriction text ("part (| part)*", each
// part "atom" or "atom .. atom", each atom "min", "max", or a literal)
// against parent, the effective bounds to resolve "min"/"max" against.
// The parsed set is validated against parent's bounds (every literal must
// lie within them) and against strictly ascending, non-overlapping order.
func Parse(text string, parent Bounds) (Set, error) {
	return parseWith(text, parent, parseIntegerLiteral)
}

// ParseDecimal64 is Parse specialized to decimal64 restriction text, where
// literals may carry up to fractionDigits fractional digits; every literal
// is scaled to the mantissa domain before the usual ordering/bounds checks.
func ParseDecimal64(text string, fractionDigits uint8, parent Bounds) (Set, error) {
	return parseWith(text, parent, func(lit string) (*big.Int, error) {
		return ScaleDecimal(lit, fractionDigits)
	})
}

func parseIntegerLiteral(text string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return nil, yangerrors.Newf(yangerrors.Syntax, "invalid restriction literal %q", text)
	}
	return v, nil
}

func parseWith(text string, parent Bounds, literal literalParser) (Set, error) {
	parts := strings.Split(text, "|")
	set := make(Set, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, yangerrors.New(yangerrors.Syntax, "empty restriction part")
		}
		lo, hi, err := parsePart(part, parent, literal)
		if err != nil {
			return nil, err
		}
		if lo.Cmp(hi) > 0 {
			return nil, yangerrors.Newf(yangerrors.Validation,
				"restriction part %q has lower bound greater than upper bound", part)
		}
		if err := checkWithinBounds(lo, hi, parent); err != nil {
			return nil, err
		}
		set = append(set, Interval{Lo: lo, Hi: hi})
	}
	if err := checkAscending(set); err != nil {
		return nil, err
	}
	return set, nil
}

func parsePart(part string, parent Bounds, literal literalParser) (*big.Int, *big.Int, error) {
	if idx := strings.Index(part, ".."); idx >= 0 {
		loText := strings.TrimSpace(part[:idx])
		hiText := strings.TrimSpace(part[idx+2:])
		lo, err := parseAtom(loText, parent, literal)
		if err != nil {
			return nil, nil, err
		}
		hi, err := parseAtom(hiText, parent, literal)
		if err != nil {
			return nil, nil, err
		}
		return lo, hi, nil
	}
	v, err := parseAtom(part, parent, literal)
	if err != nil {
		return nil, nil, err
	}
	return v, v, nil
}

func parseAtom(text string, parent Bounds, literal literalParser) (*big.Int, error) {
	switch text {
	case "min":
		if parent.Lo == nil {
			return nil, yangerrors.New(yangerrors.Validation, "\"min\" has no natural lower bound here")
		}
		return new(big.Int).Set(parent.Lo), nil
	case "max":
		if parent.Hi == nil {
			return nil, yangerrors.New(yangerrors.Validation, "\"max\" has no natural upper bound here")
		}
		return new(big.Int).Set(parent.Hi), nil
	default:
		return literal(text)
	}
}

func checkWithinBounds(lo, hi *big.Int, parent Bounds) error {
	if parent.Lo != nil && lo.Cmp(parent.Lo) < 0 {
		return yangerrors.Newf(yangerrors.Validation,
			"restriction value %s is out of the type's min/max bounds", lo.String())
	}
	if parent.Hi != nil && hi.Cmp(parent.Hi) > 0 {
		return yangerrors.Newf(yangerrors.Validation,
			"restriction value %s is out of the type's min/max bounds", hi.String())
	}
	return nil
}

func checkAscending(set Set) error {
	for i := 1; i < len(set); i++ {
		if set[i].Lo.Cmp(set[i-1].Hi) <= 0 {
			return yangerrors.Newf(yangerrors.Validation,
				"restriction parts are not in strictly ascending, non-overlapping order (%s, %s)",
				set[i-1].Hi.String(), set[i].Lo.String())
		}
	}
	return nil
}

// Contains reports whether v falls within some interval of s.
func (s Set) Contains(v *big.Int) bool {
	for _, iv := range s {
		if v.Cmp(iv.Lo) >= 0 && v.Cmp(iv.Hi) <= 0 {
			return true
		}
	}
	return false
}

// SubsetOf reports whether every interval of s is fully contained within
// some single interval of parent — the "derived must be equally or more
// limiting" test (spec.md section 4.4).
func (s Set) SubsetOf(parent Set) bool {
	for _, iv := range s {
		if !containedInAny(iv, parent) {
			return false
		}
	}
	return true
}

func containedInAny(iv Interval, parent Set) bool {
	for _, p := range parent {
		if iv.Lo.Cmp(p.Lo) >= 0 && iv.Hi.Cmp(p.Hi) <= 0 {
			return true
		}
	}
	return false
}

// String renders s back to restriction-text form, used by the printer and
// by diagnostics that quote a derived restriction.
func (s Set) String() string {
	var b strings.Builder
	for i, iv := range s {
		if i > 0 {
			b.WriteString(" | ")
		}
		if iv.Lo.Cmp(iv.Hi) == 0 {
			b.WriteString(iv.Lo.String())
		} else {
			b.WriteString(iv.Lo.String())
			b.WriteString(" .. ")
			b.WriteString(iv.Hi.String())
		}
	}
	return b.String()
}
