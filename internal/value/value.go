package value

// Value is a typed, validated leaf value. Only the fields relevant to
// Kind are populated. Duplicate/Compare operate structurally on it; no
// built-in type holds a pointer into caller-owned memory except Bytes and
// Union, which Duplicate copies explicitly.
type Value struct {
	Kind BuiltinKind

	Int  int64  // Int8/Int16/Int32/Int64
	Uint uint64 // Uint8/Uint16/Uint32/Uint64

	Decimal        int64 // Decimal64: scaled mantissa
	FractionDigits uint8

	Bool bool // Boolean

	Str string // String/Enumeration name/Identityref text/Leafref text/InstanceIdentifier text

	Bytes []byte // Binary

	BitNames []string // Bits, ascending position order

	Union *Value // Union: the member value that stored successfully

	Custom any // Custom: opaque payload from a registered CustomType
}

// Duplicate returns a deep copy of v: Bytes, BitNames, and Union are
// copied rather than shared.
func Duplicate(v Value) Value {
	cp := v
	if v.Bytes != nil {
		cp.Bytes = append([]byte(nil), v.Bytes...)
	}
	if v.BitNames != nil {
		cp.BitNames = append([]string(nil), v.BitNames...)
	}
	if v.Union != nil {
		u := Duplicate(*v.Union)
		cp.Union = &u
	}
	return cp
}

// Compare reports whether a and b are equal values of the same kind.
func Compare(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case Int8, Int16, Int32, Int64:
		return a.Int == b.Int
	case Uint8, Uint16, Uint32, Uint64:
		return a.Uint == b.Uint
	case Decimal64:
		return a.Decimal == b.Decimal && a.FractionDigits == b.FractionDigits
	case Boolean:
		return a.Bool == b.Bool
	case Empty:
		return true
	case Binary:
		return compareBytes(a.Bytes, b.Bytes)
	case Bits:
		return compareStrings(a.BitNames, b.BitNames)
	case Enumeration, Identityref, Leafref, InstanceIdentifier, String:
		return a.Str == b.Str
	case Union:
		if a.Union == nil || b.Union == nil {
			return a.Union == b.Union
		}
		return Compare(*a.Union, *b.Union)
	case Custom:
		return a.Str == b.Str
	default:
		return false
	}
}

func compareBytes(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func compareStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
