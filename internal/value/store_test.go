package value

import (
	"testing"

	"github.com/jacoelho/yang/internal/restriction"
)

func int8Type(rangeText string) *CompiledType {
	ct := &CompiledType{Kind: Int8}
	if rangeText != "" {
		set, err := restriction.Parse(rangeText, restriction.Int8Bounds)
		if err != nil {
			panic(err)
		}
		ct.Range = &set
	}
	return ct
}

func TestStoreInt8Boundaries(t *testing.T) {
	ct := int8Type("")
	tests := []struct {
		text  string
		valid bool
	}{
		{"-128", true},
		{"127", true},
		{"-129", false},
		{"128", false},
	}
	for _, tt := range tests {
		_, err := Store(ct, tt.text, Hints{})
		if (err == nil) != tt.valid {
			t.Errorf("Store(%q) error=%v, want valid=%v", tt.text, err, tt.valid)
		}
	}
}

func TestStoreIntRejectsLeadingPlus(t *testing.T) {
	ct := int8Type("")
	if _, err := Store(ct, "+0", Hints{}); err == nil {
		t.Fatalf("expected a leading-plus-signed zero to be rejected")
	}
	if _, err := Store(ct, "+5", Hints{}); err == nil {
		t.Fatalf("expected a leading-plus-signed value to be rejected")
	}
}

func TestStoreUintRejectsLeadingPlus(t *testing.T) {
	ct := &CompiledType{Kind: Uint8}
	if _, err := Store(ct, "+0", Hints{}); err == nil {
		t.Fatalf("expected a leading-plus-signed zero to be rejected")
	}
}

func TestStoreInt8WithRangeRestriction(t *testing.T) {
	ct := int8Type("0 .. 50 | 127")
	if _, err := Store(ct, "20", Hints{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := Store(ct, "60", Hints{}); err == nil {
		t.Fatalf("expected 60 to fail the range constraint")
	}
	if _, err := Store(ct, "128", Hints{}); err == nil {
		t.Fatalf("expected 128 to fail the natural int8 bounds")
	}
}

func TestStoreDecimal64(t *testing.T) {
	ct := &CompiledType{Kind: Decimal64, FractionDigits: 2}
	v, err := Store(ct, "3.1", Hints{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := Print(v); got != "3.10" {
		t.Fatalf("Print() = %q, want %q", got, "3.10")
	}
	if _, err := Store(ct, "3.145", Hints{}); err == nil {
		t.Fatalf("expected 3.145 to be rejected for fraction-digits=2")
	}
	v2, err := Store(ct, "-0.00", Hints{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := Print(v2); got != "0.00" {
		t.Fatalf("Print() = %q, want %q", got, "0.00")
	}
}

func TestStoreBitsUniqueness(t *testing.T) {
	ct := &CompiledType{Kind: Bits, Bits: []BitMember{
		{Name: "a", Position: 0}, {Name: "b", Position: 1}, {Name: "c", Position: 2},
	}}
	v, err := Store(ct, "c a", Hints{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := Print(v); got != "a c" {
		t.Fatalf("Print() = %q, want ascending-position order %q", got, "a c")
	}
	if _, err := Store(ct, "a a", Hints{}); err == nil {
		t.Fatalf("expected duplicate bit to be rejected")
	}
	if _, err := Store(ct, "z", Hints{}); err == nil {
		t.Fatalf("expected unknown bit to be rejected")
	}
}

func TestStoreCompareRoundTrip(t *testing.T) {
	ct := int8Type("")
	a, err := Store(ct, "5", Hints{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Store(ct, "5", Hints{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Compare(a, b) {
		t.Fatalf("expected two stores of the same text to compare equal")
	}
	c, err := Store(ct, "10", Hints{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Compare(a, c) {
		t.Fatalf("expected different values to compare not-equal")
	}
}

type fakeIdentitySet map[string]string

func (f fakeIdentitySet) IsDerivedFrom(name, base string) bool {
	for cur := name; cur != ""; cur = f[cur] {
		if cur == base {
			return true
		}
	}
	return false
}

func TestStoreIdentityref(t *testing.T) {
	identities := fakeIdentitySet{"C": "B", "B": "A"}
	ct := &CompiledType{Kind: Identityref, Bases: []string{"A"}}
	if _, err := Store(ct, "C", Hints{Identities: identities}); err != nil {
		t.Fatalf("expected C to be derived from A: %v", err)
	}
	if _, err := Store(ct, "A", Hints{Identities: identities}); err != nil {
		t.Fatalf("expected A to be derived from (equal to) A: %v", err)
	}
	other := &CompiledType{Kind: Identityref, Bases: []string{"C"}}
	if _, err := Store(other, "A", Hints{Identities: identities}); err == nil {
		t.Fatalf("expected A not to be derived from C")
	}
}

func TestStoreUnion(t *testing.T) {
	ct := &CompiledType{Kind: Union, Unions: []*CompiledType{
		int8Type(""),
		{Kind: String},
	}}
	v, err := Store(ct, "20", Hints{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Union == nil || v.Union.Kind != Int8 {
		t.Fatalf("expected the int8 member to win for numeric text")
	}
	v2, err := Store(ct, "not-a-number", Hints{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v2.Union == nil || v2.Union.Kind != String {
		t.Fatalf("expected the string member to win as fallback")
	}
}
