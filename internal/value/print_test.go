package value

import "testing"

func TestPrintScalarKinds(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"int8", Value{Kind: Int8, Int: -5}, "-5"},
		{"uint32", Value{Kind: Uint32, Uint: 42}, "42"},
		{"boolean true", Value{Kind: Boolean, Bool: true}, "true"},
		{"boolean false", Value{Kind: Boolean, Bool: false}, "false"},
		{"empty", Value{Kind: Empty}, ""},
		{"binary", Value{Kind: Binary, Bytes: []byte("ab")}, "YWI="},
		{"enumeration", Value{Kind: Enumeration, Str: "up"}, "up"},
		{"identityref", Value{Kind: Identityref, Str: "acme:widget"}, "acme:widget"},
		{"leafref", Value{Kind: Leafref, Str: "/a/b"}, "/a/b"},
		{"instance-identifier", Value{Kind: InstanceIdentifier, Str: "/a/b[1]"}, "/a/b[1]"},
		{"string", Value{Kind: String, Str: "hello"}, "hello"},
		{"custom", Value{Kind: Custom, Str: "raw-payload"}, "raw-payload"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Print(tt.v); got != tt.want {
				t.Fatalf("Print(%s) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestPrintUnionRecursesIntoMember(t *testing.T) {
	v := Value{Kind: Union, Union: &Value{Kind: Int8, Int: 7}}
	if got := Print(v); got != "7" {
		t.Fatalf("Print(union) = %q, want %q", got, "7")
	}
}

func TestPrintUnionWithNoStoredMemberIsEmpty(t *testing.T) {
	v := Value{Kind: Union}
	if got := Print(v); got != "" {
		t.Fatalf("Print(empty union) = %q, want empty string", got)
	}
}
