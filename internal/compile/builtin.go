package compile

import "github.com/jacoelho/yang/internal/value"

var builtinKinds = map[string]value.BuiltinKind{
	"binary":              value.Binary,
	"bits":                value.Bits,
	"boolean":             value.Boolean,
	"decimal64":           value.Decimal64,
	"empty":                value.Empty,
	"enumeration":         value.Enumeration,
	"identityref":         value.Identityref,
	"instance-identifier": value.InstanceIdentifier,
	"int8":                value.Int8,
	"int16":               value.Int16,
	"int32":               value.Int32,
	"int64":               value.Int64,
	"leafref":             value.Leafref,
	"string":              value.String,
	"uint8":               value.Uint8,
	"uint16":              value.Uint16,
	"uint32":              value.Uint32,
	"uint64":              value.Uint64,
	"union":               value.Union,
}

func isIntegerKind(k value.BuiltinKind) bool {
	switch k {
	case value.Int8, value.Int16, value.Int32, value.Int64,
		value.Uint8, value.Uint16, value.Uint32, value.Uint64:
		return true
	default:
		return false
	}
}
