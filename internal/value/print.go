package value

import (
	"encoding/base64"
	"math/big"
	"strconv"
	"strings"

	"github.com/jacoelho/yang/internal/restriction"
)

// Print renders v back to its canonical lexical form, per the contracts
// in spec.md section 4.5.
func Print(v Value) string {
	switch v.Kind {
	case Int8, Int16, Int32, Int64:
		return strconv.FormatInt(v.Int, 10)
	case Uint8, Uint16, Uint32, Uint64:
		return strconv.FormatUint(v.Uint, 10)
	case Decimal64:
		return restriction.FormatDecimal(big.NewInt(v.Decimal), v.FractionDigits)
	case Boolean:
		if v.Bool {
			return "true"
		}
		return "false"
	case Empty:
		return ""
	case Binary:
		return base64.StdEncoding.EncodeToString(v.Bytes)
	case Bits:
		return strings.Join(v.BitNames, " ")
	case Enumeration, Identityref, Leafref, InstanceIdentifier, String:
		return v.Str
	case Union:
		if v.Union == nil {
			return ""
		}
		return Print(*v.Union)
	case Custom:
		return v.Str
	default:
		return ""
	}
}
