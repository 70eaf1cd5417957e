package restriction

import (
	"math/big"
	"strings"

	yangerrors "github.com/jacoelho/yang/errors"
)

// ScaleDecimal parses a decimal64 lexical form "[-+]?digits(.digits)?"
// into its scaled mantissa at fractionDigits, per spec.md section 4.5: the
// fractional part must have at most fractionDigits digits; a shorter
// fractional part is zero-padded on the right.
func ScaleDecimal(text string, fractionDigits uint8) (*big.Int, error) {
	s := text
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	intPart, fracPart := s, ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, fracPart = s[:dot], s[dot+1:]
	}
	if intPart == "" || !allDigits(intPart) || !allDigits(fracPart) {
		return nil, yangerrors.Newf(yangerrors.Syntax, "invalid decimal64 value %q", text)
	}
	if len(fracPart) > int(fractionDigits) {
		return nil, yangerrors.Newf(yangerrors.Validation,
			"decimal64 value %q has more than %d fractional digits", text, fractionDigits)
	}
	fracPart += strings.Repeat("0", int(fractionDigits)-len(fracPart))

	mantissa, ok := new(big.Int).SetString(intPart+fracPart, 10)
	if !ok {
		return nil, yangerrors.Newf(yangerrors.Syntax, "invalid decimal64 value %q", text)
	}
	if neg {
		mantissa.Neg(mantissa)
	}
	return mantissa, nil
}

func allDigits(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// FormatDecimal renders a scaled decimal64 mantissa back to canonical
// text: exactly fractionDigits fractional digits, a leading zero before
// the decimal point when the integer part is empty, no leading "+", and
// negative zero canonicalized to zero (spec.md section 4.5).
func FormatDecimal(mantissa *big.Int, fractionDigits uint8) string {
	if mantissa.Sign() == 0 {
		return formatNonNegative(new(big.Int), fractionDigits)
	}
	neg := mantissa.Sign() < 0
	abs := new(big.Int).Abs(mantissa)
	text := formatNonNegative(abs, fractionDigits)
	if neg {
		return "-" + text
	}
	return text
}

func formatNonNegative(abs *big.Int, fractionDigits uint8) string {
	digits := abs.String()
	f := int(fractionDigits)
	if f == 0 {
		return digits
	}
	for len(digits) <= f {
		digits = "0" + digits
	}
	intPart := digits[:len(digits)-f]
	fracPart := digits[len(digits)-f:]
	return intPart + "." + fracPart
}
