package primitive

import (
	"math"
	"strconv"
	"strings"
)

// Special float texts. They follow the host debug notation and are mapped to
// dialect specific expressions by the renderer.
const (
	TextNaN    = "NaN"
	TextInf    = "inf"
	TextNegInf = "-inf"
)

func FormatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

func FormatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}

// FormatFloat returns the shortest text that parses back to exactly f at the
// given bit size. The result always contains a '.' or an exponent so it stays
// distinguishable from an integer.
func FormatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return TextNaN
	case math.IsInf(f, 1):
		return TextInf
	case math.IsInf(f, -1):
		return TextNegInf
	}

	s := strconv.FormatFloat(f, 'g', -1, bits)

	mantissa, exp, hasExp := strings.Cut(s, "e")
	if hasExp {
		exp = strings.TrimPrefix(exp, "+")
		neg := strings.HasPrefix(exp, "-")
		exp = strings.TrimLeft(strings.TrimPrefix(exp, "-"), "0")
		if exp == "" {
			exp = "0"
		}
		if neg {
			exp = "-" + exp
		}
	}

	if !strings.ContainsRune(mantissa, '.') {
		mantissa += ".0"
	}

	if hasExp {
		return mantissa + "e" + exp
	}

	return mantissa
}

// IsSpecialFloat reports whether text is one of the non-finite float texts.
func IsSpecialFloat(text string) bool {
	return text == TextNaN || text == TextInf || text == TextNegInf
}

// FitsDefaultInt reports whether the integer text fits the default integer
// width of the target grammars (32-bit signed).
func FitsDefaultInt(text string) bool {
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return false
	}

	return math.MinInt32 <= v && v <= math.MaxInt32
}

// FitsKind reports whether the integer text can be represented by kind k.
func FitsKind(text string, k KindEnum) bool {
	switch {
	case k == KindUntypedInt:
		_, err := strconv.ParseInt(text, 10, 64)
		if err == nil {
			return true
		}
		_, err = strconv.ParseUint(text, 10, 64)
		return err == nil
	case k.IsSigned():
		_, err := strconv.ParseInt(text, 10, k.Bits())
		return err == nil
	case k.IsUnsigned():
		_, err := strconv.ParseUint(text, 10, k.Bits())
		return err == nil
	default:
		return false
	}
}
