package format

import (
	"strconv"
	"strings"
)

// Uint64 renders v in decimal.
func Uint64(v uint64) string {
	return strconv.FormatUint(v, 10)
}

// FixedPoint renders value as a decimal number with the given count of
// fraction digits. Trailing zeros of the fraction are dropped, and so is the
// decimal point when nothing is left after it.
func FixedPoint(value uint64, digits int) string {
	s := strconv.FormatUint(value, 10)
	if digits <= 0 {
		return s
	}

	if len(s) <= digits {
		s = strings.Repeat("0", digits-len(s)+1) + s
	}

	integer, fraction := s[:len(s)-digits], s[len(s)-digits:]
	fraction = strings.TrimRight(fraction, "0")
	if fraction == "" {
		return integer
	}
	return integer + "." + fraction
}
