package table

import (
	"math"
	"strconv"
	"strings"
)

// Format a float the way the report files have always shown them: the shortest representation
// that reads back as the same value, always with a decimal point or an exponent ("50.0",
// "33.333333333333336"), exponent form when the decimal exponent is below -4 or at least 16
// ("1e-05", "1.5e+16"), and "nan", "inf", "-inf".

func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}
	e := strconv.FormatFloat(v, 'e', -1, 64)
	_, expStr, _ := strings.Cut(e, "e")
	exp, _ := strconv.Atoi(expStr)
	if exp < -4 || exp >= 16 {
		return e
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
