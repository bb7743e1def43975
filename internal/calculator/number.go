// ============================================================================
// mCalc - Terminal Calculator
// ============================================================================
//
// Package:     calculator
// Description: Lenient number parsing and shortest decimal rendering
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package calculator

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// numericPrefix matches the longest leading part of a string that reads as a
// decimal number. Trailing garbage such as "5." or "Infinity7" is ignored.
var numericPrefix = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)

// ParseNumber parses the leading numeric part of s. Strings without a
// numeric prefix yield NaN.
func ParseNumber(s string) float64 {
	prefix := numericPrefix.FindString(strings.TrimSpace(s))
	if prefix == "" {
		return math.NaN()
	}

	switch prefix {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		// Out of range values come back as ±Inf together with ErrRange
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return f
		}
		return math.NaN()
	}
	return f
}

// FormatNumber renders f the way the calculator stores results: the shortest
// decimal that round-trips, in fixed notation for 1e-6 <= |f| < 1e21 and in
// exponential notation ("1e+21", "1.5e-7") otherwise.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		// covers negative zero
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		return trimExponent(strconv.FormatFloat(f, 'e', -1, 64))
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// exactDigits is enough fractional digits in 'e' format to print any
// float64 exactly, subnormals included.
const exactDigits = 767

// toExponential renders f with exactly digits fractional digits in
// exponential notation, e.g. 1.00e+9. Ties round away from zero.
func toExponential(f float64, digits int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return FormatNumber(f)
	}
	mantissa, e := roundSignificant(f, digits+1)
	return exponential(f < 0, mantissa, e)
}

// toPrecision rounds f to precision significant digits, ties away from
// zero. Fixed notation is used while the decimal exponent lies in
// [-6, precision), exponential notation otherwise. Trailing zeros are kept.
func toPrecision(f float64, precision int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return FormatNumber(f)
	}

	mantissa, e := roundSignificant(f, precision)
	if e < -6 || e >= precision {
		return exponential(f < 0, mantissa, e)
	}

	var b strings.Builder
	if f < 0 {
		b.WriteByte('-')
	}
	if e >= 0 {
		b.WriteString(mantissa[:e+1])
		if e+1 < len(mantissa) {
			b.WriteByte('.')
			b.WriteString(mantissa[e+1:])
		}
	} else {
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", -e-1))
		b.WriteString(mantissa)
	}
	return b.String()
}

// roundSignificant returns the first n significant digits of |f|, rounded
// half up on the exact binary value, and the decimal exponent of the
// first digit. Zero yields n zeros and exponent 0.
func roundSignificant(f float64, n int) (string, int) {
	if f == 0 {
		return strings.Repeat("0", n), 0
	}

	s := strconv.FormatFloat(math.Abs(f), 'e', exactDigits, 64)
	idx := strings.IndexByte(s, 'e')
	all := s[:1] + s[2:idx]
	e := exponentOf(s)

	digits := []byte(all[:n])
	if all[n] >= '5' {
		i := n - 1
		for ; i >= 0; i-- {
			if digits[i] != '9' {
				digits[i]++
				break
			}
			digits[i] = '0'
		}
		if i < 0 {
			// 999 -> 1000: keep n digits and shift the exponent
			digits = append([]byte{'1'}, digits[:n-1]...)
			e++
		}
	}
	return string(digits), e
}

// exponential lays out significant digits as d.ddde±x
func exponential(negative bool, mantissa string, e int) string {
	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString(mantissa[:1])
	if len(mantissa) > 1 {
		b.WriteByte('.')
		b.WriteString(mantissa[1:])
	}
	b.WriteByte('e')
	if e < 0 {
		b.WriteByte('-')
		e = -e
	} else {
		b.WriteByte('+')
	}
	b.WriteString(strconv.Itoa(e))
	return b.String()
}

// exponentOf returns the decimal exponent of a strconv 'e' formatted number
func exponentOf(s string) int {
	idx := strings.IndexByte(s, 'e')
	if idx < 0 {
		return 0
	}
	e, err := strconv.Atoi(s[idx+1:])
	if err != nil {
		return 0
	}
	return e
}

// trimExponent drops leading zeros of the exponent: 1.5e-07 becomes 1.5e-7
func trimExponent(s string) string {
	idx := strings.IndexByte(s, 'e')
	if idx < 0 || idx+2 > len(s) {
		return s
	}
	mantissa, sign, digits := s[:idx], s[idx+1:idx+2], s[idx+2:]
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}
