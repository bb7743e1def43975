// ============================================================================
// mCalc - Terminal Calculator
// ============================================================================
//
// Package:     calculator
// Description: Display formatter for the calculator entry
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package calculator

import (
	"math"
	"strings"
)

// Display limits of the keypad widget
const (
	DefaultMaxLength      = 9
	DefaultMaxMagnitude   = 999_999_999
	DefaultPrecision      = 6
	DefaultExponentDigits = 2

	// MaxPrecision and MaxExponentDigits are the ranges accepted by
	// toPrecision and toExponential
	MaxPrecision      = 21
	MaxExponentDigits = 20
)

// Formatter reduces an entry to the string shown on the display
type Formatter struct {
	// MaxLength is the longest entry shown verbatim
	MaxLength int
	// MaxMagnitude is the largest absolute value shown in plain notation
	MaxMagnitude float64
	// Precision is the number of significant digits for over-long entries
	Precision int
	// ExponentDigits is the number of fractional digits in exponential form;
	// 0 drops the fraction ("1e+9")
	ExponentDigits int
}

// DefaultFormatter returns the formatter used by the keypad widget
func DefaultFormatter() Formatter {
	return Formatter{
		MaxLength:      DefaultMaxLength,
		MaxMagnitude:   DefaultMaxMagnitude,
		Precision:      DefaultPrecision,
		ExponentDigits: DefaultExponentDigits,
	}
}

// Format renders entry with the default formatter
func Format(entry string) string {
	return DefaultFormatter().Format(entry)
}

// Format renders entry for the display:
//
//   - entries that do not parse as a number show "0"
//   - an entry ending in "." is shown as typed
//   - values above MaxMagnitude use exponential notation
//   - entries longer than MaxLength are rounded to Precision digits
//   - everything else is shown as typed
func (f Formatter) Format(entry string) string {
	f = f.normalized()

	value := ParseNumber(entry)
	if math.IsNaN(value) {
		return "0"
	}
	if strings.HasSuffix(entry, ".") {
		return entry
	}
	if math.Abs(value) > f.MaxMagnitude {
		return toExponential(value, f.ExponentDigits)
	}
	if len(entry) > f.MaxLength {
		return toPrecision(value, f.Precision)
	}
	return entry
}

// normalized replaces unusable limits with the defaults. The zero
// Formatter behaves like DefaultFormatter.
func (f Formatter) normalized() Formatter {
	def := DefaultFormatter()
	if f == (Formatter{}) {
		return def
	}
	if f.MaxLength <= 0 {
		f.MaxLength = def.MaxLength
	}
	if f.MaxMagnitude <= 0 {
		f.MaxMagnitude = def.MaxMagnitude
	}
	if f.Precision <= 0 || f.Precision > MaxPrecision {
		f.Precision = def.Precision
	}
	if f.ExponentDigits < 0 || f.ExponentDigits > MaxExponentDigits {
		f.ExponentDigits = def.ExponentDigits
	}
	return f
}
