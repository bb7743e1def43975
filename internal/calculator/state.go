// ============================================================================
// mCalc - Terminal Calculator
// ============================================================================
//
// Package:     calculator
// Description: Calculator state and the pure transition function
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package calculator

import "strings"

// State is the complete calculator state. It is a plain value: Apply never
// modifies its argument and returns the successor state instead.
type State struct {
	// Entry is the number being typed or the last result
	Entry string
	// Previous is the left operand captured when an operator was chosen.
	// It is meaningful only while HasPrevious is true.
	Previous    string
	HasPrevious bool
	// Operator is the pending operator, NoOperator when idle
	Operator Operator
	// ResetNext makes the next digit or decimal point start a new entry
	ResetNext bool
}

// NewState returns the state of a freshly mounted or cleared calculator
func NewState() State {
	return State{Entry: "0"}
}

// Value returns the numeric value of the entry (NaN if unparseable)
func (s State) Value() float64 {
	return ParseNumber(s.Entry)
}

// IsActive reports whether the operator key op should be highlighted:
// op is pending and no second operand has been typed yet.
func (s State) IsActive(op Operator) bool {
	return op.Valid() && s.Operator == op && s.ResetNext
}

// Display renders the entry with f
func (s State) Display(f Formatter) string {
	return f.Format(s.Entry)
}

// Apply returns the state that results from e. Unknown events leave the
// state unchanged.
func Apply(s State, e Event) State {
	switch e.Kind {
	case KindDigit:
		return s.digit(e.Digit)
	case KindDecimalPoint:
		return s.decimalPoint()
	case KindOperator:
		return s.chooseOperator(e.Operator)
	case KindEquals:
		return s.equals()
	case KindClear:
		return NewState()
	case KindToggleSign:
		s.Entry = FormatNumber(s.Value() * -1)
		return s
	case KindPercent:
		s.Entry = FormatNumber(s.Value() / 100)
		return s
	default:
		return s
	}
}

// Replay applies events in order starting from s
func Replay(s State, events ...Event) State {
	for _, e := range events {
		s = Apply(s, e)
	}
	return s
}

func (s State) digit(d byte) State {
	if d < '0' || d > '9' {
		return s
	}
	switch {
	case s.ResetNext:
		s.Entry = string(d)
		s.ResetNext = false
	case s.Entry == "0":
		s.Entry = string(d)
	default:
		s.Entry += string(d)
	}
	return s
}

func (s State) decimalPoint() State {
	switch {
	case s.ResetNext:
		s.Entry = "0."
		s.ResetNext = false
	case strings.Contains(s.Entry, "."):
		// at most one decimal point per entry
	default:
		s.Entry += "."
	}
	return s
}

func (s State) chooseOperator(op Operator) State {
	if !op.Valid() {
		return s
	}
	// A second operand was typed after the pending operator: fold it first.
	if s.Operator != NoOperator && !s.ResetNext {
		s = s.equals()
	}
	s.Previous = s.Entry
	s.HasPrevious = true
	s.Operator = op
	s.ResetNext = true
	return s
}

func (s State) equals() State {
	if s.Operator == NoOperator || !s.HasPrevious {
		return s
	}

	result := s.Operator.apply(ParseNumber(s.Previous), s.Value())

	s.Entry = FormatNumber(result)
	s.Previous = ""
	s.HasPrevious = false
	s.Operator = NoOperator
	s.ResetNext = true
	return s
}
