// ============================================================================
// mCalc - Terminal Calculator
// ============================================================================
//
// Package:     calculator
// Description: Closed set of arithmetic operators
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package calculator

// Operator is one of the four binary operators on the keypad.
// The zero value NoOperator means no operation is pending.
type Operator uint8

const (
	NoOperator Operator = iota
	Add
	Subtract
	Multiply
	Divide
)

// Operators lists the operators in keypad order (top to bottom).
var Operators = []Operator{Divide, Multiply, Subtract, Add}

// String returns the operator name used in logs
func (o Operator) String() string {
	switch o {
	case Add:
		return "add"
	case Subtract:
		return "subtract"
	case Multiply:
		return "multiply"
	case Divide:
		return "divide"
	default:
		return "none"
	}
}

// Symbol returns the keypad label of the operator
func (o Operator) Symbol() string {
	switch o {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "×"
	case Divide:
		return "÷"
	default:
		return ""
	}
}

// Valid reports whether o is one of the four arithmetic operators
func (o Operator) Valid() bool {
	return o >= Add && o <= Divide
}

// apply computes a op b. Division by zero saturates to 0.
func (o Operator) apply(a, b float64) float64 {
	switch o {
	case Add:
		return a + b
	case Subtract:
		return a - b
	case Multiply:
		return a * b
	case Divide:
		if b == 0 {
			return 0
		}
		return a / b
	default:
		return b
	}
}
