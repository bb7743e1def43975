// ============================================================================
// mCalc - Terminal Calculator
// ============================================================================
//
// Package:     calculator
// Description: Calculator state machine and display formatter
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package calculator implements the core of the mCalc keypad calculator.
//
// The calculator state is a small immutable value (State) with four fields:
// the current entry, the previous operand, the pending operator and the
// reset-on-next-input flag. Every key press is an Event and Apply computes
// the next State without touching the old one:
//
//	s := calculator.NewState()
//	s = calculator.Apply(s, calculator.Digit('3'))
//	s = calculator.Apply(s, calculator.ChooseOperator(calculator.Add))
//	s = calculator.Apply(s, calculator.Digit('4'))
//	s = calculator.Apply(s, calculator.Equals())
//	fmt.Println(calculator.Format(s.Entry)) // 7
//
// Evaluation is strictly left to right. Choosing a new operator while one is
// pending and a second operand has been typed folds the pending operation
// first, so "3 + 4 × 5 =" yields 35.
//
// No operation returns an error. Division by zero yields 0 and entries that
// do not parse as a number are displayed as "0" by the Formatter.
package calculator
