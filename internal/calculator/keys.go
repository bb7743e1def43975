// ============================================================================
// mCalc - Terminal Calculator
// ============================================================================
//
// Package:     calculator
// Description: Mapping of keypad labels to events
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package calculator

import (
	"errors"
	"fmt"
	"strings"
)

// UnknownKeyError is returned by ParseKey for labels that are not on the keypad
type UnknownKeyError struct {
	Label string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown key %q", e.Label)
}

// IsUnknownKeyError reports whether err is or wraps an UnknownKeyError
func IsUnknownKeyError(err error) bool {
	var e *UnknownKeyError
	return errors.As(err, &e)
}

// ParseKey maps a keypad label to its event. ASCII spellings are accepted
// for the operator symbols ("*", "x", "/", "±").
func ParseKey(label string) (Event, error) {
	key := strings.TrimSpace(label)

	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		return Digit(key[0]), nil
	}

	switch strings.ToUpper(key) {
	case ".", ",":
		return DecimalPoint(), nil
	case "+":
		return ChooseOperator(Add), nil
	case "-", "−":
		return ChooseOperator(Subtract), nil
	case "×", "*", "X":
		return ChooseOperator(Multiply), nil
	case "÷", "/":
		return ChooseOperator(Divide), nil
	case "=":
		return Equals(), nil
	case "AC", "C":
		return Clear(), nil
	case "+/-", "±":
		return ToggleSign(), nil
	case "%":
		return Percent(), nil
	}

	return Event{}, &UnknownKeyError{Label: label}
}

// ParseKeys maps a sequence of labels, stopping at the first unknown one
func ParseKeys(labels ...string) ([]Event, error) {
	events := make([]Event, 0, len(labels))
	for i, label := range labels {
		e, err := ParseKey(label)
		if err != nil {
			return nil, fmt.Errorf("key %d: %w", i+1, err)
		}
		events = append(events, e)
	}
	return events, nil
}
