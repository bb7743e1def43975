// ============================================================================
// mCalc - Terminal Calculator
// ============================================================================
//
// Package:     calculator
// Description: Input events emitted by the keypad
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package calculator

import "fmt"

// EventKind identifies one of the seven keypad events
type EventKind uint8

const (
	KindDigit EventKind = iota + 1
	KindDecimalPoint
	KindOperator
	KindEquals
	KindClear
	KindToggleSign
	KindPercent
)

// String returns the event kind name
func (k EventKind) String() string {
	switch k {
	case KindDigit:
		return "digit"
	case KindDecimalPoint:
		return "decimal_point"
	case KindOperator:
		return "choose_operator"
	case KindEquals:
		return "equals"
	case KindClear:
		return "clear"
	case KindToggleSign:
		return "toggle_sign"
	case KindPercent:
		return "percent"
	default:
		return "unknown"
	}
}

// Event is a single key press. Use the constructors below; the zero Event
// is ignored by Apply.
type Event struct {
	Kind     EventKind
	Digit    byte     // '0'..'9' for KindDigit
	Operator Operator // for KindOperator
}

// Digit returns the event for a digit key. Bytes outside '0'..'9' produce
// the zero Event.
func Digit(d byte) Event {
	if d < '0' || d > '9' {
		return Event{}
	}
	return Event{Kind: KindDigit, Digit: d}
}

func DecimalPoint() Event { return Event{Kind: KindDecimalPoint} }

// ChooseOperator returns the event for an operator key. Invalid operators
// produce the zero Event.
func ChooseOperator(op Operator) Event {
	if !op.Valid() {
		return Event{}
	}
	return Event{Kind: KindOperator, Operator: op}
}

func Equals() Event     { return Event{Kind: KindEquals} }
func Clear() Event      { return Event{Kind: KindClear} }
func ToggleSign() Event { return Event{Kind: KindToggleSign} }
func Percent() Event    { return Event{Kind: KindPercent} }

// Name returns the kind of the event without its argument, e.g. "digit"
func (e Event) Name() string {
	return e.Kind.String()
}

// Label returns the keypad label that produces the event
func (e Event) Label() string {
	switch e.Kind {
	case KindDigit:
		return string(e.Digit)
	case KindDecimalPoint:
		return "."
	case KindOperator:
		return e.Operator.Symbol()
	case KindEquals:
		return "="
	case KindClear:
		return "AC"
	case KindToggleSign:
		return "+/-"
	case KindPercent:
		return "%"
	default:
		return ""
	}
}

func (e Event) String() string {
	switch e.Kind {
	case KindDigit:
		return fmt.Sprintf("digit(%c)", e.Digit)
	case KindOperator:
		return fmt.Sprintf("choose_operator(%s)", e.Operator)
	default:
		return e.Kind.String()
	}
}
