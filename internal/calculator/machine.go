// ============================================================================
// mCalc - Terminal Calculator
// ============================================================================
//
// Package:     calculator
// Description: Convenience wrapper holding a single calculator state
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package calculator

// TransitionFunc observes every applied event together with the state
// before and after it.
type TransitionFunc func(from State, e Event, to State)

// Machine holds one State for callers that prefer an imperative API.
// It is not safe for concurrent use; a calculator is driven by one event
// loop.
type Machine struct {
	state     State
	formatter Formatter
	observers []TransitionFunc
}

// MachineOption configures a Machine
type MachineOption func(*Machine)

// WithFormatter sets the formatter used by Display
func WithFormatter(f Formatter) MachineOption {
	return func(m *Machine) {
		m.formatter = f
	}
}

// WithObserver registers fn to be called after every Fire
func WithObserver(fn TransitionFunc) MachineOption {
	return func(m *Machine) {
		if fn != nil {
			m.observers = append(m.observers, fn)
		}
	}
}

// NewMachine returns a Machine in the initial state
func NewMachine(opts ...MachineOption) *Machine {
	m := &Machine{
		state:     NewState(),
		formatter: DefaultFormatter(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Current returns the current state
func (m *Machine) Current() State {
	return m.state
}

// Fire applies e and returns the new state
func (m *Machine) Fire(e Event) State {
	from := m.state
	m.state = Apply(from, e)
	for _, fn := range m.observers {
		fn(from, e, m.state)
	}
	return m.state
}

// Press parses label and fires the resulting event
func (m *Machine) Press(label string) (State, error) {
	e, err := ParseKey(label)
	if err != nil {
		return m.state, err
	}
	return m.Fire(e), nil
}

// Reset returns the machine to the initial state without notifying observers
func (m *Machine) Reset() {
	m.state = NewState()
}

// Display returns the formatted entry
func (m *Machine) Display() string {
	return m.state.Display(m.formatter)
}
