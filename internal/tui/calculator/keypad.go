// ============================================================================
// mCalc - Terminal Calculator
// ============================================================================
//
// Package:     calculator
// Description: Keypad layout, focus navigation and mouse hit testing
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package calculator

import (
	calc "github.com/msto63/mCalc/internal/calculator"
)

// Columns and Rows of the keypad grid
const (
	Columns = 4
	Rows    = 5
)

// ButtonKind selects the color group of a button
type ButtonKind int

const (
	KindNumber ButtonKind = iota
	KindFunction
	KindOperator
)

// Button is one key on the keypad
type Button struct {
	Label string
	Kind  ButtonKind
	Event calc.Event
	Row   int
	Col   int
	Span  int
}

// width returns the rendered width in cells including spanned gaps
func (b Button) width() int {
	return b.Span*ButtonWidth + (b.Span-1)*ButtonGap
}

// Keypad is the fixed button layout of the calculator
var Keypad = []Button{
	{Label: "AC", Kind: KindFunction, Event: calc.Clear(), Row: 0, Col: 0, Span: 1},
	{Label: "+/-", Kind: KindFunction, Event: calc.ToggleSign(), Row: 0, Col: 1, Span: 1},
	{Label: "%", Kind: KindFunction, Event: calc.Percent(), Row: 0, Col: 2, Span: 1},
	{Label: "÷", Kind: KindOperator, Event: calc.ChooseOperator(calc.Divide), Row: 0, Col: 3, Span: 1},

	{Label: "7", Event: calc.Digit('7'), Row: 1, Col: 0, Span: 1},
	{Label: "8", Event: calc.Digit('8'), Row: 1, Col: 1, Span: 1},
	{Label: "9", Event: calc.Digit('9'), Row: 1, Col: 2, Span: 1},
	{Label: "×", Kind: KindOperator, Event: calc.ChooseOperator(calc.Multiply), Row: 1, Col: 3, Span: 1},

	{Label: "4", Event: calc.Digit('4'), Row: 2, Col: 0, Span: 1},
	{Label: "5", Event: calc.Digit('5'), Row: 2, Col: 1, Span: 1},
	{Label: "6", Event: calc.Digit('6'), Row: 2, Col: 2, Span: 1},
	{Label: "-", Kind: KindOperator, Event: calc.ChooseOperator(calc.Subtract), Row: 2, Col: 3, Span: 1},

	{Label: "1", Event: calc.Digit('1'), Row: 3, Col: 0, Span: 1},
	{Label: "2", Event: calc.Digit('2'), Row: 3, Col: 1, Span: 1},
	{Label: "3", Event: calc.Digit('3'), Row: 3, Col: 2, Span: 1},
	{Label: "+", Kind: KindOperator, Event: calc.ChooseOperator(calc.Add), Row: 3, Col: 3, Span: 1},

	{Label: "0", Event: calc.Digit('0'), Row: 4, Col: 0, Span: 2},
	{Label: ".", Event: calc.DecimalPoint(), Row: 4, Col: 2, Span: 1},
	{Label: "=", Kind: KindOperator, Event: calc.Equals(), Row: 4, Col: 3, Span: 1},
}

// grid maps every cell to the index of the button covering it
var grid = buildGrid(Keypad)

func buildGrid(buttons []Button) [Rows][Columns]int {
	var g [Rows][Columns]int
	for i, b := range buttons {
		for c := b.Col; c < b.Col+b.Span; c++ {
			g[b.Row][c] = i
		}
	}
	return g
}

// indexOf returns the index of the button with the given label, -1 if absent
func indexOf(label string) int {
	for i, b := range Keypad {
		if b.Label == label {
			return i
		}
	}
	return -1
}

// Direction of a focus move
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// move returns the button index reached from index in direction d.
// Moves off the edge of the keypad keep the focus where it is.
func move(index int, d Direction) int {
	b := Keypad[index]
	row, col := b.Row, b.Col

	switch d {
	case Up:
		row--
	case Down:
		row++
	case Left:
		col--
	case Right:
		col += b.Span
	}

	if row < 0 || row >= Rows || col < 0 || col >= Columns {
		return index
	}
	return grid[row][col]
}

// KeypadTop is the first terminal line of the keypad: frame padding,
// the bordered display (three lines) and one blank line.
const KeypadTop = PaddingY + 3 + 1

// buttonAt returns the index of the button rendered at terminal cell (x, y)
// or -1 when the cell is outside every button.
func buttonAt(x, y int) int {
	x -= PaddingX
	y -= KeypadTop
	if x < 0 || y < 0 {
		return -1
	}

	for i, b := range Keypad {
		left := b.Col * (ButtonWidth + ButtonGap)
		top := b.Row * (ButtonHeight + RowGap)
		if x >= left && x < left+b.width() && y >= top && y < top+ButtonHeight {
			return i
		}
	}
	return -1
}
