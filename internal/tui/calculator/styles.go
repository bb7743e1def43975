// ============================================================================
// mCalc - Terminal Calculator
// ============================================================================
//
// Package:     calculator
// Description: Styles for the calculator keypad TUI
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package calculator

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/mCalc/pkg/core/config"
)

// Keypad geometry (terminal cells)
const (
	ButtonWidth  = 7
	ButtonHeight = 3
	ButtonGap    = 1
	RowGap       = 1

	// frame padding
	PaddingX = 2
	PaddingY = 1

	GridWidth = Columns*ButtonWidth + (Columns-1)*ButtonGap
)

// Help styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8"))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true)
)

// Theme holds the rendered styles of one color configuration
type Theme struct {
	Frame          lipgloss.Style
	Display        lipgloss.Style
	Number         lipgloss.Style
	Function       lipgloss.Style
	Operator       lipgloss.Style
	ActiveOperator lipgloss.Style
	focus          lipgloss.Color
}

// NewTheme builds the keypad styles from the theme configuration
func NewTheme(tc config.ThemeConfig) Theme {
	button := lipgloss.NewStyle().
		Width(ButtonWidth).
		Height(ButtonHeight).
		Align(lipgloss.Center, lipgloss.Center)

	return Theme{
		Frame: lipgloss.NewStyle().
			Background(lipgloss.Color(tc.Background)).
			Padding(PaddingY, PaddingX),

		Display: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(tc.FunctionBg)).
			Foreground(lipgloss.Color(tc.DisplayFg)).
			Bold(true).
			Width(GridWidth-2).
			Padding(0, 1).
			Align(lipgloss.Right),

		Number: button.
			Background(lipgloss.Color(tc.NumberBg)).
			Foreground(lipgloss.Color(tc.NumberFg)),

		Function: button.
			Background(lipgloss.Color(tc.FunctionBg)).
			Foreground(lipgloss.Color(tc.FunctionFg)),

		Operator: button.
			Background(lipgloss.Color(tc.OperatorBg)).
			Foreground(lipgloss.Color(tc.OperatorFg)).
			Bold(true),

		ActiveOperator: button.
			Background(lipgloss.Color(tc.ActiveOperatorBg)).
			Foreground(lipgloss.Color(tc.ActiveOperatorFg)).
			Bold(true),

		focus: lipgloss.Color(tc.Focus),
	}
}

// buttonStyle returns the style of b in the given state
func (t Theme) buttonStyle(b Button, active, focused bool) lipgloss.Style {
	var style lipgloss.Style
	switch {
	case b.Kind == KindOperator && active:
		style = t.ActiveOperator
	case b.Kind == KindOperator:
		style = t.Operator
	case b.Kind == KindFunction:
		style = t.Function
	default:
		style = t.Number
	}

	style = style.Width(b.width())
	if focused {
		style = style.Underline(true).Bold(true).Foreground(t.focus)
	}
	return style
}
