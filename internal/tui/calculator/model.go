// ============================================================================
// mCalc - Terminal Calculator
// ============================================================================
//
// Package:     calculator
// Description: Main Bubbletea model for the calculator keypad
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package calculator

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	calc "github.com/msto63/mCalc/internal/calculator"
	"github.com/msto63/mCalc/pkg/core/config"
	"github.com/msto63/mCalc/pkg/core/logging"
)

// Model is the Bubbletea model of the calculator widget
type Model struct {
	// Calculator
	state     calc.State
	formatter calc.Formatter

	// Presentation
	theme Theme
	keys  keyMap
	help  help.Model
	focus int
	width int

	// Last reload error, shown until the next successful reload
	err error

	logger *logging.Logger
}

// New creates a calculator model in the initial state
func New(cfg *config.Config, logger *logging.Logger) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logging.Nop()
	}

	m := Model{
		state:  calc.NewState(),
		keys:   defaultKeyMap(),
		help:   help.New(),
		focus:  indexOf("5"),
		logger: logger,
	}
	m.applyConfig(cfg)
	return m
}

// State returns the calculator state
func (m Model) State() calc.State {
	return m.state
}

// Display returns the formatted entry shown on the display
func (m Model) Display() string {
	return m.state.Display(m.formatter)
}

// Focused returns the label of the focused button
func (m Model) Focused() string {
	return Keypad[m.focus].Label
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if idx := buttonAt(msg.X, msg.Y); idx >= 0 {
			m.focus = idx
			m.press(idx)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case configReloadedMsg:
		m.applyConfig(msg.cfg)
		m.err = nil
		m.logger.Info("Configuration reloaded", "path", msg.cfg.Path())

	case configErrorMsg:
		m.err = msg.err
		m.logger.Warn("Configuration reload failed", "error", msg.err)
	}

	return m, nil
}

// handleKeyPress handles keyboard navigation
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		m.focus = move(m.focus, Up)
	case key.Matches(msg, m.keys.Down):
		m.focus = move(m.focus, Down)
	case key.Matches(msg, m.keys.Left):
		m.focus = move(m.focus, Left)
	case key.Matches(msg, m.keys.Right):
		m.focus = move(m.focus, Right)
	case key.Matches(msg, m.keys.Press):
		m.press(m.focus)
	}
	return m, nil
}

// press applies the event of the button at index
func (m *Model) press(index int) {
	b := Keypad[index]
	from := m.state
	m.state = calc.Apply(from, b.Event)

	m.logger.Debug("Key pressed",
		"key", b.Label,
		"kind", b.Event.Name(),
		"event", b.Event.String(),
		"from", from.Entry,
		"entry", m.state.Entry,
		"display", m.Display(),
		"operator", m.state.Operator.String(),
		"reset_next", m.state.ResetNext,
	)
}

// applyConfig switches theme and formatter, keeping the calculator state
func (m *Model) applyConfig(cfg *config.Config) {
	m.theme = NewTheme(cfg.Theme)
	m.formatter = cfg.Formatter()
}

// View renders the UI
func (m Model) View() string {
	display := m.theme.Display.Render(fitDisplay(m.Display(), GridWidth-4))

	body := lipgloss.JoinVertical(lipgloss.Left,
		display,
		"",
		m.renderKeypad(),
		"",
		m.renderStatus(),
	)

	return m.theme.Frame.Render(body)
}

// renderKeypad renders the button grid row by row
func (m Model) renderKeypad() string {
	rows := make([]string, 0, Rows*(1+RowGap))
	for r := 0; r < Rows; r++ {
		if r > 0 {
			for i := 0; i < RowGap; i++ {
				rows = append(rows, "")
			}
		}
		rows = append(rows, m.renderRow(r))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderRow(row int) string {
	gap := strings.Repeat(" ", ButtonGap)

	var parts []string
	for i, b := range Keypad {
		if b.Row != row {
			continue
		}
		if len(parts) > 0 {
			parts = append(parts, gap)
		}
		active := b.Event.Kind == calc.KindOperator && m.state.IsActive(b.Event.Operator)
		parts = append(parts, m.theme.buttonStyle(b, active, i == m.focus).Render(b.Label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// renderStatus renders the reload error or the help line
func (m Model) renderStatus() string {
	if m.err != nil {
		return ErrorStyle.Render(truncate("config: "+m.err.Error(), GridWidth))
	}
	return HelpStyle.Render(m.help.View(m.keys))
}

// fitDisplay keeps the rightmost digits of text when it is wider than width
func fitDisplay(text string, width int) string {
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	return "…" + string(runes[len(runes)-width+1:])
}

// truncate truncates a string to max runes
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "~"
}

// Run starts the calculator TUI. With cfg.TUI.Watch set, changes to the
// config file are applied while the program runs.
func Run(cfg *config.Config, logger *logging.Logger) error {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logging.Nop()
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.TUI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(New(cfg, logger), opts...)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.TUI.Watch {
		if cfg.Path() == "" {
			logger.Warn("Config watching requested but no config file is loaded")
		} else {
			w, err := config.Watch(ctx, cfg.Path(), func(c *config.Config, err error) {
				if err != nil {
					p.Send(configErrorMsg{err: err})
					return
				}
				p.Send(configReloadedMsg{cfg: c})
			})
			if err != nil {
				logger.Warn("Config watcher not started", "error", err)
			} else {
				defer w.Close()
				logger.Info("Watching config file", "path", cfg.Path())
			}
		}
	}

	logger.Info("Calculator started",
		"mouse", cfg.TUI.Mouse,
		"watch", cfg.TUI.Watch,
		"log_level", logger.Level().String(),
	)
	_, err := p.Run()
	logger.Info("Calculator stopped")
	return err
}
