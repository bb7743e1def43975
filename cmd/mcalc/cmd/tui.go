// ============================================================================
// mCalc - Terminal Calculator
// ============================================================================
//
// Package:     cmd
// Description: CLI command for the interactive calculator keypad
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	calctui "github.com/msto63/mCalc/internal/tui/calculator"
	"github.com/msto63/mCalc/pkg/core/logging"
)

var (
	tuiWatch   bool
	tuiNoMouse bool
)

var tuiCmd = &cobra.Command{
	Use:     "tui",
	Aliases: []string{"ui", "keypad"},
	Short:   "Start the interactive calculator",
	Long: `Start the calculator keypad in the terminal.

Click the keys with the mouse or move the focus with the keyboard.
Logs are written to general.log_file; without a log file they are
discarded because the terminal belongs to the UI.

Keys:
  ←↑↓→ / hjkl   Move focus
  Enter / Space Press the focused key
  ?             Toggle help
  q / Ctrl+C    Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	tuiCmd.Flags().BoolVar(&tuiWatch, "watch", false,
		"reload theme and display limits when the config file changes")
	tuiCmd.Flags().BoolVar(&tuiNoMouse, "no-mouse", false,
		"disable mouse support")
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg := appConfig
	if tuiWatch {
		cfg.TUI.Watch = true
	}
	if tuiNoMouse {
		cfg.TUI.Mouse = false
	}

	out, err := logging.OpenLogFile(cfg.General.LogFile)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer out.Close()

	lc := cfg.LoggerConfig("tui")
	lc.Output = out
	logger := logging.NewLogger(lc).With("session_id", uuid.NewString())

	if err := calctui.Run(cfg, logger); err != nil {
		logger.Error("TUI failed", "error", err)
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
