// ============================================================================
// mCalc - Terminal Calculator
// ============================================================================
//
// Package:     cmd
// Description: Headless key presses against the calculator core
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/mCalc/internal/calculator"
)

var (
	pressRaw   bool
	pressTrace bool
)

var pressCmd = &cobra.Command{
	Use:   "press KEY...",
	Short: "Apply keys and print the display",
	Long: `Apply keypad keys to a cleared calculator and print the display.

Keys are the keypad labels: 0-9 . + - × ÷ = AC +/- %
ASCII aliases are accepted: * and x for ×, / for ÷, C for AC, , for .

Examples:
  mcalc press 3 + 4 '*' 5 =      # 35
  mcalc press 1 2 3 4 5 6 7 8 9 0 # 1.23e+9
  mcalc press --raw 1 0 / 3 =     # 3.3333333333333335`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPress,
}

func init() {
	rootCmd.AddCommand(pressCmd)

	pressCmd.Flags().BoolVar(&pressRaw, "raw", false, "print the unformatted entry")
	pressCmd.Flags().BoolVar(&pressTrace, "trace", false, "print the state after every key")
}

func runPress(cmd *cobra.Command, args []string) error {
	events, err := calculator.ParseKeys(args...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	logger := cliLogger(cmd, "press")
	formatter := appConfig.Formatter()

	m := calculator.NewMachine(
		calculator.WithFormatter(formatter),
		calculator.WithObserver(func(from calculator.State, e calculator.Event, to calculator.State) {
			logger.Debug("Event applied",
				"kind", e.Name(),
				"event", e.String(),
				"from", from.Entry,
				"entry", to.Entry,
				"operator", to.Operator.String(),
				"reset_next", to.ResetNext,
			)
			if pressTrace {
				writeTrace(out, e, to, formatter)
			}
		}),
	)

	for _, e := range events {
		m.Fire(e)
	}

	if pressRaw {
		fmt.Fprintln(out, m.Current().Entry)
	} else {
		fmt.Fprintln(out, m.Display())
	}
	return nil
}

// writeTrace prints one line per applied event
func writeTrace(w io.Writer, e calculator.Event, s calculator.State, f calculator.Formatter) {
	previous := "-"
	if s.HasPrevious {
		previous = s.Previous
	}
	fmt.Fprintf(w, "%-24s entry=%s display=%s previous=%s operator=%s reset_next=%t\n",
		e.String(), s.Entry, s.Display(f), previous, s.Operator, s.ResetNext)
}
