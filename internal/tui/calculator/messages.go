// ============================================================================
// mCalc - Terminal Calculator
// ============================================================================
//
// Package:     calculator
// Description: Message types delivered into the calculator event loop
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package calculator

import "github.com/msto63/mCalc/pkg/core/config"

// configReloadedMsg is sent by the config watcher after a successful reload
type configReloadedMsg struct {
	cfg *config.Config
}

// configErrorMsg is sent when a reload fails; the old config stays active
type configErrorMsg struct {
	err error
}
