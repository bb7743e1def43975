// ============================================================================
// mCalc - Terminal Calculator
// ============================================================================
//
// Package:     version
// Description: Central version management for the calculator components
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
	"strings"
)

// Version constants for the mCalc components
const (
	// Application version
	App = "1.0.0"

	// Component versions
	Core   = "1.0.0"
	TUI    = "1.0.0"
	Config = "1.0.0"
)

// Build metadata, set via -ldflags "-X github.com/msto63/mCalc/pkg/core/version.GitCommit=..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "core", "calculator":
		return Core
	case "tui":
		return TUI
	case "config":
		return Config
	default:
		return App
	}
}

// Info describes the running binary
type Info struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"git_commit" yaml:"git_commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`

	// Components maps component names to their versions
	Components map[string]string `json:"components" yaml:"components"`
}

// components lists the names reported by Get
var components = []string{"core", "tui", "config"}

// Get returns the build information of the running binary
func Get() Info {
	info := Info{
		Version:   App,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}

	info.Components = make(map[string]string, len(components))
	for _, name := range components {
		info.Components[name] = ComponentVersion(name)
	}
	return info
}

// String renders the multi-line version banner
func (i Info) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "mCalc v%s\n", i.Version)
	fmt.Fprintf(&b, "  Git Commit: %s\n", i.GitCommit)
	fmt.Fprintf(&b, "  Build Date: %s\n", i.BuildDate)
	fmt.Fprintf(&b, "  Go Version: %s\n", i.GoVersion)
	fmt.Fprintf(&b, "  OS/Arch:    %s\n", i.Platform)
	for _, name := range components {
		if v, ok := i.Components[name]; ok {
			fmt.Fprintf(&b, "  %-11s %s\n", name+":", v)
		}
	}
	return b.String()
}
