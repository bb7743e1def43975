package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is a configuration file format
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	default:
		return "toml"
	}
}

// FormatFromPath detects the format from the file extension (default TOML)
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// ParseFormat converts a format name as given on the command line
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "toml", "":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatTOML, fmt.Errorf("unknown config format %q", name)
	}
}
