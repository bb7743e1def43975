package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/mCalc/internal/calculator"
)

const sampleTOML = `
[general]
name = "Test Calc"
log_level = "debug"
log_format = "text"
log_file = "$MCALC_TEST_DIR/mcalc.log"

[display]
max_length = 12
max_magnitude = 999999999999.0

[theme]
operator_bg = "#00FF00"

[tui]
mouse = false
`

const sampleYAML = `
general:
  log_level: warn
display:
  precision: 4
tui:
  watch: true
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "mCalc", cfg.General.Name)
	assert.Equal(t, "development", cfg.General.Environment)
	assert.Equal(t, "info", cfg.General.LogLevel)
	assert.Equal(t, "json", cfg.General.LogFormat)
	assert.Equal(t, calculator.DefaultFormatter(), cfg.Formatter())
	assert.Equal(t, "#FF9500", cfg.Theme.OperatorBg)
	assert.Equal(t, "#333333", cfg.Theme.NumberBg)
	assert.True(t, cfg.TUI.Mouse)
	assert.False(t, cfg.TUI.Watch)
	assert.Empty(t, cfg.Path())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_TOML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MCALC_TEST_DIR", dir)
	path := writeFile(t, dir, "config.toml", sampleTOML)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.Path())
	assert.Equal(t, "Test Calc", cfg.General.Name)
	assert.Equal(t, "debug", cfg.General.LogLevel)
	assert.Equal(t, "text", cfg.General.LogFormat)
	assert.Equal(t, filepath.Join(dir, "mcalc.log"), cfg.General.LogFile)
	assert.Equal(t, 12, cfg.Display.MaxLength)
	assert.Equal(t, 999999999999.0, cfg.Display.MaxMagnitude)
	assert.Equal(t, calculator.DefaultPrecision, cfg.Display.Precision)
	assert.Equal(t, "#00FF00", cfg.Theme.OperatorBg)
	assert.Equal(t, "#A5A5A5", cfg.Theme.FunctionBg)
	assert.False(t, cfg.TUI.Mouse)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", sampleYAML)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.General.LogLevel)
	assert.Equal(t, 4, cfg.Display.Precision)
	assert.Equal(t, calculator.DefaultMaxLength, cfg.Display.MaxLength)
	assert.True(t, cfg.TUI.Mouse)
	assert.True(t, cfg.TUI.Watch)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestLoad_Malformed(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.toml", "[general\nname = ")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoadFromEnv(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.yml", sampleYAML)

	t.Setenv("MCALC_CONFIG", path)
	t.Setenv("MCALC_LOG_LEVEL", "error")
	t.Setenv("MCALC_MAX_LENGTH", "15")
	t.Setenv("MCALC_MOUSE", "false")

	cfg, err := LoadFromEnv("")
	require.NoError(t, err)

	assert.Equal(t, path, cfg.Path())
	assert.Equal(t, "error", cfg.General.LogLevel)
	assert.Equal(t, 15, cfg.Display.MaxLength)
	assert.Equal(t, 4, cfg.Display.Precision)
	assert.False(t, cfg.TUI.Mouse)
}

func TestLoadFromEnv_ExplicitPathWins(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MCALC_TEST_DIR", dir)
	explicit := writeFile(t, dir, "explicit.toml", sampleTOML)
	t.Setenv("MCALC_CONFIG", writeFile(t, dir, "env.yaml", sampleYAML))

	cfg, err := LoadFromEnv(explicit)
	require.NoError(t, err)
	assert.Equal(t, "Test Calc", cfg.General.Name)
}

func TestLoadFromEnv_InvalidEnv(t *testing.T) {
	t.Setenv("MCALC_CONFIG", writeFile(t, t.TempDir(), "config.yaml", sampleYAML))
	t.Setenv("MCALC_MAX_LENGTH", "many")

	_, err := LoadFromEnv("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to apply environment")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		problem string
	}{
		{"log level", func(c *Config) { c.General.LogLevel = "loud" }, "general.log_level"},
		{"log format", func(c *Config) { c.General.LogFormat = "xml" }, "general.log_format"},
		{"max length", func(c *Config) { c.Display.MaxLength = -1 }, "display.max_length"},
		{"max magnitude", func(c *Config) { c.Display.MaxMagnitude = -5 }, "display.max_magnitude"},
		{"precision", func(c *Config) { c.Display.Precision = 30 }, "display.precision"},
		{"exponent digits", func(c *Config) { c.Display.ExponentDigits = intPtr(-2) }, "display.exponent_digits"},
		{"too many exponent digits", func(c *Config) { c.Display.ExponentDigits = intPtr(21) }, "display.exponent_digits"},
		{"color", func(c *Config) { c.Theme.Focus = "cyan" }, "theme.focus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
			assert.Contains(t, err.Error(), tt.problem)
		})
	}
}

func intPtr(v int) *int { return &v }

func TestExponentDigits_ZeroIsKept(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.toml", "[display]\nexponent_digits = 0\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Display.ExponentDigits)
	assert.Equal(t, 0, *cfg.Display.ExponentDigits)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "1e+9", cfg.Formatter().Format("1234567890"))

	// unset falls back to the default
	cfg, err = Parse([]byte("[display]\nprecision = 6\n"), FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, calculator.DefaultExponentDigits, *cfg.Display.ExponentDigits)
	assert.Equal(t, "1.23e+9", cfg.Formatter().Format("1234567890"))
}

func TestExponentDigits_ZeroFromEnv(t *testing.T) {
	t.Setenv("MCALC_CONFIG", writeFile(t, t.TempDir(), "config.yaml", sampleYAML))
	t.Setenv("MCALC_EXPONENT_DIGITS", "0")

	cfg, err := LoadFromEnv("")
	require.NoError(t, err)
	assert.Equal(t, 0, *cfg.Display.ExponentDigits)
	assert.NoError(t, cfg.Validate())
}

func TestEncode_RoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Display.MaxLength = 11
	cfg.Theme.Focus = "#123456"

	for _, format := range []Format{FormatTOML, FormatYAML} {
		t.Run(format.String(), func(t *testing.T) {
			data, err := cfg.Encode(format)
			require.NoError(t, err)

			decoded, err := Parse(data, format)
			require.NoError(t, err)
			assert.Equal(t, cfg.General, decoded.General)
			assert.Equal(t, cfg.Display, decoded.Display)
			assert.Equal(t, cfg.Theme, decoded.Theme)
			assert.Equal(t, cfg.TUI, decoded.TUI)
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YAML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("ini")
	assert.Error(t, err)

	assert.Equal(t, FormatYAML, FormatFromPath("a/b.yml"))
	assert.Equal(t, FormatTOML, FormatFromPath("a/b.conf"))
}

func TestLoggerConfig(t *testing.T) {
	cfg := Default()
	cfg.General.LogLevel = "debug"
	cfg.General.LogFormat = "text"

	lc := cfg.LoggerConfig("tui")
	assert.Equal(t, "tui", lc.ServiceName)
	assert.Equal(t, "debug", lc.Level)
	assert.Equal(t, "text", lc.Format)
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", sampleYAML)

	changes := make(chan *Config, 4)
	errs := make(chan error, 4)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, err := WatchWithDebounce(ctx, path, 50*time.Millisecond, func(cfg *Config, err error) {
		if err != nil {
			errs <- err
			return
		}
		changes <- cfg
	})
	require.NoError(t, err)
	defer w.Close()

	// unrelated files in the same directory are ignored
	writeFile(t, dir, "other.yaml", "general:\n  log_level: error\n")
	writeFile(t, dir, "config.yaml", "display:\n  precision: 8\n")

	select {
	case cfg := <-changes:
		assert.Equal(t, 8, cfg.Display.Precision)
	case err := <-errs:
		t.Fatalf("unexpected reload error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for config reload")
	}
}

func TestWatch_InvalidConfigReportsError(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", sampleTOML)

	errs := make(chan error, 4)
	w, err := WatchWithDebounce(context.Background(), path, 50*time.Millisecond, func(cfg *Config, err error) {
		if err != nil {
			errs <- err
		}
	})
	require.NoError(t, err)
	defer w.Close()

	writeFile(t, dir, "config.toml", "[display]\nprecision = 99\n")

	select {
	case err := <-errs:
		assert.True(t, IsValidationError(err))
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload error")
	}
}

func TestWatch_RequiresArguments(t *testing.T) {
	_, err := Watch(context.Background(), "", func(*Config, error) {})
	assert.Error(t, err)

	_, err = Watch(context.Background(), "config.toml", nil)
	assert.Error(t, err)
}
