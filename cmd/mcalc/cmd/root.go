package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/mCalc/pkg/core/config"
	"github.com/msto63/mCalc/pkg/core/logging"
)

var (
	cfgFile string
	verbose bool

	// effective configuration, loaded before every command runs
	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "mcalc",
	Short: "mCalc - Terminal calculator",
	Long: `mCalc is a four-function calculator for the terminal.

It mirrors a pocket calculator: a display above a 4x5 keypad with
AC, +/-, %, the four operators, digits, the decimal point and equals.
Operations chain left to right, so 3 + 4 × 5 = shows 35.

Commands:
  tui      - interactive keypad (mouse and keyboard)
  press    - apply keys headlessly and print the display
  config   - inspect the effective configuration
  version  - build information`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./configs/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
}

// loadConfig resolves, overrides and validates the configuration
func loadConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromEnv(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if verbose {
		cfg.General.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	appConfig = cfg
	return nil
}

// cliLogger logs to stderr. Only warnings and errors are shown unless
// --verbose is set.
func cliLogger(cmd *cobra.Command, service string) *logging.Logger {
	lc := appConfig.LoggerConfig(service)
	lc.Output = cmd.ErrOrStderr()
	if !verbose {
		lc.Level = "warn"
	}
	return logging.NewLogger(lc)
}
