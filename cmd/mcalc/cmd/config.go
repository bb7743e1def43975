package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/mCalc/pkg/core/config"
)

var configFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration after defaults and MCALC_* environment
overrides have been applied. The output is a valid config file.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configuration and report where it was loaded from",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// loadConfig has already validated it
		fmt.Fprintf(cmd.OutOrStdout(), "configuration OK (%s)\n", configSource(appConfig))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)

	configShowCmd.Flags().StringVarP(&configFormat, "format", "f", "toml", "output format (toml, yaml)")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	format, err := config.ParseFormat(configFormat)
	if err != nil {
		return err
	}

	data, err := appConfig.Encode(format)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", configSource(appConfig))
	_, err = out.Write(data)
	return err
}

func configSource(cfg *config.Config) string {
	if cfg.Path() == "" {
		return "built-in defaults"
	}
	return cfg.Path()
}
