package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/streetaddress/internal/config"
	"github.com/streetaddress/streetaddress"
)

// app carries state shared by every subcommand.
type app struct {
	configFile string
	debug      bool

	settings  *config.Settings
	parser    *streetaddress.Parser
	formatter *streetaddress.Formatter
}

func main() {
	// Load environment configuration
	config.LoadEnv()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "streetaddress",
		Short: "US street address parser and formatter",
		Long: `Parse free-form US street addresses into house number, street, suite and
leftover text, and normalize ordinals, directions and street types.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "YAML settings file")
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Print debug output to stderr")

	rootCmd.AddCommand(createParseCmd(a))
	rootCmd.AddCommand(createFormatCmd(a))
	rootCmd.AddCommand(createOrdinalCmd(a))
	rootCmd.AddCommand(createBatchCmd(a))
	rootCmd.AddCommand(createCompareCmd(a))
	rootCmd.AddCommand(createTablesCmd(a))

	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	settings, err := config.LoadSettings(a.configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cmd.Flags().Changed("debug") {
		settings.Debug = a.debug
	}

	a.settings = settings
	a.parser = streetaddress.NewParser()
	a.formatter = streetaddress.NewFormatter()
	return nil
}

// boolSetting returns the flag value when it was given, otherwise the configured value.
func boolSetting(cmd *cobra.Command, name string, flagValue, configured bool) bool {
	if cmd.Flags().Changed(name) {
		return flagValue
	}
	return configured
}
