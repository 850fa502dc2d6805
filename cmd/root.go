// Package cmd provides the command-line interface for robogen with
// configuration from multiple sources.
//
// Configuration precedence:
//  1. Command-line flags (--config, --log-level, etc.) - highest priority
//  2. Individual environment variables (ROBOGEN_VALIDATOR_MAX_LINE_LENGTH, etc.)
//  3. Configuration file (.robogen.yml) - lowest priority
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"robogen/internal/dialect"
	"robogen/internal/logging"
	"robogen/internal/tools"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "robogen",
	Short: "Generate and validate Robot Framework test code",
	Long: `Robogen generates ready-to-run Robot Framework source text (test suites,
page objects, keyword libraries) from structured parameters, and statically
validates Robot Framework text with actionable diagnostics.

Key Features:
  • Login test, page object, data-driven, and API integration generators
  • Keyword library generators (advanced and extended Selenium keywords)
  • Selector dialects for different application looks (appLocator, generic, bootstrap)
  • Line-oriented syntax validation with severity-tagged findings
  • MCP stdio transport exposing every generator as a callable tool

Quick Start:
  robogen generate login --url https://app.example.com --username bob --password secret
  robogen validate suite.robot
  robogen list
  robogen serve`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A dialect missing a role any template references is a
		// catalog-authoring defect; refuse to serve anything.
		if err := dialect.Verify(); err != nil {
			return err
		}

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .robogen.yml)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log-format", rootCmd.PersistentFlags().Lookup("log-format"))
}

// initConfig initializes the configuration system.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("ROBOGEN_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".robogen")
	}

	viper.SetDefault("validator.max_line_length", 120)
	viper.SetDefault("validator.max_payload", 100000)
	viper.SetDefault("generator.default_dialect", "")

	viper.SetEnvPrefix("ROBOGEN")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newLogger builds the process logger from configuration.
func newLogger() logging.Logger {
	return logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.ParseLevel(viper.GetString("log-level")),
		Format: viper.GetString("log-format"),
		Output: os.Stderr,
	})
}

// toolOptions builds the per-call options the tool table expects.
func toolOptions() tools.Options {
	return tools.Options{
		MaxLineLength: viper.GetInt("validator.max_line_length"),
		MaxPayload:    viper.GetInt("validator.max_payload"),
	}
}
