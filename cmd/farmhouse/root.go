// Root command for the farmhouse CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/CryptoCavemen/farmer-house/internal/paths"
	"github.com/CryptoCavemen/farmer-house/pkg/farm"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagVerbose   bool
	flagAs        string
)

// configDataDir holds the data_dir value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDataDir string

// cliConfig is the loaded viper configuration.
var cliConfig *configValues

var rootCmd = &cobra.Command{
	Use:     "farmhouse",
	Short:   "Farmhouse runs a tokenized farm economy on a local ledger",
	Version: farm.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		cliConfig = cfg
		configDataDir = cfg.dataDir
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: $(CWD)/.farmhouse)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.farmhouse-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagAs, "as", "", "wallet address signing the operation (default: configured authority)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(genesisCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(initModelCmd)
	rootCmd.AddCommand(mintCmd)
	rootCmd.AddCommand(mintCurrencyCmd)
	rootCmd.AddCommand(buyFieldCmd)
	rootCmd.AddCommand(buySeedCmd)
	rootCmd.AddCommand(plantCmd)
	rootCmd.AddCommand(waterCmd)
	rootCmd.AddCommand(harvestCmd)
	rootCmd.AddCommand(sellCmd)
	rootCmd.AddCommand(describeCmd)
}

// resolveDataDir returns the data directory path following the precedence:
// --data-dir flag > config.yaml data_dir > FARMHOUSE_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > FARMHOUSE_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
