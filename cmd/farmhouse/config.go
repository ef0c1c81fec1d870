// Config loading for the farmhouse CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyBackend   = "backend"
	cfgKeyDataDir   = "data_dir"
	cfgKeyProgram   = "program_id"
	cfgKeyAuthority = "authority"
	cfgKeyModelName = "model_name"

	defaultBackend = "sqlite"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Farmhouse CLI configuration

# Backend selection
backend: sqlite

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# Program identity the farm address is derived from. Generated by
# 'farmhouse genesis' if left empty.
# program_id:

# Authority wallet address. Generated by 'farmhouse genesis' if left empty.
# authority:

# Constraint model name escrow vaults are bound to.
# model_name: farmer-house
`

// configValues are the settings subcommands read after PersistentPreRunE.
type configValues struct {
	backend   string
	dataDir   string
	program   string
	authority string
	modelName string
}

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on first
// run. A missing config.yaml is not an error.
func loadConfig(configDir string) (*configValues, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, defaultBackend)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return &configValues{
		backend:   v.GetString(cfgKeyBackend),
		dataDir:   v.GetString(cfgKeyDataDir),
		program:   v.GetString(cfgKeyProgram),
		authority: v.GetString(cfgKeyAuthority),
		modelName: v.GetString(cfgKeyModelName),
	}, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

// writeIdentityConfig rewrites config.yaml with the generated program and
// authority identities so later invocations pick them up.
func writeIdentityConfig(configDir, program, authority string) error {
	content := fmt.Sprintf(`# Farmhouse CLI configuration

backend: sqlite

# Generated by 'farmhouse genesis'.
program_id: %s
authority: %s
`, program, authority)

	path := filepath.Join(configDir, configFileExt)
	return os.WriteFile(path, []byte(content), 0o644)
}
