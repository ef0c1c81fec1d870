// Shared helpers for farmhouse CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/CryptoCavemen/farmer-house/internal/sqlite"
	"github.com/CryptoCavemen/farmer-house/pkg/farm"
	"github.com/CryptoCavemen/farmer-house/pkg/types"
)

// attachBackend resolves the data directory, creates a SQLite backend, and
// attaches it. The caller must defer backend.Detach().
func attachBackend() (*sqlite.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	backend := sqlite.NewBackend()
	if err := backend.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach backend: %w", err)
	}

	return backend, nil
}

// newEngine builds a farm engine from the loaded configuration. The
// program and authority identities must be present; run 'farmhouse
// genesis' first on a fresh installation.
func newEngine(backend *sqlite.Backend) (*farm.Engine, error) {
	if cliConfig.program == "" || cliConfig.authority == "" {
		return nil, fmt.Errorf("program_id and authority are not configured; run 'farmhouse genesis'")
	}

	logger := newLogger()
	auth := farm.NewAuthorityContext(cliConfig.program, cliConfig.authority)
	return farm.NewEngine(backend, auth, farm.Options{
		ModelName: cliConfig.modelName,
		Logger:    &logger,
	})
}

// newLogger builds the CLI logger. Debug level only with --verbose.
func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).With().Timestamp().Str("app", "farmhouse").Logger().Level(level)
}

// signer resolves the signing wallet: the --as flag if given, the
// configured authority otherwise.
func signer() types.Signer {
	if flagAs != "" {
		return types.SignAs(flagAs)
	}
	return types.SignAs(cliConfig.authority)
}

// currencyMint reads the currency mint off the initialized farm record.
func currencyMint(backend *sqlite.Backend, engine *farm.Engine) (string, error) {
	var mint string
	err := backend.Execute(func(tx types.Tx) error {
		record, err := tx.Farm(engine.Authority().Address())
		if err != nil {
			return err
		}
		mint = record.CurrencyMint
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("load farm record: %w", err)
	}
	return mint, nil
}

// printResult writes a result either as indented JSON or via the
// human-readable fallback line.
func printResult(result any, fallback string) {
	if flagJSON {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "marshal JSON:", err)
			os.Exit(exitSysError)
		}
		fmt.Println(string(out))
		return
	}
	fmt.Println(fallback)
}
