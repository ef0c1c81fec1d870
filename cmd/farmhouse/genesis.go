// Genesis command: bootstraps a complete farm on a fresh data directory.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CryptoCavemen/farmer-house/pkg/farm"
	"github.com/CryptoCavemen/farmer-house/pkg/types"
)

var genesisFund uint64

// genesisResult is the machine-readable summary of a bootstrap run.
type genesisResult struct {
	Program           string   `json:"program_id"`
	Authority         string   `json:"authority"`
	Farm              string   `json:"farm"`
	CurrencyMint      string   `json:"currency_mint"`
	SeedCollection    string   `json:"seed_collection"`
	SaplingCollection string   `json:"sapling_collection"`
	RipeCollection    string   `json:"ripe_collection"`
	FieldCollection   string   `json:"field_collection"`
	Model             string   `json:"model"`
	Slots             []string `json:"slots"`
}

var genesisCmd = &cobra.Command{
	Use:   "genesis",
	Short: "Generate identities, mint collections and currency, and initialize the farm",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cliConfig.program != "" || cliConfig.authority != "" {
			fmt.Fprintln(os.Stderr, "genesis: identities already configured; remove config.yaml to start over")
			os.Exit(exitUserError)
		}

		program := types.NewAddress()
		authority := types.SignAs(types.NewAddress())

		configDir, err := resolveConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "genesis:", err)
			os.Exit(exitSysError)
		}
		if err := writeIdentityConfig(configDir, program, authority.Address); err != nil {
			fmt.Fprintln(os.Stderr, "write config:", err)
			os.Exit(exitSysError)
		}
		cliConfig.program = program
		cliConfig.authority = authority.Address

		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "genesis:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		engine, err := newEngine(backend)
		if err != nil {
			fmt.Fprintln(os.Stderr, "genesis:", err)
			os.Exit(exitSysError)
		}

		currency, err := engine.CreateCurrencyMint(authority, 6)
		if err != nil {
			fmt.Fprintln(os.Stderr, "create currency mint:", err)
			os.Exit(exitSysError)
		}

		collections := make(map[string]string, 4)
		for _, c := range []struct{ key, name, symbol string }{
			{"seed", "Tomato Seed Collection", "SEEDC"},
			{"sapling", "Tomato Sapling Collection", "SAPLC"},
			{"ripe", "Ripe Tomato Collection", "RIPEC"},
			{"field", "Field Collection", "FIELDC"},
		} {
			mint, err := engine.MintCollectionMarker(authority, c.name, c.symbol, "")
			if err != nil {
				fmt.Fprintf(os.Stderr, "mint %s collection: %s\n", c.key, err)
				os.Exit(exitSysError)
			}
			collections[c.key] = mint
		}

		farmRecord, err := engine.Initialize(authority, currency,
			collections["seed"], collections["sapling"],
			collections["ripe"], collections["field"])
		if err != nil {
			fmt.Fprintln(os.Stderr, "initialize farm:", err)
			os.Exit(exitSysError)
		}

		model, slots, err := engine.RegisterConstraintModel(authority, farm.DefaultModelName, "")
		if err != nil {
			fmt.Fprintln(os.Stderr, "register constraint model:", err)
			os.Exit(exitSysError)
		}

		if genesisFund > 0 {
			if err := engine.MintCurrency(authority, currency, authority.Address, genesisFund); err != nil {
				fmt.Fprintln(os.Stderr, "fund authority:", err)
				os.Exit(exitSysError)
			}
		}

		result := genesisResult{
			Program:           program,
			Authority:         authority.Address,
			Farm:              farmRecord.Address,
			CurrencyMint:      currency,
			SeedCollection:    collections["seed"],
			SaplingCollection: collections["sapling"],
			RipeCollection:    collections["ripe"],
			FieldCollection:   collections["field"],
			Model:             model.Address,
			Slots:             slots,
		}
		printResult(result, fmt.Sprintf("Farm initialized: %s\nCurrency mint: %s\nAuthority: %s",
			farmRecord.Address, currency, authority.Address))
		return nil
	},
}

func init() {
	genesisCmd.Flags().Uint64Var(&genesisFund, "fund", 0, "currency amount minted to the authority wallet")
}
