// Init commands: create the farm record and its escrow constraint model
// from pre-existing mints. Operators bootstrapping from nothing should use
// 'farmhouse genesis' instead.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CryptoCavemen/farmer-house/pkg/farm"
)

var (
	initCurrency  string
	initSeeds     string
	initSaplings  string
	initRipe      string
	initFields    string
	initSchemaURI string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the farm record",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		engine, err := newEngine(backend)
		if err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}

		farmRecord, err := engine.Initialize(signer(), initCurrency,
			initSeeds, initSaplings, initRipe, initFields)
		if err != nil {
			fmt.Fprintln(os.Stderr, "initialize farm:", err)
			os.Exit(exitUserError)
		}

		printResult(farmRecord, fmt.Sprintf("Farm initialized: %s", farmRecord.Address))
		return nil
	},
}

var initModelCmd = &cobra.Command{
	Use:   "init-model",
	Short: "Register the escrow constraint model and its slots",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "init-model:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		engine, err := newEngine(backend)
		if err != nil {
			fmt.Fprintln(os.Stderr, "init-model:", err)
			os.Exit(exitSysError)
		}

		name := cliConfig.modelName
		if name == "" {
			name = farm.DefaultModelName
		}
		model, slots, err := engine.RegisterConstraintModel(signer(), name, initSchemaURI)
		if err != nil {
			fmt.Fprintln(os.Stderr, "register constraint model:", err)
			os.Exit(exitUserError)
		}

		printResult(model, fmt.Sprintf("Model registered: %s (%d slots)", model.Address, len(slots)))
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initCurrency, "currency", "", "currency mint address (required)")
	initCmd.Flags().StringVar(&initSeeds, "seed-collection", "", "seed collection mint (required)")
	initCmd.Flags().StringVar(&initSaplings, "sapling-collection", "", "sapling collection mint (required)")
	initCmd.Flags().StringVar(&initRipe, "ripe-collection", "", "ripe collection mint (required)")
	initCmd.Flags().StringVar(&initFields, "field-collection", "", "field collection mint (required)")
	initCmd.MarkFlagRequired("currency")
	initCmd.MarkFlagRequired("seed-collection")
	initCmd.MarkFlagRequired("sapling-collection")
	initCmd.MarkFlagRequired("ripe-collection")
	initCmd.MarkFlagRequired("field-collection")

	initModelCmd.Flags().StringVar(&initSchemaURI, "schema-uri", "", "constraint model schema URI")
}
