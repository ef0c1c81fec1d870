// Mint commands: stock collectibles and issue currency.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	mintName       string
	mintSymbol     string
	mintURI        string
	mintCollection string

	mintCurrencyTo     string
	mintCurrencyAmount uint64
)

var mintCmd = &cobra.Command{
	Use:   "mint",
	Short: "Mint a collectible into the farm's stock",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "mint:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		engine, err := newEngine(backend)
		if err != nil {
			fmt.Fprintln(os.Stderr, "mint:", err)
			os.Exit(exitSysError)
		}

		mint, err := engine.MintCollectible(signer(), mintName, mintSymbol, mintURI, mintCollection)
		if err != nil {
			fmt.Fprintln(os.Stderr, "mint collectible:", err)
			os.Exit(exitUserError)
		}

		printResult(map[string]string{"mint": mint}, fmt.Sprintf("Minted: %s", mint))
		return nil
	},
}

var mintCurrencyCmd = &cobra.Command{
	Use:   "mint-currency",
	Short: "Issue currency into a wallet",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "mint-currency:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		engine, err := newEngine(backend)
		if err != nil {
			fmt.Fprintln(os.Stderr, "mint-currency:", err)
			os.Exit(exitSysError)
		}

		currency, err := currencyMint(backend, engine)
		if err != nil {
			fmt.Fprintln(os.Stderr, "mint-currency:", err)
			os.Exit(exitUserError)
		}

		to := mintCurrencyTo
		if to == "" {
			to = cliConfig.authority
		}
		if err := engine.MintCurrency(signer(), currency, to, mintCurrencyAmount); err != nil {
			fmt.Fprintln(os.Stderr, "mint currency:", err)
			os.Exit(exitUserError)
		}

		printResult(map[string]any{"wallet": to, "amount": mintCurrencyAmount},
			fmt.Sprintf("Minted %d to %s", mintCurrencyAmount, to))
		return nil
	},
}

func init() {
	mintCmd.Flags().StringVar(&mintName, "name", "", "asset display name (required)")
	mintCmd.Flags().StringVar(&mintSymbol, "symbol", "", "asset symbol")
	mintCmd.Flags().StringVar(&mintURI, "uri", "", "metadata URI")
	mintCmd.Flags().StringVar(&mintCollection, "collection", "", "collection mint the asset belongs to (required)")
	mintCmd.MarkFlagRequired("name")
	mintCmd.MarkFlagRequired("collection")

	mintCurrencyCmd.Flags().StringVar(&mintCurrencyTo, "to", "", "destination wallet (default: configured authority)")
	mintCurrencyCmd.Flags().Uint64Var(&mintCurrencyAmount, "amount", 0, "amount in minor units (required)")
	mintCurrencyCmd.MarkFlagRequired("amount")
}
