// Shop commands: buy fields and seeds, sell crops back.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var buyFieldCmd = &cobra.Command{
	Use:   "buy-field <field-mint>",
	Short: "Buy a field from the farm",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "buy-field:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		engine, err := newEngine(backend)
		if err != nil {
			fmt.Fprintln(os.Stderr, "buy-field:", err)
			os.Exit(exitSysError)
		}

		if err := engine.BuyField(signer(), args[0]); err != nil {
			fmt.Fprintln(os.Stderr, "buy field:", err)
			os.Exit(exitUserError)
		}

		printResult(map[string]string{"field": args[0], "vault": engine.VaultAddress(args[0])},
			fmt.Sprintf("Bought field %s", args[0]))
		return nil
	},
}

var buySeedCmd = &cobra.Command{
	Use:   "buy-seed <seed-mint>",
	Short: "Buy a seed from the farm",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "buy-seed:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		engine, err := newEngine(backend)
		if err != nil {
			fmt.Fprintln(os.Stderr, "buy-seed:", err)
			os.Exit(exitSysError)
		}

		if err := engine.BuySeed(signer(), args[0]); err != nil {
			fmt.Fprintln(os.Stderr, "buy seed:", err)
			os.Exit(exitUserError)
		}

		printResult(map[string]string{"seed": args[0]}, fmt.Sprintf("Bought seed %s", args[0]))
		return nil
	},
}

var sellCmd = &cobra.Command{
	Use:   "sell <crop-mint>",
	Short: "Sell a crop back to the farm",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "sell:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		engine, err := newEngine(backend)
		if err != nil {
			fmt.Fprintln(os.Stderr, "sell:", err)
			os.Exit(exitSysError)
		}

		if err := engine.SellCrop(signer(), args[0]); err != nil {
			fmt.Fprintln(os.Stderr, "sell crop:", err)
			os.Exit(exitUserError)
		}

		printResult(map[string]string{"crop": args[0]}, fmt.Sprintf("Sold crop %s", args[0]))
		return nil
	},
}
