// Lifecycle commands: plant, water, harvest.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CryptoCavemen/farmer-house/pkg/types"
)

var (
	flagField string
	flagSlot  string
)

var plantCmd = &cobra.Command{
	Use:   "plant <seed-mint>",
	Short: "Plant a seed into a field's escrow slot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "plant:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		engine, err := newEngine(backend)
		if err != nil {
			fmt.Fprintln(os.Stderr, "plant:", err)
			os.Exit(exitSysError)
		}

		if err := engine.Plant(signer(), flagField, args[0], flagSlot); err != nil {
			fmt.Fprintln(os.Stderr, "plant:", err)
			os.Exit(exitUserError)
		}

		printResult(map[string]string{"seed": args[0], "field": flagField, "slot": flagSlot},
			fmt.Sprintf("Planted %s in slot %s", args[0], flagSlot))
		return nil
	},
}

var waterCmd = &cobra.Command{
	Use:   "water <crop-mint>",
	Short: "Water a planted crop, advancing it one stage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "water:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		engine, err := newEngine(backend)
		if err != nil {
			fmt.Fprintln(os.Stderr, "water:", err)
			os.Exit(exitSysError)
		}

		// Watering authenticates via the caller's field holding.
		caller := signer()
		var fieldHolding string
		err = backend.Execute(func(tx types.Tx) error {
			h, err := tx.Holding(caller.Address, flagField)
			if err != nil {
				return err
			}
			fieldHolding = h.Address
			return nil
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, "resolve field holding:", err)
			os.Exit(exitUserError)
		}

		if err := engine.Water(caller, fieldHolding, flagField, args[0], flagSlot); err != nil {
			fmt.Fprintln(os.Stderr, "water:", err)
			os.Exit(exitUserError)
		}

		printResult(map[string]string{"crop": args[0], "slot": flagSlot},
			fmt.Sprintf("Watered %s", args[0]))
		return nil
	},
}

var harvestCmd = &cobra.Command{
	Use:   "harvest <crop-mint>",
	Short: "Harvest a ripe crop out of its escrow slot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "harvest:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		engine, err := newEngine(backend)
		if err != nil {
			fmt.Fprintln(os.Stderr, "harvest:", err)
			os.Exit(exitSysError)
		}

		if err := engine.Harvest(signer(), flagField, args[0], flagSlot); err != nil {
			fmt.Fprintln(os.Stderr, "harvest:", err)
			os.Exit(exitUserError)
		}

		printResult(map[string]string{"crop": args[0], "slot": flagSlot},
			fmt.Sprintf("Harvested %s", args[0]))
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{plantCmd, waterCmd, harvestCmd} {
		cmd.Flags().StringVar(&flagField, "field", "", "field mint the crop is planted in (required)")
		cmd.Flags().StringVar(&flagSlot, "slot", "", "escrow slot name, e.g. a1 (required)")
		cmd.MarkFlagRequired("field")
		cmd.MarkFlagRequired("slot")
	}
}
