// Describe command: inspect an asset's lifecycle state.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe <mint>",
	Short: "Show an asset's collection membership and lifecycle stage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "describe:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		engine, err := newEngine(backend)
		if err != nil {
			fmt.Fprintln(os.Stderr, "describe:", err)
			os.Exit(exitSysError)
		}

		d, err := engine.Describe(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "describe:", err)
			os.Exit(exitUserError)
		}

		kind := "unknown"
		if d.IsField() {
			kind = "field"
		} else if stage, err := d.Stage(); err == nil {
			kind = string(stage)
		}

		printResult(map[string]string{
			"mint":       d.Mint(),
			"name":       d.Name(),
			"collection": d.Collection(),
			"kind":       kind,
		}, fmt.Sprintf("%s  %s  (%s)", d.Mint(), d.Name(), kind))
		return nil
	},
}
