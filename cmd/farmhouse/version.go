// Version command for the farmhouse CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CryptoCavemen/farmer-house/pkg/farm"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the farmhouse version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("farmhouse", farm.Version)
	},
}
