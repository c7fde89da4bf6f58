// Version command for the kml CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gokml/kml"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the kml version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("kml", kml.Version)
	},
}
