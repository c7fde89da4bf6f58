// Root command for the kml CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/gokml/kml"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
)

var rootCmd = &cobra.Command{
	Use:          "kml",
	Short:        "kml validates, inspects, and converts KML documents",
	Version:      kml.Version,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(toGeoJSONCmd)
}
