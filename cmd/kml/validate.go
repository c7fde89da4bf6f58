// Validate command: decode a file and report every issue.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gokml/kml"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Decode a KML file and report decode issues",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := kml.ReadFile(args[0])
		if err == nil {
			fmt.Printf("%s: ok\n", args[0])
			return nil
		}
		if iss, ok := kml.AsIssues(err); ok {
			for _, it := range iss {
				fmt.Fprintf(os.Stderr, "%s at %s: %s\n", it.Code, it.Path, it.Message)
			}
			return fmt.Errorf("%s: %d issue(s)", args[0], len(iss))
		}
		return err
	},
}
