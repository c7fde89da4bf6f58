// Convert command: KML in, GeoJSON out.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gokml/kml"
	"github.com/gokml/kml/geojson"
)

var toGeoJSONCmd = &cobra.Command{
	Use:   "to-geojson <file>",
	Short: "Convert a KML file to a GeoJSON FeatureCollection on stdout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := kml.ReadFile(args[0])
		if err != nil {
			return err
		}
		out, err := geojson.MarshalIndent(geojson.FromKML(doc))
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}
