// Inspect command: summarize a document's element counts.
package main

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gokml/kml"
)

var inspectFormat string

// report is the inspect output, rendered as YAML or JSON.
type report struct {
	Name       string         `yaml:"name,omitempty" json:"name,omitempty"`
	Documents  int            `yaml:"documents" json:"documents"`
	Folders    int            `yaml:"folders" json:"folders"`
	Placemarks int            `yaml:"placemarks" json:"placemarks"`
	Styles     int            `yaml:"styles" json:"styles"`
	Geometries map[string]int `yaml:"geometries" json:"geometries"`
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Summarize the features, geometries, and styles in a KML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := kml.ReadFile(args[0])
		if err != nil {
			return err
		}
		rep := report{Geometries: map[string]int{}}
		if doc.Feature != nil {
			countFeature(&rep, doc.Feature)
		}

		var out []byte
		switch inspectFormat {
		case "yaml":
			out, err = yaml.Marshal(rep)
		case "json":
			out, err = json.MarshalIndent(rep, "", "  ")
		default:
			return fmt.Errorf("unknown format %q (want yaml or json)", inspectFormat)
		}
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(out)
		return err
	},
}

func init() {
	inspectCmd.Flags().StringVar(&inspectFormat, "format", "yaml", "output format: yaml or json")
}

func countFeature(rep *report, f kml.Feature) {
	switch f := f.(type) {
	case *kml.Document:
		rep.Documents++
		if rep.Name == "" {
			rep.Name = f.Name
		}
		rep.Styles += len(f.Styles)
		for _, kid := range f.Features {
			countFeature(rep, kid)
		}
	case *kml.Folder:
		rep.Folders++
		for _, kid := range f.Features {
			countFeature(rep, kid)
		}
	case *kml.Placemark:
		rep.Placemarks++
		if f.Geometry != nil {
			countGeometry(rep, f.Geometry)
		}
	}
}

func countGeometry(rep *report, g kml.Geometry) {
	rep.Geometries[g.Tag()]++
	if mg, ok := g.(*kml.MultiGeometry); ok {
		for _, nested := range mg.Geometries {
			countGeometry(rep, nested)
		}
	}
}
