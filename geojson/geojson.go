// Package geojson exports decoded KML features and geometries as GeoJSON
// (RFC 7946). The mapping flattens KML containers: a Folder or Document
// becomes one FeatureCollection holding every nested Placemark.
package geojson

import (
	json "github.com/goccy/go-json"

	"github.com/gokml/kml"
)

// Geometry is a GeoJSON geometry object.
type Geometry struct {
	Type        string      `json:"type"`
	Coordinates any         `json:"coordinates,omitempty"`
	Geometries  []*Geometry `json:"geometries,omitempty"`
}

// Feature is a GeoJSON feature object.
type Feature struct {
	Type       string         `json:"type"`
	ID         string         `json:"id,omitempty"`
	Geometry   *Geometry      `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

// FeatureCollection is a GeoJSON feature collection object.
type FeatureCollection struct {
	Type     string     `json:"type"`
	Features []*Feature `json:"features"`
}

// position renders lon,lat with alt only when non-zero, mirroring how the
// kml package prints coordinates.
func position(c kml.Coordinate) []float64 {
	if c.Alt != 0 {
		return []float64{c.Lon, c.Lat, c.Alt}
	}
	return []float64{c.Lon, c.Lat}
}

func positions(cs kml.Coordinates) [][]float64 {
	out := make([][]float64, len(cs))
	for i, c := range cs {
		out[i] = position(c)
	}
	return out
}

// FromGeometry converts any registered KML geometry. A LinearRing outside a
// polygon maps to a LineString; a MultiGeometry maps to a
// GeometryCollection.
func FromGeometry(g kml.Geometry) *Geometry {
	switch g := g.(type) {
	case *kml.Point:
		return &Geometry{Type: "Point", Coordinates: position(g.Coordinate)}
	case *kml.LineString:
		return &Geometry{Type: "LineString", Coordinates: positions(g.Coordinates)}
	case *kml.LinearRing:
		return &Geometry{Type: "LineString", Coordinates: positions(g.Coordinates)}
	case *kml.Polygon:
		rings := make([][][]float64, 0, 1+len(g.InnerBoundaries))
		if g.OuterBoundary != nil {
			rings = append(rings, positions(g.OuterBoundary.Coordinates))
		}
		for _, inner := range g.InnerBoundaries {
			rings = append(rings, positions(inner.Coordinates))
		}
		return &Geometry{Type: "Polygon", Coordinates: rings}
	case *kml.MultiGeometry:
		gs := make([]*Geometry, 0, len(g.Geometries))
		for _, nested := range g.Geometries {
			gs = append(gs, FromGeometry(nested))
		}
		return &Geometry{Type: "GeometryCollection", Geometries: gs}
	}
	return nil
}

// FromPlacemark converts one placemark; its geometry may be null.
func FromPlacemark(p *kml.Placemark) *Feature {
	props := map[string]any{}
	if p.Name != "" {
		props["name"] = p.Name
	}
	if p.Description != "" {
		props["description"] = p.Description
	}
	if p.StyleURL != "" {
		props["styleUrl"] = p.StyleURL
	}
	var geom *Geometry
	if p.Geometry != nil {
		geom = FromGeometry(p.Geometry)
	}
	return &Feature{Type: "Feature", ID: p.ID, Geometry: geom, Properties: props}
}

// Collection converts a feature tree into one flat FeatureCollection.
func Collection(f kml.Feature) *FeatureCollection {
	fc := &FeatureCollection{Type: "FeatureCollection", Features: []*Feature{}}
	appendFeature(fc, f)
	return fc
}

// FromKML converts a whole document.
func FromKML(k *kml.KML) *FeatureCollection {
	if k.Feature == nil {
		return &FeatureCollection{Type: "FeatureCollection", Features: []*Feature{}}
	}
	return Collection(k.Feature)
}

func appendFeature(fc *FeatureCollection, f kml.Feature) {
	switch f := f.(type) {
	case *kml.Placemark:
		fc.Features = append(fc.Features, FromPlacemark(f))
	case *kml.Folder:
		for _, kid := range f.Features {
			appendFeature(fc, kid)
		}
	case *kml.Document:
		for _, kid := range f.Features {
			appendFeature(fc, kid)
		}
	}
}

// Marshal renders v as compact GeoJSON.
func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// MarshalIndent renders v as indented GeoJSON.
func MarshalIndent(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
