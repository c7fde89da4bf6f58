package kml

// Package kml provides:
//
// - A typed codec between the KML vocabulary (features, geometries, styles) and a generic XML tree
// - An element protocol (Tag/Decode/Encode) every typed element implements, guarded by tag verification
// - Generic tree-accessor helpers with a documented required/optional failure asymmetry
// - Closed tag registries for polymorphic decode of geometry and feature children
// - A stable error model via Issues (element path, code, message)
//
// Design policy:
// - Keep only public APIs in the root package; the external XML tree is github.com/beevik/etree.
// - Place format exports under geojson/ and the CLI under cmd/kml.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	doc, err := kml.ReadFile("places.kml")
//	pm, err := kml.Decode[kml.Placemark](el)
//
//	el := pm.Encode()
//	err = doc.WriteTo(os.Stdout)
