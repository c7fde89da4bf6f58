package kml

import "github.com/beevik/etree"

// Tag registries: one closed enumeration per polymorphic family, mapping a
// recognized tag to exactly one concrete element type. Adding a family member
// means adding its tag here and a case to the matching decode switch; the
// switches are kept exhaustive over these lists so the compiler surfaces a
// missed case as an unreachable default during review.

var geometryTags = [...]string{TagPoint, TagLineString, TagLinearRing, TagPolygon, TagMultiGeometry}

var featureTags = [...]string{TagPlacemark, TagFolder, TagDocument}

// GeometryTags returns the closed set of geometry tags in registry order.
func GeometryTags() []string {
	out := make([]string, len(geometryTags))
	copy(out, geometryTags[:])
	return out
}

// FeatureTags returns the closed set of feature tags in registry order.
func FeatureTags() []string {
	out := make([]string, len(featureTags))
	copy(out, featureTags[:])
	return out
}

// IsGeometryElement reports whether el's tag is a registered geometry.
func IsGeometryElement(el *etree.Element) bool {
	for _, t := range geometryTags {
		if el.Tag == t {
			return true
		}
	}
	return false
}

// IsFeatureElement reports whether el is a member of the feature family. A
// Folder or Document qualifies by tag alone; a Placemark qualifies only when
// one of its immediate children is a registered geometry. Only immediate
// children are inspected, never grandchildren.
func IsFeatureElement(el *etree.Element) bool {
	switch el.Tag {
	case TagFolder, TagDocument:
		return true
	case TagPlacemark:
		for _, c := range el.ChildElements() {
			if IsGeometryElement(c) {
				return true
			}
		}
	}
	return false
}

// decodeGeometry decodes el as the geometry its tag registers. The second
// result is false when the tag is not in the registry; a decode failure on a
// recognized tag is a hard error.
func decodeGeometry(el *etree.Element) (Geometry, bool, error) {
	switch el.Tag {
	case TagPoint:
		g, err := Decode[Point](el)
		if err != nil {
			return nil, true, err
		}
		return g, true, nil
	case TagLineString:
		g, err := Decode[LineString](el)
		if err != nil {
			return nil, true, err
		}
		return g, true, nil
	case TagLinearRing:
		g, err := Decode[LinearRing](el)
		if err != nil {
			return nil, true, err
		}
		return g, true, nil
	case TagPolygon:
		g, err := Decode[Polygon](el)
		if err != nil {
			return nil, true, err
		}
		return g, true, nil
	case TagMultiGeometry:
		g, err := Decode[MultiGeometry](el)
		if err != nil {
			return nil, true, err
		}
		return g, true, nil
	}
	return nil, false, nil
}

// decodeFeature decodes el as the feature its tag registers. Callers apply
// IsFeatureElement first so the Placemark ambiguity rule is honored before
// construction.
func decodeFeature(el *etree.Element) (Feature, bool, error) {
	switch el.Tag {
	case TagPlacemark:
		f, err := Decode[Placemark](el)
		if err != nil {
			return nil, true, err
		}
		return f, true, nil
	case TagFolder:
		f, err := Decode[Folder](el)
		if err != nil {
			return nil, true, err
		}
		return f, true, nil
	case TagDocument:
		f, err := Decode[Document](el)
		if err != nil {
			return nil, true, err
		}
		return f, true, nil
	}
	return nil, false, nil
}

// Geometries decodes every recognized geometry among el's children, in
// document order. Unrecognized tags are skipped; a decode failure on a
// recognized tag propagates.
func Geometries(el *etree.Element) ([]Geometry, error) {
	var out []Geometry
	for _, c := range el.ChildElements() {
		g, ok, err := decodeGeometry(c)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, g)
		}
	}
	return out, nil
}

// Features decodes every recognized feature among el's children, in document
// order, applying the Placemark recognizer before construction. Unrecognized
// children are skipped; a decode failure on a recognized child propagates.
func Features(el *etree.Element) ([]Feature, error) {
	var out []Feature
	for _, c := range el.ChildElements() {
		if !IsFeatureElement(c) {
			continue
		}
		f, _, err := decodeFeature(c)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// firstGeometry decodes the first recognized geometry child of el, or nil
// when none exists. A malformed recognized child is a hard error.
func firstGeometry(el *etree.Element) (Geometry, error) {
	for _, c := range el.ChildElements() {
		g, ok, err := decodeGeometry(c)
		if err != nil {
			return nil, err
		}
		if ok {
			return g, nil
		}
	}
	return nil, nil
}
