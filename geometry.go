package kml

import (
	"errors"

	"github.com/beevik/etree"
)

// Geometry element tags.
const (
	TagPoint         = "Point"
	TagLineString    = "LineString"
	TagLinearRing    = "LinearRing"
	TagPolygon       = "Polygon"
	TagMultiGeometry = "MultiGeometry"
)

// Geometry is implemented by every member of the geometry family. The family
// is closed: the unexported marker keeps implementations in this package, and
// the registry in registry.go is the single point of change when a member is
// added.
type Geometry interface {
	Element
	geometry()
}

// Point is a single geographic position.
type Point struct {
	Coordinate   Coordinate
	Extrude      bool
	AltitudeMode AltitudeMode
}

func (*Point) Tag() string { return TagPoint }
func (*Point) geometry()   {}

func (p *Point) decode(el *etree.Element) error {
	s, err := requiredText(el, "coordinates")
	if err != nil {
		return err
	}
	cs, err := ParseCoordinates(s)
	if err != nil {
		return invalidValue("coordinates", s, err)
	}
	if len(cs) == 0 {
		return invalidValue("coordinates", s, errors.New("kml: empty coordinates"))
	}
	p.Coordinate = cs[0]
	p.Extrude = optionalBool(el, "extrude", false)
	p.AltitudeMode = optionalAltitudeMode(el)
	return nil
}

func (p *Point) Encode() *etree.Element {
	el := etree.NewElement(TagPoint)
	if p.Extrude {
		appendBool(el, "extrude", true)
	}
	appendAltitudeMode(el, p.AltitudeMode)
	appendText(el, "coordinates", Coordinates{p.Coordinate}.String())
	return el
}

// LineString is an open path of two or more positions.
type LineString struct {
	Coordinates  Coordinates
	Extrude      bool
	Tessellate   bool
	AltitudeMode AltitudeMode
}

func (*LineString) Tag() string { return TagLineString }
func (*LineString) geometry()   {}

func (l *LineString) decode(el *etree.Element) error {
	s, err := requiredText(el, "coordinates")
	if err != nil {
		return err
	}
	cs, err := ParseCoordinates(s)
	if err != nil {
		return invalidValue("coordinates", s, err)
	}
	l.Coordinates = cs
	l.Extrude = optionalBool(el, "extrude", false)
	l.Tessellate = optionalBool(el, "tessellate", false)
	l.AltitudeMode = optionalAltitudeMode(el)
	return nil
}

func (l *LineString) Encode() *etree.Element {
	el := etree.NewElement(TagLineString)
	if l.Extrude {
		appendBool(el, "extrude", true)
	}
	if l.Tessellate {
		appendBool(el, "tessellate", true)
	}
	appendAltitudeMode(el, l.AltitudeMode)
	appendText(el, "coordinates", l.Coordinates.String())
	return el
}

// LinearRing is a closed path used for polygon boundaries.
type LinearRing struct {
	Coordinates Coordinates
}

func (*LinearRing) Tag() string { return TagLinearRing }
func (*LinearRing) geometry()   {}

func (r *LinearRing) decode(el *etree.Element) error {
	s, err := requiredText(el, "coordinates")
	if err != nil {
		return err
	}
	cs, err := ParseCoordinates(s)
	if err != nil {
		return invalidValue("coordinates", s, err)
	}
	r.Coordinates = cs
	return nil
}

func (r *LinearRing) Encode() *etree.Element {
	el := etree.NewElement(TagLinearRing)
	appendText(el, "coordinates", r.Coordinates.String())
	return el
}

// Polygon is an outer ring with zero or more inner (hole) rings, each ring
// wrapped in its boundary element.
type Polygon struct {
	OuterBoundary   *LinearRing
	InnerBoundaries []*LinearRing
	Extrude         bool
	Tessellate      bool
	AltitudeMode    AltitudeMode
}

func (*Polygon) Tag() string { return TagPolygon }
func (*Polygon) geometry()   {}

func (p *Polygon) decode(el *etree.Element) error {
	ob, err := RequiredChild(el, "outerBoundaryIs")
	if err != nil {
		return err
	}
	outer, err := RequiredTyped[LinearRing](ob)
	if err != nil {
		return prefixIssues(err, "outerBoundaryIs")
	}
	p.OuterBoundary = outer
	for _, ib := range el.SelectElements("innerBoundaryIs") {
		inner, err := RequiredTyped[LinearRing](ib)
		if err != nil {
			return prefixIssues(err, "innerBoundaryIs")
		}
		p.InnerBoundaries = append(p.InnerBoundaries, inner)
	}
	p.Extrude = optionalBool(el, "extrude", false)
	p.Tessellate = optionalBool(el, "tessellate", false)
	p.AltitudeMode = optionalAltitudeMode(el)
	return nil
}

func (p *Polygon) Encode() *etree.Element {
	el := etree.NewElement(TagPolygon)
	if p.Extrude {
		appendBool(el, "extrude", true)
	}
	if p.Tessellate {
		appendBool(el, "tessellate", true)
	}
	appendAltitudeMode(el, p.AltitudeMode)
	if p.OuterBoundary != nil {
		el.CreateElement("outerBoundaryIs").AddChild(p.OuterBoundary.Encode())
	}
	for _, inner := range p.InnerBoundaries {
		el.CreateElement("innerBoundaryIs").AddChild(inner.Encode())
	}
	return el
}

// MultiGeometry groups nested geometries of any recognized kind.
type MultiGeometry struct {
	Geometries []Geometry
}

func (*MultiGeometry) Tag() string { return TagMultiGeometry }
func (*MultiGeometry) geometry()   {}

func (m *MultiGeometry) decode(el *etree.Element) error {
	gs, err := Geometries(el)
	if err != nil {
		return err
	}
	m.Geometries = gs
	return nil
}

func (m *MultiGeometry) Encode() *etree.Element {
	el := etree.NewElement(TagMultiGeometry)
	for _, g := range m.Geometries {
		el.AddChild(g.Encode())
	}
	return el
}

func optionalAltitudeMode(el *etree.Element) AltitudeMode {
	s, ok := optionalText(el, "altitudeMode")
	if !ok {
		return AltitudeClampToGround
	}
	m, err := parseAltitudeMode(s)
	if err != nil {
		return AltitudeClampToGround
	}
	return m
}

// appendAltitudeMode emits the child only for non-default modes; the zero
// value and clampToGround both mean the default.
func appendAltitudeMode(el *etree.Element, m AltitudeMode) {
	if m != "" && m != AltitudeClampToGround {
		appendText(el, "altitudeMode", string(m))
	}
}
