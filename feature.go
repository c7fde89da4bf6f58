package kml

import "github.com/beevik/etree"

// Feature element tags.
const (
	TagPlacemark = "Placemark"
	TagFolder    = "Folder"
	TagDocument  = "Document"
)

// Feature is implemented by every member of the feature family. Like
// Geometry, the family is closed and enumerated in registry.go.
type Feature interface {
	Element
	feature()
}

// Placemark is a named feature carrying at most one geometry.
type Placemark struct {
	ID          string
	Name        string
	Description string
	StyleURL    string
	Geometry    Geometry
}

func (*Placemark) Tag() string { return TagPlacemark }
func (*Placemark) feature()    {}

func (p *Placemark) decode(el *etree.Element) error {
	p.ID = el.SelectAttrValue("id", "")
	p.Name, _ = optionalText(el, "name")
	p.Description, _ = optionalText(el, "description")
	p.StyleURL, _ = optionalText(el, "styleUrl")
	g, err := firstGeometry(el)
	if err != nil {
		return err
	}
	p.Geometry = g
	return nil
}

func (p *Placemark) Encode() *etree.Element {
	el := etree.NewElement(TagPlacemark)
	encodeID(el, p.ID)
	if p.Name != "" {
		appendText(el, "name", p.Name)
	}
	if p.Description != "" {
		appendText(el, "description", p.Description)
	}
	if p.StyleURL != "" {
		appendText(el, "styleUrl", p.StyleURL)
	}
	if p.Geometry != nil {
		el.AddChild(p.Geometry.Encode())
	}
	return el
}

// Folder groups nested features.
type Folder struct {
	ID          string
	Name        string
	Description string
	Features    []Feature
}

func (*Folder) Tag() string { return TagFolder }
func (*Folder) feature()    {}

func (f *Folder) decode(el *etree.Element) error {
	f.ID = el.SelectAttrValue("id", "")
	f.Name, _ = optionalText(el, "name")
	f.Description, _ = optionalText(el, "description")
	kids, err := Features(el)
	if err != nil {
		return err
	}
	f.Features = kids
	return nil
}

func (f *Folder) Encode() *etree.Element {
	el := etree.NewElement(TagFolder)
	encodeID(el, f.ID)
	if f.Name != "" {
		appendText(el, "name", f.Name)
	}
	if f.Description != "" {
		appendText(el, "description", f.Description)
	}
	for _, kid := range f.Features {
		el.AddChild(kid.Encode())
	}
	return el
}

// Document is the top-level container: shared styles followed by nested
// features.
type Document struct {
	ID          string
	Name        string
	Description string
	Styles      []*Style
	Features    []Feature
}

func (*Document) Tag() string { return TagDocument }
func (*Document) feature()    {}

func (d *Document) decode(el *etree.Element) error {
	d.ID = el.SelectAttrValue("id", "")
	d.Name, _ = optionalText(el, "name")
	d.Description, _ = optionalText(el, "description")
	styles, err := AllTyped[Style](el)
	if err != nil {
		return err
	}
	d.Styles = styles
	kids, err := Features(el)
	if err != nil {
		return err
	}
	d.Features = kids
	return nil
}

func (d *Document) Encode() *etree.Element {
	el := etree.NewElement(TagDocument)
	encodeID(el, d.ID)
	if d.Name != "" {
		appendText(el, "name", d.Name)
	}
	if d.Description != "" {
		appendText(el, "description", d.Description)
	}
	for _, s := range d.Styles {
		el.AddChild(s.Encode())
	}
	for _, kid := range d.Features {
		el.AddChild(kid.Encode())
	}
	return el
}
