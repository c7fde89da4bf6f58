package kml

import (
	"io"

	"github.com/beevik/etree"
)

// TagKML is the document root tag.
const TagKML = "kml"

// Namespace is the KML 2.2 XML namespace emitted on encode.
const Namespace = "http://www.opengis.net/kml/2.2"

// KML is the document root element wrapping a single top-level feature.
type KML struct {
	Feature Feature
}

func (*KML) Tag() string { return TagKML }

func (k *KML) decode(el *etree.Element) error {
	for _, c := range el.ChildElements() {
		if !IsFeatureElement(c) {
			continue
		}
		f, _, err := decodeFeature(c)
		if err != nil {
			return err
		}
		k.Feature = f
		return nil
	}
	return childNotFound("Feature")
}

func (k *KML) Encode() *etree.Element {
	el := etree.NewElement(TagKML)
	el.CreateAttr("xmlns", Namespace)
	if k.Feature != nil {
		el.AddChild(k.Feature.Encode())
	}
	return el
}

// Read parses a complete KML document from r and decodes its root element.
func Read(r io.Reader) (*KML, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, err
	}
	root := doc.Root()
	if root == nil {
		return nil, childNotFound(TagKML)
	}
	return Decode[KML](root)
}

// ReadFile parses the KML document at path.
func ReadFile(path string) (*KML, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, err
	}
	root := doc.Root()
	if root == nil {
		return nil, childNotFound(TagKML)
	}
	return Decode[KML](root)
}

// WriteTo encodes the document and writes it to w with an XML declaration
// and two-space indentation.
func (k *KML) WriteTo(w io.Writer) error {
	doc := k.document()
	_, err := doc.WriteTo(w)
	return err
}

// WriteFile encodes the document into the file at path.
func (k *KML) WriteFile(path string) error {
	return k.document().WriteToFile(path)
}

func (k *KML) document() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.SetRoot(k.Encode())
	doc.Indent(2)
	return doc
}
