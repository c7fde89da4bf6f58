package kml

import "github.com/beevik/etree"

// Style element tags.
const (
	TagStyle      = "Style"
	TagLineStyle  = "LineStyle"
	TagPolyStyle  = "PolyStyle"
	TagIconStyle  = "IconStyle"
	TagLabelStyle = "LabelStyle"
	TagIcon       = "Icon"
)

// Defaults substituted when the corresponding child is absent.
const (
	DefaultWidth   = 1.0
	DefaultScale   = 1.0
	DefaultHeading = 0.0
)

// LineStyle controls stroke rendering.
type LineStyle struct {
	Color     *Color
	ColorMode ColorMode
	Width     float64
}

func (*LineStyle) Tag() string                       { return TagLineStyle }
func (s *LineStyle) Coloring() (*Color, ColorMode) { return s.Color, s.ColorMode }

func (s *LineStyle) decode(el *etree.Element) error {
	s.Color, s.ColorMode = decodeColorStyle(el)
	s.Width = optionalFloat(el, "width", DefaultWidth)
	return nil
}

func (s *LineStyle) Encode() *etree.Element {
	el := etree.NewElement(TagLineStyle)
	appendColorStyle(el, s)
	appendFloat(el, "width", s.Width)
	return el
}

// PolyStyle controls polygon fill and outline rendering.
type PolyStyle struct {
	Color     *Color
	ColorMode ColorMode
	Fill      bool
	Outline   bool
}

func (*PolyStyle) Tag() string                       { return TagPolyStyle }
func (s *PolyStyle) Coloring() (*Color, ColorMode) { return s.Color, s.ColorMode }

func (s *PolyStyle) decode(el *etree.Element) error {
	s.Color, s.ColorMode = decodeColorStyle(el)
	s.Fill = optionalBool(el, "fill", true)
	s.Outline = optionalBool(el, "outline", true)
	return nil
}

func (s *PolyStyle) Encode() *etree.Element {
	el := etree.NewElement(TagPolyStyle)
	appendColorStyle(el, s)
	if !s.Fill {
		appendBool(el, "fill", false)
	}
	if !s.Outline {
		appendBool(el, "outline", false)
	}
	return el
}

// Icon names the image resource an IconStyle renders.
type Icon struct {
	Href string
}

func (*Icon) Tag() string { return TagIcon }

func (i *Icon) decode(el *etree.Element) error {
	i.Href, _ = optionalText(el, "href")
	return nil
}

func (i *Icon) Encode() *etree.Element {
	el := etree.NewElement(TagIcon)
	if i.Href != "" {
		appendText(el, "href", i.Href)
	}
	return el
}

// IconStyle controls point marker rendering.
type IconStyle struct {
	Color     *Color
	ColorMode ColorMode
	Scale     float64
	Heading   float64
	Icon      *Icon
}

func (*IconStyle) Tag() string                       { return TagIconStyle }
func (s *IconStyle) Coloring() (*Color, ColorMode) { return s.Color, s.ColorMode }

func (s *IconStyle) decode(el *etree.Element) error {
	s.Color, s.ColorMode = decodeColorStyle(el)
	s.Scale = optionalFloat(el, "scale", DefaultScale)
	s.Heading = optionalFloat(el, "heading", DefaultHeading)
	s.Icon = OptionalTyped[Icon](el)
	return nil
}

func (s *IconStyle) Encode() *etree.Element {
	el := etree.NewElement(TagIconStyle)
	appendColorStyle(el, s)
	appendFloat(el, "scale", s.Scale)
	appendFloat(el, "heading", s.Heading)
	if s.Icon != nil {
		el.AddChild(s.Icon.Encode())
	}
	return el
}

// LabelStyle controls feature name rendering.
type LabelStyle struct {
	Color     *Color
	ColorMode ColorMode
	Scale     float64
}

func (*LabelStyle) Tag() string                       { return TagLabelStyle }
func (s *LabelStyle) Coloring() (*Color, ColorMode) { return s.Color, s.ColorMode }

func (s *LabelStyle) decode(el *etree.Element) error {
	s.Color, s.ColorMode = decodeColorStyle(el)
	s.Scale = optionalFloat(el, "scale", DefaultScale)
	return nil
}

func (s *LabelStyle) Encode() *etree.Element {
	el := etree.NewElement(TagLabelStyle)
	appendColorStyle(el, s)
	appendFloat(el, "scale", s.Scale)
	return el
}

// Style bundles up to one of each sub-style under a shared identifier.
type Style struct {
	ID         string
	IconStyle  *IconStyle
	LabelStyle *LabelStyle
	LineStyle  *LineStyle
	PolyStyle  *PolyStyle
}

func (*Style) Tag() string { return TagStyle }

func (s *Style) decode(el *etree.Element) error {
	s.ID = el.SelectAttrValue("id", "")
	s.IconStyle = OptionalTyped[IconStyle](el)
	s.LabelStyle = OptionalTyped[LabelStyle](el)
	s.LineStyle = OptionalTyped[LineStyle](el)
	s.PolyStyle = OptionalTyped[PolyStyle](el)
	return nil
}

func (s *Style) Encode() *etree.Element {
	el := etree.NewElement(TagStyle)
	encodeID(el, s.ID)
	if s.IconStyle != nil {
		el.AddChild(s.IconStyle.Encode())
	}
	if s.LabelStyle != nil {
		el.AddChild(s.LabelStyle.Encode())
	}
	if s.LineStyle != nil {
		el.AddChild(s.LineStyle.Encode())
	}
	if s.PolyStyle != nil {
		el.AddChild(s.PolyStyle.Encode())
	}
	return el
}
