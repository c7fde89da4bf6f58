package kml

import "github.com/beevik/etree"

// ColorStyle is the capability shared by style elements that carry the
// color/colorMode child pair. It is opt-in conformance, not a base type: a
// style declares it by implementing Coloring, and the helpers below implement
// the pair's encode/decode once for all conformers.
type ColorStyle interface {
	Element
	// Coloring reports the element's color (nil when unset) and color mode.
	Coloring() (*Color, ColorMode)
}

var (
	_ ColorStyle = (*LineStyle)(nil)
	_ ColorStyle = (*PolyStyle)(nil)
	_ ColorStyle = (*IconStyle)(nil)
	_ ColorStyle = (*LabelStyle)(nil)
)

// decodeColorStyle reads the shared color and colorMode children. Both are
// optional paths: a malformed color or mode degrades to unset/normal.
func decodeColorStyle(el *etree.Element) (*Color, ColorMode) {
	var color *Color
	if s, ok := optionalText(el, "color"); ok {
		if c, err := ParseColor(s); err == nil {
			color = &c
		}
	}
	mode := ColorModeNormal
	if s, ok := optionalText(el, "colorMode"); ok {
		if m, err := parseColorMode(s); err == nil {
			mode = m
		}
	}
	return color, mode
}

// appendColorStyle emits the shared pair: color only when set, colorMode only
// when non-default.
func appendColorStyle(el *etree.Element, cs ColorStyle) {
	color, mode := cs.Coloring()
	if color != nil {
		appendText(el, "color", color.String())
	}
	if mode != "" && mode != ColorModeNormal {
		appendText(el, "colorMode", string(mode))
	}
}
