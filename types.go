package kml

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a KML color in aabbggrr channel order.
type Color struct {
	A, B, G, R uint8
}

// ParseColor parses an 8-hex-digit aabbggrr string.
func ParseColor(s string) (Color, error) {
	if len(s) != 8 {
		return Color{}, fmt.Errorf("kml: color %q: want 8 hex digits", s)
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("kml: color %q: %w", s, err)
	}
	return Color{
		A: uint8(n >> 24),
		B: uint8(n >> 16),
		G: uint8(n >> 8),
		R: uint8(n),
	}, nil
}

// String renders the color in canonical lowercase aabbggrr form.
func (c Color) String() string {
	return fmt.Sprintf("%02x%02x%02x%02x", c.A, c.B, c.G, c.R)
}

// ColorMode selects between a literal color and a random variation of it.
type ColorMode string

const (
	ColorModeNormal ColorMode = "normal"
	ColorModeRandom ColorMode = "random"
)

func parseColorMode(s string) (ColorMode, error) {
	switch ColorMode(s) {
	case ColorModeNormal, ColorModeRandom:
		return ColorMode(s), nil
	}
	return ColorModeNormal, fmt.Errorf("kml: colorMode %q", s)
}

// AltitudeMode selects how altitude components are interpreted.
type AltitudeMode string

const (
	AltitudeClampToGround    AltitudeMode = "clampToGround"
	AltitudeRelativeToGround AltitudeMode = "relativeToGround"
	AltitudeAbsolute         AltitudeMode = "absolute"
)

func parseAltitudeMode(s string) (AltitudeMode, error) {
	switch AltitudeMode(s) {
	case AltitudeClampToGround, AltitudeRelativeToGround, AltitudeAbsolute:
		return AltitudeMode(s), nil
	}
	return AltitudeClampToGround, fmt.Errorf("kml: altitudeMode %q", s)
}

// Coordinate is a single lon,lat[,alt] tuple. Alt is zero when the source
// omitted it.
type Coordinate struct {
	Lon, Lat, Alt float64
}

// Coordinates is an ordered tuple sequence as carried by a <coordinates>
// element.
type Coordinates []Coordinate

// ParseCoordinates parses whitespace-separated lon,lat[,alt] tuples.
func ParseCoordinates(s string) (Coordinates, error) {
	fields := strings.Fields(s)
	out := make(Coordinates, 0, len(fields))
	for _, f := range fields {
		parts := strings.Split(f, ",")
		if len(parts) != 2 && len(parts) != 3 {
			return nil, fmt.Errorf("kml: coordinate %q: want lon,lat[,alt]", f)
		}
		var c Coordinate
		var err error
		if c.Lon, err = strconv.ParseFloat(parts[0], 64); err != nil {
			return nil, fmt.Errorf("kml: coordinate %q: %w", f, err)
		}
		if c.Lat, err = strconv.ParseFloat(parts[1], 64); err != nil {
			return nil, fmt.Errorf("kml: coordinate %q: %w", f, err)
		}
		if len(parts) == 3 {
			if c.Alt, err = strconv.ParseFloat(parts[2], 64); err != nil {
				return nil, fmt.Errorf("kml: coordinate %q: %w", f, err)
			}
		}
		out = append(out, c)
	}
	return out, nil
}

// String renders the tuples space-separated; alt is emitted only when
// non-zero so altitude-free data round-trips unchanged.
func (cs Coordinates) String() string {
	b := &strings.Builder{}
	for i, c := range cs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(c.Lon, 'f', -1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(c.Lat, 'f', -1, 64))
		if c.Alt != 0 {
			b.WriteByte(',')
			b.WriteString(strconv.FormatFloat(c.Alt, 'f', -1, 64))
		}
	}
	return b.String()
}
