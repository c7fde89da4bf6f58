package kml_test

import (
	"reflect"
	"testing"

	kml "github.com/gokml/kml"
)

func TestParseColor(t *testing.T) {
	c, err := kml.ParseColor("7fff00aa")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.A != 0x7f || c.B != 0xff || c.G != 0x00 || c.R != 0xaa {
		t.Fatalf("wrong channels: %+v", c)
	}

	// Canonical form is lowercase.
	c2, err := kml.ParseColor("7FFF00AA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c2.String() != "7fff00aa" {
		t.Fatalf("expected canonical lowercase, got %q", c2.String())
	}

	for _, bad := range []string{"", "fff", "ff0000ff00", "zzff00aa"} {
		if _, err := kml.ParseColor(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestParseCoordinates(t *testing.T) {
	cs, err := kml.ParseCoordinates(" -122.08,37.42,30.5\n 0,1 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := kml.Coordinates{
		{Lon: -122.08, Lat: 37.42, Alt: 30.5},
		{Lon: 0, Lat: 1},
	}
	if !reflect.DeepEqual(cs, want) {
		t.Fatalf("got %+v, want %+v", cs, want)
	}

	if cs.String() != "-122.08,37.42,30.5 0,1" {
		t.Fatalf("wrong rendering: %q", cs.String())
	}

	for _, bad := range []string{"1", "1,2,3,4", "a,b", "1,b"} {
		if _, err := kml.ParseCoordinates(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestParseCoordinates_Empty(t *testing.T) {
	cs, err := kml.ParseCoordinates("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cs) != 0 {
		t.Fatalf("expected no tuples, got %+v", cs)
	}
}
