package kml_test

import (
	"reflect"
	"testing"

	kml "github.com/gokml/kml"
)

func TestPlacemark_RoundTrip(t *testing.T) {
	el := parse(t, `<Placemark id="pm-1">
		<name>Summit hut</name>
		<description>Open in summer.</description>
		<styleUrl>#hiking</styleUrl>
		<Point><coordinates>9.5,47.1,1800</coordinates></Point>
	</Placemark>`)

	pm, err := kml.Decode[kml.Placemark](el)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pm.ID != "pm-1" || pm.Name != "Summit hut" || pm.StyleURL != "#hiking" {
		t.Fatalf("wrong fields: %+v", pm)
	}
	pt, ok := pm.Geometry.(*kml.Point)
	if !ok {
		t.Fatalf("expected point geometry, got %T", pm.Geometry)
	}
	if pt.Coordinate.Alt != 1800 {
		t.Fatalf("wrong altitude: %v", pt.Coordinate.Alt)
	}

	back, err := kml.Decode[kml.Placemark](pm.Encode())
	if err != nil {
		t.Fatalf("re-decode failed: %v", err)
	}
	if !reflect.DeepEqual(pm, back) {
		t.Fatalf("round trip mismatch: %+v vs %+v", pm, back)
	}
}

func TestPlacemark_DirectDecodeWithoutGeometry(t *testing.T) {
	// Direct decode accepts a geometry-free placemark; only the feature
	// dispatcher demands a geometry child.
	pm, err := kml.Decode[kml.Placemark](parse(t, `<Placemark><name>note</name></Placemark>`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pm.Geometry != nil {
		t.Fatalf("expected nil geometry, got %v", pm.Geometry)
	}
	if pm.Encode().SelectElement("name").Text() != "note" {
		t.Fatalf("lost name on encode")
	}
}

func TestFolder_NestedFeatures(t *testing.T) {
	el := parse(t, `<Folder id="trips">
		<name>Trips</name>
		<Placemark><name>a</name><Point><coordinates>1,1</coordinates></Point></Placemark>
		<Folder><name>inner</name></Folder>
		<Placemark><name>b</name><Point><coordinates>2,2</coordinates></Point></Placemark>
	</Folder>`)

	f, err := kml.Decode[kml.Folder](el)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.Features) != 3 {
		t.Fatalf("expected 3 nested features, got %d", len(f.Features))
	}
	// Document order survives dispatch.
	if f.Features[0].Tag() != "Placemark" || f.Features[1].Tag() != "Folder" || f.Features[2].Tag() != "Placemark" {
		t.Fatalf("wrong order: %v, %v, %v", f.Features[0].Tag(), f.Features[1].Tag(), f.Features[2].Tag())
	}

	back, err := kml.Decode[kml.Folder](f.Encode())
	if err != nil {
		t.Fatalf("re-decode failed: %v", err)
	}
	if !reflect.DeepEqual(f, back) {
		t.Fatalf("round trip mismatch")
	}
}

func TestFolder_MalformedNestedFeaturePropagates(t *testing.T) {
	// The nested placemark is recognized (it has a geometry child) but its
	// geometry is malformed, which must fail the folder.
	el := parse(t, `<Folder>
		<Placemark><Point></Point></Placemark>
	</Folder>`)

	_, err := kml.Decode[kml.Folder](el)
	if err == nil {
		t.Fatalf("expected malformed nested feature to fail the folder")
	}
	iss, _ := kml.AsIssues(err)
	if iss[0].Path != "/Folder/Placemark/Point/coordinates" {
		t.Fatalf("wrong issue path: %q", iss[0].Path)
	}
}

func TestDocument_StylesAndFeatures(t *testing.T) {
	el := parse(t, `<Document id="doc-1">
		<name>Tour</name>
		<Style id="a"><LineStyle><width>2.0</width></LineStyle></Style>
		<Style id="b"><PolyStyle><fill>0</fill></PolyStyle></Style>
		<Placemark><styleUrl>#a</styleUrl><Point><coordinates>1,1</coordinates></Point></Placemark>
	</Document>`)

	d, err := kml.Decode[kml.Document](el)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Styles) != 2 || d.Styles[0].ID != "a" || d.Styles[1].ID != "b" {
		t.Fatalf("wrong styles: %+v", d.Styles)
	}
	if len(d.Features) != 1 {
		t.Fatalf("expected one feature, got %d", len(d.Features))
	}

	back, err := kml.Decode[kml.Document](d.Encode())
	if err != nil {
		t.Fatalf("re-decode failed: %v", err)
	}
	if !reflect.DeepEqual(d, back) {
		t.Fatalf("round trip mismatch")
	}
}
