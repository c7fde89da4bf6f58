package kml_test

import (
	"testing"

	kml "github.com/gokml/kml"
)

func TestDecode_TagMismatch(t *testing.T) {
	// A node with LineStyle's shape but the wrong tag must fail before any
	// parsing, never silently succeed.
	el := parse(t, `<PolyStyle><width>2.0</width></PolyStyle>`)

	_, err := kml.Decode[kml.LineStyle](el)
	if err == nil {
		t.Fatalf("expected tag mismatch error")
	}
	iss, ok := kml.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues error, got %v", err)
	}
	if iss[0].Code != kml.CodeTagMismatch {
		t.Fatalf("expected tag_mismatch, got %v", iss)
	}
	if iss[0].Params["expected"] != "LineStyle" || iss[0].Params["actual"] != "PolyStyle" {
		t.Fatalf("expected both tags in params, got %v", iss[0].Params)
	}
}

func TestDecode_IssuePathsAreRootedAtElement(t *testing.T) {
	// A failure three levels down carries the element path out.
	el := parse(t, `<Placemark><Point></Point></Placemark>`)

	_, err := kml.Decode[kml.Placemark](el)
	if err == nil {
		t.Fatalf("expected malformed geometry child to fail the placemark")
	}
	iss, _ := kml.AsIssues(err)
	if iss[0].Path != "/Placemark/Point/coordinates" {
		t.Fatalf("wrong issue path: %q", iss[0].Path)
	}
}

func TestTagOf(t *testing.T) {
	if got := kml.TagOf[kml.Placemark](); got != "Placemark" {
		t.Fatalf("TagOf[Placemark] = %q", got)
	}
	if got := kml.TagOf[kml.LineStyle](); got != "LineStyle" {
		t.Fatalf("TagOf[LineStyle] = %q", got)
	}
}

func TestEncode_NoIDAttributeWhenAbsent(t *testing.T) {
	pm := &kml.Placemark{Name: "x"}
	el := pm.Encode()
	if a := el.SelectAttr("id"); a != nil {
		t.Fatalf("expected no id attribute, got %q", a.Value)
	}

	pm.ID = "pm-1"
	el = pm.Encode()
	if got := el.SelectAttrValue("id", ""); got != "pm-1" {
		t.Fatalf("expected id attribute, got %q", got)
	}
}
