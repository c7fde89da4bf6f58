package kml_test

import (
	"fmt"
	"strings"
	"testing"

	kml "github.com/gokml/kml"
)

func TestIssues_ErrorSummarizesFirstFew(t *testing.T) {
	iss := kml.Issues{
		{Path: "/a", Code: kml.CodeChildNotFound},
		{Path: "/b", Code: kml.CodeInvalidValue},
		{Path: "/c", Code: kml.CodeTagMismatch},
		{Path: "/d", Code: kml.CodeTagMismatch},
	}
	msg := iss.Error()
	if !strings.Contains(msg, "child_not_found at /a") {
		t.Fatalf("missing first issue: %q", msg)
	}
	if !strings.Contains(msg, "(total 4)") {
		t.Fatalf("missing total: %q", msg)
	}
}

func TestAsIssues_Wrapped(t *testing.T) {
	_, err := kml.Decode[kml.Point](parse(t, `<Point></Point>`))
	wrapped := fmt.Errorf("reading placemark: %w", err)

	iss, ok := kml.AsIssues(wrapped)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected issues through wrapping, got %v", wrapped)
	}
	if !kml.HasCode(wrapped, kml.CodeChildNotFound) {
		t.Fatalf("HasCode should see through wrapping")
	}

	if _, ok := kml.AsIssues(nil); ok {
		t.Fatalf("nil error should not yield issues")
	}
	if kml.HasCode(fmt.Errorf("plain"), kml.CodeChildNotFound) {
		t.Fatalf("plain error has no codes")
	}
}
