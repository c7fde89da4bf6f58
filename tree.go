package kml

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Tree accessor: typed lookup helpers layered on etree's named-child lookup.
//
// The required and optional forms differ deliberately in how they fail, and
// the difference is a behavioral contract, not an implementation detail:
//
//   - Required* helpers propagate both lookup and decode failures.
//   - Optional* single-value helpers absorb every failure into absence: a
//     malformed optional sub-element degrades to "not present" rather than
//     failing the parent.
//   - AllTyped propagates decode failures even though the collection may be
//     empty: a declared repeating element is expected to be well-formed as a
//     whole.
//
// Do not unify these behind one generic "try" helper.

// RequiredChild returns the first child of el named name, or a
// child_not_found issue when it is absent.
func RequiredChild(el *etree.Element, name string) (*etree.Element, error) {
	c := el.SelectElement(name)
	if c == nil {
		return nil, childNotFound(name)
	}
	return c, nil
}

// OptionalChild returns the first child of el named name, or nil when it is
// absent. It never fails.
func OptionalChild(el *etree.Element, name string) *etree.Element {
	return el.SelectElement(name)
}

// RequiredTyped looks up the child named after T's tag and decodes it.
// Failures from either step propagate.
func RequiredTyped[T any, PT ElementPtr[T]](el *etree.Element) (PT, error) {
	c, err := RequiredChild(el, TagOf[T, PT]())
	if err != nil {
		return nil, err
	}
	return Decode[T, PT](c)
}

// OptionalTyped looks up the child named after T's tag and decodes it,
// returning nil when the child is absent or when decoding fails for any
// reason (absorption).
func OptionalTyped[T any, PT ElementPtr[T]](el *etree.Element) PT {
	c := el.SelectElement(TagOf[T, PT]())
	if c == nil {
		return nil
	}
	v, err := Decode[T, PT](c)
	if err != nil {
		return nil
	}
	return v
}

// AllTyped decodes every child of el named after T's tag, in document order.
// A decode failure on any member propagates.
func AllTyped[T any, PT ElementPtr[T]](el *etree.Element) ([]PT, error) {
	kids := el.SelectElements(TagOf[T, PT]())
	if len(kids) == 0 {
		return nil, nil
	}
	out := make([]PT, 0, len(kids))
	for _, c := range kids {
		v, err := Decode[T, PT](c)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// ---- scalar children ----

// requiredText returns the trimmed text content of the named child.
func requiredText(el *etree.Element, name string) (string, error) {
	c, err := RequiredChild(el, name)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(c.Text()), nil
}

// optionalText returns the trimmed text content of the named child, with a
// presence flag. Absence never fails.
func optionalText(el *etree.Element, name string) (string, bool) {
	c := el.SelectElement(name)
	if c == nil {
		return "", false
	}
	return strings.TrimSpace(c.Text()), true
}

// requiredFloat coerces the named child's text to a float64. A missing child
// or unparseable text is a hard failure.
func requiredFloat(el *etree.Element, name string) (float64, error) {
	s, err := requiredText(el, name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, invalidValue(name, s, err)
	}
	return v, nil
}

// optionalFloat coerces the named child's text to a float64, falling back to
// def when the child is absent or its text does not parse.
func optionalFloat(el *etree.Element, name string, def float64) float64 {
	s, ok := optionalText(el, name)
	if !ok {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}

// optionalBool coerces the named child's text to a bool, accepting the KML
// spellings 1/0/true/false, falling back to def on absence or bad text.
func optionalBool(el *etree.Element, name string, def bool) bool {
	s, ok := optionalText(el, name)
	if !ok {
		return def
	}
	switch s {
	case "1", "true":
		return true
	case "0", "false":
		return false
	}
	return def
}

// appendText appends a child named name holding text.
func appendText(el *etree.Element, name, text string) {
	el.CreateElement(name).SetText(text)
}

// appendFloat appends a child holding v. Whole values keep a trailing ".0"
// (<width>1.0</width>, not <width>1</width>), matching common KML writers.
func appendFloat(el *etree.Element, name string, v float64) {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	appendText(el, name, s)
}

// appendBool appends a child holding v as 1 or 0.
func appendBool(el *etree.Element, name string, v bool) {
	if v {
		appendText(el, name, "1")
	} else {
		appendText(el, name, "0")
	}
}
