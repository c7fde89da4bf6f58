package kml

import "github.com/beevik/etree"

// Element is the contract every typed KML fragment implements: a constant
// element tag and an encoder producing a fresh XML element. Decoding is the
// generic Decode function, which pairs the tag with a fallible constructor.
type Element interface {
	// Tag reports the KML element name this type decodes from and encodes to.
	// It is a constant per concrete type.
	Tag() string
	// Encode builds a new XML element representing the value. The element is
	// freshly allocated and holds no reference to any prior tree. Encoding
	// cannot fail: values only hold data that was validated at construction.
	Encode() *etree.Element
}

// ElementPtr constrains PT to a pointer to a concrete element type that can
// populate itself from a verified XML element.
type ElementPtr[T any] interface {
	*T
	Element
	// decode fills the receiver from el. The caller has already verified
	// el.Tag; implementations must not re-check it.
	decode(el *etree.Element) error
}

// Decode constructs a T from el. It first verifies that el's tag matches the
// type's declared tag and fails with a tag_mismatch issue when it does not; a
// node with the wrong tag is never partially parsed. Issues from the body are
// reported with paths rooted at the element's tag.
func Decode[T any, PT ElementPtr[T]](el *etree.Element) (PT, error) {
	v := PT(new(T))
	tag := v.Tag()
	if el.Tag != tag {
		return nil, tagMismatch(tag, el.Tag)
	}
	if err := v.decode(el); err != nil {
		return nil, prefixIssues(err, tag)
	}
	return v, nil
}

// TagOf reports the declared tag of the concrete element type T without
// constructing a value.
func TagOf[T any, PT ElementPtr[T]]() string {
	return PT(new(T)).Tag()
}

// encodeID sets the id attribute on el only when id is non-empty; an absent
// identifier never produces an empty attribute.
func encodeID(el *etree.Element, id string) {
	if id != "" {
		el.CreateAttr("id", id)
	}
}
