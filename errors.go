package kml

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gokml/kml/i18n"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeTagMismatch   = "tag_mismatch"
	CodeChildNotFound = "child_not_found"
	CodeInvalidValue  = "invalid_value"
)

// Issue represents a single decode failure.
type Issue struct {
	Path    string // Slash-joined element names (for example: /Document/Placemark/Point).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error (strconv failure, etc.).
	// Params carries structured parameters (e.g., {"expected":"Point","actual":"Folder"})
	// for i18n and observability.
	Params map[string]string
}

// Issues is a collection of decode errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. tag_mismatch at /Placemark
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// HasCode reports whether err carries at least one Issue with the given code.
func HasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

func tagMismatch(expected, actual string) Issues {
	p := map[string]string{"expected": expected, "actual": actual}
	return Issues{Issue{
		Path:    "/" + expected,
		Code:    CodeTagMismatch,
		Message: i18n.T(CodeTagMismatch, p),
		Params:  p,
	}}
}

func childNotFound(name string) Issues {
	p := map[string]string{"name": name}
	return Issues{Issue{
		Path:    "/" + name,
		Code:    CodeChildNotFound,
		Message: i18n.T(CodeChildNotFound, p),
		Params:  p,
	}}
}

func invalidValue(name, got string, cause error) Issues {
	p := map[string]string{"name": name, "got": got}
	return Issues{Issue{
		Path:    "/" + name,
		Code:    CodeInvalidValue,
		Message: i18n.T(CodeInvalidValue, p),
		Cause:   cause,
		Params:  p,
	}}
}

// prefixIssues rebases every issue path under /seg as the error propagates out
// of a nested decode. Non-Issues errors pass through unchanged.
func prefixIssues(err error, seg string) error {
	iss, ok := AsIssues(err)
	if !ok {
		return err
	}
	out := make(Issues, len(iss))
	for i, it := range iss {
		p := it.Path
		if p == "/" {
			p = ""
		}
		it.Path = "/" + seg + p
		out[i] = it
	}
	return out
}
