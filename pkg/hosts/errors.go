// ===== pkg/hosts/errors.go =====
package hosts

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind classifies a parse failure
type Kind int

const (
	KindMalformedIP Kind = iota + 1
	KindMalformedHostname
	KindOpenFailed
	KindReadFailed
	KindBadEncoding
)

var kindTags = map[Kind]string{
	KindMalformedIP:       "malformed ip",
	KindMalformedHostname: "malformed hostname",
	KindOpenFailed:        "failed to open file",
	KindReadFailed:        "error reading file",
	KindBadEncoding:       "bad encoding",
}

// String returns the short human-readable tag for k
func (k Kind) String() string {
	if tag, ok := kindTags[k]; ok {
		return tag
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Sentinels for errors.Is; only the Kind is compared.
var (
	ErrMalformedIP       = &Error{Kind: KindMalformedIP}
	ErrMalformedHostname = &Error{Kind: KindMalformedHostname}
	ErrOpenFailed        = &Error{Kind: KindOpenFailed}
	ErrReadFailed        = &Error{Kind: KindReadFailed}
	ErrBadEncoding       = &Error{Kind: KindBadEncoding}
)

// Error is returned by every parse entry point
type Error struct {
	Kind  Kind
	Line  int    // 1-based physical line, 0 when unknown
	Token string // offending token, if any
	Path  string // file path for file-level failures
	Err   error  // underlying cause
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Path != "" {
		b.WriteString(e.Path)
		b.WriteString(": ")
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	b.WriteString(e.Kind.String())
	if e.Token != "" {
		fmt.Fprintf(&b, " %q", e.Token)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same Kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// atLine returns a copy of err positioned at line n
func atLine(err error, n int) error {
	if e, ok := err.(*Error); ok {
		pos := *e
		pos.Line = n
		return &pos
	}
	return err
}
