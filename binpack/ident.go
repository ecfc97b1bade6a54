package binpack

import (
	"fmt"
	"go/token"
	"strings"
	"unicode"
)

// SanitizeIdent converts raw into a valid identifier.
//
// Any character that is not an ASCII letter, digit, or underscore is replaced
// with an underscore, a leading digit gets an underscore prepended, an empty
// result becomes "_", and Go keywords get a trailing underscore.
func SanitizeIdent(raw string) string {
	var sb strings.Builder
	for i, r := range raw {
		if i == 0 && '0' <= r && r <= '9' {
			sb.WriteByte('_')
		}
		if r == '_' || r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('_')
		}
	}
	s := sb.String()
	switch {
	case s == "":
		return "_"
	case token.IsKeyword(s):
		return s + "_"
	}
	return s
}

// ExportIdent returns the exported CamelCase form of the sanitized raw name.
//
// A leading underscore becomes 'X', an underscore followed by a lowercase
// letter is dropped and the letter upper-cased, and the first letter is
// upper-cased:
//
//	account_balance -> AccountBalance
//	3d_rotation     -> X3dRotation
//	type            -> Type_
func ExportIdent(raw string) string {
	s := SanitizeIdent(raw)
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case i == 0 && c == '_':
			sb.WriteByte('X')
		case i == 0 && isLower(c):
			sb.WriteByte(c - 'a' + 'A')
		case c == '_' && i+1 < len(s) && isLower(s[i+1]):
			i++
			sb.WriteByte(s[i] - 'a' + 'A')
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

func isLower(c byte) bool {
	return 'a' <= c && c <= 'z'
}

// Namespace hands out exported identifiers for raw names within one scope,
// failing when two distinct raw names map to the same identifier.
type Namespace struct {
	scope string
	known map[string]string
}

// NewNamespace creates a namespace. Reserved identifiers are treated as
// already taken.
func NewNamespace(scope string, reserved ...string) *Namespace {
	ns := &Namespace{
		scope: scope,
		known: make(map[string]string, len(reserved)),
	}
	for _, r := range reserved {
		ns.known[r] = ""
	}
	return ns
}

// Ident returns the exported identifier for raw.
func (ns *Namespace) Ident(raw string) (string, error) {
	id := ExportIdent(raw)
	prev, ok := ns.known[id]
	switch {
	case ok && prev == "":
		return "", fmt.Errorf("%s: %q maps to reserved identifier %s", ns.scope, raw, id)
	case ok && prev != raw:
		return "", fmt.Errorf("%s: %q and %q both map to identifier %s", ns.scope, prev, raw, id)
	}
	ns.known[id] = raw
	return id, nil
}
