// Package entity canonicalizes free-form tokens into logic-program atoms.
package entity

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/cognicore/acelog/pkg/acelog/internalerr"
)

var separatorRuns = regexp.MustCompile(`[\s\-]+`)

// Normalize canonicalizes a token into a valid atom: lowercase, with runs of
// whitespace and hyphens collapsed to a single underscore. It is pure and
// idempotent: Normalize(Normalize(s)) == Normalize(s).
//
// Returns internalerr.ErrEmptyNormalization when nothing survives
// normalization; the caller treats that as a translation failure for the
// enclosing statement.
func Normalize(token string) (string, error) {
	atom := strings.ToLower(strings.TrimSpace(token))
	atom = separatorRuns.ReplaceAllString(atom, "_")

	if atom == "" {
		return "", internalerr.ErrEmptyNormalization
	}

	// ToLower already folds ASCII; this covers the odd non-ASCII first rune.
	if r := []rune(atom); unicode.IsUpper(r[0]) {
		r[0] = unicode.ToLower(r[0])
		atom = string(r)
	}

	return atom, nil
}

// MustNormalize is Normalize for inputs known to be non-empty, such as
// literals from a matched template. It panics on failure.
func MustNormalize(token string) string {
	atom, err := Normalize(token)
	if err != nil {
		panic("entity: " + err.Error() + ": " + token)
	}
	return atom
}
