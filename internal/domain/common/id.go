// internal/domain/common/id.go
package common

import (
	"strings"

	"github.com/google/uuid"
)

// IsCanonicalID reports whether s is the canonical 36-char hyphenated
// 8-4-4-4-12 hex form of a 128-bit token, case-insensitive.
//
// uuid.Parse alone is too permissive (it also accepts urn: prefixes,
// braces and the 32-char unhyphenated form), so the parsed value is
// compared back against the input.
func IsCanonicalID(s string) bool {
	if len(s) != 36 {
		return false
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.String(), s)
}

// NewID returns a fresh random canonical identifier.
func NewID() string {
	return uuid.NewString()
}
