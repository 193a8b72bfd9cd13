// internal/domain/common/identity.go
package common

import "strings"

// Identity is the opaque principal that created a cart.
// Comparison is by value; the store never inspects its contents.
type Identity string

// NormalizeIdentity trims surrounding whitespace.
func NormalizeIdentity(raw string) Identity {
	return Identity(strings.TrimSpace(raw))
}

// IsZero reports whether the identity is empty.
func (i Identity) IsZero() bool {
	return strings.TrimSpace(string(i)) == ""
}
