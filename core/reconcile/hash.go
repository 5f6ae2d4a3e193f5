package reconcile

import (
	"regexp"
	"strings"
)

// hashPattern is the expected shape of a content hash.
var hashPattern = regexp.MustCompile(`^[a-fA-F0-9]{32}$`)

// NormalizeHash trims and case-folds a hash. Every ingestion point goes through it.
func NormalizeHash(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

// ValidHash reports whether h, once trimmed, is exactly 32 hexadecimal characters.
func ValidHash(h string) bool {
	return hashPattern.MatchString(strings.TrimSpace(h))
}

// HashSet is a set of normalized hashes.
type HashSet map[string]struct{}

// NewHashSet creates an empty set.
func NewHashSet() HashSet {
	return make(HashSet)
}

// Add normalizes h and inserts it. It returns false if the hash was already present.
func (s HashSet) Add(h string) bool {
	h = NormalizeHash(h)
	if _, exists := s[h]; exists {
		return false
	}
	s[h] = struct{}{}
	return true
}

// Has reports whether the normalized form of h is in the set.
func (s HashSet) Has(h string) bool {
	_, ok := s[NormalizeHash(h)]
	return ok
}

// Len returns the number of hashes.
func (s HashSet) Len() int {
	return len(s)
}
