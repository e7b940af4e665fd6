package common

import "strings"

// HasAny returns true if s contains any of the substrings (case-insensitive).
func HasAny(s string, subs ...string) bool {
	lower := strings.ToLower(s)
	for _, sub := range subs {
		if strings.Contains(lower, strings.ToLower(sub)) {
			return true
		}
	}
	return false
}

// CanonKey canonicalizes a country name into the key used for artifact files
// and store lookups: lower-cased, trimmed, inner spaces collapsed to underscores.
func CanonKey(country string) string {
	k := strings.ToLower(strings.TrimSpace(country))
	return strings.Join(strings.Fields(k), "_")
}
