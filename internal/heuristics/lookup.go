package heuristics

import (
	"strings"

	"github.com/custodia-labs/kmlpser/internal/core/domain"
)

// MatchMode selects how a candidate is compared with an attribute key.
type MatchMode int

const (
	// MatchExact compares the whole key, ignoring case.
	MatchExact MatchMode = iota

	// MatchContains accepts keys containing the candidate, ignoring case.
	MatchContains
)

// Lookup searches attrs for the first candidate that resolves to a
// non-empty value. For each candidate, in rank order, only the first
// matching key in insertion order is considered.
func Lookup(attrs domain.Attributes, mode MatchMode, candidates []string) (string, bool) {
	entries := attrs.Entries()
	for _, candidate := range candidates {
		for _, e := range entries {
			if !matches(mode, e.Key, candidate) {
				continue
			}
			if e.Value != "" {
				return e.Value, true
			}
			break
		}
	}
	return "", false
}

// LookupExact is Lookup with MatchExact.
func LookupExact(attrs domain.Attributes, candidates []string) (string, bool) {
	return Lookup(attrs, MatchExact, candidates)
}

// LookupContains is Lookup with MatchContains.
func LookupContains(attrs domain.Attributes, candidates []string) (string, bool) {
	return Lookup(attrs, MatchContains, candidates)
}

func matches(mode MatchMode, key, candidate string) bool {
	key = strings.ToLower(key)
	if mode == MatchContains {
		return strings.Contains(key, candidate)
	}
	return key == candidate
}
