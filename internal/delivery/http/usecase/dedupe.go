package usecase

import "strings"

// Deduplicator decides whether a candidate question text has effectively been
// served before. The strategy is replaceable without touching call sites.
type Deduplicator interface {
	IsDuplicate(candidate string, history []string) bool
}

// PrefixDeduplicator matches on a case-insensitive prefix of fixed length.
// Question texts rarely diverge only in their tail, so a prefix comparison
// catches reworded duplicates from the generator cheaply.
type PrefixDeduplicator struct {
	// Length is the number of leading characters compared. Zero means the
	// whole text must match.
	Length int
}

const defaultDedupePrefixLen = 40

// NewPrefixDeduplicator returns the default strategy.
func NewPrefixDeduplicator() *PrefixDeduplicator {
	return &PrefixDeduplicator{Length: defaultDedupePrefixLen}
}

func (d *PrefixDeduplicator) IsDuplicate(candidate string, history []string) bool {
	key := d.prefix(candidate)
	if key == "" {
		return false
	}
	for _, h := range history {
		if d.prefix(h) == key {
			return true
		}
	}
	return false
}

func (d *PrefixDeduplicator) prefix(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if d.Length <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) > d.Length {
		runes = runes[:d.Length]
	}
	return string(runes)
}
