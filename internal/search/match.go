// Package search provides the deterministic keyword matcher used to answer
// free-text queries against the static FAQ table. It is intentionally small
// and dependency-free, with production-grade ergonomics:
//
//   - No logging in the library (callers decide how/what to log)
//   - Immutable, read-only matcher after construction (safe for concurrent use)
//   - Deterministic results: first matching record in table order wins
//
// Matching is case-insensitive substring containment: a query matches a
// record when the query text contains any of the record's keywords. There is
// no ranking by number of matched keywords; table order is the tie-break.
package search

import (
	"strings"

	"github.com/prabhakardwi/merchant-pos-buddy/internal/domain"
)

// Matcher resolves free text against an FAQ table. Build one per content
// table; construction pre-folds every keyword so Match allocates only for
// case folding the query.
type Matcher struct {
	items    []domain.FAQItem
	keywords [][]string // lower-cased, aligned with items
}

// NewMatcher builds a Matcher over the given FAQ records. Record order is
// significant: the first matching record wins. Records with no usable
// keywords never match.
func NewMatcher(items []domain.FAQItem) *Matcher {
	m := &Matcher{
		items:    make([]domain.FAQItem, len(items)),
		keywords: make([][]string, len(items)),
	}
	copy(m.items, items)
	for i, item := range items {
		kws := make([]string, 0, len(item.Keywords))
		for _, kw := range item.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				kws = append(kws, kw)
			}
		}
		m.keywords[i] = kws
	}
	return m
}

// Match returns the first FAQ record whose keyword set matches the input, or
// (zero, false) when nothing matches. A no-match is a defined fallback path
// for callers, not an error.
func (m *Matcher) Match(input string) (domain.FAQItem, bool) {
	text := strings.ToLower(strings.TrimSpace(input))
	if text == "" {
		return domain.FAQItem{}, false
	}
	for i, kws := range m.keywords {
		for _, kw := range kws {
			if strings.Contains(text, kw) {
				return m.items[i], true
			}
		}
	}
	return domain.FAQItem{}, false
}

// Len returns the number of records in the table.
func (m *Matcher) Len() int { return len(m.items) }
