package ledger

import (
	"strings"
	"time"
)

// Filter is a compound predicate over a transaction list. All set
// predicates must match (AND semantics), unset predicates impose no
// constraint.
type Filter struct {
	Sector     *Sector    // Exact sector match
	SearchText string     // Case-insensitive substring match on the label
	ExactDate  *time.Time // Calendar-day match, local time
}

// Apply returns the subsequence of transactions matching all set
// predicates. The input is never mutated and the relative order is
// preserved.
func (f Filter) Apply(transactions []Transaction) []Transaction {
	matched := make([]Transaction, 0)

	for _, t := range transactions {
		if f.Matches(t) {
			matched = append(matched, t)
		}
	}

	return matched
}

// Matches reports whether a single transaction passes all set
// predicates.
func (f Filter) Matches(t Transaction) bool {
	if f.Sector != nil && t.Sector != *f.Sector {
		return false
	}

	if f.SearchText != "" && !strings.Contains(strings.ToLower(t.Label), strings.ToLower(f.SearchText)) {
		return false
	}

	if f.ExactDate != nil && !SameDay(t.Timestamp, *f.ExactDate) {
		return false
	}

	return true
}
