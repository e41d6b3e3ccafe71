package domain

import "strings"

// EntryFilter is a sparse query over ledger entries. Nil fields impose no constraint.
// Description matches as a case-insensitive substring; every other field matches exactly.
type EntryFilter struct {
	Description *string      `json:"description,omitempty"`
	Month       *int         `json:"month,omitempty"`
	Year        *int         `json:"year,omitempty"`
	OwnerID     *int64       `json:"ownerID,omitempty"`
	Kind        *EntryKind   `json:"kind,omitempty"`
	Status      *EntryStatus `json:"status,omitempty"`
}

// IsEmpty reports whether the filter constrains nothing.
func (f EntryFilter) IsEmpty() bool {
	return f.Description == nil && f.Month == nil && f.Year == nil &&
		f.OwnerID == nil && f.Kind == nil && f.Status == nil
}

// Matches reports whether every populated field of the filter matches the entry.
func (f EntryFilter) Matches(e LedgerEntry) bool {
	if f.Description != nil &&
		!strings.Contains(strings.ToLower(e.Description), strings.ToLower(*f.Description)) {
		return false
	}
	if f.Month != nil && *f.Month != e.Month {
		return false
	}
	if f.Year != nil && *f.Year != e.Year {
		return false
	}
	if f.OwnerID != nil && *f.OwnerID != e.OwnerID() {
		return false
	}
	if f.Kind != nil && *f.Kind != e.Kind {
		return false
	}
	if f.Status != nil && *f.Status != e.Status {
		return false
	}
	return true
}

// FilterEntries returns the entries accepted by f, preserving input order.
func FilterEntries(entries []LedgerEntry, f EntryFilter) []LedgerEntry {
	matched := make([]LedgerEntry, 0, len(entries))
	for _, e := range entries {
		if f.Matches(e) {
			matched = append(matched, e)
		}
	}
	return matched
}
