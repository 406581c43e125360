package entities

import "time"

// HistoryEntry is one audit record on a workflow entity.
//
// History is append-only and kept oldest-first; entries are never reordered,
// edited or deleted once written. Every status transition appends exactly one
// entry atomically with the status change.
type HistoryEntry struct {
	Date    time.Time `json:"date"`
	Action  string    `json:"action"`
	Actor   string    `json:"actor"`
	Details string    `json:"details,omitempty"`
}

func cloneHistory(in []HistoryEntry) []HistoryEntry {
	if in == nil {
		return nil
	}
	out := make([]HistoryEntry, len(in))
	copy(out, in)
	return out
}
