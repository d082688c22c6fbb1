package entities

import "time"

// CompletionRecord is the durable result of a submitted quiz module.
//
// Total is the question count at submission time. It is stored alongside the
// score for badge display and is not reconciled if the catalog later changes.
type CompletionRecord struct {
	ModuleID    string
	Completed   bool
	Score       int
	Total       int        // 0 when the record predates badge data
	CompletedAt *time.Time // nullable
}

// NewCompletionRecord creates a completed record for moduleID.
func NewCompletionRecord(moduleID string, score, total int) *CompletionRecord {
	now := time.Now()
	return &CompletionRecord{
		ModuleID:    moduleID,
		Completed:   true,
		Score:       score,
		Total:       total,
		CompletedAt: &now,
	}
}
