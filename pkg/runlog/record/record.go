package record

import (
	"time"

	"github.com/lethe-etl/lethe/pkg/cleaner"
)

// Record is the audit row persisted for one pipeline run: what came in,
// what survived, and per-rule drop counts.
type Record struct {
	Name              string
	Version           string
	StartedAt         time.Time
	RawCount          int
	CleanCount        int
	DuplicatesRemoved int
	DroppedMandatory  int
	DroppedEmail      int
	DroppedQuantity   int
	DroppedUnitPrice  int
}

func New(name string, report *cleaner.Report) *Record {
	return &Record{
		Name:              name,
		Version:           report.Version,
		StartedAt:         report.StartedAt,
		RawCount:          report.RawCount,
		CleanCount:        report.CleanCount,
		DuplicatesRemoved: report.DuplicatesRemoved,
		DroppedMandatory:  report.Dropped[cleaner.ReasonMissingMandatory],
		DroppedEmail:      report.Dropped[cleaner.ReasonInvalidEmail],
		DroppedQuantity:   report.Dropped[cleaner.ReasonInvalidQuantity],
		DroppedUnitPrice:  report.Dropped[cleaner.ReasonInvalidUnitPrice],
	}
}
