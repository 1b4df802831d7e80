package cleaner

import "time"

// Report describes one run of the cleaner: how many records came in, how
// many survived, and where the rest went. Dropped records are information
// loss by design; the report is the only trace they leave.
type Report struct {
	StartedAt         time.Time
	Version           string
	RawCount          int
	UniqueCount       int
	CleanCount        int
	DuplicatesRemoved int
	Dropped           map[string]int
}

// DroppedTotal returns the number of unique records excluded by
// validation rules.
func (r *Report) DroppedTotal() int {
	total := 0
	for _, n := range r.Dropped {
		total += n
	}
	return total
}
