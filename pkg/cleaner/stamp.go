package cleaner

import (
	"time"

	"github.com/lethe-etl/lethe/pkg/cleaner/record"
)

const cleanedAtLayout = "2006-01-02 15:04:05"

// stamp attaches the run-wide audit constants. Every record of one run
// carries the same cleaned_at and pipeline_version values.
func stamp(c record.Clean, startedAt time.Time, version string) record.Clean {
	c.CleanedAt = startedAt.UTC().Format(cleanedAtLayout)
	c.PipelineVersion = version
	return c
}
