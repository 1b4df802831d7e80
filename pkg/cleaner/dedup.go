package cleaner

import (
	"github.com/lethe-etl/lethe/pkg/cleaner/record"
	"github.com/samber/lo"
)

// deduplicate collapses byte-identical rows to a single occurrence,
// keeping the first. Returns the surviving rows and the number removed.
func deduplicate(recs []record.Raw) ([]record.Raw, int) {
	uniq := lo.UniqBy(recs, func(r record.Raw) string {
		return r.Key()
	})

	return uniq, len(recs) - len(uniq)
}
