package cleaner

import (
	"strings"
	"time"

	"github.com/lethe-etl/lethe/pkg/cleaner/record"
)

const canonicalDateLayout = "2006-01-02"

// dateLayouts are tried in order; the first layout that consumes the
// whole input wins. The order is part of the contract: it decides how
// ambiguous numeric strings are read (the ISO form is tried before the
// day-first forms).
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2006/01/02",
	"Jan 2 2006",
	"January 2 2006",
	"02-01-2006",
}

// parseDate rewrites order_date to the canonical YYYY-MM-DD form, or
// removes it when no accepted layout matches. Impossible calendar dates
// (such as 31/02) match no layout. Unparseable dates are dropped later by
// the mandatory-field check, never guessed.
func parseDate(r record.Raw) record.Raw {
	out := r.Clone()

	raw, ok := out[record.FieldOrderDate]
	if !ok {
		return out
	}

	delete(out, record.FieldOrderDate)
	raw = strings.TrimSpace(raw)

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}

		out[record.FieldOrderDate] = t.Format(canonicalDateLayout)
		break
	}

	return out
}
