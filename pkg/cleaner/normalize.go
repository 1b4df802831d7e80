package cleaner

import (
	"strings"
	"unicode"

	"github.com/lethe-etl/lethe/pkg/cleaner/record"
)

const nullSentinel = "NULL"

// normalize rewrites every field of a row: trims surrounding whitespace,
// collapses the literal "NULL"/"null" sentinel to true absence, and
// applies per-field casing (title case for customer_name/country, lower
// case for status/email). Never drops a row.
func normalize(r record.Raw) record.Raw {
	out := make(record.Raw, len(r))
	for f, v := range r {
		v = strings.TrimSpace(v)
		if strings.EqualFold(v, nullSentinel) {
			continue
		}

		switch f {
		case record.FieldCustomerName, record.FieldCountry:
			v = titleCase(v)
		case record.FieldStatus, record.FieldEmail:
			v = strings.ToLower(v)
		}

		out[f] = v
	}

	return out
}

// titleCase upper-cases the first letter of every whitespace-separated
// token and lower-cases the rest. Only whitespace starts a new token, so
// "anne-marie" becomes "Anne-marie", not "Anne-Marie". Interior
// whitespace is kept as is.
func titleCase(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	boundary := true
	for _, c := range s {
		switch {
		case unicode.IsSpace(c):
			boundary = true
		case boundary:
			c = unicode.ToUpper(c)
			boundary = false
		default:
			c = unicode.ToLower(c)
		}
		sb.WriteRune(c)
	}

	return sb.String()
}
