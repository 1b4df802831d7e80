package cleaner

import (
	"testing"

	"github.com/lethe-etl/lethe/pkg/cleaner/record"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeTrimsAndCases(t *testing.T) {
	in := record.Raw{
		record.FieldOrderID:      "  A-1  ",
		record.FieldCustomerName: "  john  DOE ",
		record.FieldCountry:      "united KINGDOM",
		record.FieldStatus:       " SHIPPED ",
		record.FieldEmail:        " John.Doe@EXAMPLE.COM ",
		record.FieldProduct:      " Widget ",
		record.FieldQuantity:     " 3 ",
	}

	out := normalize(in)

	assert.Equal(t, "A-1", out[record.FieldOrderID])
	assert.Equal(t, "John  Doe", out[record.FieldCustomerName])
	assert.Equal(t, "United Kingdom", out[record.FieldCountry])
	assert.Equal(t, "shipped", out[record.FieldStatus])
	assert.Equal(t, "john.doe@example.com", out[record.FieldEmail])
	assert.Equal(t, "Widget", out[record.FieldProduct])
	assert.Equal(t, "3", out[record.FieldQuantity])
}

func TestNormalizeTitleCasesPerWhitespaceToken(t *testing.T) {
	// Hyphens and apostrophes do not start a new token.
	for in, want := range map[string]string{
		"anne-marie smith": "Anne-marie Smith",
		"o'brien":          "O'brien",
		"MARY ANN":         "Mary Ann",
		"de la cruz":       "De La Cruz",
	} {
		out := normalize(record.Raw{record.FieldCustomerName: in})

		assert.Equal(t, want, out[record.FieldCustomerName], "input %q", in)
	}
}

func TestNormalizeNullSentinel(t *testing.T) {
	for _, sentinel := range []string{"NULL", "null", "Null", "  null  "} {
		out := normalize(record.Raw{record.FieldProduct: sentinel})

		_, ok := out[record.FieldProduct]
		assert.False(t, ok, "sentinel %q should normalize to absence", sentinel)
	}
}

func TestNormalizeKeepsEmptyPresent(t *testing.T) {
	out := normalize(record.Raw{record.FieldOrderID: "   "})

	v, ok := out[record.FieldOrderID]
	assert.True(t, ok)
	assert.Equal(t, "", v)
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	in := record.Raw{record.FieldStatus: " SHIPPED "}
	_ = normalize(in)

	assert.Equal(t, " SHIPPED ", in[record.FieldStatus])
}
