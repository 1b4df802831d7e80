package cleaner

import (
	"testing"

	"github.com/lethe-etl/lethe/pkg/cleaner/record"
	"github.com/stretchr/testify/assert"
)

type dateTest struct {
	in     string
	out    string
	parsed bool
}

var dateTests = []dateTest{
	{"2024-01-15", "2024-01-15", true},
	{"15/01/2024", "2024-01-15", true},
	{"2024/01/23", "2024-01-23", true},
	{"Jan 18 2024", "2024-01-18", true},
	{"January 18 2024", "2024-01-18", true},
	{"18-01-2024", "2024-01-18", true},
	{"  2024-01-15  ", "2024-01-15", true},
	{"31/02/2024", "", false},
	{"not-a-date", "", false},
	{"", "", false},
}

func TestParseDate(t *testing.T) {
	for _, v := range dateTests {
		r := record.Raw{record.FieldOrderDate: v.in}
		out := parseDate(r)

		got, ok := out[record.FieldOrderDate]
		assert.Equal(t, v.parsed, ok, "input %q", v.in)
		assert.Equal(t, v.out, got, "input %q", v.in)
	}
}

func TestParseDateAbsentInput(t *testing.T) {
	out := parseDate(record.Raw{record.FieldOrderID: "1"})

	_, ok := out[record.FieldOrderDate]
	assert.False(t, ok)
}

func TestParseDateDoesNotMutateInput(t *testing.T) {
	in := record.Raw{record.FieldOrderDate: "15/01/2024"}
	_ = parseDate(in)

	assert.Equal(t, "15/01/2024", in[record.FieldOrderDate])
}
