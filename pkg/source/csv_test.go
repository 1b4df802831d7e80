package source

import (
	"strings"
	"testing"

	"github.com/lethe-etl/lethe/pkg/cleaner/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCSV(t *testing.T) {
	in := strings.Join([]string{
		"order_id,customer_name,email,quantity",
		"A-1,John Doe,a@b.co,3",
		"A-2, jane ,,10",
	}, "\n")

	recs, err := decodeCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, "A-1", recs[0][record.FieldOrderID])
	assert.Equal(t, "John Doe", recs[0][record.FieldCustomerName])
	assert.Equal(t, "a@b.co", recs[0][record.FieldEmail])
	assert.Equal(t, "3", recs[0][record.FieldQuantity])

	// Raw values are untouched; cleaning trims later.
	assert.Equal(t, " jane ", recs[1][record.FieldCustomerName])

	// An empty cell is an absent value.
	_, ok := recs[1][record.FieldEmail]
	assert.False(t, ok)
}

func TestDecodeCSVNoHeader(t *testing.T) {
	_, err := decodeCSV(strings.NewReader(""))

	assert.Error(t, err)
}

func TestDecodeCSVNoRows(t *testing.T) {
	recs, err := decodeCSV(strings.NewReader("order_id,product\n"))

	require.NoError(t, err)
	assert.Empty(t, recs)
}
