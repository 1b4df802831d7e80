package cleaner

import (
	"testing"

	"github.com/lethe-etl/lethe/pkg/cleaner/record"
	"github.com/stretchr/testify/assert"
)

func TestDeduplicate(t *testing.T) {
	dup := record.Raw{record.FieldOrderID: "A-1", record.FieldProduct: "Widget"}
	other := record.Raw{record.FieldOrderID: "A-2", record.FieldProduct: "Widget"}

	recs := []record.Raw{dup.Clone(), other, dup.Clone(), dup.Clone()}
	uniq, removed := deduplicate(recs)

	assert.Len(t, uniq, 2)
	assert.Equal(t, 2, removed)
}

func TestDeduplicateDistinguishesAbsentFromEmpty(t *testing.T) {
	withEmpty := record.Raw{record.FieldOrderID: "A-1", record.FieldEmail: ""}
	withAbsent := record.Raw{record.FieldOrderID: "A-1"}

	uniq, removed := deduplicate([]record.Raw{withEmpty, withAbsent})

	assert.Len(t, uniq, 2)
	assert.Equal(t, 0, removed)
}

func TestDeduplicateEmptyInput(t *testing.T) {
	uniq, removed := deduplicate(nil)

	assert.Empty(t, uniq)
	assert.Equal(t, 0, removed)
}
