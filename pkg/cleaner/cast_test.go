package cleaner

import (
	"testing"

	"github.com/lethe-etl/lethe/pkg/cleaner/record"
	"github.com/stretchr/testify/assert"
)

type totalTest struct {
	quantity  string
	unitPrice string
	total     float64
}

var totalTests = []totalTest{
	{"3", "9.995", 29.99},
	{"2", "10", 20},
	{"7", "0.07", 0.49},
	{"10000", "0.01", 100},
	// leading zero reads as decimal ten, never octal
	{"010", "2.5", 25},
}

func TestCastAndDeriveTotal(t *testing.T) {
	for _, v := range totalTests {
		r := validRow()
		r[record.FieldQuantity] = v.quantity
		r[record.FieldUnitPrice] = v.unitPrice

		c := castAndDerive(r)

		assert.Equal(t, v.total, c.OrderTotal, "quantity %s unit_price %s", v.quantity, v.unitPrice)
	}
}

func TestCastAndDeriveTypes(t *testing.T) {
	c := castAndDerive(validRow())

	assert.Equal(t, "A-1", c.OrderID)
	assert.Equal(t, "John Doe", c.CustomerName)
	assert.Equal(t, "France", c.Country)
	assert.Equal(t, "shipped", c.Status)
	assert.Equal(t, "Widget", c.Product)
	assert.Equal(t, "2024-01-15", c.OrderDate)
	assert.Equal(t, int64(3), c.Quantity)
	assert.Equal(t, 9.99, c.UnitPrice)
	assert.Nil(t, c.Email)
}

func TestCastAndDeriveOptionalEmail(t *testing.T) {
	r := validRow()
	r[record.FieldEmail] = "a@b.co"

	c := castAndDerive(r)

	if assert.NotNil(t, c.Email) {
		assert.Equal(t, "a@b.co", *c.Email)
	}
}
