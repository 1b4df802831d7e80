package cleaner

import (
	"math"
	"strconv"

	"github.com/lethe-etl/lethe/pkg/cleaner/record"
	"github.com/spf13/cast"
)

// castAndDerive converts a validated row into its typed form and computes
// order_total. Casts cannot fail here: validate already proved them.
// Quantity is decimal only, same as validate.
// order_total rounds half-up to 2 decimal places.
func castAndDerive(r record.Raw) record.Clean {
	quantity, _ := strconv.ParseInt(r[record.FieldQuantity], 10, 64)
	unitPrice := cast.ToFloat64(r[record.FieldUnitPrice])

	c := record.Clean{
		OrderID:      r[record.FieldOrderID],
		CustomerName: r[record.FieldCustomerName],
		Country:      r[record.FieldCountry],
		Status:       r[record.FieldStatus],
		Product:      r[record.FieldProduct],
		OrderDate:    r[record.FieldOrderDate],
		Quantity:     quantity,
		UnitPrice:    unitPrice,
		OrderTotal:   round2(float64(quantity) * unitPrice),
	}

	if email, ok := r[record.FieldEmail]; ok {
		c.Email = &email
	}

	return c
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
