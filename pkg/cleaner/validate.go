package cleaner

import (
	"regexp"
	"strconv"

	"github.com/lethe-etl/lethe/pkg/cleaner/record"
	"github.com/spf13/cast"
)

// Drop reasons, one counted per dropped row.
const (
	ReasonMissingMandatory = "missing_mandatory"
	ReasonInvalidEmail     = "invalid_email"
	ReasonInvalidQuantity  = "invalid_quantity"
	ReasonInvalidUnitPrice = "invalid_unit_price"
)

const maxQuantity = 10000

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

var mandatoryFields = []string{
	record.FieldOrderID,
	record.FieldCustomerName,
	record.FieldProduct,
	record.FieldCountry,
	record.FieldOrderDate,
}

// validate decides whether a normalized, date-parsed row survives.
// Checks run in a fixed order and the first failure names the drop
// reason. A row is never repaired: a cast failure counts the same as an
// absent value.
func validate(r record.Raw) (reason string, ok bool) {
	for _, f := range mandatoryFields {
		if r[f] == "" {
			return ReasonMissingMandatory, false
		}
	}

	if email, present := r[record.FieldEmail]; present {
		if !emailRegexp.MatchString(email) {
			return ReasonInvalidEmail, false
		}
	}

	// Quantity is parsed as decimal only: the upstream export writes plain
	// digits, and a leading zero must not flip the base.
	quantity, err := strconv.ParseInt(r[record.FieldQuantity], 10, 64)
	if err != nil || quantity <= 0 || quantity > maxQuantity {
		return ReasonInvalidQuantity, false
	}

	unitPrice, err := cast.ToFloat64E(r[record.FieldUnitPrice])
	if err != nil || unitPrice <= 0 {
		return ReasonInvalidUnitPrice, false
	}

	return "", true
}
