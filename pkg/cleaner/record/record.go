package record

import "strings"

// Field names of the upstream order export. The set is fixed: the source
// reads whatever columns the header declares, but the cleaning rules only
// ever look at these.
const (
	FieldOrderID      = "order_id"
	FieldCustomerName = "customer_name"
	FieldEmail        = "email"
	FieldCountry      = "country"
	FieldStatus       = "status"
	FieldProduct      = "product"
	FieldOrderDate    = "order_date"
	FieldQuantity     = "quantity"
	FieldUnitPrice    = "unit_price"
)

// Fields lists all known field names in canonical order.
var Fields = []string{
	FieldOrderID,
	FieldCustomerName,
	FieldEmail,
	FieldCountry,
	FieldStatus,
	FieldProduct,
	FieldOrderDate,
	FieldQuantity,
	FieldUnitPrice,
}

// Raw is one order row as read from the export: field name to raw text.
// A missing key means the value is absent, which is distinct from a
// present empty string. Stages never mutate a Raw in place.
type Raw map[string]string

// Clone returns a copy of r.
func (r Raw) Clone() Raw {
	out := make(Raw, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Key returns a stable identity string covering every field and its
// presence, so byte-identical rows (and only those) collide.
func (r Raw) Key() string {
	var sb strings.Builder
	for _, f := range Fields {
		v, ok := r[f]
		if ok {
			sb.WriteString("1")
			sb.WriteString(v)
		} else {
			sb.WriteString("0")
		}
		sb.WriteString("\x1f")
	}
	return sb.String()
}

// Clean is a fully validated, typed order record ready for the sink.
type Clean struct {
	OrderID         string  `parquet:"order_id"`
	CustomerName    string  `parquet:"customer_name"`
	Email           *string `parquet:"email,optional"`
	Country         string  `parquet:"country"`
	Status          string  `parquet:"status"`
	Product         string  `parquet:"product"`
	OrderDate       string  `parquet:"order_date"`
	Quantity        int64   `parquet:"quantity"`
	UnitPrice       float64 `parquet:"unit_price"`
	OrderTotal      float64 `parquet:"order_total"`
	CleanedAt       string  `parquet:"cleaned_at"`
	PipelineVersion string  `parquet:"pipeline_version"`
}
