package source

import (
	"encoding/csv"
	"io"

	"github.com/lethe-etl/lethe/pkg/cleaner/record"
	"github.com/pkg/errors"
)

// decodeCSV reads one delimited-text file: the header row names the
// fields, every cell is kept as raw text with no type inference. An empty
// cell decodes to an absent value, the way the upstream export writes
// nulls.
func decodeCSV(r io.Reader) ([]record.Raw, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = false

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("csv input has no header row")
		}
		return nil, errors.Wrap(err, "read csv header")
	}

	recs := make([]record.Raw, 0)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "read csv row")
		}

		rec := make(record.Raw, len(header))
		for i, field := range header {
			if i >= len(row) || row[i] == "" {
				continue
			}
			rec[field] = row[i]
		}
		recs = append(recs, rec)
	}

	return recs, nil
}
