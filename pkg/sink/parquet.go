package sink

import (
	"bytes"
	"sort"

	"github.com/lethe-etl/lethe/pkg/cleaner/record"
	"github.com/parquet-go/parquet-go"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

const partFileName = "part-00000.parquet"

type partition struct {
	status string
	data   []byte
}

func (p partition) objName() string {
	return "status=" + p.status + "/" + partFileName
}

// encodePartitions groups records by status and encodes one Parquet
// object per distinct status value, ordered by status for deterministic
// output.
func encodePartitions(recs []record.Clean) ([]partition, error) {
	groups := lo.GroupBy(recs, func(item record.Clean) string {
		return item.Status
	})

	statuses := lo.Keys(groups)
	sort.Strings(statuses)

	parts := make([]partition, 0, len(statuses))
	for _, status := range statuses {
		data, err := encodeParquet(groups[status])
		if err != nil {
			return nil, errors.Wrapf(err, "encode partition status=%s", status)
		}
		parts = append(parts, partition{status: status, data: data})
	}

	return parts, nil
}

func encodeParquet(recs []record.Clean) ([]byte, error) {
	var buf bytes.Buffer

	w := parquet.NewGenericWriter[record.Clean](&buf)
	if _, err := w.Write(recs); err != nil {
		return nil, errors.Wrap(err, "write parquet rows")
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "close parquet writer")
	}

	return buf.Bytes(), nil
}
