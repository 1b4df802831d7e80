package cleaner

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	recordsIn         prometheus.Counter
	recordsOut        prometheus.Counter
	duplicatesRemoved prometheus.Counter
	recordsDropped    *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	reg = prometheus.WrapRegistererWithPrefix("lethe_", reg)

	return &metrics{
		recordsIn: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "records_in_total",
			Help: "Raw records handed to the cleaner.",
		}),
		recordsOut: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "records_out_total",
			Help: "Clean records produced by the cleaner.",
		}),
		duplicatesRemoved: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "duplicate_records_total",
			Help: "Exact-duplicate records collapsed during deduplication.",
		}),
		recordsDropped: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "records_dropped_total",
			Help: "Records excluded by a validation rule.",
		}, []string{"reason"}),
	}
}
