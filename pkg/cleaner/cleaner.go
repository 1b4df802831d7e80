package cleaner

import (
	"fmt"
	"runtime"
	"time"

	gklog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/lethe-etl/lethe/pkg/cleaner/record"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/lo"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/atomic"
)

// DefaultVersion is stamped on every clean record unless the config
// overrides it.
const DefaultVersion = "1.0.0"

type Config struct {
	Workers int    `yaml:"workers"`
	Version string `yaml:"version"`
}

// Cleaner applies the fixed rule sequence to a batch of raw order rows:
// dedup, normalization, date parsing, validation, casting/derivation,
// audit stamping. It holds no state between runs; two runs over the same
// input with the same clock yield identical output.
type Cleaner struct {
	cfg     Config
	log     gklog.Logger
	metrics *metrics

	now func() time.Time
}

func New(cfg Config, reg prometheus.Registerer, log gklog.Logger) *Cleaner {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	if cfg.Version == "" {
		cfg.Version = DefaultVersion
	}

	return &Cleaner{
		cfg:     cfg,
		log:     gklog.With(log, "component", "cleaner"),
		metrics: newMetrics(reg),
		now:     time.Now,
	}
}

// Run cleans a batch. Deduplication sees the whole collection; every
// following rule is a pure per-record function, so rows are processed
// independently on a bounded worker pool. Output keeps the input order of
// the deduplicated collection.
func (c *Cleaner) Run(recs []record.Raw) ([]record.Clean, *Report) {
	startedAt := c.now()

	uniq, removed := deduplicate(recs)
	if removed > 0 {
		level.Info(c.log).Log("msg", fmt.Sprintf("removed %d duplicate records", removed))
	}

	dropped := map[string]*atomic.Int64{
		ReasonMissingMandatory: atomic.NewInt64(0),
		ReasonInvalidEmail:     atomic.NewInt64(0),
		ReasonInvalidQuantity:  atomic.NewInt64(0),
		ReasonInvalidUnitPrice: atomic.NewInt64(0),
	}

	results := make([]*record.Clean, len(uniq))

	workers := pool.New().WithMaxGoroutines(c.cfg.Workers)
	for i, rec := range uniq {
		i, rec := i, rec
		workers.Go(func() {
			r := normalize(rec)
			r = parseDate(r)

			if reason, ok := validate(r); !ok {
				dropped[reason].Inc()
				return
			}

			clean := stamp(castAndDerive(r), startedAt, c.cfg.Version)
			results[i] = &clean
		})
	}
	workers.Wait()

	out := lo.FilterMap(results, func(item *record.Clean, _ int) (record.Clean, bool) {
		if item == nil {
			return record.Clean{}, false
		}
		return *item, true
	})

	report := &Report{
		StartedAt:         startedAt,
		Version:           c.cfg.Version,
		RawCount:          len(recs),
		UniqueCount:       len(uniq),
		CleanCount:        len(out),
		DuplicatesRemoved: removed,
		Dropped:           make(map[string]int, len(dropped)),
	}
	for reason, n := range dropped {
		report.Dropped[reason] = int(n.Load())
	}

	c.observe(report)

	return out, report
}

func (c *Cleaner) observe(report *Report) {
	c.metrics.recordsIn.Add(float64(report.RawCount))
	c.metrics.recordsOut.Add(float64(report.CleanCount))
	c.metrics.duplicatesRemoved.Add(float64(report.DuplicatesRemoved))
	for reason, n := range report.Dropped {
		c.metrics.recordsDropped.WithLabelValues(reason).Add(float64(n))
	}

	level.Info(c.log).Log(
		"msg", "cleaning finished",
		"raw", report.RawCount,
		"duplicates", report.DuplicatesRemoved,
		"dropped", report.DroppedTotal(),
		"clean", report.CleanCount,
	)
}
