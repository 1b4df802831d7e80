package runlog

import (
	"context"
	"fmt"

	"github.com/go-kit/log"
	"github.com/lethe-etl/lethe/pkg/runlog/pg"
	"github.com/lethe-etl/lethe/pkg/runlog/record"
)

type Config struct {
	Store string    `yaml:"store"`
	PG    pg.Config `yaml:"pg"`
}

// Store persists one audit row per pipeline run. An empty store type
// disables run logging.
type Store interface {
	SaveRun(ctx context.Context, rec *record.Record) error
	Dispose(ctx context.Context) error
}

func NewStore(ctx context.Context, cfg Config, log log.Logger) (Store, error) {
	switch cfg.Store {
	case "pg":
		return pg.NewRunStore(ctx, cfg.PG, log)
	case "":
		return noopStore{}, nil
	}

	return nil, fmt.Errorf("invalid store for run log")
}

type noopStore struct{}

func (noopStore) SaveRun(ctx context.Context, rec *record.Record) error { return nil }
func (noopStore) Dispose(ctx context.Context) error                     { return nil }
