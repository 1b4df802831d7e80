package pg

import (
	"context"

	"github.com/go-kit/log"
	"github.com/jackc/pgx/v5"
	"github.com/lethe-etl/lethe/pkg/runlog/record"
	"github.com/pkg/errors"
)

type Config struct {
	Conn string `yaml:"conn"`
}

type Store struct {
	cfg  Config
	log  log.Logger
	conn *pgx.Conn
}

func NewRunStore(ctx context.Context, cfg Config, log log.Logger) (*Store, error) {
	conn, err := pgx.Connect(ctx, cfg.Conn)
	if err != nil {
		return nil, errors.Wrap(err, "pg run store init conn")
	}

	q := `create table if not exists public.run_log
	(name text not null, version text not null, started_at timestamptz not null,
	raw_count integer not null, clean_count integer not null, duplicates_removed integer not null,
	dropped_mandatory integer not null, dropped_email integer not null,
	dropped_quantity integer not null, dropped_unit_price integer not null);`
	if _, err := conn.Exec(ctx, q); err != nil {
		return nil, errors.Wrap(err, "pg run store init run_log table")
	}

	return &Store{
		cfg:  cfg,
		log:  log,
		conn: conn,
	}, nil
}

func (s *Store) SaveRun(ctx context.Context, rec *record.Record) error {
	q := `insert into run_log(name, version, started_at, raw_count, clean_count, duplicates_removed,
	dropped_mandatory, dropped_email, dropped_quantity, dropped_unit_price)
	values($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`

	_, err := s.conn.Exec(ctx, q,
		rec.Name, rec.Version, rec.StartedAt,
		rec.RawCount, rec.CleanCount, rec.DuplicatesRemoved,
		rec.DroppedMandatory, rec.DroppedEmail, rec.DroppedQuantity, rec.DroppedUnitPrice)
	if err != nil {
		return errors.Wrap(err, "pg run store insert run")
	}

	return nil
}

func (s *Store) Dispose(ctx context.Context) error {
	if err := s.conn.Close(ctx); err != nil {
		return errors.Wrap(err, "pg run store close connection")
	}

	return nil
}
