package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/lethe-etl/lethe/pkg/cleaner/record"
	"github.com/pkg/errors"
)

type FSConfig struct{}

// FSWriter writes the partitioned dataset under a local directory,
// replacing whatever a previous run left there.
type FSWriter struct {
	cfg    FSConfig
	output string
	log    log.Logger
}

func NewFSWriter(cfg FSConfig, output string, log log.Logger) *FSWriter {
	return &FSWriter{
		cfg:    cfg,
		output: output,
		log:    log,
	}
}

func (w *FSWriter) Write(ctx context.Context, recs []record.Clean) error {
	parts, err := encodePartitions(recs)
	if err != nil {
		return err
	}

	// Full refresh: the previous output is gone before the new one lands.
	if err := os.RemoveAll(w.output); err != nil {
		return errors.Wrap(err, "fs sink remove previous output")
	}

	for _, part := range parts {
		fName := filepath.Join(w.output, part.objName())
		if err := os.MkdirAll(filepath.Dir(fName), 0o755); err != nil {
			return errors.Wrap(err, "fs sink create partition dir")
		}
		if err := os.WriteFile(fName, part.data, 0o644); err != nil {
			return errors.Wrap(err, "fs sink write partition")
		}
	}

	level.Info(w.log).Log("msg", fmt.Sprintf("wrote %d records across %d partitions to %s", len(recs), len(parts), w.output))
	return nil
}
