package sink

import (
	"context"

	"github.com/go-kit/log"
	"github.com/lethe-etl/lethe/pkg/cleaner/record"
	"github.com/pkg/errors"
)

type Config struct {
	Type string `yaml:"type"`

	FS    FSConfig    `yaml:"fs"`
	Minio MinioConfig `yaml:"minio"`
}

// Writer persists the final clean record collection, partitioned by the
// status field, overwriting any previous output at the target location.
type Writer interface {
	Write(ctx context.Context, recs []record.Clean) error
}

func NewWriter(cfg Config, output string, log log.Logger) (Writer, error) {
	switch cfg.Type {
	case "fs":
		return NewFSWriter(cfg.FS, output, log), nil
	case "minio":
		return NewMinioWriter(cfg.Minio, output, log)
	default:
		return nil, errors.New("invalid sink type")
	}
}
