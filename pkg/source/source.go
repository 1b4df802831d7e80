package source

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
	HTTP  HTTPConfig  `yaml:"http"`
}

// Reader produces the finite raw record collection for one run. A read
// failure is fatal to the run.
type Reader interface {
	Read(ctx context.Context) ([]record.Raw, error)
}

func NewReader(cfg Config, input string, log log.Logger) (Reader, error) {
	switch cfg.Type {
	case "fs":
		return NewFSReader(cfg.FS, input, log), nil
	case "minio":
		return NewMinioReader(cfg.Minio, input, log)
	case "http":
		return NewHTTPReader(cfg.HTTP, input, log), nil
	default:
		return nil, errors.New("invalid source type")
	}
}
