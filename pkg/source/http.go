package source

import (
	"context"
	"os"
	"path/filepath"

	"github.com/go-kit/log"
	"github.com/lethe-etl/lethe/pkg/cleaner/record"
	"github.com/lethe-etl/lethe/pkg/filefetcher"
	"github.com/pkg/errors"
)

type HTTPConfig struct {
	TempDir     string             `yaml:"temp_dir"`
	FileFetcher filefetcher.Config `yaml:"file_fetcher"`
}

// HTTPReader downloads one CSV export over HTTP into a scratch dir and
// decodes it. The input location is the download URL.
type HTTPReader struct {
	cfg     HTTPConfig
	url     string
	fetcher *filefetcher.FileFetcher
	log     log.Logger
}

func NewHTTPReader(cfg HTTPConfig, url string, log log.Logger) *HTTPReader {
	if cfg.TempDir == "" {
		cfg.TempDir = os.TempDir()
	}

	return &HTTPReader{
		cfg:     cfg,
		url:     url,
		fetcher: filefetcher.NewClient(cfg.FileFetcher, log),
		log:     log,
	}
}

func (r *HTTPReader) Read(ctx context.Context) ([]record.Raw, error) {
	dst := filepath.Join(r.cfg.TempDir, "lethe-input.csv")
	if err := r.fetcher.Download(ctx, dst, r.url); err != nil {
		return nil, errors.Wrap(err, "http source fetch input")
	}
	defer os.Remove(dst)

	file, err := os.Open(dst)
	if err != nil {
		return nil, errors.Wrap(err, "http source open downloaded file")
	}
	defer file.Close()

	recs, err := decodeCSV(file)
	if err != nil {
		return nil, errors.Wrap(err, "http source decode input")
	}

	return recs, nil
}
