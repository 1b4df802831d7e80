package filefetcher

import (
	"context"
	"fmt"
	"time"

	"github.com/cavaliergopher/grab/v3"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

type Config struct {
	BufferSize int `yaml:"buffer_size"`
}

// FileFetcher downloads one remote file to a local path, logging transfer
// progress once a second.
type FileFetcher struct {
	grabClient *grab.Client
	cfg        Config
	log        log.Logger
}

func NewClient(cfg Config, log log.Logger) *FileFetcher {
	c := grab.NewClient()
	c.BufferSize = cfg.BufferSize

	return &FileFetcher{
		grabClient: c,
		cfg:        cfg,
		log:        log,
	}
}

func (f *FileFetcher) Download(ctx context.Context, dst string, url string) error {
	level.Info(f.log).Log("msg", fmt.Sprintf("start downloading file: %s", url))
	req, err := grab.NewRequest(dst, url)
	if err != nil {
		return errors.Wrap(err, "file fetcher create request")
	}
	req = req.WithContext(ctx)

	resp := f.grabClient.Do(req)

	t := time.NewTicker(1 * time.Second)
	defer t.Stop()

Loop:
	for {
		select {
		case <-t.C:
			level.Debug(f.log).Log("msg", fmt.Sprintf("transferred %d / %d bytes (%.2f%%)",
				resp.BytesComplete(),
				resp.Size(),
				100*resp.Progress()))
		case <-resp.Done:
			break Loop
		}
	}

	if err := resp.Err(); err != nil {
		return errors.Wrap(err, "file fetcher download")
	}

	return nil
}
