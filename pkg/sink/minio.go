package sink

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/lethe-etl/lethe/pkg/cleaner/record"
	util_io "github.com/lethe-etl/lethe/pkg/util/io"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

type MinioConfig struct {
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	Secure          bool   `yaml:"secure"`
	Bucket          string `yaml:"bucket"`
}

// MinioWriter writes the partitioned dataset under an object-storage
// prefix, removing objects a previous run left there.
type MinioWriter struct {
	client *minio.Client
	cfg    MinioConfig
	prefix string
	log    log.Logger
}

func NewMinioWriter(cfg MinioConfig, prefix string, log log.Logger) (*MinioWriter, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.Secure,
	})
	if err != nil {
		return nil, errors.Wrap(err, "initialize minio client for writer")
	}

	found, err := client.BucketExists(context.Background(), cfg.Bucket)
	if err != nil {
		return nil, errors.Wrap(err, "check minio bucket exists")
	}
	if !found {
		if err := client.MakeBucket(context.Background(), cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, errors.Wrap(err, "make minio bucket")
		}
	}

	return &MinioWriter{
		client: client,
		cfg:    cfg,
		prefix: strings.TrimSuffix(prefix, "/"),
		log:    log,
	}, nil
}

func (w *MinioWriter) Write(ctx context.Context, recs []record.Clean) error {
	parts, err := encodePartitions(recs)
	if err != nil {
		return err
	}

	if err := w.removePrevious(ctx); err != nil {
		return err
	}

	for _, part := range parts {
		r := bytes.NewReader(part.data)
		size, err := util_io.TryGetSize(r)
		if err != nil {
			return errors.Wrap(err, "minio sink get partition size")
		}

		objName := w.prefix + "/" + part.objName()
		_, err = w.client.PutObject(ctx, w.cfg.Bucket, objName, r, size, minio.PutObjectOptions{
			ContentType: "application/vnd.apache.parquet",
		})
		if err != nil {
			return errors.Wrap(err, "minio sink store partition")
		}
	}

	level.Info(w.log).Log("msg", fmt.Sprintf("wrote %d records across %d partitions to %s", len(recs), len(parts), w.prefix))
	return nil
}

func (w *MinioWriter) removePrevious(ctx context.Context) error {
	opts := minio.ListObjectsOptions{
		Prefix:    w.prefix + "/",
		Recursive: true,
	}

	for obj := range w.client.ListObjects(ctx, w.cfg.Bucket, opts) {
		if obj.Err != nil {
			return errors.Wrap(obj.Err, "minio sink list previous output")
		}
		if err := w.client.RemoveObject(ctx, w.cfg.Bucket, obj.Key, minio.RemoveObjectOptions{}); err != nil {
			return errors.Wrap(err, "minio sink remove previous output")
		}
	}

	return nil
}
