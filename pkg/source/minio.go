package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/lethe-etl/lethe/pkg/cleaner/record"
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

// MinioReader reads every CSV object under a prefix of an object-storage
// bucket. The input location is the object prefix.
type MinioReader struct {
	client *minio.Client
	cfg    MinioConfig
	prefix string
	log    log.Logger
}

func NewMinioReader(cfg MinioConfig, prefix string, log log.Logger) (*MinioReader, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.Secure,
	})
	if err != nil {
		return nil, errors.Wrap(err, "initialize minio reader")
	}

	return &MinioReader{
		client: client,
		cfg:    cfg,
		prefix: prefix,
		log:    log,
	}, nil
}

func (r *MinioReader) Read(ctx context.Context) ([]record.Raw, error) {
	opts := minio.ListObjectsOptions{
		Prefix:    r.prefix,
		Recursive: true,
	}

	objNames := make([]string, 0)
	for obj := range r.client.ListObjects(ctx, r.cfg.Bucket, opts) {
		if obj.Err != nil {
			return nil, errors.Wrap(obj.Err, "minio source list objects")
		}
		if strings.HasSuffix(obj.Key, ".csv") {
			objNames = append(objNames, obj.Key)
		}
	}

	if len(objNames) == 0 {
		return nil, errors.New("minio source prefix contains no csv objects")
	}

	recs := make([]record.Raw, 0)
	for _, objName := range objNames {
		objRecs, err := r.readObject(ctx, objName)
		if err != nil {
			return nil, err
		}
		recs = append(recs, objRecs...)
	}

	level.Debug(r.log).Log("msg", fmt.Sprintf("read %d raw records from %d objects", len(recs), len(objNames)))
	return recs, nil
}

func (r *MinioReader) readObject(ctx context.Context, objName string) ([]record.Raw, error) {
	obj, err := r.client.GetObject(ctx, r.cfg.Bucket, objName, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "minio source retrieve object")
	}
	defer obj.Close()

	recs, err := decodeCSV(obj)
	if err != nil {
		return nil, errors.Wrapf(err, "minio source decode %s", objName)
	}

	return recs, nil
}
