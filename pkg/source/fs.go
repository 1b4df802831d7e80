package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/lethe-etl/lethe/pkg/cleaner/record"
	"github.com/pkg/errors"
)

type FSConfig struct{}

// FSReader reads CSV files from the local filesystem. The input location
// is either one file or a directory, in which case every *.csv inside it
// is read.
type FSReader struct {
	cfg   FSConfig
	input string
	log   log.Logger
}

func NewFSReader(cfg FSConfig, input string, log log.Logger) *FSReader {
	return &FSReader{
		cfg:   cfg,
		input: input,
		log:   log,
	}
}

func (r *FSReader) Read(ctx context.Context) ([]record.Raw, error) {
	info, err := os.Stat(r.input)
	if err != nil {
		return nil, errors.Wrap(err, "fs source stat input")
	}

	files := []string{r.input}
	if info.IsDir() {
		files, err = filepath.Glob(filepath.Join(r.input, "*.csv"))
		if err != nil {
			return nil, errors.Wrap(err, "fs source glob input dir")
		}
		if len(files) == 0 {
			return nil, errors.New("fs source input dir contains no csv files")
		}
	}

	recs := make([]record.Raw, 0)
	for _, fName := range files {
		fileRecs, err := r.readFile(fName)
		if err != nil {
			return nil, err
		}
		recs = append(recs, fileRecs...)
	}

	level.Debug(r.log).Log("msg", fmt.Sprintf("read %d raw records from %d files", len(recs), len(files)))
	return recs, nil
}

func (r *FSReader) readFile(fName string) ([]record.Raw, error) {
	file, err := os.Open(fName)
	if err != nil {
		return nil, errors.Wrap(err, "fs source open file")
	}
	defer file.Close()

	recs, err := decodeCSV(file)
	if err != nil {
		return nil, errors.Wrapf(err, "fs source decode %s", strings.TrimPrefix(fName, r.input))
	}

	return recs, nil
}
