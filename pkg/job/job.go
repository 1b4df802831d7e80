package job

import (
	"context"
	"fmt"

	gklog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/grafana/dskit/services"
	"github.com/lethe-etl/lethe/pkg/cleaner"
	"github.com/lethe-etl/lethe/pkg/queue"
	"github.com/lethe-etl/lethe/pkg/queue/message"
	"github.com/lethe-etl/lethe/pkg/runlog"
	runrec "github.com/lethe-etl/lethe/pkg/runlog/record"
	"github.com/lethe-etl/lethe/pkg/sink"
	"github.com/lethe-etl/lethe/pkg/source"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const channelName = "lethe"

type Config struct {
	Name   string `yaml:"name"`
	Input  string `yaml:"input"`
	Output string `yaml:"output"`

	Cleaner cleaner.Config `yaml:"cleaner"`
	Source  source.Config  `yaml:"source"`
	Sink    sink.Config    `yaml:"sink"`
	RunLog  runlog.Config  `yaml:"run_log"`
	Queue   queue.Config   `yaml:"queue"`
}

// Job is one full-refresh pipeline run: read raw records, clean them,
// write the partitioned output, persist the run audit row, announce
// completion. It runs to completion and terminates; record-level problems
// never fail the run, collaborator failures always do.
type Job struct {
	services.Service

	cfg Config
	log gklog.Logger

	source  source.Reader
	cleaner *cleaner.Cleaner
	sink    sink.Writer
	runLog  runlog.Store
	pub     queue.Publisher
}

func New(ctx context.Context, cfg Config, reg prometheus.Registerer, log gklog.Logger) (*Job, error) {
	log = gklog.With(log, "service", "job", "name", cfg.Name)

	reader, err := source.NewReader(cfg.Source, cfg.Input, log)
	if err != nil {
		return nil, errors.Wrap(err, "job init source")
	}

	writer, err := sink.NewWriter(cfg.Sink, cfg.Output, log)
	if err != nil {
		return nil, errors.Wrap(err, "job init sink")
	}

	store, err := runlog.NewStore(ctx, cfg.RunLog, log)
	if err != nil {
		return nil, errors.Wrap(err, "job connect to run log store")
	}

	pub, err := queue.NewPublisher(cfg.Queue, log)
	if err != nil {
		return nil, errors.Wrap(err, "job init queue pub")
	}

	j := &Job{
		cfg:     cfg,
		log:     log,
		source:  reader,
		cleaner: cleaner.New(cfg.Cleaner, reg, log),
		sink:    writer,
		runLog:  store,
		pub:     pub,
	}

	j.Service = services.NewBasicService(nil, j.run, j.stop)

	return j, nil
}

func (j *Job) run(ctx context.Context) error {
	level.Info(j.log).Log("msg", fmt.Sprintf("reading raw records from %s", j.cfg.Input))
	recs, err := j.source.Read(ctx)
	if err != nil {
		return errors.Wrap(err, "job read source")
	}

	clean, report := j.cleaner.Run(recs)

	if err := j.sink.Write(ctx, clean); err != nil {
		return errors.Wrap(err, "job write sink")
	}

	if err := j.runLog.SaveRun(ctx, runrec.New(j.cfg.Name, report)); err != nil {
		return errors.Wrap(err, "job save run")
	}

	j.announce(report)

	return nil
}

// announce is best effort: the data is already committed, so a failed
// notification only warns.
func (j *Job) announce(report *cleaner.Report) {
	if j.pub == nil {
		return
	}

	msg := &message.Message{
		Name:       j.cfg.Name,
		Version:    report.Version,
		CleanCount: report.CleanCount,
	}

	if err := j.pub.Pub(channelName, msg); err != nil {
		level.Warn(j.log).Log("msg", fmt.Sprintf("failed to announce run: %s", err.Error()))
		return
	}

	level.Debug(j.log).Log("msg", fmt.Sprintf("sent message '%s' to channel '%s'", msg, channelName))
}

func (j *Job) stop(failureCase error) error {
	if err := j.runLog.Dispose(context.Background()); err != nil {
		level.Error(j.log).Log("msg", err.Error())
	}

	return nil
}
