package main

import (
	"context"
	"flag"
	"os"

	"github.com/lethe-etl/lethe/pkg/job"
	util_log "github.com/lethe-etl/lethe/pkg/util/log"
	"github.com/prometheus/client_golang/prometheus"
	"gopkg.in/yaml.v2"
)

type config struct {
	Log util_log.Config `yaml:"log"`
	Job job.Config      `yaml:"job"`
}

func main() {
	var (
		configFile string
		input      string
		output     string
		name       string
	)

	cfg := config{}

	flag.StringVar(&configFile, "config", "lethe.yaml", "path to the YAML config file")
	flag.StringVar(&input, "input", "", "input location, overrides job.input from the config")
	flag.StringVar(&output, "output", "", "output location, overrides job.output from the config")
	flag.StringVar(&name, "job", "", "run name, overrides job.name from the config")
	cfg.Log.RegisterFlags(flag.CommandLine)
	flag.Parse()

	buf, err := os.ReadFile(configFile)
	util_log.CheckFatal("reading config file", err)

	err = yaml.Unmarshal(buf, &cfg)
	util_log.CheckFatal("parsing config file", err)

	if input != "" {
		cfg.Job.Input = input
	}
	if output != "" {
		cfg.Job.Output = output
	}
	if name != "" {
		cfg.Job.Name = name
	}

	util_log.InitLogger(&cfg.Log)

	ctx := context.Background()

	j, err := job.New(ctx, cfg.Job, prometheus.NewPedanticRegistry(), util_log.Logger)
	util_log.CheckFatal("initializing job", err)

	err = j.StartAsync(ctx)
	util_log.CheckFatal("starting job", err)

	err = j.AwaitTerminated(ctx)
	util_log.CheckFatal("running job", err)
}
