package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"git.tatikoma.dev/corpix/progbatch/errors"
	"git.tatikoma.dev/corpix/progbatch/index"
	"git.tatikoma.dev/corpix/progbatch/log"
	"git.tatikoma.dev/corpix/progbatch/planner"
	"git.tatikoma.dev/corpix/progbatch/schedule"
)

type (
	Config struct {
		Log     Log     `yaml:"log"`
		Planner Planner `yaml:"planner"`
	}
	Log struct {
		Level string `yaml:"level"`
	}
	Planner struct {
		Items            int       `yaml:"items"`
		PercentIntervals []float64 `yaml:"percent_intervals"`
		BatchSizes       []int     `yaml:"batch_sizes"`
		Shuffle          *bool     `yaml:"shuffle"`
		DropLast         bool      `yaml:"drop_last"`
		Seed             *uint64   `yaml:"seed"`
	}
)

func Default() *Config {
	return &Config{
		Log: Log{Level: "info"},
		Planner: Planner{
			PercentIntervals: schedule.DefaultPercentIntervals(),
			BatchSizes:       schedule.DefaultBatchSizes(),
		},
	}
}

// FromFile overlays the YAML (or JSON) document at path onto c.
func (c *Config) FromFile(path string) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read config %q", path)
	}
	return c.Parse(buf)
}

func (c *Config) Parse(buf []byte) error {
	err := yaml.Unmarshal(buf, c)
	if err != nil {
		return errors.Wrap(err, "failed to decode config")
	}
	return c.Validate()
}

func (c *Config) Validate() error {
	_, err := c.Level()
	if err != nil {
		return err
	}
	_, err = c.Planner.Schedule()
	return err
}

func (p Planner) Schedule() (schedule.Schedule, error) {
	return schedule.New(p.PercentIntervals, p.BatchSizes)
}

// Options translates the file settings into planner options.
// A seed pins shuffling to a private generator.
func (p Planner) Options() []planner.Option {
	opts := []planner.Option{
		planner.WithDropLast(p.DropLast),
	}
	if p.Shuffle != nil {
		opts = append(opts, planner.WithShuffle(*p.Shuffle))
	}
	if p.Seed != nil {
		opts = append(opts, planner.WithGenerator(index.NewGenerator(*p.Seed)))
	}
	return opts
}

func (p Planner) Build(extra ...planner.Option) (*planner.Planner, error) {
	sched, err := p.Schedule()
	if err != nil {
		return nil, err
	}
	return planner.New(p.Items, sched, append(p.Options(), extra...)...)
}

func (c *Config) Level() (log.Level, error) {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return level, errors.Chain(errors.NewConfigError("log.level", "unknown level %q", c.Log.Level), err)
	}
	return level, nil
}
