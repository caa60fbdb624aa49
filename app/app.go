package app

import (
	"os"

	"github.com/urfave/cli/v2"

	"git.tatikoma.dev/corpix/progbatch/errors"
	"git.tatikoma.dev/corpix/progbatch/log"
)

type (
	Context  = cli.Context
	Command  = cli.Command
	Commands = []*Command

	Config interface {
		FromFile(path string) error
	}
	// Leveler is implemented by configs carrying a log level.
	Leveler interface {
		Level() (log.Level, error)
	}

	Application[C Config] interface {
		Configure(path string) (C, error)
		Flags() Flags
		Commands() Commands
		Init(*Runtime)
		PreRun(*cli.Context) error
		Run(*cli.Context) error
		Exec(args []string) error
		Error(error)
	}

	App[C Config] struct {
		Config C
		self   Application[C]
		*Runtime
	}
)

func (a *App[C]) Configure(path string) (C, error) {
	log.Info().
		Str("config", path).
		Msg("loading config")

	err := a.Config.FromFile(path)
	if err != nil {
		return a.Config, errors.Wrapf(err, "failed to load config from %q", path)
	}
	return a.Config, nil
}

func (*App[C]) Flags() Flags {
	return Flags{
		&PathFlag{
			Name:    FlagConfig,
			Aliases: []string{"c"},
			Usage:   "configuration file path (yaml or json)",
			EnvVars: []string{EnvConfig},
		},
		&BoolFlag{
			Name:  FlagVerbose,
			Usage: "set debug log level",
			Value: false,
		},
		&BoolFlag{
			Name:     FlagDebug,
			Usage:    "set trace log level",
			Value:    false,
			Category: "debug",
		},
	}
}

func (*App[C]) Commands() Commands {
	return nil
}

func (a *App[C]) Init(r *Runtime) {
	r.Cli.Flags = a.self.Flags()
	r.Cli.Commands = a.self.Commands()
	r.Cli.Before = a.self.PreRun
	r.Cli.Action = a.self.Run
}

// PreRun loads the config file and then applies log level flags,
// flags win over the config.
func (a *App[C]) PreRun(ctx *cli.Context) error {
	path := ctx.Path(FlagConfig)
	if path != "" {
		_, err := a.self.Configure(path)
		if err != nil {
			return err
		}
	}

	level := log.InfoLevel
	if leveler, ok := any(a.Config).(Leveler); ok {
		var err error
		level, err = leveler.Level()
		if err != nil {
			return err
		}
	}
	if ctx.Bool(FlagVerbose) {
		level = min(level, log.DebugLevel)
	}
	if ctx.Bool(FlagDebug) {
		level = log.TraceLevel
	}
	log.SetLevel(level)

	return nil
}

func (a *App[C]) Run(ctx *cli.Context) error {
	return cli.ShowAppHelp(ctx)
}

func (a *App[C]) Exec(args []string) error {
	return a.Runtime.Run(args)
}

func (a *App[C]) Error(err error) {
	Error(err)
}

// New creates an App with the provided runtime and default config.
// It is expected that caller invoke Init on self.
func New[C Config](r *Runtime, self Application[C], config C) *App[C] {
	return &App[C]{
		Config:  config,
		self:    self,
		Runtime: r,
	}
}

func Error(err error) {
	errors.Log(err, "exiting")
	os.Exit(1)
}
