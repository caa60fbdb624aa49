package app

import (
	"context"
	"io"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
)

type (
	// Runtime binds the cli to a context canceled on SIGINT or SIGTERM.
	Runtime struct {
		Context context.Context
		Cli     *cli.App
		stop    context.CancelFunc
	}
)

func NewRuntime(ctx context.Context) *Runtime {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	return &Runtime{
		Context: ctx,
		Cli:     cli.NewApp(),
		stop:    stop,
	}
}

// SetOutput redirects command output and errors.
func (r *Runtime) SetOutput(w io.Writer) {
	r.Cli.Writer = w
	r.Cli.ErrWriter = w
}

func (r *Runtime) Run(args []string) error {
	defer r.stop()
	return r.Cli.RunContext(r.Context, args)
}
