package main

import (
	"context"
	"os"

	"git.tatikoma.dev/corpix/progbatch/app"
	"git.tatikoma.dev/corpix/progbatch/config"
)

type App struct {
	*app.App[*config.Config]
}

func (a *App) Commands() app.Commands {
	return app.Commands{
		a.planCommand(),
		a.lenCommand(),
	}
}

func NewApp(ctx context.Context) *App {
	r := app.NewRuntime(ctx)
	r.Cli.Name = "progbatch"
	r.Cli.Usage = "plan progress scheduled batches over a collection"

	a := &App{}
	a.App = app.New[*config.Config](r, a, config.Default())
	a.Init(r)
	return a
}

func main() {
	a := NewApp(context.Background())
	err := a.Exec(os.Args)
	if err != nil {
		a.Error(err)
	}
}
