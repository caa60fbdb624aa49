package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"git.tatikoma.dev/corpix/progbatch/app"
	"git.tatikoma.dev/corpix/progbatch/config"
	"git.tatikoma.dev/corpix/progbatch/dump"
	"git.tatikoma.dev/corpix/progbatch/errors"
	"git.tatikoma.dev/corpix/progbatch/log"
	"git.tatikoma.dev/corpix/progbatch/planner"
	"git.tatikoma.dev/corpix/progbatch/schedule"
)

const (
	flagItems    = "items"
	flagSchedule = "schedule"
	flagShuffle  = "shuffle"
	flagDropLast = "drop-last"
	flagSeed     = "seed"
	flagEpochs   = "epochs"
	flagIndices  = "indices"
	flagDump     = "dump"
)

func plannerFlags() app.Flags {
	return app.Flags{
		&app.IntFlag{
			Name:    flagItems,
			Aliases: []string{"n"},
			Usage:   "number of items in the collection",
		},
		&app.StringFlag{
			Name:    flagSchedule,
			Aliases: []string{"s"},
			Usage:   "progress schedule as threshold:size pairs, e.g. 20:32,40:64,100:512",
		},
		&app.BoolFlag{
			Name:  flagShuffle,
			Usage: "visit indices in random order",
		},
		&app.BoolFlag{
			Name:  flagDropLast,
			Usage: "drop the final batch when it is shorter than scheduled",
		},
		&app.Uint64Flag{
			Name:  flagSeed,
			Usage: "seed for a reproducible shuffle",
		},
	}
}

// plannerConfig merges command line overrides onto the loaded config.
func (a *App) plannerConfig(ctx *cli.Context) (config.Planner, error) {
	c := a.Config.Planner
	if ctx.IsSet(flagItems) {
		c.Items = ctx.Int(flagItems)
	}
	if ctx.IsSet(flagSchedule) {
		sched, err := schedule.Parse(ctx.String(flagSchedule))
		if err != nil {
			return c, err
		}
		c.PercentIntervals = sched.Thresholds()
		c.BatchSizes = sched.Sizes()
	}
	if ctx.IsSet(flagShuffle) {
		shuffle := ctx.Bool(flagShuffle)
		c.Shuffle = &shuffle
	}
	if ctx.IsSet(flagDropLast) {
		c.DropLast = ctx.Bool(flagDropLast)
	}
	if ctx.IsSet(flagSeed) {
		seed := ctx.Uint64(flagSeed)
		c.Seed = &seed
	}
	return c, nil
}

func (a *App) planner(ctx *cli.Context) (*planner.Planner, error) {
	c, err := a.plannerConfig(ctx)
	if err != nil {
		return nil, err
	}
	if ctx.Bool(flagDump) {
		fmt.Fprint(ctx.App.Writer, dump.Sprint(c))
	}
	return c.Build()
}

func (a *App) planCommand() *app.Command {
	return &app.Command{
		Name:  "plan",
		Usage: "print the batches of one or more passes",
		Flags: append(plannerFlags(),
			&app.IntFlag{
				Name:    flagEpochs,
				Aliases: []string{"e"},
				Usage:   "number of passes to print",
				Value:   1,
			},
			&app.BoolFlag{
				Name:  flagIndices,
				Usage: "print indices of every batch",
			},
			&app.BoolFlag{
				Name:  flagDump,
				Usage: "dump resolved planner settings",
			},
		),
		Action: a.plan,
	}
}

func (a *App) plan(ctx *cli.Context) error {
	p, err := a.planner(ctx)
	if err != nil {
		return err
	}

	var (
		w       = ctx.App.Writer
		epochs  = ctx.Int(flagEpochs)
		indices = ctx.Bool(flagIndices)
	)
	log.Debug().
		Int("items", p.N()).
		Str("schedule", p.Schedule().String()).
		Int("epochs", epochs).
		Msg("planning")

	for epoch := range epochs {
		for step := range p.Steps() {
			if err := ctx.Context.Err(); err != nil {
				return errors.Wrap(err, "planning interrupted")
			}
			fmt.Fprintf(w,
				"epoch=%d batch=%d offset=%d progress=%.2f size=%d len=%d",
				epoch, step.Index, step.Offset, step.Progress, step.Size, len(step.Indices),
			)
			if indices {
				fmt.Fprintf(w, " indices=%v", step.Indices)
			}
			fmt.Fprintln(w)
		}
	}
	return nil
}

func (a *App) lenCommand() *app.Command {
	return &app.Command{
		Name:   "len",
		Usage:  "print estimated and exact batch counts of a pass",
		Flags:  plannerFlags(),
		Action: a.count,
	}
}

func (a *App) count(ctx *cli.Context) error {
	p, err := a.planner(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.App.Writer, "estimated=%d exact=%d\n", p.Len(), p.Count())
	return nil
}
