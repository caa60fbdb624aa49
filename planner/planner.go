package planner

import (
	"iter"

	"git.tatikoma.dev/corpix/progbatch/errors"
	"git.tatikoma.dev/corpix/progbatch/index"
	"git.tatikoma.dev/corpix/progbatch/log"
	"git.tatikoma.dev/corpix/progbatch/schedule"
)

type (
	// Planner slices [0, n) into batches sized by how much of the
	// collection a pass has already consumed.
	Planner struct {
		n         int
		schedule  schedule.Schedule
		shuffle   bool
		dropLast  bool
		generator index.Generator
		source    index.Source
		logger    *log.Logger
	}
	Option func(*Planner)

	// Step describes a single batch of a pass.
	Step struct {
		Index    int
		Offset   int
		Progress float64
		Size     int
		Indices  []int
	}
)

func WithShuffle(shuffle bool) Option {
	return func(p *Planner) { p.shuffle = shuffle }
}

func WithDropLast(dropLast bool) Option {
	return func(p *Planner) { p.dropLast = dropLast }
}

// WithGenerator pins shuffling to g. Passes drawn from the same generator
// must not run concurrently.
func WithGenerator(g index.Generator) Option {
	return func(p *Planner) { p.generator = g }
}

func WithSource(src index.Source) Option {
	return func(p *Planner) { p.source = src }
}

func WithLogger(l *log.Logger) Option {
	return func(p *Planner) { p.logger = l }
}

func (p *Planner) N() int                      { return p.n }
func (p *Planner) Schedule() schedule.Schedule { return p.schedule }
func (p *Planner) Shuffle() bool               { return p.shuffle }
func (p *Planner) DropLast() bool              { return p.dropLast }

func (p *Planner) SizeFor(progress float64) int {
	return p.schedule.SizeFor(progress)
}

func (p *Planner) progress(i int) float64 {
	return float64(i) / float64(p.n) * schedule.MaxProgress
}

func (p *Planner) order() []int {
	if p.shuffle {
		return p.source.Permutation(p.n, p.generator)
	}
	return p.source.Identity(p.n)
}

func (p *Planner) steps(yield func(Step) bool) {
	var (
		order   = p.order()
		batches int
		i       int
	)
	p.logger.Debug().
		Int("items", p.n).
		Bool("shuffle", p.shuffle).
		Bool("drop_last", p.dropLast).
		Msg("pass started")

	for i < p.n {
		progress := p.progress(i)
		size := p.SizeFor(progress)
		// remaining is computed first, i+size may overflow for huge sizes
		remaining := p.n - i
		end := i + min(size, remaining)
		batch := order[i:end:end]

		if size > remaining && p.dropLast {
			p.logger.Debug().
				Int("dropped", len(batch)).
				Int("size", size).
				Msg("dropping partial batch")
			break
		}

		p.logger.Trace().
			Int("batch", batches).
			Int("offset", i).
			Float64("progress", progress).
			Int("size", len(batch)).
			Msg("batch")

		if !yield(Step{
			Index:    batches,
			Offset:   i,
			Progress: progress,
			Size:     size,
			Indices:  batch,
		}) {
			return
		}
		batches++
		i = end
	}

	p.logger.Debug().
		Int("batches", batches).
		Int("consumed", i).
		Msg("pass finished")
}

// Steps starts a new pass on every iteration and yields batch descriptors.
func (p *Planner) Steps() iter.Seq[Step] {
	return p.steps
}

// Iter starts a new pass on every iteration, drawing a fresh ordering.
// Yielded slices are clipped, appending to them never touches the ordering.
func (p *Planner) Iter() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		for step := range p.steps {
			if !yield(step.Indices) {
				return
			}
		}
	}
}

// Passes yields an endless sequence of numbered passes, stop it by breaking out.
func (p *Planner) Passes() iter.Seq2[int, iter.Seq[[]int]] {
	return func(yield func(int, iter.Seq[[]int]) bool) {
		for epoch := 0; ; epoch++ {
			if !yield(epoch, p.Iter()) {
				return
			}
		}
	}
}

// Len estimates the number of batches per pass using the smallest
// scheduled size, so it never undercounts.
func (p *Planner) Len() int {
	size := p.schedule.MinSize()
	count := p.n / size
	if !p.dropLast && p.n%size != 0 {
		count++
	}
	return count
}

// Count is the exact number of batches a pass yields.
// Sizes depend on the cursor only, so no ordering is drawn.
func (p *Planner) Count() int {
	var count int
	for i := 0; i < p.n; {
		size := p.SizeFor(p.progress(i))
		remaining := p.n - i
		if size > remaining && p.dropLast {
			break
		}
		count++
		i += min(size, remaining)
	}
	return count
}

func New(n int, sched schedule.Schedule, opts ...Option) (*Planner, error) {
	if n < 0 {
		return nil, errors.NewConfigError("items", "must not be negative, got %d", n)
	}
	if sched.IsZero() {
		return nil, errors.NewConfigError("schedule", "schedule is empty")
	}

	p := &Planner{
		n:        n,
		schedule: sched,
		shuffle:  true,
		source:   index.Default,
		logger:   log.DefaultLogger,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.source == nil {
		p.source = index.Default
	}
	if p.logger == nil {
		p.logger = log.Nop()
	}

	return p, nil
}

// FromLists validates the schedule lists and builds a Planner in one go.
func FromLists(n int, percentIntervals []float64, batchSizes []int, opts ...Option) (*Planner, error) {
	sched, err := schedule.New(percentIntervals, batchSizes)
	if err != nil {
		return nil, err
	}
	return New(n, sched, opts...)
}
