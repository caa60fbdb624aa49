package schedule

import (
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"git.tatikoma.dev/corpix/progbatch/errors"
)

// MaxProgress is the closed upper bound every schedule must end on.
const MaxProgress = 100.0

const (
	FieldPercentIntervals = "percent_intervals"
	FieldBatchSizes       = "batch_sizes"
)

var (
	defaultPercentIntervals = []float64{20, 40, 60, 80, 100}
	defaultBatchSizes       = []int{32, 64, 128, 256, 512}
)

func DefaultPercentIntervals() []float64 { return slices.Clone(defaultPercentIntervals) }
func DefaultBatchSizes() []int           { return slices.Clone(defaultBatchSizes) }

type (
	// Schedule is a step function from progress percentage to batch size.
	// The zero value is not usable, build one with New or Parse.
	Schedule struct {
		steps []Step
	}
	Step struct {
		Threshold float64
		Size      int
	}

	schema struct {
		PercentIntervals []float64 `yaml:"percent_intervals"`
		BatchSizes       []int     `yaml:"batch_sizes"`
	}
)

func (s Step) String() string {
	return strconv.FormatFloat(s.Threshold, 'f', -1, 64) + "%:" + strconv.Itoa(s.Size)
}

// SizeFor returns the size of the first step whose threshold is >= p.
func (s Schedule) SizeFor(p float64) int {
	for _, step := range s.steps {
		if p <= step.Threshold {
			return step.Size
		}
	}
	return s.steps[len(s.steps)-1].Size
}

func (s Schedule) MinSize() int {
	size := s.steps[0].Size
	for _, step := range s.steps[1:] {
		size = min(size, step.Size)
	}
	return size
}

func (s Schedule) MaxSize() int {
	size := s.steps[0].Size
	for _, step := range s.steps[1:] {
		size = max(size, step.Size)
	}
	return size
}

func (s Schedule) Len() int              { return len(s.steps) }
func (s Schedule) IsZero() bool          { return len(s.steps) == 0 }
func (s Schedule) Steps() []Step         { return slices.Clone(s.steps) }
func (s Schedule) Equal(o Schedule) bool { return slices.Equal(s.steps, o.steps) }

func (s Schedule) Thresholds() []float64 {
	res := make([]float64, len(s.steps))
	for n, step := range s.steps {
		res[n] = step.Threshold
	}
	return res
}

func (s Schedule) Sizes() []int {
	res := make([]int, len(s.steps))
	for n, step := range s.steps {
		res[n] = step.Size
	}
	return res
}

func (s Schedule) String() string {
	res := make([]string, 0, len(s.steps))
	for _, step := range s.steps {
		res = append(res, step.String())
	}
	return strings.Join(res, ",")
}

func (s *Schedule) UnmarshalYAML(node *yaml.Node) error {
	var raw schema
	err := node.Decode(&raw)
	if err != nil {
		return err
	}
	sched, err := New(raw.PercentIntervals, raw.BatchSizes)
	if err != nil {
		return err
	}
	*s = sched
	return nil
}

func (s Schedule) MarshalYAML() (any, error) {
	return schema{
		PercentIntervals: s.Thresholds(),
		BatchSizes:       s.Sizes(),
	}, nil
}

// New validates thresholds and sizes and pairs them into a Schedule.
// Both slices are copied.
func New(thresholds []float64, sizes []int) (Schedule, error) {
	if len(thresholds) != len(sizes) {
		return Schedule{}, errors.NewConfigError(
			FieldPercentIntervals,
			"length %d does not match %s length %d",
			len(thresholds), FieldBatchSizes, len(sizes),
		)
	}
	if len(thresholds) == 0 {
		return Schedule{}, errors.NewConfigError(FieldPercentIntervals, "at least one interval required")
	}
	if last := thresholds[len(thresholds)-1]; last != MaxProgress {
		return Schedule{}, errors.NewConfigError(
			FieldPercentIntervals,
			"last interval must be %v, got %v",
			MaxProgress, last,
		)
	}

	steps := make([]Step, len(thresholds))
	for n, threshold := range thresholds {
		switch {
		case !(threshold >= 0 && threshold <= MaxProgress):
			return Schedule{}, errors.NewConfigError(
				FieldPercentIntervals,
				"interval %d is out of [0, %v] range: %v",
				n, MaxProgress, threshold,
			)
		case n > 0 && threshold <= thresholds[n-1]:
			return Schedule{}, errors.NewConfigError(
				FieldPercentIntervals,
				"intervals must be strictly ascending, %v follows %v",
				threshold, thresholds[n-1],
			)
		case sizes[n] <= 0:
			return Schedule{}, errors.NewConfigError(
				FieldBatchSizes,
				"batch size %d must be positive, got %d",
				n, sizes[n],
			)
		}
		steps[n] = Step{Threshold: threshold, Size: sizes[n]}
	}

	return Schedule{steps: steps}, nil
}

func Must(s Schedule, err error) Schedule {
	if err != nil {
		panic(err)
	}
	return s
}

// Default returns the warm-up schedule 20/40/60/80/100% -> 32/64/128/256/512.
func Default() Schedule {
	return Must(New(defaultPercentIntervals, defaultBatchSizes))
}

// Parse reads the "threshold:size" comma separated form, e.g. "20:32,40%:64,100:512".
func Parse(s string) (Schedule, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Schedule{}, errors.NewConfigError("schedule", "empty schedule")
	}

	parts := strings.Split(s, ",")
	thresholds := make([]float64, 0, len(parts))
	sizes := make([]int, 0, len(parts))
	for _, part := range parts {
		rawThreshold, rawSize, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return Schedule{}, errors.NewConfigError("schedule", "step %q must be in threshold:size form", part)
		}

		rawThreshold = strings.TrimSuffix(strings.TrimSpace(rawThreshold), "%")
		threshold, err := strconv.ParseFloat(rawThreshold, 64)
		if err != nil {
			return Schedule{}, errors.NewConfigError("schedule", "invalid threshold %q: %s", rawThreshold, err)
		}
		size, err := strconv.Atoi(strings.TrimSpace(rawSize))
		if err != nil {
			return Schedule{}, errors.NewConfigError("schedule", "invalid batch size %q: %s", rawSize, err)
		}

		thresholds = append(thresholds, threshold)
		sizes = append(sizes, size)
	}

	return New(thresholds, sizes)
}
