package seq

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.tatikoma.dev/corpix/progbatch/log"
	"git.tatikoma.dev/corpix/progbatch/planner"
	"git.tatikoma.dev/corpix/progbatch/schedule"
)

func TestGather(t *testing.T) {
	testCases := []struct {
		name     string
		items    []string
		batches  [][]int
		expected [][]string
	}{
		{
			name:     "In order",
			items:    []string{"a", "b", "c", "d"},
			batches:  [][]int{{0, 1}, {2, 3}},
			expected: [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name:     "Shuffled",
			items:    []string{"a", "b", "c", "d"},
			batches:  [][]int{{3}, {0, 2, 1}},
			expected: [][]string{{"d"}, {"a", "c", "b"}},
		},
		{
			name:     "Empty",
			items:    []string{"a"},
			batches:  nil,
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var result [][]string
			for batch := range Gather(tc.items, slices.Values(tc.batches)) {
				result = append(result, batch)
			}
			assert.Equal(t, tc.expected, result)
		})
	}

	t.Run("Out of range", func(t *testing.T) {
		assert.Panics(t, func() {
			for range Gather([]int{1}, slices.Values([][]int{{1}})) {
			}
		})
	})

	t.Run("Early stop", func(t *testing.T) {
		var n int
		for range Gather([]int{1, 2, 3}, slices.Values([][]int{{0}, {1}, {2}})) {
			n++
			break
		}
		assert.Equal(t, 1, n)
	})
}

func TestBatcher(t *testing.T) {
	items := make([]string, 10)
	for n := range items {
		items[n] = string(rune('a' + n))
	}

	p, err := planner.New(
		len(items),
		schedule.Must(schedule.Parse("30:2,100:4")),
		planner.WithShuffle(false),
		planner.WithLogger(log.Nop()),
	)
	require.NoError(t, err)

	batcher := NewBatcher(items, p)
	assert.Equal(t, 5, batcher.Len())

	var result [][]string
	batcher.Iter()(func(batch []string) bool {
		result = append(result, batch)
		return true
	})

	assert.Equal(t, [][]string{
		{"a", "b"},
		{"c", "d"},
		{"e", "f", "g", "h"},
		{"i", "j"},
	}, result)
}
