package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.tatikoma.dev/corpix/progbatch/errors"
)

func TestIdentity(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3}, Identity(4))
	assert.Empty(t, Identity(0))
	assert.Equal(t, Identity(5), Random{}.Identity(5))
}

func TestRandomPermutation(t *testing.T) {
	src := Random{}

	t.Run("unseeded", func(t *testing.T) {
		for _, n := range []int{0, 1, 7, 100} {
			assert.True(t, IsPermutation(src.Permutation(n, nil), n), "n=%d", n)
		}
	})

	t.Run("seeded is reproducible", func(t *testing.T) {
		a := src.Permutation(64, NewGenerator(42))
		b := src.Permutation(64, NewGenerator(42))
		c := src.Permutation(64, NewGenerator(43))

		assert.True(t, IsPermutation(a, 64))
		assert.Equal(t, a, b)
		assert.NotEqual(t, a, c)
	})

	t.Run("generator advances between draws", func(t *testing.T) {
		g := NewGenerator(7)
		a := src.Permutation(64, g)
		b := src.Permutation(64, g)
		assert.NotEqual(t, a, b)
	})
}

func TestFixed(t *testing.T) {
	order := []int{2, 0, 3, 1}
	src, err := NewFixed(order)
	require.NoError(t, err)

	order[0] = 0
	got := src.Permutation(4, nil)
	assert.Equal(t, []int{2, 0, 3, 1}, got)

	got[0] = 9
	assert.Equal(t, []int{2, 0, 3, 1}, src.Permutation(4, NewGenerator(1)))
	assert.Equal(t, []int{0, 1, 2, 3}, src.Identity(4))

	assert.Panics(t, func() { src.Permutation(5, nil) })

	_, err = NewFixed([]int{0, 0, 1})
	assert.True(t, errors.Is(err, errors.ErrConfig))
}

func TestIsPermutation(t *testing.T) {
	testCases := []struct {
		name     string
		order    []int
		n        int
		expected bool
	}{
		{name: "empty", order: nil, n: 0, expected: true},
		{name: "identity", order: []int{0, 1, 2}, n: 3, expected: true},
		{name: "shuffled", order: []int{2, 0, 1}, n: 3, expected: true},
		{name: "duplicate", order: []int{0, 0, 1}, n: 3, expected: false},
		{name: "out of range", order: []int{0, 1, 3}, n: 3, expected: false},
		{name: "negative", order: []int{-1, 0, 1}, n: 3, expected: false},
		{name: "short", order: []int{0, 1}, n: 3, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsPermutation(tc.order, tc.n))
		})
	}
}
