package index

import (
	"math/rand/v2"
	"slices"

	"git.tatikoma.dev/corpix/progbatch/errors"
)

type (
	// Generator is an optional deterministic randomness handle.
	// A nil Generator means the unseeded global source.
	Generator = *rand.Rand

	// Source supplies the order in which indices [0, n) are visited during one pass.
	Source interface {
		Identity(n int) []int
		Permutation(n int, g Generator) []int
	}

	Random struct{}

	// Fixed replays a predefined ordering instead of shuffling.
	Fixed struct {
		order []int
	}
)

var Default Source = Random{}

func NewGenerator(seed uint64) Generator {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func Identity(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}

func (Random) Identity(n int) []int {
	return Identity(n)
}

func (Random) Permutation(n int, g Generator) []int {
	if g == nil {
		return rand.Perm(n)
	}
	return g.Perm(n)
}

func (f Fixed) Identity(n int) []int {
	return Identity(n)
}

// Permutation returns a copy of the fixed ordering.
// It panics when the ordering was built for a different n.
func (f Fixed) Permutation(n int, _ Generator) []int {
	if len(f.order) != n {
		panic(errors.Errorf("fixed ordering covers %d indices, requested %d", len(f.order), n))
	}
	return slices.Clone(f.order)
}

func NewFixed(order []int) (Fixed, error) {
	if !IsPermutation(order, len(order)) {
		return Fixed{}, errors.NewConfigError("order", "not a permutation of [0, %d)", len(order))
	}
	return Fixed{order: slices.Clone(order)}, nil
}

// IsPermutation reports whether order holds every value of [0, n) exactly once.
func IsPermutation(order []int, n int) bool {
	if len(order) != n {
		return false
	}
	seen := make([]bool, n)
	for _, v := range order {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}
