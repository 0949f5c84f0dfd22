package ga

import (
	"fmt"
	"math/rand"
)

// Tournament draws k distinct indices from [0, len(costs)) and returns the one
// with the lowest cost. Ties go to the candidate drawn first.
func Tournament(costs []float64, k int, rng *rand.Rand) (int, error) {
	n := len(costs)
	if k < 1 || n < k {
		return 0, fmt.Errorf("tournament of %d over %d candidates: %w", k, n, ErrInvariant)
	}

	// Partial Fisher-Yates over an index table gives k draws without replacement
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	best := -1
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
		candidate := idx[i]
		if best < 0 || costs[candidate] < costs[best] {
			best = candidate
		}
	}
	return best, nil
}

// SelectionPool fills a breeding pool of the given size with tournament winners.
// The returned slice holds indices into costs.
func SelectionPool(costs []float64, size, k int, rng *rand.Rand) ([]int, error) {
	pool := make([]int, size)
	for i := range pool {
		winner, err := Tournament(costs, k, rng)
		if err != nil {
			return nil, err
		}
		pool[i] = winner
	}
	return pool, nil
}
