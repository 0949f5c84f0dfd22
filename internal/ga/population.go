package ga

import (
	"errors"
	"fmt"
	"sort"
)

const (
	// PopulationSize is the number of chromosomes kept in every generation
	PopulationSize = 100
	// TournamentSize is the number of candidates drawn per tournament
	TournamentSize = 5
)

// ErrInvariant marks malformed input: wrong sizes, out-of-range indices, bad rates.
var ErrInvariant = errors.New("invariant violation")

// Ranked is a chromosome paired with its cost for the current generation
type Ranked[C any] struct {
	Genome C
	Cost   float64
}

// Rank pairs each genome with its cost. Lengths must match.
func Rank[C any](genomes []C, costs []float64) ([]Ranked[C], error) {
	if len(genomes) != len(costs) {
		return nil, fmt.Errorf("rank %d genomes with %d costs: %w", len(genomes), len(costs), ErrInvariant)
	}
	ranked := make([]Ranked[C], len(genomes))
	for i := range genomes {
		ranked[i] = Ranked[C]{Genome: genomes[i], Cost: costs[i]}
	}
	return ranked, nil
}

// Survivors sorts candidates by ascending cost and keeps the best n.
// Equal costs keep their incoming order.
func Survivors[C any](candidates []Ranked[C], n int) ([]Ranked[C], error) {
	if n < 1 || len(candidates) < n {
		return nil, fmt.Errorf("keep %d of %d candidates: %w", n, len(candidates), ErrInvariant)
	}
	sorted := make([]Ranked[C], len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Cost < sorted[j].Cost
	})
	return sorted[:n], nil
}

// Split separates ranked candidates back into genomes and costs
func Split[C any](ranked []Ranked[C]) ([]C, []float64) {
	genomes := make([]C, len(ranked))
	costs := make([]float64, len(ranked))
	for i, r := range ranked {
		genomes[i] = r.Genome
		costs[i] = r.Cost
	}
	return genomes, costs
}
