package curve

import (
	"fmt"
	"math"
	"math/rand"
	"slices"

	"evoopt/internal/ga"
)

// Engine evolves curve chromosomes toward Reference.
// It is not safe for concurrent use.
type Engine struct {
	mutation float64
	elitism  bool
	target   Chromosome
	rng      *rand.Rand

	// initial random population, only used to seed the first parents
	seed []Chromosome

	parents     []Chromosome
	parentCosts []float64
	children    []Chromosome

	history    []float64
	generation int
}

// NewEngine seeds a random population and draws the first parents from it by tournament.
// A mutation percentage of 0 disables mutation.
func NewEngine(mutationPercentage float64, elitism bool, rng *rand.Rand) (*Engine, error) {
	if math.IsNaN(mutationPercentage) || mutationPercentage < 0 {
		return nil, fmt.Errorf("mutation percentage %v: %w", mutationPercentage, ga.ErrInvariant)
	}
	if rng == nil {
		return nil, fmt.Errorf("nil random source: %w", ga.ErrInvariant)
	}

	e := &Engine{
		mutation: mutationPercentage,
		elitism:  elitism,
		target:   Reference,
		rng:      rng,
		seed:     make([]Chromosome, ga.PopulationSize),
	}

	for i := range e.seed {
		e.seed[i] = RandomChromosome(rng)
	}

	costs := e.evaluate(e.seed)
	pool, err := ga.SelectionPool(costs, ga.PopulationSize, ga.TournamentSize, rng)
	if err != nil {
		return nil, err
	}

	e.parents = make([]Chromosome, len(pool))
	e.parentCosts = make([]float64, len(pool))
	for i, idx := range pool {
		e.parents[i] = e.seed[idx]
		e.parentCosts[i] = costs[idx]
	}

	return e, nil
}

// Step runs one generation and returns the best survivor with its fitness
func (e *Engine) Step() (Chromosome, float64) {
	e.breed()

	candidates := e.children
	costs := e.evaluate(e.children)
	if e.elitism {
		// parents keep their cached cost
		candidates = append(slices.Clone(e.parents), e.children...)
		costs = append(slices.Clone(e.parentCosts), costs...)
	}

	ranked, _ := ga.Rank(candidates, costs)
	survivors, _ := ga.Survivors(ranked, ga.PopulationSize)
	e.parents, e.parentCosts = ga.Split(survivors)

	e.generation++
	e.history = append(e.history, e.parentCosts[0])
	return e.parents[0], e.parentCosts[0]
}

// breed pairs parents (0,1), (2,3), ... and mutates each child when enabled
func (e *Engine) breed() {
	e.children = make([]Chromosome, 0, len(e.parents))
	for i := 0; i+1 < len(e.parents); i += 2 {
		c1, c2 := Crossover(e.parents[i], e.parents[i+1], e.rng)
		if e.mutation > 0 {
			Mutate(&c1, e.mutation, e.rng)
			Mutate(&c2, e.mutation, e.rng)
		}
		e.children = append(e.children, c1, c2)
	}
}

func (e *Engine) evaluate(genomes []Chromosome) []float64 {
	costs := make([]float64, len(genomes))
	for i, g := range genomes {
		costs[i] = Fitness(e.target, g)
	}
	return costs
}

// Best returns the current best chromosome and its fitness.
// Before the first Step this is the best of the seeded parents.
func (e *Engine) Best() (Chromosome, float64) {
	best := 0
	for i, c := range e.parentCosts {
		if c < e.parentCosts[best] {
			best = i
		}
	}
	return e.parents[best], e.parentCosts[best]
}

// History returns the best fitness of every completed generation
func (e *Engine) History() []float64 {
	return slices.Clone(e.history)
}

// Costs returns the fitness of every member of the current population
func (e *Engine) Costs() []float64 {
	return slices.Clone(e.parentCosts)
}

// Population returns a copy of the current population
func (e *Engine) Population() []Chromosome {
	return slices.Clone(e.parents)
}

// Generation returns the number of completed generations
func (e *Engine) Generation() int {
	return e.generation
}

// Target returns the chromosome the engine fits against
func (e *Engine) Target() Chromosome {
	return e.target
}
