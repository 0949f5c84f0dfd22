package tour

import (
	"fmt"
	"math/rand"
	"slices"

	"evoopt/internal/ga"
)

// Option configures an Engine
type Option func(*Engine)

// WithElitism lets the previous population compete with the children for survival
func WithElitism() Option {
	return func(e *Engine) {
		e.elitism = true
	}
}

// Engine evolves routes over a city table. It is not safe for concurrent use.
type Engine struct {
	cities  []City
	elitism bool
	rng     *rand.Rand

	population []Route
	costs      []float64

	best       Route
	bestCost   float64
	history    []float64
	generation int
}

// NewEngine seeds a population of random permutations over cities
func NewEngine(cities []City, rng *rand.Rand, opts ...Option) (*Engine, error) {
	if len(cities) < 2 {
		return nil, fmt.Errorf("tour over %d cities: %w", len(cities), ga.ErrInvariant)
	}
	if rng == nil {
		return nil, fmt.Errorf("nil random source: %w", ga.ErrInvariant)
	}

	e := &Engine{
		cities:     slices.Clone(cities),
		rng:        rng,
		population: make([]Route, ga.PopulationSize),
	}
	for _, opt := range opts {
		opt(e)
	}

	for i := range e.population {
		e.population[i] = RandomRoute(len(cities), rng)
	}
	e.costs = e.evaluate(e.population)
	e.best, e.bestCost = e.population[0], e.costs[0]
	for i, c := range e.costs {
		if c < e.bestCost {
			e.best, e.bestCost = e.population[i], c
		}
	}

	return e, nil
}

// Step runs one generation and returns the best route of the new population
func (e *Engine) Step() (Route, float64) {
	// e.costs always holds the lengths of e.population
	pool, _ := ga.SelectionPool(e.costs, ga.PopulationSize, ga.TournamentSize, e.rng)
	parents := make([]Route, len(pool))
	for i, idx := range pool {
		parents[i] = e.population[idx]
	}

	children := make([]Route, len(parents))
	for i, p := range parents {
		children[i] = Reproduce(p, e.rng)
	}

	candidates := children
	costs := e.evaluate(children)
	if e.elitism {
		candidates = append(slices.Clone(e.population), children...)
		costs = append(slices.Clone(e.costs), costs...)
	}

	ranked, _ := ga.Rank(candidates, costs)
	survivors, _ := ga.Survivors(ranked, ga.PopulationSize)
	e.population, e.costs = ga.Split(survivors)

	e.best, e.bestCost = e.population[0], e.costs[0]
	e.generation++
	e.history = append(e.history, e.bestCost)
	return e.best.Clone(), e.bestCost
}

// Run advances the engine. The argument is accepted for the driver's sake;
// each call advances exactly one generation.
func (e *Engine) Run(generations int) (Route, float64) {
	_ = generations
	return e.Step()
}

func (e *Engine) evaluate(routes []Route) []float64 {
	costs := make([]float64, len(routes))
	for i, r := range routes {
		costs[i] = length(e.cities, r)
	}
	return costs
}

// Best returns the best route found in the latest generation
func (e *Engine) Best() (Route, float64) {
	return e.best.Clone(), e.bestCost
}

// History returns the best route length of every completed generation
func (e *Engine) History() []float64 {
	return slices.Clone(e.history)
}

// Costs returns the route length of every member of the current population
func (e *Engine) Costs() []float64 {
	return slices.Clone(e.costs)
}

// Population returns a copy of the current routes
func (e *Engine) Population() []Route {
	out := make([]Route, len(e.population))
	for i, r := range e.population {
		out[i] = r.Clone()
	}
	return out
}

// Generation returns the number of completed generations
func (e *Engine) Generation() int {
	return e.generation
}

// Cities returns the table the engine measures routes against
func (e *Engine) Cities() []City {
	return slices.Clone(e.cities)
}
