package tour

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evoopt/internal/ga"
)

func identity(n int) Route {
	r := make(Route, n)
	for i := range r {
		r[i] = i
	}
	return r
}

func TestCities_Table(t *testing.T) {
	require.Len(t, Cities, 20)
	assert.Equal(t, City{Name: "Mexico City", X: 10, Y: 190}, Cities[0])
	assert.Equal(t, City{Name: "Culiacán", X: 147, Y: 24}, Cities[13])
	assert.Equal(t, City{Name: "Torreón", X: 103, Y: 25}, Cities[19])
}

func TestFitness_IndexOrderMatchesOracle(t *testing.T) {
	var want float64
	for i := 1; i < len(Cities); i++ {
		want += math.Hypot(float64(Cities[i].X-Cities[i-1].X), float64(Cities[i].Y-Cities[i-1].Y))
	}

	got, err := Fitness(identity(len(Cities)))
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-9)
}

func TestLength_OpenPath(t *testing.T) {
	square := []City{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 4}}
	got, err := Length(square, Route{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 7.0, got)

	got, err = Length(square, Route{0, 2})
	require.NoError(t, err)
	assert.Equal(t, 5.0, got)

	got, err = Length(square, Route{1})
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestLength_RejectsOutOfRange(t *testing.T) {
	_, err := Length(Cities, Route{0, 20})
	assert.ErrorIs(t, err, ga.ErrInvariant)
	_, err = Length(Cities, Route{-1, 3})
	assert.ErrorIs(t, err, ga.ErrInvariant)
}

func TestInvert_PreservesPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		parent := RandomRoute(20, rng)
		child := Invert(parent, rng)

		assert.True(t, child.IsPermutation())
		assert.True(t, parent.IsPermutation(), "parent must not be modified")
		assert.NotEqual(t, parent, child)
	}
}

func TestInvertRange(t *testing.T) {
	got := invertRange(identity(6), 1, 4)
	assert.Equal(t, Route{0, 4, 3, 2, 1, 5}, got)

	got = invertRange(identity(6), 0, 5)
	assert.Equal(t, Route{5, 4, 3, 2, 1, 0}, got)
}

func TestSwapSections(t *testing.T) {
	got := swapSections(identity(8), 0, 5, 3)
	assert.Equal(t, Route{5, 6, 7, 3, 4, 0, 1, 2}, got)
}

func TestSegmentSwap_SectionsNeverOverlap(t *testing.T) {
	// starts are always at least a section apart, so a permutation stays a permutation
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		parent := RandomRoute(20, rng)
		child := SegmentSwap(parent, rng)
		assert.True(t, child.IsPermutation())
		assert.True(t, parent.IsPermutation())

		a, b := sortedCopy(parent), sortedCopy(child)
		assert.Equal(t, a, b)
	}
}

func TestOperators_ShortRoutes(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	assert.Equal(t, Route{0}, SegmentSwap(Route{0}, rng))
	assert.Equal(t, Route{0}, Invert(Route{0}, rng))
	assert.Equal(t, Route{1, 0}, Invert(Route{0, 1}, rng))
	assert.Equal(t, Route{1, 0}, SegmentSwap(Route{0, 1}, rng))
}

func TestNewEngine_RejectsBadInput(t *testing.T) {
	_, err := NewEngine(Cities[:1], rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ga.ErrInvariant)
	_, err = NewEngine(Cities, nil)
	assert.ErrorIs(t, err, ga.ErrInvariant)
}

func TestEngine_Step(t *testing.T) {
	e, err := NewEngine(Cities, rand.New(rand.NewSource(4)))
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		best, cost := e.Step()

		want, err := Fitness(best)
		require.NoError(t, err)
		assert.InDelta(t, want, cost, 1e-9)

		pop := e.Population()
		require.Len(t, pop, ga.PopulationSize)
		for _, r := range pop {
			assert.True(t, r.IsPermutation())
		}

		costs := e.Costs()
		assert.True(t, sort.Float64sAreSorted(costs))
		assert.Equal(t, costs[0], cost)
	}
	assert.Len(t, e.History(), 20)
	assert.Equal(t, 20, e.Generation())
}

func TestEngine_RunAdvancesOneGeneration(t *testing.T) {
	e, err := NewEngine(Cities, rand.New(rand.NewSource(5)))
	require.NoError(t, err)

	e.Run(5)
	assert.Equal(t, 1, e.Generation())
	e.Run(100)
	assert.Equal(t, 2, e.Generation())
	assert.Len(t, e.History(), 2)
}

func TestEngine_ElitismNeverRegresses(t *testing.T) {
	e, err := NewEngine(Cities, rand.New(rand.NewSource(6)), WithElitism())
	require.NoError(t, err)

	_, start := e.Best()
	for i := 0; i < 100; i++ {
		e.Step()
	}
	h := e.History()
	assert.LessOrEqual(t, h[0], start)
	for i := 1; i < len(h); i++ {
		assert.LessOrEqual(t, h[i], h[i-1], "generation %d", i)
	}
}

func TestEngine_BestIsACopy(t *testing.T) {
	e, err := NewEngine(Cities, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	best, _ := e.Step()
	best[0], best[1] = best[1], best[0]
	again, _ := e.Best()
	assert.NotEqual(t, best, again)
}

func sortedCopy(r Route) []int {
	out := append([]int(nil), r...)
	sort.Ints(out)
	return out
}
