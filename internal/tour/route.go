package tour

import (
	"fmt"
	"math"
	"math/rand"

	"evoopt/internal/ga"
)

// Route visits cities in order by index. It is an open path: there is no
// edge back to the first city.
type Route []int

// Clone returns an independent copy
func (r Route) Clone() Route {
	out := make(Route, len(r))
	copy(out, r)
	return out
}

// IsPermutation reports whether r holds each of 0..len(r)-1 exactly once
func (r Route) IsPermutation() bool {
	seen := make([]bool, len(r))
	for _, c := range r {
		if c < 0 || c >= len(r) || seen[c] {
			return false
		}
		seen[c] = true
	}
	return true
}

// RandomRoute returns a uniformly shuffled permutation of n cities
func RandomRoute(n int, rng *rand.Rand) Route {
	return Route(rng.Perm(n))
}

// Distance is the Euclidean distance between two cities
func Distance(a, b City) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Length sums the segment distances along route. Indices outside cities are rejected.
func Length(cities []City, route Route) (float64, error) {
	for i, c := range route {
		if c < 0 || c >= len(cities) {
			return 0, fmt.Errorf("route position %d names city %d of %d: %w", i, c, len(cities), ga.ErrInvariant)
		}
	}
	return length(cities, route), nil
}

// Fitness is the route length over the fixed city table
func Fitness(route Route) (float64, error) {
	return Length(Cities, route)
}

func length(cities []City, route Route) float64 {
	var total float64
	for i := 1; i < len(route); i++ {
		total += Distance(cities[route[i-1]], cities[route[i]])
	}
	return total
}
