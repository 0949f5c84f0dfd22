package tour

import "math/rand"

// swapAttempts bounds the search for non-overlapping sections
const swapAttempts = 100

// SegmentSwap exchanges two equal-length, non-overlapping sections of a copy of parent.
// The section length is drawn in [1, len/2]. The second start is redrawn until the
// sections are apart; after swapAttempts redraws the sections are pinned to both ends.
func SegmentSwap(parent Route, rng *rand.Rand) Route {
	n := len(parent)
	if n < 2 {
		return parent.Clone()
	}

	section := 1 + rng.Intn(n/2)
	start1 := rng.Intn(n - section + 1)
	start2 := rng.Intn(n - section + 1)

	attempts := 0
	for abs(start1-start2) < section && attempts < swapAttempts {
		start2 = rng.Intn(n - section + 1)
		attempts++
	}
	if attempts >= swapAttempts {
		start1 = 0
		start2 = n - section
	}

	return swapSections(parent, start1, start2, section)
}

func swapSections(parent Route, start1, start2, section int) Route {
	child := parent.Clone()
	copy(child[start2:start2+section], parent[start1:start1+section])
	copy(child[start1:start1+section], parent[start2:start2+section])
	return child
}

// Invert reverses a random sub-sequence of a copy of parent.
// start is drawn in [0, len-2] and end in [start+1, len-1], both inclusive.
func Invert(parent Route, rng *rand.Rand) Route {
	n := len(parent)
	if n < 2 {
		return parent.Clone()
	}

	start := rng.Intn(n - 1)
	end := start + 1 + rng.Intn(n-1-start)
	return invertRange(parent, start, end)
}

func invertRange(parent Route, start, end int) Route {
	child := parent.Clone()
	for i, j := start, end; i < j; i, j = i+1, j-1 {
		child[i], child[j] = child[j], child[i]
	}
	return child
}

// Reproduce produces one child with SegmentSwap or Invert, chosen with equal odds
func Reproduce(parent Route, rng *rand.Rand) Route {
	if rng.Intn(2) == 0 {
		return SegmentSwap(parent, rng)
	}
	return Invert(parent, rng)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
