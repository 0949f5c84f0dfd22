package curve

import (
	"fmt"
	"math/rand"

	"evoopt/internal/ga"
)

// Masks returns the split byte index and the bottom/top masks for a bit partition point.
// Bits below the offset belong to the bottom mask, the rest to the top mask.
func Masks(point int) (byteIdx int, bottom, top uint8) {
	byteIdx = point / 8
	offset := uint(point % 8)
	bottom = uint8(1<<offset) - 1
	top = ^bottom
	return byteIdx, bottom, top
}

// CrossoverAt performs a single-point crossover at bit granularity.
// Bytes before the split byte come from the first parent, bytes after from the second;
// the split byte joins the first parent's top bits with the second's bottom bits.
// The second child mirrors this.
func CrossoverAt(p1, p2 Chromosome, point int) (Chromosome, Chromosome, error) {
	if point < 1 || point >= Bits {
		return Chromosome{}, Chromosome{}, fmt.Errorf("partition point %d outside [1,%d]: %w", point, Bits-1, ga.ErrInvariant)
	}

	idx, bottom, top := Masks(point)

	var c1, c2 Chromosome
	copy(c1[:idx], p1[:idx])
	copy(c2[:idx], p2[:idx])
	c1[idx] = p1[idx]&top | p2[idx]&bottom
	c2[idx] = p2[idx]&top | p1[idx]&bottom
	copy(c1[idx+1:], p2[idx+1:])
	copy(c2[idx+1:], p1[idx+1:])

	return c1, c2, nil
}

// Crossover picks a partition point uniformly in [1, Bits-1]
func Crossover(p1, p2 Chromosome, rng *rand.Rand) (Chromosome, Chromosome) {
	point := 1 + rng.Intn(Bits-1)
	c1, c2, _ := CrossoverAt(p1, p2, point)
	return c1, c2
}
