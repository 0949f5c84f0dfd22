package curve

import (
	"math"
	"math/rand"
)

// FlipCount is the number of bit flips a mutation percentage asks for
func FlipCount(percentage float64) int {
	if percentage <= 0 {
		return 0
	}
	return int(math.Round(256 / percentage))
}

// Mutate flips FlipCount(percentage) randomly chosen bits in place.
// The same bit may be drawn twice, which cancels the flip.
func Mutate(c *Chromosome, percentage float64, rng *rand.Rand) {
	for n := FlipCount(percentage); n > 0; n-- {
		byteIdx := rng.Intn(Genes)
		bit := rng.Intn(8)
		c[byteIdx] = flipBit(c[byteIdx], bit)
	}
}

func flipBit(b uint8, bit int) uint8 {
	return b ^ (1 << uint(bit))
}
