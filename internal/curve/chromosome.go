package curve

import (
	"math/rand"
)

const (
	// Genes is the chromosome length in bytes, one byte per curve parameter
	Genes = 7
	// Bits is the number of addressable bits in a chromosome
	Bits = Genes * 8
	// Weight divides every stored gene before it is used as a parameter
	Weight = 5
)

// Chromosome packs the parameters (a, b, c, d, e, f, g) as raw 8-bit genes
type Chromosome [Genes]uint8

// Params is a chromosome decoded to real-valued curve parameters
type Params [Genes]float64

// Reference is the chromosome that defines the target curve
var Reference = Chromosome{8, 25, 4, 45, 10, 17, 35}

// RandomChromosome returns a chromosome with every gene uniform in [0, 255]
func RandomChromosome(rng *rand.Rand) Chromosome {
	var c Chromosome
	for i := range c {
		c[i] = uint8(rng.Intn(256))
	}
	return c
}

// Params reads the genes as parameters without scaling
func (c Chromosome) Params() Params {
	var p Params
	for i, g := range c {
		p[i] = float64(g)
	}
	return p
}

// Scaled divides every gene by Weight
func (c Chromosome) Scaled() Params {
	var p Params
	for i, g := range c {
		p[i] = float64(g) / Weight
	}
	return p
}

// Ints returns the genes as plain integers for reporting
func (c Chromosome) Ints() []int {
	out := make([]int, Genes)
	for i, g := range c {
		out[i] = int(g)
	}
	return out
}
