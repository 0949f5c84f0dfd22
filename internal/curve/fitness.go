package curve

import "math"

// Samples is the number of x positions the error integral is taken over
const Samples = 1000

// Y evaluates a·(b·sin(x/c) + d·cos(x/e)) + f·x − g.
// A zero c or e is treated as 1.
func Y(x float64, p Params) float64 {
	a, b, c, d, e, f, g := p[0], p[1], p[2], p[3], p[4], p[5], p[6]
	if c == 0 {
		c = 1
	}
	if e == 0 {
		e = 1
	}
	return a*(b*math.Sin(x/c)+d*math.Cos(x/e)) + f*x - g
}

// Sample returns x = j/10 for sample j
func Sample(j int) float64 {
	return float64(j) / 10
}

// Fitness is the summed absolute error between the target curve and the
// candidate curve. The target is read unscaled, the candidate through Weight.
func Fitness(target, candidate Chromosome) float64 {
	want := target.Params()
	got := candidate.Scaled()

	var sum float64
	for j := 0; j < Samples; j++ {
		x := Sample(j)
		sum += math.Abs(Y(x, want) - Y(x, got))
	}
	return sum
}

// Curve samples y over the fitness domain
func Curve(p Params) []float64 {
	ys := make([]float64, Samples)
	for j := range ys {
		ys[j] = Y(Sample(j), p)
	}
	return ys
}
