package main

import (
	"flag"
	"fmt"
	"os"

	"evoopt/internal/curve"
	"evoopt/internal/logging"
	"evoopt/internal/tour"
)

func main() {
	// Parse flags
	championPath := flag.String("champion", "artifacts/curve_champion_final.json", "path to champion JSON")
	flag.Parse()

	// Load champion
	champion, err := logging.LoadChampion(*championPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading champion: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Loaded %s champion from gen %d (fitness=%.4f)\n", champion.Problem, champion.Generation, champion.Fitness)
	fmt.Println()

	switch champion.Problem {
	case "curve":
		err = showCurve(champion)
	case "tour":
		err = showTour(champion)
	default:
		err = fmt.Errorf("unknown problem %q", champion.Problem)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func showCurve(c *logging.Champion) error {
	if len(c.Genome) != curve.Genes {
		return fmt.Errorf("curve genome has %d genes, want %d", len(c.Genome), curve.Genes)
	}

	var chrom curve.Chromosome
	for i, g := range c.Genome {
		if g < 0 || g > 255 {
			return fmt.Errorf("gene %d = %d outside [0,255]", i, g)
		}
		chrom[i] = uint8(g)
	}

	names := []string{"a", "b", "c", "d", "e", "f", "g"}
	scaled := chrom.Scaled()
	for i, name := range names {
		fmt.Printf("  %s = %3d / %d = %7.2f   (target %d)\n", name, chrom[i], curve.Weight, scaled[i], curve.Reference[i])
	}

	fmt.Println("═══════════════════════════════════")
	fmt.Printf("  Recomputed fitness: %.4f\n", curve.Fitness(curve.Reference, chrom))
	fmt.Println("═══════════════════════════════════")
	return nil
}

func showTour(c *logging.Champion) error {
	route := tour.Route(c.Genome)
	length, err := tour.Fitness(route)
	if err != nil {
		return err
	}

	for i, idx := range route {
		city := tour.Cities[idx]
		fmt.Printf("  %2d. %-16s (%3d, %3d)\n", i+1, city.Name, city.X, city.Y)
	}

	fmt.Println("═══════════════════════════════════")
	fmt.Printf("  Recomputed length: %.4f\n", length)
	if !route.IsPermutation() {
		fmt.Println("  Warning: route repeats or skips cities")
	}
	fmt.Println("═══════════════════════════════════")
	return nil
}
