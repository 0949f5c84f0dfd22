package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"evoopt/internal/config"
	"evoopt/internal/curve"
	"evoopt/internal/logging"
	"evoopt/internal/tour"
)

// runner is the part of an engine the training loop drives
type runner interface {
	step() (best []int, fitness float64)
	generation() int
	costs() []float64
	history() []float64
}

type curveRunner struct{ e *curve.Engine }

func (r curveRunner) step() ([]int, float64) {
	best, f := r.e.Step()
	return best.Ints(), f
}
func (r curveRunner) generation() int    { return r.e.Generation() }
func (r curveRunner) costs() []float64   { return r.e.Costs() }
func (r curveRunner) history() []float64 { return r.e.History() }

type tourRunner struct{ e *tour.Engine }

func (r tourRunner) step() ([]int, float64) {
	best, f := r.e.Run(1)
	return best, f
}
func (r tourRunner) generation() int    { return r.e.Generation() }
func (r tourRunner) costs() []float64   { return r.e.Costs() }
func (r tourRunner) history() []float64 { return r.e.History() }

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "path to config file (defaults when empty)")
	problem := flag.String("problem", "curve", "problem to run: curve|tour")
	generations := flag.Int("generations", 0, "number of generations to run (config value when 0)")
	flag.Parse()

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	var r runner
	limit := *generations
	switch *problem {
	case "curve":
		e, err := curve.NewEngine(cfg.Curve.MutationPercentage, cfg.Curve.Elitism, rng)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating engine: %v\n", err)
			os.Exit(1)
		}
		r = curveRunner{e}
		if limit == 0 {
			limit = cfg.Curve.Generations
		}
		fmt.Printf("Curve fitting - mutation: %.2f%%, elitism: %v\n", cfg.Curve.MutationPercentage, cfg.Curve.Elitism)
		fmt.Printf("Target: %v (weight %d)\n", curve.Reference.Ints(), curve.Weight)

	case "tour":
		var opts []tour.Option
		if cfg.Tour.Elitism {
			opts = append(opts, tour.WithElitism())
		}
		e, err := tour.NewEngine(tour.Cities, rng, opts...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating engine: %v\n", err)
			os.Exit(1)
		}
		r = tourRunner{e}
		if limit == 0 {
			limit = cfg.Tour.Generations
		}
		fmt.Printf("Traveling salesman - %d cities, elitism: %v\n", len(tour.Cities), cfg.Tour.Elitism)

	default:
		fmt.Fprintf(os.Stderr, "Unknown problem %q (want curve or tour)\n", *problem)
		os.Exit(2)
	}
	fmt.Printf("Seed: %d, Generations: %d\n", cfg.Seed, limit)
	fmt.Println("---")

	// Create logger
	logger, err := logging.NewLogger(cfg.Logging.CSVPath, cfg.Logging.JSONPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	startTime := time.Now()

	var best []int
	var bestFitness float64
	for gen := 1; gen <= limit; gen++ {
		best, bestFitness = r.step()

		if cfg.Logging.EveryGenSummary {
			logger.LogGeneration(logging.Snapshot{
				Problem:    *problem,
				Generation: r.generation(),
				Costs:      r.costs(),
				Best:       best,
			})
		}

		if cfg.Logging.SaveChampionEvery > 0 && gen%cfg.Logging.SaveChampionEvery == 0 {
			path := filepath.Join(cfg.Logging.ArtifactsDir, fmt.Sprintf("%s_champion_gen%d.json", *problem, gen))
			if err := logging.SaveChampion(path, champion(*problem, r, best, bestFitness)); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to save champion: %v\n", err)
			}
		}
	}

	elapsed := time.Since(startTime)
	fmt.Println("---")
	fmt.Printf("Run complete! %d generations in %v\n", limit, elapsed)
	if best == nil {
		return
	}
	fmt.Printf("Best: fitness=%.4f genome=%v\n", bestFitness, best)

	path := filepath.Join(cfg.Logging.ArtifactsDir, *problem+"_champion_final.json")
	if err := logging.SaveChampion(path, champion(*problem, r, best, bestFitness)); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to save final champion: %v\n", err)
	}
}

func champion(problem string, r runner, best []int, fitness float64) logging.Champion {
	return logging.Champion{
		Problem:    problem,
		Generation: r.generation(),
		Fitness:    fitness,
		Genome:     best,
		History:    r.history(),
	}
}
