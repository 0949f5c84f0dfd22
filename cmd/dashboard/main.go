package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"evoopt/internal/config"
	"evoopt/internal/curve"
	"evoopt/internal/dashboard"
	"evoopt/internal/tour"
)

func main() {
	configPath := flag.String("config", "", "path to config file (defaults when empty)")
	problem := flag.String("problem", "curve", "problem to show: curve|tour")
	sound := flag.Bool("sound", false, "chime when the best fitness improves")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	view, interval, err := buildView(*problem, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing screen: %v\n", err)
		os.Exit(1)
	}

	d := dashboard.New(screen, view, interval)
	if *sound || cfg.Dashboard.Sound {
		chime, err := dashboard.NewChime()
		if err != nil {
			// Non-fatal, the dashboard runs without sound
			log.Printf("Audio initialization failed: %v", err)
		}
		d.SetChime(chime)
	}

	err = d.Run(context.Background())
	screen.Fini()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	h := view.History()
	if len(h) > 0 {
		fmt.Printf("%s: %d generations, best fitness %.4f\n", view.Title(), view.Generation(), h[len(h)-1])
	}
}

func buildView(problem string, cfg *config.Config) (dashboard.View, time.Duration, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))

	switch problem {
	case "curve":
		e, err := curve.NewEngine(cfg.Curve.MutationPercentage, cfg.Curve.Elitism, rng)
		if err != nil {
			return nil, 0, err
		}
		return dashboard.NewCurveView(e), time.Duration(cfg.Dashboard.CurveIntervalMs) * time.Millisecond, nil

	case "tour":
		var opts []tour.Option
		if cfg.Tour.Elitism {
			opts = append(opts, tour.WithElitism())
		}
		e, err := tour.NewEngine(tour.Cities, rng, opts...)
		if err != nil {
			return nil, 0, err
		}
		interval := time.Duration(cfg.Dashboard.TourIntervalMs) * time.Millisecond
		return dashboard.NewTourView(e, cfg.Tour.Generations), interval, nil
	}
	return nil, 0, fmt.Errorf("unknown problem %q (want curve or tour)", problem)
}
