package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"nickandperla.net/evolve"
)

var configPath = flag.String("config", "./config.toml", "The config file for evolve tools to use")
var runID = flag.String("run", "", "The run to report on. Empty reports across every run")
var top = flag.Int("top", 5, "Number of best units of the run's last generation to print")

func main() {
	flag.Parse()
	logrus.SetOutput(os.Stderr)

	toolConfig, err := evolve.LoadToolConfig(*configPath)
	if err != nil {
		logrus.Fatalf("Unable to load evolve config: %v", err)
	}
	if toolConfig.Persistence == nil {
		logrus.Fatalf("Config %s has no [persistence] section", *configPath)
	}

	persist, err := evolve.NewPersistence(toolConfig.Persistence)
	if err != nil {
		logrus.Fatalf("Failed to create or initialize Persistence: %v", err)
	}
	defer persist.Shutdown()

	ctx := context.Background()

	runs, err := persist.Runs(ctx)
	if err != nil {
		logrus.Fatalf("Unable to list runs: %v", err)
	}
	fmt.Printf("Runs in %s:\n", toolConfig.Persistence.Name)
	for _, r := range runs {
		fmt.Printf("  %s  generations=%-5d best=%-5d rows=%d\n", r.RunID, r.Generations, r.BestScore, r.RowCount)
	}

	byGen, err := persist.GenerationOriginStats(ctx, *runID)
	if err != nil {
		logrus.Fatalf("Generation stats failed: %v", err)
	}
	fmt.Printf("\nAverage score by generation and origin:\n")
	for _, s := range byGen {
		fmt.Printf("  %5d  %-10s  %8.2f  (%d)\n", s.Generation, s.Origin, s.AvgScore, s.Count)
	}

	byOrigin, err := persist.OriginStats(ctx, *runID)
	if err != nil {
		logrus.Fatalf("Origin stats failed: %v", err)
	}
	fmt.Printf("\nAverage score by origin:\n")
	for _, s := range byOrigin {
		fmt.Printf("  %-10s  avg=%8.2f  max=%-5d  units=%d\n", s.Origin, s.AvgScore, s.MaxScore, s.Count)
	}

	if *runID == "" {
		return
	}
	best, err := persist.BestUnits(ctx, *runID, *top)
	if err != nil {
		logrus.Fatalf("Best units failed: %v", err)
	}
	fmt.Printf("\nBest units of run %s:\n", *runID)
	for _, u := range best {
		fmt.Printf("  #%-3d score=%-5d origin=%-10s born=%-5d %q\n", u.Rank, u.Score, u.Origin, u.UnitGeneration, u.Content)
	}
}
