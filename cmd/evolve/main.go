package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"nickandperla.net/evolve"
	"nickandperla.net/evolve/phrase"
)

var (
	configPath = flag.String("config", "./config.toml", "The config file for evolve tools to use. Defaults to './config.toml'")
	target     = flag.String("target", "", "Overrides the target phrase from the config")
	trials     = flag.Int("trials", 1, "Number of independent runs")
	noPersist  = flag.Bool("no-persist", false, "Skip writing generations to the database")
	verbose    = flag.Bool("v", false, "Log every generation and debug output")
)

type TrialResult struct {
	RunID       string
	Reason      evolve.TerminationReason
	Generations uint
	Best        evolve.Unit[string]
	Err         error
}

func main() {
	flag.Parse()
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	toolConfig, err := evolve.LoadToolConfig(*configPath)
	if err != nil {
		logrus.Fatalf("Unable to load evolve config: %v", err)
	}
	if *target != "" {
		toolConfig.Phrase.Target = *target
	}

	ops, err := phrase.New(phrase.Config{
		Target:    toolConfig.Phrase.Target,
		Alphabet:  toolConfig.Phrase.Alphabet,
		MutatePct: toolConfig.Phrase.MutatePct,
		CrossPct:  toolConfig.Phrase.CrossPct,
		Seed:      toolConfig.Phrase.Seed,
	})
	if err != nil {
		logrus.Fatalf("Invalid phrase config: %v", err)
	}

	engineConfig := toolConfig.Engine
	if engineConfig.StopScore == nil && toolConfig.Phrase.StopOnMatch {
		stop := ops.MaxScore()
		engineConfig.StopScore = &stop
	}

	var history []TrialResult
	for trial := 0; trial < *trials; trial++ {
		if *trials > 1 {
			logrus.Infof("========== TRIAL %d/%d ==========", trial+1, *trials)
		}
		result := runTrial(toolConfig, engineConfig, ops)
		history = append(history, result)
		if result.Err != nil {
			logrus.Errorf("Trial %d failed: %v", trial+1, result.Err)
			continue
		}
		logrus.Infof("Trial %d: reason=%s generations=%d score=%d distance=%d",
			trial+1, result.Reason, result.Generations, result.Best.Score, ops.Distance(result.Best.Content))
	}

	var successes int
	for _, r := range history {
		if r.Err == nil && r.Best.Score == ops.MaxScore() {
			successes++
		}
	}
	if *trials > 1 {
		logrus.Infof("Matched target in %d/%d trials", successes, len(history))
	}

	last := history[len(history)-1]
	if last.Err != nil {
		os.Exit(1)
	}
	fmt.Println(last.Best.Content)
}

func runTrial(toolConfig *evolve.ToolConfig, engineConfig evolve.EngineConfig, ops *phrase.Operators) TrialResult {
	var result TrialResult

	var sink evolve.Sink[string]
	if toolConfig.Persistence != nil && !*noPersist {
		sqliteSink, err := evolve.OpenSQLiteSink[string](toolConfig.Persistence, nil)
		if err != nil {
			result.Err = fmt.Errorf("failed to open population sink: %w", err)
			return result
		}
		result.RunID = sqliteSink.RunID()
		logrus.Infof("Persisting run %s to %s", result.RunID, toolConfig.Persistence.Name)
		sink = sqliteSink
	}

	var observer evolve.Observer[string]
	if *verbose {
		observer = evolve.NewLogObserver[string](logrus.StandardLogger())
	}

	engine, err := evolve.NewEngine[string](ops, engineConfig, sink, observer)
	if err != nil {
		if sink != nil {
			if cerr := sink.Close(); cerr != nil {
				logrus.WithError(cerr).Warn("failed to close population sink")
			}
		}
		result.Err = err
		return result
	}

	res, err := engine.Run(context.Background())
	if res != nil {
		result.Reason = res.Reason
		result.Generations = res.Generations
		if res.Population.Len() > 0 {
			result.Best = res.Population.Best()
		}
	}
	result.Err = err
	return result
}
