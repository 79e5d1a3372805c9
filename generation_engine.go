package evolve

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Engine evolves a population of T. It owns the population exclusively and
// replaces it wholesale once per generation. An Engine runs once.
type Engine[T any] struct {
	config     EngineConfig
	selector   *Selector
	culler     *Culler[T]
	reproducer *Reproducer[T]
	sink       Sink[T]
	observer   Observer[T]
	log        logrus.FieldLogger

	population *Population[T]
	spent      bool
}

// Result is what Run hands back. On error Population is the last well-formed
// population (nil if initialization failed) and FailedGeneration is the
// generation that was being built or persisted.
type Result[T any] struct {
	Population       *Population[T]
	Generations      uint
	Reason           TerminationReason
	FailedGeneration uint
	History          []GenerationReport[T]
}

// NewEngine validates config and wires the engine. sink and observer are
// optional. The engine takes ownership of sink only once construction
// succeeds; Run closes it.
func NewEngine[T any](ops Operators[T], config EngineConfig, sink Sink[T], observer Observer[T]) (*Engine[T], error) {
	if ops == nil {
		return nil, &ConfigurationError{Field: "operators", Reason: "must not be nil"}
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.StopScore != nil {
		stop := *config.StopScore
		config.StopScore = &stop
	}

	selector := NewSelector(config)
	processor := NewProcessor(NewEvaluator(ops), config.Parallelism)

	return &Engine[T]{
		config:     config,
		selector:   selector,
		culler:     NewCuller[T](config.KeepSize()),
		reproducer: NewReproducer(selector, processor),
		sink:       sink,
		observer:   observer,
		log:        logrus.WithField("component", "engine"),
	}, nil
}

// SetLogger replaces the engine's logger.
func (e *Engine[T]) SetLogger(logger logrus.FieldLogger) {
	e.log = logger
}

func (e *Engine[T]) Config() EngineConfig {
	return e.config
}

func (e *Engine[T]) Cohorts() CohortSizes {
	return e.selector.Sizes()
}

// Population returns the current ranked population, nil before Initialize.
func (e *Engine[T]) Population() *Population[T] {
	return e.population
}

// Initialize creates pop_size random units tagged generation 0 and ranks
// them.
func (e *Engine[T]) Initialize() (*Population[T], error) {
	units, err := e.reproducer.Synthesize(e.config.PopSize)
	if err != nil {
		return nil, err
	}
	e.population = NewPopulation(units)
	return e.population, nil
}

// Step builds generation from the current population: the elite are kept,
// the mutation, cross-over and random cohorts are appended, and the result
// is ranked. The engine's population is only replaced on success.
func (e *Engine[T]) Step(generation uint) (*Population[T], error) {
	if e.population == nil {
		return nil, fmt.Errorf("step %d called before initialize", generation)
	}
	kept, culled := e.culler.Cull(e.population)
	offspring, err := e.reproducer.Reproduce(e.population, generation)
	if err != nil {
		return nil, err
	}
	next := NewPopulation(append(kept, offspring...))
	if uint(next.Len()) != e.config.PopSize {
		return nil, fmt.Errorf("generation %d assembled %d units, want %d", generation, next.Len(), e.config.PopSize)
	}
	e.log.WithFields(logrus.Fields{
		"generation": generation,
		"culled":     culled,
		"offspring":  len(offspring),
	}).Debug("generation assembled")
	e.population = next
	return next, nil
}

// Run initializes the population and steps through generations 1..max_gens,
// stopping early once the best score reaches the stop score.
func (e *Engine[T]) Run(ctx context.Context) (res *Result[T], err error) {
	if e.spent {
		return nil, ErrEngineSpent
	}
	e.spent = true

	res = &Result[T]{Reason: Aborted}
	if e.sink != nil {
		defer func() {
			if cerr := e.sink.Close(); cerr != nil {
				e.log.WithError(cerr).Warn("failed to close population sink")
				if err == nil {
					res.Reason = Aborted
					res.FailedGeneration = res.Generations
					err = &PersistenceError{Generation: res.Generations, Err: cerr}
				}
			}
		}()
	}

	start := time.Now()
	if _, err = e.Initialize(); err != nil {
		return res, err
	}
	res.Population = e.population

	reason := MaxGenerationsReached
	for idx := uint(1); idx <= e.config.MaxGens; idx++ {
		next, err := e.Step(idx)
		if err != nil {
			res.FailedGeneration = idx
			return res, err
		}
		res.Population = next
		res.Generations = idx

		best := next.Best()
		elapsed := time.Since(start)
		res.History = append(res.History, GenerationReport[T]{
			Index:   idx,
			Best:    best,
			Elapsed: elapsed,
			Culled:  e.config.NewSize(),
			Cohorts: e.selector.Sizes(),
		})
		if e.observer != nil {
			e.observer.OnGeneration(idx, best, elapsed)
		}

		if err := e.persist(ctx, idx, next); err != nil {
			res.FailedGeneration = idx
			return res, err
		}

		if e.config.StopScore != nil && best.Score >= *e.config.StopScore {
			e.log.Info("Stop score reached")
			reason = StopScoreReached
			break
		}
	}
	res.Reason = reason

	best := e.population.Best()
	e.log.WithField("reason", reason).Infof("Final Gen: %d; Max Score: %d; Current: %v; Elapsed: %.2fs",
		res.Generations, best.Score, best.Content, time.Since(start).Seconds())
	return res, nil
}

func (e *Engine[T]) persist(ctx context.Context, generation uint, pop *Population[T]) error {
	if e.sink == nil {
		return nil
	}
	snap, err := pop.Snapshot()
	if err != nil {
		return &PersistenceError{Generation: generation, Err: err}
	}
	if err := e.sink.Write(ctx, generation, snap); err != nil {
		return &PersistenceError{Generation: generation, Err: err}
	}
	return nil
}

// Run is a convenience for constructing an Engine and running it once.
func Run[T any](ctx context.Context, config EngineConfig, ops Operators[T], sink Sink[T], observer Observer[T]) (*Result[T], error) {
	engine, err := NewEngine(ops, config, sink, observer)
	if err != nil {
		return nil, err
	}
	return engine.Run(ctx)
}
