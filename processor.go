package evolve

import (
	"fmt"
	"sync"
)

// Processor runs offspring tasks against a ranked population. Results are
// written to the slot of their task so the output order never depends on
// scheduling.
type Processor[T any] struct {
	evaluator *Evaluator[T]
	workers   int
}

func NewProcessor[T any](evaluator *Evaluator[T], workers uint) *Processor[T] {
	if workers < 1 {
		workers = 1
	}
	return &Processor[T]{evaluator: evaluator, workers: int(workers)}
}

// Process produces one Unit per task. The first error aborts the batch.
func (p *Processor[T]) Process(parents *Population[T], generation uint, tasks []Task) ([]Unit[T], error) {
	out := make([]Unit[T], len(tasks))
	if p.workers == 1 || len(tasks) < 2 {
		for i, task := range tasks {
			u, err := p.run(parents, generation, task)
			if err != nil {
				return nil, err
			}
			out[i] = u
		}
		return out, nil
	}

	workers := p.workers
	if workers > len(tasks) {
		workers = len(tasks)
	}
	chunkSize := len(tasks) / workers
	errs := make([]error, workers)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if w == workers-1 {
			end = len(tasks)
		}
		wg.Add(1)
		go func(id, start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				u, err := p.run(parents, generation, tasks[i])
				if err != nil {
					errs[id] = err
					return
				}
				out[i] = u
			}
		}(w, start, end)
	}
	wg.Wait()

	if err := firstError(errs); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *Processor[T]) run(parents *Population[T], generation uint, task Task) (Unit[T], error) {
	switch task.Origin {
	case Mutation:
		return p.evaluator.Mutant(parents.At(task.First), generation)
	case CrossOver:
		return p.evaluator.Offspring(parents.At(task.First), parents.At(task.Second), generation)
	case Random:
		return p.evaluator.Random(generation)
	}
	return Unit[T]{}, fmt.Errorf("unknown task origin %q", task.Origin)
}
