package evolve

// Reproducer builds the mutation, cross-over and random cohorts of a
// generation from the previous ranked population.
type Reproducer[T any] struct {
	selector  *Selector
	processor *Processor[T]
}

func NewReproducer[T any](selector *Selector, processor *Processor[T]) *Reproducer[T] {
	return &Reproducer[T]{selector: selector, processor: processor}
}

// Reproduce returns the new cohorts in assembly order, every unit tagged
// with generation.
func (r *Reproducer[T]) Reproduce(parents *Population[T], generation uint) ([]Unit[T], error) {
	return r.processor.Process(parents, generation, r.selector.Plan())
}

// Synthesize creates n random units for the initial population.
func (r *Reproducer[T]) Synthesize(n uint) ([]Unit[T], error) {
	tasks := make([]Task, n)
	for i := range tasks {
		tasks[i] = Task{Origin: Random, First: -1, Second: -1}
	}
	return r.processor.Process(nil, 0, tasks)
}
