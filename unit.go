package evolve

// Unit is one scored candidate. Score is computed exactly once, by the
// Evaluator that creates the Unit, and Units are passed around by value so
// nothing outside the engine can change a ranked population.
type Unit[T any] struct {
	Content    T
	Generation uint
	Score      int
	Origin     Origin
}

func newUnit[T any](content T, score int, generation uint, origin Origin) Unit[T] {
	return Unit[T]{
		Content:    content,
		Generation: generation,
		Score:      score,
		Origin:     origin,
	}
}
