package evolve

// Operators is the capability an Engine evolves candidates with. Score must
// be pure: the engine calls it exactly once per created Unit and, when
// Parallelism is above 1, from several goroutines at once. The same goes for
// the other three methods under parallel evaluation.
type Operators[T any] interface {
	Generate() (T, error)
	Mutate(T) (T, error)
	// Recombine receives the higher (or equal) ranked parent first.
	Recombine(T, T) (T, error)
	Score(T) (int, error)
}

// OperatorFuncs adapts four plain functions that can not fail into
// Operators.
type OperatorFuncs[T any] struct {
	GenerateFunc  func() T
	MutateFunc    func(T) T
	RecombineFunc func(T, T) T
	ScoreFunc     func(T) int
}

func (o OperatorFuncs[T]) Generate() (T, error) {
	return o.GenerateFunc(), nil
}

func (o OperatorFuncs[T]) Mutate(c T) (T, error) {
	return o.MutateFunc(c), nil
}

func (o OperatorFuncs[T]) Recombine(a, b T) (T, error) {
	return o.RecombineFunc(a, b), nil
}

func (o OperatorFuncs[T]) Score(c T) (int, error) {
	return o.ScoreFunc(c), nil
}
