package evolve

import (
	"fmt"
)

// Evaluator turns operator output into scored Units. It is the only place a
// Unit's score is computed. Failures and panics from the operators come back
// as *OperatorError tagged with the generation being built.
type Evaluator[T any] struct {
	ops Operators[T]
}

func NewEvaluator[T any](ops Operators[T]) *Evaluator[T] {
	return &Evaluator[T]{ops: ops}
}

// Random generates and scores a fresh candidate.
func (e *Evaluator[T]) Random(generation uint) (Unit[T], error) {
	var content T
	err := guard("generate", generation, func() (err error) {
		content, err = e.ops.Generate()
		return
	})
	if err != nil {
		return Unit[T]{}, err
	}
	return e.score(content, generation, Random)
}

// Mutant scores a mutated copy of the parent's content.
func (e *Evaluator[T]) Mutant(parent Unit[T], generation uint) (Unit[T], error) {
	var content T
	err := guard("mutate", generation, func() (err error) {
		content, err = e.ops.Mutate(parent.Content)
		return
	})
	if err != nil {
		return Unit[T]{}, err
	}
	return e.score(content, generation, Mutation)
}

// Offspring scores the recombination of two parents, first the better one.
func (e *Evaluator[T]) Offspring(first, second Unit[T], generation uint) (Unit[T], error) {
	var content T
	err := guard("recombine", generation, func() (err error) {
		content, err = e.ops.Recombine(first.Content, second.Content)
		return
	})
	if err != nil {
		return Unit[T]{}, err
	}
	return e.score(content, generation, CrossOver)
}

func (e *Evaluator[T]) score(content T, generation uint, origin Origin) (Unit[T], error) {
	var score int
	err := guard("score", generation, func() (err error) {
		score, err = e.ops.Score(content)
		return
	})
	if err != nil {
		return Unit[T]{}, err
	}
	return newUnit(content, score, generation, origin), nil
}

func guard(operator string, generation uint, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &OperatorError{
				Operator:   operator,
				Generation: generation,
				Err:        fmt.Errorf("panic: %v", r),
			}
		}
	}()
	if err = fn(); err != nil {
		return &OperatorError{Operator: operator, Generation: generation, Err: err}
	}
	return nil
}
