package evolve

import (
	"errors"
	test "testing"
)

// seqOps returns deterministic values independent of call order.
var seqOps = OperatorFuncs[int]{
	GenerateFunc:  func() int { return 1 },
	MutateFunc:    func(c int) int { return c * 10 },
	RecombineFunc: func(a, b int) int { return a*100 + b },
	ScoreFunc:     func(c int) int { return c % 97 },
}

func TestProcessorParallelMatchesSequential(t *test.T) {
	parents := NewPopulation([]Unit[int]{
		{Content: 5, Score: 50}, {Content: 4, Score: 40}, {Content: 3, Score: 30},
		{Content: 2, Score: 20}, {Content: 1, Score: 10},
	})
	plan := NewSelector(EngineConfig{PopSize: 5, MutSize: 4, CrossSize: 4, RandSize: 2}).Plan()

	sequential, err := NewProcessor(NewEvaluator[int](seqOps), 1).Process(parents, 1, plan)
	if err != nil {
		t.Fatalf("Sequential Process returned error: %v", err)
	}
	parallel, err := NewProcessor(NewEvaluator[int](seqOps), 4).Process(parents, 1, plan)
	if err != nil {
		t.Fatalf("Parallel Process returned error: %v", err)
	}

	if len(sequential) != len(plan) || len(parallel) != len(plan) {
		t.Fatalf("Expected %d units, got %d and %d", len(plan), len(sequential), len(parallel))
	}
	for i := range sequential {
		if sequential[i] != parallel[i] {
			t.Errorf("Slot %d: sequential %+v, parallel %+v", i, sequential[i], parallel[i])
		}
	}
	if sequential[0].Content != 50 || sequential[4].Content != 504 {
		t.Errorf("Unexpected offspring contents %d and %d", sequential[0].Content, sequential[4].Content)
	}
}

func TestProcessorParallelSurfacesErrors(t *test.T) {
	ops := &failingOps{intOps: newIntOps(1, 10), operator: "generate", n: 3}
	tasks := make([]Task, 8)
	for i := range tasks {
		tasks[i] = Task{Origin: Random, First: -1, Second: -1}
	}
	_, err := NewProcessor(NewEvaluator[int](ops), 3).Process(nil, 2, tasks)
	if !errors.Is(err, errBoom) {
		t.Errorf("Expected boom error, got %v", err)
	}
}
