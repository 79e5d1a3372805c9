package evolve

// Task describes one offspring to produce in a generation: its origin and
// the ranks of the parents it reads. Parents are -1 when unused.
type Task struct {
	Origin Origin
	First  int
	Second int
}

// CohortSizes is how a generation's population is partitioned.
type CohortSizes struct {
	Keep   uint
	Mutate uint
	Cross  uint
	Random uint
}

func (c CohortSizes) Total() uint {
	return c.Keep + c.Mutate + c.Cross + c.Random
}

// Selector decides which ranked parents feed each cohort. Mutation reads
// rank i, cross-over reads the adjacent ranks i and i+1. When a cohort is
// larger than the keep cohort the same elite units seed several offspring.
type Selector struct {
	sizes CohortSizes
	plan  []Task
}

func NewSelector(config EngineConfig) *Selector {
	sizes := CohortSizes{
		Keep:   config.KeepSize(),
		Mutate: config.MutSize,
		Cross:  config.CrossSize,
		Random: config.RandSize,
	}
	plan := make([]Task, 0, config.NewSize())
	for i := 0; uint(i) < sizes.Mutate; i++ {
		plan = append(plan, Task{Origin: Mutation, First: i, Second: -1})
	}
	for i := 0; uint(i) < sizes.Cross; i++ {
		plan = append(plan, Task{Origin: CrossOver, First: i, Second: i + 1})
	}
	for i := 0; uint(i) < sizes.Random; i++ {
		plan = append(plan, Task{Origin: Random, First: -1, Second: -1})
	}
	return &Selector{sizes: sizes, plan: plan}
}

func (s *Selector) Sizes() CohortSizes {
	return s.sizes
}

// Plan returns the offspring tasks in assembly order: mutants, then
// cross-over offspring, then random units. It is the same every generation.
func (s *Selector) Plan() []Task {
	plan := make([]Task, len(s.plan))
	copy(plan, s.plan)
	return plan
}
