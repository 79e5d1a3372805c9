package evolve

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"sync/atomic"
)

// intOps evolves integers in [0, max]; the score is the integer itself.
type intOps struct {
	mu         sync.Mutex
	rng        *rand.Rand
	max        int
	scoreCalls int64
}

func newIntOps(seed int64, max int) *intOps {
	return &intOps{rng: rand.New(rand.NewSource(seed)), max: max}
}

func (o *intOps) intn(n int) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.rng.Intn(n)
}

func (o *intOps) Generate() (int, error) {
	return o.intn(o.max + 1), nil
}

func (o *intOps) Mutate(c int) (int, error) {
	c += o.intn(3) - 1
	if c < 0 {
		c = 0
	}
	if c > o.max {
		c = o.max
	}
	return c, nil
}

func (o *intOps) Recombine(a, b int) (int, error) {
	return (a + b + 1) / 2, nil
}

func (o *intOps) Score(c int) (int, error) {
	atomic.AddInt64(&o.scoreCalls, 1)
	return c, nil
}

func (o *intOps) ScoreCalls() int64 {
	return atomic.LoadInt64(&o.scoreCalls)
}

var errBoom = errors.New("boom")

// failingOps fails the named operator on its n-th call (1 based).
type failingOps struct {
	*intOps
	operator string
	n        int64
	calls    int64
	panics   bool
}

func (o *failingOps) trip(operator string) error {
	if operator != o.operator {
		return nil
	}
	if atomic.AddInt64(&o.calls, 1) != o.n {
		return nil
	}
	if o.panics {
		panic("operator exploded")
	}
	return errBoom
}

func (o *failingOps) Generate() (int, error) {
	if err := o.trip("generate"); err != nil {
		return 0, err
	}
	return o.intOps.Generate()
}

func (o *failingOps) Mutate(c int) (int, error) {
	if err := o.trip("mutate"); err != nil {
		return 0, err
	}
	return o.intOps.Mutate(c)
}

func (o *failingOps) Recombine(a, b int) (int, error) {
	if err := o.trip("recombine"); err != nil {
		return 0, err
	}
	return o.intOps.Recombine(a, b)
}

func (o *failingOps) Score(c int) (int, error) {
	if err := o.trip("score"); err != nil {
		return 0, err
	}
	return o.intOps.Score(c)
}

// failingSink fails writes of one generation.
type failingSink struct {
	*MemorySink[int]
	failAt uint
}

func (s *failingSink) Write(ctx context.Context, generation uint, units []Unit[int]) error {
	if generation == s.failAt {
		return errBoom
	}
	return s.MemorySink.Write(ctx, generation, units)
}

func intPtr(v int) *int {
	return &v
}

func makeUnits(scores ...int) []Unit[int] {
	units := make([]Unit[int], len(scores))
	for i, s := range scores {
		units[i] = Unit[int]{Content: i, Score: s, Origin: Random}
	}
	return units
}

// closeFailingSink accepts writes but fails to close.
type closeFailingSink struct {
	*MemorySink[int]
}

func (s *closeFailingSink) Close() error {
	s.MemorySink.Close()
	return errBoom
}
