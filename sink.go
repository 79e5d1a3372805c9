package evolve

import (
	"context"
	"sync"
)

// Sink receives the full ranked population after every generation. The
// engine closes the sink when Run returns, whether it succeeded or not.
type Sink[T any] interface {
	Write(ctx context.Context, generation uint, units []Unit[T]) error
	Close() error
}

// MemorySink keeps every written generation in memory.
type MemorySink[T any] struct {
	mu          sync.Mutex
	generations map[uint][]Unit[T]
	order       []uint
	closed      bool
}

func NewMemorySink[T any]() *MemorySink[T] {
	return &MemorySink[T]{generations: make(map[uint][]Unit[T])}
}

func (s *MemorySink[T]) Write(_ context.Context, generation uint, units []Unit[T]) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errSinkClosed
	}
	if _, ok := s.generations[generation]; !ok {
		s.order = append(s.order, generation)
	}
	s.generations[generation] = units
	return nil
}

func (s *MemorySink[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Generation returns the units written for a generation.
func (s *MemorySink[T]) Generation(generation uint) ([]Unit[T], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	units, ok := s.generations[generation]
	return units, ok
}

// Generations returns the written generation indexes in write order.
func (s *MemorySink[T]) Generations() []uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]uint, len(s.order))
	copy(out, s.order)
	return out
}

func (s *MemorySink[T]) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
