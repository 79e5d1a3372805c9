package evolve

import (
	"fmt"

	cp "github.com/jinzhu/copier"
)

// Population is an ordered, ranked sequence of Units. Values are never
// modified in place: every ranking produces a new Population.
type Population[T any] struct {
	units []Unit[T]
}

// NewPopulation ranks units into a Population.
func NewPopulation[T any](units []Unit[T]) *Population[T] {
	return &Population[T]{units: rank(units)}
}

func (p *Population[T]) Len() int {
	if p == nil {
		return 0
	}
	return len(p.units)
}

// At returns the unit at rank i, 0 being the best.
func (p *Population[T]) At(i int) Unit[T] {
	return p.units[i]
}

func (p *Population[T]) Best() Unit[T] {
	return p.units[0]
}

// Top returns a copy of the n best units.
func (p *Population[T]) Top(n int) []Unit[T] {
	if n > len(p.units) {
		n = len(p.units)
	}
	top := make([]Unit[T], n)
	copy(top, p.units[:n])
	return top
}

// Units returns a copy of the ranked units.
func (p *Population[T]) Units() []Unit[T] {
	return p.Top(p.Len())
}

// Snapshot deep copies every unit for handing to a Sink, so a sink can not
// reach the population's contents.
func (p *Population[T]) Snapshot() ([]Unit[T], error) {
	snap := make([]Unit[T], len(p.units))
	for i := range p.units {
		if err := cp.CopyWithOption(&snap[i], &p.units[i], cp.Option{DeepCopy: true}); err != nil {
			return nil, fmt.Errorf("failed to snapshot unit at rank %d: %w", i, err)
		}
	}
	return snap, nil
}

// IsRanked reports whether the units are ordered by score descending.
func (p *Population[T]) IsRanked() bool {
	for i := 1; i < len(p.units); i++ {
		if CompareUnits(&p.units[i-1], &p.units[i]) > 0 {
			return false
		}
	}
	return true
}
