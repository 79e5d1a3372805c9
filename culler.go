package evolve

// Culler keeps the elite of a ranked population and drops the rest.
type Culler[T any] struct {
	KeepSize uint
}

func NewCuller[T any](keepSize uint) *Culler[T] {
	return &Culler[T]{KeepSize: keepSize}
}

// Cull returns a copy of the KeepSize best units, untouched, along with the
// number of units dropped.
func (c *Culler[T]) Cull(pop *Population[T]) ([]Unit[T], uint) {
	kept := pop.Top(int(c.KeepSize))
	return kept, uint(pop.Len() - len(kept))
}
