package evolve

import "time"

// GenerationReport summarizes one completed generation.
type GenerationReport[T any] struct {
	Index   uint
	Best    Unit[T]
	Elapsed time.Duration
	Culled  uint
	Cohorts CohortSizes
}
