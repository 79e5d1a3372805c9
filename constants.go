package evolve

// Origin records which operator produced a Unit. It is provenance only and
// never takes part in ranking.
type Origin string

const (
	Mutation  Origin = "mutation"
	CrossOver Origin = "cross_over"
	Random    Origin = "random"
)

// TerminationReason tells the caller why Run stopped.
type TerminationReason string

const (
	MaxGenerationsReached TerminationReason = "max_generations_reached"
	StopScoreReached      TerminationReason = "stop_score_reached"
	// Aborted is only reported alongside a non-nil error from Run.
	Aborted TerminationReason = "aborted"
)

const (
	DefaultTableName = "population"
	DefaultBatchSize = 1000
)
