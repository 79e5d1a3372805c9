package evolve

import (
	"context"
	"fmt"
)

// OriginStats aggregates persisted units by the operator that produced them.
type OriginStats struct {
	Origin   Origin
	AvgScore float64
	MaxScore int
	Count    int64
}

// GenerationOriginStats aggregates persisted units per generation and origin.
type GenerationOriginStats struct {
	Generation uint
	Origin     Origin
	AvgScore   float64
	Count      int64
}

type RunSummary struct {
	RunID       string
	Generations uint
	BestScore   int
	RowCount    int64
}

// Runs lists every run stored in the table.
func (p *Persistence) Runs(ctx context.Context) ([]RunSummary, error) {
	var runs []RunSummary
	err := p.table(ctx).
		Select("run_id, MAX(generation) AS generations, MAX(score) AS best_score, COUNT(*) AS row_count").
		Group("run_id").
		Order("run_id").
		Scan(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	return runs, nil
}

// OriginStats averages scores by origin, best origin first. An empty runID
// covers every run.
func (p *Persistence) OriginStats(ctx context.Context, runID string) ([]OriginStats, error) {
	var stats []OriginStats
	q := p.table(ctx).
		Select("origin, AVG(score) AS avg_score, MAX(score) AS max_score, COUNT(*) AS count")
	if runID != "" {
		q = q.Where("run_id = ?", runID)
	}
	if err := q.Group("origin").Order("avg_score DESC").Scan(&stats).Error; err != nil {
		return nil, fmt.Errorf("failed to query origin stats: %w", err)
	}
	return stats, nil
}

// GenerationOriginStats averages scores per generation and origin, ordered
// by generation and then best origin first.
func (p *Persistence) GenerationOriginStats(ctx context.Context, runID string) ([]GenerationOriginStats, error) {
	var stats []GenerationOriginStats
	q := p.table(ctx).
		Select("generation, origin, AVG(score) AS avg_score, COUNT(*) AS count")
	if runID != "" {
		q = q.Where("run_id = ?", runID)
	}
	err := q.Group("generation, origin").
		Order("generation").
		Order("avg_score DESC").
		Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query generation stats: %w", err)
	}
	return stats, nil
}

// BestUnits returns the limit highest scoring rows of the last persisted
// generation of a run.
func (p *Persistence) BestUnits(ctx context.Context, runID string, limit int) ([]UnitRecord, error) {
	var last uint
	row := p.table(ctx).Select("COALESCE(MAX(generation), 0)").Where("run_id = ?", runID).Row()
	if err := row.Scan(&last); err != nil {
		return nil, fmt.Errorf("failed to query last generation of run %s: %w", runID, err)
	}

	var units []UnitRecord
	err := p.table(ctx).
		Where("run_id = ? AND generation = ?", runID, last).
		Order("rank").
		Limit(limit).
		Find(&units).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load best units of run %s: %w", runID, err)
	}
	return units, nil
}
