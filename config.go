package evolve

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// EngineConfig holds the size parameters of a run. A copy is taken by
// NewEngine so later changes to the caller's value have no effect.
type EngineConfig struct {
	PopSize   uint `toml:"pop_size"`
	MutSize   uint `toml:"mut_size"`
	CrossSize uint `toml:"cross_size"`
	RandSize  uint `toml:"rand_size"`
	MaxGens   uint `toml:"max_gens"`
	// StopScore is optional; nil disables the early stop check.
	StopScore *int `toml:"stop_score"`
	// Parallelism above 1 evaluates cohort candidates on that many workers.
	Parallelism uint `toml:"parallelism"`
}

func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		PopSize:   5000,
		MutSize:   500,
		CrossSize: 500,
		RandSize:  500,
		MaxGens:   500,
	}
}

// NewSize is the number of units produced by operators every generation.
func (c EngineConfig) NewSize() uint {
	return c.MutSize + c.CrossSize + c.RandSize
}

// KeepSize is the number of top ranked units carried over unchanged. Only
// meaningful once Validate has passed.
func (c EngineConfig) KeepSize() uint {
	return c.PopSize - c.NewSize()
}

// Validate checks the size constraints of the config.
func (c EngineConfig) Validate() error {
	if c.PopSize < 2 {
		return &ConfigurationError{
			Field:  "pop_size",
			Reason: fmt.Sprintf("must be at least 2, got %d", c.PopSize),
		}
	}
	// Each cohort is bounded first so the sum below can not overflow.
	for _, cohort := range []struct {
		field string
		size  uint
	}{
		{"mut_size", c.MutSize},
		{"cross_size", c.CrossSize},
		{"rand_size", c.RandSize},
	} {
		if cohort.size > c.PopSize {
			return &ConfigurationError{
				Field:  cohort.field,
				Reason: fmt.Sprintf("%d exceeds pop_size %d", cohort.size, c.PopSize),
			}
		}
	}
	if c.NewSize() > c.PopSize {
		return &ConfigurationError{
			Field: "mut_size+cross_size+rand_size",
			Reason: fmt.Sprintf("sum %d exceeds pop_size %d",
				c.NewSize(), c.PopSize),
		}
	}
	// Cross-over reads ranks i and i+1, so the last pairing needs
	// cross_size <= pop_size-1.
	if c.CrossSize >= c.PopSize {
		return &ConfigurationError{
			Field:  "cross_size",
			Reason: fmt.Sprintf("must be less than pop_size %d, got %d", c.PopSize, c.CrossSize),
		}
	}
	return nil
}

// ToolConfig is the file format shared by the cmd tools.
type ToolConfig struct {
	Engine      EngineConfig       `toml:"engine"`
	Persistence *PersistenceConfig `toml:"persistence"`
	Phrase      PhraseConfig       `toml:"phrase"`
}

// PhraseConfig describes the phrase guessing problem run by cmd/evolve.
type PhraseConfig struct {
	Target      string  `toml:"target"`
	Alphabet    string  `toml:"alphabet"`
	MutatePct   float64 `toml:"mutate_pct"`
	CrossPct    float64 `toml:"cross_pct"`
	Seed        int64   `toml:"seed"`
	StopOnMatch bool    `toml:"stop_on_match"`
}

// LoadToolConfig decodes a TOML tool config. Fields missing from the file
// keep the engine defaults.
func LoadToolConfig(path string) (*ToolConfig, error) {
	config := &ToolConfig{Engine: DefaultEngineConfig()}
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("failed to decode tool config %s: %w", path, err)
	}
	return config, nil
}
