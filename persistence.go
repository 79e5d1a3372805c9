package evolve

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	gorm "gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type PersistenceConfig struct {
	Name          string   `toml:"name"`
	Path          string   `toml:"path"`
	Table         string   `toml:"table"`
	BatchSize     int      `toml:"batch_size"`
	SQLitePragmas []string `toml:"sqlite_pragmas"`
	SQLiteOptions []string `toml:"sqlite_options"`
}

// Persistence is a SQLite database holding persisted generations.
type Persistence struct {
	Config *PersistenceConfig
	DB     *gorm.DB
}

// UnitRecord is one unit of one persisted generation. A unit kept across
// generations is written once per generation it survives.
type UnitRecord struct {
	ID             uint   `gorm:"primaryKey"`
	RunID          string `gorm:"index"`
	Generation     uint   `gorm:"index"`
	Rank           int
	UnitGeneration uint
	Score          int
	Origin         Origin
	Content        string
	CreatedAt      time.Time
}

func NewPersistence(config *PersistenceConfig) (*Persistence, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	if len(config.Path) == 0 {
		return nil, fmt.Errorf("Path to database must be defined")
	}

	if len(config.Name) == 0 {
		return nil, fmt.Errorf("Name of database must be defined")
	}

	if len(config.Table) == 0 {
		config.Table = DefaultTableName
	}

	if config.BatchSize <= 0 {
		config.BatchSize = DefaultBatchSize
	}

	db, err := gorm.Open(sqlite.Open(dsn(config)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", config.Name, err)
	}

	db = db.Session(&gorm.Session{CreateBatchSize: config.BatchSize})

	p := &Persistence{Config: config, DB: db}
	if err = p.initialize(); err != nil {
		p.Shutdown()
		return nil, err
	}

	return p, nil
}

func dsn(config *PersistenceConfig) string {
	params := make([]string, 0, len(config.SQLitePragmas)+len(config.SQLiteOptions))
	for _, prag := range config.SQLitePragmas {
		params = append(params, fmt.Sprintf("_pragma=%s", prag))
	}
	params = append(params, config.SQLiteOptions...)

	var path strings.Builder
	path.WriteString(filepath.Join(config.Path, config.Name))
	if len(params) > 0 {
		path.WriteRune('?')
		path.WriteString(strings.Join(params, "&"))
	}
	return path.String()
}

func (p *Persistence) initialize() error {
	if err := p.DB.Table(p.Config.Table).AutoMigrate(&UnitRecord{}); err != nil {
		return fmt.Errorf("failed to migrate table %s: %w", p.Config.Table, err)
	}
	return nil
}

func (p *Persistence) table(ctx context.Context) *gorm.DB {
	return p.DB.WithContext(ctx).Table(p.Config.Table)
}

func (p *Persistence) Shutdown() error {
	sqldb, err := p.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to retrieve raw DB: %w", err)
	}
	return sqldb.Close()
}

// ContentEncoder renders a candidate for storage.
type ContentEncoder[T any] func(T) (string, error)

func sprintEncoder[T any](content T) (string, error) {
	return fmt.Sprint(content), nil
}

// SQLiteSink writes every generation to a Persistence table, tagged with a
// run id. Close shuts the underlying database down.
type SQLiteSink[T any] struct {
	persist *Persistence
	runID   string
	encode  ContentEncoder[T]
}

// NewSQLiteSink wraps an open Persistence. A nil encode uses fmt.Sprint.
func NewSQLiteSink[T any](persist *Persistence, encode ContentEncoder[T]) *SQLiteSink[T] {
	if encode == nil {
		encode = sprintEncoder[T]
	}
	return &SQLiteSink[T]{
		persist: persist,
		runID:   uuid.NewString(),
		encode:  encode,
	}
}

// OpenSQLiteSink opens the database described by config and wraps it.
func OpenSQLiteSink[T any](config *PersistenceConfig, encode ContentEncoder[T]) (*SQLiteSink[T], error) {
	persist, err := NewPersistence(config)
	if err != nil {
		return nil, err
	}
	return NewSQLiteSink(persist, encode), nil
}

func (s *SQLiteSink[T]) RunID() string {
	return s.runID
}

func (s *SQLiteSink[T]) Persistence() *Persistence {
	return s.persist
}

func (s *SQLiteSink[T]) Write(ctx context.Context, generation uint, units []Unit[T]) error {
	if len(units) == 0 {
		return nil
	}
	rows := make([]UnitRecord, len(units))
	now := time.Now()
	for i, u := range units {
		content, err := s.encode(u.Content)
		if err != nil {
			return fmt.Errorf("failed to encode unit at rank %d: %w", i, err)
		}
		rows[i] = UnitRecord{
			RunID:          s.runID,
			Generation:     generation,
			Rank:           i,
			UnitGeneration: u.Generation,
			Score:          u.Score,
			Origin:         u.Origin,
			Content:        content,
			CreatedAt:      now,
		}
	}
	if result := s.persist.table(ctx).CreateInBatches(&rows, s.persist.Config.BatchSize); result.Error != nil {
		return fmt.Errorf("Failed to call gorm.CreateInBatches(): %w", result.Error)
	}
	return nil
}

func (s *SQLiteSink[T]) Close() error {
	return s.persist.Shutdown()
}
