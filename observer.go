package evolve

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Observer is told about every generation once it has been ranked.
type Observer[T any] interface {
	OnGeneration(index uint, best Unit[T], elapsed time.Duration)
}

type ObserverFunc[T any] func(index uint, best Unit[T], elapsed time.Duration)

func (f ObserverFunc[T]) OnGeneration(index uint, best Unit[T], elapsed time.Duration) {
	f(index, best, elapsed)
}

// LogObserver logs a progress line per generation.
type LogObserver[T any] struct {
	Logger logrus.FieldLogger
}

func NewLogObserver[T any](logger logrus.FieldLogger) *LogObserver[T] {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogObserver[T]{Logger: logger}
}

func (o *LogObserver[T]) OnGeneration(index uint, best Unit[T], elapsed time.Duration) {
	o.Logger.WithFields(logrus.Fields{
		"generation": index,
		"max_score":  best.Score,
		"origin":     best.Origin,
		"elapsed":    elapsed.Seconds(),
	}).Infof("Generation: %d; Max Score: %d; Current: %v; Elapsed: %.2fs",
		index, best.Score, best.Content, elapsed.Seconds())
}
