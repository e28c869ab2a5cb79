package engine

import (
	"context"
	"errors"
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/searcher"
)

var ErrNoAction = errors.New("no action published before the deadline")

// Agent publishes moves to sink until ctx is done. The engine plays whatever
// was published last when the time limit expires.
type Agent interface {
	GetAction(ctx context.Context, state game.State, sink searcher.Sink) error
}

// MetricsReporter is implemented by agents that collect search metrics. The
// engine reads them once the agent has returned.
type MetricsReporter interface {
	Metrics() metrics.SearchMetric
}
