package searcher

import (
	"context"
	"isolation/experiments/metrics"
	"isolation/game"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(s *Searcher)

// Searcher picks moves by iterative deepening. Search itself runs on the
// calling goroutine; cancellation is only observed between depths.
type Searcher struct {
	evaluate    game.Evaluate
	alphaBeta   bool
	alternating bool
	maxDepth    int
	rand        *rand.Rand
	metrics     metrics.Collector
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

// WithAlphaBeta searches each depth with plain alpha-beta instead of PVS.
func WithAlphaBeta() Option {
	return func(s *Searcher) {
		s.alphaBeta = true
	}
}

// WithAlternatingTurns scores root children as minimizing nodes, so turns
// alternate from the root down. By default every root child is scored as a
// maximizing node.
func WithAlternatingTurns() Option {
	return func(s *Searcher) {
		s.alternating = true
	}
}

func WithMaxDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.maxDepth = depth
		}
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

func WithSeed(seed uint64) Option {
	return func(s *Searcher) {
		s.rand = rand.New(rand.NewSource(seed))
	}
}

func NewSearcher(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		evaluate: Mobility,
		rand:     rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Metrics reports on the latest GetAction call. Calls that overlap in time
// share one collector, so their numbers are only exact once the previous call
// has returned.
func (s *Searcher) Metrics() metrics.SearchMetric {
	return s.metrics.Complete()
}

// GetAction publishes a random legal action straight away, then the best
// action of every completed depth 1, 2, 3, ... in order. It keeps deepening
// until ctx is done (or the max depth is reached) and returns nil; running out
// of time is the normal way for it to stop. Errors from state are returned
// unmodified.
func (s *Searcher) GetAction(ctx context.Context, state game.State, sink Sink) error {
	actions := state.Actions()
	if len(actions) == 0 {
		return ErrNoActions
	}

	s.metrics.Start()
	defer func() {
		metric := s.metrics.Complete()
		log.Debug().
			Int("player", state.Player()).
			Int("depth", metric.Depth).
			Int("nodes", metric.Nodes).
			Dur("duration", metric.Duration).
			Msg("search stopped")
	}()

	// Fallback in case there is no time to finish even depth 1
	sink.Publish(actions[s.rand.Intn(len(actions))])

	run := &search{
		player:      state.Player(),
		evaluate:    s.evaluate,
		alternating: s.alternating,
		metrics:     s.metrics,
	}
	selectMove := run.selectMovePVS
	if s.alphaBeta {
		selectMove = run.selectMove
	}

	for depth := 1; s.maxDepth == 0 || depth <= s.maxDepth; depth++ {
		if ctx.Err() != nil {
			return nil
		}

		action, ok, err := selectMove(state, depth)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		sink.Publish(action)
		s.metrics.CompleteDepth(depth)
		log.Debug().Msgf("completed depth %d with action %d", depth, action)
	}
	return nil
}
