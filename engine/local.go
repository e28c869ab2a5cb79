package engine

import (
	"context"
	"fmt"
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/meta"
	"isolation/searcher"
	"isolation/utils"
	"time"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	State     game.State
	Agents    []Agent // Indexed by player ID
	TimeLimit time.Duration
}

func LocalEngine(agents []Agent, state game.State, timeLimit time.Duration) *Engine {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}
	if timeLimit <= 0 {
		timeLimit = meta.TIME_LIMIT
	}

	return &Engine{
		State:     state,
		Agents:    agents,
		TimeLimit: timeLimit,
	}
}

// Run plays until the player to move has no liberties or forfeits. An agent
// forfeits by publishing nothing in time, publishing an illegal action or
// returning an error.
func (e *Engine) Run(ctx context.Context) (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{StartTime: time.Now()}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("player %d is starting", e.State.Player())

	step := 1
	for !e.State.TerminalTest() && step <= meta.MAX_TURNS {
		if err := ctx.Err(); err != nil {
			return gameMetric, moveMetrics, err
		}

		player := e.State.Player()
		start := time.Now()
		t, err := e.requestAction(ctx, player)
		if err != nil {
			log.Warn().Err(err).Msgf("player %d forfeits at step %d", player, step)
			gameMetric.Forfeit = true
			break
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:     step,
			Player:   player,
			Depth:    t.depth,
			Nodes:    t.nodes,
			Duration: time.Since(start),
			Overrun:  t.overrun,
		})

		next, err := e.State.Result(t.action)
		if err != nil {
			return gameMetric, moveMetrics, err
		}
		e.State = next
		step++
	}

	// Whoever is left to move lost, either stuck or by forfeit
	gameMetric.Winner = 1 - e.State.Player()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	log.Debug().Msgf("game over after %d moves, winner: player %d", gameMetric.TotalMoves, gameMetric.Winner)
	return gameMetric, moveMetrics, nil
}

type turn struct {
	action  game.Action
	depth   int // Publishes before the deadline, minus the fallback
	nodes   int
	overrun time.Duration
}

// requestAction runs the agent for one time limit and returns its latest
// action. The agent is always waited for, so no search outlives its turn.
func (e *Engine) requestAction(ctx context.Context, player int) (turn, error) {
	turnCtx, cancel := context.WithTimeout(ctx, e.TimeLimit)
	defer cancel()

	a := e.Agents[player]
	mailbox := searcher.NewMailbox()
	done := make(chan error, 1)
	state := e.State
	go func() {
		done <- a.GetAction(turnCtx, state, mailbox)
	}()

	var t turn
	var err error
	var action game.Action
	var publishes int
	var ok bool
	// Agents that finish early are not kept waiting for the deadline
	select {
	case err = <-done:
		action, publishes, ok = mailbox.Latest()
	case <-turnCtx.Done():
		// Publishes after the deadline do not count
		action, publishes, ok = mailbox.Latest()
		deadline := time.Now()
		err = <-done
		t.overrun = time.Since(deadline)
		if t.overrun > e.TimeLimit {
			log.Debug().Msgf("player %d overran the deadline by %s", player, t.overrun)
		}
	}
	if err != nil {
		return t, fmt.Errorf("agent failed: %w", err)
	}
	if reporter, isReporter := a.(MetricsReporter); isReporter {
		t.nodes = reporter.Metrics().Nodes
	}

	if !ok {
		return t, ErrNoAction
	}
	if !utils.Contains(e.State.Actions(), action) {
		return t, fmt.Errorf("action %d: %w", action, game.ErrIllegalAction)
	}
	t.action = action
	t.depth = publishes - 1
	return t, nil
}
