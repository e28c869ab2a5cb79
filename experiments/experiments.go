package experiments

import (
	"context"
	"fmt"
	"isolation/agent"
	"isolation/engine"
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/meta"
	"isolation/searcher"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

type Setup struct {
	Name      string
	Configs   []metrics.AgentConfig
	Matchups  [][]metrics.AgentConfig // Pairs, first agent moves first
	NumGames  int                     // Per matchup
	Workers   int                     // Games played at once
	TimeLimit time.Duration           // Per move
	Fair      bool                    // Swap the first mover every other game
	OutDir    string                  // Records are only written when set
}

type Result struct {
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
}

type outcome struct {
	game  metrics.GameRecord
	moves []metrics.MoveRecord
}

// NewAgent builds the agent described by config.
func NewAgent(config metrics.AgentConfig, seed uint64) (engine.Agent, error) {
	switch config.Kind {
	case "pvs", "alphabeta":
		options := []searcher.Option{
			searcher.WithSeed(seed),
			searcher.WithMaxDepth(config.MaxDepth),
			searcher.WithMetrics(),
		}
		if config.Kind == "alphabeta" {
			options = append(options, searcher.WithAlphaBeta())
		}
		if config.AlternatingTurns {
			options = append(options, searcher.WithAlternatingTurns())
		}
		return searcher.NewSearcher(options...), nil
	case "greedy":
		return agent.NewGreedy(), nil
	case "random":
		return agent.NewRandom(seed), nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", config.Kind)
	}
}

// Wins counts the games won by the agent with the given ID.
func Wins(records []metrics.GameRecord, agentID int) int {
	return lo.CountBy(records, func(record metrics.GameRecord) bool {
		if record.Winner == 0 {
			return record.Agent1 == agentID
		}
		return record.Agent2 == agentID
	})
}

// Run plays every matchup NumGames times, Workers games at a time, and writes
// the records under OutDir.
func Run(ctx context.Context, setup Setup) (Result, error) {
	if setup.NumGames <= 0 {
		setup.NumGames = meta.NUM_GAMES
	}
	if setup.Workers <= 0 {
		setup.Workers = meta.WORKERS
	}
	if setup.TimeLimit <= 0 {
		setup.TimeLimit = meta.TIME_LIMIT
	}

	for mi, matchup := range setup.Matchups {
		if len(matchup) != 2 {
			return Result{}, fmt.Errorf("matchup %d has %d agents, want 2", mi+1, len(matchup))
		}
	}

	log.Info().Msgf("starting %s experiment...", setup.Name)

	outcomes := make([]outcome, len(setup.Matchups)*setup.NumGames)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(setup.Workers)
	for mi, matchup := range setup.Matchups {
		for i := 0; i < setup.NumGames; i++ {
			first, second := matchup[0], matchup[1]
			if setup.Fair && i%2 == 1 {
				first, second = second, first
			}
			slot := mi*setup.NumGames + i
			mi, i := mi, i
			g.Go(func() error {
				log.Info().Msgf("starting matchup %d of %d game %d of %d...", mi+1, len(setup.Matchups), i+1, setup.NumGames)
				o, err := runGame(ctx, first, second, setup.TimeLimit, uint64(slot))
				if err != nil {
					return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
				}
				outcomes[slot] = o
				log.Info().Msgf("completed matchup %d of %d game %d with winner: agent %d",
					mi+1, len(setup.Matchups), i+1, lo.Ternary(o.game.Winner == 0, o.game.Agent1, o.game.Agent2))
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	result := Result{}
	for _, o := range outcomes {
		result.Games = append(result.Games, o.game)
		result.Moves = append(result.Moves, o.moves...)
	}
	for mi, matchup := range setup.Matchups {
		games := result.Games[mi*setup.NumGames : (mi+1)*setup.NumGames]
		log.Info().Msgf("matchup %d: agent %d won %d, agent %d won %d",
			mi+1, matchup[0].ID, Wins(games, matchup[0].ID), matchup[1].ID, Wins(games, matchup[1].ID))
	}
	log.Info().Msgf("completed %s experiment", setup.Name)

	if setup.OutDir == "" {
		return result, nil
	}
	if err := write(setup, result); err != nil {
		return result, err
	}
	return result, nil
}

func runGame(ctx context.Context, first, second metrics.AgentConfig, timeLimit time.Duration, seed uint64) (outcome, error) {
	agent1, err := NewAgent(first, 2*seed+1)
	if err != nil {
		return outcome{}, err
	}
	agent2, err := NewAgent(second, 2*seed+2)
	if err != nil {
		return outcome{}, err
	}

	e := engine.LocalEngine([]engine.Agent{agent1, agent2}, game.NewIsolation(), timeLimit)
	gameMetric, moveMetrics, err := e.Run(ctx)
	if err != nil {
		return outcome{}, err
	}
	gameMetric.ID = uuid.NewString()

	return outcome{
		game: metrics.GameRecord{Agent1: first.ID, Agent2: second.ID, GameMetric: gameMetric},
		moves: lo.Map(moveMetrics, func(m metrics.MoveMetric, _ int) metrics.MoveRecord {
			return metrics.MoveRecord{Game: gameMetric.ID, MoveMetric: m}
		}),
	}, nil
}

func write(setup Setup, result Result) error {
	writer, err := metrics.NewWriter(setup.OutDir, setup.Name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(setup.Configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(result.Games); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(result.Moves); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}
