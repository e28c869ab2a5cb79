package main

import (
	"context"
	"flag"
	"fmt"
	"isolation/experiments"
	"isolation/experiments/metrics"
	"isolation/meta"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	agent1 := flag.String("agent1", "pvs", "First agent: pvs, alphabeta, greedy or random")
	agent2 := flag.String("agent2", "greedy", "Second agent: pvs, alphabeta, greedy or random")
	depth := flag.Int("depth", 0, "Max search depth for search agents, 0 searches until the time limit")
	alternating := flag.Bool("alternating", false, "Score root children as minimizing nodes")
	numGames := flag.Int("games", meta.NUM_GAMES, "Number of games")
	workers := flag.Int("workers", meta.WORKERS, "Number of games played at once")
	timeLimit := flag.Duration("time", meta.TIME_LIMIT, "Time limit per move")
	fair := flag.Bool("fair", true, "Swap the first mover every other game")
	out := flag.String("out", "experiments", "Directory for CSV records, empty to skip writing")
	debug := flag.Bool("debug", false, "Log every search depth")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	configs := []metrics.AgentConfig{
		{ID: 1, Kind: *agent1, MaxDepth: *depth, AlternatingTurns: *alternating},
		{ID: 2, Kind: *agent2, MaxDepth: *depth, AlternatingTurns: *alternating},
	}
	setup := experiments.Setup{
		Name:      fmt.Sprintf("%s_vs_%s", *agent1, *agent2),
		Configs:   configs,
		Matchups:  [][]metrics.AgentConfig{configs},
		NumGames:  *numGames,
		Workers:   *workers,
		TimeLimit: *timeLimit,
		Fair:      *fair,
		OutDir:    *out,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := experiments.Run(ctx, setup)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}

	fmt.Printf("%s won %d of %d games\n", *agent1, experiments.Wins(result.Games, 1), len(result.Games))
	fmt.Printf("%s won %d of %d games\n", *agent2, experiments.Wins(result.Games, 2), len(result.Games))
}
