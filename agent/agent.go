package agent

import (
	"context"
	"isolation/game"
	"isolation/searcher"

	"golang.org/x/exp/rand"
)

type random struct {
	rand *rand.Rand
}

// NewRandom returns a baseline agent that plays any legal action.
func NewRandom(seed uint64) *random {
	return &random{rand: rand.New(rand.NewSource(seed))}
}

func (a *random) GetAction(ctx context.Context, state game.State, sink searcher.Sink) error {
	actions := state.Actions()
	if len(actions) == 0 {
		return searcher.ErrNoActions
	}
	sink.Publish(actions[a.rand.Intn(len(actions))])
	return nil
}

type greedy struct{}

// NewGreedy returns a baseline agent that maximizes its own liberties one
// move ahead.
func NewGreedy() greedy {
	return greedy{}
}

func (a greedy) GetAction(ctx context.Context, state game.State, sink searcher.Sink) error {
	actions := state.Actions()
	if len(actions) == 0 {
		return searcher.ErrNoActions
	}

	player := state.Player()
	best, bestScore := actions[0], -1
	for _, action := range actions {
		next, err := state.Result(action)
		if err != nil {
			return err
		}
		if score := len(next.Liberties(next.Locs()[player])); score > bestScore {
			best, bestScore = action, score
		}
	}
	sink.Publish(best)
	return nil
}
