package searcher

import (
	"isolation/experiments/metrics"
	"isolation/game"
	"math"
)

// search holds what stays fixed while one root position is searched. Values
// are always from player's perspective.
type search struct {
	player      int
	evaluate    game.Evaluate
	alternating bool
	metrics     metrics.Collector
}

// childMaximizing is the side the root scores its children as. The baseline
// treats every root child as a maximizing node.
func (s *search) childMaximizing() bool {
	return !s.alternating
}

func (s *search) selectMove(state game.State, depth int) (game.Action, bool, error) {
	actions := state.Actions()
	if len(actions) == 0 {
		return 0, false, nil
	}

	alpha, beta := math.Inf(-1), math.Inf(1)
	best := actions[0]
	for _, action := range actions {
		child, err := state.Result(action)
		if err != nil {
			return 0, false, err
		}
		value, err := s.alphaBeta(child, depth-1, alpha, beta, s.childMaximizing())
		if err != nil {
			return 0, false, err
		}
		// Strictly greater, so the first of equal moves wins
		if value > alpha {
			alpha = value
			best = action
		}
	}
	return best, true, nil
}

// alphaBeta returns the minimax value of state to depth. Values of pruned
// branches are bounds rather than exact scores.
func (s *search) alphaBeta(state game.State, depth int, alpha, beta float64, maximizing bool) (float64, error) {
	s.metrics.AddNode()
	if depth <= 0 {
		return s.evaluate(state, s.player), nil
	}

	if maximizing {
		value := math.Inf(-1)
		for _, action := range state.Actions() {
			child, err := state.Result(action)
			if err != nil {
				return 0, err
			}
			score, err := s.alphaBeta(child, depth-1, alpha, beta, false)
			if err != nil {
				return 0, err
			}
			value = max(value, score)
			alpha = max(alpha, value)
			if alpha >= beta {
				break
			}
		}
		return value, nil
	}

	value := math.Inf(1)
	for _, action := range state.Actions() {
		child, err := state.Result(action)
		if err != nil {
			return 0, err
		}
		score, err := s.alphaBeta(child, depth-1, alpha, beta, true)
		if err != nil {
			return 0, err
		}
		value = min(value, score)
		beta = min(beta, value)
		if alpha >= beta {
			break
		}
	}
	return value, nil
}
