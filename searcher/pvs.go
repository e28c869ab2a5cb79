package searcher

import (
	"isolation/game"
	"math"
)

// selectMovePVS searches the first action with the full window and probes the
// rest with a null window, re-searching only those that beat alpha.
func (s *search) selectMovePVS(state game.State, depth int) (game.Action, bool, error) {
	actions := state.Actions()
	if len(actions) == 0 {
		return 0, false, nil
	}

	alpha, beta := math.Inf(-1), math.Inf(1)
	best := actions[0]
	value := math.Inf(-1)
	for i, action := range actions {
		child, err := state.Result(action)
		if err != nil {
			return 0, false, err
		}
		value, err = s.pvsChild(child, i, depth-1, value, alpha, beta, s.childMaximizing())
		if err != nil {
			return 0, false, err
		}
		if value > alpha {
			alpha = value
			best = action
		}
	}
	return best, true, nil
}

// pvsChild folds the score of the i-th child of a maximizing node into value.
func (s *search) pvsChild(child game.State, i, depth int, value, alpha, beta float64, maximizing bool) (float64, error) {
	if i == 0 {
		score, err := s.pvs(child, depth, alpha, beta, maximizing)
		return max(value, score), err
	}

	probe, err := s.pvs(child, depth, alpha, alpha+1, maximizing)
	if err != nil {
		return 0, err
	}
	value = max(value, probe)
	if value > alpha {
		score, err := s.pvs(child, depth, alpha, beta, maximizing)
		if err != nil {
			return 0, err
		}
		value = max(value, score)
	}
	return value, nil
}

// pvs is alpha-beta with null-window probes. Terminal states score their exact
// utility at any depth.
func (s *search) pvs(state game.State, depth int, alpha, beta float64, maximizing bool) (float64, error) {
	s.metrics.AddNode()
	if state.TerminalTest() {
		return state.Utility(s.player), nil
	}
	if depth <= 0 {
		return s.evaluate(state, s.player), nil
	}

	if maximizing {
		value := math.Inf(-1)
		for i, action := range state.Actions() {
			child, err := state.Result(action)
			if err != nil {
				return 0, err
			}
			value, err = s.pvsChild(child, i, depth-1, value, alpha, beta, false)
			if err != nil {
				return 0, err
			}
			alpha = max(alpha, value)
			if alpha >= beta {
				break
			}
		}
		return value, nil
	}

	value := math.Inf(1)
	for i, action := range state.Actions() {
		child, err := state.Result(action)
		if err != nil {
			return 0, err
		}
		if i == 0 {
			score, err := s.pvs(child, depth-1, alpha, beta, true)
			if err != nil {
				return 0, err
			}
			value = min(value, score)
		} else {
			probe, err := s.pvs(child, depth-1, beta-1, beta, true)
			if err != nil {
				return 0, err
			}
			value = min(value, probe)
			if value < beta {
				score, err := s.pvs(child, depth-1, alpha, beta, true)
				if err != nil {
					return 0, err
				}
				value = min(value, score)
			}
		}
		beta = min(beta, value)
		if alpha >= beta {
			break
		}
	}
	return value, nil
}
