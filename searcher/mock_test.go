package searcher

import (
	"errors"
	"isolation/experiments/metrics"
	"isolation/game"
	"math"

	"golang.org/x/exp/rand"
)

var errBrokenState = errors.New("broken state")

// mockState is a hand-built game tree. A node without children is terminal
// and its value doubles as both evaluation and utility.
type mockState struct {
	player   int
	value    float64
	children []*mockState
	broken   bool // Result fails
	results  *int // Result calls across the tree
}

func (m *mockState) Player() int {
	return m.player
}

func (m *mockState) Actions() []game.Action {
	actions := make([]game.Action, len(m.children))
	for i := range m.children {
		actions[i] = game.Action(i)
	}
	return actions
}

func (m *mockState) Result(action game.Action) (game.State, error) {
	if m.results != nil {
		*m.results++
	}
	if m.broken || int(action) < 0 || int(action) >= len(m.children) {
		return nil, errBrokenState
	}
	return m.children[action], nil
}

func (m *mockState) TerminalTest() bool {
	return len(m.children) == 0
}

func (m *mockState) Utility(player int) float64 {
	return m.value
}

func (m *mockState) Locs() [2]game.Loc {
	return [2]game.Loc{game.NoLoc, game.NoLoc}
}

func (m *mockState) Liberties(game.Loc) []game.Loc {
	return nil
}

func mockValue(state game.State, player int) float64 {
	return state.(*mockState).value
}

// leaves returns a node whose children are leaves with the given values.
func leaves(values ...float64) *mockState {
	node := &mockState{}
	for _, v := range values {
		node.children = append(node.children, &mockState{player: 1, value: v})
	}
	return node
}

func node(children ...*mockState) *mockState {
	return &mockState{children: children}
}

// randomTree builds a tree with every leaf exactly depth plies down and
// integer values in [-10, 10].
func randomTree(r *rand.Rand, depth, branching int) *mockState {
	n := &mockState{value: float64(r.Intn(21) - 10)}
	if depth == 0 {
		return n
	}
	for i := 0; i < 1+r.Intn(branching); i++ {
		n.children = append(n.children, randomTree(r, depth-1, branching))
	}
	return n
}

// raggedTree is like randomTree but lets any node end early.
func raggedTree(r *rand.Rand, depth, branching int) *mockState {
	n := &mockState{value: float64(r.Intn(21) - 10)}
	if depth == 0 || r.Intn(5) == 0 {
		return n
	}
	for i := 0; i < 1+r.Intn(branching); i++ {
		n.children = append(n.children, raggedTree(r, depth-1, branching))
	}
	return n
}

// minimax is the unpruned reference value with the same conventions as the
// alpha-beta kernel.
func minimax(state game.State, depth int, maximizing bool) float64 {
	if depth <= 0 {
		return mockValue(state, 0)
	}
	value := math.Inf(1)
	if maximizing {
		value = math.Inf(-1)
	}
	for _, action := range state.Actions() {
		child, _ := state.Result(action)
		score := minimax(child, depth-1, !maximizing)
		if maximizing {
			value = max(value, score)
		} else {
			value = min(value, score)
		}
	}
	return value
}

func newMockSearch() *search {
	return &search{evaluate: mockValue, metrics: metrics.NewDummyCollector()}
}

type recordingSink struct {
	actions []game.Action
}

func (r *recordingSink) Publish(action game.Action) {
	r.actions = append(r.actions, action)
}
