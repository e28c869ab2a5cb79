package searcher

import (
	"isolation/game"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestPVS(t *testing.T) {
	t.Run("terminal state returns its exact utility at any depth", func(t *testing.T) {
		terminal := &mockState{value: 7}
		s := newMockSearch()
		s.evaluate = func(game.State, int) float64 { return -100 }

		for _, depth := range []int{0, 1, 5} {
			got, err := s.pvs(terminal, depth, math.Inf(-1), math.Inf(1), true)

			require.NoError(t, err)
			require.Equal(t, 7.0, got, "depth %d", depth)
		}
	})

	t.Run("depth 0 evaluates without expanding", func(t *testing.T) {
		root := leaves(1, 2)
		root.value = 4
		expanded := 0
		countResults(root, &expanded)

		got, err := newMockSearch().pvs(root, 0, math.Inf(-1), math.Inf(1), false)

		require.NoError(t, err)
		require.Equal(t, 4.0, got)
		require.Zero(t, expanded)
	})

	t.Run("matching unpruned minimax with a full window", func(t *testing.T) {
		for seed := uint64(1); seed <= 200; seed++ {
			for depth := 1; depth <= 4; depth++ {
				tree := randomTree(rand.New(rand.NewSource(seed)), depth, 4)

				got, err := newMockSearch().pvs(tree, depth, math.Inf(-1), math.Inf(1), true)

				require.NoError(t, err)
				require.Equal(t, minimax(tree, depth, true), got, "seed %d depth %d", seed, depth)
			}
		}
	})

	t.Run("returning a child's error unmodified", func(t *testing.T) {
		root := node(leaves(1), &mockState{broken: true, children: []*mockState{{value: 1}}})

		_, err := newMockSearch().pvs(root, 2, math.Inf(-1), math.Inf(1), true)

		require.ErrorIs(t, err, errBrokenState)
	})
}

func TestSelectMovePVS(t *testing.T) {
	t.Run("first of equal best moves wins", func(t *testing.T) {
		action, ok, err := newMockSearch().selectMovePVS(leaves(5, 3, 5), 1)

		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, 0, int(action))
	})

	t.Run("no legal actions", func(t *testing.T) {
		_, ok, err := newMockSearch().selectMovePVS(&mockState{}, 2)

		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("never choosing a move dominated under full alpha-beta", func(t *testing.T) {
		for seed := uint64(1); seed <= 200; seed++ {
			for depth := 1; depth <= 4; depth++ {
				tree := randomTree(rand.New(rand.NewSource(seed)), depth, 4)
				s := newMockSearch()

				got, ok, err := s.selectMovePVS(tree, depth)
				require.NoError(t, err)
				require.True(t, ok)

				best := math.Inf(-1)
				scores := make([]float64, len(tree.children))
				for i, child := range tree.children {
					scores[i], err = s.alphaBeta(child, depth-1, math.Inf(-1), math.Inf(1), true)
					require.NoError(t, err)
					best = max(best, scores[i])
				}
				require.Equal(t, best, scores[got], "seed %d depth %d", seed, depth)

				want, _, err := s.selectMove(tree, depth)
				require.NoError(t, err)
				require.Equal(t, want, got, "PVS and alpha-beta should agree on seed %d depth %d", seed, depth)
			}
		}
	})

	t.Run("alternating turns scores root children as minimizing", func(t *testing.T) {
		root := node(leaves(3, 9), leaves(5, 6))
		s := newMockSearch()

		baseline, _, err := s.selectMovePVS(root, 2)
		require.NoError(t, err)
		s.alternating = true
		corrected, _, err := s.selectMovePVS(root, 2)
		require.NoError(t, err)

		require.Equal(t, 0, int(baseline))
		require.Equal(t, 1, int(corrected))
	})
}
