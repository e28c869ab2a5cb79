package searcher

import "isolation/game"

// Mobility scores how many more moves player has than the opponent.
func Mobility(state game.State, player int) float64 {
	locs := state.Locs()
	own := state.Liberties(locs[player])
	opponent := state.Liberties(locs[1-player])
	return float64(len(own) - len(opponent))
}
