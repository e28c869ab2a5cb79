package game

import "errors"

// Action identifies a move. For Isolation it is the destination cell.
type Action int

// Loc is a board cell index; NoLoc marks a player that has not been placed yet.
type Loc int

const NoLoc Loc = -1

var ErrIllegalAction = errors.New("illegal action")

// State should be immutable - operations on State always return a new copy
type State interface {
	Player() int
	Actions() []Action
	Result(Action) (State, error)
	TerminalTest() bool
	// Utility is only meaningful on terminal states: positive means player won.
	Utility(player int) float64
	Locs() [2]Loc
	Liberties(Loc) []Loc
}

// Evaluates a non-terminal game state from player's perspective. Higher is better.
type Evaluate func(state State, player int) float64
