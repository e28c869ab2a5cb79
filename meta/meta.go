// meta/meta.go
package meta

import "time"

// TIME_LIMIT is the wall-clock time an agent gets for each move.
const TIME_LIMIT = 150 * time.Millisecond

// BOARD_WIDTH and BOARD_HEIGHT define the Isolation board.
const BOARD_WIDTH = 11
const BOARD_HEIGHT = 9

// NUM_GAMES defines the number of games per matchup.
const NUM_GAMES = 20

// WORKERS defines the number of games played concurrently.
const WORKERS = 4

// MAX_TURNS caps a game; Isolation cannot outlast the board.
const MAX_TURNS = BOARD_WIDTH * BOARD_HEIGHT
