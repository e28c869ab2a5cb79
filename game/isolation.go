package game

import (
	"fmt"
	"isolation/meta"
	"math"
	"math/bits"
	"strings"
)

const (
	Width  = meta.BOARD_WIDTH
	Height = meta.BOARD_HEIGHT
	Cells  = Width * Height
)

// Knight offsets as (column, row) deltas, clockwise from north-north-east.
var knightMoves = [8][2]int{
	{1, -2}, {2, -1}, {2, 1}, {1, 2},
	{-1, 2}, {-2, 1}, {-2, -1}, {-1, -2},
}

type bitboard [2]uint64

func (b bitboard) has(loc Loc) bool {
	return b[loc/64]&(1<<(uint(loc)%64)) != 0
}

func (b bitboard) with(loc Loc) bitboard {
	b[loc/64] |= 1 << (uint(loc) % 64)
	return b
}

func (b bitboard) count() int {
	return bits.OnesCount64(b[0]) + bits.OnesCount64(b[1])
}

// Isolation is a knight Isolation position. Every cell a player has occupied
// stays blocked for the rest of the game. Values are copied on Result, so a
// position can be shared between sibling branches of a search.
type Isolation struct {
	blocked bitboard
	locs    [2]Loc
	ply     int
}

var _ State = Isolation{}

// NewIsolation returns the empty board with neither player placed.
func NewIsolation() Isolation {
	return Isolation{locs: [2]Loc{NoLoc, NoLoc}}
}

func Index(col, row int) Loc {
	return Loc(row*Width + col)
}

func (s Isolation) Player() int {
	return s.ply % 2
}

func (s Isolation) Ply() int {
	return s.ply
}

func (s Isolation) Locs() [2]Loc {
	return s.locs
}

func (s Isolation) Actions() []Action {
	libs := s.Liberties(s.locs[s.Player()])
	actions := make([]Action, len(libs))
	for i, loc := range libs {
		actions[i] = Action(loc)
	}
	return actions
}

func (s Isolation) Result(action Action) (State, error) {
	loc := Loc(action)
	if !s.isLegal(loc) {
		return nil, fmt.Errorf("player %d cannot move to cell %d: %w", s.Player(), loc, ErrIllegalAction)
	}
	next := s
	next.blocked = s.blocked.with(loc)
	next.locs[s.Player()] = loc
	next.ply++
	return next, nil
}

func (s Isolation) isLegal(loc Loc) bool {
	if loc < 0 || loc >= Cells || s.blocked.has(loc) {
		return false
	}
	from := s.locs[s.Player()]
	if from == NoLoc {
		return true
	}
	for _, to := range s.Liberties(from) {
		if to == loc {
			return true
		}
	}
	return false
}

// TerminalTest reports whether the player to move is out of liberties.
func (s Isolation) TerminalTest() bool {
	return !s.hasLiberties(s.Player())
}

func (s Isolation) Utility(player int) float64 {
	if !s.TerminalTest() {
		return 0
	}
	if player == s.Player() {
		return math.Inf(-1)
	}
	return math.Inf(1)
}

// Liberties lists the open cells reachable from loc in a fixed order. From
// NoLoc every open cell is reachable.
func (s Isolation) Liberties(loc Loc) []Loc {
	if loc == NoLoc {
		libs := make([]Loc, 0, Cells-s.blocked.count())
		for cell := Loc(0); cell < Cells; cell++ {
			if !s.blocked.has(cell) {
				libs = append(libs, cell)
			}
		}
		return libs
	}

	col, row := int(loc)%Width, int(loc)/Width
	libs := make([]Loc, 0, len(knightMoves))
	for _, d := range knightMoves {
		c, r := col+d[0], row+d[1]
		if c < 0 || c >= Width || r < 0 || r >= Height {
			continue
		}
		if to := Index(c, r); !s.blocked.has(to) {
			libs = append(libs, to)
		}
	}
	return libs
}

func (s Isolation) hasLiberties(player int) bool {
	return len(s.Liberties(s.locs[player])) > 0
}

func (s Isolation) String() string {
	var sb strings.Builder
	for row := 0; row < Height; row++ {
		for col := 0; col < Width; col++ {
			loc := Index(col, row)
			switch {
			case loc == s.locs[0]:
				sb.WriteString(" 1")
			case loc == s.locs[1]:
				sb.WriteString(" 2")
			case s.blocked.has(loc):
				sb.WriteString(" #")
			default:
				sb.WriteString(" .")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
