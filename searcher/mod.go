package searcher

import (
	"errors"
	"isolation/game"
)

var ErrNoActions = errors.New("no legal actions to search")

// Sink receives the best action found so far. Each publish supersedes the last.
type Sink interface {
	Publish(action game.Action)
}
