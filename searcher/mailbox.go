package searcher

import (
	"isolation/game"
	"sync"
)

// Mailbox is a single-slot Sink. It keeps only the most recent action, so a
// host can read whatever is latest when its own deadline fires.
type Mailbox struct {
	mu        sync.Mutex
	action    game.Action
	publishes int
}

func NewMailbox() *Mailbox {
	return &Mailbox{}
}

func (m *Mailbox) Publish(action game.Action) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.action = action
	m.publishes++
}

// Latest returns the last published action and the number of publishes so
// far. ok is false until something has been published.
func (m *Mailbox) Latest() (action game.Action, publishes int, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.action, m.publishes, m.publishes > 0
}
