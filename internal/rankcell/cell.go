// Package rankcell owns the single, process-wide live Ranking State and
// mediates concurrent access to it.
//
// This is the mutex variant from the design: a reader locks the mutex
// just long enough to copy the current *ranking.State reference, then
// unlocks and operates on that immutable snapshot with no further
// synchronization. A writer locks, computes the new state from the old
// one, replaces the reference, and unlocks. Go's sync.Mutex provides the
// release/acquire fence the new node graph needs before it becomes
// visible to other goroutines, so no separate memory barrier is needed.
package rankcell

import (
	"sync"

	"github.com/scorestack/rankboard-server/internal/ranking"
)

// Cell is a concurrency-safe holder for the live ranking.State. The zero
// value is not usable; construct one with New.
type Cell struct {
	mu    sync.Mutex
	state *ranking.State
}

// New returns a Cell initialized to the empty ranking.
func New() *Cell {
	return &Cell{state: ranking.Empty()}
}

// snapshot returns the current state reference. Find and Top build on
// it; Add takes the mutex itself for its whole read-modify-write.
func (c *Cell) snapshot() *ranking.State {
	c.mu.Lock()
	s := c.state
	c.mu.Unlock()
	return s
}

// Add credits earned points to user. It is linearizable with respect to
// every other Add: the order in which callers observably enter Add's
// critical section is the order their updates are applied in.
func (c *Cell) Add(user ranking.UserID, earned ranking.Score) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	next, err := c.state.AddScore(user, earned)
	if err != nil {
		return err
	}
	c.state = next
	return nil
}

// Find looks up a user's current score and rank against a consistent
// snapshot of the ranking.
func (c *Cell) Find(user ranking.UserID) (ranking.Entry, bool) {
	return c.snapshot().FindUser(user)
}

// Top returns the top maxUsers entries against a consistent snapshot of
// the ranking.
func (c *Cell) Top(maxUsers int) []ranking.Entry {
	return c.snapshot().TopN(maxUsers)
}
