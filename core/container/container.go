// ABOUTME: Container is the single shared region the pipeline renders into
// ABOUTME: Generation numbers make "last call issued wins" a property of Commit

package container

import (
	"sync"
	"time"

	"feedreader/core/domain"
)

// Commit is the new content of the container produced by one load
type Commit struct {
	SourceIndex int
	SourceName  string
	Entries     []domain.Entry
	HTML        string
}

// Snapshot is a consistent copy of the container at one instant.
// SourceIndex is -1 when nothing has been committed since the last clear.
type Snapshot struct {
	Generation  uint64
	SourceIndex int
	SourceName  string
	Entries     []domain.Entry
	HTML        string
	UpdatedAt   time.Time
}

// Container holds the committed entries and the generation counter.
// The zero value is not usable; call New.
type Container struct {
	mu        sync.RWMutex
	issued    uint64
	committed Snapshot
}

// New returns an empty container
func New() *Container {
	return &Container{
		committed: Snapshot{SourceIndex: -1, Entries: []domain.Entry{}},
	}
}

// Issue reserves the next generation number. Every generation issued
// before it becomes stale.
func (c *Container) Issue() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.issued++
	return c.issued
}

// Latest returns the most recently issued generation
func (c *Container) Latest() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.issued
}

// Commit replaces the container content if gen is still the latest issued
// generation. It reports whether the content was replaced.
func (c *Container) Commit(gen uint64, next Commit) bool {
	entries := make([]domain.Entry, len(next.Entries))
	copy(entries, next.Entries)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.issued {
		return false
	}

	c.committed = Snapshot{
		Generation:  gen,
		SourceIndex: next.SourceIndex,
		SourceName:  next.SourceName,
		Entries:     entries,
		HTML:        next.HTML,
		UpdatedAt:   time.Now(),
	}
	return true
}

// Clear empties the container under a fresh generation, so that loads
// issued before the clear can no longer commit.
func (c *Container) Clear() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.issued++
	c.committed = Snapshot{
		Generation:  c.issued,
		SourceIndex: -1,
		Entries:     []domain.Entry{},
		UpdatedAt:   time.Now(),
	}
	return c.issued
}

// Snapshot returns a copy of the committed content
func (c *Container) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap := c.committed
	snap.Entries = make([]domain.Entry, len(c.committed.Entries))
	copy(snap.Entries, c.committed.Entries)
	return snap
}

// Len returns the number of committed entries
func (c *Container) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.committed.Entries)
}
