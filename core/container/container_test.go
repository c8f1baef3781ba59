package container_test

import (
	"sync"
	"testing"

	"feedreader/core/container"
	"feedreader/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commitOf(index int, titles ...string) container.Commit {
	entries := make([]domain.Entry, len(titles))
	for i, title := range titles {
		entries[i] = domain.Entry{ID: title, Title: title}
	}
	return container.Commit{SourceIndex: index, SourceName: "feed", Entries: entries, HTML: "html"}
}

func TestNew_Empty(t *testing.T) {
	c := container.New()
	snap := c.Snapshot()

	assert.Equal(t, -1, snap.SourceIndex)
	assert.Empty(t, snap.Entries)
	assert.Zero(t, c.Latest())
}

func TestCommit_Latest(t *testing.T) {
	c := container.New()
	gen := c.Issue()

	require.True(t, c.Commit(gen, commitOf(0, "a", "b")))

	snap := c.Snapshot()
	assert.Equal(t, gen, snap.Generation)
	assert.Equal(t, 0, snap.SourceIndex)
	assert.Len(t, snap.Entries, 2)
	assert.False(t, snap.UpdatedAt.IsZero())
}

func TestCommit_StaleIsDiscarded(t *testing.T) {
	c := container.New()
	older := c.Issue()
	newer := c.Issue()

	require.True(t, c.Commit(newer, commitOf(1, "new")))
	assert.False(t, c.Commit(older, commitOf(0, "old")))

	snap := c.Snapshot()
	assert.Equal(t, 1, snap.SourceIndex)
	assert.Equal(t, "new", snap.Entries[0].Title)
}

func TestCommit_StaleBeforeNewerFinishes(t *testing.T) {
	c := container.New()
	older := c.Issue()
	_ = c.Issue()

	assert.False(t, c.Commit(older, commitOf(0, "old")))
	assert.Zero(t, c.Len())
}

func TestClear_InvalidatesInFlight(t *testing.T) {
	c := container.New()
	gen := c.Issue()
	require.True(t, c.Commit(gen, commitOf(0, "a")))

	inFlight := c.Issue()
	c.Clear()

	assert.False(t, c.Commit(inFlight, commitOf(0, "late")))
	assert.Zero(t, c.Len())
	assert.Equal(t, -1, c.Snapshot().SourceIndex)
}

func TestSnapshot_IsCopy(t *testing.T) {
	c := container.New()
	next := commitOf(0, "a")
	require.True(t, c.Commit(c.Issue(), next))

	next.Entries[0].Title = "mutated input"
	snap := c.Snapshot()
	snap.Entries[0].Title = "mutated output"

	assert.Equal(t, "a", c.Snapshot().Entries[0].Title)
}

func TestConcurrentReadersNeverSeeMixedContent(t *testing.T) {
	c := container.New()
	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			snap := c.Snapshot()
			for _, e := range snap.Entries {
				if snap.SourceIndex == 0 {
					assert.Equal(t, "zero", e.Title)
				} else {
					assert.Equal(t, "one", e.Title)
				}
			}
		}
	}()

	for i := 0; i < 200; i++ {
		idx := i % 2
		title := map[int]string{0: "zero", 1: "one"}[idx]
		c.Commit(c.Issue(), commitOf(idx, title, title, title))
	}
	close(stop)
	wg.Wait()
}
