package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"feedreader/core/domain"
)

// fakeFetcher serves canned feeds per URL. A gate blocks the fetch of its
// URL until the gate channel is closed or the context ends.
type fakeFetcher struct {
	mu    sync.Mutex
	feeds map[string]*domain.Feed
	errs  map[string]error
	gates map[string]chan struct{}
	calls map[string]int
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		feeds: map[string]*domain.Feed{},
		errs:  map[string]error{},
		gates: map[string]chan struct{}{},
		calls: map[string]int{},
	}
}

func (f *fakeFetcher) serve(url string, titles ...string) {
	feed := &domain.Feed{URL: url}
	for i, title := range titles {
		feed.Articles = append(feed.Articles, domain.Article{
			ID:    fmt.Sprintf("%s#%d", url, i),
			Title: title,
			Link:  fmt.Sprintf("%s/%d", url, i),
		})
	}
	f.mu.Lock()
	f.feeds[url] = feed
	f.mu.Unlock()
}

func (f *fakeFetcher) fail(url string, err error) {
	f.mu.Lock()
	f.errs[url] = err
	f.mu.Unlock()
}

func (f *fakeFetcher) gate(url string) chan struct{} {
	ch := make(chan struct{})
	f.mu.Lock()
	f.gates[url] = ch
	f.mu.Unlock()
	return ch
}

func (f *fakeFetcher) callCount(url string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[url]
}

func (f *fakeFetcher) Fetch(ctx context.Context, src domain.FeedSource) (*domain.Feed, error) {
	f.mu.Lock()
	f.calls[src.URL]++
	gate := f.gates[src.URL]
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.errs[src.URL]; err != nil {
		return nil, err
	}
	feed, ok := f.feeds[src.URL]
	if !ok {
		return nil, errors.New("no such feed")
	}
	return feed, nil
}

// recordingMetrics captures observations
type recordingMetrics struct {
	mu       sync.Mutex
	outcomes []string
	rendered int
}

func (m *recordingMetrics) ObserveLoad(outcome string, d time.Duration) {
	m.mu.Lock()
	m.outcomes = append(m.outcomes, outcome)
	m.mu.Unlock()
}

func (m *recordingMetrics) SetRenderedEntries(n int) {
	m.mu.Lock()
	m.rendered = n
	m.mu.Unlock()
}

func (m *recordingMetrics) snapshot() ([]string, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.outcomes))
	copy(out, m.outcomes)
	return out, m.rendered
}
