package handlers

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"feedreader/core/domain"
	apperrors "feedreader/core/errors"
)

// stubFetcher serves a fixed number of articles per URL, or an error
type stubFetcher struct {
	mu    sync.Mutex
	sizes map[string]int
	errs  map[string]error
}

func newStubFetcher() *stubFetcher {
	return &stubFetcher{sizes: map[string]int{}, errs: map[string]error{}}
}

func (f *stubFetcher) serve(url string, n int) {
	f.mu.Lock()
	f.sizes[url] = n
	f.mu.Unlock()
}

func (f *stubFetcher) fail(url string) {
	f.mu.Lock()
	f.errs[url] = &apperrors.FetchFailureError{URL: url, StatusCode: 503, Err: errors.New("unavailable")}
	f.mu.Unlock()
}

func (f *stubFetcher) Fetch(ctx context.Context, src domain.FeedSource) (*domain.Feed, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.errs[src.URL]; err != nil {
		return nil, err
	}
	n, ok := f.sizes[src.URL]
	if !ok {
		return nil, &apperrors.FetchFailureError{URL: src.URL, StatusCode: 404}
	}

	feed := &domain.Feed{Title: src.Name, URL: src.URL}
	for i := 0; i < n; i++ {
		feed.Articles = append(feed.Articles, domain.Article{
			ID:          fmt.Sprintf("%s-%d", src.Name, i),
			Title:       fmt.Sprintf("%s post %d", src.Name, i),
			Link:        fmt.Sprintf("%s/%d", src.URL, i),
			Description: "<p>Body text</p>",
		})
	}
	return feed, nil
}
