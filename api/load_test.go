// ABOUTME: Load tests for the feed endpoints
// ABOUTME: Overlapping loads and reads under concurrent clients

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"feedreader/core/domain"
	"feedreader/core/interfaces"
	"feedreader/core/menu"
	"feedreader/core/pipeline"
	"feedreader/core/registry"
)

// slowFetcher returns one article per feed after a fixed delay
type slowFetcher struct {
	delay time.Duration
}

func (f slowFetcher) Fetch(ctx context.Context, src domain.FeedSource) (*domain.Feed, error) {
	select {
	case <-time.After(f.delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return &domain.Feed{
		Title: src.Name,
		URL:   src.URL,
		Articles: []domain.Article{{
			ID:    src.URL + "#1",
			Title: src.Name + " post",
			Link:  src.URL + "/1",
		}},
	}, nil
}

var loadSources = []domain.FeedSource{
	{Name: "Alpha", URL: "https://alpha.example/rss"},
	{Name: "Beta", URL: "https://beta.example/rss"},
	{Name: "Gamma", URL: "https://gamma.example/rss"},
}

func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[int(float64(len(sorted)-1)*p)]
}

func TestFeedEndpoints_ConcurrentLoadsAndReads(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping load test in short mode")
	}

	p := pipeline.New(registry.MustNew(loadSources), slowFetcher{delay: 5 * time.Millisecond}, interfaces.Dependencies{})
	humaAPI, router := NewAPIWithMiddleware(APIConfig{Logger: nopLogger{}})
	RegisterRoutes(humaAPI, p, menu.New(), nopLogger{})

	server := httptest.NewServer(router)
	defer server.Close()

	concurrency := 50
	requestsPerWorker := 10

	var (
		failCount int64
		latencies []time.Duration
		mu        sync.Mutex
		wg        sync.WaitGroup
	)

	client := &http.Client{Timeout: 10 * time.Second}
	start := time.Now()

	wg.Add(concurrency)
	for i := 0; i < concurrency; i++ {
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < requestsPerWorker; j++ {
				var (
					resp *http.Response
					err  error
				)
				reqStart := time.Now()
				if j%2 == 0 {
					url := fmt.Sprintf("%s/feeds/%d/load?wait=%t", server.URL, (worker+j)%len(loadSources), worker%3 == 0)
					resp, err = client.Post(url, "application/json", nil)
				} else {
					resp, err = client.Get(server.URL + "/feed")
				}
				latency := time.Since(reqStart)

				mu.Lock()
				latencies = append(latencies, latency)
				mu.Unlock()

				if err != nil {
					atomic.AddInt64(&failCount, 1)
					continue
				}
				_, _ = io.Copy(io.Discard, resp.Body)
				resp.Body.Close()
				if resp.StatusCode >= 300 {
					atomic.AddInt64(&failCount, 1)
				}
			}
		}(i)
	}
	wg.Wait()
	total := time.Since(start)
	p.Wait()

	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })
	t.Logf("Requests: %d in %v (%.2f/s)", len(latencies), total, float64(len(latencies))/total.Seconds())
	t.Logf("P50 Latency: %v", percentile(latencies, 0.50))
	t.Logf("P95 Latency: %v", percentile(latencies, 0.95))
	t.Logf("Max Latency: %v", percentile(latencies, 1))

	if failCount > 0 {
		t.Errorf("Had %d failed requests", failCount)
	}

	// With every load finished, one more load decides the content
	resp, err := client.Post(server.URL+"/feeds/2/load?wait=true", "application/json", nil)
	if err != nil {
		t.Fatalf("final load: %v", err)
	}
	resp.Body.Close()

	resp, err = client.Get(server.URL + "/feed")
	if err != nil {
		t.Fatalf("read feed: %v", err)
	}
	defer resp.Body.Close()

	var body struct {
		SourceName   string `json:"source_name"`
		TotalEntries int    `json:"total_entries"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.SourceName != "Gamma" || body.TotalEntries != 1 {
		t.Errorf("container = %q with %d entries, want Gamma with 1", body.SourceName, body.TotalEntries)
	}
}
