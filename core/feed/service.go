// ABOUTME: Feed service fetches one feed source and parses it into domain articles
// ABOUTME: Coalesces concurrent fetches of the same URL and caches parsed documents briefly

package feed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"feedreader/core/domain"
	apperrors "feedreader/core/errors"
	"feedreader/core/interfaces"
	"feedreader/pkg/utils/timeparse"

	"github.com/mmcdole/gofeed"
	"golang.org/x/sync/singleflight"
)

const (
	defaultCacheTTL     = 5 * time.Minute
	defaultMaxBodyBytes = 10 << 20
	defaultFetchTimeout = 30 * time.Second
)

// FeedService fetches and parses feeds
type FeedService struct {
	deps         interfaces.Dependencies
	cacheTTL     time.Duration
	maxBodyBytes int64
	fetchTimeout time.Duration
	flights      singleflight.Group
}

// Option configures a FeedService
type Option func(*FeedService)

// WithCacheTTL sets how long parsed feeds stay cached. Zero or less disables caching.
func WithCacheTTL(ttl time.Duration) Option {
	return func(s *FeedService) {
		s.cacheTTL = ttl
	}
}

// WithMaxBodyBytes caps the size of a fetched document
func WithMaxBodyBytes(n int64) Option {
	return func(s *FeedService) {
		if n > 0 {
			s.maxBodyBytes = n
		}
	}
}

// WithFetchTimeout bounds a shared fetch. It runs apart from any one caller's
// context, so this is the only deadline it has.
func WithFetchTimeout(d time.Duration) Option {
	return func(s *FeedService) {
		if d > 0 {
			s.fetchTimeout = d
		}
	}
}

// NewFeedService creates a new feed service instance
func NewFeedService(deps interfaces.Dependencies, opts ...Option) *FeedService {
	s := &FeedService{
		deps:         deps,
		cacheTTL:     defaultCacheTTL,
		maxBodyBytes: defaultMaxBodyBytes,
		fetchTimeout: defaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fetch retrieves and parses the feed at src.URL.
// Every failure is reported as *errors.FetchFailureError.
// The returned feed may be shared with concurrent callers and must not be modified.
func (s *FeedService) Fetch(ctx context.Context, src domain.FeedSource) (*domain.Feed, error) {
	feedURL := strings.TrimSpace(src.URL)

	parsedURL, err := url.Parse(feedURL)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, &apperrors.FetchFailureError{URL: feedURL, Err: errors.New("invalid URL format")}
	}

	if cached, err := s.getCachedFeed(ctx, feedURL); err == nil && cached != nil {
		s.debug("Feed served from cache", map[string]interface{}{"url": feedURL})
		return cached, nil
	}

	if s.deps.HTTPClient == nil {
		return nil, &apperrors.FetchFailureError{URL: feedURL, Err: errors.New("HTTP client not configured")}
	}

	// Joined callers must not inherit the cancellation of whoever started the flight
	ch := s.flights.DoChan(feedURL, func() (interface{}, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.fetchTimeout)
		defer cancel()
		return s.fetchAndParse(fetchCtx, feedURL)
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		return nil, &apperrors.FetchFailureError{URL: feedURL, Err: ctx.Err()}
	}

	if res.Shared {
		s.debug("Joined in-flight fetch", map[string]interface{}{"url": feedURL})
	}
	if res.Err != nil {
		return nil, res.Err
	}

	return res.Val.(*domain.Feed), nil
}

func (s *FeedService) fetchAndParse(ctx context.Context, feedURL string) (*domain.Feed, error) {
	resp, err := s.deps.HTTPClient.Get(ctx, feedURL)
	if err != nil {
		return nil, &apperrors.FetchFailureError{URL: feedURL, Err: err}
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, &apperrors.FetchFailureError{
			URL:        feedURL,
			StatusCode: resp.StatusCode(),
			Err:        errors.New("feed returned non-2xx status code"),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body(), s.maxBodyBytes+1))
	if err != nil {
		return nil, &apperrors.FetchFailureError{URL: feedURL, Err: apperrors.WrapError(err, "read body")}
	}
	if int64(len(body)) > s.maxBodyBytes {
		return nil, &apperrors.FetchFailureError{
			URL: feedURL,
			Err: fmt.Errorf("feed exceeds %d bytes", s.maxBodyBytes),
		}
	}

	feed, err := s.parseFeedContent(body, feedURL)
	if err != nil {
		return nil, &apperrors.FetchFailureError{URL: feedURL, Err: err}
	}

	// Cache errors only cost a refetch
	_ = s.cacheFeed(ctx, feedURL, feed)

	return feed, nil
}

// parseFeedContent parses an RSS/Atom/JSON feed document
func (s *FeedService) parseFeedContent(content []byte, feedURL string) (*domain.Feed, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, errors.New("empty feed content")
	}

	parsed, err := gofeed.NewParser().Parse(bytes.NewReader(content))
	if err != nil {
		return nil, apperrors.WrapError(err, "parse feed")
	}

	feed := &domain.Feed{
		Title:       strings.TrimSpace(parsed.Title),
		Description: parsed.Description,
		URL:         feedURL,
		Link:        parsed.Link,
		Language:    parsed.Language,
		Articles:    make([]domain.Article, 0, len(parsed.Items)),
		FetchedAt:   time.Now(),
	}

	skipped := 0
	for _, item := range parsed.Items {
		if item == nil {
			continue
		}
		article := convertItemToDomain(item)
		if !article.IsValid() {
			skipped++
			continue
		}
		feed.Articles = append(feed.Articles, article)
	}

	if skipped > 0 {
		s.debug("Skipped incomplete feed items", map[string]interface{}{
			"url":     feedURL,
			"skipped": skipped,
		})
	}

	return feed, nil
}

// convertItemToDomain converts a gofeed item to a domain article
func convertItemToDomain(item *gofeed.Item) domain.Article {
	article := domain.Article{
		ID:          item.GUID,
		Title:       strings.TrimSpace(item.Title),
		Link:        item.Link,
		Description: item.Description,
		Content:     item.Content,
	}

	if article.ID == "" {
		article.ID = item.Link
	}

	if item.Author != nil && item.Author.Name != "" {
		article.Author = item.Author.Name
	} else if len(item.Authors) > 0 && item.Authors[0] != nil {
		article.Author = item.Authors[0].Name
	}

	article.Published = timeparse.Prefer(item.PublishedParsed, item.Published)
	if article.Published.IsZero() {
		article.Published = timeparse.Prefer(item.UpdatedParsed, item.Updated)
	}

	return article
}

func cacheKey(feedURL string) string {
	return fmt.Sprintf("feed:%s", feedURL)
}

// getCachedFeed retrieves a feed from cache
func (s *FeedService) getCachedFeed(ctx context.Context, feedURL string) (*domain.Feed, error) {
	if s.deps.Cache == nil || s.cacheTTL <= 0 {
		return nil, nil
	}

	data, err := s.deps.Cache.Get(ctx, cacheKey(feedURL))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var feed domain.Feed
	if err := json.Unmarshal(data, &feed); err != nil {
		return nil, err
	}

	return &feed, nil
}

// cacheFeed stores a feed in cache
func (s *FeedService) cacheFeed(ctx context.Context, feedURL string, feed *domain.Feed) error {
	if s.deps.Cache == nil || s.cacheTTL <= 0 {
		return nil
	}

	data, err := json.Marshal(feed)
	if err != nil {
		return err
	}

	return s.deps.Cache.Set(ctx, cacheKey(feedURL), data, s.cacheTTL)
}

func (s *FeedService) debug(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Debug(msg, fields)
	}
}
