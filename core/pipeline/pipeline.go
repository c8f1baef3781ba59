// ABOUTME: Pipeline implements loadFeed: resolve a registry index, fetch, render, commit
// ABOUTME: Overlapping loads are safe; only the most recently issued one may commit

package pipeline

import (
	"context"
	"sync"
	"time"

	"feedreader/core/container"
	"feedreader/core/domain"
	apperrors "feedreader/core/errors"
	"feedreader/core/interfaces"
	"feedreader/core/registry"
	"feedreader/core/render"
)

const defaultTimeout = 10 * time.Second

// Fetcher retrieves a parsed feed for a source
type Fetcher interface {
	Fetch(ctx context.Context, src domain.FeedSource) (*domain.Feed, error)
}

// Result describes how one load ended.
//
// Committed means the container now shows this load. A non-nil Err means
// the fetch failed and the container kept its previous content. Superseded
// means a newer load (or a clear) had been issued by the time this one
// finished, so its result was dropped.
type Result struct {
	Index      int
	Source     domain.FeedSource
	Generation uint64
	Entries    int
	Committed  bool
	Superseded bool
	Err        error
	Duration   time.Duration
}

// Pipeline owns the feed container and is its only writer
type Pipeline struct {
	registry  *registry.Registry
	fetcher   Fetcher
	container *container.Container
	deps      interfaces.Dependencies
	timeout   time.Duration
	pending   sync.WaitGroup
}

// Option configures a Pipeline
type Option func(*Pipeline)

// WithTimeout bounds every fetch. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(p *Pipeline) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithContainer renders into c instead of a private container
func WithContainer(c *container.Container) Option {
	return func(p *Pipeline) {
		p.container = c
	}
}

// New creates a pipeline over reg using fetcher. deps supplies the
// optional Logger and Metrics.
func New(reg *registry.Registry, fetcher Fetcher, deps interfaces.Dependencies, opts ...Option) *Pipeline {
	p := &Pipeline{
		registry: reg,
		fetcher:  fetcher,
		deps:     deps,
		timeout:  defaultTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.container == nil {
		p.container = container.New()
	}
	return p
}

// Registry returns the feed registry the pipeline resolves indexes against
func (p *Pipeline) Registry() *registry.Registry {
	return p.registry
}

// LoadFeed loads the feed at index and blocks until the load has finished.
// An out-of-range index returns *errors.InvalidFeedIndexError and leaves the
// container untouched. Fetch failures are not returned as errors; they are
// reported in Result.Err.
func (p *Pipeline) LoadFeed(ctx context.Context, index int) (Result, error) {
	src, err := p.registry.Get(index)
	if err != nil {
		return Result{Index: index}, err
	}

	gen := p.container.Issue()
	return p.run(ctx, index, src, gen), nil
}

// LoadFeedAsync starts loading the feed at index and returns immediately.
// onComplete, when non-nil, is called exactly once after the container has
// been updated for this load (or left alone, see Result). An invalid index is
// returned synchronously and onComplete is not called.
func (p *Pipeline) LoadFeedAsync(index int, onComplete func(Result)) error {
	src, err := p.registry.Get(index)
	if err != nil {
		return err
	}

	// Issued before returning so that generation order is call order
	gen := p.container.Issue()

	p.pending.Add(1)
	go func() {
		defer p.pending.Done()
		res := p.run(context.Background(), index, src, gen)
		if onComplete != nil {
			onComplete(res)
		}
	}()

	return nil
}

// Wait blocks until every load started with LoadFeedAsync has completed
func (p *Pipeline) Wait() {
	p.pending.Wait()
}

// Clear empties the container. Loads issued before the clear cannot commit.
func (p *Pipeline) Clear() {
	gen := p.container.Clear()
	p.setRendered(0)
	p.log().Debug("Feed container cleared", map[string]interface{}{"generation": gen})
}

// Snapshot returns the current content of the container
func (p *Pipeline) Snapshot() container.Snapshot {
	return p.container.Snapshot()
}

func (p *Pipeline) run(ctx context.Context, index int, src domain.FeedSource, gen uint64) Result {
	start := time.Now()
	res := Result{Index: index, Source: src, Generation: gen}

	fetchCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	feed, err := p.fetcher.Fetch(fetchCtx, src)
	if err == nil {
		var entries []domain.Entry
		var markup string

		entries = render.BuildEntries(feed)
		markup, err = render.HTML(entries)
		if err == nil {
			res.Entries = len(entries)
			res.Committed = p.container.Commit(gen, container.Commit{
				SourceIndex: index,
				SourceName:  src.Name,
				Entries:     entries,
				HTML:        markup,
			})
			res.Superseded = !res.Committed
		} else {
			err = apperrors.WrapError(err, "render entries")
		}
	}

	if err != nil {
		if !apperrors.IsFetchFailure(err) {
			err = &apperrors.FetchFailureError{URL: src.URL, Err: err}
		}
		res.Err = err
		res.Superseded = p.container.Latest() != gen
	}

	res.Duration = time.Since(start)
	p.report(res)
	return res
}

func (p *Pipeline) report(res Result) {
	fields := map[string]interface{}{
		"index":       res.Index,
		"feed":        res.Source.Name,
		"generation":  res.Generation,
		"duration_ms": res.Duration.Milliseconds(),
	}

	switch {
	case res.Err != nil:
		fields["error"] = res.Err.Error()
		p.log().Warn("Feed load failed, keeping previous entries", fields)
		p.observe(interfaces.OutcomeFailed, res.Duration)
	case res.Committed:
		fields["entries"] = res.Entries
		p.log().Info("Feed load committed", fields)
		p.observe(interfaces.OutcomeCommitted, res.Duration)
		p.setRendered(p.container.Len())
	default:
		p.log().Debug("Feed load superseded by a newer load", fields)
		p.observe(interfaces.OutcomeSuperseded, res.Duration)
	}
}

func (p *Pipeline) observe(outcome string, d time.Duration) {
	if p.deps.Metrics != nil {
		p.deps.Metrics.ObserveLoad(outcome, d)
	}
}

func (p *Pipeline) setRendered(n int) {
	if p.deps.Metrics != nil {
		p.deps.Metrics.SetRenderedEntries(n)
	}
}

func (p *Pipeline) log() interfaces.Logger {
	if p.deps.Logger != nil {
		return p.deps.Logger
	}
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}
