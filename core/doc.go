// Package core contains the business logic of the feed reader.
// It does not depend on any web framework or infrastructure package.
//
// The core package is organized into several sub-packages:
//
// - domain: FeedSource, Feed, Article and the rendered Entry
// - registry: the immutable, validated list of feed sources
// - feed: fetches and parses one feed source
// - render: pure conversion of a feed into entries and container markup
// - container: the shared rendered region with its generation counter
// - pipeline: LoadFeed, which ties registry, feed, render and container together
// - menu: the menu visibility toggle
// - errors: typed errors (configuration, invalid index, fetch failure)
// - interfaces: contracts for external dependencies (cache, HTTP, logger, metrics)
//
// # Usage Example
//
//	reg, err := registry.New(sources)
//	if err != nil {
//	    log.Fatal(err) // configuration errors abort start-up
//	}
//
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,
//	    HTTPClient: myHTTPClient,
//	    Logger:     myLogger,
//	}
//
//	p := pipeline.New(reg, feed.NewFeedService(deps), deps)
//	res, err := p.LoadFeed(ctx, 0)
//	entries := p.Snapshot().Entries
package core
