// ABOUTME: Feed handlers for the Huma API
// ABOUTME: Lists the registry, starts loads and serves the feed container

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"feedreader/api/dto/mappers"
	"feedreader/api/dto/requests"
	"feedreader/api/dto/responses"
	"feedreader/core/container"
	"feedreader/core/feed"
	"feedreader/core/interfaces"
	"feedreader/core/pipeline"
	"feedreader/core/registry"
)

// FeedLoader is the part of the pipeline the handlers drive
type FeedLoader interface {
	Registry() *registry.Registry
	LoadFeed(ctx context.Context, index int) (pipeline.Result, error)
	LoadFeedAsync(index int, onComplete func(pipeline.Result)) error
	Snapshot() container.Snapshot
	Clear()
}

// FeedHandler handles feed-related HTTP requests
type FeedHandler struct {
	loader FeedLoader
	logger interfaces.Logger
}

// NewFeedHandler creates a new feed handler. logger may be nil.
func NewFeedHandler(loader FeedLoader, logger interfaces.Logger) *FeedHandler {
	return &FeedHandler{
		loader: loader,
		logger: logger,
	}
}

// RegisterRoutes registers all feed-related routes
func (h *FeedHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listFeeds",
		Method:      http.MethodGet,
		Path:        "/feeds",
		Summary:     "List registered feeds",
		Description: "Returns the feed registry in display order",
		Tags:        []string{"Feeds"},
	}, h.ListFeeds)

	huma.Register(api, huma.Operation{
		OperationID: "loadFeed",
		Method:      http.MethodPost,
		Path:        "/feeds/{index}/load",
		Summary:     "Load a feed into the container",
		Description: "Fetches the feed at the registry index and renders it into the feed container. " +
			"Only the most recently requested load commits. With wait=false the request returns 202 immediately.",
		Tags: []string{"Feeds"},
	}, h.LoadFeed)

	huma.Register(api, huma.Operation{
		OperationID: "getFeed",
		Method:      http.MethodGet,
		Path:        "/feed",
		Summary:     "Get the feed container",
		Description: "Returns the entries currently rendered in the feed container",
		Tags:        []string{"Feeds"},
	}, h.GetFeed)

	huma.Register(api, huma.Operation{
		OperationID:   "clearFeed",
		Method:        http.MethodDelete,
		Path:          "/feed",
		Summary:       "Clear the feed container",
		Description:   "Empties the container; loads still in flight will not commit",
		Tags:          []string{"Feeds"},
		DefaultStatus: http.StatusNoContent,
	}, h.ClearFeed)
}

// ListFeedsOutput defines the output for the ListFeeds operation
type ListFeedsOutput struct {
	Body responses.FeedListResponse
}

// ListFeeds handles GET /feeds
func (h *FeedHandler) ListFeeds(ctx context.Context, input *struct{}) (*ListFeedsOutput, error) {
	return &ListFeedsOutput{Body: *mappers.ToFeedListResponse(h.loader.Registry().All())}, nil
}

// LoadFeedInput defines the input for the LoadFeed operation
type LoadFeedInput struct {
	Index int `path:"index" doc:"Registry index of the feed"`
	requests.LoadQuery
}

// LoadFeedOutput defines the output for the LoadFeed operation
type LoadFeedOutput struct {
	Status int
	Body   responses.LoadResponse
}

// LoadFeed handles POST /feeds/{index}/load
func (h *FeedHandler) LoadFeed(ctx context.Context, input *LoadFeedInput) (*LoadFeedOutput, error) {
	if !input.Wait {
		err := h.loader.LoadFeedAsync(input.Index, func(res pipeline.Result) {
			h.debug("Background load finished", map[string]interface{}{
				"index":      res.Index,
				"committed":  res.Committed,
				"superseded": res.Superseded,
			})
		})
		if err != nil {
			return nil, toHumaError(err)
		}

		src, _ := h.loader.Registry().Get(input.Index)
		return &LoadFeedOutput{
			Status: http.StatusAccepted,
			Body:   *mappers.ToLoadingResponse(input.Index, src),
		}, nil
	}

	res, err := h.loader.LoadFeed(ctx, input.Index)
	if err != nil {
		return nil, toHumaError(err)
	}
	// A superseded load failing is not the caller's problem; the newer load decides
	if res.Err != nil && !res.Superseded {
		return nil, toHumaError(res.Err)
	}

	return &LoadFeedOutput{
		Status: http.StatusOK,
		Body:   *mappers.ToLoadResponse(res),
	}, nil
}

// GetFeedInput defines the input for the GetFeed operation
type GetFeedInput struct {
	requests.PageQuery
}

// GetFeedOutput defines the output for the GetFeed operation
type GetFeedOutput struct {
	Body responses.FeedContentResponse
}

// GetFeed handles GET /feed
func (h *FeedHandler) GetFeed(ctx context.Context, input *GetFeedInput) (*GetFeedOutput, error) {
	input.ApplyDefaults()

	snap := h.loader.Snapshot()
	page := snap.Entries
	if input.Paginated() {
		page = feed.PaginateEntries(snap.Entries, input.Page, input.ItemsPerPage)
	}

	return &GetFeedOutput{
		Body: *mappers.ToFeedContentResponse(snap, page, input.Page, input.ItemsPerPage),
	}, nil
}

// ClearFeed handles DELETE /feed
func (h *FeedHandler) ClearFeed(ctx context.Context, input *struct{}) (*struct{}, error) {
	h.loader.Clear()
	return &struct{}{}, nil
}

func (h *FeedHandler) debug(msg string, fields map[string]interface{}) {
	if h.logger != nil {
		h.logger.Debug(msg, fields)
	}
}
