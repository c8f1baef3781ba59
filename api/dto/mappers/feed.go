// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"github.com/samber/lo"

	"feedreader/api/dto/responses"
	"feedreader/core/container"
	"feedreader/core/domain"
	"feedreader/core/menu"
	"feedreader/core/pipeline"
)

// Load statuses
const (
	StatusLoading    = "loading"
	StatusCommitted  = "committed"
	StatusSuperseded = "superseded"
)

// ToFeedListResponse converts the registry sources to a FeedListResponse DTO
func ToFeedListResponse(sources []domain.FeedSource) *responses.FeedListResponse {
	return &responses.FeedListResponse{
		Feeds: lo.Map(sources, func(s domain.FeedSource, i int) responses.FeedSourceResponse {
			return responses.FeedSourceResponse{Index: i, Name: s.Name, URL: s.URL}
		}),
		Total: len(sources),
	}
}

// ToEntryResponse converts a domain Entry to an EntryResponse DTO
func ToEntryResponse(e domain.Entry) responses.EntryResponse {
	resp := responses.EntryResponse{
		ID:      e.ID,
		Title:   e.Title,
		Link:    e.Link,
		Excerpt: e.Excerpt,
		Author:  e.Author,
	}
	if !e.Published.IsZero() {
		resp.Published = lo.ToPtr(e.Published)
	}
	return resp
}

// ToFeedContentResponse converts a container snapshot and the page of entries
// selected from it to a FeedContentResponse DTO
func ToFeedContentResponse(snap container.Snapshot, page []domain.Entry, pageNum, perPage int) *responses.FeedContentResponse {
	resp := &responses.FeedContentResponse{
		SourceIndex:  snap.SourceIndex,
		SourceName:   snap.SourceName,
		Generation:   snap.Generation,
		TotalEntries: len(snap.Entries),
		Page:         pageNum,
		PerPage:      perPage,
		Entries:      lo.Map(page, func(e domain.Entry, _ int) responses.EntryResponse { return ToEntryResponse(e) }),
		HTML:         snap.HTML,
	}
	if !snap.UpdatedAt.IsZero() {
		resp.UpdatedAt = lo.ToPtr(snap.UpdatedAt)
	}
	return resp
}

// ToLoadResponse converts a finished pipeline result to a LoadResponse DTO
func ToLoadResponse(res pipeline.Result) *responses.LoadResponse {
	status := StatusCommitted
	if res.Superseded {
		status = StatusSuperseded
	}
	return &responses.LoadResponse{
		Index:      res.Index,
		Name:       res.Source.Name,
		Status:     status,
		Entries:    res.Entries,
		Generation: res.Generation,
		DurationMS: res.Duration.Milliseconds(),
	}
}

// ToLoadingResponse describes a load that was started but not awaited
func ToLoadingResponse(index int, src domain.FeedSource) *responses.LoadResponse {
	return &responses.LoadResponse{
		Index:  index,
		Name:   src.Name,
		Status: StatusLoading,
	}
}

// ToMenuResponse converts the menu controller state to a MenuResponse DTO
func ToMenuResponse(state menu.State) *responses.MenuResponse {
	resp := &responses.MenuResponse{
		State:  string(state),
		Hidden: state == menu.Hidden,
	}
	if resp.Hidden {
		resp.BodyClass = menu.HiddenClass
	}
	return resp
}
