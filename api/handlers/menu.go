// ABOUTME: Menu handlers for the Huma API
// ABOUTME: Exposes the navigation menu visibility toggle

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"feedreader/api/dto/mappers"
	"feedreader/api/dto/responses"
	"feedreader/core/menu"
)

// MenuToggler is the menu controller as seen by the handlers
type MenuToggler interface {
	Toggle() menu.State
	State() menu.State
}

// MenuHandler handles menu-related HTTP requests
type MenuHandler struct {
	menu MenuToggler
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(m MenuToggler) *MenuHandler {
	return &MenuHandler{menu: m}
}

// RegisterRoutes registers the menu routes
func (h *MenuHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getMenu",
		Method:      http.MethodGet,
		Path:        "/menu",
		Summary:     "Get menu visibility",
		Tags:        []string{"Menu"},
	}, h.GetMenu)

	huma.Register(api, huma.Operation{
		OperationID: "toggleMenu",
		Method:      http.MethodPost,
		Path:        "/menu/toggle",
		Summary:     "Toggle menu visibility",
		Description: "Flips the menu between hidden and shown and returns the new state",
		Tags:        []string{"Menu"},
	}, h.ToggleMenu)
}

// MenuOutput is the output of both menu operations
type MenuOutput struct {
	Body responses.MenuResponse
}

// GetMenu handles GET /menu
func (h *MenuHandler) GetMenu(ctx context.Context, input *struct{}) (*MenuOutput, error) {
	return &MenuOutput{Body: *mappers.ToMenuResponse(h.menu.State())}, nil
}

// ToggleMenu handles POST /menu/toggle
func (h *MenuHandler) ToggleMenu(ctx context.Context, input *struct{}) (*MenuOutput, error) {
	return &MenuOutput{Body: *mappers.ToMenuResponse(h.menu.Toggle())}, nil
}
