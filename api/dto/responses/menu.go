package responses

// MenuResponse is the visibility of the navigation menu
type MenuResponse struct {
	State     string `json:"state" enum:"hidden,shown" doc:"Menu visibility"`
	Hidden    bool   `json:"hidden" doc:"True while the menu is hidden"`
	BodyClass string `json:"body_class" doc:"Class carried by the top-level container"`
}
