// Package menu holds the two-state visibility toggle of the navigation panel.
package menu

import "sync"

// State is the visibility of the menu
type State string

const (
	Hidden State = "hidden"
	Shown  State = "shown"
)

// HiddenClass is the marker carried by the top-level container while the menu is hidden
const HiddenClass = "menu-hidden"

// Controller toggles the menu. The zero value is not usable; call New.
type Controller struct {
	mu    sync.Mutex
	state State
}

// New returns a controller in the Hidden state
func New() *Controller {
	return &Controller{state: Hidden}
}

// Toggle flips the state and returns the new one
func (c *Controller) Toggle() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Hidden {
		c.state = Shown
	} else {
		c.state = Hidden
	}
	return c.state
}

// State returns the current state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Hidden reports whether the menu is hidden
func (c *Controller) Hidden() bool {
	return c.State() == Hidden
}

// BodyClass returns the class the top-level container carries for the current state
func (c *Controller) BodyClass() string {
	if c.Hidden() {
		return HiddenClass
	}
	return ""
}
