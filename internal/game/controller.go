package game

import "github.com/vovakirdan/tui-textgame/internal/story"

// Controller owns one session and the catalog it walks.
// All state changes go through Choose and Blink.
type Controller struct {
	levels  story.Catalog
	session Session
}

// NewController mounts a fresh session over the given catalog.
func NewController(levels story.Catalog) *Controller {
	return &Controller{
		levels:  levels,
		session: NewSession(),
	}
}

// Choose taps option c on the current level.
// Returns false if no level is active.
func (c *Controller) Choose(choice story.Choice) bool {
	next, ok := Advance(c.session, c.levels, choice)
	if ok {
		c.session = next
	}
	return ok
}

// Blink toggles cursor visibility and returns the new value.
func (c *Controller) Blink() bool {
	c.session = c.session.ToggleCursor()
	return c.session.CursorVisible
}

// Session returns a snapshot of the current session.
func (c *Controller) Session() Session {
	s := c.session
	s.Choices = append([]story.Choice(nil), c.session.Choices...)
	return s
}

// Levels returns the catalog the controller walks.
func (c *Controller) Levels() story.Catalog {
	return c.levels
}

// Status returns the session's current status.
func (c *Controller) Status() Status {
	return c.session.Status(c.levels.Len())
}

// Finished reports whether the ending has been reached.
func (c *Controller) Finished() bool {
	return c.Status() == StatusFinished
}

// View renders the current session.
func (c *Controller) View() View {
	return Render(c.session, c.levels)
}
