// Package viewer coordinates the toolbar of an embedded PDF renderer.
//
// A Coordinator owns the page, zoom and rotation of one open document and turns
// user intent (toolbar clicks, typed page numbers, keyboard shortcuts) into a
// Locator for the renderer. The renderer is opaque: it never reports a page
// count or whether a page rendered, so forward navigation is unbounded and a
// page past the end of the document is a valid state.
package viewer

import (
	"strings"
	"unicode"
)

// Coordinator holds the viewer state of one mounted document viewer. It is not
// safe for concurrent use; the owning shell serialises events.
type Coordinator struct {
	path    string
	title   string
	state   State
	mounted bool
}

// New returns an unbound coordinator. Operations are no-ops until Bind.
func New() *Coordinator {
	return &Coordinator{}
}

// Bind attaches the coordinator to a document. The state is reset only when
// path differs from the currently bound path, so re-rendering the same
// document keeps the reader's place. The title is always refreshed.
func (c *Coordinator) Bind(path, title string) {
	if !c.mounted || c.path != path {
		c.path = path
		c.state = InitialState()
		c.mounted = true
	}
	c.title = title
}

// Close unmounts the viewer and discards its state.
func (c *Coordinator) Close() {
	*c = Coordinator{}
}

// Bound reports whether a document is bound.
func (c *Coordinator) Bound() bool { return c.mounted }

// Path returns the bound document path.
func (c *Coordinator) Path() string { return c.path }

// Title returns the bound display title.
func (c *Coordinator) Title() string { return c.title }

// State returns a copy of the current viewer state.
func (c *Coordinator) State() State { return c.state }

// GoToPage moves to a page typed by the user. The input is parsed the way a
// page field reads it: a leading integer, trailing characters ignored. Input
// that has no leading integer, or that is below 1, leaves the state unchanged.
// There is no upper clamp.
func (c *Coordinator) GoToPage(requested string) {
	n, ok := parsePage(requested)
	if !ok {
		return
	}
	c.GoToPageNumber(n)
}

// GoToPageNumber sets the page exactly when n >= 1.
func (c *Coordinator) GoToPageNumber(n int) {
	if !c.mounted || n < FirstPage {
		return
	}
	c.state.Page = n
}

// PreviousPage steps back one page, stopping at page 1.
func (c *Coordinator) PreviousPage() { c.apply(State.previous) }

// NextPage steps forward one page.
func (c *Coordinator) NextPage() { c.apply(State.next) }

// ZoomIn raises the zoom by one step, up to MaxZoom.
func (c *Coordinator) ZoomIn() { c.apply(State.zoomIn) }

// ZoomOut lowers the zoom by one step, down to MinZoom.
func (c *Coordinator) ZoomOut() { c.apply(State.zoomOut) }

// Rotate turns the rendered surface a quarter turn clockwise.
func (c *Coordinator) Rotate() { c.apply(State.rotate) }

func (c *Coordinator) apply(fn func(State) State) {
	if !c.mounted {
		return
	}
	c.state = fn(c.state)
}

// CanGoBack reports whether PreviousPage would change the page.
func (c *Coordinator) CanGoBack() bool { return c.state.Page > FirstPage }

// CanZoomIn reports whether ZoomIn would change the zoom.
func (c *Coordinator) CanZoomIn() bool { return c.state.Zoom < MaxZoom }

// CanZoomOut reports whether ZoomOut would change the zoom.
func (c *Coordinator) CanZoomOut() bool { return c.state.Zoom > MinZoom }

// Target returns the locator the embedded renderer should display.
func (c *Coordinator) Target() Locator {
	return Locator{Path: c.path, Page: c.state.Page, Zoom: c.state.Zoom}
}

// Transform returns the CSS rotation for the rendered surface.
func (c *Coordinator) Transform() string {
	return Transform(c.state.Rotation)
}

// Download returns the request for saving the bound document unmodified.
func (c *Coordinator) Download() DownloadRequest {
	name := c.title
	if strings.TrimSpace(name) == "" {
		name = DefaultFilename
	}
	return DownloadRequest{Path: c.path, Filename: name}
}

// parsePage reads an optionally signed leading integer after leading
// whitespace.
func parsePage(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	n, digits := 0, 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		// Saturate instead of overflowing on absurdly long input.
		if n < (1<<31-1)/10 {
			n = n*10 + int(r-'0')
		} else {
			n = 1<<31 - 1
		}
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}
