// Package shell owns the per-session application state: which top-level view
// is showing, what each view has open, and the one mounted document viewer.
package shell

import (
	"sync"
	"time"

	"github.com/ziadkadry99/studydeck/internal/catalog"
	"github.com/ziadkadry99/studydeck/internal/events"
	"github.com/ziadkadry99/studydeck/internal/viewer"
)

// View names a top-level page.
type View string

const (
	ViewHome      View = "home"
	ViewModules   View = "modules"
	ViewResources View = "resources"
	ViewGlossary  View = "glossary"
	ViewQuiz      View = "quiz"
)

// Views lists the navigation entries in display order.
var Views = []View{ViewHome, ViewModules, ViewResources, ViewGlossary, ViewQuiz}

// ParseView maps a name to a View. Unknown names fall back to home.
func ParseView(name string) View {
	for _, v := range Views {
		if string(v) == name {
			return v
		}
	}
	return ViewHome
}

// Label is the navigation caption.
func (v View) Label() string {
	switch v {
	case ViewModules:
		return "Modules"
	case ViewResources:
		return "Resources"
	case ViewGlossary:
		return "Glossary"
	case ViewQuiz:
		return "Practice"
	default:
		return "Home"
	}
}

// Publisher receives events for the session's other listeners.
type Publisher interface {
	Publish(session string, ev events.Event)
	PublishAfter(session string, ev events.Event, delay time.Duration)
}

// Options configure a Shell.
type Options struct {
	// OpenDelay defers the open_module broadcast so listeners on the target
	// page have mounted before it arrives.
	OpenDelay time.Duration
	Publisher Publisher
}

// Shell is the state of one browser session. All methods are safe for
// concurrent use; events are applied one at a time in arrival order.
type Shell struct {
	mu sync.Mutex

	id      string
	catalog *catalog.Catalog
	opts    Options

	view           View
	moduleID       int
	moduleOpen     bool
	resourceID     string
	quizOpen       bool
	glossaryOpen   bool
	glossarySearch string

	viewer   *viewer.Coordinator
	pending  []Message
	lastSeen time.Time
}

// New creates a shell on the home view.
func New(id string, c *catalog.Catalog, opts Options) *Shell {
	return &Shell{
		id:       id,
		catalog:  c,
		opts:     opts,
		view:     ViewHome,
		viewer:   viewer.New(),
		lastSeen: time.Now(),
	}
}

// ID returns the session id.
func (s *Shell) ID() string { return s.id }

// Catalog returns the content registry the shell serves.
func (s *Shell) Catalog() *catalog.Catalog { return s.catalog }

// Navigate switches the top-level view. The previous page unmounts: its
// viewer and open selections are discarded. Selecting the view already showing
// leaves the page mounted. Messages queued for the new view are delivered once
// it has mounted; queued messages for any other view are dropped.
func (s *Shell) Navigate(v View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.navigate(v)
}

func (s *Shell) navigate(v View) {
	s.touch()
	if v != s.view {
		s.unmountPage()
		s.view = v
	}
	s.publish(events.Event{Type: events.TypeNavigate, View: string(v)})
	s.flush(true)
}

func (s *Shell) unmountPage() {
	s.moduleOpen = false
	s.moduleID = 0
	s.resourceID = ""
	s.quizOpen = false
	s.glossaryOpen = false
	s.glossarySearch = ""
	s.viewer.Close()
}

// Post queues msg for delivery once its target view is mounted. When that view
// is already showing the message is delivered immediately.
func (s *Shell) Post(msg Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.pending = append(s.pending, msg)
	s.flush(false)
}

// NavigateAndOpenModule is the home page's "Open Module" action: switch to the
// modules view, then deliver the open request to it.
func (s *Shell) NavigateAndOpenModule(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, OpenModule{ID: id})
	s.navigate(ViewModules)
}

// flush delivers the queued messages addressed to the mounted view. After a
// navigation the rest are dropped: the page they were meant for did not mount.
func (s *Shell) flush(dropOthers bool) {
	var keep []Message
	for _, msg := range s.pending {
		switch {
		case msg.target() == s.view:
			msg.deliver(s)
		case !dropOthers:
			keep = append(keep, msg)
		}
	}
	s.pending = keep
}

// OpenModule opens a module in the modules view. Unknown ids are ignored.
func (s *Shell) OpenModule(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if s.view != ViewModules {
		return false
	}
	return s.openModule(id)
}

func (s *Shell) openModule(id int) bool {
	m, ok := s.catalog.Module(id)
	if !ok {
		return false
	}
	s.moduleID = id
	s.moduleOpen = true
	s.viewer.Bind(m.Path, m.Title)
	s.publishViewer()
	return true
}

// CloseModule returns to the module list.
func (s *Shell) CloseModule() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.moduleOpen = false
	s.moduleID = 0
	s.viewer.Close()
}

// OpenResource opens a study resource in the resources view.
func (s *Shell) OpenResource(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if s.view != ViewResources {
		return false
	}
	r, ok := s.catalog.Resource(id)
	if !ok {
		return false
	}
	s.resourceID = id
	s.viewer.Bind(r.Path, r.Title)
	s.publishViewer()
	return true
}

// CloseResource returns to the resource list.
func (s *Shell) CloseResource() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.resourceID = ""
	s.viewer.Close()
}

// ToggleQuizViewer shows or hides the practice questions viewer.
func (s *Shell) ToggleQuizViewer() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if s.view != ViewQuiz {
		return false
	}
	s.quizOpen = !s.quizOpen
	if s.quizOpen {
		s.viewer.Bind(s.catalog.Practice.Path, s.catalog.Practice.Title)
		s.publishViewer()
	} else {
		s.viewer.Close()
	}
	return s.quizOpen
}

// ToggleGlossaryViewer shows or hides the full glossary document. The glossary
// is shown in a plain frame, not through the viewer toolbar.
func (s *Shell) ToggleGlossaryViewer() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if s.view != ViewGlossary {
		return false
	}
	s.glossaryOpen = !s.glossaryOpen
	return s.glossaryOpen
}

// SetGlossarySearch records the glossary search box contents.
func (s *Shell) SetGlossarySearch(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.glossarySearch = q
}

// WithViewer runs fn against the mounted viewer and broadcasts the new target.
// It returns false without calling fn when no viewer is mounted.
func (s *Shell) WithViewer(fn func(c *viewer.Coordinator)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if !s.viewer.Bound() {
		return false
	}
	fn(s.viewer)
	s.publishViewer()
	return true
}

// HandleKey routes a keydown to the mounted viewer. It reports whether the
// key was handled and the client must suppress its default action.
func (s *Shell) HandleKey(ev viewer.KeyEvent) bool {
	handled := false
	s.WithViewer(func(c *viewer.Coordinator) { handled = c.HandleKey(ev) })
	return handled
}

// Download returns the download request for the mounted viewer.
func (s *Shell) Download() (viewer.DownloadRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.viewer.Bound() {
		return viewer.DownloadRequest{}, false
	}
	return s.viewer.Download(), true
}

func (s *Shell) publishViewer() {
	s.publish(events.Event{
		Type:      events.TypeViewer,
		Target:    s.viewer.Target().String(),
		Transform: s.viewer.Transform(),
	})
}

func (s *Shell) publish(ev events.Event) {
	if s.opts.Publisher != nil {
		s.opts.Publisher.Publish(s.id, ev)
	}
}

func (s *Shell) touch() { s.lastSeen = time.Now() }

// LastSeen returns when the session last handled an event.
func (s *Shell) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}
