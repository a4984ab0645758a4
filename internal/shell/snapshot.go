package shell

import "github.com/ziadkadry99/studydeck/internal/viewer"

// ViewerSnapshot is the render-time copy of the mounted viewer.
type ViewerSnapshot struct {
	Path       string         `json:"path"`
	Title      string         `json:"title"`
	State      viewer.State   `json:"state"`
	Target     viewer.Locator `json:"target"`
	Transform  string         `json:"transform"`
	CanGoBack  bool           `json:"can_go_back"`
	CanZoomIn  bool           `json:"can_zoom_in"`
	CanZoomOut bool           `json:"can_zoom_out"`
}

// Snapshot is a consistent copy of the shell state for rendering.
type Snapshot struct {
	View           View            `json:"view"`
	ModuleID       *int            `json:"module_id,omitempty"`
	ResourceID     string          `json:"resource_id,omitempty"`
	QuizOpen       bool            `json:"quiz_open"`
	GlossaryOpen   bool            `json:"glossary_open"`
	GlossarySearch string          `json:"glossary_search,omitempty"`
	Viewer         *ViewerSnapshot `json:"viewer,omitempty"`
}

// Snapshot copies the current state.
func (s *Shell) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		View:           s.view,
		ResourceID:     s.resourceID,
		QuizOpen:       s.quizOpen,
		GlossaryOpen:   s.glossaryOpen,
		GlossarySearch: s.glossarySearch,
	}
	if s.moduleOpen {
		id := s.moduleID
		snap.ModuleID = &id
	}
	if s.viewer.Bound() {
		snap.Viewer = snapshotViewer(s.viewer)
	}
	return snap
}

func snapshotViewer(c *viewer.Coordinator) *ViewerSnapshot {
	return &ViewerSnapshot{
		Path:       c.Path(),
		Title:      c.Title(),
		State:      c.State(),
		Target:     c.Target(),
		Transform:  c.Transform(),
		CanGoBack:  c.CanGoBack(),
		CanZoomIn:  c.CanZoomIn(),
		CanZoomOut: c.CanZoomOut(),
	}
}
