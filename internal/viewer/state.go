package viewer

// Zoom and rotation limits of the toolbar.
const (
	FirstPage   = 1
	DefaultZoom = 100
	MinZoom     = 50
	MaxZoom     = 200
	ZoomStep    = 25

	RotationStep = 90
)

// State is the page/zoom/rotation triple describing how one open document is
// presented.
type State struct {
	Page     int `json:"page"`
	Zoom     int `json:"zoom"`
	Rotation int `json:"rotation"`
}

// InitialState is the state of a freshly opened document.
func InitialState() State {
	return State{Page: FirstPage, Zoom: DefaultZoom, Rotation: 0}
}

func (s State) previous() State {
	if s.Page > FirstPage {
		s.Page--
	}
	return s
}

// next has no upper bound: the embedded renderer never reports a page count.
func (s State) next() State {
	s.Page++
	return s
}

func (s State) zoomIn() State {
	s.Zoom = min(MaxZoom, s.Zoom+ZoomStep)
	return s
}

func (s State) zoomOut() State {
	s.Zoom = max(MinZoom, s.Zoom-ZoomStep)
	return s
}

func (s State) rotate() State {
	s.Rotation = (s.Rotation + RotationStep) % 360
	return s
}
