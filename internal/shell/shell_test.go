package shell

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/studydeck/internal/catalog"
	"github.com/ziadkadry99/studydeck/internal/events"
	"github.com/ziadkadry99/studydeck/internal/viewer"
)

type recorder struct {
	mu     sync.Mutex
	events []events.Event
	delays []time.Duration
}

func (r *recorder) Publish(_ string, ev events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	r.delays = append(r.delays, 0)
}

func (r *recorder) PublishAfter(_ string, ev events.Event, d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	r.delays = append(r.delays, d)
}

func (r *recorder) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, ev := range r.events {
		out = append(out, ev.Type)
	}
	return out
}

func newShell(t *testing.T) (*Shell, *recorder) {
	t.Helper()
	rec := &recorder{}
	return New("sess", catalog.Default(), Options{OpenDelay: 100 * time.Millisecond, Publisher: rec}), rec
}

func TestParseView(t *testing.T) {
	assert.Equal(t, ViewQuiz, ParseView("quiz"))
	assert.Equal(t, ViewHome, ParseView("nonsense"))
	assert.Equal(t, ViewHome, ParseView(""))
	assert.Equal(t, "Practice", ViewQuiz.Label())
}

func TestStartsOnHome(t *testing.T) {
	s, _ := newShell(t)
	snap := s.Snapshot()
	assert.Equal(t, ViewHome, snap.View)
	assert.Nil(t, snap.Viewer)
	assert.Nil(t, snap.ModuleID)
}

func TestNavigateAndOpenModule(t *testing.T) {
	s, rec := newShell(t)

	s.NavigateAndOpenModule(3)

	snap := s.Snapshot()
	assert.Equal(t, ViewModules, snap.View)
	require.NotNil(t, snap.ModuleID)
	assert.Equal(t, 3, *snap.ModuleID)
	require.NotNil(t, snap.Viewer)
	assert.Equal(t, "/materials/Module 3 Notes.pdf#page=1&zoom=100", snap.Viewer.Target.String())

	// The page mounts before the open request is handled.
	assert.Equal(t, []string{events.TypeNavigate, events.TypeViewer, events.TypeOpenModule}, rec.types())
	assert.Equal(t, 100*time.Millisecond, rec.delays[2])
}

func TestPostWaitsForTargetView(t *testing.T) {
	s, _ := newShell(t)

	s.Post(OpenModule{ID: 2})
	assert.Nil(t, s.Snapshot().ModuleID, "home page cannot handle open_module")

	s.Navigate(ViewModules)
	snap := s.Snapshot()
	require.NotNil(t, snap.ModuleID)
	assert.Equal(t, 2, *snap.ModuleID)
}

func TestPostDroppedWhenOtherViewMounts(t *testing.T) {
	s, _ := newShell(t)

	s.Post(OpenModule{ID: 2})
	s.Navigate(ViewResources)
	s.Navigate(ViewModules)
	assert.Nil(t, s.Snapshot().ModuleID)
}

func TestPostUnknownModuleIgnored(t *testing.T) {
	s, rec := newShell(t)
	s.Navigate(ViewModules)
	s.Post(OpenModule{ID: 99})
	assert.Nil(t, s.Snapshot().ModuleID)
	assert.NotContains(t, rec.types(), events.TypeOpenModule)
}

func TestNavigateUnmountsViewer(t *testing.T) {
	s, _ := newShell(t)
	s.Navigate(ViewModules)
	require.True(t, s.OpenModule(1))
	s.WithViewer(func(c *viewer.Coordinator) { c.GoToPageNumber(7) })

	s.Navigate(ViewHome)
	snap := s.Snapshot()
	assert.Nil(t, snap.Viewer)
	assert.Nil(t, snap.ModuleID)

	s.Navigate(ViewModules)
	require.True(t, s.OpenModule(1))
	assert.Equal(t, viewer.InitialState(), s.Snapshot().Viewer.State)
}

func TestNavigateToActiveViewKeepsPage(t *testing.T) {
	s, _ := newShell(t)
	s.Navigate(ViewModules)
	require.True(t, s.OpenModule(2))
	s.WithViewer(func(c *viewer.Coordinator) {
		c.GoToPageNumber(9)
		c.ZoomIn()
		c.Rotate()
	})

	s.Navigate(ViewModules)

	snap := s.Snapshot()
	require.NotNil(t, snap.ModuleID)
	assert.Equal(t, 2, *snap.ModuleID)
	require.NotNil(t, snap.Viewer)
	assert.Equal(t, viewer.State{Page: 9, Zoom: 125, Rotation: 90}, snap.Viewer.State)
}

func TestNavigateToActiveViewDeliversQueued(t *testing.T) {
	s, _ := newShell(t)
	s.Navigate(ViewModules)
	s.OpenModule(1)

	s.NavigateAndOpenModule(4)
	snap := s.Snapshot()
	require.NotNil(t, snap.ModuleID)
	assert.Equal(t, 4, *snap.ModuleID)
	assert.Equal(t, viewer.InitialState(), snap.Viewer.State)
}

func TestReopenSameModuleKeepsPlace(t *testing.T) {
	s, _ := newShell(t)
	s.Navigate(ViewModules)
	s.OpenModule(1)
	s.WithViewer(func(c *viewer.Coordinator) { c.GoToPageNumber(5) })

	s.OpenModule(1)
	assert.Equal(t, 5, s.Snapshot().Viewer.State.Page)

	s.OpenModule(2)
	assert.Equal(t, viewer.InitialState(), s.Snapshot().Viewer.State)
}

func TestCloseModuleDestroysViewerState(t *testing.T) {
	s, _ := newShell(t)
	s.Navigate(ViewModules)
	s.OpenModule(1)
	s.WithViewer(func(c *viewer.Coordinator) { c.NextPage() })

	s.CloseModule()
	assert.Nil(t, s.Snapshot().Viewer)
	assert.False(t, s.WithViewer(func(*viewer.Coordinator) { t.Fatal("viewer should be unmounted") }))

	s.OpenModule(1)
	assert.Equal(t, 1, s.Snapshot().Viewer.State.Page)
}

func TestOpenModuleRequiresModulesView(t *testing.T) {
	s, _ := newShell(t)
	assert.False(t, s.OpenModule(1))
	s.Navigate(ViewModules)
	assert.False(t, s.OpenModule(42))
	assert.True(t, s.OpenModule(0))
}

func TestResources(t *testing.T) {
	s, _ := newShell(t)
	assert.False(t, s.OpenResource("pmbok"))

	s.Navigate(ViewResources)
	assert.False(t, s.OpenResource("missing"))
	require.True(t, s.OpenResource("pmbok"))

	snap := s.Snapshot()
	assert.Equal(t, "pmbok", snap.ResourceID)
	assert.Equal(t, "PMBOK 7th Edition", snap.Viewer.Title)

	s.CloseResource()
	snap = s.Snapshot()
	assert.Empty(t, snap.ResourceID)
	assert.Nil(t, snap.Viewer)
}

func TestQuizViewerToggle(t *testing.T) {
	s, _ := newShell(t)
	s.Navigate(ViewQuiz)

	assert.True(t, s.ToggleQuizViewer())
	snap := s.Snapshot()
	require.NotNil(t, snap.Viewer)
	assert.Equal(t, "PMP Practice Questions", snap.Viewer.Title)

	assert.False(t, s.ToggleQuizViewer())
	assert.Nil(t, s.Snapshot().Viewer)
}

func TestGlossary(t *testing.T) {
	s, _ := newShell(t)
	assert.False(t, s.ToggleGlossaryViewer())

	s.Navigate(ViewGlossary)
	s.SetGlossarySearch("path")
	assert.True(t, s.ToggleGlossaryViewer())

	snap := s.Snapshot()
	assert.True(t, snap.GlossaryOpen)
	assert.Equal(t, "path", snap.GlossarySearch)
	assert.Nil(t, snap.Viewer, "the glossary uses a plain frame")

	s.Navigate(ViewHome)
	s.Navigate(ViewGlossary)
	snap = s.Snapshot()
	assert.False(t, snap.GlossaryOpen)
	assert.Empty(t, snap.GlossarySearch)
}

func TestHandleKeyAndDownload(t *testing.T) {
	s, _ := newShell(t)
	assert.False(t, s.HandleKey(viewer.KeyEvent{Key: "ArrowRight"}))
	_, ok := s.Download()
	assert.False(t, ok)

	s.Navigate(ViewModules)
	s.OpenModule(4)
	assert.True(t, s.HandleKey(viewer.KeyEvent{Key: "ArrowRight"}))
	assert.False(t, s.HandleKey(viewer.KeyEvent{Key: "ArrowRight", InputFocused: true}))
	assert.Equal(t, 2, s.Snapshot().Viewer.State.Page)

	req, ok := s.Download()
	require.True(t, ok)
	assert.Equal(t, "Module 4: Project Scope and Schedule Management", req.Filename)
}

func TestEventsAppliedInOrder(t *testing.T) {
	s, _ := newShell(t)
	s.Navigate(ViewModules)
	s.OpenModule(1)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.WithViewer(func(c *viewer.Coordinator) { c.NextPage() })
		}()
	}
	wg.Wait()
	assert.Equal(t, 51, s.Snapshot().Viewer.State.Page)
}

func TestSessions(t *testing.T) {
	ss := NewSessions(catalog.Default(), Options{})
	a := ss.Get("a")
	assert.Same(t, a, ss.Get("a"))
	assert.NotSame(t, a, ss.Get("b"))
	assert.Equal(t, 2, ss.Len())

	assert.Equal(t, 0, ss.Sweep(time.Hour))
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, 2, ss.Sweep(time.Millisecond))
	assert.Equal(t, 0, ss.Len())
}
