package viewer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	pathA = "/materials/Module 1 Notes.pdf"
	pathB = "/materials/Module 2 Notes.pdf"
)

func bound(t *testing.T) *Coordinator {
	t.Helper()
	c := New()
	c.Bind(pathA, "Module 1")
	require.Equal(t, InitialState(), c.State())
	return c
}

func TestGoToPageExact(t *testing.T) {
	for _, p := range []int{1, 2, 5, 99, 1000, 123456} {
		c := bound(t)
		c.GoToPageNumber(p)
		assert.Equal(t, p, c.State().Page)
	}
}

func TestGoToPageParsing(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"7", 7},
		{"  12", 12},
		{"+3", 3},
		{"42abc", 42},
		{"3.9", 3},
		{"", 4},
		{"abc", 4},
		{"0", 4},
		{"-2", 4},
		{"-", 4},
		{"  ", 4},
		{"x12", 4},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c := bound(t)
			c.GoToPageNumber(4)
			c.GoToPage(tt.input)
			assert.Equal(t, tt.want, c.State().Page)
		})
	}
}

func TestGoToPageHugeInputSaturates(t *testing.T) {
	c := bound(t)
	c.GoToPage("99999999999999999999999")
	assert.Greater(t, c.State().Page, 1)
}

func TestPreviousPageStopsAtOne(t *testing.T) {
	c := bound(t)
	c.PreviousPage()
	assert.Equal(t, 1, c.State().Page)
	assert.False(t, c.CanGoBack())

	c.GoToPageNumber(3)
	c.PreviousPage()
	assert.Equal(t, 2, c.State().Page)
	assert.True(t, c.CanGoBack())
}

func TestNextPageUnbounded(t *testing.T) {
	c := bound(t)
	for i := 0; i < 500; i++ {
		c.NextPage()
	}
	assert.Equal(t, 501, c.State().Page)
}

func TestZoomClamps(t *testing.T) {
	c := bound(t)
	for i := 0; i < 10; i++ {
		c.ZoomIn()
		assert.LessOrEqual(t, c.State().Zoom, MaxZoom)
	}
	assert.Equal(t, MaxZoom, c.State().Zoom)
	assert.False(t, c.CanZoomIn())

	c = bound(t)
	for i := 0; i < 10; i++ {
		c.ZoomOut()
		assert.GreaterOrEqual(t, c.State().Zoom, MinZoom)
	}
	assert.Equal(t, MinZoom, c.State().Zoom)
	assert.False(t, c.CanZoomOut())
}

func TestZoomSteps(t *testing.T) {
	c := bound(t)
	c.ZoomIn()
	assert.Equal(t, 125, c.State().Zoom)
	c.ZoomOut()
	c.ZoomOut()
	assert.Equal(t, 75, c.State().Zoom)
}

func TestRotateCycles(t *testing.T) {
	c := bound(t)
	seen := []int{}
	for i := 0; i < 4; i++ {
		c.Rotate()
		seen = append(seen, c.State().Rotation)
	}
	assert.Equal(t, []int{90, 180, 270, 0}, seen)
}

func TestBindSamePathKeepsState(t *testing.T) {
	c := bound(t)
	c.GoToPageNumber(5)
	c.ZoomIn()
	c.Bind(pathA, "Module 1")
	assert.Equal(t, State{Page: 5, Zoom: 125, Rotation: 0}, c.State())

	c.Bind(pathA, "Module 1 (renamed)")
	assert.Equal(t, 5, c.State().Page)
	assert.Equal(t, "Module 1 (renamed)", c.Title())
}

func TestBindDifferentPathResets(t *testing.T) {
	c := bound(t)
	c.GoToPageNumber(5)
	c.Rotate()
	c.Bind(pathB, "Module 2")
	assert.Equal(t, InitialState(), c.State())
	assert.Equal(t, pathB, c.Path())
}

func TestScenario(t *testing.T) {
	c := bound(t)
	c.NextPage()
	c.NextPage()
	c.NextPage()
	c.ZoomIn()
	c.ZoomIn()
	c.Rotate()
	assert.Equal(t, State{Page: 4, Zoom: 150, Rotation: 90}, c.State())
	assert.Equal(t, "rotate(90deg)", c.Transform())
}

func TestTargetLocator(t *testing.T) {
	c := bound(t)
	c.GoToPageNumber(12)
	c.ZoomOut()
	c.Rotate()
	loc := c.Target()
	assert.Equal(t, "/materials/Module 1 Notes.pdf#page=12&zoom=75", loc.String())

	text, err := loc.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, loc.String(), string(text))
}

func TestDownloadIgnoresViewState(t *testing.T) {
	c := bound(t)
	c.GoToPageNumber(9)
	c.ZoomIn()
	c.Rotate()
	before := c.State()

	req := c.Download()
	assert.Equal(t, DownloadRequest{Path: pathA, Filename: "Module 1"}, req)
	assert.Equal(t, before, c.State())
	assert.Contains(t, req.ContentDisposition(), "attachment")

	c.Bind(pathA, "")
	assert.Equal(t, DefaultFilename, c.Download().Filename)
}

func TestUnboundIsInert(t *testing.T) {
	c := New()
	c.NextPage()
	c.ZoomIn()
	c.Rotate()
	c.GoToPage("8")
	assert.False(t, c.Bound())
	assert.Equal(t, State{}, c.State())
	assert.False(t, c.HandleKey(KeyEvent{Key: "ArrowRight"}))
}

func TestCloseDiscardsState(t *testing.T) {
	c := bound(t)
	c.GoToPageNumber(6)
	c.Close()
	assert.False(t, c.Bound())

	c.Bind(pathA, "Module 1")
	assert.Equal(t, InitialState(), c.State())
}

func TestHandleKey(t *testing.T) {
	tests := []struct {
		key     string
		handled bool
		want    State
	}{
		{"ArrowRight", true, State{Page: 3, Zoom: 100}},
		{"ArrowDown", true, State{Page: 3, Zoom: 100}},
		{"ArrowLeft", true, State{Page: 1, Zoom: 100}},
		{"ArrowUp", true, State{Page: 1, Zoom: 100}},
		{"+", true, State{Page: 2, Zoom: 125}},
		{"=", true, State{Page: 2, Zoom: 125}},
		{"-", true, State{Page: 2, Zoom: 75}},
		{"PageDown", false, State{Page: 2, Zoom: 100}},
		{"a", false, State{Page: 2, Zoom: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			c := bound(t)
			c.GoToPageNumber(2)
			assert.Equal(t, tt.handled, c.HandleKey(KeyEvent{Key: tt.key}))
			assert.Equal(t, tt.want, c.State())
		})
	}
}

func TestHandleKeySuspendedWhileTyping(t *testing.T) {
	c := bound(t)
	assert.False(t, c.HandleKey(KeyEvent{Key: "ArrowRight", InputFocused: true}))
	assert.Equal(t, 1, c.State().Page)
}

func TestShortcutKeysAreHandled(t *testing.T) {
	c := bound(t)
	for _, k := range ShortcutKeys() {
		assert.True(t, c.HandleKey(KeyEvent{Key: k}), k)
	}
}
