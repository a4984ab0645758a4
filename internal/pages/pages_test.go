package pages

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/studydeck/internal/catalog"
	"github.com/ziadkadry99/studydeck/internal/completion"
	"github.com/ziadkadry99/studydeck/internal/shell"
	"github.com/ziadkadry99/studydeck/internal/viewer"
)

func render(t *testing.T, sh *shell.Shell, done completion.Set) string {
	t.Helper()
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, Input{Catalog: sh.Catalog(), Snapshot: sh.Snapshot(), Completed: done}))
	return buf.String()
}

func newShell() *shell.Shell {
	return shell.New("test", catalog.Default(), shell.Options{})
}

func TestComputeProgress(t *testing.T) {
	c := catalog.Default()

	assert.Equal(t, Progress{Completed: 0, Total: 7, Percent: 0}, ComputeProgress(c, completion.NewSet()))
	assert.Equal(t, Progress{Completed: 1, Total: 7, Percent: 14}, ComputeProgress(c, completion.NewSet(3)))
	assert.Equal(t, Progress{Completed: 2, Total: 7, Percent: 29}, ComputeProgress(c, completion.NewSet(0, 6)))

	// Ids that are not modules do not count.
	assert.Equal(t, 1, ComputeProgress(c, completion.NewSet(2, 99)).Completed)

	all := completion.NewSet(c.ModuleIDs()...)
	assert.Equal(t, 100, ComputeProgress(c, all).Percent)

	assert.Equal(t, 0, ComputeProgress(&catalog.Catalog{}, completion.NewSet(1)).Percent)
}

func TestRenderHome(t *testing.T) {
	out := render(t, newShell(), completion.NewSet(1, 2))

	assert.Contains(t, out, "29% complete")
	assert.Contains(t, out, "2 of 7 modules")
	assert.Contains(t, out, `action="/home/modules/4/open"`)
	assert.Contains(t, out, `aria-current="page">Home<`)
	assert.Contains(t, out, "Module 6: Project Risk and Communication Management")
	assert.NotContains(t, out, `id="viewer-frame"`)
}

func TestRenderModuleViewer(t *testing.T) {
	sh := newShell()
	sh.Navigate(shell.ViewModules)
	require.True(t, sh.OpenModule(3))
	sh.WithViewer(func(c *viewer.Coordinator) {
		c.NextPage()
		c.ZoomOut()
		c.ZoomOut()
		c.Rotate()
	})

	out := render(t, sh, completion.NewSet(3))

	assert.Contains(t, out, "Module 3: Project Integration Management")
	assert.Contains(t, out, ">Completed<")
	assert.Contains(t, out, "page=2&amp;zoom=50")
	assert.Contains(t, out, "transform: rotate(90deg)")
	assert.Contains(t, out, `name="page" min="1" value="2"`)
	assert.Contains(t, out, "50%")

	// Zoom out is disabled at the minimum, previous is enabled past page 1.
	assert.Contains(t, out, `disabled aria-label="Zoom out"`)
	assert.NotContains(t, out, `disabled aria-label="Previous page"`)
	assert.NotContains(t, out, `disabled aria-label="Zoom in"`)
}

func TestRenderModuleListBadges(t *testing.T) {
	sh := newShell()
	sh.Navigate(shell.ViewModules)

	out := render(t, sh, completion.NewSet(0))
	assert.Contains(t, out, `action="/modules/5/open"`)
	assert.Contains(t, out, `<span class="badge">Completed</span>`)
	assert.NotContains(t, out, "Mark Complete")
}

func TestRenderResourcesGrouped(t *testing.T) {
	sh := newShell()
	sh.Navigate(shell.ViewResources)

	out := render(t, sh, completion.NewSet())
	assert.Contains(t, out, "<h2>Reference</h2>")
	assert.Contains(t, out, "<h2>Case Study</h2>")
	assert.Contains(t, out, "<h2>Practice</h2>")
	assert.Contains(t, out, `action="/resources/pmbok/open"`)
}

func TestRenderGlossarySearch(t *testing.T) {
	sh := newShell()
	sh.Navigate(shell.ViewGlossary)
	sh.SetGlossarySearch("baseline")

	out := render(t, sh, completion.NewSet())
	assert.Contains(t, out, "<dt>Baseline</dt>")
	assert.Contains(t, out, "<strong>formal change control</strong>")
	assert.NotContains(t, out, "Critical Path")

	sh.SetGlossarySearch("nothing like this")
	out = render(t, sh, completion.NewSet())
	assert.Contains(t, out, "No terms match your search.")
}

func TestRenderGlossaryFrame(t *testing.T) {
	sh := newShell()
	sh.Navigate(shell.ViewGlossary)
	sh.ToggleGlossaryViewer()

	out := render(t, sh, completion.NewSet())
	assert.Contains(t, out, "Hide Full Glossary")
	assert.Contains(t, out, `title="PMP Glossary"`)
	assert.NotContains(t, out, `id="viewer-frame"`)
}

func TestRenderQuiz(t *testing.T) {
	sh := newShell()
	sh.Navigate(shell.ViewQuiz)

	out := render(t, sh, completion.NewSet())
	assert.Contains(t, out, "Open PMP Practice Questions")
	assert.NotContains(t, out, `id="viewer-frame"`)

	sh.ToggleQuizViewer()
	out = render(t, sh, completion.NewSet())
	assert.Contains(t, out, `id="viewer-frame"`)
	assert.Contains(t, out, `disabled aria-label="Previous page"`)
	assert.Contains(t, out, "page=1&amp;zoom=100")
}

func TestMarkdownEscapesRawHTML(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	got, err := r.markdown("a <script>alert(1)</script> **b**")
	require.NoError(t, err)
	assert.NotContains(t, string(got), "<script>")
	assert.Contains(t, string(got), "<strong>b</strong>")
}

func TestRenderMarksMountedView(t *testing.T) {
	sh := newShell()
	out := render(t, sh, completion.NewSet())
	assert.Contains(t, out, `<body data-view="home">`)

	sh.NavigateAndOpenModule(5)
	out = render(t, sh, completion.NewSet())
	assert.Contains(t, out, `<body data-view="modules" data-module="5">`)

	// Other tabs compare broadcasts against these attributes and reload.
	assert.Contains(t, out, "ev.type === 'navigate' && ev.view !== page.view")
	assert.Contains(t, out, "ev.type === 'open_module' && String(ev.module_id) !== page.module")
}

func TestKeyScriptClaimsShortcutsBeforePosting(t *testing.T) {
	sh := newShell()
	sh.NavigateAndOpenModule(1)
	out := render(t, sh, completion.NewSet())

	claim := strings.Index(out, "e.preventDefault();")
	post := strings.Index(out, "fetch('/viewer/key'")
	require.NotEqual(t, -1, claim)
	require.NotEqual(t, -1, post)
	assert.Less(t, claim, post, "default action must be cancelled synchronously")
	assert.Contains(t, out, "if (res.handled) location.reload();")
}
