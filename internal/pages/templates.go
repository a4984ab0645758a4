package pages

// pageTemplate is the html/template for the single-page shell.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <style>` + cssContent + `</style>
</head>
<body data-view="{{.View}}"{{with .Module}} data-module="{{.ID}}"{{end}}>
  <nav class="navbar">
    <span class="brand">{{.Title}}</span>
    {{range .Nav}}<form method="post" action="/nav/{{.View}}" class="nav-item">
      <button type="submit"{{if .Active}} class="active" aria-current="page"{{end}}>{{.Label}}</button>
    </form>{{end}}
  </nav>
  <main class="content">
  {{if eq .View "modules"}}{{template "modules" .}}
  {{else if eq .View "resources"}}{{template "resources" .}}
  {{else if eq .View "glossary"}}{{template "glossary" .}}
  {{else if eq .View "quiz"}}{{template "quiz" .}}
  {{else}}{{template "home" .}}{{end}}
  </main>
  <script>` + keyScript + `</script>
  <script>var shortcutKeys = {{.Keys}};</script>
</body>
</html>

{{define "home"}}
<section class="hero">
  <h1>Welcome to {{.Title}}</h1>
  <div class="progress" data-percent="{{.Progress.Percent}}">
    <div class="progress-bar" style="width: {{.Progress.Percent}}%"></div>
  </div>
  <p class="progress-label">{{.Progress.Percent}}% complete &middot; {{.Progress.Completed}} of {{.Progress.Total}} modules</p>
</section>
<section class="quick-access">
  <form method="post" action="/nav/modules"><button class="card">Modules</button></form>
  <form method="post" action="/nav/resources"><button class="card">Resources</button></form>
  <form method="post" action="/nav/quiz"><button class="card">Practice</button></form>
  <form method="post" action="/nav/glossary"><button class="card">Glossary</button></form>
</section>
<section class="overview">
  <h2>Module Overview</h2>
  {{range .Modules}}<div class="card module-card{{if .Completed}} completed{{end}}">
    <h3>{{.Title}}{{if .Completed}} <span class="badge">&#10003;</span>{{end}}</h3>
    {{if .Description}}<div class="description">{{markdown .Description}}</div>{{end}}
    <form method="post" action="/home/modules/{{.ID}}/open"><button type="submit">Open Module</button></form>
  </div>{{end}}
</section>
{{end}}

{{define "modules"}}
{{if .Module}}
<div class="detail-header">
  <form method="post" action="/modules/close"><button type="submit">&larr; Back to Modules</button></form>
  <h1>{{.Module.Title}}</h1>
  <form method="post" action="/modules/{{.Module.ID}}/toggle">
    <button type="submit" class="toggle{{if .Module.Completed}} completed{{end}}">{{if .Module.Completed}}Completed{{else}}Mark Complete{{end}}</button>
  </form>
</div>
{{template "viewer" .Viewer}}
{{else}}
<h1>Training Modules</h1>
<div class="grid">
  {{range .Modules}}<div class="card module-card{{if .Completed}} completed{{end}}">
    <h3>{{.Title}}</h3>
    {{if .Completed}}<span class="badge">Completed</span>{{end}}
    {{if .Description}}<div class="description">{{markdown .Description}}</div>{{end}}
    <form method="post" action="/modules/{{.ID}}/open"><button type="submit">Open</button></form>
  </div>{{end}}
</div>
{{end}}
{{end}}

{{define "resources"}}
{{if .Resource}}
<div class="detail-header">
  <form method="post" action="/resources/close"><button type="submit">&larr; Back to Resources</button></form>
  <h1>{{.Resource.Title}}</h1>
</div>
{{template "viewer" .Viewer}}
{{else}}
<h1>Study Resources</h1>
{{range .Groups}}{{if .Records}}<section class="group">
  <h2>{{.Category.Label}}</h2>
  <div class="grid">
    {{range .Records}}<div class="card resource-card">
      <span class="badge">{{.Category.Label}}</span>
      <h3>{{.Title}}</h3>
      <form method="post" action="/resources/{{.ID}}/open"><button type="submit">Open</button></form>
    </div>{{end}}
  </div>
</section>{{end}}{{end}}
{{end}}
{{end}}

{{define "glossary"}}
<h1>Glossary</h1>
<form method="post" action="/glossary/search" class="search">
  <input type="search" name="q" value="{{.Snapshot.GlossarySearch}}" placeholder="Search terms...">
  <button type="submit">Search</button>
</form>
<form method="post" action="/glossary/viewer">
  <button type="submit">{{if .Snapshot.GlossaryOpen}}Hide Full Glossary{{else}}View Full Glossary{{end}}</button>
</form>
{{if .Snapshot.GlossaryOpen}}<iframe class="frame" src="{{.Glossary.Path}}" title="{{.Glossary.Title}}"></iframe>{{end}}
<dl class="terms">
  {{range .Terms}}<dt>{{.Term}}</dt><dd>{{markdown .Definition}}</dd>
  {{else}}<p class="empty">No terms match your search.</p>{{end}}
</dl>
{{end}}

{{define "quiz"}}
<h1>Practice Questions</h1>
<form method="post" action="/quiz/viewer">
  <button type="submit">{{if .Snapshot.QuizOpen}}Hide Questions{{else}}Open {{.Practice.Title}}{{end}}</button>
</form>
{{if .Snapshot.QuizOpen}}{{template "viewer" .Viewer}}{{end}}
{{end}}

{{define "viewer"}}{{if .}}
<div class="viewer" data-path="{{.Path}}">
  <div class="toolbar">
    <form method="post" action="/viewer/prev"><button type="submit"{{if not .CanGoBack}} disabled{{end}} aria-label="Previous page">&lsaquo;</button></form>
    <form method="post" action="/viewer/page" class="page-form">
      <input type="number" name="page" min="1" value="{{.State.Page}}" aria-label="Page">
    </form>
    <form method="post" action="/viewer/next"><button type="submit" aria-label="Next page">&rsaquo;</button></form>
    <form method="post" action="/viewer/zoom-out"><button type="submit"{{if not .CanZoomOut}} disabled{{end}} aria-label="Zoom out">&minus;</button></form>
    <span class="zoom">{{.State.Zoom}}%</span>
    <form method="post" action="/viewer/zoom-in"><button type="submit"{{if not .CanZoomIn}} disabled{{end}} aria-label="Zoom in">+</button></form>
    <form method="post" action="/viewer/rotate"><button type="submit" aria-label="Rotate">&#8635;</button></form>
    <a class="button" href="/viewer/download">Download</a>
  </div>
  <div class="frame-wrapper" id="viewer-wrapper" style="transform: {{css .Transform}}">
    <iframe class="frame" id="viewer-frame" src="{{.Target}}" title="{{.Title}}"></iframe>
  </div>
</div>
{{end}}{{end}}
`

// keyScript forwards shortcut keys to the server and follows the session's
// event stream. Shortcut keys are claimed with preventDefault before the
// request is sent and the page reloads when the server reports them handled;
// keys are ignored while an input has focus. Tabs whose rendered view or
// module no longer matches a navigate or open_module event reload.
const keyScript = `
(function () {
  function apply(target, transform) {
    var frame = document.getElementById('viewer-frame');
    var wrapper = document.getElementById('viewer-wrapper');
    if (!frame) return;
    if (target && frame.getAttribute('src') !== target) frame.setAttribute('src', target);
    if (wrapper && transform) wrapper.style.transform = transform;
  }
  document.addEventListener('keydown', function (e) {
    if (!document.getElementById('viewer-frame')) return;
    var typing = document.activeElement && document.activeElement.tagName === 'INPUT';
    if (typing || !window.shortcutKeys || shortcutKeys.indexOf(e.key) < 0) return;
    e.preventDefault();
    fetch('/viewer/key', {
      method: 'POST',
      headers: {'Content-Type': 'application/json', 'Accept': 'application/json'},
      body: JSON.stringify({key: e.key, input_focused: typing})
    }).then(function (r) { return r.json(); }).then(function (res) {
      if (res.handled) location.reload();
    }).catch(function () {});
  });
  try {
    var ws = new WebSocket((location.protocol === 'https:' ? 'wss://' : 'ws://') + location.host + '/ws/events');
    ws.onmessage = function (m) {
      var ev = JSON.parse(m.data);
      var page = document.body.dataset;
      if (ev.type === 'navigate' && ev.view !== page.view) location.reload();
      else if (ev.type === 'open_module' && String(ev.module_id) !== page.module) location.reload();
      else if (ev.type === 'viewer') apply(ev.target, ev.transform);
    };
  } catch (err) {}
})();
`

const cssContent = `
:root { --accent: #2563eb; --muted: #6b7280; --border: #e5e7eb; --done: #16a34a; }
* { box-sizing: border-box; }
body { margin: 0; font-family: system-ui, sans-serif; color: #111827; background: #f9fafb; }
.navbar { display: flex; align-items: center; gap: .5rem; padding: .75rem 1.5rem; background: #fff; border-bottom: 1px solid var(--border); }
.navbar .brand { font-weight: 700; margin-right: auto; }
.nav-item button { background: none; border: 0; padding: .5rem .75rem; cursor: pointer; color: var(--muted); }
.nav-item button.active { color: var(--accent); border-bottom: 2px solid var(--accent); }
.content { max-width: 1100px; margin: 0 auto; padding: 1.5rem; }
.grid, .quick-access { display: grid; grid-template-columns: repeat(auto-fill, minmax(240px, 1fr)); gap: 1rem; }
.card { background: #fff; border: 1px solid var(--border); border-radius: 8px; padding: 1rem; }
.card.completed { border-color: var(--done); }
.badge { display: inline-block; font-size: .75rem; padding: .1rem .5rem; border-radius: 999px; background: #eef2ff; color: var(--accent); }
.completed .badge, .toggle.completed { background: #dcfce7; color: var(--done); }
.progress { height: .75rem; background: var(--border); border-radius: 999px; overflow: hidden; }
.progress-bar { height: 100%; background: var(--accent); }
.detail-header { display: flex; align-items: center; gap: 1rem; margin-bottom: 1rem; }
.toolbar { display: flex; align-items: center; gap: .5rem; padding: .5rem; background: #fff; border: 1px solid var(--border); border-radius: 8px 8px 0 0; }
.toolbar form { margin: 0; }
.page-form input { width: 4rem; }
.frame-wrapper { transform-origin: center center; transition: transform .2s; }
.frame { width: 100%; height: 80vh; border: 1px solid var(--border); background: #fff; }
.terms dt { font-weight: 600; margin-top: 1rem; }
.terms dd { margin: .25rem 0 0; color: #374151; }
.empty { color: var(--muted); }
`
