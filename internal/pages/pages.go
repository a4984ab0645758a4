// Package pages renders the shell as HTML: the navigation bar, the five
// top-level views and the document viewer toolbar.
package pages

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"math"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/ziadkadry99/studydeck/internal/catalog"
	"github.com/ziadkadry99/studydeck/internal/completion"
	"github.com/ziadkadry99/studydeck/internal/shell"
	"github.com/ziadkadry99/studydeck/internal/viewer"
)

// Input is everything needed to render one screen.
type Input struct {
	Catalog   *catalog.Catalog
	Snapshot  shell.Snapshot
	Completed completion.Set
}

// Renderer executes the page template.
type Renderer struct {
	tmpl *template.Template
	md   goldmark.Markdown
}

// New parses the templates.
func New() (*Renderer, error) {
	r := &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle("github"),
				),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
	}

	tmpl, err := template.New("page").Funcs(template.FuncMap{
		"markdown": r.markdown,
		"css":      func(s string) template.CSS { return template.CSS(s) },
	}).Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

// Render writes the full HTML document for in.
func (r *Renderer) Render(w io.Writer, in Input) error {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, build(in)); err != nil {
		return fmt.Errorf("rendering %s view: %w", in.Snapshot.View, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// markdown converts inline catalog text. Raw HTML in the source is escaped.
func (r *Renderer) markdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

type navItem struct {
	View   shell.View
	Label  string
	Active bool
}

type moduleCard struct {
	catalog.Module
	Completed bool
}

// Progress summarises module completion for the home page.
type Progress struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
	Percent   int `json:"percent"`
}

// ComputeProgress counts the completed ids that name a module in c.
func ComputeProgress(c *catalog.Catalog, done completion.Set) Progress {
	p := Progress{Completed: done.CountIn(c.ModuleIDs()), Total: len(c.Modules)}
	if p.Total > 0 {
		p.Percent = int(math.Round(float64(p.Completed) / float64(p.Total) * 100))
	}
	return p
}

type pageData struct {
	Title    string
	View     shell.View
	Nav      []navItem
	Progress Progress
	Modules  []moduleCard
	Module   *moduleCard
	Groups   []catalog.Group
	Resource *catalog.Record
	Practice catalog.Record
	Glossary catalog.Record
	Terms    []catalog.Term
	Snapshot shell.Snapshot
	Viewer   *shell.ViewerSnapshot
	Keys     []string
}

func build(in Input) pageData {
	c := in.Catalog
	snap := in.Snapshot

	d := pageData{
		Title:    c.Name,
		View:     snap.View,
		Progress: ComputeProgress(c, in.Completed),
		Groups:   c.Grouped(),
		Practice: c.Practice,
		Glossary: c.Glossary,
		Snapshot: snap,
		Viewer:   snap.Viewer,
		Keys:     viewer.ShortcutKeys(),
	}

	for _, v := range shell.Views {
		d.Nav = append(d.Nav, navItem{View: v, Label: v.Label(), Active: v == snap.View})
	}

	for _, m := range c.Modules {
		card := moduleCard{Module: m, Completed: in.Completed.Contains(m.ID)}
		if snap.ModuleID != nil && *snap.ModuleID == m.ID {
			sel := card
			d.Module = &sel
		}
		d.Modules = append(d.Modules, card)
	}

	if snap.ResourceID != "" {
		if r, ok := c.Resource(snap.ResourceID); ok {
			d.Resource = &r
		}
	}

	if snap.View == shell.ViewGlossary {
		d.Terms = c.SearchTerms(snap.GlossarySearch)
	}
	return d
}
