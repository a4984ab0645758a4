// Package catalog holds the static list of training documents: numbered
// modules, study resources, the practice question set and the glossary.
package catalog

import (
	"fmt"
	"strings"
)

// Category classifies a study resource.
type Category string

const (
	CategoryReference Category = "reference"
	CategoryCaseStudy Category = "case-study"
	CategoryPractice  Category = "practice"
)

// Categories lists the resource groups in display order.
var Categories = []Category{CategoryReference, CategoryCaseStudy, CategoryPractice}

// Label returns the heading used for the category.
func (c Category) Label() string {
	switch c {
	case CategoryReference:
		return "Reference"
	case CategoryCaseStudy:
		return "Case Study"
	case CategoryPractice:
		return "Practice"
	default:
		return "Document"
	}
}

// Valid reports whether c is a known category. The empty category is valid.
func (c Category) Valid() bool {
	switch c {
	case "", CategoryReference, CategoryCaseStudy, CategoryPractice:
		return true
	}
	return false
}

// Record describes one document.
type Record struct {
	ID          string   `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Path        string   `yaml:"path" json:"path"`
	Category    Category `yaml:"category,omitempty" json:"category,omitempty"`
}

// Module is a numbered training module. Completion is tracked by ID.
type Module struct {
	ID          int    `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Path        string `yaml:"path" json:"path"`
}

// Record returns the module as a document record.
func (m Module) Record() Record {
	return Record{ID: fmt.Sprint(m.ID), Title: m.Title, Description: m.Description, Path: m.Path}
}

// Term is a glossary entry. Definition is markdown.
type Term struct {
	Term       string `yaml:"term" json:"term"`
	Definition string `yaml:"definition" json:"definition"`
}

// Catalog is the immutable content registry.
type Catalog struct {
	Name      string   `yaml:"name" json:"name"`
	Modules   []Module `yaml:"modules" json:"modules"`
	Resources []Record `yaml:"resources" json:"resources"`
	Practice  Record   `yaml:"practice" json:"practice"`
	Glossary  Record   `yaml:"glossary" json:"glossary"`
	Terms     []Term   `yaml:"terms" json:"terms"`
}

// Module looks up a module by id.
func (c *Catalog) Module(id int) (Module, bool) {
	for _, m := range c.Modules {
		if m.ID == id {
			return m, true
		}
	}
	return Module{}, false
}

// Resource looks up a study resource by id.
func (c *Catalog) Resource(id string) (Record, bool) {
	for _, r := range c.Resources {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

// ModuleIDs returns the ids of all modules in order.
func (c *Catalog) ModuleIDs() []int {
	ids := make([]int, len(c.Modules))
	for i, m := range c.Modules {
		ids[i] = m.ID
	}
	return ids
}

// Group is the resources of one category.
type Group struct {
	Category Category
	Records  []Record
}

// Grouped returns resources grouped by category in display order. Empty groups
// are kept so pages can render a stable layout; uncategorised records are left
// out.
func (c *Catalog) Grouped() []Group {
	groups := make([]Group, len(Categories))
	for i, cat := range Categories {
		groups[i].Category = cat
		for _, r := range c.Resources {
			if r.Category == cat {
				groups[i].Records = append(groups[i].Records, r)
			}
		}
	}
	return groups
}

// SearchTerms returns the glossary terms whose term or definition contains q,
// ignoring case. An empty query matches everything.
func (c *Catalog) SearchTerms(q string) []Term {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return c.Terms
	}
	var out []Term
	for _, t := range c.Terms {
		if strings.Contains(strings.ToLower(t.Term), q) || strings.Contains(strings.ToLower(t.Definition), q) {
			out = append(out, t)
		}
	}
	return out
}

// Records returns every document the catalog references, modules first.
func (c *Catalog) Records() []Record {
	out := make([]Record, 0, len(c.Modules)+len(c.Resources)+2)
	for _, m := range c.Modules {
		out = append(out, m.Record())
	}
	out = append(out, c.Resources...)
	if c.Practice.Path != "" {
		out = append(out, c.Practice)
	}
	if c.Glossary.Path != "" {
		out = append(out, c.Glossary)
	}
	return out
}

// Validate checks ids are unique and every document has a title and path.
func (c *Catalog) Validate() error {
	seenModules := map[int]bool{}
	for _, m := range c.Modules {
		if seenModules[m.ID] {
			return fmt.Errorf("duplicate module id %d", m.ID)
		}
		seenModules[m.ID] = true
		if m.Title == "" || m.Path == "" {
			return fmt.Errorf("module %d: title and path are required", m.ID)
		}
	}

	seenResources := map[string]bool{}
	for _, r := range c.Resources {
		if r.ID == "" {
			return fmt.Errorf("resource %q: id is required", r.Title)
		}
		if seenResources[r.ID] {
			return fmt.Errorf("duplicate resource id %q", r.ID)
		}
		seenResources[r.ID] = true
		if r.Title == "" || r.Path == "" {
			return fmt.Errorf("resource %q: title and path are required", r.ID)
		}
		if !r.Category.Valid() {
			return fmt.Errorf("resource %q: invalid category %q", r.ID, r.Category)
		}
	}
	return nil
}
