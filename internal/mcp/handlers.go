package mcp

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/studydeck/internal/catalog"
	"github.com/ziadkadry99/studydeck/internal/pages"
	"github.com/ziadkadry99/studydeck/internal/viewer"
)

// handleListDocuments lists catalog entries by kind.
func (s *Server) handleListDocuments(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind := request.GetString("kind", "all")

	var sb strings.Builder
	if kind == "modules" || kind == "all" {
		sb.WriteString(fmt.Sprintf("Modules (%d):\n", len(s.catalog.Modules)))
		for _, m := range s.catalog.Modules {
			sb.WriteString(fmt.Sprintf("- [%d] %s (%s)\n", m.ID, m.Title, m.Path))
		}
	}
	if kind == "resources" || kind == "all" {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		for _, g := range s.catalog.Grouped() {
			if len(g.Records) == 0 {
				continue
			}
			sb.WriteString(fmt.Sprintf("%s:\n", g.Category.Label()))
			for _, r := range g.Records {
				sb.WriteString(fmt.Sprintf("- [%s] %s (%s)\n", r.ID, r.Title, r.Path))
			}
		}
	}
	if kind == "all" {
		sb.WriteString(fmt.Sprintf("\nPractice: %s (%s)\n", s.catalog.Practice.Title, s.catalog.Practice.Path))
		sb.WriteString(fmt.Sprintf("Glossary: %s (%s), %d terms\n", s.catalog.Glossary.Title, s.catalog.Glossary.Path, len(s.catalog.Terms)))
	}
	if sb.Len() == 0 {
		return mcp.NewToolResultError(fmt.Sprintf("unknown kind %q", kind)), nil
	}

	return mcp.NewToolResultText(sb.String()), nil
}

// handleGetProgress reports a learner's completed modules.
func (s *Server) handleGetProgress(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	user, err := request.RequireString("user")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: user"), nil
	}

	done, err := s.completion.Load(ctx, user)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("loading progress failed: %v", err)), nil
	}

	p := pages.ComputeProgress(s.catalog, done)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d%% complete: %d of %d modules\n", p.Percent, p.Completed, p.Total))
	for _, m := range s.catalog.Modules {
		mark := " "
		if done.Contains(m.ID) {
			mark = "x"
		}
		sb.WriteString(fmt.Sprintf("[%s] %s\n", mark, m.Title))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleToggleCompletion flips one module's completion for a learner.
func (s *Server) handleToggleCompletion(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	user, err := request.RequireString("user")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: user"), nil
	}
	id, err := request.RequireInt("module_id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: module_id"), nil
	}

	m, ok := s.catalog.Module(id)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("no module %d", id)), nil
	}

	completed, err := s.completion.Toggle(ctx, user, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("toggling completion failed: %v", err)), nil
	}

	if completed {
		return mcp.NewToolResultText(fmt.Sprintf("%s marked complete.", m.Title)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("%s marked incomplete.", m.Title)), nil
}

// handleViewerLocator drives a fresh coordinator to the requested view.
func (s *Server) handleViewerLocator(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc, err := request.RequireString("document")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: document"), nil
	}

	rec, ok := s.lookup(doc)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("no document %q. Use list_documents to see what is available.", doc)), nil
	}

	c := viewer.New()
	c.Bind(rec.Path, rec.Title)
	if page := request.GetString("page", ""); page != "" {
		c.GoToPage(page)
	}

	zoom := request.GetInt("zoom", viewer.DefaultZoom)
	for c.CanZoomIn() && c.State().Zoom+viewer.ZoomStep <= zoom {
		c.ZoomIn()
	}
	for c.CanZoomOut() && c.State().Zoom-viewer.ZoomStep >= zoom {
		c.ZoomOut()
	}

	for range request.GetInt("rotations", 0) % 4 {
		c.Rotate()
	}

	state := c.State()
	return mcp.NewToolResultText(fmt.Sprintf(
		"Document: %s\nURL: %s\nPage: %d\nZoom: %d%%\nTransform: %s\n",
		rec.Title, c.Target(), state.Page, state.Zoom, c.Transform(),
	)), nil
}

// lookup resolves a module number, resource id or one of the fixed names.
func (s *Server) lookup(doc string) (catalog.Record, bool) {
	switch doc {
	case "practice":
		return s.catalog.Practice, s.catalog.Practice.Path != ""
	case "glossary":
		return s.catalog.Glossary, s.catalog.Glossary.Path != ""
	}
	if id, err := strconv.Atoi(doc); err == nil {
		if m, ok := s.catalog.Module(id); ok {
			return m.Record(), true
		}
	}
	return s.catalog.Resource(doc)
}
