package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/studydeck/internal/catalog"
	"github.com/ziadkadry99/studydeck/internal/completion"
	"github.com/ziadkadry99/studydeck/internal/db"
)

func setupServer(t *testing.T) *Server {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewServer(catalog.Default(), completion.NewStore(db.NewKV(database)))
}

func call(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) (string, bool) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args

	result, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var sb strings.Builder
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			sb.WriteString(tc.Text)
		}
	}
	return sb.String(), result.IsError
}

func TestToolDefinitions(t *testing.T) {
	// Verify tool names and required properties.
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
	}{
		{"list_documents", listDocumentsTool, "list_documents"},
		{"get_progress", getProgressTool, "get_progress"},
		{"toggle_completion", toggleCompletionTool, "toggle_completion"},
		{"viewer_locator", viewerLocatorTool, "viewer_locator"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	srv := setupServer(t)
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
	if srv.catalog == nil || srv.completion == nil {
		t.Error("dependencies not set")
	}
}

func TestHandleListDocuments(t *testing.T) {
	srv := setupServer(t)

	t.Run("all", func(t *testing.T) {
		text, isErr := call(t, srv.handleListDocuments, map[string]any{})
		if isErr {
			t.Fatalf("unexpected tool error: %s", text)
		}
		for _, want := range []string{"Modules (7):", "[0] Module 0: Introduction", "Case Study:", "[pmbok] PMBOK 7th Edition", "Practice: PMP Practice Questions", "6 terms"} {
			if !strings.Contains(text, want) {
				t.Errorf("output missing %q:\n%s", want, text)
			}
		}
	})

	t.Run("modules only", func(t *testing.T) {
		text, _ := call(t, srv.handleListDocuments, map[string]any{"kind": "modules"})
		if strings.Contains(text, "pmbok") {
			t.Error("modules listing should not include resources")
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, isErr := call(t, srv.handleListDocuments, map[string]any{"kind": "videos"})
		if !isErr {
			t.Error("expected error for unknown kind")
		}
	})
}

func TestHandleProgressAndToggle(t *testing.T) {
	srv := setupServer(t)

	text, isErr := call(t, srv.handleGetProgress, map[string]any{"user": "ana"})
	if isErr || !strings.HasPrefix(text, "0% complete: 0 of 7 modules") {
		t.Fatalf("unexpected progress: %s", text)
	}

	text, isErr = call(t, srv.handleToggleCompletion, map[string]any{"user": "ana", "module_id": float64(4)})
	if isErr || !strings.Contains(text, "marked complete") {
		t.Fatalf("unexpected toggle result: %s", text)
	}

	text, _ = call(t, srv.handleGetProgress, map[string]any{"user": "ana"})
	if !strings.HasPrefix(text, "14% complete: 1 of 7 modules") {
		t.Errorf("unexpected progress: %s", text)
	}
	if !strings.Contains(text, "[x] Module 4") {
		t.Errorf("module 4 should be ticked:\n%s", text)
	}

	text, _ = call(t, srv.handleToggleCompletion, map[string]any{"user": "ana", "module_id": float64(4)})
	if !strings.Contains(text, "marked incomplete") {
		t.Errorf("second toggle should undo: %s", text)
	}

	if _, isErr := call(t, srv.handleToggleCompletion, map[string]any{"user": "ana", "module_id": float64(12)}); !isErr {
		t.Error("expected error for unknown module")
	}
	if _, isErr := call(t, srv.handleToggleCompletion, map[string]any{"module_id": float64(1)}); !isErr {
		t.Error("expected error for missing user")
	}
	if _, isErr := call(t, srv.handleGetProgress, map[string]any{}); !isErr {
		t.Error("expected error for missing user")
	}
}

func TestHandleViewerLocator(t *testing.T) {
	srv := setupServer(t)

	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{"defaults", map[string]any{"document": "2"}, "URL: /materials/Module 2 Notes.pdf#page=1&zoom=100"},
		{"page and zoom", map[string]any{"document": "pmbok", "page": "12", "zoom": float64(150)}, "URL: /materials/PMBOK 7th edition.pdf#page=12&zoom=150"},
		{"zoom clamps high", map[string]any{"document": "practice", "zoom": float64(500)}, "#page=1&zoom=200"},
		{"zoom clamps low", map[string]any{"document": "glossary", "zoom": float64(10)}, "#page=1&zoom=50"},
		{"zoom rounds down to a step", map[string]any{"document": "1", "zoom": float64(110)}, "&zoom=100"},
		{"malformed page ignored", map[string]any{"document": "1", "page": "abc"}, "#page=1&"},
		{"leading digits parsed", map[string]any{"document": "1", "page": "7x"}, "#page=7&"},
		{"rotation", map[string]any{"document": "1", "rotations": float64(5)}, "Transform: rotate(90deg)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, isErr := call(t, srv.handleViewerLocator, tt.args)
			if isErr {
				t.Fatalf("unexpected tool error: %s", text)
			}
			if !strings.Contains(text, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, text)
			}
		})
	}

	if _, isErr := call(t, srv.handleViewerLocator, map[string]any{"document": "nope"}); !isErr {
		t.Error("expected error for unknown document")
	}
	if _, isErr := call(t, srv.handleViewerLocator, map[string]any{}); !isErr {
		t.Error("expected error for missing document")
	}
}
