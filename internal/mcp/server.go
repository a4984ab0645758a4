package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/studydeck/internal/catalog"
	"github.com/ziadkadry99/studydeck/internal/completion"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the training library to agents.
type Server struct {
	catalog    *catalog.Catalog
	completion *completion.Store
	mcp        *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies.
func NewServer(c *catalog.Catalog, store *completion.Store) *Server {
	s := &Server{
		catalog:    c,
		completion: store,
	}

	s.mcp = server.NewMCPServer(
		"studydeck",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listDocumentsTool, s.handleListDocuments)
	s.mcp.AddTool(getProgressTool, s.handleGetProgress)
	s.mcp.AddTool(toggleCompletionTool, s.handleToggleCompletion)
	s.mcp.AddTool(viewerLocatorTool, s.handleViewerLocator)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
