package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listDocumentsTool defines the list_documents MCP tool.
var listDocumentsTool = mcp.NewTool("list_documents",
	mcp.WithDescription("List the training documents: numbered modules, study resources, the practice questions and the glossary."),
	mcp.WithString("kind",
		mcp.Description("Which documents to list (default all)"),
		mcp.Enum("modules", "resources", "all"),
	),
)

// getProgressTool defines the get_progress MCP tool.
var getProgressTool = mcp.NewTool("get_progress",
	mcp.WithDescription("Get which modules a learner has completed and the overall completion percentage."),
	mcp.WithString("user",
		mcp.Required(),
		mcp.Description("Learner id (the browser session id)"),
	),
)

// toggleCompletionTool defines the toggle_completion MCP tool.
var toggleCompletionTool = mcp.NewTool("toggle_completion",
	mcp.WithDescription("Mark a module complete, or incomplete if it already was."),
	mcp.WithString("user",
		mcp.Required(),
		mcp.Description("Learner id (the browser session id)"),
	),
	mcp.WithNumber("module_id",
		mcp.Required(),
		mcp.Description("Module number"),
	),
)

// viewerLocatorTool defines the viewer_locator MCP tool.
var viewerLocatorTool = mcp.NewTool("viewer_locator",
	mcp.WithDescription("Build the viewer URL for a document at a page and zoom level, applying the same clamping as the browser viewer."),
	mcp.WithString("document",
		mcp.Required(),
		mcp.Description("Module number, resource id, or one of \"practice\" and \"glossary\""),
	),
	mcp.WithString("page",
		mcp.Description("Page to open, as typed into the page box (default 1)"),
	),
	mcp.WithNumber("zoom",
		mcp.Description("Zoom percent between 50 and 200 in steps of 25 (default 100)"),
	),
	mcp.WithNumber("rotations",
		mcp.Description("Number of quarter turns clockwise"),
	),
)
