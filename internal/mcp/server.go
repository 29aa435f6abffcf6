package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/takumif/aiact-explorer/internal/articles"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the article collection to AI
// agents over stdio.
type Server struct {
	store *articles.Store
	mcp   *server.MCPServer
}

// NewServer creates a new MCP server wired to the given document store.
func NewServer(store *articles.Store) *Server {
	s := &Server{store: store}

	s.mcp = server.NewMCPServer(
		"aiact",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers.
func (s *Server) registerTools() {
	s.mcp.AddTool(searchArticlesTool, s.handleSearchArticles)
	s.mcp.AddTool(getArticleTool, s.handleGetArticle)
	s.mcp.AddTool(buildSlideDeckTool, s.handleBuildSlideDeck)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
