// Package server exposes the keyword layer as Model Context Protocol tools.
// Every registered keyword becomes one tool; "read" and "do" are added for
// inspecting the form and running keyword scripts.
package server

import (
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/forms-cli/internal/keyword"
	"github.com/mj1618/forms-cli/internal/logger"
	"github.com/mj1618/forms-cli/internal/version"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
	// SavePath, when set, receives the form after every mutating tool call.
	SavePath string
}

// Server wraps the MCP server around one keyword session. Tool calls are
// serialized: the form is shared state.
type Server struct {
	session    *keyword.Session
	savePath   string
	providerMu sync.Mutex
	mcp        *mcpserver.MCPServer
}

// New creates an MCP server with a tool per keyword.
func New(session *keyword.Session, cfg Config) *Server {
	s := &Server{
		session:  session,
		savePath: cfg.SavePath,
	}
	s.mcp = mcpserver.NewMCPServer(
		"forms-cli",
		version.Version,
	)
	s.registerTools()
	return s
}

// MCP returns the underlying MCP server.
func (s *Server) MCP() *mcpserver.MCPServer {
	return s.mcp
}

// Serve starts the server with the configured transport and blocks.
func (s *Server) Serve(cfg Config) error {
	logger.Info("Serving MCP over %s", cfg.Transport)
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	for _, kw := range keyword.All() {
		s.mcp.AddTool(keywordTool(kw), s.keywordHandler(kw))
	}

	s.mcp.AddTool(
		mcp.NewTool("read",
			mcp.WithDescription("Read the form's component tree. Returns components with IDs, types, names, text and bounds."),
			mcp.WithString("types", mcp.Description("Comma-separated type tags or groups to include (e.g. \"textfield,buttons\")")),
			mcp.WithString("text", mcp.Description("Only include components whose name or text contains this")),
			mcp.WithString("bbox", mcp.Description("Only include components intersecting x,y,w,h")),
			mcp.WithBoolean("flat", mcp.Description("Flatten the tree with path breadcrumbs")),
			mcp.WithBoolean("prune", mcp.Description("Drop anonymous containers")),
		),
		s.handleRead,
	)

	s.mcp.AddTool(
		mcp.NewTool("do",
			mcp.WithDescription("Run a sequence of keywords. Each step is an object with a single key, the keyword name, holding its parameters."),
			mcp.WithArray("steps", mcp.Description("Array of step objects, e.g. [{\"select-row\": {\"keys\": [\"jeff\"]}}]"), mcp.Required()),
			mcp.WithBoolean("stop-on-error", mcp.Description("Stop at the first failing step (default true)")),
		),
		s.handleDo,
	)
}

// keywordTool builds the tool schema from a keyword's parameters.
func keywordTool(kw keyword.Keyword) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(kw.Description)}
	for _, p := range kw.Params {
		props := []mcp.PropertyOption{mcp.Description(p.Description)}
		if p.Required {
			props = append(props, mcp.Required())
		}
		switch p.Type {
		case keyword.TypeNumber:
			opts = append(opts, mcp.WithNumber(p.Name, props...))
		case keyword.TypeBoolean:
			opts = append(opts, mcp.WithBoolean(p.Name, props...))
		case keyword.TypeArray:
			opts = append(opts, mcp.WithArray(p.Name, props...))
		default:
			opts = append(opts, mcp.WithString(p.Name, props...))
		}
	}
	return mcp.NewTool(kw.Name, opts...)
}
