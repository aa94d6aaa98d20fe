package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/server"

	"senscode/internal/app"
	"senscode/internal/logger"
)

// Name and Version identify the server during the MCP handshake.
const (
	Name    = "sensory"
	Version = "0.1.0"
)

// New builds the MCP server with every sensory tool registered.
func New(w *app.Wire) *server.MCPServer {
	s := server.NewMCPServer(Name, Version,
		server.WithToolCapabilities(false),
	)
	registerTools(s, w)
	return s
}

// Serve runs the server over stdio until the client disconnects or ctx is
// cancelled. Stdout carries the protocol; all logging goes to stderr.
func Serve(ctx context.Context, w *app.Wire) error {
	s := New(w)
	logger.L().Info("mcp.serve", "name", Name, "version", Version)
	return server.ServeStdio(s, server.WithStdioContextFunc(
		func(context.Context) context.Context { return ctx },
	))
}
