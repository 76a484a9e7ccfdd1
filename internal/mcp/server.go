// Package mcp implements the Model Context Protocol server, exposing
// lnedit operations to LLMs. This enables AI assistants to open files and
// apply verified line-range edits through a standardised protocol.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/jpl-au/lnedit/internal/config"
	"github.com/jpl-au/lnedit/internal/verify"
	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Serve starts the MCP server over stdio, enabling LLM integration.
// Uses stdio transport for compatibility with Claude Desktop and other
// MCP clients.
func Serve(cfg *config.Config, ver *verify.Verifier) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	h := &handlers{cfg: cfg, verifier: ver}

	s := server.NewMCPServer(
		"lnedit",
		Version,
		server.WithToolCapabilities(true),
	)

	registerTools(s, h)

	slog.Info("lnedit MCP server ready", "version", Version, "transport", "stdio")

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// handlers provides MCP request handlers with access to the shared
// configuration and edit verifier.
type handlers struct {
	cfg      *config.Config
	verifier *verify.Verifier
}
