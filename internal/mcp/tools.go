// tools.go implements the MCP tool handlers for lnedit operations.
//
// Each tool mirrors a CLI command and shares the same session file, so an
// LLM can mix MCP calls with shell invocations and see a consistent cursor.

package mcp

import (
	"context"

	"github.com/jpl-au/lnedit/internal/doc"
	"github.com/jpl-au/lnedit/internal/log"
	"github.com/jpl-au/lnedit/internal/nav"
	"github.com/jpl-au/lnedit/internal/session"
	"github.com/jpl-au/lnedit/internal/verify"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerTools exposes lnedit operations as MCP tools for LLM invocation.
func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcp.NewTool("lnedit_open",
			mcp.WithDescription("Open a file and show a window of numbered lines around the cursor. Makes the file current for subsequent edit and navigation tools."),
			mcp.WithString("path", mcp.Required(), mcp.Description("Path of the file to open")),
			mcp.WithNumber("line", mcp.Description("Line to centre the window on (default: 1)")),
		),
		h.openFile,
	)

	s.AddTool(
		mcp.NewTool("lnedit_create",
			mcp.WithDescription("Create a new empty file and open it"),
			mcp.WithString("path", mcp.Required(), mcp.Description("Path of the file to create")),
		),
		h.createFile,
	)

	s.AddTool(
		mcp.NewTool("lnedit_goto",
			mcp.WithDescription("Move the cursor to a line in the open file and show the window around it"),
			mcp.WithNumber("line", mcp.Required(), mcp.Description("Line to move the cursor to")),
		),
		h.gotoLine,
	)

	s.AddTool(
		mcp.NewTool("lnedit_scroll",
			mcp.WithDescription("Scroll the window up or down by one window, keeping a two-line overlap"),
			mcp.WithString("direction", mcp.Required(), mcp.Description("Either \"up\" or \"down\"")),
		),
		h.scroll,
	)

	s.AddTool(
		mcp.NewTool("lnedit_print",
			mcp.WithDescription("Show the current window of the open file without moving the cursor"),
			mcp.WithNumber("window", mcp.Description("Window size for this render (default: session window size)")),
		),
		h.printWindow,
	)

	s.AddTool(
		mcp.NewTool("lnedit_edit",
			mcp.WithDescription("Replace a line range in the open file, verified by the linter. The edit is applied speculatively; if it introduces syntax errors the file is restored and the errors are reported. An end line past the last line means through end of file."),
			mcp.WithNumber("start", mcp.Required(), mcp.Description("First line to replace (1-indexed, inclusive)")),
			mcp.WithNumber("end", mcp.Required(), mcp.Description("Last line to replace (inclusive)")),
			mcp.WithString("content", mcp.Required(), mcp.Description("Replacement text; may span multiple lines. An empty string deletes the range.")),
		),
		h.editRange,
	)
}

// openFile handles lnedit_open tool calls.
func (h *handlers) openFile(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil //nolint:nilerr
	}
	line := getInt(req, "line", 1)

	res, err := nav.Open(h.cfg, path, line)

	log.Event("mcp:open", "open").Path(path).Line(line).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(res.View), nil
}

// createFile handles lnedit_create tool calls.
func (h *handlers) createFile(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil //nolint:nilerr
	}

	res, err := nav.Create(h.cfg, path)

	log.Event("mcp:create", "create").Path(path).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(res.View), nil
}

// gotoLine handles lnedit_goto tool calls.
func (h *handlers) gotoLine(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	line := getInt(req, "line", 0)
	if line < 1 {
		return mcp.NewToolResultError("line is required and must be at least 1"), nil
	}

	res, err := nav.Goto(h.cfg, line)

	log.Event("mcp:goto", "goto").Path(res.Path).Line(line).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(res.View), nil
}

// scroll handles lnedit_scroll tool calls.
func (h *handlers) scroll(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dir, err := req.RequireString("direction")
	if err != nil {
		return mcp.NewToolResultError("direction is required"), nil //nolint:nilerr
	}

	var direction int
	switch dir {
	case "up":
		direction = -1
	case "down":
		direction = 1
	default:
		return mcp.NewToolResultError("direction must be \"up\" or \"down\""), nil
	}

	res, err := nav.Scroll(h.cfg, direction)

	log.Event("mcp:scroll", "scroll").Path(res.Path).Detail("direction", dir).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(res.View), nil
}

// printWindow handles lnedit_print tool calls.
func (h *handlers) printWindow(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res, err := nav.Print(h.cfg, getInt(req, "window", 0))

	log.Event("mcp:print", "print").Path(res.Path).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(res.View), nil
}

// editRange handles lnedit_edit tool calls. The cursor only moves when the
// edit commits; a rejected edit leaves the session untouched.
func (h *handlers) editRange(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := getInt(req, "start", 0)
	end := getInt(req, "end", 0)
	if start < 1 || end < 1 {
		return mcp.NewToolResultError("start and end are required and must be at least 1"), nil
	}
	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError("content is required"), nil //nolint:nilerr
	}

	s, err := session.Load()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	path, err := s.RequireFile()
	if err != nil {
		log.Event("mcp:edit", "edit").Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if s.WindowSize < 1 {
		s.WindowSize = h.cfg.WindowSize()
	}

	replacement := doc.SplitLines(content)
	r := verify.Request{Start: start, End: end, Replacement: replacement}
	outcome, err := h.verifier.Apply(ctx, path, r, s.WindowSize)

	log.Event("mcp:edit", "edit").
		Path(path).
		Line(start).
		Detail("end", end).
		Detail("replacement_lines", len(replacement)).
		Detail("accepted", err == nil && outcome.Accepted).
		Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if outcome.Accepted {
		s.CursorLine = outcome.CursorLine
		if err := s.Save(); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}
	return mcp.NewToolResultText(outcome.Report()), nil
}
