// tools_util.go provides helper functions for MCP tool parameter extraction.
//
// We use permissive extraction (return default on error) rather than strict
// validation because MCP tools should be forgiving - an LLM omitting an
// optional parameter shouldn't cause cryptic errors.

package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// getInt extracts an integer parameter from the MCP request arguments.
//
// JSON numbers are decoded as float64 in Go's encoding/json, so we must type
// assert to float64 first and then convert to int. Returns the default if the
// parameter is missing or not a number.
func getInt(req mcp.CallToolRequest, name string, def int) int {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(float64); ok {
		return int(v)
	}
	return def
}
