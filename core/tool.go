// Package core defines the contract every tool in the server implements.
package core

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// Tool is a named, schema-validated operation exposed to calling agents.
type Tool interface {
	// Handle returns the underlying MCP tool definition.
	Handle() mcp.Tool

	// Handler processes tool requests and returns responses.
	Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
}
