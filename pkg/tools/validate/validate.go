// Package validate exposes the ownership-validation tool. The calling
// platform invokes it after connecting to confirm who operates this server;
// the answer is the configured owner number as plain text.
package validate

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/memetool/mcp-server-memegen/core"
)

// OwnerTool reports the configured owner number.
type OwnerTool struct {
	ownerNumber string
	handle      mcp.Tool
}

// NewOwnerTool creates the validate tool.
func NewOwnerTool(ownerNumber string) core.Tool {
	t := &OwnerTool{ownerNumber: ownerNumber}

	t.handle = mcp.NewTool(
		"validate",
		mcp.WithDescription("Return the server owner's number for platform validation"),
	)
	return t
}

// Handle returns the tool's definition.
func (t *OwnerTool) Handle() mcp.Tool {
	return t.handle
}

// Handler executes the tool.
func (t *OwnerTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(t.ownerNumber), nil
}
