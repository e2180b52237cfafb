package main

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/memetool/mcp-server-memegen/core"
	"github.com/memetool/mcp-server-memegen/pkg/auth"
)

// ToolRegistry manages tool registration and lifecycle
type ToolRegistry struct {
	server *server.MCPServer
	tools  map[string]core.Tool
}

// NewToolRegistry creates a new tool registry
func NewToolRegistry(mcpServer *server.MCPServer) *ToolRegistry {
	return &ToolRegistry{
		server: mcpServer,
		tools:  make(map[string]core.Tool),
	}
}

// RegisterTool registers a tool with the server, wrapping its handler with
// invocation logging.
func (r *ToolRegistry) RegisterTool(name string, tool core.Tool) {
	r.tools[name] = tool
	r.server.AddTool(tool.Handle(), logInvocations(name, tool.Handler))
}

// logInvocations tags each call with an ID and records its outcome. Error
// results are tool output, not faults, so they log at warn rather than error.
func logInvocations(name string, next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		started := time.Now()

		logger := log.With("tool", name, "invocation", uuid.NewString())
		if principal, ok := auth.PrincipalFrom(ctx); ok {
			logger = logger.With("client", principal.ClientID)
		}

		result, err := next(ctx, request)

		switch {
		case err != nil:
			logger.Error("Tool invocation failed", "error", err, "duration", time.Since(started))
		case result != nil && result.IsError:
			logger.Warn("Tool returned an error result", "duration", time.Since(started))
		default:
			logger.Info("Tool invocation complete", "duration", time.Since(started))
		}

		return result, err
	}
}
