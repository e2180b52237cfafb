// Command server is the main entry point for the memegen MCP server
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/server"

	"github.com/memetool/mcp-server-memegen/pkg/auth"
	"github.com/memetool/mcp-server-memegen/pkg/config"
	"github.com/memetool/mcp-server-memegen/pkg/memegen"
	mathtool "github.com/memetool/mcp-server-memegen/pkg/tools/math"
	"github.com/memetool/mcp-server-memegen/pkg/tools/meme"
	"github.com/memetool/mcp-server-memegen/pkg/tools/validate"
)

const (
	serverName    = "memegen-mcp"
	serverVersion = "1.0.0"

	shutdownGrace = 10 * time.Second
)

func main() {
	log.Info("Starting memegen MCP server...")

	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Configuration error", "error", err)
	}

	// Initialize MCP server
	mcpServer := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(true),
		server.WithLogging(),
	)

	// Initialize tool registry
	registry := NewToolRegistry(mcpServer)

	// Register tools
	client := memegen.NewClient().
		WithBaseURL(cfg.Meme.BaseURL).
		WithHTTPClient(&http.Client{Timeout: cfg.Meme.Timeout})

	registry.RegisterTool("add_numbers", mathtool.NewAddTool())
	registry.RegisterTool("generate_meme", meme.NewGenerateMemeTool(client))
	registry.RegisterTool("validate", validate.NewOwnerTool(cfg.Auth.OwnerNumber))

	// The bearer gate fronts the whole transport: unauthenticated requests
	// never reach the MCP layer.
	gate := auth.NewGate(cfg.Auth.Token, "meme-client")

	streamable := server.NewStreamableHTTPServer(
		mcpServer,
		server.WithEndpointPath("/mcp"),
	)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: gate.Middleware(streamable),
	}

	go func() {
		log.Info("Server started, waiting for requests...", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server error", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Shutdown error", "error", err)
	}

	log.Info("Server shutdown complete")
}
