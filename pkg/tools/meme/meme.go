// Package meme exposes the meme-generation tool.
package meme

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/memetool/mcp-server-memegen/core"
	"github.com/memetool/mcp-server-memegen/pkg/memegen"
)

// GenerateMemeTool turns a news topic into a meme via the memegen API.
type GenerateMemeTool struct {
	client *memegen.Client
	handle mcp.Tool
}

// NewGenerateMemeTool creates the generate_meme tool backed by the given client.
func NewGenerateMemeTool(client *memegen.Client) core.Tool {
	t := &GenerateMemeTool{client: client}

	t.handle = mcp.NewTool(
		"generate_meme",
		mcp.WithDescription("Generate a meme for a given topic by calling the meme generation API"),
		mcp.WithString(
			"topic",
			mcp.Required(),
			mcp.Description("Topic to search for news and generate a meme"),
		),
		mcp.WithNumber(
			"article_index",
			mcp.Description("Index of the news article to use"),
		),
	)
	return t
}

// Handle returns the tool's definition.
func (t *GenerateMemeTool) Handle() mcp.Tool {
	return t.handle
}

// Handler executes the tool. Upstream failures of every kind come back as
// tool output text; the handler itself never returns an error, so a broken
// upstream cannot take the server down.
func (t *GenerateMemeTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic, err := request.RequireString("topic")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if strings.TrimSpace(topic) == "" {
		return mcp.NewToolResultError("topic must not be empty"), nil
	}

	articleIndex := request.GetInt("article_index", 0)
	if articleIndex < 0 {
		return mcp.NewToolResultError("article_index must not be negative"), nil
	}

	meme, err := t.client.Generate(ctx, memegen.GenerateRequest{
		Topic:        topic,
		ArticleIndex: articleIndex,
	})
	if err != nil {
		log.Warn("Meme generation failed", "topic", topic, "error", err)
		return mcp.NewToolResultError(renderFailure(err)), nil
	}

	return mcp.NewToolResultText(renderMeme(topic, meme)), nil
}

// renderFailure maps each failure kind to its user-facing text. Logical
// failures get an "Error:" prefix; status and transport failures already
// carry a descriptive message.
func renderFailure(err error) string {
	var upstreamErr *memegen.UpstreamError
	if errors.As(err, &upstreamErr) {
		if upstreamErr.Kind == memegen.KindLogical {
			return "Error: " + upstreamErr.Message
		}
		return upstreamErr.Message
	}
	return fmt.Sprintf("meme generation failed: %v", err)
}

// renderMeme formats the success envelope into the multi-line text block.
// Absent optional fields render as empty rather than failing.
func renderMeme(topic string, m *memegen.Meme) string {
	var title, description, topText, bottomText string
	if m.Article != nil {
		title = deref(m.Article.Title)
		description = deref(m.Article.Description)
	}
	if m.Caption != nil {
		topText = deref(m.Caption.TopText)
		bottomText = deref(m.Caption.BottomText)
	}

	var b strings.Builder
	b.WriteString("**Meme Generated!**\n")
	b.WriteString(fmt.Sprintf("Topic: %s\n\n", topic))
	b.WriteString(fmt.Sprintf("Article: %s\n", title))
	b.WriteString(fmt.Sprintf("Description: %s\n", description))
	b.WriteString(fmt.Sprintf("Caption: %s / %s\n", topText, bottomText))
	b.WriteString(fmt.Sprintf("Meme URL: %s", deref(m.MemeURL)))
	return b.String()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
