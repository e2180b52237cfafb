// Package math exposes the arithmetic pass-through tool.
package math

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/memetool/mcp-server-memegen/core"
)

// AddTool adds two numbers and reports the sum as a sentence.
type AddTool struct {
	handle mcp.Tool
}

// NewAddTool creates the add_numbers tool.
func NewAddTool() core.Tool {
	t := &AddTool{}

	t.handle = mcp.NewTool(
		"add_numbers",
		mcp.WithDescription("Add two numbers together and return the result"),
		mcp.WithNumber(
			"number1",
			mcp.Required(),
			mcp.Description("First number to add"),
		),
		mcp.WithNumber(
			"number2",
			mcp.Required(),
			mcp.Description("Second number to add"),
		),
	)
	return t
}

// Handle returns the tool's definition.
func (t *AddTool) Handle() mcp.Tool {
	return t.handle
}

// Handler executes the tool. Type validation is the schema layer's job;
// the only failure mode here is a missing or non-numeric argument.
func (t *AddTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	number1, err := request.RequireFloat("number1")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	number2, err := request.RequireFloat("number2")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	sum := number1 + number2
	return mcp.NewToolResultText(fmt.Sprintf("The sum of %v and %v is %v", number1, number2, sum)), nil
}
