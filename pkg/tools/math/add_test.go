package math

import (
	"context"
	"fmt"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/memetool/mcp-server-memegen/core"
	. "github.com/smartystreets/goconvey/convey"
)

func addRequest(args map[string]any) mcp.CallToolRequest {
	request := mcp.CallToolRequest{}
	request.Params.Name = "add_numbers"
	request.Params.Arguments = args
	return request
}

func resultText(result *mcp.CallToolResult) string {
	if len(result.Content) == 0 {
		return ""
	}
	if text, ok := mcp.AsTextContent(result.Content[0]); ok {
		return text.Text
	}
	return ""
}

func TestAddTool(t *testing.T) {
	Convey("Given the add_numbers tool", t, func() {
		tool := NewAddTool()

		Convey("It should implement the core.Tool interface", func() {
			So(tool, ShouldImplement, (*core.Tool)(nil))
		})

		Convey("It should have the correct name", func() {
			So(tool.Handle().Name, ShouldEqual, "add_numbers")
		})

		Convey("It should report the exact sum for numeric pairs", func() {
			cases := []struct{ a, b float64 }{
				{1, 2},
				{2.5, 4},
				{-3, 3},
				{0.1, 0.2},
				{1e10, 1},
			}

			for _, c := range cases {
				result, err := tool.Handler(context.Background(), addRequest(map[string]any{
					"number1": c.a,
					"number2": c.b,
				}))
				So(err, ShouldBeNil)
				So(result.IsError, ShouldBeFalse)
				So(resultText(result), ShouldEqual,
					fmt.Sprintf("The sum of %v and %v is %v", c.a, c.b, c.a+c.b))
			}
		})

		Convey("A missing argument yields an error result", func() {
			result, err := tool.Handler(context.Background(), addRequest(map[string]any{
				"number1": 1.0,
			}))
			So(err, ShouldBeNil)
			So(result.IsError, ShouldBeTrue)
		})

		Convey("A non-numeric argument yields an error result", func() {
			result, err := tool.Handler(context.Background(), addRequest(map[string]any{
				"number1": "one",
				"number2": 2.0,
			}))
			So(err, ShouldBeNil)
			So(result.IsError, ShouldBeTrue)
		})
	})
}
