package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cortexai/cosmosdb-mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

const (
	Name    = "cosmosdb-mcp-server"
	Version = "0.1.0"
)

// NewMCPServer registers every dispatcher tool on a fresh MCP server. The
// advertised input schema is the same one the dispatcher validates against.
func NewMCPServer(d *tools.Dispatcher) (*mcpserver.MCPServer, error) {
	s := mcpserver.NewMCPServer(Name, Version,
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithRecovery(),
	)

	for _, t := range d.Tools() {
		schema, err := json.Marshal(t.InputSchema())
		if err != nil {
			return nil, fmt.Errorf("marshal %s schema: %w", t.Name, err)
		}
		s.AddTool(mcp.NewToolWithRawSchema(t.Name, t.Description, schema), callHandler(d))
	}
	return s, nil
}

func callHandler(d *tools.Dispatcher) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res := d.Call(ctx, req.Params.Name, req.GetArguments())
		if res.IsError {
			return mcp.NewToolResultError(res.Text), nil
		}
		return mcp.NewToolResultText(res.Text), nil
	}
}
