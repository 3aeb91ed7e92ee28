package mcpserver

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/chayan2009/fraud-mcp/internal/samples"
)

// NewMCPServer creates a configured MCP server with the fraud assessment
// tools registered against the given sample store.
func NewMCPServer(store *samples.Store, logger *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("fraud-mcp", "1.0.0")
	h := NewHandlers(store, logger)

	s.AddTool(ToolAssessTransaction, h.HandleAssessTransaction)
	s.AddTool(ToolAssessTransactionByID, h.HandleAssessTransactionByID)

	return s
}
