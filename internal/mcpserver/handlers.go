package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/chayan2009/fraud-mcp/internal/risk"
	"github.com/chayan2009/fraud-mcp/internal/samples"
)

// Handlers holds the handler functions for each MCP tool.
type Handlers struct {
	store  *samples.Store
	logger *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(store *samples.Store, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{store: store, logger: logger}
}

// notFound is the structured payload returned when a transaction ID has no
// match in the sample store. It is a normal tool result, not a tool error,
// so the calling agent can branch on the presence of the error key.
type notFound struct {
	Error         string `json:"error"`
	TransactionID string `json:"transactionId"`
}

// HandleAssessTransaction validates and scores a caller-supplied transaction.
func (h *Handlers) HandleAssessTransaction(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, ok := req.GetArguments()["transaction"].(map[string]any)
	if !ok {
		return mcp.NewToolResultError("transaction object is required"), nil
	}

	tx, err := risk.ParseTransaction(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	assessment := risk.Evaluate(tx)
	h.logger.Debug("transaction assessed",
		"transaction_id", assessment.TransactionID,
		"risk_score", assessment.RiskScore,
		"risk_level", assessment.RiskLevel,
	)

	return resultJSON(assessment)
}

// HandleAssessTransactionByID resolves a sample transaction and scores it.
func (h *Handlers) HandleAssessTransactionByID(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("transactionId", "")
	if id == "" {
		return mcp.NewToolResultError("transactionId is required"), nil
	}

	tx, ok := h.store.FindByID(id)
	if !ok {
		h.logger.Debug("sample transaction not found", "transaction_id", id)
		return resultJSON(notFound{Error: "Transaction not found", TransactionID: id})
	}

	assessment := risk.Evaluate(tx)
	h.logger.Debug("sample transaction assessed",
		"transaction_id", assessment.TransactionID,
		"risk_score", assessment.RiskScore,
		"risk_level", assessment.RiskLevel,
	)

	return resultJSON(assessment)
}

// resultJSON serializes v as the JSON text payload of a successful tool call.
func resultJSON(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
