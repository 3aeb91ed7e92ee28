package mcpserver

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chayan2009/fraud-mcp/internal/risk"
	"github.com/chayan2009/fraud-mcp/internal/samples"
)

// --- Test helpers ---

const testSamples = `[
  {
    "transactionId": "TXN-1001",
    "amount": 1250,
    "currency": "USD",
    "merchantCountry": "US",
    "userCountry": "US",
    "channel": "UPI",
    "timestamp": "2025-11-03T09:14:22Z"
  },
  {
    "transactionId": "TXN-1002",
    "amount": 7800.5,
    "currency": "USD",
    "merchantCountry": "US",
    "userCountry": "IN",
    "channel": "CARD",
    "timestamp": "2025-11-03T11:47:05Z"
  }
]`

func newTestHandlers(t *testing.T) *Handlers {
	t.Helper()
	store, err := samples.Parse([]byte(testSamples))
	require.NoError(t, err)
	return NewHandlers(store, nil)
}

func makeRequest(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	if args == nil {
		args = map[string]any{}
	}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content, "expected at least one content block")
	tc, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])
	return tc.Text
}

func decodeAssessment(t *testing.T, result *mcp.CallToolResult) risk.Assessment {
	t.Helper()
	var a risk.Assessment
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &a))
	return a
}

func transactionArgs() map[string]any {
	return map[string]any{
		"transaction": map[string]any{
			"transactionId":   "tx-900",
			"amount":          6000.0,
			"currency":        "USD",
			"merchantCountry": "US",
			"userCountry":     "IN",
			"channel":         "CARD",
			"timestamp":       "2025-11-03T11:47:05Z",
		},
	}
}

// ============================================================
// assess_transaction
// ============================================================

func TestHandleAssessTransaction_AllRules(t *testing.T) {
	h := newTestHandlers(t)

	result, err := h.HandleAssessTransaction(context.Background(), makeRequest(transactionArgs()))
	require.NoError(t, err)
	require.False(t, result.IsError)

	a := decodeAssessment(t, result)
	assert.Equal(t, "tx-900", a.TransactionID)
	assert.Equal(t, 90, a.RiskScore)
	assert.Equal(t, risk.LevelHigh, a.RiskLevel)
	assert.Equal(t, []string{
		risk.ReasonHighAmount,
		risk.ReasonCrossBorder,
		risk.ReasonCardChannel,
	}, a.Reasons)
	assert.Equal(t, risk.RecommendationHigh, a.Recommendation)
}

func TestHandleAssessTransaction_LowRiskEmptyReasons(t *testing.T) {
	h := newTestHandlers(t)
	args := map[string]any{
		"transaction": map[string]any{
			"transactionId":   "tx-901",
			"amount":          1000.0,
			"currency":        "USD",
			"merchantCountry": "US",
			"userCountry":     "US",
			"channel":         "UPI",
			"timestamp":       "2025-11-03T09:14:22Z",
		},
	}

	result, err := h.HandleAssessTransaction(context.Background(), makeRequest(args))
	require.NoError(t, err)
	require.False(t, result.IsError)

	// Reasons must serialize as an empty array, not null.
	assert.Contains(t, resultText(t, result), `"reasons":[]`)

	a := decodeAssessment(t, result)
	assert.Equal(t, 10, a.RiskScore)
	assert.Equal(t, risk.LevelLow, a.RiskLevel)
	assert.Equal(t, risk.RecommendationLow, a.Recommendation)
}

func TestHandleAssessTransaction_MissingObject(t *testing.T) {
	h := newTestHandlers(t)

	result, err := h.HandleAssessTransaction(context.Background(), makeRequest(nil))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleAssessTransaction_InvalidChannel(t *testing.T) {
	h := newTestHandlers(t)
	args := transactionArgs()
	args["transaction"].(map[string]any)["channel"] = "CRYPTO"

	result, err := h.HandleAssessTransaction(context.Background(), makeRequest(args))
	require.NoError(t, err)
	require.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "invalid channel")
}

func TestHandleAssessTransaction_MissingField(t *testing.T) {
	h := newTestHandlers(t)
	args := transactionArgs()
	delete(args["transaction"].(map[string]any), "amount")

	result, err := h.HandleAssessTransaction(context.Background(), makeRequest(args))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleAssessTransaction_BureauSignals(t *testing.T) {
	h := newTestHandlers(t)
	args := map[string]any{
		"transaction": map[string]any{
			"transactionId":   "tx-902",
			"amount":          100.0,
			"currency":        "INR",
			"merchantCountry": "IN",
			"userCountry":     "IN",
			"channel":         "WALLET",
			"timestamp":       "2025-11-04T06:02:41Z",
			"sourceBureauData": map[string]any{
				"status": "12",
			},
		},
	}

	result, err := h.HandleAssessTransaction(context.Background(), makeRequest(args))
	require.NoError(t, err)
	require.False(t, result.IsError)

	a := decodeAssessment(t, result)
	assert.Equal(t, 5, a.RiskScore)
	assert.Equal(t, risk.LevelLow, a.RiskLevel)
	assert.Equal(t, []string{risk.ReasonBureauStatus}, a.Reasons)
}

// ============================================================
// assess_transaction_by_id
// ============================================================

func TestHandleAssessTransactionByID_Found(t *testing.T) {
	h := newTestHandlers(t)

	result, err := h.HandleAssessTransactionByID(context.Background(),
		makeRequest(map[string]any{"transactionId": "TXN-1002"}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	a := decodeAssessment(t, result)
	assert.Equal(t, "TXN-1002", a.TransactionID)
	assert.Equal(t, 90, a.RiskScore)
	assert.Equal(t, risk.LevelHigh, a.RiskLevel)
}

func TestHandleAssessTransactionByID_MatchesDirectEvaluate(t *testing.T) {
	h := newTestHandlers(t)

	result, err := h.HandleAssessTransactionByID(context.Background(),
		makeRequest(map[string]any{"transactionId": "TXN-1001"}))
	require.NoError(t, err)

	viaTool := decodeAssessment(t, result)

	tx, ok := h.store.FindByID("TXN-1001")
	require.True(t, ok)
	direct := risk.Evaluate(tx)

	assert.Equal(t, direct, viaTool)
}

func TestHandleAssessTransactionByID_NotFound(t *testing.T) {
	h := newTestHandlers(t)

	result, err := h.HandleAssessTransactionByID(context.Background(),
		makeRequest(map[string]any{"transactionId": "TXN-404"}))
	require.NoError(t, err)

	// Not-found is a normal payload the agent branches on, not a tool error.
	require.False(t, result.IsError)

	var payload map[string]string
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &payload))
	assert.Equal(t, "Transaction not found", payload["error"])
	assert.Equal(t, "TXN-404", payload["transactionId"])
}

func TestHandleAssessTransactionByID_MissingID(t *testing.T) {
	h := newTestHandlers(t)

	result, err := h.HandleAssessTransactionByID(context.Background(), makeRequest(nil))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}
