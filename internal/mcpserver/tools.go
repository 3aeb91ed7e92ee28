package mcpserver

import "github.com/mark3labs/mcp-go/mcp"

// Tool definitions for the fraud MCP server.
// Descriptions are what the LLM reads to decide which tool to use.

var ToolAssessTransaction = mcp.NewTool("assess_transaction",
	mcp.WithDescription(
		"Assess the fraud risk of a payment transaction. "+
			"Returns a risk score, a LOW/MEDIUM/HIGH risk level, the reasons that "+
			"contributed to the score, and a recommended action (allow, step-up "+
			"authentication, or block). The result is JSON for you to interpret, "+
			"not end-user text."),
	mcp.WithObject("transaction",
		mcp.Required(),
		mcp.Description(
			"The transaction record to score. Required keys: transactionId (string), "+
				"amount (number), currency (string), merchantCountry (string), "+
				"userCountry (string), channel (one of CARD, UPI, WALLET), timestamp "+
				"(string). Optional: sourceBureauData, an object of bureau signals "+
				"(special_comments and status are interpreted; other keys are ignored).")),
)

var ToolAssessTransactionByID = mcp.NewTool("assess_transaction_by_id",
	mcp.WithDescription(
		"Look up a transaction by its ID in the preloaded sample set and assess "+
			"its fraud risk. Returns the same JSON assessment as assess_transaction, "+
			"or {\"error\": \"Transaction not found\", \"transactionId\": ...} when no "+
			"sample matches — check for the error key before using the result."),
	mcp.WithString("transactionId",
		mcp.Required(),
		mcp.Description("The transaction ID to look up (e.g. 'TXN-1001')")),
)
