// Fraud MCP Server - Exposes rule-based transaction risk scoring as MCP tools for LLMs
package main

import (
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/chayan2009/fraud-mcp/internal/config"
	"github.com/chayan2009/fraud-mcp/internal/logging"
	"github.com/chayan2009/fraud-mcp/internal/mcpserver"
	"github.com/chayan2009/fraud-mcp/internal/samples"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New(config.DefaultLogLevel, config.DefaultLogFormat, os.Stderr).
			Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Logs go to stderr; stdout is the MCP protocol stream.
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	store, err := samples.Load(cfg.SampleDataPath)
	if err != nil {
		// Fatal: the by-id tool cannot serve without the sample set.
		logger.Error("failed to load sample transactions", "path", cfg.SampleDataPath, "error", err)
		os.Exit(1)
	}

	logger.Info("starting fraud MCP server",
		"sample_data_path", cfg.SampleDataPath,
		"sample_count", store.Len(),
	)

	s := mcpserver.NewMCPServer(store, logger)
	if err := server.ServeStdio(s); err != nil {
		logger.Error("MCP server error", "error", err)
		os.Exit(1)
	}
}
