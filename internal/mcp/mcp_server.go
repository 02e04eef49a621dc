// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/texttuner/texttuner/internal/contract"
)

// NewMCPServer initializes and configures the Texttuner MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, store contract.HistoryStore) *server.MCPServer {
	s := server.NewMCPServer(
		"Texttuner Style Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		store:   store,
	}

	// --- 1. Tool: analyze_text ---
	s.AddTool(mcp.NewTool("analyze_text",
		mcp.WithDescription("Analyze Russian text style metrics and score them against a target style profile."),
		mcp.WithString("text", mcp.Description("The Russian text to analyze."), mcp.Required()),
		mcp.WithString("style", mcp.Description("Target style profile. Defaults to the configured style."), mcp.Enum("scientific", "literary", "official-business", "colloquial")),
	), h.handleAnalyzeText)

	// --- 2. Tool: adapt_text ---
	s.AddTool(mcp.NewTool("adapt_text",
		mcp.WithDescription("Rewrite Russian text toward a target style using rule-based substitutions."),
		mcp.WithString("text", mcp.Description("The Russian text to adapt."), mcp.Required()),
		mcp.WithString("style", mcp.Description("Target style profile. Defaults to the configured style."), mcp.Enum("scientific", "literary", "official-business", "colloquial")),
	), h.handleAdaptText)

	// --- 3. Tool: suggest_synonyms ---
	s.AddTool(mcp.NewTool("suggest_synonyms",
		mcp.WithDescription("Suggest style-appropriate synonyms for a single Russian word."),
		mcp.WithString("word", mcp.Description("The word to look up."), mcp.Required()),
		mcp.WithString("style", mcp.Description("Target style profile. Defaults to the configured style."), mcp.Enum("scientific", "literary", "official-business", "colloquial")),
	), h.handleSuggestSynonyms)

	// --- 4. Tool: list_styles ---
	s.AddTool(mcp.NewTool("list_styles",
		mcp.WithDescription("List the configured style profiles with their metric targets, weights and tolerances."),
	), h.handleListStyles)

	return s
}

// StartMCPServer starts the Texttuner MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, store contract.HistoryStore) error {
	s := NewMCPServer(baseCfg, store)
	return server.ServeStdio(s)
}
