package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/texttuner/texttuner/core"
	"github.com/texttuner/texttuner/internal/contract"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	store   contract.HistoryStore
}

// requestConfig clones the base config with the request's text and style
// applied. Tool calls never touch files, only inline text.
func (h *toolHandler) requestConfig(request mcp.CallToolRequest) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()
	cfg.InputPath = ""
	cfg.Text = request.GetString("text", "")
	if cfg.Text == "" {
		return nil, fmt.Errorf("text is required")
	}

	if s := request.GetString("style", ""); s != "" {
		profile, err := cfg.Profile(s)
		if err != nil {
			return nil, err
		}
		cfg.TargetStyle = profile.Name
	}
	return cfg, nil
}

func (h *toolHandler) handleAnalyzeText(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.requestConfig(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid analysis parameters: %v", err)), nil
	}

	result, err := core.GetAnalysisResult(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleAdaptText(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.requestConfig(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid adaptation parameters: %v", err)), nil
	}

	result, err := core.GetAdaptationResult(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("adaptation failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleSuggestSynonyms(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	word := request.GetString("word", "")
	if word == "" {
		return mcp.NewToolResultError("word is required"), nil
	}

	cfg := h.baseCfg.Clone()
	if s := request.GetString("style", ""); s != "" {
		profile, err := cfg.Profile(s)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid style: %v", err)), nil
		}
		cfg.TargetStyle = profile.Name
	}

	response := map[string]any{
		"word":     word,
		"style":    cfg.TargetStyle,
		"synonyms": core.SuggestSynonyms(word, cfg.TargetStyle),
	}
	jsonData, _ := json.MarshalIndent(response, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListStyles(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	jsonData, _ := json.MarshalIndent(h.baseCfg.Profiles, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
