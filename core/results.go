package core

import (
	"context"

	"github.com/texttuner/texttuner/internal/contract"
	"github.com/texttuner/texttuner/schema"
)

// GetAnalysisResult runs the full analysis pipeline for the configured input
// and returns the result without printing it.
func GetAnalysisResult(ctx context.Context, cfg *contract.Config) (*schema.AnalysisResult, error) {
	analyzer, cleanup, err := NewAnalyzerFromConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	text, sourcePath, err := resolveInputText(cfg)
	if err != nil {
		return nil, err
	}

	return buildAnalysisResult(analyzer, cfg, text, sourcePath)
}

// GetAdaptationResult analyzes the configured input and rewrites it toward
// the target style, returning both without printing.
func GetAdaptationResult(ctx context.Context, cfg *contract.Config) (*schema.AdaptationResult, error) {
	analyzer, cleanup, err := NewAnalyzerFromConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	text, sourcePath, err := resolveInputText(cfg)
	if err != nil {
		return nil, err
	}

	analysis, err := buildAnalysisResult(analyzer, cfg, text, sourcePath)
	if err != nil {
		return nil, err
	}

	adapted, applied := AdaptText(text, analysis.Metrics, cfg.TargetStyle)
	return &schema.AdaptationResult{
		Original:     text,
		Adapted:      adapted,
		AppliedRules: applied,
		Analysis:     analysis,
	}, nil
}
