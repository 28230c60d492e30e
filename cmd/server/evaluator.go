package main

import (
	"github.com/debatelab/debate-api/internal/config"
	"github.com/debatelab/debate-api/internal/domain/analysis"
)

// buildEvaluator constructs the argument evaluator, applying any marker
// or threshold overrides from configuration onto the default parameters.
func buildEvaluator(cfg config.AnalysisConfig) analysis.Evaluator {
	params := analysis.NewDefaultParams()

	if cfg.ClaimWordThreshold > 0 {
		params.ClaimWordThreshold = cfg.ClaimWordThreshold
	}
	if cfg.ComprehensiveWordThreshold > 0 {
		params.ComprehensiveWordThreshold = cfg.ComprehensiveWordThreshold
	}
	if len(cfg.EvidenceMarkers) > 0 {
		params.EvidenceMarkers = cfg.EvidenceMarkers
	}
	if len(cfg.ReasoningMarkers) > 0 {
		params.ReasoningMarkers = cfg.ReasoningMarkers
	}

	return analysis.NewEvaluatorWithParams(params)
}
