package analysis

import "github.com/debatelab/debate-api/internal/domain"

// Feedback statements paired per structure signal. Each signal adds
// exactly one statement: a strength when present, an improvement when
// absent.
const (
	evidenceStrength    = "Good use of evidence to support your position"
	evidenceImprovement = "Include specific evidence, data, or expert opinions"

	reasoningStrength    = "Clear logical connection between points"
	reasoningImprovement = "Explain the reasoning that connects your evidence to your claim"

	lengthStrength    = "Comprehensive argument development"
	lengthImprovement = "Develop your argument with more detail and examples"
)

// composeFeedback combines the structure signals, fallacy findings and
// word count into a complete Feedback value.
//
// The score is computed in a fixed order for reproducibility:
//
//	base    = min(BaseScore + structure_score*StructurePointValue, MaxScore)
//	penalty = fallacy_count * FallacyPenalty
//	overall = max(base - penalty, 0)
//
// The resulting overall score is always within [0, MaxScore].
func composeFeedback(
	structure domain.ArgumentStructure,
	fallacies []domain.FallacyFinding,
	wordCount int,
	params *Params,
) domain.Feedback {
	baseScore := params.BaseScore + structure.StructureScore*params.StructurePointValue
	if baseScore > params.MaxScore {
		baseScore = params.MaxScore
	}

	overall := baseScore - len(fallacies)*params.FallacyPenalty
	if overall < 0 {
		overall = 0
	}

	strengths := []string{}
	improvements := []string{}

	if structure.HasEvidence {
		strengths = append(strengths, evidenceStrength)
	} else {
		improvements = append(improvements, evidenceImprovement)
	}

	if structure.HasReasoning {
		strengths = append(strengths, reasoningStrength)
	} else {
		improvements = append(improvements, reasoningImprovement)
	}

	if wordCount > params.ComprehensiveWordThreshold {
		strengths = append(strengths, lengthStrength)
	} else {
		improvements = append(improvements, lengthImprovement)
	}

	return domain.Feedback{
		OverallScore: overall,
		Strengths:    strengths,
		Improvements: improvements,
		Fallacies:    fallacies,
		Structure:    structure,
		Suggestions:  params.Suggestions,
	}
}
