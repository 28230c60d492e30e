package analysis

import (
	"strings"

	"github.com/debatelab/debate-api/internal/domain"
)

// analyzeStructure evaluates the three independent structure signals over
// the lowercased argument text and returns them with their count.
//
// A claim is inferred from length alone: the whitespace-delimited word
// count must strictly exceed the claim threshold. Evidence and reasoning
// are inferred from marker words matched as substrings.
func analyzeStructure(lowered string, wordCount int, params *Params) domain.ArgumentStructure {
	structure := domain.ArgumentStructure{
		HasClaim:     wordCount > params.ClaimWordThreshold,
		HasEvidence:  containsAny(lowered, params.EvidenceMarkers),
		HasReasoning: containsAny(lowered, params.ReasoningMarkers),
	}

	for _, present := range []bool{structure.HasClaim, structure.HasEvidence, structure.HasReasoning} {
		if present {
			structure.StructureScore++
		}
	}

	return structure
}

// containsAny reports whether any of the markers occurs in the text.
func containsAny(text string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

// countWords returns the whitespace-delimited token count of the text.
func countWords(text string) int {
	return len(strings.Fields(text))
}
