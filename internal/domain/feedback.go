package domain

import "errors"

// Common validation errors for Feedback
var (
	ErrScoreOutOfRange          = errors.New("overall score must be between 0 and 100")
	ErrStructureScoreOutOfRange = errors.New("structure score must be between 0 and 3")
	ErrStructureScoreMismatch   = errors.New("structure score must equal the count of detected structure signals")
)

// FallacyFinding is one detected instance of a named reasoning flaw in
// argument text, with a corrective suggestion for the learner.
type FallacyFinding struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Suggestion  string `json:"suggestion"`
}

// ArgumentStructure summarizes which structural signals were detected in
// an argument. StructureScore is always the count of true flags.
type ArgumentStructure struct {
	HasClaim       bool `json:"has_clear_claim"`
	HasEvidence    bool `json:"includes_evidence"`
	HasReasoning   bool `json:"shows_reasoning"`
	StructureScore int  `json:"structure_score"`
}

// Feedback is the derived evaluation of a single argument. It is embedded
// in a DebateSession and never recomputed after the session is stored.
type Feedback struct {
	OverallScore int               `json:"overall_score"`
	Strengths    []string          `json:"strengths"`
	Improvements []string          `json:"improvements"`
	Fallacies    []FallacyFinding  `json:"logical_fallacies"`
	Structure    ArgumentStructure `json:"argument_structure"`
	Suggestions  []string          `json:"suggestions"`
}

// Validate checks the Feedback invariants: the overall score is within
// [0,100], the structure score is within [0,3], and the structure score
// equals the number of detected structure signals.
func (f *Feedback) Validate() error {
	if f.OverallScore < 0 || f.OverallScore > 100 {
		return ErrScoreOutOfRange
	}

	if f.Structure.StructureScore < 0 || f.Structure.StructureScore > 3 {
		return ErrStructureScoreOutOfRange
	}

	count := 0
	for _, present := range []bool{f.Structure.HasClaim, f.Structure.HasEvidence, f.Structure.HasReasoning} {
		if present {
			count++
		}
	}
	if f.Structure.StructureScore != count {
		return ErrStructureScoreMismatch
	}

	return nil
}
