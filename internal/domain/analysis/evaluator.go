package analysis

import (
	"strings"

	"github.com/debatelab/debate-api/internal/domain"
)

// Evaluator defines the interface for argument evaluation.
type Evaluator interface {
	// Evaluate runs the full scoring pipeline over the argument text and
	// returns the composed feedback. The same text always produces the
	// same feedback.
	Evaluate(argumentText string) domain.Feedback
}

// defaultEvaluator is the standard implementation of the Evaluator interface.
type defaultEvaluator struct {
	params *Params
}

// NewDefaultEvaluator creates a new Evaluator with default parameters.
func NewDefaultEvaluator() Evaluator {
	return &defaultEvaluator{
		params: NewDefaultParams(),
	}
}

// NewEvaluatorWithParams creates a new Evaluator with custom parameters.
// This is the seam used by tests to substitute rule tables.
func NewEvaluatorWithParams(params *Params) Evaluator {
	return &defaultEvaluator{
		params: params,
	}
}

// Evaluate implements the Evaluator interface. The fallacy detector and
// structure analyzer both read the same lowercased text; their outputs
// feed the score composer.
func (e *defaultEvaluator) Evaluate(argumentText string) domain.Feedback {
	lowered := strings.ToLower(argumentText)
	wordCount := countWords(lowered)

	fallacies := detectFallacies(lowered, e.params.FallacyRules)
	structure := analyzeStructure(lowered, wordCount, e.params)

	return composeFeedback(structure, fallacies, wordCount, e.params)
}
