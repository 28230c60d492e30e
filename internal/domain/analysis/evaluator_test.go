package analysis

import (
	"strings"
	"testing"
)

func TestEvaluateStrongArgument(t *testing.T) {
	t.Parallel()
	evaluator := NewDefaultEvaluator()

	// 14 words, contains "research"/"studies" and "because", no triggers.
	feedback := evaluator.Evaluate(
		"Homework is good because research shows it improves retention and discipline over many studies.")

	if !feedback.Structure.HasClaim {
		t.Error("Expected HasClaim for a 14-word argument")
	}
	if !feedback.Structure.HasEvidence {
		t.Error("Expected HasEvidence from the research marker")
	}
	if !feedback.Structure.HasReasoning {
		t.Error("Expected HasReasoning from the because marker")
	}
	if feedback.Structure.StructureScore != 3 {
		t.Errorf("Expected structure score 3, got %d", feedback.Structure.StructureScore)
	}
	if len(feedback.Fallacies) != 0 {
		t.Errorf("Expected no fallacies, got %d", len(feedback.Fallacies))
	}
	if feedback.OverallScore != 100 {
		t.Errorf("Expected overall score 100, got %d", feedback.OverallScore)
	}
}

func TestEvaluateFallaciousArgument(t *testing.T) {
	t.Parallel()
	evaluator := NewDefaultEvaluator()

	feedback := evaluator.Evaluate("Everyone knows homework is always good.")

	if len(feedback.Fallacies) != 2 {
		t.Fatalf("Expected 2 fallacy findings, got %d", len(feedback.Fallacies))
	}
	if feedback.Fallacies[0].Type != "Appeal to Common Belief" {
		t.Errorf("Expected first finding Appeal to Common Belief, got %q", feedback.Fallacies[0].Type)
	}
	if feedback.Fallacies[1].Type != "False Dichotomy" {
		t.Errorf("Expected second finding False Dichotomy, got %q", feedback.Fallacies[1].Type)
	}

	// 6 words, no evidence or reasoning markers: base 70, penalty 10.
	if feedback.OverallScore != 60 {
		t.Errorf("Expected overall score 60, got %d", feedback.OverallScore)
	}
}

func TestEvaluateScoreAlwaysInRange(t *testing.T) {
	t.Parallel()
	evaluator := NewDefaultEvaluator()

	texts := []string{
		"",
		"short",
		"always never everyone knows everybody says",
		strings.Repeat("word ", 200),
		"Research data statistics expert study because therefore thus since " + strings.Repeat("more ", 60),
	}

	for _, text := range texts {
		feedback := evaluator.Evaluate(text)
		if feedback.OverallScore < 0 || feedback.OverallScore > 100 {
			t.Errorf("Overall score %d out of [0,100] for text %q", feedback.OverallScore, text)
		}
		if err := feedback.Validate(); err != nil {
			t.Errorf("Feedback failed validation for text %q: %v", text, err)
		}
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	t.Parallel()
	evaluator := NewDefaultEvaluator()
	text := "Everyone knows that school uniforms always help because studies prove it."

	first := evaluator.Evaluate(text)
	second := evaluator.Evaluate(text)

	if first.OverallScore != second.OverallScore {
		t.Errorf("Scores differ between runs: %d vs %d", first.OverallScore, second.OverallScore)
	}
	if len(first.Fallacies) != len(second.Fallacies) {
		t.Errorf("Finding counts differ between runs: %d vs %d", len(first.Fallacies), len(second.Fallacies))
	}
}
