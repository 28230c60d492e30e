package analysis

// FallacyRule is one entry in the fallacy detection table. A rule fires
// at most once per text: if any trigger phrase occurs in the lowercased
// argument, the rule contributes exactly one finding.
type FallacyRule struct {
	// Triggers are the lowercase phrases that activate the rule.
	Triggers []string

	// Type is the fallacy label shown to the learner.
	Type string

	// Description explains the flaw in plain language.
	Description string

	// Suggestion tells the learner how to correct it.
	Suggestion string
}

// Params defines all configurable inputs of the scoring pipeline.
// Evaluation rules are data, not code: new fallacy rules or marker words
// are added here without touching the detection logic.
type Params struct {
	// FallacyRules are evaluated in order; finding order follows rule order.
	FallacyRules []FallacyRule

	// ClaimWordThreshold is the word count a text must strictly exceed
	// to count as containing a claim.
	ClaimWordThreshold int

	// EvidenceMarkers and ReasoningMarkers are matched as lowercase
	// substrings to detect the corresponding structure signals.
	EvidenceMarkers  []string
	ReasoningMarkers []string

	// Scoring constants.
	BaseScore           int // starting score before structure bonus
	StructurePointValue int // score added per detected structure signal
	MaxScore            int // upper clamp for the overall score
	FallacyPenalty      int // score subtracted per fallacy finding

	// ComprehensiveWordThreshold is the word count a text must strictly
	// exceed to earn the "comprehensive development" strength.
	ComprehensiveWordThreshold int

	// Suggestions are returned verbatim with every feedback.
	Suggestions []string
}

// NewDefaultParams creates a new Params instance with the platform's
// built-in rule tables and scoring constants.
func NewDefaultParams() *Params {
	return &Params{
		FallacyRules: []FallacyRule{
			{
				Triggers:    []string{"everyone knows", "everybody says"},
				Type:        "Appeal to Common Belief",
				Description: "Using popularity as evidence for truth",
				Suggestion:  "Provide specific evidence rather than claiming universal agreement",
			},
			{
				Triggers:    []string{"always", "never"},
				Type:        "False Dichotomy",
				Description: "Presenting only two options when more exist",
				Suggestion:  "Consider nuanced positions and alternative solutions",
			},
		},

		ClaimWordThreshold: 10,
		EvidenceMarkers:    []string{"study", "research", "data", "statistics", "expert"},
		ReasoningMarkers:   []string{"because", "therefore", "thus", "since"},

		BaseScore:           70,
		StructurePointValue: 10,
		MaxScore:            100,
		FallacyPenalty:      5,

		ComprehensiveWordThreshold: 50,

		Suggestions: []string{
			"Practice the Claim-Evidence-Warrant structure",
			"Research opposing viewpoints to strengthen your argument",
			"Use specific examples to illustrate your points",
		},
	}
}
