package analysis

import (
	"strings"

	"github.com/debatelab/debate-api/internal/domain"
)

// detectFallacies scans the lowercased argument text against the rule
// table and returns the findings in rule order.
//
// Matching is plain substring containment. Each rule fires at most once
// regardless of how many of its trigger phrases appear, and rules are
// independent of each other. Detection is deterministic: identical text
// always yields identical, order-stable findings.
func detectFallacies(lowered string, rules []FallacyRule) []domain.FallacyFinding {
	findings := []domain.FallacyFinding{}

	for _, rule := range rules {
		for _, trigger := range rule.Triggers {
			if strings.Contains(lowered, trigger) {
				findings = append(findings, domain.FallacyFinding{
					Type:        rule.Type,
					Description: rule.Description,
					Suggestion:  rule.Suggestion,
				})
				break
			}
		}
	}

	return findings
}
