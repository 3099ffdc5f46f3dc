package score

import "math"

// Rubric bounds.
const (
	MaxScore = 5.0

	// InteractiveBudget is the marker count above which engagement is capped.
	InteractiveBudget = 60
	overBudgetCap     = 2.0
)

// ObjectivesScore rewards three to seven objectives; eight or more reads
// as unfocused.
func ObjectivesScore(objectives int) float64 {
	switch {
	case objectives <= 0:
		return 0
	case objectives == 1:
		return 2
	case objectives == 2:
		return 3
	case objectives <= 7:
		return 5
	default:
		return 4
	}
}

// StructureScore is one point per section up to five.
func StructureScore(sections int) float64 {
	return clamp(float64(sections))
}

// ScaffoldingScore scales the ratio of callouts and accordions to sections.
func ScaffoldingScore(scaffolding, sections int) float64 {
	if sections <= 0 {
		return 0
	}
	return clamp(MaxScore * float64(scaffolding) / float64(sections))
}

// EngagementScore rates interactive markers, with a bonus for variety and
// a cap when the page carries more widgets than the budget.
func EngagementScore(markers, kinds int) float64 {
	var score float64
	switch {
	case markers <= 0:
		score = 1
	case markers <= 2:
		score = 3
	default:
		score = 4
	}
	if kinds >= 2 {
		score++
	}
	if markers > InteractiveBudget {
		score = math.Min(score, overBudgetCap)
	}
	return clamp(score)
}

// AssessmentScore rates knowledge checks: example callouts, accordions
// and flashcards.
func AssessmentScore(checks int) float64 {
	switch {
	case checks <= 0:
		return 1
	case checks == 1:
		return 3
	case checks <= 3:
		return 4
	default:
		return 5
	}
}

// ComplianceScore starts at five and deducts for guardrail findings,
// missing structural markers and a missing lang attribute.
func ComplianceScore(errors, warnings, missingMarkers int, hasLang bool) float64 {
	score := MaxScore
	score -= 2 * float64(min(errors, 2))
	score -= 0.5 * float64(warnings)
	score -= float64(missingMarkers)
	if !hasLang {
		score -= 0.5
	}
	return clamp(score)
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(MaxScore, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
