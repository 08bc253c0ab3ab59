package tradebook

import "fmt"

// OutcomeTier is the letter grade an assessment lands on.
type OutcomeTier string

const (
	TierA OutcomeTier = "A"
	TierB OutcomeTier = "B"
	TierC OutcomeTier = "C"
	TierD OutcomeTier = "D"
)

// ParseOutcomeTier parses an outcome tier.
func ParseOutcomeTier(s string) (OutcomeTier, error) {
	switch OutcomeTier(s) {
	case TierA, TierB, TierC, TierD:
		return OutcomeTier(s), nil
	default:
		return "", fmt.Errorf("unknown outcome tier: %q", s)
	}
}

// RecommendationType is the concrete move the engine recommends.
type RecommendationType string

const (
	RecHold       RecommendationType = "hold"
	RecWait       RecommendationType = "wait-with-conditions"
	RecReduce     RecommendationType = "reduce-exposure"
	RecTakeProfit RecommendationType = "take-profit-staged"
	RecHedge      RecommendationType = "protective-hedge"
)

// ParseRecommendationType parses a recommendation type.
func ParseRecommendationType(s string) (RecommendationType, error) {
	switch RecommendationType(s) {
	case RecHold, RecWait, RecReduce, RecTakeProfit, RecHedge:
		return RecommendationType(s), nil
	default:
		return "", fmt.Errorf("unknown recommendation type: %q", s)
	}
}

// RecommendationStrength qualifies how binding the recommendation is.
type RecommendationStrength string

const (
	StrengthSuggest       RecommendationStrength = "suggest"
	StrengthStrongSuggest RecommendationStrength = "strong-suggest"
	StrengthMustAssess    RecommendationStrength = "must-assess-before-adding-exposure"
)

// ParseRecommendationStrength parses a recommendation strength.
func ParseRecommendationStrength(s string) (RecommendationStrength, error) {
	switch RecommendationStrength(s) {
	case StrengthSuggest, StrengthStrongSuggest, StrengthMustAssess:
		return RecommendationStrength(s), nil
	default:
		return "", fmt.Errorf("unknown recommendation strength: %q", s)
	}
}
