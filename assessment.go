package tradebook

import (
	"fmt"
	"time"
)

// AssessmentType names the occasion of an assessment.
type AssessmentType string

const (
	AssessEntry             AssessmentType = "entry"
	AssessReEvaluation      AssessmentType = "re-evaluation"
	AssessTrim              AssessmentType = "trim"
	AssessHedge             AssessmentType = "hedge"
	AssessEmergencyBackfill AssessmentType = "emergency-backfill"
)

// ParseAssessmentType parses an assessment type.
func ParseAssessmentType(s string) (AssessmentType, error) {
	switch AssessmentType(s) {
	case AssessEntry, AssessReEvaluation, AssessTrim, AssessHedge, AssessEmergencyBackfill:
		return AssessmentType(s), nil
	default:
		return "", fmt.Errorf("unknown assessment type: %q", s)
	}
}

// AssessmentStatus is the lifecycle state of an assessment record.
type AssessmentStatus string

const (
	AssessmentDraft       AssessmentStatus = "draft"
	AssessmentSubmitted   AssessmentStatus = "submitted"
	AssessmentRecommended AssessmentStatus = "recommended"
)

// ParseAssessmentStatus parses an assessment status.
func ParseAssessmentStatus(s string) (AssessmentStatus, error) {
	switch AssessmentStatus(s) {
	case AssessmentDraft, AssessmentSubmitted, AssessmentRecommended:
		return AssessmentStatus(s), nil
	default:
		return "", fmt.Errorf("unknown assessment status: %q", s)
	}
}

// Assessment is one application of the engine to one asset at one point in
// time. It is an append-only audit record: outputs are always derived from
// the embedded Input by Evaluate and are never edited on their own.
type Assessment struct {
	ID           ID             `json:"id"`
	AssetID      ID             `json:"assetId"`
	TriggerLogID ID             `json:"triggerLogId,omitempty"`
	Type         AssessmentType `json:"type"`

	Input

	OutcomeTier            OutcomeTier            `json:"outcomeTier"`
	RecommendationType     RecommendationType     `json:"recommendationType"`
	RecommendationStrength RecommendationStrength `json:"recommendationStrength"`
	Boundary               string                 `json:"boundary,omitempty"`
	Explanation            string                 `json:"explanation,omitempty"`

	Status        AssessmentStatus `json:"status"`
	Emergency     bool             `json:"emergency"`
	BackfillDueAt *time.Time       `json:"backfillDueAt,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// AppendAssessment evaluates the questionnaire and appends the resulting
// assessment. The stored outputs come from Evaluate, never from the caller.
func (s *Store) AppendAssessment(a Assessment, now time.Time) (*Assessment, error) {
	if a.AssetID == "" {
		return nil, domainErrorf("assessment requires an asset")
	}
	if s.Asset(a.AssetID) == nil {
		return nil, domainErrorf("assessment refers to unknown asset %q", a.AssetID)
	}
	if a.Type == "" {
		a.Type = AssessReEvaluation
	}
	if _, err := ParseAssessmentType(string(a.Type)); err != nil {
		return nil, domainErrorf("cannot append assessment: %v", err)
	}
	if a.ID == "" {
		a.ID = NewID("as")
	}

	a.Input = a.Input.WithDefaults()
	rec := Evaluate(a.Input)
	a.OutcomeTier = rec.Tier
	a.RecommendationType = rec.Type
	a.RecommendationStrength = rec.Strength

	if a.Status == "" {
		a.Status = AssessmentRecommended
	}
	a.CreatedAt = now
	a.UpdatedAt = now
	s.Assessments = append(s.Assessments, a)
	return &s.Assessments[len(s.Assessments)-1], nil
}

// AssessmentsFor returns the assessments of one asset, most recent first.
func (s *Store) AssessmentsFor(assetID ID) []Assessment {
	var out []Assessment
	for _, a := range s.Assessments {
		if a.AssetID == assetID {
			out = append(out, a)
		}
	}
	sortByCreatedDesc(out, func(a Assessment) time.Time { return a.CreatedAt })
	return out
}

// RecentAssessments returns at most n assessments, most recent first.
func (s *Store) RecentAssessments(n int) []Assessment {
	out := make([]Assessment, len(s.Assessments))
	copy(out, s.Assessments)
	sortByCreatedDesc(out, func(a Assessment) time.Time { return a.CreatedAt })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// PendingBackfills returns the emergency draft assessments still waiting to
// be completed, most overdue first.
func (s *Store) PendingBackfills() []Assessment {
	var out []Assessment
	for _, a := range s.Assessments {
		if a.Emergency && a.Status == AssessmentDraft && a.BackfillDueAt != nil {
			out = append(out, a)
		}
	}
	sortByCreatedDesc(out, func(a Assessment) time.Time { return a.CreatedAt })
	return out
}
