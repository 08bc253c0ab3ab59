package tradebook

import (
	"fmt"
	"time"
)

// Result is the outcome of validating a candidate store. Errors lists every
// failure found; validation never stops at the first one.
type Result struct {
	OK     bool
	Errors []FieldError
}

// Err converts the result into an error: nil when the store is valid.
func (r Result) Err() error {
	if r.OK {
		return nil
	}
	return &ValidationError{Errors: r.Errors}
}

type validator struct {
	errors []FieldError
}

func (v *validator) errf(path, format string, args ...any) {
	v.errors = append(v.errors, FieldError{Path: path, Message: fmt.Sprintf(format, args...)})
}

// Validate checks a candidate store against the schema: structural shape,
// required fields, enum membership, timestamps and cross-field rules. It is
// read-only, never panics, and reports the complete error list so all
// problems are visible at once.
func Validate(s *Store) Result {
	v := &validator{}
	if s == nil {
		v.errf("", "store is nil")
		return Result{OK: false, Errors: v.errors}
	}

	v.meta(s.Meta)

	if s.Assets == nil {
		v.errf("assets", "collection is missing")
	}
	if s.Positions == nil {
		v.errf("positions", "collection is missing")
	}
	if s.Assessments == nil {
		v.errf("assessments", "collection is missing")
	}
	if s.Triggers == nil {
		v.errf("triggers", "collection is missing")
	}
	if s.TriggerLogs == nil {
		v.errf("triggerLogs", "collection is missing")
	}
	if s.Actions == nil {
		v.errf("actions", "collection is missing")
	}
	if s.Evidence == nil {
		v.errf("evidence", "collection is missing")
	}
	if s.Reviews == nil {
		v.errf("reviews", "collection is missing")
	}

	for i, a := range s.Assets {
		v.asset(fmt.Sprintf("assets[%d]", i), a)
	}
	for i, p := range s.Positions {
		v.position(fmt.Sprintf("positions[%d]", i), p, s)
	}
	for i, a := range s.Assessments {
		v.assessment(fmt.Sprintf("assessments[%d]", i), a, s)
	}
	for i, t := range s.Triggers {
		v.trigger(fmt.Sprintf("triggers[%d]", i), t, s)
	}
	for i, l := range s.TriggerLogs {
		v.triggerLog(fmt.Sprintf("triggerLogs[%d]", i), l, s)
	}
	for i, a := range s.Actions {
		v.action(fmt.Sprintf("actions[%d]", i), a, s)
	}
	for i, e := range s.Evidence {
		v.evidence(fmt.Sprintf("evidence[%d]", i), e, s)
	}
	for i, r := range s.Reviews {
		v.review(fmt.Sprintf("reviews[%d]", i), r, s)
	}

	return Result{OK: len(v.errors) == 0, Errors: v.errors}
}

func (v *validator) meta(m Meta) {
	if m.Version == "" {
		v.errf("meta.version", "is required")
	}
	v.timestamp("meta.createdAt", m.CreatedAt)
	v.timestamp("meta.updatedAt", m.UpdatedAt)
	switch m.Lang {
	case LangZH, LangEN:
	default:
		v.errf("meta.lang", "unknown language: %q", m.Lang)
	}
	if m.Config == nil {
		v.errf("meta.config", "is required")
		return
	}
	v.stringList("meta.config.assetStatuses", m.Config.AssetStatuses)
	v.stringList("meta.config.buildReasons", m.Config.BuildReasons)
	v.stringList("meta.config.industries", m.Config.Industries)
}

func (v *validator) stringList(path string, xs []string) {
	if xs == nil {
		v.errf(path, "is required")
		return
	}
	for i, x := range xs {
		if x == "" {
			v.errf(fmt.Sprintf("%s[%d]", path, i), "must not be empty")
		}
	}
}

func (v *validator) timestamp(path string, t time.Time) {
	if t.IsZero() {
		v.errf(path, "timestamp is required")
	}
}

func (v *validator) id(path string, id ID) {
	if id == "" {
		v.errf(path, "id is required")
	}
}

// assetRef checks a mandatory non-owning reference to an asset.
func (v *validator) assetRef(path string, id ID, s *Store) {
	if id == "" {
		v.errf(path, "asset reference is required")
		return
	}
	if s.Asset(id) == nil {
		v.errf(path, "unknown asset %q", id)
	}
}

func (v *validator) asset(path string, a Asset) {
	v.id(path+".id", a.ID)
	if a.Symbol == "" {
		v.errf(path+".symbol", "is required")
	}
	if _, err := ParseAssetStatus(string(a.Status)); err != nil {
		v.errf(path+".status", "%v", err)
	}
	v.timestamp(path+".createdAt", a.CreatedAt)
	v.timestamp(path+".updatedAt", a.UpdatedAt)
	if a.ClosedAt != nil && a.Status != StatusCleared {
		v.errf(path+".closedAt", "set but status is %q, not %q", a.Status, StatusCleared)
	}
	if a.OpenedAt != nil && a.Status != StatusHolding && a.Status != StatusCleared {
		v.errf(path+".openedAt", "set but status is %q, expected %q or %q", a.Status, StatusHolding, StatusCleared)
	}
	for i, r := range a.BuildReasons {
		if r == "" {
			v.errf(fmt.Sprintf("%s.buildReasons[%d]", path, i), "must not be empty")
		}
	}
}

func (v *validator) assessment(path string, a Assessment, s *Store) {
	v.id(path+".id", a.ID)
	v.assetRef(path+".assetId", a.AssetID, s)
	if a.TriggerLogID != "" && !hasTriggerLog(s, a.TriggerLogID) {
		v.errf(path+".triggerLogId", "unknown trigger log %q", a.TriggerLogID)
	}
	if _, err := ParseAssessmentType(string(a.Type)); err != nil {
		v.errf(path+".type", "%v", err)
	}
	if _, err := ParseAssessmentStatus(string(a.Status)); err != nil {
		v.errf(path+".status", "%v", err)
	}
	v.timestamp(path+".createdAt", a.CreatedAt)
	v.timestamp(path+".updatedAt", a.UpdatedAt)

	v.input(path, a.Input)

	if _, err := ParseOutcomeTier(string(a.OutcomeTier)); err != nil {
		v.errf(path+".outcomeTier", "%v", err)
	}
	if _, err := ParseRecommendationType(string(a.RecommendationType)); err != nil {
		v.errf(path+".recommendationType", "%v", err)
	}
	if _, err := ParseRecommendationStrength(string(a.RecommendationStrength)); err != nil {
		v.errf(path+".recommendationStrength", "%v", err)
	}

	// Outputs are derived, never hand-edited: they must match what the
	// engine says about the recorded inputs.
	rec := Evaluate(a.Input)
	if a.OutcomeTier != rec.Tier || a.RecommendationType != rec.Type || a.RecommendationStrength != rec.Strength {
		v.errf(path+".outcomeTier", "outputs (%s, %s, %s) do not match the engine's (%s, %s, %s) for the recorded inputs",
			a.OutcomeTier, a.RecommendationType, a.RecommendationStrength, rec.Tier, rec.Type, rec.Strength)
	}
}

func (v *validator) input(path string, in Input) {
	if _, err := ParseYesNo(string(in.ReBuy)); err != nil {
		v.errf(path+".reBuy", "%v", err)
	}
	if _, err := ParseReBuyTier(string(in.ReBuyTier)); err != nil {
		v.errf(path+".reBuyTier", "%v", err)
	}
	if _, err := ParseRiskLevel(string(in.RiskDensity)); err != nil {
		v.errf(path+".riskDensity", "%v", err)
	}
	if _, err := ParseKeyLevelState(string(in.KeyLevel)); err != nil {
		v.errf(path+".keyLevelState", "%v", err)
	}
	if _, err := ParseYesNo(string(in.Contrarian)); err != nil {
		v.errf(path+".contrarian", "%v", err)
	}
	if _, err := ParseCapitalState(string(in.Capital)); err != nil {
		v.errf(path+".capitalConstraint", "%v", err)
	}
	if _, err := ParseYesNo(string(in.CashCushionOK)); err != nil {
		v.errf(path+".cashCushionOk", "%v", err)
	}
	if _, err := ParseStrategyFit(string(in.StrategyFit)); err != nil {
		v.errf(path+".strategyFit", "%v", err)
	}
	if _, err := ParseConflictLevel(string(in.Conflict)); err != nil {
		v.errf(path+".conflict", "%v", err)
	}
	if _, err := ParseRiskLevel(string(in.EmotionRisk)); err != nil {
		v.errf(path+".emotionRisk", "%v", err)
	}
	if _, err := ParseRiskLevel(string(in.NextDecisionDamage)); err != nil {
		v.errf(path+".nextDecisionDamage", "%v", err)
	}
}

func (v *validator) action(path string, a Action, s *Store) {
	v.id(path+".id", a.ID)
	v.assetRef(path+".assetId", a.AssetID, s)
	if a.PositionID != "" && !hasPosition(s, a.PositionID) {
		v.errf(path+".positionId", "unknown position %q", a.PositionID)
	}
	if a.AssessmentID != "" && !hasAssessment(s, a.AssessmentID) {
		v.errf(path+".assessmentId", "unknown assessment %q", a.AssessmentID)
	}
	if _, err := ParseActionType(string(a.Type)); err != nil {
		v.errf(path+".actionType", "%v", err)
	}
	if _, err := ParseActionStatus(string(a.Status)); err != nil {
		v.errf(path+".status", "%v", err)
	}
	v.timestamp(path+".createdAt", a.CreatedAt)
	v.timestamp(path+".updatedAt", a.UpdatedAt)
	if a.Deviation {
		if a.DeviationReason == "" {
			v.errf(path+".deviationReason", "required when deviation is set")
		}
		if a.WorstCaseAccepted == "" {
			v.errf(path+".worstCaseAccepted", "required when deviation is set")
		}
		if a.ExitCondition == "" {
			v.errf(path+".exitCondition", "required when deviation is set")
		}
	}
}

func (v *validator) trigger(path string, t Trigger, s *Store) {
	v.id(path+".id", t.ID)
	v.assetRef(path+".assetId", t.AssetID, s)
	if t.Name == "" {
		v.errf(path+".name", "is required")
	}
	if _, err := ParseTriggerPolicy(string(t.Policy)); err != nil {
		v.errf(path+".policy", "%v", err)
	}
	v.timestamp(path+".createdAt", t.CreatedAt)
	v.timestamp(path+".updatedAt", t.UpdatedAt)
}

func (v *validator) triggerLog(path string, l TriggerLog, s *Store) {
	v.id(path+".id", l.ID)
	if l.TriggerID == "" {
		v.errf(path+".triggerId", "trigger reference is required")
	} else if s.Trigger(l.TriggerID) == nil {
		v.errf(path+".triggerId", "unknown trigger %q", l.TriggerID)
	}
	v.assetRef(path+".assetId", l.AssetID, s)
	v.timestamp(path+".firedAt", l.FiredAt)
	if _, err := ParseTriggerLogStatus(string(l.Status)); err != nil {
		v.errf(path+".status", "%v", err)
	}
	v.timestamp(path+".createdAt", l.CreatedAt)
	v.timestamp(path+".updatedAt", l.UpdatedAt)
}

func (v *validator) position(path string, p Position, s *Store) {
	v.id(path+".id", p.ID)
	v.assetRef(path+".assetId", p.AssetID, s)
	v.timestamp(path+".createdAt", p.CreatedAt)
	v.timestamp(path+".updatedAt", p.UpdatedAt)
}

func (v *validator) evidence(path string, e Evidence, s *Store) {
	v.id(path+".id", e.ID)
	v.assetRef(path+".assetId", e.AssetID, s)
	if e.AssessmentID != "" && !hasAssessment(s, e.AssessmentID) {
		v.errf(path+".assessmentId", "unknown assessment %q", e.AssessmentID)
	}
	if e.Title == "" {
		v.errf(path+".title", "is required")
	}
	v.timestamp(path+".createdAt", e.CreatedAt)
	v.timestamp(path+".updatedAt", e.UpdatedAt)
}

func (v *validator) review(path string, r Review, s *Store) {
	v.id(path+".id", r.ID)
	v.assetRef(path+".assetId", r.AssetID, s)
	if r.ActionID != "" && !hasAction(s, r.ActionID) {
		v.errf(path+".actionId", "unknown action %q", r.ActionID)
	}
	if r.Content == "" {
		v.errf(path+".content", "is required")
	}
	v.timestamp(path+".createdAt", r.CreatedAt)
	v.timestamp(path+".updatedAt", r.UpdatedAt)
}

func hasTriggerLog(s *Store, id ID) bool {
	for i := range s.TriggerLogs {
		if s.TriggerLogs[i].ID == id {
			return true
		}
	}
	return false
}

func hasPosition(s *Store, id ID) bool {
	for i := range s.Positions {
		if s.Positions[i].ID == id {
			return true
		}
	}
	return false
}

func hasAssessment(s *Store, id ID) bool {
	for i := range s.Assessments {
		if s.Assessments[i].ID == id {
			return true
		}
	}
	return false
}

func hasAction(s *Store, id ID) bool {
	for i := range s.Actions {
		if s.Actions[i].ID == id {
			return true
		}
	}
	return false
}
