package tradebook

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestAddAssetStampsLifecycle(t *testing.T) {
	s := DefaultStore(testNow)

	watching, err := s.AddAsset(Asset{Symbol: "ASTS"}, testNow)
	if err != nil {
		t.Fatal(err)
	}
	if watching.Status != StatusWatching {
		t.Errorf("default status = %q, want %q", watching.Status, StatusWatching)
	}
	if watching.OpenedAt != nil || watching.ClosedAt != nil {
		t.Error("watching asset should carry no lifecycle timestamps")
	}

	holding, err := s.AddAsset(Asset{Symbol: "NVDA", Status: StatusHolding}, testNow)
	if err != nil {
		t.Fatal(err)
	}
	if holding.OpenedAt == nil || !holding.OpenedAt.Equal(testNow) {
		t.Errorf("openedAt = %v, want %v", holding.OpenedAt, testNow)
	}

	cleared, err := s.AddAsset(Asset{Symbol: "PLTR", Status: StatusCleared}, testNow)
	if err != nil {
		t.Fatal(err)
	}
	if cleared.ClosedAt == nil || !cleared.ClosedAt.Equal(testNow) {
		t.Errorf("closedAt = %v, want %v", cleared.ClosedAt, testNow)
	}

	if _, err := s.AddAsset(Asset{}, testNow); err == nil {
		t.Error("asset without symbol accepted")
	}
	if _, err := s.AddAsset(Asset{Symbol: "X", Status: "limbo"}, testNow); err == nil {
		t.Error("asset with unknown status accepted")
	}

	if res := Validate(s); !res.OK {
		t.Errorf("store invalid after adds: %v", errorPaths(res))
	}
}

func TestAppendAssessmentDerivesOutputs(t *testing.T) {
	s := DefaultStore(testNow)
	asset, err := s.AddAsset(Asset{Symbol: "NVDA"}, testNow)
	if err != nil {
		t.Fatal(err)
	}

	// Caller-supplied outputs are ignored: the engine is the only source.
	a, err := s.AppendAssessment(Assessment{
		AssetID:     asset.ID,
		Input:       bestInput(),
		OutcomeTier: TierD,
	}, testNow)
	if err != nil {
		t.Fatal(err)
	}
	if a.OutcomeTier != TierA || a.RecommendationType != RecHold || a.RecommendationStrength != StrengthSuggest {
		t.Errorf("outputs = (%s, %s, %s), want (A, hold, suggest)", a.OutcomeTier, a.RecommendationType, a.RecommendationStrength)
	}
	if a.Type != AssessReEvaluation {
		t.Errorf("default type = %q, want %q", a.Type, AssessReEvaluation)
	}
	if a.Status != AssessmentRecommended {
		t.Errorf("default status = %q, want %q", a.Status, AssessmentRecommended)
	}

	if _, err := s.AppendAssessment(Assessment{AssetID: "asset_missing"}, testNow); err == nil {
		t.Error("assessment against unknown asset accepted")
	}

	var derr *DomainError
	if _, err := s.AppendAssessment(Assessment{}, testNow); !errors.As(err, &derr) {
		t.Errorf("expected a domain error, got %v", err)
	}
}

func TestAppendActionDeviationGate(t *testing.T) {
	s := DefaultStore(testNow)
	asset, err := s.AddAsset(Asset{Symbol: "NVDA"}, testNow)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := s.AppendAction(Action{AssetID: asset.ID, Deviation: true}, testNow); err == nil {
		t.Fatal("deviation without justification accepted")
	}

	a, err := s.AppendAction(Action{
		AssetID:           asset.ID,
		Type:              ActionAdd,
		Deviation:         true,
		DeviationReason:   "entry before the assessment",
		WorstCaseAccepted: "full stop at -5%",
		ExitCondition:     "close back inside the range",
	}, testNow)
	if err != nil {
		t.Fatal(err)
	}
	if a.DeviationReason == "" {
		t.Error("justification lost on append")
	}

	// A non-deviation never keeps stale justification text.
	b, err := s.AppendAction(Action{AssetID: asset.ID, DeviationReason: "leftover"}, testNow)
	if err != nil {
		t.Fatal(err)
	}
	if b.DeviationReason != "" || b.WorstCaseAccepted != "" || b.ExitCondition != "" {
		t.Errorf("justifications kept on non-deviation: %+v", b)
	}
}

func TestAppendActionEmergencyBackfill(t *testing.T) {
	s := DefaultStore(testNow)
	asset, err := s.AddAsset(Asset{Symbol: "NVDA"}, testNow)
	if err != nil {
		t.Fatal(err)
	}

	executed := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	if _, err := s.AppendAction(Action{
		AssetID:    asset.ID,
		Type:       ActionStopLoss,
		Status:     ActionExecuted,
		Emergency:  true,
		ExecutedAt: &executed,
	}, testNow); err != nil {
		t.Fatal(err)
	}

	if len(s.Assessments) != 1 {
		t.Fatalf("got %d companion assessments, want 1", len(s.Assessments))
	}
	backfill := s.Assessments[0]
	if backfill.Type != AssessEmergencyBackfill || !backfill.Emergency || backfill.Status != AssessmentDraft {
		t.Errorf("companion assessment = %+v", backfill)
	}
	wantDue := time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC)
	if backfill.BackfillDueAt == nil || !backfill.BackfillDueAt.Equal(wantDue) {
		t.Errorf("backfillDueAt = %v, want %v", backfill.BackfillDueAt, wantDue)
	}

	pending := s.PendingBackfills()
	if len(pending) != 1 || pending[0].ID != backfill.ID {
		t.Errorf("PendingBackfills = %+v", pending)
	}

	// A planned emergency has not executed yet, so there is nothing to
	// backfill.
	if _, err := s.AppendAction(Action{AssetID: asset.ID, Emergency: true}, testNow); err != nil {
		t.Fatal(err)
	}
	if len(s.Assessments) != 1 {
		t.Errorf("planned emergency grew assessments to %d", len(s.Assessments))
	}

	if res := Validate(s); !res.OK {
		t.Errorf("store invalid after emergency action: %v", errorPaths(res))
	}
}

func TestFireTriggerLifecycle(t *testing.T) {
	s := DefaultStore(testNow)
	asset, err := s.AddAsset(Asset{Symbol: "NVDA"}, testNow)
	if err != nil {
		t.Fatal(err)
	}
	trigger, err := s.AddTrigger(Trigger{AssetID: asset.ID, Name: "breaks 200d"}, testNow)
	if err != nil {
		t.Fatal(err)
	}
	if trigger.Policy != PolicyRemind {
		t.Errorf("default policy = %q, want %q", trigger.Policy, PolicyRemind)
	}

	log, err := s.FireTrigger(trigger.ID, "closed below", testNow)
	if err != nil {
		t.Fatal(err)
	}
	if log.Status != FiringOpen || log.AssetID != asset.ID || !log.FiredAt.Equal(testNow) {
		t.Errorf("firing = %+v", log)
	}

	if _, err := s.FireTrigger("tr_missing", "", testNow); err == nil {
		t.Error("firing an unknown trigger accepted")
	}
}

func TestRecentAssessmentsOrder(t *testing.T) {
	s := DefaultStore(testNow)
	asset, err := s.AddAsset(Asset{Symbol: "NVDA"}, testNow)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		at := testNow.Add(time.Duration(i) * time.Hour)
		if _, err := s.AppendAssessment(Assessment{AssetID: asset.ID}, at); err != nil {
			t.Fatal(err)
		}
	}
	recent := s.RecentAssessments(2)
	if len(recent) != 2 {
		t.Fatalf("got %d assessments, want 2", len(recent))
	}
	if !recent[0].CreatedAt.After(recent[1].CreatedAt) {
		t.Errorf("not most recent first: %v then %v", recent[0].CreatedAt, recent[1].CreatedAt)
	}
	// The derived view never reorders the store itself.
	if !s.Assessments[0].CreatedAt.Before(s.Assessments[2].CreatedAt) {
		t.Error("insertion order disturbed")
	}
}

func TestCloneIsDeep(t *testing.T) {
	s := SeedStore(testNow)
	c := s.Clone()

	c.Meta.Config.Industries[0] = "changed"
	c.Assets[0].Symbol = "AAPL"
	qty := decimal.NewFromInt(999)
	c.Assets[0].PlanQty = &qty

	if s.Meta.Config.Industries[0] == "changed" {
		t.Error("config shared between clone and original")
	}
	if s.Assets[0].Symbol == "AAPL" {
		t.Error("assets shared between clone and original")
	}
	if s.Assets[0].PlanQty.Equal(qty) {
		t.Error("plan quantity shared between clone and original")
	}
}
