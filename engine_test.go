package tradebook

import "testing"

// bestInput answers every question in the most favourable way.
func bestInput() Input {
	return Input{
		ReBuy:              Yes,
		ReBuyTier:          ReBuyTier75to100,
		RiskDensity:        RiskLow,
		KeyLevel:           KeyLevelBreakout,
		Contrarian:         No,
		Capital:            CapitalSufficient,
		CashCushionOK:      Yes,
		StrategyFit:        StrategyTrendFollowing,
		Conflict:           ConflictNone,
		EmotionRisk:        RiskLow,
		NextDecisionDamage: RiskLow,
	}
}

// worstInput answers every question in the least favourable way.
func worstInput() Input {
	return Input{
		ReBuy:              No,
		ReBuyTier:          ReBuyTierNotAppli,
		RiskDensity:        RiskHigh,
		KeyLevel:           KeyLevelBreakdown,
		Contrarian:         Yes,
		Capital:            CapitalNone,
		CashCushionOK:      No,
		StrategyFit:        StrategyMeanReversion,
		Conflict:           ConflictSignificant,
		EmotionRisk:        RiskHigh,
		NextDecisionDamage: RiskHigh,
	}
}

func TestEvaluateScenarios(t *testing.T) {
	tests := []struct {
		name     string
		in       Input
		score    int
		tier     OutcomeTier
		recType  RecommendationType
		strength RecommendationStrength
	}{
		{"best answers", bestInput(), 17, TierA, RecHold, StrengthSuggest},
		{"worst answers", worstInput(), -4, TierD, RecHedge, StrengthMustAssess},
		{"neutral defaults", DefaultInput(), 9, TierB, RecWait, StrengthSuggest},
		{"empty questionnaire", Input{}, 9, TierB, RecWait, StrengthSuggest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.in)
			if got.Score != tt.score {
				t.Errorf("score = %d, want %d", got.Score, tt.score)
			}
			if got.Tier != tt.tier {
				t.Errorf("tier = %q, want %q", got.Tier, tt.tier)
			}
			if got.Type != tt.recType {
				t.Errorf("type = %q, want %q", got.Type, tt.recType)
			}
			if got.Strength != tt.strength {
				t.Errorf("strength = %q, want %q", got.Strength, tt.strength)
			}
		})
	}
}

func TestEvaluateThresholds(t *testing.T) {
	// Degrade the best questionnaire one factor at a time to land the score
	// exactly on either side of the 12/9/6 boundaries.
	tests := []struct {
		name  string
		in    Input
		score int
		tier  OutcomeTier
	}{
		{"just above A", func() Input {
			in := bestInput()
			in.ReBuyTier = ReBuyTierNotAppli // -2
			in.RiskDensity = RiskHigh        // -2
			in.NextDecisionDamage = RiskMedium
			return in
		}(), 12, TierA},
		{"just below A", func() Input {
			in := bestInput()
			in.ReBuyTier = ReBuyTierNotAppli // -2
			in.RiskDensity = RiskHigh        // -2
			in.NextDecisionDamage = RiskHigh // -2
			return in
		}(), 11, TierB},
		{"just above B", func() Input {
			in := bestInput()
			in.ReBuy = No                    // -3
			in.ReBuyTier = ReBuyTierNotAppli // -2
			in.RiskDensity = RiskHigh        // -2
			in.NextDecisionDamage = RiskMedium
			return in
		}(), 9, TierB},
		{"just below B", func() Input {
			in := bestInput()
			in.ReBuy = No                    // -3
			in.ReBuyTier = ReBuyTierNotAppli // -2
			in.RiskDensity = RiskHigh        // -2
			in.NextDecisionDamage = RiskHigh // -2
			return in
		}(), 8, TierC},
		{"just above C", func() Input {
			in := bestInput()
			in.ReBuy = No                    // -3
			in.ReBuyTier = ReBuyTierNotAppli // -2
			in.RiskDensity = RiskHigh        // -2
			in.EmotionRisk = RiskHigh        // -2
			in.NextDecisionDamage = RiskHigh // -2
			return in
		}(), 6, TierC},
		{"just below C", func() Input {
			in := bestInput()
			in.ReBuy = No                    // -3
			in.ReBuyTier = ReBuyTierNotAppli // -2
			in.RiskDensity = RiskHigh        // -2
			in.EmotionRisk = RiskHigh        // -2
			in.NextDecisionDamage = RiskHigh // -2
			in.Contrarian = Yes              // -1
			return in
		}(), 5, TierD},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.in)
			if got.Score != tt.score {
				t.Errorf("score = %d, want %d", got.Score, tt.score)
			}
			if got.Tier != tt.tier {
				t.Errorf("tier = %q, want %q", got.Tier, tt.tier)
			}
		})
	}
}

// TestEvaluateTotal walks the whole cross product of declared answers and
// checks that every combination yields a score within range, a declared tier
// and the recommendation that tier maps to.
func TestEvaluateTotal(t *testing.T) {
	yesno := []YesNo{Yes, No}
	tiers := []ReBuyTier{ReBuyTier0to25, ReBuyTier25to50, ReBuyTier50to75, ReBuyTier75to100, ReBuyTierNotAppli}
	risks := []RiskLevel{RiskLow, RiskMedium, RiskHigh}
	keys := []KeyLevelState{KeyLevelBreakout, KeyLevelRetest, KeyLevelBreakdown, KeyLevelNeutral}
	capitals := []CapitalState{CapitalSufficient, CapitalLimited, CapitalNone}
	conflicts := []ConflictLevel{ConflictNone, ConflictSlight, ConflictSignificant}

	want := map[OutcomeTier][2]string{
		TierA: {string(RecHold), string(StrengthSuggest)},
		TierB: {string(RecWait), string(StrengthSuggest)},
		TierC: {string(RecReduce), string(StrengthStrongSuggest)},
		TierD: {string(RecHedge), string(StrengthMustAssess)},
	}

	n := 0
	for _, rebuy := range yesno {
		for _, tier := range tiers {
			for _, risk := range risks {
				for _, key := range keys {
					for _, contrarian := range yesno {
						for _, capital := range capitals {
							for _, cushion := range yesno {
								for _, conflict := range conflicts {
									for _, emotion := range risks {
										for _, damage := range risks {
											in := Input{
												ReBuy:              rebuy,
												ReBuyTier:          tier,
												RiskDensity:        risk,
												KeyLevel:           key,
												Contrarian:         contrarian,
												Capital:            capital,
												CashCushionOK:      cushion,
												StrategyFit:        StrategyTrendFollowing,
												Conflict:           conflict,
												EmotionRisk:        emotion,
												NextDecisionDamage: damage,
											}
											rec := Evaluate(in)
											n++
											if rec.Score < -4 || rec.Score > 17 {
												t.Fatalf("score %d out of range for %+v", rec.Score, in)
											}
											m, ok := want[rec.Tier]
											if !ok {
												t.Fatalf("unknown tier %q for %+v", rec.Tier, in)
											}
											if string(rec.Type) != m[0] || string(rec.Strength) != m[1] {
												t.Fatalf("tier %s mapped to (%s, %s) for %+v", rec.Tier, rec.Type, rec.Strength, in)
											}
										}
									}
								}
							}
						}
					}
				}
			}
		}
	}
	if want := 2 * 5 * 3 * 4 * 2 * 3 * 2 * 3 * 3 * 3; n != want {
		t.Fatalf("visited %d combinations, want %d", n, want)
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	in := DefaultInput()
	in.KeyLevel = KeyLevelRetest
	first := Evaluate(in)
	for i := 0; i < 10; i++ {
		if got := Evaluate(in); got != first {
			t.Fatalf("run %d: got %+v, want %+v", i, got, first)
		}
	}
}

// TestEvaluateMonotonic checks that improving a single answer never lowers
// the score.
func TestEvaluateMonotonic(t *testing.T) {
	base := DefaultInput()

	improve := []struct {
		name string
		mut  func(*Input)
	}{
		{"rebuy no to yes", func(in *Input) { in.ReBuy = No }},
		{"risk high to medium", func(in *Input) { in.RiskDensity = RiskHigh }},
		{"key breakdown to neutral", func(in *Input) { in.KeyLevel = KeyLevelBreakdown }},
		{"capital none to limited", func(in *Input) { in.Capital = CapitalNone }},
		{"cushion no to yes", func(in *Input) { in.CashCushionOK = No }},
		{"conflict significant to none", func(in *Input) { in.Conflict = ConflictSignificant }},
		{"contrarian yes to no", func(in *Input) { in.Contrarian = Yes }},
	}
	ref := Evaluate(base).Score
	for _, tt := range improve {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			tt.mut(&in)
			if got := Evaluate(in).Score; got > ref {
				t.Errorf("worse answer scored %d, better answer scored %d", got, ref)
			}
		})
	}
}

func TestWithDefaultsFillsOnlyUnanswered(t *testing.T) {
	in := Input{ReBuy: No, EmotionRisk: RiskHigh}
	got := in.WithDefaults()
	if got.ReBuy != No || got.EmotionRisk != RiskHigh {
		t.Errorf("answered questions were overwritten: %+v", got)
	}
	if got.RiskDensity != RiskMedium || got.Conflict != ConflictNone {
		t.Errorf("unanswered questions not defaulted: %+v", got)
	}
}
