package tradebook

// This file is the only place the journal makes a judgement. Everything else
// records facts; Evaluate turns one questionnaire into one recommendation.

// Input is the full questionnaire of an assessment. Unanswered questions keep
// their zero value and are resolved by WithDefaults before scoring, so the
// engine is total over every document it can be handed.
type Input struct {
	// Would you rebuy this position if you were flat today.
	ReBuy         YesNo     `json:"reBuy,omitempty"`
	ReBuyTier     ReBuyTier `json:"reBuyTier,omitempty"`
	NoRebuyReason string    `json:"noRebuyReason,omitempty"`

	RiskDensity RiskLevel     `json:"riskDensity,omitempty"`
	KeyLevel    KeyLevelState `json:"keyLevelState,omitempty"`
	Contrarian  YesNo         `json:"contrarian,omitempty"`

	Capital       CapitalState `json:"capitalConstraint,omitempty"`
	CashCushionOK YesNo        `json:"cashCushionOk,omitempty"`

	StrategyFit StrategyFit   `json:"strategyFit,omitempty"`
	Conflict    ConflictLevel `json:"conflict,omitempty"`

	EmotionRisk        RiskLevel `json:"emotionRisk,omitempty"`
	NextDecisionDamage RiskLevel `json:"nextDecisionDamage,omitempty"`
}

// DefaultInput returns the neutral questionnaire: the answers an assessment
// starts from before the user has said anything.
func DefaultInput() Input {
	return Input{
		ReBuy:              Yes,
		ReBuyTier:          ReBuyTierNotAppli,
		RiskDensity:        RiskMedium,
		KeyLevel:           KeyLevelNeutral,
		Contrarian:         No,
		Capital:            CapitalLimited,
		CashCushionOK:      Yes,
		StrategyFit:        StrategyTrendFollowing,
		Conflict:           ConflictNone,
		EmotionRisk:        RiskMedium,
		NextDecisionDamage: RiskMedium,
	}
}

// WithDefaults returns a copy of the input with every unanswered question
// replaced by its neutral default.
func (in Input) WithDefaults() Input {
	def := DefaultInput()
	if in.ReBuy == "" {
		in.ReBuy = def.ReBuy
	}
	if in.ReBuyTier == "" {
		in.ReBuyTier = def.ReBuyTier
	}
	if in.RiskDensity == "" {
		in.RiskDensity = def.RiskDensity
	}
	if in.KeyLevel == "" {
		in.KeyLevel = def.KeyLevel
	}
	if in.Contrarian == "" {
		in.Contrarian = def.Contrarian
	}
	if in.Capital == "" {
		in.Capital = def.Capital
	}
	if in.CashCushionOK == "" {
		in.CashCushionOK = def.CashCushionOK
	}
	if in.StrategyFit == "" {
		in.StrategyFit = def.StrategyFit
	}
	if in.Conflict == "" {
		in.Conflict = def.Conflict
	}
	if in.EmotionRisk == "" {
		in.EmotionRisk = def.EmotionRisk
	}
	if in.NextDecisionDamage == "" {
		in.NextDecisionDamage = def.NextDecisionDamage
	}
	return in
}

// Recommendation is the engine's verdict. Score is kept for display and
// explanation; only the three categorical outputs are persisted on an
// assessment.
type Recommendation struct {
	Score    int
	Tier     OutcomeTier
	Type     RecommendationType
	Strength RecommendationStrength
}

// Evaluate maps a questionnaire to a tiered recommendation.
//
// The scoring is a frozen additive table over the ten categorical inputs,
// giving a score in [-4, 17], then a threshold mapping to a tier and a fixed
// tier-to-recommendation table. It is deterministic, side-effect free and
// total: every combination of declared answers produces exactly one outcome.
func Evaluate(in Input) Recommendation {
	in = in.WithDefaults()

	score := 0

	// Re-entry willingness is the heart of the discipline: would you put
	// the position back on if you were flat.
	if in.ReBuy == Yes {
		score += 3
	}
	switch in.ReBuyTier {
	case ReBuyTier75to100:
		score += 2
	case ReBuyTier50to75:
		score++
	}

	switch in.RiskDensity {
	case RiskLow:
		score += 2
	case RiskMedium:
		score++
	}

	switch in.KeyLevel {
	case KeyLevelBreakout:
		score += 2
	case KeyLevelRetest:
		score++
	case KeyLevelBreakdown:
		score--
	}

	switch in.Capital {
	case CapitalSufficient:
		score += 2
	case CapitalLimited:
		score++
	}
	if in.CashCushionOK == Yes {
		score++
	} else {
		score--
	}

	switch in.Conflict {
	case ConflictNone:
		score += 2
	case ConflictSlight:
		score++
	}

	switch in.EmotionRisk {
	case RiskLow:
		score += 2
	case RiskMedium:
		score++
	}
	switch in.NextDecisionDamage {
	case RiskLow:
		score++
	case RiskHigh:
		score--
	}

	// Fighting the prevailing trend costs an extra point.
	if in.Contrarian == Yes {
		score--
	}

	var tier OutcomeTier
	switch {
	case score >= 12:
		tier = TierA
	case score >= 9:
		tier = TierB
	case score >= 6:
		tier = TierC
	default:
		tier = TierD
	}

	recType, strength := tierRecommendation(tier)
	return Recommendation{Score: score, Tier: tier, Type: recType, Strength: strength}
}

// tierRecommendation is the fixed, total tier-to-recommendation table.
func tierRecommendation(tier OutcomeTier) (RecommendationType, RecommendationStrength) {
	switch tier {
	case TierA:
		return RecHold, StrengthSuggest
	case TierB:
		return RecWait, StrengthSuggest
	case TierC:
		return RecReduce, StrengthStrongSuggest
	default:
		return RecHedge, StrengthMustAssess
	}
}
