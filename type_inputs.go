package tradebook

import "fmt"

// The assessment questionnaire is purely categorical. Every answer is a typed
// string so the persisted JSON stays readable and diffable, while the engine
// only ever compares declared constants.

// YesNo is a two-valued answer. The empty value means "not answered" and is
// resolved to the question's neutral default before scoring.
type YesNo string

const (
	Yes YesNo = "yes"
	No  YesNo = "no"
)

// ParseYesNo parses a yes/no answer.
func ParseYesNo(s string) (YesNo, error) {
	switch YesNo(s) {
	case Yes, No:
		return YesNo(s), nil
	default:
		return "", fmt.Errorf("unknown yes/no answer: %q", s)
	}
}

// ReBuyTier answers "how much would you rebuy if you were flat".
type ReBuyTier string

const (
	ReBuyTier0to25    ReBuyTier = "0-25%"
	ReBuyTier25to50   ReBuyTier = "25-50%"
	ReBuyTier50to75   ReBuyTier = "50-75%"
	ReBuyTier75to100  ReBuyTier = "75-100%"
	ReBuyTierNotAppli ReBuyTier = "not-applicable"
)

// ParseReBuyTier parses a re-entry size tier.
func ParseReBuyTier(s string) (ReBuyTier, error) {
	switch ReBuyTier(s) {
	case ReBuyTier0to25, ReBuyTier25to50, ReBuyTier50to75, ReBuyTier75to100, ReBuyTierNotAppli:
		return ReBuyTier(s), nil
	default:
		return "", fmt.Errorf("unknown rebuy tier: %q", s)
	}
}

// RiskLevel is a three-valued risk answer, shared by risk density, emotional
// risk and next-decision damage.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// ParseRiskLevel parses a low/medium/high answer.
func ParseRiskLevel(s string) (RiskLevel, error) {
	switch RiskLevel(s) {
	case RiskLow, RiskMedium, RiskHigh:
		return RiskLevel(s), nil
	default:
		return "", fmt.Errorf("unknown risk level: %q", s)
	}
}

// KeyLevelState describes where price stands relative to the key level the
// plan was built on.
type KeyLevelState string

const (
	KeyLevelBreakout  KeyLevelState = "breakout"
	KeyLevelRetest    KeyLevelState = "retest-confirmed"
	KeyLevelBreakdown KeyLevelState = "breakdown"
	KeyLevelNeutral   KeyLevelState = "neutral"
)

// ParseKeyLevelState parses a key-level state.
func ParseKeyLevelState(s string) (KeyLevelState, error) {
	switch KeyLevelState(s) {
	case KeyLevelBreakout, KeyLevelRetest, KeyLevelBreakdown, KeyLevelNeutral:
		return KeyLevelState(s), nil
	default:
		return "", fmt.Errorf("unknown key-level state: %q", s)
	}
}

// CapitalState answers whether fresh capital is available for the plan.
type CapitalState string

const (
	CapitalSufficient CapitalState = "sufficient"
	CapitalLimited    CapitalState = "limited"
	CapitalNone       CapitalState = "none"
)

// ParseCapitalState parses a capital constraint answer.
func ParseCapitalState(s string) (CapitalState, error) {
	switch CapitalState(s) {
	case CapitalSufficient, CapitalLimited, CapitalNone:
		return CapitalState(s), nil
	default:
		return "", fmt.Errorf("unknown capital state: %q", s)
	}
}

// ConflictLevel answers how much the plan conflicts with the asset's thesis.
type ConflictLevel string

const (
	ConflictNone        ConflictLevel = "none"
	ConflictSlight      ConflictLevel = "slight"
	ConflictSignificant ConflictLevel = "significant"
)

// ParseConflictLevel parses a thesis-conflict answer.
func ParseConflictLevel(s string) (ConflictLevel, error) {
	switch ConflictLevel(s) {
	case ConflictNone, ConflictSlight, ConflictSignificant:
		return ConflictLevel(s), nil
	default:
		return "", fmt.Errorf("unknown conflict level: %q", s)
	}
}

// StrategyFit names the strategy bucket the plan belongs to. It is recorded
// for the journal but does not enter the score.
type StrategyFit string

const (
	StrategyTrendFollowing StrategyFit = "trend-following"
	StrategyEventDriven    StrategyFit = "event-driven"
	StrategyMeanReversion  StrategyFit = "mean-reversion"
	StrategyRebalancing    StrategyFit = "rebalancing"
)

// ParseStrategyFit parses a strategy bucket.
func ParseStrategyFit(s string) (StrategyFit, error) {
	switch StrategyFit(s) {
	case StrategyTrendFollowing, StrategyEventDriven, StrategyMeanReversion, StrategyRebalancing:
		return StrategyFit(s), nil
	default:
		return "", fmt.Errorf("unknown strategy fit: %q", s)
	}
}
