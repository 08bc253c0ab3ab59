package cmd

import (
	"context"
	"flag"

	"github.com/etnz/tradebook"
	"github.com/etnz/tradebook/renderer"
	"github.com/google/subcommands"
)

type assessCmd struct {
	asset      string
	kind       string
	triggerLog string

	rebuy         string
	rebuyTier     string
	noRebuyReason string
	risk          string
	keyLevel      string
	contrarian    string
	capital       string
	cushion       string
	strategy      string
	conflict      string
	emotion       string
	nextDamage    string

	boundary string
	explain  string
}

func (*assessCmd) Name() string     { return "assess" }
func (*assessCmd) Synopsis() string { return "run a structured assessment and record the recommendation" }
func (*assessCmd) Usage() string {
	return `tb assess -asset <symbol> [-type <type>] [input flags...]

  Answers the fixed questionnaire for one asset and appends the resulting
  assessment. The outcome tier and recommendation are computed by the
  engine; any question left unanswered scores as its neutral default.

Usage Examples:
$ tb assess -asset TSLA -rebuy yes -rebuy-tier 75-100% -risk low -key-level breakout
`
}

func (c *assessCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "asset", "", "Asset symbol or id (required).")
	f.StringVar(&c.kind, "type", string(tradebook.AssessReEvaluation), "Assessment type (entry, re-evaluation, trim, hedge, emergency-backfill).")
	f.StringVar(&c.triggerLog, "trigger-log", "", "Trigger log this assessment answers.")

	f.StringVar(&c.rebuy, "rebuy", "", "Would you rebuy if flat (yes, no).")
	f.StringVar(&c.rebuyTier, "rebuy-tier", "", "Re-entry size tier (0-25%, 25-50%, 50-75%, 75-100%, not-applicable).")
	f.StringVar(&c.noRebuyReason, "no-rebuy-reason", "", "Why not rebuy, when -rebuy is no.")
	f.StringVar(&c.risk, "risk", "", "Risk density (low, medium, high).")
	f.StringVar(&c.keyLevel, "key-level", "", "Key-level state (breakout, retest-confirmed, breakdown, neutral).")
	f.StringVar(&c.contrarian, "contrarian", "", "Is the plan against the prevailing trend (yes, no).")
	f.StringVar(&c.capital, "capital", "", "Capital constraint (sufficient, limited, none).")
	f.StringVar(&c.cushion, "cushion", "", "Cash cushion sufficient after the action (yes, no).")
	f.StringVar(&c.strategy, "strategy", "", "Strategy bucket (trend-following, event-driven, mean-reversion, rebalancing).")
	f.StringVar(&c.conflict, "conflict", "", "Conflict with the thesis (none, slight, significant).")
	f.StringVar(&c.emotion, "emotion", "", "Emotional/execution risk (low, medium, high).")
	f.StringVar(&c.nextDamage, "next-damage", "", "Damage to future decisions if wrong (low, medium, high).")

	f.StringVar(&c.boundary, "boundary", "", "Free-text boundary for the position.")
	f.StringVar(&c.explain, "explain", "", "Free-text explanation.")
}

// input assembles the questionnaire from the flags, leaving unanswered
// questions empty for the engine to default.
func (c *assessCmd) input() (in tradebook.Input, err error) {
	if c.rebuy != "" {
		if in.ReBuy, err = tradebook.ParseYesNo(c.rebuy); err != nil {
			return in, err
		}
	}
	if c.rebuyTier != "" {
		if in.ReBuyTier, err = tradebook.ParseReBuyTier(c.rebuyTier); err != nil {
			return in, err
		}
	}
	in.NoRebuyReason = c.noRebuyReason
	if c.risk != "" {
		if in.RiskDensity, err = tradebook.ParseRiskLevel(c.risk); err != nil {
			return in, err
		}
	}
	if c.keyLevel != "" {
		if in.KeyLevel, err = tradebook.ParseKeyLevelState(c.keyLevel); err != nil {
			return in, err
		}
	}
	if c.contrarian != "" {
		if in.Contrarian, err = tradebook.ParseYesNo(c.contrarian); err != nil {
			return in, err
		}
	}
	if c.capital != "" {
		if in.Capital, err = tradebook.ParseCapitalState(c.capital); err != nil {
			return in, err
		}
	}
	if c.cushion != "" {
		if in.CashCushionOK, err = tradebook.ParseYesNo(c.cushion); err != nil {
			return in, err
		}
	}
	if c.strategy != "" {
		if in.StrategyFit, err = tradebook.ParseStrategyFit(c.strategy); err != nil {
			return in, err
		}
	}
	if c.conflict != "" {
		if in.Conflict, err = tradebook.ParseConflictLevel(c.conflict); err != nil {
			return in, err
		}
	}
	if c.emotion != "" {
		if in.EmotionRisk, err = tradebook.ParseRiskLevel(c.emotion); err != nil {
			return in, err
		}
	}
	if c.nextDamage != "" {
		if in.NextDecisionDamage, err = tradebook.ParseRiskLevel(c.nextDamage); err != nil {
			return in, err
		}
	}
	return in, nil
}

func (c *assessCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.asset == "" {
		return fail(errMissingAsset)
	}
	kind, err := tradebook.ParseAssessmentType(c.kind)
	if err != nil {
		return fail(err)
	}
	in, err := c.input()
	if err != nil {
		return fail(err)
	}

	gw := Open()
	var rec tradebook.Recommendation
	var lang tradebook.Lang
	_, err = gw.Update(func(s *tradebook.Store) error {
		asset, err := findAsset(s, c.asset)
		if err != nil {
			return err
		}
		a, err := s.AppendAssessment(tradebook.Assessment{
			AssetID:      asset.ID,
			TriggerLogID: tradebook.ID(c.triggerLog),
			Type:         kind,
			Input:        in,
			Boundary:     c.boundary,
			Explanation:  c.explain,
		}, tradebook.SystemClock())
		if err != nil {
			return err
		}
		rec = tradebook.Evaluate(a.Input)
		lang = s.Meta.Lang
		return nil
	})
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.RecommendationMarkdown(rec, lang))
	return subcommands.ExitSuccess
}
