package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/tradebook"
	"github.com/google/subcommands"
)

type actionCmd struct {
	asset      string
	kind       string
	status     string
	assessment string
	planned    string
	executed   string
	emergency  bool
	deviation  bool
	reason     string
	worstCase  string
	exitCond   string
}

func (*actionCmd) Name() string     { return "action" }
func (*actionCmd) Synopsis() string { return "record a planned or executed trade action" }
func (*actionCmd) Usage() string {
	return `tb action -asset <symbol> -type <type> [-status <status>] [-planned <time>] [-executed <time>] [-emergency] [-deviation -reason <text> -worst <text> -exit <text>]

  Records a trade action. A deviation from plan must carry its reason, the
  accepted worst case and the exit condition, or the journal refuses it.
  An emergency action that was already executed schedules an assessment
  backfill due 48 hours after execution.

Usage Examples:
$ tb action -asset TSLA -type reduce -status executed -executed "2025-01-01 14:30"
$ tb action -asset TSLA -type add -deviation -reason "gap open" -worst "-8%" -exit "close below 180"
`
}

func (c *actionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "asset", "", "Asset symbol or id (required).")
	f.StringVar(&c.kind, "type", "other", "Action type (add, reduce, take-profit, stop-loss, hedge, other).")
	f.StringVar(&c.status, "status", "planned", "Action status (planned, executed, reviewed).")
	f.StringVar(&c.assessment, "assessment", "", "Assessment id that justified the action.")
	f.StringVar(&c.planned, "planned", "", "Planned time, \"YYYY-MM-DD HH:mm\".")
	f.StringVar(&c.executed, "executed", "", "Executed time, \"YYYY-MM-DD HH:mm\".")
	f.BoolVar(&c.emergency, "emergency", false, "Mark the action as an emergency.")
	f.BoolVar(&c.deviation, "deviation", false, "Mark the action as a deviation from plan.")
	f.StringVar(&c.reason, "reason", "", "Deviation reason (required with -deviation).")
	f.StringVar(&c.worstCase, "worst", "", "Accepted worst case (required with -deviation).")
	f.StringVar(&c.exitCond, "exit", "", "Exit condition (required with -deviation).")
}

func (c *actionCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.asset == "" {
		return fail(errMissingAsset)
	}
	kind, err := tradebook.ParseActionType(c.kind)
	if err != nil {
		return fail(err)
	}
	status, err := tradebook.ParseActionStatus(c.status)
	if err != nil {
		return fail(err)
	}
	planned, err := parseMaybeDT(c.planned)
	if err != nil {
		return fail(err)
	}
	executed, err := parseMaybeDT(c.executed)
	if err != nil {
		return fail(err)
	}

	gw := Open()
	backfilled := false
	_, err = gw.Update(func(s *tradebook.Store) error {
		asset, err := findAsset(s, c.asset)
		if err != nil {
			return err
		}
		before := len(s.Assessments)
		_, err = s.AppendAction(tradebook.Action{
			AssetID:           asset.ID,
			AssessmentID:      tradebook.ID(c.assessment),
			Type:              kind,
			Status:            status,
			PlannedAt:         planned,
			ExecutedAt:        executed,
			Emergency:         c.emergency,
			Deviation:         c.deviation,
			DeviationReason:   c.reason,
			WorstCaseAccepted: c.worstCase,
			ExitCondition:     c.exitCond,
		}, tradebook.SystemClock())
		backfilled = len(s.Assessments) > before
		return err
	})
	if err != nil {
		return fail(err)
	}
	fmt.Println("Action recorded.")
	if backfilled {
		fmt.Println("Emergency: a draft assessment was scheduled, complete it within 48 hours.")
	}
	return subcommands.ExitSuccess
}
