package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/tradebook"
	"github.com/google/subcommands"
)

type triggerAddCmd struct {
	asset     string
	name      string
	condition string
	policy    string
}

func (*triggerAddCmd) Name() string     { return "trigger" }
func (*triggerAddCmd) Synopsis() string { return "watch a named condition on an asset" }
func (*triggerAddCmd) Usage() string {
	return `tb trigger -asset <symbol> -name <name> [-condition <text>] [-policy <policy>]

  Registers a watched condition, e.g. "price breaks the key level". The
  policy decides what a firing blocks: "block-exposure" forbids adding
  exposure until assessed, "remind-only" just reminds.
`
}

func (c *triggerAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "asset", "", "Asset symbol or id (required).")
	f.StringVar(&c.name, "name", "", "Trigger name (required).")
	f.StringVar(&c.condition, "condition", "", "Condition description.")
	f.StringVar(&c.policy, "policy", string(tradebook.PolicyRemind), "Restriction policy (block-exposure, remind-only).")
}

func (c *triggerAddCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.asset == "" {
		return fail(errMissingAsset)
	}
	policy, err := tradebook.ParseTriggerPolicy(c.policy)
	if err != nil {
		return fail(err)
	}
	var id tradebook.ID
	_, err = Open().Update(func(s *tradebook.Store) error {
		asset, err := findAsset(s, c.asset)
		if err != nil {
			return err
		}
		t, err := s.AddTrigger(tradebook.Trigger{
			AssetID:   asset.ID,
			Name:      c.name,
			Condition: c.condition,
			Policy:    policy,
		}, tradebook.SystemClock())
		if err != nil {
			return err
		}
		id = t.ID
		return nil
	})
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Trigger registered: %s\n", id)
	return subcommands.ExitSuccess
}

type triggerFireCmd struct {
	note string
}

func (*triggerFireCmd) Name() string     { return "fire" }
func (*triggerFireCmd) Synopsis() string { return "record that a trigger's condition was met" }
func (*triggerFireCmd) Usage() string {
	return `tb fire <trigger-id> [-note <text>]

  Appends a firing log for the trigger. The log starts open; assess it with
  "tb assess -trigger-log <log-id>".
`
}

func (c *triggerFireCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.note, "note", "", "Note on the firing.")
}

func (c *triggerFireCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return fail(fmt.Errorf("usage: tb fire <trigger-id>"))
	}
	var id tradebook.ID
	_, err := Open().Update(func(s *tradebook.Store) error {
		log, err := s.FireTrigger(tradebook.ID(f.Arg(0)), c.note, tradebook.SystemClock())
		if err != nil {
			return err
		}
		id = log.ID
		return nil
	})
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Trigger fired, log %s is open.\n", id)
	return subcommands.ExitSuccess
}
