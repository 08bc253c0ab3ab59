package cmd

import (
	"context"
	"flag"

	"github.com/etnz/tradebook"
	"github.com/etnz/tradebook/renderer"
	"github.com/google/subcommands"
)

type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "show the journal front page" }
func (*dashboardCmd) Usage() string {
	return `tb dashboard

  Shows holdings at a glance, emergency assessments waiting for backfill,
  and the most recent assessments.
`
}

func (*dashboardCmd) SetFlags(_ *flag.FlagSet) {}

func (*dashboardCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadStore(Open())
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.DashboardMarkdown(s, tradebook.SystemClock()))
	return subcommands.ExitSuccess
}
