package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/tradebook/renderer"
	"github.com/google/subcommands"
)

type showCmd struct{}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "show one asset with its assessments and actions" }
func (*showCmd) Usage() string {
	return `tb show <symbol>

  Shows the asset's thesis and sizing, then its assessment and action
  history, most recent first.
`
}

func (*showCmd) SetFlags(_ *flag.FlagSet) {}

func (*showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return fail(fmt.Errorf("usage: tb show <symbol>"))
	}
	s, err := loadStore(Open())
	if err != nil {
		return fail(err)
	}
	asset, err := findAsset(s, f.Arg(0))
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.AssetMarkdown(s, asset))
	return subcommands.ExitSuccess
}
