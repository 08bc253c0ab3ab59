package cmd

import (
	"context"
	"flag"

	"github.com/etnz/tradebook/renderer"
	"github.com/google/subcommands"
)

type assetsCmd struct{}

func (*assetsCmd) Name() string     { return "assets" }
func (*assetsCmd) Synopsis() string { return "list the assets under observation" }
func (*assetsCmd) Usage() string {
	return `tb assets

  Lists every asset in the journal with its status and holding.
`
}

func (*assetsCmd) SetFlags(_ *flag.FlagSet) {}

func (*assetsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadStore(Open())
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.AssetsMarkdown(s))
	return subcommands.ExitSuccess
}
