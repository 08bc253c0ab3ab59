package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/tradebook"
	"github.com/google/subcommands"
)

type initCmd struct {
	demo bool
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create the journal file" }
func (*initCmd) Usage() string {
	return `tb init [-demo]

  Creates the journal file in the journal directory if it does not exist yet.
  With -demo, seeds it with a demo asset so the views have something to show.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.demo, "demo", false, "Seed the journal with demo data.")
}

func (c *initCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	gw := Open()
	s, err := loadStore(gw)
	if err != nil {
		return fail(err)
	}
	if c.demo && len(s.Assets) == 0 {
		seed := tradebook.SeedStore(tradebook.SystemClock())
		if err := gw.Save(seed); err != nil {
			return fail(err)
		}
		s = seed
	}
	fmt.Printf("Journal ready at %s (%d assets).\n", gw.Path(), len(s.Assets))
	return subcommands.ExitSuccess
}
