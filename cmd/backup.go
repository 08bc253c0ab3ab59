package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tradebook"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the whole journal to a backup file" }
func (*exportCmd) Usage() string {
	return `tb export [-o <file>]

  Writes the whole journal, pretty-printed, to a portable backup file. The
  default name stamps the current time, e.g. tradebook_backup_20250101_1530.json.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Backup file to write (defaults to the timestamped name).")
}

func (c *exportCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name := c.output
	if name == "" {
		name = tradebook.BackupFilename(tradebook.SystemClock())
	}
	f, err := os.Create(name)
	if err != nil {
		return fail(err)
	}
	defer f.Close()
	if err := Open().ExportBackup(f); err != nil {
		return fail(err)
	}
	fmt.Printf("Exported backup to %s.\n", name)
	return subcommands.ExitSuccess
}

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a backup file, replacing the journal" }
func (*importCmd) Usage() string {
	return `tb import <file>

  Replaces the journal with the backup's content, but only after it passes
  the full consistency pipeline. On any failure the current journal is left
  untouched.
`
}

func (*importCmd) SetFlags(_ *flag.FlagSet) {}

func (*importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return fail(fmt.Errorf("usage: tb import <file>"))
	}
	file, err := os.Open(f.Arg(0))
	if err != nil {
		return fail(err)
	}
	defer file.Close()
	s, err := Open().ImportBackup(file)
	if err != nil {
		return fail(fmt.Errorf("import rejected: %w", err))
	}
	fmt.Printf("Imported %d assets, %d assessments, %d actions.\n", len(s.Assets), len(s.Assessments), len(s.Actions))
	return subcommands.ExitSuccess
}

type resetCmd struct {
	force bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "discard the journal and start fresh" }
func (*resetCmd) Usage() string {
	return `tb reset -force

  Discards all persisted data and recreates the default journal. Export a
  backup first. Refuses to run without -force.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "force", false, "Really discard all data.")
}

func (c *resetCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.force {
		return fail(fmt.Errorf("reset discards all data: export a backup first, then run with -force"))
	}
	if _, err := Open().Reset(); err != nil {
		return fail(err)
	}
	fmt.Println("Journal reset to defaults.")
	return subcommands.ExitSuccess
}
