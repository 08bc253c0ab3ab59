package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/tradebook"
	"github.com/google/subcommands"
)

type langCmd struct{}

func (*langCmd) Name() string     { return "lang" }
func (*langCmd) Synopsis() string { return "show or switch the display language" }
func (*langCmd) Usage() string {
	return `tb lang [zh|en]

  Without an argument, toggles between Chinese and English. With one,
  switches to it.
`
}

func (*langCmd) SetFlags(_ *flag.FlagSet) {}

func (*langCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var lang tradebook.Lang
	switch f.Arg(0) {
	case "":
		// toggle below, once the store is loaded
	case "zh":
		lang = tradebook.LangZH
	case "en":
		lang = tradebook.LangEN
	default:
		return fail(fmt.Errorf("unknown language %q, want zh or en", f.Arg(0)))
	}
	next, err := Open().Update(func(s *tradebook.Store) error {
		if lang != "" {
			s.Meta.Lang = lang
			return nil
		}
		if s.Meta.Lang == tradebook.LangEN {
			s.Meta.Lang = tradebook.LangZH
		} else {
			s.Meta.Lang = tradebook.LangEN
		}
		return nil
	})
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Language is now %s.\n", next.Meta.Lang)
	return subcommands.ExitSuccess
}

type configCmd struct {
	list   string
	add    string
	remove string
	rename string
}

func (*configCmd) Name() string     { return "config" }
func (*configCmd) Synopsis() string { return "edit the configurable display lists" }
func (*configCmd) Usage() string {
	return `tb config -list <statuses|reasons|industries> [-add <v>] [-remove <v>] [-rename <old>=<new>]

  Edits one of the three user-configurable lists (asset statuses, build
  reasons, industries). Without an edit flag, prints the list.

Usage Examples:
$ tb config -list industries -add "Defense"
$ tb config -list reasons -rename "breakout=right-side breakout"
`
}

func (c *configCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.list, "list", "", "Which list to edit: statuses, reasons or industries (required).")
	f.StringVar(&c.add, "add", "", "Append a value.")
	f.StringVar(&c.remove, "remove", "", "Remove a value.")
	f.StringVar(&c.rename, "rename", "", "Rename a value, as old=new.")
}

func (c *configCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	pick := func(cfg *tradebook.Config) *[]string {
		switch c.list {
		case "statuses":
			return &cfg.AssetStatuses
		case "reasons":
			return &cfg.BuildReasons
		case "industries":
			return &cfg.Industries
		default:
			return nil
		}
	}

	if c.add == "" && c.remove == "" && c.rename == "" {
		s, err := loadStore(Open())
		if err != nil {
			return fail(err)
		}
		list := pick(s.Meta.Config)
		if list == nil {
			return fail(fmt.Errorf("-list must be statuses, reasons or industries"))
		}
		for _, v := range *list {
			fmt.Println(v)
		}
		return subcommands.ExitSuccess
	}

	_, err := Open().Update(func(s *tradebook.Store) error {
		list := pick(s.Meta.Config)
		if list == nil {
			return fmt.Errorf("-list must be statuses, reasons or industries")
		}
		if c.add != "" {
			*list = tradebook.AddToList(*list, c.add)
		}
		if c.remove != "" {
			*list = tradebook.RemoveFromList(*list, c.remove)
		}
		if c.rename != "" {
			old, new, ok := strings.Cut(c.rename, "=")
			if !ok {
				return fmt.Errorf("-rename wants old=new, got %q", c.rename)
			}
			*list = tradebook.ReplaceInList(*list, old, new)
		}
		return nil
	})
	if err != nil {
		return fail(err)
	}
	fmt.Println("Config updated.")
	return subcommands.ExitSuccess
}
