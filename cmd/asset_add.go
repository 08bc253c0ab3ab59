package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/tradebook"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type assetAddCmd struct {
	symbol   string
	status   string
	industry string
	thesis   string
	reasons  string
	planQty  string
	qty      string
}

func (*assetAddCmd) Name() string     { return "add" }
func (*assetAddCmd) Synopsis() string { return "register an asset under observation" }
func (*assetAddCmd) Usage() string {
	return `tb add -symbol <symbol> [-status <status>] [-industry <industry>] [-thesis <text>] [-reasons <a,b>] [-plan <qty>] [-qty <qty>]

  Registers a tradable instrument in the journal. Assets are never deleted;
  clearing a position later moves its status to "cleared".

Usage Examples:
$ tb add -symbol TSLA -status watching -industry AI -thesis "space + autonomy"
`
}

func (c *assetAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Ticker symbol (required).")
	f.StringVar(&c.status, "status", "watching", "Lifecycle status (pre-entry, watching, holding, cleared).")
	f.StringVar(&c.industry, "industry", "", "Industry tag.")
	f.StringVar(&c.thesis, "thesis", "", "Free-text thesis.")
	f.StringVar(&c.reasons, "reasons", "", "Comma-separated build reasons.")
	f.StringVar(&c.planQty, "plan", "", "Planned quantity (optional).")
	f.StringVar(&c.qty, "qty", "0", "Current holding quantity.")
}

func (c *assetAddCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		return fail(fmt.Errorf("-symbol is required"))
	}
	status, err := tradebook.ParseAssetStatus(c.status)
	if err != nil {
		return fail(err)
	}
	qty, err := decimal.NewFromString(c.qty)
	if err != nil {
		return fail(fmt.Errorf("-qty must be a number: %w", err))
	}
	var plan *decimal.Decimal
	if c.planQty != "" {
		p, err := decimal.NewFromString(c.planQty)
		if err != nil {
			return fail(fmt.Errorf("-plan must be a number or empty: %w", err))
		}
		plan = &p
	}
	var reasons []string
	for _, r := range strings.Split(c.reasons, ",") {
		if r = strings.TrimSpace(r); r != "" {
			reasons = append(reasons, r)
		}
	}

	gw := Open()
	_, err = gw.Update(func(s *tradebook.Store) error {
		_, err := s.AddAsset(tradebook.Asset{
			Symbol:       strings.ToUpper(c.symbol),
			Status:       status,
			Industry:     c.industry,
			Thesis:       c.thesis,
			BuildReasons: reasons,
			PlanQty:      plan,
			HoldingQty:   qty,
		}, tradebook.SystemClock())
		return err
	})
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Added asset %s.\n", strings.ToUpper(c.symbol))
	return subcommands.ExitSuccess
}
