// Package cmd implements the CLI application to keep a trade-discipline
// journal.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/tradebook"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

const slotFilename = "tradebook.json"

var errMissingAsset = errors.New("-asset is required")

var journalDir = flag.String("dir", "", "Directory holding the journal file (defaults to $TRADEBOOK_DIR, then the working directory)")

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// journalPath resolves the slot location from the flag, then the
// environment, then the working directory.
func journalPath() string {
	dir := *journalDir
	if dir == "" {
		dir = os.Getenv("TRADEBOOK_DIR")
	}
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, slotFilename)
}

// Open returns the gateway every command goes through.
func Open() *tradebook.Gateway {
	return tradebook.NewGateway(journalPath(), tradebook.WithLogger(logger))
}

// loadStore loads the journal, downgrading a corruption recovery to a
// warning: the returned store is always usable.
func loadStore(gw *tradebook.Gateway) (*tradebook.Store, error) {
	s, err := gw.Load()
	if err != nil {
		var recovered *tradebook.CorruptionRecovered
		if !errors.As(err, &recovered) {
			return nil, err
		}
		fmt.Fprintf(os.Stderr, "Warning: %v\n", recovered)
	}
	return s, nil
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer cannot run (e.g. no TTY).
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// fail prints the error and returns the failure status; commands use it as
// their single error exit.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, err)
	return subcommands.ExitFailure
}

// parseMaybeDT parses an optional user-supplied timestamp. An empty string
// is a nil time, not an error.
func parseMaybeDT(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02 15:04", time.RFC3339, "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			utc := t.UTC()
			return &utc, nil
		}
	}
	return nil, fmt.Errorf("cannot parse time %q, want \"YYYY-MM-DD HH:mm\"", s)
}

// findAsset resolves a user-supplied asset reference, by symbol first, then
// by id.
func findAsset(s *tradebook.Store, ref string) (*tradebook.Asset, error) {
	if a := s.AssetBySymbol(ref); a != nil {
		return a, nil
	}
	if a := s.Asset(tradebook.ID(ref)); a != nil {
		return a, nil
	}
	return nil, fmt.Errorf("unknown asset %q", ref)
}
