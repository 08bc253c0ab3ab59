package tradebook

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Gateway is the single write path to the persisted journal. It owns one
// slot (a JSON file) and runs the normalize, migrate, validate pipeline
// around every boundary crossing.
//
// The slot has a single logical writer: calls to Update are not safe to
// overlap and must be serialized by the caller. A CLI process gives that for
// free.
type Gateway struct {
	path  string
	clock Clock
	log   zerolog.Logger
}

// GatewayOption configures a Gateway.
type GatewayOption func(*Gateway)

// WithClock pins the gateway's clock, mainly for tests.
func WithClock(c Clock) GatewayOption {
	return func(g *Gateway) { g.clock = c }
}

// WithLogger sets the gateway's logger.
func WithLogger(l zerolog.Logger) GatewayOption {
	return func(g *Gateway) { g.log = l }
}

// NewGateway returns a gateway over the slot at path.
func NewGateway(path string, opts ...GatewayOption) *Gateway {
	g := &Gateway{
		path:  path,
		clock: SystemClock,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Path returns the slot location.
func (g *Gateway) Path() string { return g.path }

// Load reads the slot and returns a store that is guaranteed to conform to
// the current schema.
//
// An absent slot synthesizes and persists a fresh default store. A slot that
// cannot be parsed, or fails validation after normalize and migrate, is
// discarded and replaced by a fresh default: in that case Load returns the
// usable default store together with a *CorruptionRecovered error so the
// caller can tell the user. Load never fails hard on corrupt data.
func (g *Gateway) Load() (*Store, error) {
	raw, err := os.ReadFile(g.path)
	if errors.Is(err, fs.ErrNotExist) {
		s := DefaultStore(g.clock())
		if werr := g.writeSlot(s); werr != nil {
			return nil, werr
		}
		return s, nil
	}
	if err != nil {
		return g.recover(err)
	}

	s, err := Normalize(raw)
	if err != nil {
		return g.recover(err)
	}
	Migrate(s, g.clock())
	if res := Validate(s); !res.OK {
		return g.recover(res.Err())
	}
	return s, nil
}

// recover implements the self-healing load path: reset to a fresh default
// and signal the recovery.
func (g *Gateway) recover(cause error) (*Store, error) {
	g.log.Warn().Err(cause).Str("slot", g.path).Msg("stored data is corrupt, resetting to defaults")
	s := DefaultStore(g.clock())
	if werr := g.writeSlot(s); werr != nil {
		return nil, werr
	}
	return s, &CorruptionRecovered{Cause: cause}
}

// Save validates the store and persists it. An invalid store is refused
// outright: the slot's previous bytes stay untouched and the caller gets the
// full *ValidationError. Save stamps meta.updatedAt.
func (g *Gateway) Save(s *Store) error {
	if s != nil {
		s.Meta.UpdatedAt = g.clock()
	}
	if res := Validate(s); !res.OK {
		err := res.Err()
		g.log.Error().Err(err).Msg("refusing to persist invalid store")
		return err
	}
	return g.writeSlot(s)
}

// Update is the journal's sole mutation path: load, deep-copy, apply the
// mutator to the copy, validate, persist. If the mutator or validation
// fails, the previously persisted store remains the durable state.
//
// A corruption recovered during the inner load is logged and the mutation
// proceeds on the fresh default store.
func (g *Gateway) Update(mutate func(*Store) error) (*Store, error) {
	s, err := g.Load()
	if err != nil {
		var recovered *CorruptionRecovered
		if !errors.As(err, &recovered) {
			return nil, err
		}
	}

	next := s.Clone()
	if err := mutate(next); err != nil {
		return nil, err
	}
	if err := g.Save(next); err != nil {
		return nil, err
	}
	return next, nil
}

// Reset discards the persisted state and recreates the default store.
func (g *Gateway) Reset() (*Store, error) {
	if err := os.Remove(g.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, &CapacityError{Cause: err}
	}
	s := DefaultStore(g.clock())
	if err := g.writeSlot(s); err != nil {
		return nil, err
	}
	return s, nil
}

// ExportBackup writes the current store to w in the pretty-printed backup
// format.
func (g *Gateway) ExportBackup(w io.Writer) error {
	s, err := g.Load()
	if err != nil {
		var recovered *CorruptionRecovered
		if !errors.As(err, &recovered) {
			return err
		}
	}
	return EncodeStoreIndent(w, s)
}

// ImportBackup replaces the persisted store with the document read from r,
// but only after it passes the full normalize, migrate, validate pipeline.
// On any failure the live state is left untouched.
func (g *Gateway) ImportBackup(r io.Reader) (*Store, error) {
	s, err := DecodeStore(r)
	if err != nil {
		return nil, err
	}
	Migrate(s, g.clock())
	if res := Validate(s); !res.OK {
		return nil, res.Err()
	}
	if err := g.writeSlot(s); err != nil {
		return nil, err
	}
	return s, nil
}

// writeSlot persists the store atomically: encode to a sibling temp file,
// then rename over the slot, so a failed write can not leave partial bytes.
func (g *Gateway) writeSlot(s *Store) error {
	dir := filepath.Dir(g.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &CapacityError{Cause: err}
	}
	tmp, err := os.CreateTemp(dir, ".tradebook-*")
	if err != nil {
		return &CapacityError{Cause: err}
	}
	defer os.Remove(tmp.Name())

	if err := EncodeStore(tmp, s); err != nil {
		tmp.Close()
		return &CapacityError{Cause: err}
	}
	if err := tmp.Close(); err != nil {
		return &CapacityError{Cause: err}
	}
	if err := os.Rename(tmp.Name(), g.path); err != nil {
		return &CapacityError{Cause: err}
	}
	return nil
}

// BackupFilename is the canonical name of an export written at time t, e.g.
// "tradebook_backup_20250101_1530.json".
func BackupFilename(t time.Time) string {
	return fmt.Sprintf("tradebook_backup_%s.json", t.Format("20060102_1504"))
}
