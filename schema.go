package tradebook

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// SchemaVersion is stamped into every persisted document and rewritten to the
// current value on load.
const SchemaVersion = "1.0.4"

// Lang is the display language preference.
type Lang string

const (
	LangZH Lang = "zh"
	LangEN Lang = "en"
)

// Config holds the user-configurable display lists.
type Config struct {
	AssetStatuses []string `json:"assetStatuses"`
	BuildReasons  []string `json:"buildReasons"`
	Industries    []string `json:"industries"`
}

// Meta is the document header of a Store.
type Meta struct {
	Version   string    `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Lang      Lang      `json:"lang,omitempty"`
	Config    *Config   `json:"config,omitempty"`
}

// Store is the root aggregate: the single document the whole journal lives
// in. Every entity is owned by exactly one of the eight collections;
// cross-references are id lookups, never live links. Insertion order is
// preserved, display recency is derived by sorting on timestamps at read
// time.
type Store struct {
	Meta        Meta         `json:"meta"`
	Assets      []Asset      `json:"assets"`
	Positions   []Position   `json:"positions"`
	Assessments []Assessment `json:"assessments"`
	Triggers    []Trigger    `json:"triggers"`
	TriggerLogs []TriggerLog `json:"triggerLogs"`
	Actions     []Action     `json:"actions"`
	Evidence    []Evidence   `json:"evidence"`
	Reviews     []Review     `json:"reviews"`
}

// DefaultConfig returns a fresh copy of the seed display lists.
func DefaultConfig() *Config {
	return &Config{
		AssetStatuses: []string{"pre-entry", "watching", "holding", "cleared"},
		BuildReasons:  []string{"long-term thesis", "event-driven", "breakout", "retest-confirmed", "valuation", "position management"},
		Industries:    []string{"Space", "AI", "Nuclear", "Semiconductors", "Crypto", "Other"},
	}
}

// DefaultStore returns an empty, valid store stamped at 'now'.
func DefaultStore(now time.Time) *Store {
	return &Store{
		Meta: Meta{
			Version:   SchemaVersion,
			CreatedAt: now,
			UpdatedAt: now,
			Lang:      LangZH,
			Config:    DefaultConfig(),
		},
		Assets:      []Asset{},
		Positions:   []Position{},
		Assessments: []Assessment{},
		Triggers:    []Trigger{},
		TriggerLogs: []TriggerLog{},
		Actions:     []Action{},
		Evidence:    []Evidence{},
		Reviews:     []Review{},
	}
}

// SeedStore returns a default store with one demo asset, used on first run so
// the views have something to show.
func SeedStore(now time.Time) *Store {
	s := DefaultStore(now)
	plan := decimal.NewFromInt(200)
	s.Assets = append(s.Assets, Asset{
		ID:           NewID("asset"),
		Symbol:       "TSLA",
		Status:       StatusHolding,
		Industry:     "AI",
		BuildReasons: []string{"long-term thesis"},
		Thesis:       "Demo: turn the flat-position stance into a product.",
		PlanQty:      &plan,
		HoldingQty:   decimal.NewFromInt(150),
		OpenedAt:     &now,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	return s
}

// Clone returns a deep copy of the store. Update mutates the copy so a
// mutator that fails mid-way can never corrupt the persisted state.
func (s *Store) Clone() *Store {
	c := *s
	c.Meta.Config = nil
	if s.Meta.Config != nil {
		cfg := Config{
			AssetStatuses: slices.Clone(s.Meta.Config.AssetStatuses),
			BuildReasons:  slices.Clone(s.Meta.Config.BuildReasons),
			Industries:    slices.Clone(s.Meta.Config.Industries),
		}
		c.Meta.Config = &cfg
	}
	c.Assets = slices.Clone(s.Assets)
	for i := range c.Assets {
		c.Assets[i].BuildReasons = slices.Clone(c.Assets[i].BuildReasons)
		c.Assets[i].PlanQty = cloneptr(c.Assets[i].PlanQty)
		c.Assets[i].OpenedAt = cloneptr(c.Assets[i].OpenedAt)
		c.Assets[i].ClosedAt = cloneptr(c.Assets[i].ClosedAt)
	}
	c.Positions = slices.Clone(s.Positions)
	for i := range c.Positions {
		c.Positions[i].OpenedAt = cloneptr(c.Positions[i].OpenedAt)
	}
	c.Assessments = slices.Clone(s.Assessments)
	for i := range c.Assessments {
		c.Assessments[i].BackfillDueAt = cloneptr(c.Assessments[i].BackfillDueAt)
	}
	c.Triggers = slices.Clone(s.Triggers)
	c.TriggerLogs = slices.Clone(s.TriggerLogs)
	c.Actions = slices.Clone(s.Actions)
	for i := range c.Actions {
		c.Actions[i].PlannedAt = cloneptr(c.Actions[i].PlannedAt)
		c.Actions[i].ExecutedAt = cloneptr(c.Actions[i].ExecutedAt)
	}
	c.Evidence = slices.Clone(s.Evidence)
	c.Reviews = slices.Clone(s.Reviews)
	return &c
}

func cloneptr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// sortByCreatedDesc orders a derived view most recent first without touching
// the store's insertion order.
func sortByCreatedDesc[T any](xs []T, at func(T) time.Time) {
	slices.SortStableFunc(xs, func(a, b T) int { return at(b).Compare(at(a)) })
}
