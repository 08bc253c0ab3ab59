package tradebook

import (
	"encoding/json"
	"time"
)

// storeKeys are the top-level fields a document must carry to be recognized
// as a store. A document missing any of them is wrong-shaped and is rejected
// rather than silently repaired, so an import of foreign data cannot wipe a
// collection.
var storeKeys = []string{"meta", "assets", "positions", "assessments", "triggers", "triggerLogs", "actions", "evidence", "reviews"}

// Normalize parses raw bytes into a Store of the current shape.
//
// It accepts any JSON-parseable value without panicking: malformed bytes are
// a *ParseError, a document without the store's top-level fields is a
// *ValidationError naming every missing field. Unknown fields are dropped,
// null collections become empty, missing meta details are left for Migrate.
func Normalize(raw []byte) (*Store, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &ParseError{Cause: err}
	}

	var missing []FieldError
	for _, k := range storeKeys {
		if _, ok := doc[k]; !ok {
			missing = append(missing, FieldError{Path: k, Message: "missing field"})
		}
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Errors: missing}
	}

	var s Store
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, &ParseError{Cause: err}
	}

	if s.Assets == nil {
		s.Assets = []Asset{}
	}
	if s.Positions == nil {
		s.Positions = []Position{}
	}
	if s.Assessments == nil {
		s.Assessments = []Assessment{}
	}
	if s.Triggers == nil {
		s.Triggers = []Trigger{}
	}
	if s.TriggerLogs == nil {
		s.TriggerLogs = []TriggerLog{}
	}
	if s.Actions == nil {
		s.Actions = []Action{}
	}
	if s.Evidence == nil {
		s.Evidence = []Evidence{}
	}
	if s.Reviews == nil {
		s.Reviews = []Review{}
	}
	return &s, nil
}

// Migrate upgrades a store from any prior schema version to the current one:
// it backfills the config block and language introduced in later versions,
// defaults missing meta timestamps, and rewrites the version tag. It runs on
// every load so the persisted document always conforms to SchemaVersion.
func Migrate(s *Store, now time.Time) *Store {
	if s.Meta.Config == nil {
		s.Meta.Config = DefaultConfig()
	}
	if s.Meta.Lang == "" {
		s.Meta.Lang = LangZH
	}
	if s.Meta.CreatedAt.IsZero() {
		s.Meta.CreatedAt = now
	}
	s.Meta.Version = SchemaVersion
	s.Meta.UpdatedAt = now
	return s
}
