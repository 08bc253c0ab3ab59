package tradebook

import (
	"fmt"
	"time"
)

// TriggerPolicy is the restriction applied while a trigger is firing.
type TriggerPolicy string

const (
	// PolicyBlock blocks any further exposure until the firing is assessed.
	PolicyBlock TriggerPolicy = "block-exposure"
	// PolicyRemind only reminds; exposure stays allowed.
	PolicyRemind TriggerPolicy = "remind-only"
)

// ParseTriggerPolicy parses a trigger restriction policy.
func ParseTriggerPolicy(s string) (TriggerPolicy, error) {
	switch TriggerPolicy(s) {
	case PolicyBlock, PolicyRemind:
		return TriggerPolicy(s), nil
	default:
		return "", fmt.Errorf("unknown trigger policy: %q", s)
	}
}

// TriggerLogStatus is the lifecycle state of a trigger firing.
type TriggerLogStatus string

const (
	FiringOpen         TriggerLogStatus = "open"
	FiringInAssessment TriggerLogStatus = "in-assessment"
	FiringCompleted    TriggerLogStatus = "completed"
	FiringSnoozed      TriggerLogStatus = "snoozed"
)

// ParseTriggerLogStatus parses a trigger-log status.
func ParseTriggerLogStatus(s string) (TriggerLogStatus, error) {
	switch TriggerLogStatus(s) {
	case FiringOpen, FiringInAssessment, FiringCompleted, FiringSnoozed:
		return TriggerLogStatus(s), nil
	default:
		return "", fmt.Errorf("unknown trigger-log status: %q", s)
	}
}

// Trigger is a named condition watched on an asset, e.g. "price breaks the
// key level".
type Trigger struct {
	ID        ID            `json:"id"`
	AssetID   ID            `json:"assetId"`
	Name      string        `json:"name"`
	Condition string        `json:"condition,omitempty"`
	Policy    TriggerPolicy `json:"policy"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// TriggerLog records one firing of a trigger. An assessment created for the
// firing references it through triggerLogId.
type TriggerLog struct {
	ID        ID               `json:"id"`
	TriggerID ID               `json:"triggerId"`
	AssetID   ID               `json:"assetId"`
	FiredAt   time.Time        `json:"firedAt"`
	Status    TriggerLogStatus `json:"status"`
	Note      string           `json:"note,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// AddTrigger registers a watched condition on an asset.
func (s *Store) AddTrigger(t Trigger, now time.Time) (*Trigger, error) {
	if t.AssetID == "" {
		return nil, domainErrorf("trigger requires an asset")
	}
	if s.Asset(t.AssetID) == nil {
		return nil, domainErrorf("trigger refers to unknown asset %q", t.AssetID)
	}
	if t.Name == "" {
		return nil, domainErrorf("trigger name is required")
	}
	if t.Policy == "" {
		t.Policy = PolicyRemind
	}
	if _, err := ParseTriggerPolicy(string(t.Policy)); err != nil {
		return nil, domainErrorf("cannot add trigger: %v", err)
	}
	if t.ID == "" {
		t.ID = NewID("tr")
	}
	t.CreatedAt = now
	t.UpdatedAt = now
	s.Triggers = append(s.Triggers, t)
	return &s.Triggers[len(s.Triggers)-1], nil
}

// Trigger looks up a trigger by id.
func (s *Store) Trigger(id ID) *Trigger {
	for i := range s.Triggers {
		if s.Triggers[i].ID == id {
			return &s.Triggers[i]
		}
	}
	return nil
}

// FireTrigger records that a trigger's condition was met. The firing starts
// open; assessing it moves the log through its lifecycle.
func (s *Store) FireTrigger(triggerID ID, note string, now time.Time) (*TriggerLog, error) {
	t := s.Trigger(triggerID)
	if t == nil {
		return nil, domainErrorf("cannot fire unknown trigger %q", triggerID)
	}
	log := TriggerLog{
		ID:        NewID("tl"),
		TriggerID: t.ID,
		AssetID:   t.AssetID,
		FiredAt:   now,
		Status:    FiringOpen,
		Note:      note,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.TriggerLogs = append(s.TriggerLogs, log)
	return &s.TriggerLogs[len(s.TriggerLogs)-1], nil
}
