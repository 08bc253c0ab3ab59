package tradebook

import (
	"fmt"
	"time"
)

// ActionType names a recorded or planned trade action.
type ActionType string

const (
	ActionAdd        ActionType = "add"
	ActionReduce     ActionType = "reduce"
	ActionTakeProfit ActionType = "take-profit"
	ActionStopLoss   ActionType = "stop-loss"
	ActionHedge      ActionType = "hedge"
	ActionOther      ActionType = "other"
)

// ParseActionType parses an action type.
func ParseActionType(s string) (ActionType, error) {
	switch ActionType(s) {
	case ActionAdd, ActionReduce, ActionTakeProfit, ActionStopLoss, ActionHedge, ActionOther:
		return ActionType(s), nil
	default:
		return "", fmt.Errorf("unknown action type: %q", s)
	}
}

// ActionStatus is the lifecycle state of an action.
type ActionStatus string

const (
	ActionPlanned  ActionStatus = "planned"
	ActionExecuted ActionStatus = "executed"
	ActionReviewed ActionStatus = "reviewed"
)

// ParseActionStatus parses an action status.
func ParseActionStatus(s string) (ActionStatus, error) {
	switch ActionStatus(s) {
	case ActionPlanned, ActionExecuted, ActionReviewed:
		return ActionStatus(s), nil
	default:
		return "", fmt.Errorf("unknown action status: %q", s)
	}
}

// BackfillWindow is how long an emergency action leaves to backfill its
// assessment. The deadline is advisory data, never actively scheduled.
const BackfillWindow = 48 * time.Hour

// Action is a recorded or planned trade action. When Deviation is set, the
// three justification fields are mandatory: the journal refuses to record a
// deviation without its reason, accepted worst case and exit condition.
type Action struct {
	ID           ID           `json:"id"`
	AssetID      ID           `json:"assetId"`
	PositionID   ID           `json:"positionId,omitempty"`
	AssessmentID ID           `json:"assessmentId,omitempty"`
	Type         ActionType   `json:"actionType"`
	PlannedAt    *time.Time   `json:"plannedAt,omitempty"`
	ExecutedAt   *time.Time   `json:"executedAt,omitempty"`
	Status       ActionStatus `json:"status"`
	Emergency    bool         `json:"emergency"`
	Deviation    bool         `json:"deviation"`

	DeviationReason   string `json:"deviationReason,omitempty"`
	WorstCaseAccepted string `json:"worstCaseAccepted,omitempty"`
	ExitCondition     string `json:"exitCondition,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppendAction records an action. An emergency action that has already been
// executed also appends exactly one companion draft assessment, due for
// backfill within BackfillWindow of the execution time.
func (s *Store) AppendAction(a Action, now time.Time) (*Action, error) {
	if a.AssetID == "" {
		return nil, domainErrorf("action requires an asset")
	}
	if s.Asset(a.AssetID) == nil {
		return nil, domainErrorf("action refers to unknown asset %q", a.AssetID)
	}
	if a.Type == "" {
		a.Type = ActionOther
	}
	if _, err := ParseActionType(string(a.Type)); err != nil {
		return nil, domainErrorf("cannot append action: %v", err)
	}
	if a.Status == "" {
		a.Status = ActionPlanned
	}
	if _, err := ParseActionStatus(string(a.Status)); err != nil {
		return nil, domainErrorf("cannot append action: %v", err)
	}
	if a.Deviation {
		if a.DeviationReason == "" || a.WorstCaseAccepted == "" || a.ExitCondition == "" {
			return nil, domainErrorf("deviation requires a reason, an accepted worst case and an exit condition")
		}
	} else {
		// Justifications only exist for deviations.
		a.DeviationReason, a.WorstCaseAccepted, a.ExitCondition = "", "", ""
	}
	if a.ID == "" {
		a.ID = NewID("ac")
	}
	a.CreatedAt = now
	a.UpdatedAt = now
	s.Actions = append(s.Actions, a)
	act := &s.Actions[len(s.Actions)-1]

	if a.Emergency && a.ExecutedAt != nil {
		due := a.ExecutedAt.Add(BackfillWindow)
		if _, err := s.AppendAssessment(Assessment{
			AssetID:       a.AssetID,
			Type:          AssessEmergencyBackfill,
			Status:        AssessmentDraft,
			Emergency:     true,
			BackfillDueAt: &due,
			Explanation:   "Emergency action: complete this assessment and its evidence within 48 hours.",
		}, now); err != nil {
			return nil, err
		}
	}
	return act, nil
}

// ActionsFor returns the actions of one asset, most recent first.
func (s *Store) ActionsFor(assetID ID) []Action {
	var out []Action
	for _, a := range s.Actions {
		if a.AssetID == assetID {
			out = append(out, a)
		}
	}
	sortByCreatedDesc(out, func(a Action) time.Time { return a.CreatedAt })
	return out
}
