package tradebook

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supporting records. They are structurally validated like every other
// collection but carry no computation of their own.

// Position is a sizing record for an asset.
type Position struct {
	ID        ID              `json:"id"`
	AssetID   ID              `json:"assetId"`
	Quantity  decimal.Decimal `json:"quantity"`
	OpenedAt  *time.Time      `json:"openedAt,omitempty"`
	Note      string          `json:"note,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// Evidence is a supporting document attached to an asset, optionally to the
// assessment it supports.
type Evidence struct {
	ID           ID        `json:"id"`
	AssetID      ID        `json:"assetId"`
	AssessmentID ID        `json:"assessmentId,omitempty"`
	Title        string    `json:"title"`
	URL          string    `json:"url,omitempty"`
	Note         string    `json:"note,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Review is a post-action retrospective.
type Review struct {
	ID        ID        `json:"id"`
	AssetID   ID        `json:"assetId"`
	ActionID  ID        `json:"actionId,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
