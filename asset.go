package tradebook

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// AssetStatus is the lifecycle state of a tracked asset.
type AssetStatus string

const (
	StatusPreEntry AssetStatus = "pre-entry"
	StatusWatching AssetStatus = "watching"
	StatusHolding  AssetStatus = "holding"
	StatusCleared  AssetStatus = "cleared"
)

// ParseAssetStatus parses an asset lifecycle status.
func ParseAssetStatus(s string) (AssetStatus, error) {
	switch AssetStatus(s) {
	case StatusPreEntry, StatusWatching, StatusHolding, StatusCleared:
		return AssetStatus(s), nil
	default:
		return "", fmt.Errorf("unknown asset status: %q", s)
	}
}

// Asset is a tradable instrument under observation. Assets are never
// physically deleted: clearing a position moves the status to cleared and
// stamps closedAt, keeping the audit trail intact.
type Asset struct {
	ID           ID               `json:"id"`
	Symbol       string           `json:"symbol"`
	Status       AssetStatus      `json:"status"`
	Industry     string           `json:"industry,omitempty"`
	BuildReasons []string         `json:"buildReasons,omitempty"`
	Thesis       string           `json:"thesis,omitempty"`
	PlanQty      *decimal.Decimal `json:"planQty,omitempty"`
	HoldingQty   decimal.Decimal  `json:"holdingQty"`
	OpenedAt     *time.Time       `json:"openedAt,omitempty"`
	ClosedAt     *time.Time       `json:"closedAt,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// AddAsset appends a new asset to the store, stamping openedAt or closedAt
// when the asset is created directly in a holding or cleared state.
func (s *Store) AddAsset(a Asset, now time.Time) (*Asset, error) {
	if a.Symbol == "" {
		return nil, domainErrorf("asset symbol is required")
	}
	if a.Status == "" {
		a.Status = StatusWatching
	}
	if _, err := ParseAssetStatus(string(a.Status)); err != nil {
		return nil, domainErrorf("cannot add asset %q: %v", a.Symbol, err)
	}
	if a.ID == "" {
		a.ID = NewID("asset")
	}
	a.CreatedAt = now
	a.UpdatedAt = now
	if a.Status == StatusHolding && a.OpenedAt == nil {
		a.OpenedAt = &now
	}
	if a.Status == StatusCleared && a.ClosedAt == nil {
		a.ClosedAt = &now
	}
	s.Assets = append(s.Assets, a)
	return &s.Assets[len(s.Assets)-1], nil
}

// Asset looks up an asset by id. The reference is non-owning: a nil result
// is a legitimate answer, not a corruption.
func (s *Store) Asset(id ID) *Asset {
	for i := range s.Assets {
		if s.Assets[i].ID == id {
			return &s.Assets[i]
		}
	}
	return nil
}

// AssetBySymbol looks up an asset by its symbol.
func (s *Store) AssetBySymbol(symbol string) *Asset {
	for i := range s.Assets {
		if s.Assets[i].Symbol == symbol {
			return &s.Assets[i]
		}
	}
	return nil
}
