package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemStone is a stone record attached to an InventoryItem. Stones are
// hard-deleted on detach; only the parent item's derived aggregate is
// audited. StoneCount is informational metadata, not a multiplier on the
// parent's running stone-weight total.
type ItemStone struct {
	ID          uuid.UUID
	OrgID       uuid.UUID
	ItemID      uuid.UUID
	StoneTypeID uuid.UUID

	WeightCarats decimal.Decimal
	StoneCount   int

	Clarity        string
	Color          string
	Cut            string
	Position       string
	EstimatedValue *decimal.Decimal
	Notes          string

	CreatedAt time.Time
}

// NewStoneParams carries the caller-supplied fields for a stone attach.
type NewStoneParams struct {
	StoneTypeID    uuid.UUID
	WeightCarats   decimal.Decimal
	StoneCount     int
	Clarity        string
	Color          string
	Cut            string
	Position       string
	EstimatedValue *decimal.Decimal
	Notes          string
}

// NewItemStone constructs a valid stone record for the given item.
// StoneCount defaults to 1 when unset.
func NewItemStone(orgID, itemID uuid.UUID, p NewStoneParams) (*ItemStone, error) {
	if p.StoneTypeID == uuid.Nil {
		return nil, fmt.Errorf("stone type is required")
	}
	if !p.WeightCarats.IsPositive() {
		return nil, fmt.Errorf("stone weight must be greater than zero")
	}
	count := p.StoneCount
	if count == 0 {
		count = 1
	}
	if count < 1 {
		return nil, fmt.Errorf("stone count must be at least 1")
	}
	if p.EstimatedValue != nil && p.EstimatedValue.IsNegative() {
		return nil, fmt.Errorf("estimated value must not be negative")
	}

	return &ItemStone{
		ID:             uuid.New(),
		OrgID:          orgID,
		ItemID:         itemID,
		StoneTypeID:    p.StoneTypeID,
		WeightCarats:   p.WeightCarats,
		StoneCount:     count,
		Clarity:        p.Clarity,
		Color:          p.Color,
		Cut:            p.Cut,
		Position:       p.Position,
		EstimatedValue: p.EstimatedValue,
		Notes:          p.Notes,
		CreatedAt:      time.Now().UTC(),
	}, nil
}
