package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestNewItemStone_Defaults(t *testing.T) {
	orgID, itemID := uuid.New(), uuid.New()
	stone, err := NewItemStone(orgID, itemID, NewStoneParams{
		StoneTypeID:  uuid.New(),
		WeightCarats: decimal.NewFromFloat(0.52),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stone.StoneCount != 1 {
		t.Errorf("count defaults to 1, got %d", stone.StoneCount)
	}
	if stone.OrgID != orgID || stone.ItemID != itemID {
		t.Error("tenant or parent id not stamped")
	}
	if stone.ID == uuid.Nil {
		t.Error("stone must get an id")
	}
}

func TestNewItemStone_Validation(t *testing.T) {
	negative := decimal.NewFromInt(-100)
	cases := []struct {
		name string
		p    NewStoneParams
	}{
		{"missing stone type", NewStoneParams{WeightCarats: decimal.NewFromFloat(0.5)}},
		{"zero weight", NewStoneParams{StoneTypeID: uuid.New()}},
		{"negative weight", NewStoneParams{StoneTypeID: uuid.New(), WeightCarats: decimal.NewFromInt(-1)}},
		{"negative count", NewStoneParams{StoneTypeID: uuid.New(), WeightCarats: decimal.NewFromFloat(0.5), StoneCount: -2}},
		{"negative estimated value", NewStoneParams{StoneTypeID: uuid.New(), WeightCarats: decimal.NewFromFloat(0.5), EstimatedValue: &negative}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewItemStone(uuid.New(), uuid.New(), tc.p); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestNewItemStone_ExplicitCount(t *testing.T) {
	stone, err := NewItemStone(uuid.New(), uuid.New(), NewStoneParams{
		StoneTypeID:  uuid.New(),
		WeightCarats: decimal.NewFromFloat(1.2),
		StoneCount:   12,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stone.StoneCount != 12 {
		t.Errorf("explicit count not kept, got %d", stone.StoneCount)
	}
}
