package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemType classifies what kind of stock an item is.
type ItemType string

const (
	ItemTypeFinished    ItemType = "finished"
	ItemTypeRawMaterial ItemType = "raw_material"
	ItemTypeComponent   ItemType = "component"
)

// IsValid reports whether t is a known item type.
func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeFinished, ItemTypeRawMaterial, ItemTypeComponent:
		return true
	}
	return false
}

// OwnershipType records who owns the stock on hand.
type OwnershipType string

const (
	OwnershipOwned       OwnershipType = "owned"
	OwnershipConsignment OwnershipType = "consignment"
	OwnershipMemo        OwnershipType = "memo"
)

// IsValid reports whether o is a known ownership type.
func (o OwnershipType) IsValid() bool {
	switch o {
	case OwnershipOwned, OwnershipConsignment, OwnershipMemo:
		return true
	}
	return false
}

// InventoryItem is the aggregate root of the inventory bounded context.
// Version implements optimistic concurrency: it starts at 1 and every
// successful mutation increments it by exactly one via a conditional write.
// StoneWeightCarats is derived from the attached ItemStone records and is
// never authored directly.
type InventoryItem struct {
	ID    uuid.UUID
	OrgID uuid.UUID // tenant scope — always filter by this in queries

	Name        string
	Description string
	SKU         string
	Barcode     string

	ItemType      ItemType
	OwnershipType OwnershipType
	Status        ItemStatus

	WeightGrams       decimal.Decimal
	StoneWeightCarats decimal.Decimal
	PurchasePrice     decimal.Decimal
	Currency          string

	References References

	Version int

	CreatedAt time.Time
	CreatedBy uuid.UUID
	UpdatedAt time.Time
	UpdatedBy uuid.UUID
	DeletedAt *time.Time
}

// NewItemParams carries the caller-supplied fields for a new item. SKU and
// Barcode may be empty, in which case the application layer generates them.
type NewItemParams struct {
	Name          string
	Description   string
	SKU           string
	Barcode       string
	ItemType      ItemType
	OwnershipType OwnershipType
	WeightGrams   decimal.Decimal
	PurchasePrice decimal.Decimal
	Currency      string
	References    References
}

// NewInventoryItem constructs a valid item aggregate. New items always start
// in the available state at version 1.
func NewInventoryItem(orgID, actor uuid.UUID, p NewItemParams) (*InventoryItem, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, fmt.Errorf("item name is required")
	}
	if !p.ItemType.IsValid() {
		return nil, fmt.Errorf("unknown item type %q", p.ItemType)
	}
	if !p.OwnershipType.IsValid() {
		return nil, fmt.Errorf("unknown ownership type %q", p.OwnershipType)
	}
	if p.WeightGrams.IsNegative() {
		return nil, fmt.Errorf("weight must not be negative")
	}
	if p.PurchasePrice.IsNegative() {
		return nil, fmt.Errorf("purchase price must not be negative")
	}

	now := time.Now().UTC()
	return &InventoryItem{
		ID:            uuid.New(),
		OrgID:         orgID,
		Name:          name,
		Description:   p.Description,
		SKU:           p.SKU,
		Barcode:       p.Barcode,
		ItemType:      p.ItemType,
		OwnershipType: p.OwnershipType,
		Status:        StatusAvailable,
		WeightGrams:   p.WeightGrams,
		PurchasePrice: p.PurchasePrice,
		Currency:      p.Currency,
		References:    p.References,
		Version:       1,
		CreatedAt:     now,
		CreatedBy:     actor,
		UpdatedAt:     now,
		UpdatedBy:     actor,
	}, nil
}

// IsDeleted reports whether the item is soft-deleted.
func (i *InventoryItem) IsDeleted() bool {
	return i.DeletedAt != nil
}

// Editable reports whether generic field updates are allowed in the item's
// current lifecycle state.
func (i *InventoryItem) Editable() bool {
	return !editBlockedStatuses[i.Status]
}

// Deletable reports whether the item may be soft-deleted in its current
// lifecycle state.
func (i *InventoryItem) Deletable() bool {
	return !deleteBlockedStatuses[i.Status]
}

// ApplyStatus records a validated transition on the aggregate: the new
// status, audit stamps, and the optional free-text reason appended to the
// description trail. Callers must have checked CanTransition first; the
// conditional write bumps Version at the store.
func (i *InventoryItem) ApplyStatus(to ItemStatus, reason string, actor uuid.UUID) {
	if reason != "" {
		trail := fmt.Sprintf("[status] %s → %s: %s", i.Status, to, reason)
		if i.Description == "" {
			i.Description = trail
		} else {
			i.Description = i.Description + "\n" + trail
		}
	}
	i.Status = to
	i.Touch(actor)
}

// Touch stamps the audit fields for a mutation by actor.
func (i *InventoryItem) Touch(actor uuid.UUID) {
	i.UpdatedAt = time.Now().UTC()
	i.UpdatedBy = actor
}
