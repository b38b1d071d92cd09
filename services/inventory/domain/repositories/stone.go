package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/atelier/services/inventory/domain/models"
)

// StoneRepository is the persistence interface for ItemStone rows and the
// parent item's derived stone-weight aggregate. Attach and Detach run the
// child mutation and the aggregate adjustment in one transaction, with the
// adjustment evaluated as an atomic expression at the storage layer, so the
// aggregate can never drift from the stone ledger or go negative.
type StoneRepository interface {
	// Attach inserts the stone, increments the parent's stone_weight_carats
	// by the stone's weight, and publishes the attached event, all in one
	// transaction. Returns ErrItemNotFound when the parent item is absent
	// or soft-deleted.
	Attach(ctx context.Context, stone *models.ItemStone) error

	// Detach deletes the stone and decrements the parent's
	// stone_weight_carats by the stone's weight, clamped at zero, in one
	// transaction. Returns ErrStoneNotFound when no such stone exists for
	// the tenant.
	Detach(ctx context.Context, orgID, stoneID uuid.UUID) error

	// GetByID returns the stone or ErrStoneNotFound.
	GetByID(ctx context.Context, orgID, stoneID uuid.UUID) (*models.ItemStone, error)

	// ListByItem returns all stones attached to the item, newest first.
	ListByItem(ctx context.Context, orgID, itemID uuid.UUID) ([]*models.ItemStone, error)
}
