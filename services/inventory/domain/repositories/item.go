package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/atelier/services/inventory/domain/models"
)

// QueryOpts contains pagination and filter parameters for list queries.
type QueryOpts struct {
	Limit  int // Maximum number of records to return
	Offset int // Number of records to skip
	// Status filters to a single lifecycle state when non-empty.
	Status models.ItemStatus
}

// UniqueField names a per-tenant unique identifier column.
type UniqueField string

const (
	FieldSKU     UniqueField = "sku"
	FieldBarcode UniqueField = "barcode"
)

// ItemRepository is the persistence interface for the InventoryItem
// aggregate. The domain layer owns this interface; infrastructure
// implements it. All lookups are tenant-scoped and exclude soft-deleted
// rows unless stated otherwise.
type ItemRepository interface {
	// Insert persists a new item at version 1 and publishes the created
	// event in the same transaction. Returns ErrDuplicateSKU or
	// ErrDuplicateBarcode when a unique constraint is violated.
	Insert(ctx context.Context, item *models.InventoryItem) error

	// GetByID returns the live item or ErrItemNotFound.
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.InventoryItem, error)

	// FindByOrgID retrieves a paginated list of items for the given org.
	// Returns the items slice and the total count (ignoring pagination).
	FindByOrgID(ctx context.Context, orgID uuid.UUID, opts QueryOpts) ([]*models.InventoryItem, int, error)

	// UpdateVersioned performs the conditional (compare-and-swap) write: the
	// row is updated and its version set to expectedVersion+1 only when the
	// persisted version still equals expectedVersion. Zero affected rows
	// after a successful fetch means a concurrent writer won the race;
	// ErrConcurrentModification is returned and the item is left untouched.
	// On success item.Version is set to expectedVersion+1. prevStatus is the
	// status before the mutation; when it differs from item.Status a
	// status-changed event is published instead of a plain updated event.
	UpdateVersioned(ctx context.Context, item *models.InventoryItem, expectedVersion int, prevStatus models.ItemStatus) error

	// SoftDelete marks the item deleted. The row keeps its version history;
	// uniqueness checks ignore soft-deleted rows from then on.
	SoftDelete(ctx context.Context, orgID, id, actor uuid.UUID) error

	// IdentifierExists reports whether a live item of the tenant already
	// carries the given sku/barcode value, excluding the item with id
	// excludeID (pass uuid.Nil for creation checks).
	IdentifierExists(ctx context.Context, orgID uuid.UUID, field UniqueField, value string, excludeID uuid.UUID) (bool, error)

	// CountLive returns the number of non-deleted items of the tenant.
	// Feeds the barcode sequence suffix.
	CountLive(ctx context.Context, orgID uuid.UUID) (int64, error)
}
