package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/atelier/services/inventory/domain/models"
)

// ReferenceRepository resolves the lookup tables an item may reference.
// Every check is tenant-scoped and ignores soft-deleted rows.
type ReferenceRepository interface {
	// ReferenceExists reports whether a live row of the given kind exists
	// for the tenant.
	ReferenceExists(ctx context.Context, orgID uuid.UUID, kind models.RefKind, id uuid.UUID) (bool, error)

	// OrgName returns the tenant's display name. Feeds the SKU shop code.
	OrgName(ctx context.Context, orgID uuid.UUID) (string, error)

	// CategoryName returns the category's display name, or "" when id is
	// nil. Feeds the SKU category prefix.
	CategoryName(ctx context.Context, orgID uuid.UUID, id *uuid.UUID) (string, error)
}
