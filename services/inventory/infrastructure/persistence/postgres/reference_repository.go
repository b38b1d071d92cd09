package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/atelier/pkg/database"
	invdomain "github.com/ghuser/atelier/services/inventory/domain"
	"github.com/ghuser/atelier/services/inventory/domain/models"
)

// refTables maps each reference kind to its lookup table. Table names come
// from this fixed map, never from input, so the interpolation below is safe.
var refTables = map[models.RefKind]string{
	models.RefCategory:    "categories",
	models.RefMetalType:   "metal_types",
	models.RefMetalPurity: "metal_purities",
	models.RefStoneType:   "stone_types",
	models.RefSize:        "sizes",
}

// ReferenceRepository implements repositories.ReferenceRepository against
// PostgreSQL.
type ReferenceRepository struct {
	db *database.Database
}

// NewReferenceRepository returns a ReferenceRepository backed by the given
// connection pool.
func NewReferenceRepository(db *database.Database) *ReferenceRepository {
	return &ReferenceRepository{db: db}
}

// ReferenceExists reports whether a live row of the given kind exists for
// the tenant.
func (r *ReferenceRepository) ReferenceExists(ctx context.Context, orgID uuid.UUID, kind models.RefKind, id uuid.UUID) (bool, error) {
	table, ok := refTables[kind]
	if !ok {
		return false, fmt.Errorf("unknown reference kind %q", kind)
	}

	var exists bool
	err := r.db.DB().QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM `+table+`
			WHERE id = $1 AND org_id = $2 AND deleted_at IS NULL
		)`,
		id, orgID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check %s exists: %w", kind, err)
	}
	return exists, nil
}

// OrgName returns the tenant's display name. A missing organization means
// the auth context handed us a bad tenant id, surfaced as a database error.
func (r *ReferenceRepository) OrgName(ctx context.Context, orgID uuid.UUID) (string, error) {
	var name string
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT name FROM organizations WHERE id = $1`, orgID,
	).Scan(&name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("%w: organization %s not found", invdomain.ErrDatabase, orgID)
		}
		return "", fmt.Errorf("%w: query organization: %v", invdomain.ErrDatabase, err)
	}
	return name, nil
}

// CategoryName returns the category's display name, or "" when id is nil or
// the category is missing (the reference validator reports that case).
func (r *ReferenceRepository) CategoryName(ctx context.Context, orgID uuid.UUID, id *uuid.UUID) (string, error) {
	if id == nil || *id == uuid.Nil {
		return "", nil
	}
	var name string
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT name FROM categories WHERE id = $1 AND org_id = $2 AND deleted_at IS NULL`,
		*id, orgID,
	).Scan(&name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("%w: query category: %v", invdomain.ErrDatabase, err)
	}
	return name, nil
}
