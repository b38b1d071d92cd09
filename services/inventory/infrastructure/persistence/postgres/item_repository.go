// Package postgres implements the inventory repository interfaces against
// PostgreSQL with hand-written SQL. Uniqueness of SKU and barcode among
// live rows is enforced by partial unique indexes; the repositories map the
// resulting constraint violations onto the domain error taxonomy.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/atelier/pkg/database"
	"github.com/ghuser/atelier/pkg/events"
	invdomain "github.com/ghuser/atelier/services/inventory/domain"
	domainevents "github.com/ghuser/atelier/services/inventory/domain/events"
	"github.com/ghuser/atelier/services/inventory/domain/models"
	"github.com/ghuser/atelier/services/inventory/domain/repositories"
)

const pgUniqueViolation = "23505"

// itemColumns is the select list shared by every item query, in scanItem order.
const itemColumns = `id, org_id, name, description, sku, barcode,
	item_type, ownership_type, status,
	weight_grams, stone_weight_carats, purchase_price, currency,
	category_id, metal_type_id, metal_purity_id, stone_type_id, size_id,
	version, created_at, created_by, updated_at, updated_by, deleted_at`

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
// Mutations publish their domain event within the same transaction (outbox).
type ItemRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewItemRepository returns an ItemRepository backed by the given connection
// pool and event bus. The bus may be nil in tests.
func NewItemRepository(db *database.Database, bus *events.EventBus) *ItemRepository {
	return &ItemRepository{db: db, bus: bus}
}

// Insert persists a new item and publishes ItemCreatedEvent in the same
// transaction. Unique constraint violations map to ErrDuplicateSKU or
// ErrDuplicateBarcode.
func (r *ItemRepository) Insert(ctx context.Context, item *models.InventoryItem) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO inventory_items (
				id, org_id, name, description, sku, barcode,
				item_type, ownership_type, status,
				weight_grams, stone_weight_carats, purchase_price, currency,
				category_id, metal_type_id, metal_purity_id, stone_type_id, size_id,
				version, created_at, created_by, updated_at, updated_by
			) VALUES (
				$1, $2, $3, $4, $5, $6,
				$7, $8, $9,
				$10, $11, $12, $13,
				$14, $15, $16, $17, $18,
				$19, $20, $21, $22, $23
			)`,
			item.ID, item.OrgID, item.Name, item.Description, item.SKU, item.Barcode,
			item.ItemType, item.OwnershipType, item.Status,
			item.WeightGrams, item.StoneWeightCarats, item.PurchasePrice, item.Currency,
			nullUUID(item.References.CategoryID), nullUUID(item.References.MetalTypeID),
			nullUUID(item.References.MetalPurityID), nullUUID(item.References.StoneTypeID),
			nullUUID(item.References.SizeID),
			item.Version, item.CreatedAt, item.CreatedBy, item.UpdatedAt, item.UpdatedBy,
		)
		if err != nil {
			if dup := mapUniqueViolation(err); dup != nil {
				return dup
			}
			return fmt.Errorf("%w: insert item: %v", invdomain.ErrDatabase, err)
		}

		return publishEvent(r.bus, tx, domainevents.TopicItemCreated, domainevents.ItemCreatedEvent{
			EventID:    uuid.New(),
			ItemID:     item.ID,
			OrgID:      item.OrgID,
			SKU:        item.SKU,
			Barcode:    item.Barcode,
			Status:     string(item.Status),
			OccurredAt: item.CreatedAt,
		})
	})
}

// GetByID retrieves a live item scoped to the org. Returns ErrItemNotFound
// when absent or soft-deleted.
func (r *ItemRepository) GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.InventoryItem, error) {
	row := r.db.DB().QueryRowContext(ctx, `
		SELECT `+itemColumns+`
		FROM inventory_items
		WHERE id = $1 AND org_id = $2 AND deleted_at IS NULL`,
		id, orgID,
	)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invdomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("%w: query item: %v", invdomain.ErrDatabase, err)
	}
	return item, nil
}

// FindByOrgID retrieves a paginated list of live items plus the total count.
func (r *ItemRepository) FindByOrgID(ctx context.Context, orgID uuid.UUID, opts repositories.QueryOpts) ([]*models.InventoryItem, int, error) {
	where := "org_id = $1 AND deleted_at IS NULL"
	args := []any{orgID}
	if opts.Status != "" {
		where += " AND status = $2"
		args = append(args, opts.Status)
	}

	var total int
	if err := r.db.DB().QueryRowContext(ctx,
		"SELECT COUNT(*) FROM inventory_items WHERE "+where, args...,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: count items: %v", invdomain.ErrDatabase, err)
	}

	query := fmt.Sprintf(`
		SELECT `+itemColumns+`
		FROM inventory_items
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, opts.Limit, opts.Offset)

	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: query items: %v", invdomain.ErrDatabase, err)
	}
	defer rows.Close()

	var items []*models.InventoryItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: scan item: %v", invdomain.ErrDatabase, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterate items: %v", invdomain.ErrDatabase, err)
	}
	return items, total, nil
}

// UpdateVersioned performs the compare-and-swap write. The UPDATE matches
// both id and the expected version; zero affected rows means a concurrent
// writer committed between the caller's fetch and this write, which surfaces
// as ErrConcurrentModification without retry.
func (r *ItemRepository) UpdateVersioned(ctx context.Context, item *models.InventoryItem, expectedVersion int, prevStatus models.ItemStatus) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE inventory_items SET
				name = $1, description = $2, sku = $3, barcode = $4,
				item_type = $5, ownership_type = $6, status = $7,
				weight_grams = $8, purchase_price = $9, currency = $10,
				category_id = $11, metal_type_id = $12, metal_purity_id = $13,
				stone_type_id = $14, size_id = $15,
				version = version + 1, updated_at = $16, updated_by = $17
			WHERE id = $18 AND org_id = $19 AND version = $20 AND deleted_at IS NULL`,
			item.Name, item.Description, item.SKU, item.Barcode,
			item.ItemType, item.OwnershipType, item.Status,
			item.WeightGrams, item.PurchasePrice, item.Currency,
			nullUUID(item.References.CategoryID), nullUUID(item.References.MetalTypeID),
			nullUUID(item.References.MetalPurityID), nullUUID(item.References.StoneTypeID),
			nullUUID(item.References.SizeID),
			item.UpdatedAt, item.UpdatedBy,
			item.ID, item.OrgID, expectedVersion,
		)
		if err != nil {
			if dup := mapUniqueViolation(err); dup != nil {
				return dup
			}
			return fmt.Errorf("%w: update item: %v", invdomain.ErrDatabase, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: rows affected: %v", invdomain.ErrDatabase, err)
		}
		if affected == 0 {
			return invdomain.ErrConcurrentModification
		}
		item.Version = expectedVersion + 1

		if prevStatus != item.Status {
			return publishEvent(r.bus, tx, domainevents.TopicItemStatusChanged, domainevents.ItemStatusChangedEvent{
				EventID:    uuid.New(),
				ItemID:     item.ID,
				OrgID:      item.OrgID,
				FromStatus: string(prevStatus),
				ToStatus:   string(item.Status),
				Version:    item.Version,
				OccurredAt: item.UpdatedAt,
			})
		}
		return publishEvent(r.bus, tx, domainevents.TopicItemUpdated, domainevents.ItemUpdatedEvent{
			EventID:    uuid.New(),
			ItemID:     item.ID,
			OrgID:      item.OrgID,
			Version:    item.Version,
			OccurredAt: item.UpdatedAt,
		})
	})
}

// SoftDelete marks the item deleted and publishes ItemDeletedEvent.
// Returns ErrItemNotFound when no live row matches.
func (r *ItemRepository) SoftDelete(ctx context.Context, orgID, id, actor uuid.UUID) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		now := time.Now().UTC()
		res, err := tx.ExecContext(ctx, `
			UPDATE inventory_items
			SET deleted_at = $1, updated_at = $1, updated_by = $2, version = version + 1
			WHERE id = $3 AND org_id = $4 AND deleted_at IS NULL`,
			now, actor, id, orgID,
		)
		if err != nil {
			return fmt.Errorf("%w: soft delete item: %v", invdomain.ErrDatabase, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: rows affected: %v", invdomain.ErrDatabase, err)
		}
		if affected == 0 {
			return invdomain.ErrItemNotFound
		}

		return publishEvent(r.bus, tx, domainevents.TopicItemDeleted, domainevents.ItemDeletedEvent{
			EventID:    uuid.New(),
			ItemID:     id,
			OrgID:      orgID,
			OccurredAt: now,
		})
	})
}

// IdentifierExists reports whether a live item of the tenant already carries
// the given sku/barcode, excluding excludeID (uuid.Nil for creation checks).
func (r *ItemRepository) IdentifierExists(ctx context.Context, orgID uuid.UUID, field repositories.UniqueField, value string, excludeID uuid.UUID) (bool, error) {
	var column string
	switch field {
	case repositories.FieldSKU:
		column = "sku"
	case repositories.FieldBarcode:
		column = "barcode"
	default:
		return false, fmt.Errorf("unknown unique field %q", field)
	}

	var exists bool
	err := r.db.DB().QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM inventory_items
			WHERE org_id = $1 AND `+column+` = $2 AND id <> $3 AND deleted_at IS NULL
		)`,
		orgID, value, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%w: check %s exists: %v", invdomain.ErrDatabase, column, err)
	}
	return exists, nil
}

// CountLive returns the number of non-deleted items of the tenant.
func (r *ItemRepository) CountLive(ctx context.Context, orgID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT COUNT(*) FROM inventory_items WHERE org_id = $1 AND deleted_at IS NULL`,
		orgID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("%w: count live items: %v", invdomain.ErrDatabase, err)
	}
	return n, nil
}

// publishEvent marshals event and publishes it on topic through a publisher
// bound to tx, so the event commits or rolls back with the mutation.
func publishEvent(bus *events.EventBus, tx *sql.Tx, topic string, event any) error {
	if bus == nil {
		return nil
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", topic, err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	p, err := bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	if err := p.Publish(topic, msg); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*models.InventoryItem, error) {
	var (
		item        models.InventoryItem
		category    uuid.NullUUID
		metalType   uuid.NullUUID
		metalPurity uuid.NullUUID
		stoneType   uuid.NullUUID
		size        uuid.NullUUID
		deletedAt   sql.NullTime
	)
	if err := row.Scan(
		&item.ID, &item.OrgID, &item.Name, &item.Description, &item.SKU, &item.Barcode,
		&item.ItemType, &item.OwnershipType, &item.Status,
		&item.WeightGrams, &item.StoneWeightCarats, &item.PurchasePrice, &item.Currency,
		&category, &metalType, &metalPurity, &stoneType, &size,
		&item.Version, &item.CreatedAt, &item.CreatedBy, &item.UpdatedAt, &item.UpdatedBy,
		&deletedAt,
	); err != nil {
		return nil, err
	}
	item.References = models.References{
		CategoryID:    uuidPtr(category),
		MetalTypeID:   uuidPtr(metalType),
		MetalPurityID: uuidPtr(metalPurity),
		StoneTypeID:   uuidPtr(stoneType),
		SizeID:        uuidPtr(size),
	}
	if deletedAt.Valid {
		t := deletedAt.Time
		item.DeletedAt = &t
	}
	return &item, nil
}

// mapUniqueViolation converts a 23505 on one of the live-row partial unique
// indexes into the matching duplicate sentinel, or returns nil for other
// errors.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return nil
	}
	switch {
	case strings.Contains(pgErr.ConstraintName, "sku"):
		return invdomain.ErrDuplicateSKU
	case strings.Contains(pgErr.ConstraintName, "barcode"):
		return invdomain.ErrDuplicateBarcode
	default:
		return fmt.Errorf("%w: unique violation on %s", invdomain.ErrDatabase, pgErr.ConstraintName)
	}
}

func nullUUID(p *uuid.UUID) uuid.NullUUID {
	if p == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *p, Valid: true}
}

func uuidPtr(n uuid.NullUUID) *uuid.UUID {
	if !n.Valid {
		return nil
	}
	u := n.UUID
	return &u
}
