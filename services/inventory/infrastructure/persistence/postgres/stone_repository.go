package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/atelier/pkg/database"
	"github.com/ghuser/atelier/pkg/events"
	invdomain "github.com/ghuser/atelier/services/inventory/domain"
	domainevents "github.com/ghuser/atelier/services/inventory/domain/events"
	"github.com/ghuser/atelier/services/inventory/domain/models"
)

// StoneRepository implements repositories.StoneRepository against
// PostgreSQL. The child mutation and the parent aggregate adjustment run in
// a single transaction, with the adjustment computed by the database
// (stone_weight_carats = stone_weight_carats ± delta, clamped at zero), so
// the aggregate cannot drift from the stone ledger and two concurrent stone
// operations on the same item serialize on the parent row.
type StoneRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewStoneRepository returns a StoneRepository backed by the given
// connection pool and event bus. The bus may be nil in tests.
func NewStoneRepository(db *database.Database, bus *events.EventBus) *StoneRepository {
	return &StoneRepository{db: db, bus: bus}
}

// Attach increments the parent's stone-weight aggregate, inserts the stone
// row, and publishes StoneAttachedEvent, all in one transaction. The
// aggregate UPDATE doubles as the parent existence check and row lock.
// The increment uses the stone's weight only; StoneCount stays metadata.
func (r *StoneRepository) Attach(ctx context.Context, stone *models.ItemStone) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE inventory_items
			SET stone_weight_carats = stone_weight_carats + $1, updated_at = $2
			WHERE id = $3 AND org_id = $4 AND deleted_at IS NULL`,
			stone.WeightCarats, time.Now().UTC(), stone.ItemID, stone.OrgID,
		)
		if err != nil {
			return fmt.Errorf("%w: adjust stone weight: %v", invdomain.ErrDatabase, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: rows affected: %v", invdomain.ErrDatabase, err)
		}
		if affected == 0 {
			return invdomain.ErrItemNotFound
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO item_stones (
				id, org_id, item_id, stone_type_id,
				weight_carats, stone_count,
				clarity, color, cut, position, estimated_value, notes,
				created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
			stone.ID, stone.OrgID, stone.ItemID, stone.StoneTypeID,
			stone.WeightCarats, stone.StoneCount,
			stone.Clarity, stone.Color, stone.Cut, stone.Position,
			nullDecimal(stone.EstimatedValue), stone.Notes,
			stone.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("%w: insert stone: %v", invdomain.ErrDatabase, err)
		}

		return publishEvent(r.bus, tx, domainevents.TopicStoneAttached, domainevents.StoneAttachedEvent{
			EventID:      uuid.New(),
			StoneID:      stone.ID,
			ItemID:       stone.ItemID,
			OrgID:        stone.OrgID,
			WeightCarats: stone.WeightCarats.String(),
			OccurredAt:   stone.CreatedAt,
		})
	})
}

// Detach deletes the stone and applies the clamped aggregate decrement in
// one transaction. The clamp (GREATEST(0, ...)) tolerates prior drift
// rather than letting the total go negative.
func (r *StoneRepository) Detach(ctx context.Context, orgID, stoneID uuid.UUID) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		var (
			itemID uuid.UUID
			weight decimal.Decimal
		)
		err := tx.QueryRowContext(ctx, `
			DELETE FROM item_stones
			WHERE id = $1 AND org_id = $2
			RETURNING item_id, weight_carats`,
			stoneID, orgID,
		).Scan(&itemID, &weight)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return invdomain.ErrStoneNotFound
			}
			return fmt.Errorf("%w: delete stone: %v", invdomain.ErrDatabase, err)
		}

		now := time.Now().UTC()
		if _, err := tx.ExecContext(ctx, `
			UPDATE inventory_items
			SET stone_weight_carats = GREATEST(0, stone_weight_carats - $1), updated_at = $2
			WHERE id = $3 AND org_id = $4 AND deleted_at IS NULL`,
			weight, now, itemID, orgID,
		); err != nil {
			return fmt.Errorf("%w: adjust stone weight: %v", invdomain.ErrDatabase, err)
		}

		return publishEvent(r.bus, tx, domainevents.TopicStoneDetached, domainevents.StoneDetachedEvent{
			EventID:      uuid.New(),
			StoneID:      stoneID,
			ItemID:       itemID,
			OrgID:        orgID,
			WeightCarats: weight.String(),
			OccurredAt:   now,
		})
	})
}

// GetByID returns the stone or ErrStoneNotFound.
func (r *StoneRepository) GetByID(ctx context.Context, orgID, stoneID uuid.UUID) (*models.ItemStone, error) {
	row := r.db.DB().QueryRowContext(ctx, `
		SELECT id, org_id, item_id, stone_type_id,
			weight_carats, stone_count,
			clarity, color, cut, position, estimated_value, notes,
			created_at
		FROM item_stones
		WHERE id = $1 AND org_id = $2`,
		stoneID, orgID,
	)
	stone, err := scanStone(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invdomain.ErrStoneNotFound
		}
		return nil, fmt.Errorf("%w: query stone: %v", invdomain.ErrDatabase, err)
	}
	return stone, nil
}

// ListByItem returns all stones attached to the item, newest first.
func (r *StoneRepository) ListByItem(ctx context.Context, orgID, itemID uuid.UUID) ([]*models.ItemStone, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT id, org_id, item_id, stone_type_id,
			weight_carats, stone_count,
			clarity, color, cut, position, estimated_value, notes,
			created_at
		FROM item_stones
		WHERE item_id = $1 AND org_id = $2
		ORDER BY created_at DESC`,
		itemID, orgID,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: query stones: %v", invdomain.ErrDatabase, err)
	}
	defer rows.Close()

	var stones []*models.ItemStone
	for rows.Next() {
		stone, err := scanStone(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan stone: %v", invdomain.ErrDatabase, err)
		}
		stones = append(stones, stone)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate stones: %v", invdomain.ErrDatabase, err)
	}
	return stones, nil
}

func scanStone(row rowScanner) (*models.ItemStone, error) {
	var (
		stone     models.ItemStone
		estimated decimal.NullDecimal
	)
	if err := row.Scan(
		&stone.ID, &stone.OrgID, &stone.ItemID, &stone.StoneTypeID,
		&stone.WeightCarats, &stone.StoneCount,
		&stone.Clarity, &stone.Color, &stone.Cut, &stone.Position,
		&estimated, &stone.Notes,
		&stone.CreatedAt,
	); err != nil {
		return nil, err
	}
	if estimated.Valid {
		v := estimated.Decimal
		stone.EstimatedValue = &v
	}
	return &stone, nil
}

func nullDecimal(p *decimal.Decimal) decimal.NullDecimal {
	if p == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *p, Valid: true}
}
