package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	pkgcache "github.com/ghuser/atelier/pkg/cache"
	"github.com/ghuser/atelier/pkg/logger"
	"github.com/ghuser/atelier/services/inventory/domain"
	"github.com/ghuser/atelier/services/inventory/domain/models"
	"github.com/ghuser/atelier/services/inventory/domain/repositories"
	domainsvcs "github.com/ghuser/atelier/services/inventory/domain/services"
)

// StoneService maintains the stone ledger of an item and, through the
// repository, the item's derived stone-weight aggregate. Attach and detach
// adjust the aggregate atomically in the same transaction as the child
// mutation, so the total can never drift from the sum of attached stones.
type StoneService struct {
	stones    repositories.StoneRepository
	validator *domainsvcs.ReferenceValidator
	cache     *pkgcache.ItemCache
	log       logger.Logger
}

// NewStoneService returns a StoneService wired with the given collaborators.
func NewStoneService(
	stones repositories.StoneRepository,
	validator *domainsvcs.ReferenceValidator,
	itemCache *pkgcache.ItemCache,
	log logger.Logger,
) *StoneService {
	return &StoneService{stones: stones, validator: validator, cache: itemCache, log: log}
}

// Attach validates the stone type reference, builds the stone record, and
// persists it together with the parent's aggregate increment. Returns
// ErrItemNotFound when the parent item is absent or soft-deleted.
func (s *StoneService) Attach(ctx context.Context, orgID, itemID uuid.UUID, p models.NewStoneParams) (*models.ItemStone, error) {
	if err := s.validator.ValidateStoneType(ctx, orgID, p.StoneTypeID); err != nil {
		return nil, err
	}

	stone, err := models.NewItemStone(orgID, itemID, p)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if err := s.stones.Attach(ctx, stone); err != nil {
		return nil, err
	}

	s.invalidate(orgID, itemID)
	return stone, nil
}

// Detach removes a stone and decrements the parent's aggregate, clamped at
// zero. Returns ErrStoneNotFound when no such stone exists for the tenant.
func (s *StoneService) Detach(ctx context.Context, orgID, stoneID uuid.UUID) error {
	stone, err := s.stones.GetByID(ctx, orgID, stoneID)
	if err != nil {
		return err
	}
	if err := s.stones.Detach(ctx, orgID, stoneID); err != nil {
		return err
	}
	s.invalidate(orgID, stone.ItemID)
	return nil
}

// ListByItem returns all stones attached to an item, newest first.
func (s *StoneService) ListByItem(ctx context.Context, orgID, itemID uuid.UUID) ([]*models.ItemStone, error) {
	stones, err := s.stones.ListByItem(ctx, orgID, itemID)
	if err != nil {
		return nil, fmt.Errorf("list stones: %w", err)
	}
	return stones, nil
}

func (s *StoneService) invalidate(orgID, itemID uuid.UUID) {
	if s.cache == nil {
		return
	}
	go func() {
		if err := s.cache.Delete(context.Background(), orgID, itemID); err != nil {
			s.log.Warn("item cache invalidation failed", "item_id", itemID, "error", err)
		}
	}()
}
