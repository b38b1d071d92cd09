package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	pkgcache "github.com/ghuser/atelier/pkg/cache"
	"github.com/ghuser/atelier/pkg/logger"
	"github.com/ghuser/atelier/services/inventory/domain"
	"github.com/ghuser/atelier/services/inventory/domain/models"
	"github.com/ghuser/atelier/services/inventory/domain/repositories"
	domainsvcs "github.com/ghuser/atelier/services/inventory/domain/services"
)

// ItemService orchestrates the inventory item lifecycle: creation with
// identifier generation, versioned updates, status transitions, and soft
// deletion. Event publishing is handled by the repository layer (outbox
// pattern). Reads are served from Redis cache when available; every
// successful mutation invalidates the cache entry fire-and-forget.
type ItemService struct {
	repo      repositories.ItemRepository
	refs      repositories.ReferenceRepository
	validator *domainsvcs.ReferenceValidator
	cache     *pkgcache.ItemCache
	log       logger.Logger

	// maxIDAttempts bounds the generate-then-verify loop for SKUs and
	// barcodes. Generated identifiers are time-derived, so collisions are
	// rare but possible under load.
	maxIDAttempts int
}

// NewItemService returns an ItemService wired with the given collaborators.
func NewItemService(
	repo repositories.ItemRepository,
	refs repositories.ReferenceRepository,
	validator *domainsvcs.ReferenceValidator,
	itemCache *pkgcache.ItemCache,
	log logger.Logger,
	maxIDAttempts int,
) *ItemService {
	if maxIDAttempts < 1 {
		maxIDAttempts = 3
	}
	return &ItemService{
		repo:          repo,
		refs:          refs,
		validator:     validator,
		cache:         itemCache,
		log:           log,
		maxIDAttempts: maxIDAttempts,
	}
}

// UpdateItemParams carries the caller-supplied changes for a versioned item
// update. Nil pointers mean "leave unchanged". References, when non-nil,
// replaces the full reference set.
type UpdateItemParams struct {
	Name          *string
	Description   *string
	SKU           *string
	Barcode       *string
	ItemType      *models.ItemType
	OwnershipType *models.OwnershipType
	WeightGrams   *decimal.Decimal
	PurchasePrice *decimal.Decimal
	Currency      *string
	References    *models.References

	ExpectedVersion int
}

// BulkStatusResult reports the outcome of a bulk status update. Each item is
// processed independently; partial failure is an expected outcome, not an
// error.
type BulkStatusResult struct {
	UpdatedCount int           `json:"updatedCount"`
	FailedCount  int           `json:"failedCount"`
	Failures     []BulkFailure `json:"failures,omitempty"`
}

// BulkFailure describes one item that could not be transitioned.
type BulkFailure struct {
	ItemID uuid.UUID   `json:"itemId"`
	Code   domain.Code `json:"code"`
	Error  string      `json:"error"`
}

// Create validates references, resolves or generates the SKU and barcode,
// and persists a new item at version 1 in the available state. The
// repository publishes the created event in the insert transaction.
func (s *ItemService) Create(ctx context.Context, orgID, actor uuid.UUID, p models.NewItemParams) (*models.InventoryItem, error) {
	if err := s.validator.ValidateReferences(ctx, orgID, p.References); err != nil {
		return nil, err
	}

	item, err := models.NewInventoryItem(orgID, actor, p)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if err := s.resolveSKU(ctx, item); err != nil {
		return nil, err
	}
	if err := s.resolveBarcode(ctx, item); err != nil {
		return nil, err
	}

	if err := s.repo.Insert(ctx, item); err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}

	s.invalidate(item.OrgID, item.ID)
	return item, nil
}

// resolveSKU ensures the item carries a tenant-unique SKU. A caller-supplied
// SKU is checked once; an absent SKU is generated and verified, retrying up
// to maxIDAttempts times before surfacing ErrDuplicateSKU.
func (s *ItemService) resolveSKU(ctx context.Context, item *models.InventoryItem) error {
	if item.SKU != "" {
		taken, err := s.repo.IdentifierExists(ctx, item.OrgID, repositories.FieldSKU, item.SKU, uuid.Nil)
		if err != nil {
			return fmt.Errorf("check sku: %w", err)
		}
		if taken {
			return domain.ErrDuplicateSKU
		}
		return nil
	}

	orgName, err := s.refs.OrgName(ctx, item.OrgID)
	if err != nil {
		return fmt.Errorf("lookup org name: %w", err)
	}
	categoryName, err := s.refs.CategoryName(ctx, item.OrgID, item.References.CategoryID)
	if err != nil {
		return fmt.Errorf("lookup category name: %w", err)
	}

	for attempt := 0; attempt < s.maxIDAttempts; attempt++ {
		sku := domainsvcs.GenerateSKU(orgName, categoryName)
		taken, err := s.repo.IdentifierExists(ctx, item.OrgID, repositories.FieldSKU, sku, uuid.Nil)
		if err != nil {
			return fmt.Errorf("check sku: %w", err)
		}
		if !taken {
			item.SKU = sku
			return nil
		}
	}
	return fmt.Errorf("%w: could not generate a unique sku after %d attempts",
		domain.ErrDuplicateSKU, s.maxIDAttempts)
}

// resolveBarcode mirrors resolveSKU for the barcode identifier.
func (s *ItemService) resolveBarcode(ctx context.Context, item *models.InventoryItem) error {
	if item.Barcode != "" {
		taken, err := s.repo.IdentifierExists(ctx, item.OrgID, repositories.FieldBarcode, item.Barcode, uuid.Nil)
		if err != nil {
			return fmt.Errorf("check barcode: %w", err)
		}
		if taken {
			return domain.ErrDuplicateBarcode
		}
		return nil
	}

	count, err := s.repo.CountLive(ctx, item.OrgID)
	if err != nil {
		return fmt.Errorf("count items: %w", err)
	}

	for attempt := 0; attempt < s.maxIDAttempts; attempt++ {
		barcode := domainsvcs.GenerateBarcode(item.OrgID, count)
		taken, err := s.repo.IdentifierExists(ctx, item.OrgID, repositories.FieldBarcode, barcode, uuid.Nil)
		if err != nil {
			return fmt.Errorf("check barcode: %w", err)
		}
		if !taken {
			item.Barcode = barcode
			return nil
		}
	}
	return fmt.Errorf("%w: could not generate a unique barcode after %d attempts",
		domain.ErrDuplicateBarcode, s.maxIDAttempts)
}

// GetByID retrieves an item using a read-through cache pattern:
//  1. Check Redis cache first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *ItemService) GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.InventoryItem, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, orgID, id)
		switch {
		case err == nil:
			return fromCached(cached), nil
		case !errors.Is(err, redis.Nil):
			s.log.WarnContext(ctx, "item cache read failed", "error", err)
		}
	}

	item, err := s.repo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), ToCachedItem(item))
		}()
	}
	return item, nil
}

// List returns a paginated slice of the tenant's live items plus the total
// count, optionally filtered to a single status.
func (s *ItemService) List(ctx context.Context, orgID uuid.UUID, opts repositories.QueryOpts) ([]*models.InventoryItem, int, error) {
	if opts.Status != "" && !opts.Status.IsValid() {
		return nil, 0, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, opts.Status)
	}
	items, total, err := s.repo.FindByOrgID(ctx, orgID, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	return items, total, nil
}

// Update applies a versioned field update. Items in a terminal or
// in-transfer state (sold, transferred) reject edits with ErrInvalidStatus.
// Changed references are re-validated and changed identifiers re-checked for
// uniqueness before the conditional write.
func (s *ItemService) Update(ctx context.Context, orgID, actor, id uuid.UUID, p UpdateItemParams) (*models.InventoryItem, error) {
	item, err := s.repo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if !item.Editable() {
		return nil, fmt.Errorf("%w: items in status %q cannot be edited", domain.ErrInvalidStatus, item.Status)
	}
	if item.Version != p.ExpectedVersion {
		return nil, fmt.Errorf("%w: have version %d, expected %d",
			domain.ErrConcurrentModification, item.Version, p.ExpectedVersion)
	}

	if p.References != nil {
		changed := changedReferences(item.References, *p.References)
		if err := s.validator.ValidateReferences(ctx, orgID, changed); err != nil {
			return nil, err
		}
		item.References = *p.References
	}

	if p.SKU != nil && *p.SKU != item.SKU {
		if err := s.checkIdentifierFree(ctx, orgID, repositories.FieldSKU, *p.SKU, id, domain.ErrDuplicateSKU); err != nil {
			return nil, err
		}
		item.SKU = *p.SKU
	}
	if p.Barcode != nil && *p.Barcode != item.Barcode {
		if err := s.checkIdentifierFree(ctx, orgID, repositories.FieldBarcode, *p.Barcode, id, domain.ErrDuplicateBarcode); err != nil {
			return nil, err
		}
		item.Barcode = *p.Barcode
	}

	if err := applyFieldUpdates(item, p); err != nil {
		return nil, err
	}

	prev := item.Status
	item.Touch(actor)
	if err := s.repo.UpdateVersioned(ctx, item, p.ExpectedVersion, prev); err != nil {
		return nil, err
	}

	s.invalidate(orgID, id)
	return item, nil
}

// UpdateStatus transitions an item through the lifecycle state machine and
// persists the result with a conditional write. A transition to the current
// status is an idempotent success but still performs the versioned write.
// The optional reason is appended to the item's description trail.
func (s *ItemService) UpdateStatus(ctx context.Context, orgID, actor, id uuid.UUID, to models.ItemStatus, reason string) (*models.InventoryItem, error) {
	if !to.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, to)
	}

	item, err := s.repo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if !models.CanTransition(item.Status, to) {
		return nil, fmt.Errorf("%w: %s → %s", domain.ErrInvalidTransition, item.Status, to)
	}

	prev := item.Status
	expected := item.Version
	item.ApplyStatus(to, reason, actor)
	if err := s.repo.UpdateVersioned(ctx, item, expected, prev); err != nil {
		return nil, err
	}

	s.invalidate(orgID, id)
	return item, nil
}

// BulkUpdateStatus applies the same transition to each listed item
// independently. One item's failure never blocks the others; failures are
// collected with their taxonomy codes.
func (s *ItemService) BulkUpdateStatus(ctx context.Context, orgID, actor uuid.UUID, ids []uuid.UUID, to models.ItemStatus, reason string) *BulkStatusResult {
	result := &BulkStatusResult{}
	for _, id := range ids {
		if _, err := s.UpdateStatus(ctx, orgID, actor, id, to, reason); err != nil {
			result.FailedCount++
			result.Failures = append(result.Failures, BulkFailure{
				ItemID: id,
				Code:   domain.CodeOf(err),
				Error:  err.Error(),
			})
			continue
		}
		result.UpdatedCount++
	}
	return result
}

// Delete soft-deletes an item. Items that are sold, reserved, in workshop,
// or transferred reject deletion with ErrInvalidStatus. The freed SKU and
// barcode become reusable by new items immediately.
func (s *ItemService) Delete(ctx context.Context, orgID, actor, id uuid.UUID) error {
	item, err := s.repo.GetByID(ctx, orgID, id)
	if err != nil {
		return err
	}
	if !item.Deletable() {
		return fmt.Errorf("%w: items in status %q cannot be deleted", domain.ErrInvalidStatus, item.Status)
	}
	if err := s.repo.SoftDelete(ctx, orgID, id, actor); err != nil {
		return err
	}
	s.invalidate(orgID, id)
	return nil
}

func (s *ItemService) checkIdentifierFree(ctx context.Context, orgID uuid.UUID, field repositories.UniqueField, value string, excludeID uuid.UUID, dup error) error {
	taken, err := s.repo.IdentifierExists(ctx, orgID, field, value, excludeID)
	if err != nil {
		return fmt.Errorf("check %s: %w", field, err)
	}
	if taken {
		return dup
	}
	return nil
}

// invalidate drops the cache entry fire-and-forget. The worker re-warms it
// from the mutation event; a failed delete only means a stale read until the
// TTL or the next warm.
func (s *ItemService) invalidate(orgID, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	go func() {
		if err := s.cache.Delete(context.Background(), orgID, id); err != nil {
			s.log.Warn("item cache invalidation failed", "item_id", id, "error", err)
		}
	}()
}

// applyFieldUpdates copies the plain field changes onto the aggregate,
// re-running the constructor-level checks for the fields that carry them.
func applyFieldUpdates(item *models.InventoryItem, p UpdateItemParams) error {
	if p.Name != nil {
		if *p.Name == "" {
			return fmt.Errorf("%w: item name is required", domain.ErrValidation)
		}
		item.Name = *p.Name
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.ItemType != nil {
		if !p.ItemType.IsValid() {
			return fmt.Errorf("%w: unknown item type %q", domain.ErrValidation, *p.ItemType)
		}
		item.ItemType = *p.ItemType
	}
	if p.OwnershipType != nil {
		if !p.OwnershipType.IsValid() {
			return fmt.Errorf("%w: unknown ownership type %q", domain.ErrValidation, *p.OwnershipType)
		}
		item.OwnershipType = *p.OwnershipType
	}
	if p.WeightGrams != nil {
		if p.WeightGrams.IsNegative() {
			return fmt.Errorf("%w: weight must not be negative", domain.ErrValidation)
		}
		item.WeightGrams = *p.WeightGrams
	}
	if p.PurchasePrice != nil {
		if p.PurchasePrice.IsNegative() {
			return fmt.Errorf("%w: purchase price must not be negative", domain.ErrValidation)
		}
		item.PurchasePrice = *p.PurchasePrice
	}
	if p.Currency != nil {
		item.Currency = *p.Currency
	}
	return nil
}

// changedReferences returns only the references of next that differ from
// cur, so unchanged references skip the existence lookup.
func changedReferences(cur, next models.References) models.References {
	keep := func(before, after *uuid.UUID) *uuid.UUID {
		if after == nil {
			return nil
		}
		if before != nil && *before == *after {
			return nil
		}
		return after
	}
	return models.References{
		CategoryID:    keep(cur.CategoryID, next.CategoryID),
		MetalTypeID:   keep(cur.MetalTypeID, next.MetalTypeID),
		MetalPurityID: keep(cur.MetalPurityID, next.MetalPurityID),
		StoneTypeID:   keep(cur.StoneTypeID, next.StoneTypeID),
		SizeID:        keep(cur.SizeID, next.SizeID),
	}
}

// ToCachedItem flattens the aggregate into the Redis read model. The worker
// uses it to warm entries from mutation events.
func ToCachedItem(item *models.InventoryItem) *pkgcache.CachedItem {
	return &pkgcache.CachedItem{
		ID:                item.ID,
		OrgID:             item.OrgID,
		Name:              item.Name,
		Description:       item.Description,
		SKU:               item.SKU,
		Barcode:           item.Barcode,
		ItemType:          string(item.ItemType),
		OwnershipType:     string(item.OwnershipType),
		Status:            string(item.Status),
		WeightGrams:       item.WeightGrams,
		StoneWeightCarats: item.StoneWeightCarats,
		PurchasePrice:     item.PurchasePrice,
		Currency:          item.Currency,
		CategoryID:        item.References.CategoryID,
		MetalTypeID:       item.References.MetalTypeID,
		MetalPurityID:     item.References.MetalPurityID,
		StoneTypeID:       item.References.StoneTypeID,
		SizeID:            item.References.SizeID,
		Version:           item.Version,
		CreatedAt:         item.CreatedAt,
		CreatedBy:         item.CreatedBy,
		UpdatedAt:         item.UpdatedAt,
		UpdatedBy:         item.UpdatedBy,
	}
}

// fromCached rebuilds the aggregate from the Redis read model.
func fromCached(c *pkgcache.CachedItem) *models.InventoryItem {
	return &models.InventoryItem{
		ID:                c.ID,
		OrgID:             c.OrgID,
		Name:              c.Name,
		Description:       c.Description,
		SKU:               c.SKU,
		Barcode:           c.Barcode,
		ItemType:          models.ItemType(c.ItemType),
		OwnershipType:     models.OwnershipType(c.OwnershipType),
		Status:            models.ItemStatus(c.Status),
		WeightGrams:       c.WeightGrams,
		StoneWeightCarats: c.StoneWeightCarats,
		PurchasePrice:     c.PurchasePrice,
		Currency:          c.Currency,
		References: models.References{
			CategoryID:    c.CategoryID,
			MetalTypeID:   c.MetalTypeID,
			MetalPurityID: c.MetalPurityID,
			StoneTypeID:   c.StoneTypeID,
			SizeID:        c.SizeID,
		},
		Version:   c.Version,
		CreatedAt: c.CreatedAt,
		CreatedBy: c.CreatedBy,
		UpdatedAt: c.UpdatedAt,
		UpdatedBy: c.UpdatedBy,
	}
}
