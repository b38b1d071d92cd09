package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/atelier/services/inventory/domain"
	"github.com/ghuser/atelier/services/inventory/domain/models"
	domainsvcs "github.com/ghuser/atelier/services/inventory/domain/services"
)

// fakeStoneRepo keeps stones in memory and maintains the per-item aggregate
// the same way the storage layer does: adjusted with the stone mutation,
// clamped at zero on detach.
type fakeStoneRepo struct {
	mu        sync.Mutex
	stones    map[uuid.UUID]*models.ItemStone
	aggregate map[uuid.UUID]decimal.Decimal
}

func newFakeStoneRepo() *fakeStoneRepo {
	return &fakeStoneRepo{
		stones:    make(map[uuid.UUID]*models.ItemStone),
		aggregate: make(map[uuid.UUID]decimal.Decimal),
	}
}

func (f *fakeStoneRepo) Attach(_ context.Context, stone *models.ItemStone) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *stone
	f.stones[stone.ID] = &cp
	f.aggregate[stone.ItemID] = f.aggregate[stone.ItemID].Add(stone.WeightCarats)
	return nil
}

func (f *fakeStoneRepo) Detach(_ context.Context, orgID, stoneID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stone, ok := f.stones[stoneID]
	if !ok || stone.OrgID != orgID {
		return domain.ErrStoneNotFound
	}
	delete(f.stones, stoneID)
	next := f.aggregate[stone.ItemID].Sub(stone.WeightCarats)
	if next.IsNegative() {
		next = decimal.Zero
	}
	f.aggregate[stone.ItemID] = next
	return nil
}

func (f *fakeStoneRepo) GetByID(_ context.Context, orgID, stoneID uuid.UUID) (*models.ItemStone, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stone, ok := f.stones[stoneID]
	if !ok || stone.OrgID != orgID {
		return nil, domain.ErrStoneNotFound
	}
	cp := *stone
	return &cp, nil
}

func (f *fakeStoneRepo) ListByItem(_ context.Context, orgID, itemID uuid.UUID) ([]*models.ItemStone, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.ItemStone
	for _, stone := range f.stones {
		if stone.OrgID == orgID && stone.ItemID == itemID {
			cp := *stone
			out = append(out, &cp)
		}
	}
	return out, nil
}

func newStoneService(repo *fakeStoneRepo, refs *fakeRefLookup) *StoneService {
	return NewStoneService(repo, domainsvcs.NewReferenceValidator(refs), nil, newTestLogger())
}

func TestAttach_Success(t *testing.T) {
	repo := newFakeStoneRepo()
	svc := newStoneService(repo, &fakeRefLookup{})
	orgID, itemID := uuid.New(), uuid.New()

	stone, err := svc.Attach(context.Background(), orgID, itemID, models.NewStoneParams{
		StoneTypeID:  uuid.New(),
		WeightCarats: decimal.NewFromFloat(0.52),
	})
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	if stone.StoneCount != 1 {
		t.Errorf("count defaults to 1, got %d", stone.StoneCount)
	}
	if !repo.aggregate[itemID].Equal(decimal.NewFromFloat(0.52)) {
		t.Errorf("aggregate = %s, want 0.52", repo.aggregate[itemID])
	}
}

func TestAttach_WeightNotMultipliedByCount(t *testing.T) {
	repo := newFakeStoneRepo()
	svc := newStoneService(repo, &fakeRefLookup{})
	orgID, itemID := uuid.New(), uuid.New()

	// Six melee stones recorded as one row: the aggregate moves by the
	// row's carat weight, never weight times count.
	_, err := svc.Attach(context.Background(), orgID, itemID, models.NewStoneParams{
		StoneTypeID:  uuid.New(),
		WeightCarats: decimal.NewFromFloat(0.30),
		StoneCount:   6,
	})
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	if !repo.aggregate[itemID].Equal(decimal.NewFromFloat(0.30)) {
		t.Errorf("aggregate = %s, want 0.30", repo.aggregate[itemID])
	}
}

func TestAttach_InvalidStoneType(t *testing.T) {
	svc := newStoneService(newFakeStoneRepo(), &fakeRefLookup{refs: map[uuid.UUID]bool{}})

	_, err := svc.Attach(context.Background(), uuid.New(), uuid.New(), models.NewStoneParams{
		StoneTypeID:  uuid.New(),
		WeightCarats: decimal.NewFromFloat(0.5),
	})
	if !errors.Is(err, domain.ErrInvalidStoneType) {
		t.Fatalf("expected invalid stone type, got %v", err)
	}
}

func TestAttach_ZeroWeightRejected(t *testing.T) {
	svc := newStoneService(newFakeStoneRepo(), &fakeRefLookup{})

	_, err := svc.Attach(context.Background(), uuid.New(), uuid.New(), models.NewStoneParams{
		StoneTypeID: uuid.New(),
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if domain.CodeOf(err) != domain.CodeValidationError {
		t.Errorf("code = %s", domain.CodeOf(err))
	}
}

func TestDetach_Success(t *testing.T) {
	repo := newFakeStoneRepo()
	svc := newStoneService(repo, &fakeRefLookup{})
	orgID, itemID := uuid.New(), uuid.New()

	stone, err := svc.Attach(context.Background(), orgID, itemID, models.NewStoneParams{
		StoneTypeID:  uuid.New(),
		WeightCarats: decimal.NewFromFloat(1.05),
	})
	if err != nil {
		t.Fatalf("attach: %v", err)
	}

	if err := svc.Detach(context.Background(), orgID, stone.ID); err != nil {
		t.Fatalf("detach: %v", err)
	}
	if !repo.aggregate[itemID].IsZero() {
		t.Errorf("aggregate = %s, want 0", repo.aggregate[itemID])
	}
	if _, err := svc.ListByItem(context.Background(), orgID, itemID); err != nil {
		t.Fatalf("list: %v", err)
	}
}

func TestDetach_NotFound(t *testing.T) {
	svc := newStoneService(newFakeStoneRepo(), &fakeRefLookup{})
	err := svc.Detach(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, domain.ErrStoneNotFound) {
		t.Fatalf("expected stone not found, got %v", err)
	}
	if domain.CodeOf(err) != domain.CodeNotFound {
		t.Errorf("code = %s", domain.CodeOf(err))
	}
}

func TestDetach_TenantIsolation(t *testing.T) {
	repo := newFakeStoneRepo()
	svc := newStoneService(repo, &fakeRefLookup{})
	orgID := uuid.New()

	stone, err := svc.Attach(context.Background(), orgID, uuid.New(), models.NewStoneParams{
		StoneTypeID:  uuid.New(),
		WeightCarats: decimal.NewFromFloat(0.8),
	})
	if err != nil {
		t.Fatalf("attach: %v", err)
	}

	if err := svc.Detach(context.Background(), uuid.New(), stone.ID); !errors.Is(err, domain.ErrStoneNotFound) {
		t.Fatalf("foreign tenant must see not found, got %v", err)
	}
}
