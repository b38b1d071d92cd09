package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/atelier/services/inventory/domain"
	"github.com/ghuser/atelier/services/inventory/domain/models"
	"github.com/ghuser/atelier/services/inventory/domain/repositories"
)

// ReferenceValidator confirms that every foreign reference on an item points
// at an existing, non-deleted row of the same tenant. The first missing
// reference short-circuits with its field-specific sentinel.
type ReferenceValidator struct {
	refs repositories.ReferenceRepository
}

// NewReferenceValidator returns a validator backed by the given lookup
// repository.
func NewReferenceValidator(refs repositories.ReferenceRepository) *ReferenceValidator {
	return &ReferenceValidator{refs: refs}
}

// ValidateReferences checks every supplied reference in a fixed order.
// Returns nil when all references resolve, the kind-specific sentinel
// (ErrInvalidCategory, ErrInvalidMetalType, ...) on the first miss, or a
// wrapped ErrDatabase when a lookup itself fails.
func (v *ReferenceValidator) ValidateReferences(ctx context.Context, orgID uuid.UUID, refs models.References) error {
	for _, ref := range refs.Each() {
		ok, err := v.refs.ReferenceExists(ctx, orgID, ref.Kind, ref.ID)
		if err != nil {
			return fmt.Errorf("%w: check %s: %v", domain.ErrDatabase, ref.Kind, err)
		}
		if !ok {
			return domain.InvalidReference(ref.Kind)
		}
	}
	return nil
}

// ValidateStoneType checks a single stone-type reference, used on stone
// attach where only that one reference applies.
func (v *ReferenceValidator) ValidateStoneType(ctx context.Context, orgID, stoneTypeID uuid.UUID) error {
	return v.ValidateReferences(ctx, orgID, models.References{StoneTypeID: &stoneTypeID})
}
