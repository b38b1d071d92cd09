// Package services contains the application layer of the inventory bounded
// context: use-case orchestration over the domain model, repositories, and
// the read cache.
package services

import (
	"github.com/ghuser/atelier/pkg/app"
	"github.com/ghuser/atelier/pkg/cache"
	domainsvcs "github.com/ghuser/atelier/services/inventory/domain/services"
	"github.com/ghuser/atelier/services/inventory/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Item  *ItemService
	Stone *StoneService
}

// New wires all inventory application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	items := postgres.NewItemRepository(a.Db, a.EventBus)
	stones := postgres.NewStoneRepository(a.Db, a.EventBus)
	refs := postgres.NewReferenceRepository(a.Db)

	validator := domainsvcs.NewReferenceValidator(refs)
	itemCache := cache.NewItemCache(a.Redis)

	return &Services{
		Item:  NewItemService(items, refs, validator, itemCache, a.Logger, a.Cfg.IdentifierMaxAttempts),
		Stone: NewStoneService(stones, validator, itemCache, a.Logger),
	}
}
